package placement_test

import (
	"context"
	"fmt"

	"signflow-server/internal/infra/utils"
	"signflow-server/internal/signing/domain"
	"signflow-server/internal/signing/geometry"
	"signflow-server/internal/signing/placement"
)

type fakeFieldService struct {
	listCalls   int
	createCalls int
	updateCalls int
	deleteCalls int

	fieldsByPage map[int][]domain.FormField
	failCreate   error
	failUpdate   error
	failDelete   error

	lastCreated domain.FormField
	lastUpdated geometry.PercentRect
	lastDeleted string
}

func newFakeFieldService() *fakeFieldService {
	return &fakeFieldService{fieldsByPage: make(map[int][]domain.FormField)}
}

func (f *fakeFieldService) ListFields(_ context.Context, _ domain.ID, pageNumber int) ([]domain.FormField, error) {
	f.listCalls++
	return f.fieldsByPage[pageNumber], nil
}

func (f *fakeFieldService) CreateField(_ context.Context, _ domain.ID, draft domain.FormField) (domain.FormField, error) {
	f.createCalls++
	if f.failCreate != nil {
		return domain.FormField{}, f.failCreate
	}
	draft.Identity = domain.CommittedIdentity("srv-" + utils.GenerateUUID())
	f.lastCreated = draft
	return draft, nil
}

func (f *fakeFieldService) UpdateFieldPosition(_ context.Context, _ domain.ID, _ string, position geometry.PercentRect) (domain.FormField, error) {
	f.updateCalls++
	if f.failUpdate != nil {
		return domain.FormField{}, f.failUpdate
	}
	f.lastUpdated = position
	return domain.FormField{}, nil
}

func (f *fakeFieldService) DeleteField(_ context.Context, _ domain.ID, fieldID string) error {
	f.deleteCalls++
	f.lastDeleted = fieldID
	return f.failDelete
}

type rendererCall struct {
	op   string
	id   string
	rect geometry.Rect
}

type fakeRenderer struct {
	calls   []rendererCall
	visible map[string]geometry.Rect
}

func newFakeRenderer() *fakeRenderer {
	return &fakeRenderer{visible: make(map[string]geometry.Rect)}
}

func (r *fakeRenderer) ShowField(field domain.FormField, rect geometry.Rect) {
	r.calls = append(r.calls, rendererCall{op: "show", id: field.ID(), rect: rect})
	r.visible[field.ID()] = rect
}

func (r *fakeRenderer) HideField(fieldID string) {
	r.calls = append(r.calls, rendererCall{op: "hide", id: fieldID})
	delete(r.visible, fieldID)
}

func (r *fakeRenderer) RemoveField(fieldID string) {
	r.calls = append(r.calls, rendererCall{op: "remove", id: fieldID})
	delete(r.visible, fieldID)
}

func (r *fakeRenderer) RebindField(oldID, newID string) {
	r.calls = append(r.calls, rendererCall{op: fmt.Sprintf("rebind:%s->%s", oldID, newID)})
	if rect, ok := r.visible[oldID]; ok {
		delete(r.visible, oldID)
		r.visible[newID] = rect
	}
}

func (r *fakeRenderer) DrawSelection(rect geometry.Rect) {
	r.calls = append(r.calls, rendererCall{op: "selection", rect: rect})
}

func (r *fakeRenderer) ClearSelection() {
	r.calls = append(r.calls, rendererCall{op: "clear-selection"})
}

type fakeSurface struct {
	sizes map[int]geometry.Size
}

func (s *fakeSurface) PageSize(pageNumber int) geometry.Size {
	if size, ok := s.sizes[pageNumber]; ok {
		return size
	}
	return geometry.Size{Width: 1000, Height: 800}
}

func newEngine(service *fakeFieldService, renderer *fakeRenderer) *placement.Engine {
	return placement.NewEngine("doc-1", placement.Ports{
		Fields:   service,
		Renderer: renderer,
		Surface:  &fakeSurface{sizes: map[int]geometry.Size{}},
	})
}
