// Package placement implements the interactive field-placement engine: the
// in-memory field store for the open document, the pointer-gesture state
// machine that draws and resizes fields, and the viewport synchronizer that
// keeps rendered positions correct across page and zoom changes.
//
// The engine is platform independent. It talks to the outside world through
// the ports below, so it can drive any rendering surface that can show a
// rectangle and any transport that can persist a field. All gesture and
// viewport methods are expected to be called from a single UI event loop
// goroutine; the store itself is safe for the network callbacks that confirm
// persisted fields.
package placement

import (
	"context"

	"signflow-server/internal/signing/domain"
	"signflow-server/internal/signing/geometry"
)

// FieldService is the document field collaborator. Positions cross this
// boundary in percent space only.
type FieldService interface {
	ListFields(ctx context.Context, documentID domain.ID, pageNumber int) ([]domain.FormField, error)
	CreateField(ctx context.Context, documentID domain.ID, draft domain.FormField) (domain.FormField, error)
	UpdateFieldPosition(ctx context.Context, documentID domain.ID, fieldID string, position geometry.PercentRect) (domain.FormField, error)
	DeleteField(ctx context.Context, documentID domain.ID, fieldID string) error
}

// SurfaceRenderer is the derived visual layer. Everything it shows must be
// reconstructible from the field store plus the current page and scale; it is
// never the source of truth.
type SurfaceRenderer interface {
	ShowField(field domain.FormField, rect geometry.Rect)
	HideField(fieldID string)
	RemoveField(fieldID string)
	RebindField(oldID, newID string)
	DrawSelection(rect geometry.Rect)
	ClearSelection()
}

// ViewerSurface exposes the PDF viewer's page pixel dimensions on demand, at
// scale 1.0. The viewport applies the zoom factor on top.
type ViewerSurface interface {
	PageSize(pageNumber int) geometry.Size
}

// Ports bundles the engine's external collaborators for injection.
type Ports struct {
	Fields   FieldService
	Renderer SurfaceRenderer
	Surface  ViewerSurface
}
