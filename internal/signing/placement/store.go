package placement

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"signflow-server/internal/signing/domain"
	"signflow-server/internal/signing/geometry"
)

var (
	ErrFieldUnknown = errors.New("field not present in store")
)

// FieldStore is the single in-memory authority for all fields of the open
// document, across all pages. The rendering surface holds only a disposable
// projection of it.
//
// Mutations that reach the network are serialized per field through a
// per-identity lock, so a rapid resize-then-delete on one field cannot race;
// failures surface as returned errors instead of being dropped.
type FieldStore struct {
	mu         sync.Mutex
	documentID domain.ID
	service    FieldService
	renderer   SurfaceRenderer

	fields      []*domain.FormField
	loadedPages map[int]bool
	opLocks     map[string]*sync.Mutex
}

func NewFieldStore(documentID domain.ID, service FieldService, renderer SurfaceRenderer) *FieldStore {
	return &FieldStore{
		documentID:  documentID,
		service:     service,
		renderer:    renderer,
		loadedPages: make(map[int]bool),
		opLocks:     make(map[string]*sync.Mutex),
	}
}

// AddLocal appends a locally drawn field under a temporary identity and
// returns it immediately, without waiting for server confirmation.
func (s *FieldStore) AddLocal(draft domain.FormField) domain.FormField {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft.Identity = domain.NewPendingIdentity()
	draft.DocumentID = s.documentID
	s.fields = append(s.fields, &draft)
	return draft
}

// Confirm rebinds a pending field to its server identity. The temporary id
// keeps resolving to the same record, so in-flight references stay valid.
// Confirming an unknown temporary id is a no-op with a logged warning.
func (s *FieldStore) Confirm(tempID, serverID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	field := s.lookup(tempID)
	if field == nil {
		slog.Warn("confirm for unknown temporary field id", slog.String("temp_id", tempID))
		return
	}

	field.Identity.Commit(serverID)
	if s.renderer != nil {
		s.renderer.RebindField(tempID, serverID)
	}
}

// CommitDraft runs the full optimistic create: local add, persist through the
// field service, confirm on success. On failure the field stays in the store
// under its pending identity and the error is returned to the caller, so the
// UI can flag the unsaved field instead of silently losing it.
func (s *FieldStore) CommitDraft(ctx context.Context, draft domain.FormField) (domain.FormField, error) {
	local := s.AddLocal(draft)
	tempID := local.Identity.Current()

	unlock := s.lockField(tempID)
	defer unlock()

	created, err := s.service.CreateField(ctx, s.documentID, local)
	if err != nil {
		slog.Error("persisting field",
			slog.String("temp_id", tempID),
			slog.String("error", err.Error()))
		return local, fmt.Errorf("persisting field: %w", err)
	}

	s.Confirm(tempID, created.Identity.Current())
	return s.Get(tempID), nil
}

// UpdatePosition commits a resize. The local record is updated optimistically
// and restored if the partial update is rejected by the collaborator.
func (s *FieldStore) UpdatePosition(ctx context.Context, id string, position geometry.PercentRect) error {
	unlock := s.lockField(id)
	defer unlock()

	s.mu.Lock()
	field := s.lookup(id)
	if field == nil {
		s.mu.Unlock()
		return ErrFieldUnknown
	}
	previous := field.Position
	if err := field.UpdatePosition(position); err != nil {
		s.mu.Unlock()
		return err
	}
	fieldID := field.Identity.Current()
	pending := field.Identity.IsPending()
	s.mu.Unlock()

	if pending {
		// Never persisted; nothing to update remotely.
		return nil
	}

	if _, err := s.service.UpdateFieldPosition(ctx, s.documentID, fieldID, position); err != nil {
		s.mu.Lock()
		if field := s.lookup(id); field != nil {
			field.Position = previous
		}
		s.mu.Unlock()
		return fmt.Errorf("updating field position: %w", err)
	}

	return nil
}

// Remove deletes the field locally and synchronously removes its visual
// element, then requests deletion from the collaborator. Removing an unknown
// id is a no-op. A failed remote deletion is returned to the caller; the
// optimistic local removal is not rolled back.
func (s *FieldStore) Remove(ctx context.Context, id string) error {
	unlock := s.lockField(id)
	defer unlock()

	s.mu.Lock()
	field := s.lookup(id)
	if field == nil {
		s.mu.Unlock()
		return nil
	}

	fieldID := field.Identity.Current()
	pending := field.Identity.IsPending()
	for i, f := range s.fields {
		if f == field {
			s.fields = append(s.fields[:i], s.fields[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	if s.renderer != nil {
		s.renderer.RemoveField(fieldID)
	}

	if pending {
		return nil
	}

	if err := s.service.DeleteField(ctx, s.documentID, fieldID); err != nil {
		slog.Error("deleting field",
			slog.String("field_id", fieldID),
			slog.String("error", err.Error()))
		return fmt.Errorf("deleting field: %w", err)
	}

	return nil
}

// Get returns a copy of the field known under the given id (temporary or
// server), or the zero value when absent.
func (s *FieldStore) Get(id string) domain.FormField {
	s.mu.Lock()
	defer s.mu.Unlock()

	if field := s.lookup(id); field != nil {
		return *field
	}
	return domain.FormField{}
}

func (s *FieldStore) FieldsForPage(pageNumber int) []domain.FormField {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []domain.FormField
	for _, f := range s.fields {
		if f.PageNumber == pageNumber {
			result = append(result, *f)
		}
	}
	return result
}

func (s *FieldStore) HasLoadedPage(pageNumber int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadedPages[pageNumber]
}

// EnsurePageLoaded fetches a page's fields from the collaborator the first
// time the page is visited; later visits reuse the in-memory set. There is no
// invalidation: a field added externally after the first load will not appear
// without a full reload.
func (s *FieldStore) EnsurePageLoaded(ctx context.Context, pageNumber int) error {
	s.mu.Lock()
	if s.loadedPages[pageNumber] {
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	fields, err := s.service.ListFields(ctx, s.documentID, pageNumber)
	if err != nil {
		return fmt.Errorf("loading fields for page %d: %w", pageNumber, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loadedPages[pageNumber] {
		return nil
	}
	for _, field := range fields {
		if s.lookup(field.Identity.Current()) != nil {
			continue
		}
		f := field
		s.fields = append(s.fields, &f)
	}
	s.loadedPages[pageNumber] = true
	return nil
}

func (s *FieldStore) lookup(id string) *domain.FormField {
	for _, f := range s.fields {
		if f.Identity.Matches(id) {
			return f
		}
	}
	return nil
}

// lockField serializes network-facing mutations per field. The lock is keyed
// by the identity's stable temporary id when one exists, so the queue
// survives the rebind to a server id.
func (s *FieldStore) lockField(id string) func() {
	s.mu.Lock()
	key := id
	if field := s.lookup(id); field != nil && field.Identity.TempID != "" {
		key = field.Identity.TempID
	}
	lock, ok := s.opLocks[key]
	if !ok {
		lock = &sync.Mutex{}
		s.opLocks[key] = lock
	}
	s.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}
