package placement

import (
	"context"
	"errors"
	"log/slog"

	"signflow-server/internal/signing/domain"
	"signflow-server/internal/signing/geometry"
)

var (
	ErrNoSignerSelected = errors.New("no signer selected")
	ErrNoGestureActive  = errors.New("no gesture in progress")
)

type State int

const (
	StateIdle State = iota
	StateTypeSelected
	StateDrawing
	StateResizing
)

// Handle names one of the eight compass-point resize handles on a field's
// border. Corner handles move two edges, edge handles move one.
type Handle string

const (
	HandleNorthWest Handle = "nw"
	HandleNorth     Handle = "n"
	HandleNorthEast Handle = "ne"
	HandleEast      Handle = "e"
	HandleSouthEast Handle = "se"
	HandleSouth     Handle = "s"
	HandleSouthWest Handle = "sw"
	HandleWest      Handle = "w"
)

// resizeFloor is the smallest a field may be dragged to on either axis.
const resizeFloor = 30.0

type activeDrag struct {
	anchor geometry.Point
	cursor geometry.Point
	rect   geometry.Rect
}

type activeResize struct {
	fieldID      string
	handle       Handle
	startRect    geometry.Rect
	liveRect     geometry.Rect
	prevPosition geometry.PercentRect
}

// Session is the placement interaction state machine. It consumes pointer
// and keyboard events, disambiguates clicks from drags through the field
// geometry policy, and commits finished gestures to the field store in
// percent space. Only one gesture can be active at a time; pointer-downs
// during an active gesture are ignored.
type Session struct {
	store    *FieldStore
	renderer SurfaceRenderer
	view     *viewState

	state           State
	selectedType    domain.FieldType
	selectedSigner  domain.ID
	repeatPlacement bool

	drag   *activeDrag
	resize *activeResize
}

func newSession(store *FieldStore, renderer SurfaceRenderer, view *viewState) *Session {
	return &Session{
		store:    store,
		renderer: renderer,
		view:     view,
	}
}

func (s *Session) State() State {
	return s.state
}

// SelectSigner picks the signer new fields are assigned to. It never changes
// the gesture state.
func (s *Session) SelectSigner(id domain.ID) {
	s.selectedSigner = id
}

// CanSelectFieldType drives the toolbar's activation affordance: field
// creation stays disabled until a signer is chosen.
func (s *Session) CanSelectFieldType() bool {
	return s.selectedSigner != ""
}

// SelectFieldType arms the session for drawing. The request is rejected with
// no state change while no signer is selected.
func (s *Session) SelectFieldType(ft domain.FieldType) error {
	if s.selectedSigner == "" {
		return ErrNoSignerSelected
	}
	if !ft.Valid() {
		return domain.ErrUnknownFieldType
	}
	if s.state == StateDrawing || s.state == StateResizing {
		return nil
	}
	s.selectedType = ft
	s.state = StateTypeSelected
	return nil
}

// SetRepeatPlacement keeps the toolbar selection armed after each placement
// instead of clearing it.
func (s *Session) SetRepeatPlacement(enabled bool) {
	s.repeatPlacement = enabled
}

// PointerDown begins a drawing gesture when a field type is armed and the
// point lies inside the rendering surface. Events outside the surface, or
// arriving while a gesture is already active, are silently refused.
func (s *Session) PointerDown(p geometry.Point) {
	if s.state != StateTypeSelected {
		return
	}
	surface := s.view.renderedSurface()
	if p.X < 0 || p.Y < 0 || p.X > surface.Width || p.Y > surface.Height {
		return
	}

	s.drag = &activeDrag{anchor: p, cursor: p, rect: geometry.Rect{X: p.X, Y: p.Y}}
	s.state = StateDrawing
	s.renderer.DrawSelection(s.drag.rect)
}

// BeginResize grabs one of a field's resize handles. A handle grab takes
// precedence over a drawing gesture on the same pointer-down, so callers
// must route the event here first; the armed type selection is left intact.
func (s *Session) BeginResize(fieldID string, handle Handle) error {
	if s.state == StateDrawing || s.state == StateResizing {
		return nil
	}

	field := s.store.Get(fieldID)
	if field.ID() == "" {
		return ErrFieldUnknown
	}

	start := s.view.renderedRect(field.Position)
	s.resize = &activeResize{
		fieldID:      fieldID,
		handle:       handle,
		startRect:    start,
		liveRect:     start,
		prevPosition: field.Position,
	}
	s.state = StateResizing
	return nil
}

// PointerMove live-updates the active gesture's rectangle.
func (s *Session) PointerMove(p geometry.Point) {
	switch s.state {
	case StateDrawing:
		s.drag.cursor = p
		s.drag.rect = geometry.BoundingBox(s.drag.anchor, p)
		s.renderer.DrawSelection(s.drag.rect)
	case StateResizing:
		s.resize.liveRect = resizeRect(s.resize.startRect, s.resize.handle, p)
		s.renderer.ShowField(s.store.Get(s.resize.fieldID), s.resize.liveRect)
	}
}

// PointerUp commits the active gesture. A finished drawing gesture resolves
// the final rectangle through the geometry policy, clamps it to the surface,
// converts it to percent space and persists it; the created field is
// returned. A finished resize issues a partial position update. Persistence
// failures are surfaced as the returned error while the optimistic local
// state stays in place.
func (s *Session) PointerUp(ctx context.Context) (domain.FormField, error) {
	switch s.state {
	case StateDrawing:
		return s.commitDrawing(ctx)
	case StateResizing:
		return domain.FormField{}, s.commitResize(ctx)
	default:
		return domain.FormField{}, ErrNoGestureActive
	}
}

// Cancel aborts the gesture in progress without any network call. A
// cancelled resize restores the pre-resize position.
func (s *Session) Cancel() {
	switch s.state {
	case StateDrawing:
		s.drag = nil
		s.renderer.ClearSelection()
		s.state = StateIdle
	case StateResizing:
		field := s.store.Get(s.resize.fieldID)
		s.renderer.ShowField(field, s.view.renderedRect(s.resize.prevPosition))
		s.resize = nil
		s.state = StateIdle
	case StateTypeSelected:
		s.selectedType = ""
		s.state = StateIdle
	}
}

func (s *Session) commitDrawing(ctx context.Context) (domain.FormField, error) {
	drag := s.drag
	s.drag = nil
	s.renderer.ClearSelection()

	surface := s.view.renderedSurface()
	rect := domain.ResolveDrawnRect(drag.anchor, drag.cursor, s.selectedType)
	rect = geometry.ClampToSurface(rect, surface)
	position := geometry.PixelsToPercent(surface, rect)

	draft := domain.FormField{
		FieldType:        s.selectedType,
		PageNumber:       s.view.page,
		AssignedSignerID: s.selectedSigner,
		Position:         position,
		Required:         true,
	}

	if s.repeatPlacement {
		s.state = StateTypeSelected
	} else {
		s.selectedType = ""
		s.state = StateIdle
	}

	field, err := s.store.CommitDraft(ctx, draft)
	if err != nil {
		slog.Warn("field kept locally, not persisted",
			slog.String("field_id", field.ID()),
			slog.String("error", err.Error()))
	}
	s.renderer.ShowField(field, s.view.renderedRect(field.Position))
	return field, err
}

func (s *Session) commitResize(ctx context.Context) error {
	resize := s.resize
	s.resize = nil
	s.state = StateIdle

	surface := s.view.renderedSurface()
	rect := geometry.ClampToSurface(resize.liveRect, surface)
	position := geometry.PixelsToPercent(surface, rect)

	err := s.store.UpdatePosition(ctx, resize.fieldID, position)
	if err != nil {
		s.renderer.ShowField(s.store.Get(resize.fieldID), s.view.renderedRect(resize.prevPosition))
		return err
	}

	s.renderer.ShowField(s.store.Get(resize.fieldID), s.view.renderedRect(position))
	return nil
}

// resizeRect recomputes a rectangle from its pre-gesture shape, the grabbed
// handle and the cursor position. Handles containing a west or north
// component move the left or top edge; east and south move the opposite
// edges. Both dimensions are floored so a field can never collapse.
func resizeRect(start geometry.Rect, handle Handle, p geometry.Point) geometry.Rect {
	r := start
	right := start.X + start.Width
	bottom := start.Y + start.Height

	for _, c := range handle {
		switch c {
		case 'w':
			r.Width = max(right-p.X, resizeFloor)
			r.X = right - r.Width
		case 'e':
			r.Width = max(p.X-start.X, resizeFloor)
		case 'n':
			r.Height = max(bottom-p.Y, resizeFloor)
			r.Y = bottom - r.Height
		case 's':
			r.Height = max(p.Y-start.Y, resizeFloor)
		}
	}
	return r
}
