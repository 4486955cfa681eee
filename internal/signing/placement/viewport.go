package placement

import (
	"context"
	"log/slog"

	"signflow-server/internal/signing/geometry"
)

// viewState is the shared view of the PDF viewer: current page, zoom factor
// and the page's base pixel size at scale 1.0. The session reads it to
// convert pointer coordinates; the viewport owns its updates.
type viewState struct {
	page  int
	scale float64
	base  geometry.Size
}

func (v *viewState) renderedSurface() geometry.Size {
	return geometry.Size{Width: v.base.Width * v.scale, Height: v.base.Height * v.scale}
}

// renderedRect projects a stored percent position onto the surface at the
// current zoom. Equivalent to converting at scale 1.0 and applying a
// top-left-anchored scale transform, so reverting to 1.0 restores the exact
// original placement.
func (v *viewState) renderedRect(position geometry.PercentRect) geometry.Rect {
	return geometry.Scale(geometry.PercentToPixels(v.base, position), v.scale)
}

// Viewport reacts to page-change and scale-change signals from the PDF
// viewer, keeping every visible field's on-screen rectangle consistent
// without touching the stored percent positions.
type Viewport struct {
	store    *FieldStore
	renderer SurfaceRenderer
	surface  ViewerSurface
	view     *viewState
}

func newViewport(store *FieldStore, renderer SurfaceRenderer, surface ViewerSurface, view *viewState) *Viewport {
	return &Viewport{
		store:    store,
		renderer: renderer,
		surface:  surface,
		view:     view,
	}
}

func (v *Viewport) CurrentPage() int {
	return v.view.page
}

func (v *Viewport) CurrentScale() float64 {
	return v.view.scale
}

// HandlePageChanged hides the fields of the page being left, loads the new
// page's fields on first visit and shows them with the current scale
// re-applied. A signal for the page already shown is a no-op.
func (v *Viewport) HandlePageChanged(ctx context.Context, page int) error {
	if page == v.view.page {
		return nil
	}

	for _, field := range v.store.FieldsForPage(v.view.page) {
		v.renderer.HideField(field.ID())
	}

	v.view.page = page
	v.view.base = v.surface.PageSize(page)

	if err := v.store.EnsurePageLoaded(ctx, page); err != nil {
		slog.Error("loading fields for page",
			slog.Int("page", page),
			slog.String("error", err.Error()))
		return err
	}

	v.showPage()
	return nil
}

// HandleScaleChanged re-applies the visual transform to the fields on the
// active page. Stored percent positions are never mutated by zooming, so
// returning to scale 1.0 restores original placement with no drift.
func (v *Viewport) HandleScaleChanged(scale float64) {
	if scale == v.view.scale || scale <= 0 {
		return
	}
	v.view.scale = scale
	v.showPage()
}

func (v *Viewport) showPage() {
	for _, field := range v.store.FieldsForPage(v.view.page) {
		v.renderer.ShowField(field, v.view.renderedRect(field.Position))
	}
}
