package placement

import (
	"context"

	"signflow-server/internal/infra/async"
	"signflow-server/internal/signing/domain"
)

// Engine wires the field store, the gesture session and the viewport
// together for one open document. All collaborators are injected through
// Ports; the engine never reaches into any ambient state.
type Engine struct {
	Store    *FieldStore
	Session  *Session
	Viewport *Viewport
}

func NewEngine(documentID domain.ID, ports Ports) *Engine {
	view := &viewState{page: 1, scale: 1.0, base: ports.Surface.PageSize(1)}
	store := NewFieldStore(documentID, ports.Fields, ports.Renderer)

	return &Engine{
		Store:    store,
		Session:  newSession(store, ports.Renderer, view),
		Viewport: newViewport(store, ports.Renderer, ports.Surface, view),
	}
}

// Open loads and shows the first page.
func (e *Engine) Open(ctx context.Context) error {
	if err := e.Store.EnsurePageLoaded(ctx, e.Viewport.CurrentPage()); err != nil {
		return err
	}
	e.Viewport.showPage()
	return nil
}

const (
	TopicPageChanged  async.BrokerTopicName = "viewer.page_changed"
	TopicScaleChanged async.BrokerTopicName = "viewer.scale_changed"
)

var _ async.Worker = (*ViewerEventDispatcher)(nil)

// ViewerEventDispatcher forwards typed viewer events from the internal
// broker to the viewport, for embeddings where the PDF viewer publishes its
// signals instead of calling the engine directly.
type ViewerEventDispatcher struct {
	broker   async.InternalBroker
	viewport *Viewport
}

func NewViewerEventDispatcher(broker async.InternalBroker, engine *Engine) *ViewerEventDispatcher {
	return &ViewerEventDispatcher{
		broker:   broker,
		viewport: engine.Viewport,
	}
}

func (d *ViewerEventDispatcher) Run(ctx context.Context, done func()) {
	defer done()

	pages, err := d.broker.Subscribe(TopicPageChanged)
	if err != nil {
		return
	}
	scales, err := d.broker.Subscribe(TopicScaleChanged)
	if err != nil {
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-pages.Receiver:
			if !ok {
				return
			}
			if event, ok := msg.Value.(domain.PageChangedEvent); ok {
				d.viewport.HandlePageChanged(ctx, event.Page)
			}
		case msg, ok := <-scales.Receiver:
			if !ok {
				return
			}
			if event, ok := msg.Value.(domain.ScaleChangedEvent); ok {
				d.viewport.HandleScaleChanged(event.Scale)
			}
		}
	}
}

func (d *ViewerEventDispatcher) Shutdown() {}
