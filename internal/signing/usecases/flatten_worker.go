package usecases

import (
	"context"
	"log/slog"

	"signflow-server/internal/infra/async"
	"signflow-server/internal/signing/domain"
)

func NewFlattenWorker(broker async.InternalBroker, finalization FinalizationService) *FlattenWorker {
	return &FlattenWorker{
		broker:       broker,
		finalization: finalization,
	}
}

var _ async.Worker = &FlattenWorker{}

// FlattenWorker consumes finalize requests from the internal broker and runs
// the finalization pipeline for each one.
type FlattenWorker struct {
	broker       async.InternalBroker
	finalization FinalizationService
}

func (w *FlattenWorker) Run(ctx context.Context, done func()) {
	slog.Debug("flatten worker started")
	defer done()

	subscription, err := w.broker.Subscribe(TopicDocumentFinalizeRequested)
	if err != nil {
		slog.Error("subscribing to finalize requests", slog.String("error", err.Error()))
		return
	}

	for {
		select {
		case <-ctx.Done():
			slog.Info("flatten worker cancelled")
			return
		case msg, ok := <-subscription.Receiver:
			if !ok {
				return
			}
			event, ok := msg.Value.(domain.DocumentFinalizeRequestedEvent)
			if !ok {
				slog.Warn("unexpected message on finalize topic", slog.Any("value", msg.Value))
				continue
			}
			w.handle(ctx, event)
		}
	}
}

func (w *FlattenWorker) handle(ctx context.Context, event domain.DocumentFinalizeRequestedEvent) {
	slog.Info("processing finalize request", slog.String("document_id", event.DocumentID.String()))

	if err := w.finalization.Finalize(ctx, event.DocumentID); err != nil {
		slog.Error("finalizing document",
			slog.String("document_id", event.DocumentID.String()),
			slog.String("error", err.Error()))
	}
}

func (w *FlattenWorker) Shutdown() {}
