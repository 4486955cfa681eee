package usecases

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"signflow-server/internal/infra/async"
	"signflow-server/internal/signing/domain"
	"signflow-server/internal/signing/flattening"
)

func NewFinalizationService(
	documents DocumentRepository,
	fields FieldRepository,
	storage FileStore,
	flattener *flattening.Flattener,
	broker async.InternalBroker,
) *SimpleFinalizationService {
	return &SimpleFinalizationService{
		documents: documents,
		fields:    fields,
		storage:   storage,
		flattener: flattener,
		broker:    broker,
	}
}

var _ FinalizationService = &SimpleFinalizationService{}

type SimpleFinalizationService struct {
	documents DocumentRepository
	fields    FieldRepository
	storage   FileStore
	flattener *flattening.Flattener
	broker    async.InternalBroker
}

// Finalize burns the document's completed fields into its source PDF and
// stores the result. A failure rolls the document back to draft so the owner
// can retry; skipped fields are reported, not fatal.
func (s *SimpleFinalizationService) Finalize(ctx context.Context, documentID domain.ID) error {
	document, err := s.documents.GetByID(ctx, documentID)
	if err != nil {
		return err
	}
	if document.Status != domain.DocumentStatusFinalizing {
		return ErrDocumentNotFinalizing
	}

	if err := s.flatten(ctx, &document); err != nil {
		s.markFailed(ctx, document, err)
		return err
	}

	if err := s.documents.Update(ctx, document); err != nil {
		slog.Error("persisting finalized document", slog.String("error", err.Error()))
		return fmt.Errorf("persisting finalized document: %w", err)
	}

	return nil
}

func (s *SimpleFinalizationService) flatten(ctx context.Context, document *domain.Document) error {
	fields, err := s.fields.FindAllByDocument(ctx, document.ID)
	if err != nil {
		return fmt.Errorf("loading fields: %w", err)
	}

	source, err := s.storage.Get(ctx, document.SourceKey)
	if err != nil {
		return fmt.Errorf("opening source document: %w", err)
	}
	defer source.Close()

	var out bytes.Buffer
	report, err := s.flattener.Flatten(source, &out, fields)
	if err != nil {
		return fmt.Errorf("flattening document: %w", err)
	}

	key := finalizedKey(document.ID)
	if err := s.storage.Put(ctx, key, bytes.NewReader(out.Bytes())); err != nil {
		return fmt.Errorf("storing finalized document: %w", err)
	}

	document.MarkFinalized(key)

	event := domain.DocumentFinalizedEvent{
		DocumentID:   document.ID,
		FinalizedKey: key,
		SkippedCount: len(report.Skipped),
	}
	if err := s.broker.Publish(ctx, TopicDocumentEvents, async.BrokerMessage{Event: "document_finalized", Value: event}); err != nil {
		slog.Debug("publishing finalized event", slog.String("error", err.Error()))
	}

	slog.Info("document finalized",
		slog.String("id", document.ID.String()),
		slog.Int("stamped", report.Stamped),
		slog.Int("skipped", len(report.Skipped)))

	return nil
}

func (s *SimpleFinalizationService) markFailed(ctx context.Context, document domain.Document, cause error) {
	slog.Error("finalize failed",
		slog.String("id", document.ID.String()),
		slog.String("error", cause.Error()))

	document.MarkFinalizeFailed()
	if err := s.documents.Update(ctx, document); err != nil {
		slog.Error("resetting document after failed finalize", slog.String("error", err.Error()))
	}

	event := domain.DocumentFinalizeFailedEvent{DocumentID: document.ID, Reason: cause.Error()}
	if err := s.broker.Publish(ctx, TopicDocumentEvents, async.BrokerMessage{Event: "document_finalize_failed", Value: event}); err != nil {
		slog.Debug("publishing finalize failed event", slog.String("error", err.Error()))
	}
}
