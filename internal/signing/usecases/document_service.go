package usecases

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	"signflow-server/internal/infra/async"
	"signflow-server/internal/infra/pdf"
	"signflow-server/internal/signing/domain"
)

const (
	// TopicDocumentFinalizeRequested carries finalize requests from the API
	// to the flatten worker.
	TopicDocumentFinalizeRequested async.BrokerTopicName = "documents.finalize_requested"

	// TopicDocumentEvents fans field and document lifecycle events out to
	// websocket subscribers.
	TopicDocumentEvents async.BrokerTopicName = "documents.events"
)

func NewDocumentService(
	repository DocumentRepository,
	storage FileStore,
	processor pdf.Processor,
	broker async.InternalBroker,
) *SimpleDocumentService {
	return &SimpleDocumentService{
		repository: repository,
		storage:    storage,
		processor:  processor,
		broker:     broker,
	}
}

var _ DocumentService = &SimpleDocumentService{}

type SimpleDocumentService struct {
	repository DocumentRepository
	storage    FileStore
	processor  pdf.Processor
	broker     async.InternalBroker
}

func (s *SimpleDocumentService) CreateDocument(ctx context.Context, ownerID domain.ID, title string, source io.Reader) (domain.Document, error) {
	data, err := io.ReadAll(source)
	if err != nil {
		return domain.Document{}, fmt.Errorf("reading upload: %w", err)
	}

	doc, err := s.processor.Open(bytes.NewReader(data))
	if err != nil {
		slog.Warn("rejecting upload", slog.String("title", title), slog.String("error", err.Error()))
		return domain.Document{}, fmt.Errorf("opening uploaded document: %w", err)
	}

	document, err := domain.NewDocumentBuilder().
		WithOwner(ownerID).
		WithTitle(title).
		WithPageCount(doc.PageCount()).
		Build()
	if err != nil {
		return domain.Document{}, err
	}
	document.SourceKey = sourceKey(document.ID)

	if err := s.storage.Put(ctx, document.SourceKey, bytes.NewReader(data)); err != nil {
		slog.Error("storing upload", slog.String("error", err.Error()))
		return domain.Document{}, fmt.Errorf("storing upload: %w", err)
	}

	if err := s.repository.Create(ctx, document); err != nil {
		slog.Error("creating document", slog.String("error", err.Error()))
		return domain.Document{}, fmt.Errorf("creating document: %w", err)
	}

	slog.Info("document created successfully",
		slog.String("id", document.ID.String()),
		slog.String("title", document.Title),
		slog.Int("pages", document.PageCount))

	return document, nil
}

func (s *SimpleDocumentService) GetDocument(ctx context.Context, id domain.ID) (domain.Document, error) {
	document, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return domain.Document{}, err
	}
	return document, nil
}

func (s *SimpleDocumentService) ListDocuments(ctx context.Context, ownerID domain.ID, pagination Pagination) ([]domain.Document, int, error) {
	documents, total, err := s.repository.FindAllByOwner(ctx, ownerID, pagination)
	if err != nil {
		slog.Error("listing documents", slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("listing documents: %w", err)
	}
	return documents, total, nil
}

func (s *SimpleDocumentService) SoftDeleteDocument(ctx context.Context, id domain.ID) error {
	document, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if document.IsDeleted() {
		return ErrDocumentDeleted
	}

	document.SoftDelete()
	if err := s.repository.Update(ctx, document); err != nil {
		slog.Error("soft deleting document", slog.String("error", err.Error()))
		return fmt.Errorf("soft deleting document: %w", err)
	}

	slog.Info("document soft deleted", slog.String("id", id.String()))
	return nil
}

// RequestFinalize freezes field placement and hands the document to the
// flatten worker through the internal broker.
func (s *SimpleDocumentService) RequestFinalize(ctx context.Context, id domain.ID) error {
	document, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if document.IsDeleted() {
		return ErrDocumentDeleted
	}
	if !document.IsDraft() {
		return ErrDocumentNotDraft
	}

	document.RequestFinalize()
	if err := s.repository.Update(ctx, document); err != nil {
		slog.Error("requesting finalize", slog.String("error", err.Error()))
		return fmt.Errorf("requesting finalize: %w", err)
	}

	event := domain.DocumentFinalizeRequestedEvent{DocumentID: document.ID}
	if err := s.broker.Publish(ctx, TopicDocumentFinalizeRequested, async.BrokerMessage{Event: "finalize_requested", Value: event}); err != nil {
		slog.Warn("publishing finalize request", slog.String("error", err.Error()))
	}

	slog.Info("finalize requested", slog.String("id", id.String()))
	return nil
}

func (s *SimpleDocumentService) OpenFinalized(ctx context.Context, id domain.ID) (io.ReadSeekCloser, error) {
	document, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if document.Status != domain.DocumentStatusCompleted || document.FinalizedKey == "" {
		return nil, ErrDocumentNotFinalized
	}

	rs, err := s.storage.Get(ctx, document.FinalizedKey)
	if err != nil {
		slog.Error("opening finalized document", slog.String("error", err.Error()))
		return nil, fmt.Errorf("opening finalized document: %w", err)
	}
	return rs, nil
}

func sourceKey(id domain.ID) string {
	return fmt.Sprintf("documents/%s/source.pdf", id)
}

func finalizedKey(id domain.ID) string {
	return fmt.Sprintf("documents/%s/finalized.pdf", id)
}
