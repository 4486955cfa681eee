package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"signflow-server/internal/infra/async"
	"signflow-server/internal/infra/cache"
	"signflow-server/internal/signing/domain"
	"signflow-server/internal/signing/geometry"
)

const pageFieldsTTL = 30 * time.Second

func NewFieldService(
	repository FieldRepository,
	documents DocumentRepository,
	signers SignerRepository,
	pageCache cache.Cache,
	broker async.InternalBroker,
) *SimpleFieldService {
	return &SimpleFieldService{
		repository: repository,
		documents:  documents,
		signers:    signers,
		pageCache:  pageCache,
		broker:     broker,
	}
}

var _ FieldService = &SimpleFieldService{}

type SimpleFieldService struct {
	repository FieldRepository
	documents  DocumentRepository
	signers    SignerRepository
	pageCache  cache.Cache
	broker     async.InternalBroker
}

// ListFields serves a page's fields through the page cache; the singleflight
// loader keeps a burst of page visits from hammering the repository.
func (s *SimpleFieldService) ListFields(ctx context.Context, documentID domain.ID, pageNumber int) ([]domain.FormField, error) {
	value, err := s.pageCache.GetOrSet(ctx, pageFieldsKey(documentID, pageNumber), pageFieldsTTL, func() (any, error) {
		return s.repository.FindAllByPage(ctx, documentID, pageNumber)
	})
	if err != nil {
		slog.Error("listing fields", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing fields: %w", err)
	}

	fields, err := cache.As[[]domain.FormField](value)
	if err != nil {
		return nil, fmt.Errorf("resolving cached fields for page %d: %w", pageNumber, err)
	}
	return fields, nil
}

func (s *SimpleFieldService) ListAllFields(ctx context.Context, documentID domain.ID) ([]domain.FormField, error) {
	fields, err := s.repository.FindAllByDocument(ctx, documentID)
	if err != nil {
		slog.Error("listing all fields", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing all fields: %w", err)
	}
	return fields, nil
}

// CreateField gates a new field on the document being a live draft, the page
// existing, and the target signer belonging to the document. The position is
// clamped into the page before the domain invariants run.
func (s *SimpleFieldService) CreateField(ctx context.Context, documentID domain.ID, draft domain.FormField) (domain.FormField, error) {
	document, err := s.documents.GetByID(ctx, documentID)
	if err != nil {
		return domain.FormField{}, err
	}
	if document.IsDeleted() {
		return domain.FormField{}, ErrDocumentDeleted
	}
	if !document.IsDraft() {
		return domain.FormField{}, ErrDocumentNotDraft
	}
	if draft.PageNumber < 1 || draft.PageNumber > document.PageCount {
		return domain.FormField{}, ErrPageOutOfRange
	}

	signer, err := s.signers.GetByID(ctx, draft.AssignedSignerID)
	if err != nil {
		return domain.FormField{}, err
	}
	if signer.DocumentID != documentID {
		return domain.FormField{}, ErrSignerNotInDocument
	}

	field, err := domain.NewFormFieldBuilder().
		WithDocument(documentID).
		WithFieldType(draft.FieldType).
		WithPageNumber(draft.PageNumber).
		WithAssignedSigner(draft.AssignedSignerID).
		WithPosition(geometry.ClampPercent(draft.Position)).
		WithRequired(draft.Required).
		Build()
	if err != nil {
		return domain.FormField{}, err
	}

	if err := s.repository.Create(ctx, field); err != nil {
		slog.Error("creating field", slog.String("error", err.Error()))
		return domain.FormField{}, fmt.Errorf("creating field: %w", err)
	}

	s.pageCache.Delete(ctx, pageFieldsKey(documentID, field.PageNumber))
	s.publish(ctx, "field_created", domain.FieldCreatedEvent{Field: field})

	slog.Info("field created",
		slog.String("document_id", documentID.String()),
		slog.String("field_id", field.ID()),
		slog.String("type", string(field.FieldType)),
		slog.Int("page", field.PageNumber))

	return field, nil
}

func (s *SimpleFieldService) UpdateFieldPosition(ctx context.Context, documentID domain.ID, fieldID string, position geometry.PercentRect) (domain.FormField, error) {
	document, err := s.documents.GetByID(ctx, documentID)
	if err != nil {
		return domain.FormField{}, err
	}
	if !document.IsDraft() {
		return domain.FormField{}, ErrDocumentNotDraft
	}

	field, err := s.repository.GetByID(ctx, documentID, fieldID)
	if err != nil {
		return domain.FormField{}, err
	}
	if err := field.UpdatePosition(position); err != nil {
		return domain.FormField{}, err
	}

	if err := s.repository.Update(ctx, field); err != nil {
		slog.Error("updating field position", slog.String("error", err.Error()))
		return domain.FormField{}, fmt.Errorf("updating field position: %w", err)
	}

	s.pageCache.Delete(ctx, pageFieldsKey(documentID, field.PageNumber))
	s.publish(ctx, "field_updated", domain.FieldUpdatedEvent{Field: field})

	return field, nil
}

func (s *SimpleFieldService) DeleteField(ctx context.Context, documentID domain.ID, fieldID string) error {
	field, err := s.repository.GetByID(ctx, documentID, fieldID)
	if err != nil {
		return err
	}

	if err := s.repository.Delete(ctx, documentID, fieldID); err != nil {
		slog.Error("deleting field", slog.String("error", err.Error()))
		return fmt.Errorf("deleting field: %w", err)
	}

	s.pageCache.Delete(ctx, pageFieldsKey(documentID, field.PageNumber))
	s.publish(ctx, "field_deleted", domain.FieldDeletedEvent{
		DocumentID: documentID,
		FieldID:    fieldID,
		PageNumber: field.PageNumber,
	})

	slog.Info("field deleted",
		slog.String("document_id", documentID.String()),
		slog.String("field_id", fieldID))
	return nil
}

// CompleteField records a signer's value. When the signer's last incomplete
// field is completed their roster status flips to completed as well.
func (s *SimpleFieldService) CompleteField(ctx context.Context, documentID domain.ID, fieldID string, signerID domain.ID, value string) (domain.FormField, error) {
	field, err := s.repository.GetByID(ctx, documentID, fieldID)
	if err != nil {
		return domain.FormField{}, err
	}

	if err := field.Complete(signerID, value); err != nil {
		return domain.FormField{}, err
	}

	if err := s.repository.Update(ctx, field); err != nil {
		slog.Error("completing field", slog.String("error", err.Error()))
		return domain.FormField{}, fmt.Errorf("completing field: %w", err)
	}

	s.pageCache.Delete(ctx, pageFieldsKey(documentID, field.PageNumber))
	s.publish(ctx, "field_completed", domain.FieldCompletedEvent{Field: field})

	s.refreshSignerStatus(ctx, signerID)

	return field, nil
}

func (s *SimpleFieldService) refreshSignerStatus(ctx context.Context, signerID domain.ID) {
	remaining, err := s.repository.CountIncompleteBySigner(ctx, signerID)
	if err != nil {
		slog.Error("counting incomplete fields", slog.String("error", err.Error()))
		return
	}
	if remaining > 0 {
		return
	}

	signer, err := s.signers.GetByID(ctx, signerID)
	if err != nil {
		slog.Error("getting signer for status refresh", slog.String("error", err.Error()))
		return
	}
	if signer.Status == domain.SignerStatusCompleted {
		return
	}

	signer.MarkCompleted()
	if err := s.signers.Update(ctx, signer); err != nil {
		slog.Error("marking signer completed", slog.String("error", err.Error()))
		return
	}

	slog.Info("signer completed all fields", slog.String("signer_id", signerID.String()))
}

func (s *SimpleFieldService) publish(ctx context.Context, event string, value any) {
	err := s.broker.Publish(ctx, TopicDocumentEvents, async.BrokerMessage{Event: event, Value: value})
	if err != nil {
		slog.Debug("publishing field event", slog.String("event", event), slog.String("error", err.Error()))
	}
}

func pageFieldsKey(documentID domain.ID, pageNumber int) string {
	return fmt.Sprintf("fields:%s:%d", documentID, pageNumber)
}
