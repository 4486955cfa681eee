package usecases

import (
	"context"
	"fmt"
	"log/slog"

	"signflow-server/internal/signing/domain"
)

func NewSignerService(repository SignerRepository, documents DocumentRepository, fields FieldRepository) *SimpleSignerService {
	return &SimpleSignerService{
		repository: repository,
		documents:  documents,
		fields:     fields,
	}
}

var _ SignerService = &SimpleSignerService{}

type SimpleSignerService struct {
	repository SignerRepository
	documents  DocumentRepository
	fields     FieldRepository
}

// AddSigner appends a participant to the document's roster. The display index
// is allocated sequentially so clients can color-code signers consistently.
func (s *SimpleSignerService) AddSigner(ctx context.Context, documentID domain.ID, name, email string) (domain.Signer, error) {
	document, err := s.documents.GetByID(ctx, documentID)
	if err != nil {
		return domain.Signer{}, err
	}
	if document.IsDeleted() {
		return domain.Signer{}, ErrDocumentDeleted
	}
	if !document.IsDraft() {
		return domain.Signer{}, ErrDocumentNotDraft
	}

	count, err := s.repository.CountByDocument(ctx, documentID)
	if err != nil {
		slog.Error("counting signers", slog.String("error", err.Error()))
		return domain.Signer{}, fmt.Errorf("counting signers: %w", err)
	}

	signer, err := domain.NewSignerBuilder().
		WithDocument(documentID).
		WithName(name).
		WithEmail(email).
		WithDisplayIndex(count).
		Build()
	if err != nil {
		return domain.Signer{}, err
	}

	if err := s.repository.Create(ctx, signer); err != nil {
		slog.Error("creating signer", slog.String("error", err.Error()))
		return domain.Signer{}, fmt.Errorf("creating signer: %w", err)
	}

	slog.Info("signer added",
		slog.String("document_id", documentID.String()),
		slog.String("signer_id", signer.ID.String()),
		slog.Int("display_index", signer.DisplayIndex))

	return signer, nil
}

func (s *SimpleSignerService) GetSigner(ctx context.Context, documentID, signerID domain.ID) (domain.Signer, error) {
	signer, err := s.repository.GetByID(ctx, signerID)
	if err != nil {
		return domain.Signer{}, err
	}
	if signer.DocumentID != documentID {
		return domain.Signer{}, ErrSignerNotInDocument
	}
	return signer, nil
}

func (s *SimpleSignerService) ListSigners(ctx context.Context, documentID domain.ID) ([]domain.Signer, error) {
	signers, err := s.repository.FindAllByDocument(ctx, documentID)
	if err != nil {
		slog.Error("listing signers", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing signers: %w", err)
	}
	return signers, nil
}

// RemoveSigner refuses to drop a signer who still has fields placed for them;
// the fields must be deleted or reassigned first.
func (s *SimpleSignerService) RemoveSigner(ctx context.Context, documentID, signerID domain.ID) error {
	signer, err := s.repository.GetByID(ctx, signerID)
	if err != nil {
		return err
	}
	if signer.DocumentID != documentID {
		return ErrSignerNotInDocument
	}

	count, err := s.fields.CountBySigner(ctx, signerID)
	if err != nil {
		slog.Error("counting signer fields", slog.String("error", err.Error()))
		return fmt.Errorf("counting signer fields: %w", err)
	}
	if count > 0 {
		return ErrSignerHasFields
	}

	if err := s.repository.Delete(ctx, signerID); err != nil {
		slog.Error("removing signer", slog.String("error", err.Error()))
		return fmt.Errorf("removing signer: %w", err)
	}

	slog.Info("signer removed",
		slog.String("document_id", documentID.String()),
		slog.String("signer_id", signerID.String()))
	return nil
}
