package usecases

import (
	"context"
	"errors"
	"time"

	"signflow-server/internal/signing/domain"
)

//go:generate mockgen -source=repository_port.go -destination=../../../test/unit/doubles/signing/usecases/repository_port_mock.go -package=usecases -mock_names=DocumentRepository=MockDocumentRepository,SignerRepository=MockSignerRepository,FieldRepository=MockFieldRepository

var (
	ErrDocumentNotFound      = errors.New("document not found")
	ErrDocumentNotDraft      = errors.New("document is not in draft")
	ErrDocumentDeleted       = errors.New("document is soft deleted")
	ErrDocumentNotFinalized  = errors.New("document has no finalized output")
	ErrDocumentNotFinalizing = errors.New("document is not being finalized")
	ErrSignerNotFound        = errors.New("signer not found")
	ErrSignerNotInDocument   = errors.New("signer does not belong to document")
	ErrSignerHasFields       = errors.New("signer still has placed fields")
	ErrFieldNotFound         = errors.New("field not found")
	ErrPageOutOfRange        = errors.New("page number outside document")
)

// Pagination encapsulates pagination parameters for repository queries
type Pagination struct {
	Limit  int
	Offset int
}

type DocumentRepository interface {
	Create(ctx context.Context, document domain.Document) error
	GetByID(ctx context.Context, id domain.ID) (domain.Document, error)
	Update(ctx context.Context, document domain.Document) error
	FindAllByOwner(ctx context.Context, ownerID domain.ID, pagination Pagination) ([]domain.Document, int, error)
	FindAllDeletedBefore(ctx context.Context, cutoff time.Time) ([]domain.Document, error)
	HardDelete(ctx context.Context, id domain.ID) error
}

type SignerRepository interface {
	Create(ctx context.Context, signer domain.Signer) error
	GetByID(ctx context.Context, id domain.ID) (domain.Signer, error)
	Update(ctx context.Context, signer domain.Signer) error
	Delete(ctx context.Context, id domain.ID) error
	FindAllByDocument(ctx context.Context, documentID domain.ID) ([]domain.Signer, error)
	CountByDocument(ctx context.Context, documentID domain.ID) (int, error)
}

type FieldRepository interface {
	Create(ctx context.Context, field domain.FormField) error
	GetByID(ctx context.Context, documentID domain.ID, fieldID string) (domain.FormField, error)
	Update(ctx context.Context, field domain.FormField) error
	Delete(ctx context.Context, documentID domain.ID, fieldID string) error
	FindAllByDocument(ctx context.Context, documentID domain.ID) ([]domain.FormField, error)
	FindAllByPage(ctx context.Context, documentID domain.ID, pageNumber int) ([]domain.FormField, error)
	CountBySigner(ctx context.Context, signerID domain.ID) (int, error)
	CountIncompleteBySigner(ctx context.Context, signerID domain.ID) (int, error)
}
