package usecases

import (
	"context"
	"io"

	"signflow-server/internal/signing/domain"
	"signflow-server/internal/signing/geometry"
)

//go:generate mockgen -source=./api.go -destination=../../../test/unit/doubles/signing/usecases/api.go -package=usecases -mock_names=DocumentService=MockDocumentService,SignerService=MockSignerService,FieldService=MockFieldService,FinalizationService=MockFinalizationService

type DocumentService interface {
	CreateDocument(ctx context.Context, ownerID domain.ID, title string, source io.Reader) (domain.Document, error)
	GetDocument(ctx context.Context, id domain.ID) (domain.Document, error)
	ListDocuments(ctx context.Context, ownerID domain.ID, pagination Pagination) ([]domain.Document, int, error)
	SoftDeleteDocument(ctx context.Context, id domain.ID) error
	RequestFinalize(ctx context.Context, id domain.ID) error
	OpenFinalized(ctx context.Context, id domain.ID) (io.ReadSeekCloser, error)
}

type SignerService interface {
	AddSigner(ctx context.Context, documentID domain.ID, name, email string) (domain.Signer, error)
	GetSigner(ctx context.Context, documentID, signerID domain.ID) (domain.Signer, error)
	ListSigners(ctx context.Context, documentID domain.ID) ([]domain.Signer, error)
	RemoveSigner(ctx context.Context, documentID, signerID domain.ID) error
}

// FieldService is the server side of the placement engine's field port: the
// first four operations carry the exact signatures the engine calls through.
type FieldService interface {
	ListFields(ctx context.Context, documentID domain.ID, pageNumber int) ([]domain.FormField, error)
	CreateField(ctx context.Context, documentID domain.ID, draft domain.FormField) (domain.FormField, error)
	UpdateFieldPosition(ctx context.Context, documentID domain.ID, fieldID string, position geometry.PercentRect) (domain.FormField, error)
	DeleteField(ctx context.Context, documentID domain.ID, fieldID string) error
	ListAllFields(ctx context.Context, documentID domain.ID) ([]domain.FormField, error)
	CompleteField(ctx context.Context, documentID domain.ID, fieldID string, signerID domain.ID, value string) (domain.FormField, error)
}

type FinalizationService interface {
	Finalize(ctx context.Context, documentID domain.ID) error
}
