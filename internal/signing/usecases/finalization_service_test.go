package usecases_test

import (
	"context"
	"time"

	"signflow-server/internal/infra/async"
	"signflow-server/internal/signing/domain"
	"signflow-server/internal/signing/flattening"
	"signflow-server/internal/signing/geometry"
	"signflow-server/internal/signing/usecases"
	mocksigning "signflow-server/test/unit/doubles/signing/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("SimpleFinalizationService", func() {
	var (
		ctrl          *gomock.Controller
		mockDocuments *mocksigning.MockDocumentRepository
		mockFields    *mocksigning.MockFieldRepository
		mockStorage   *mocksigning.MockFileStore
		processor     *stubProcessor
		broker        *async.LocalBroker
		service       usecases.FinalizationService
		document      domain.Document
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockDocuments = mocksigning.NewMockDocumentRepository(ctrl)
		mockFields = mocksigning.NewMockFieldRepository(ctrl)
		mockStorage = mocksigning.NewMockFileStore(ctrl)
		processor = &stubProcessor{pageCount: 2}
		broker = async.NewLocalBroker()
		service = usecases.NewFinalizationService(
			mockDocuments,
			mockFields,
			mockStorage,
			flattening.NewFlattener(processor),
			broker,
		)

		document = domain.Document{
			ID:        "doc-1",
			OwnerID:   "owner-1",
			Title:     "Lease Agreement",
			Status:    domain.DocumentStatusFinalizing,
			SourceKey: "documents/doc-1/source.pdf",
			PageCount: 2,
		}
	})

	AfterEach(func() {
		broker.Stop()
		ctrl.Finish()
	})

	completed := func(page int) domain.FormField {
		now := time.Now()
		return domain.FormField{
			Identity:         domain.CommittedIdentity("field-1"),
			DocumentID:       document.ID,
			FieldType:        domain.FieldTypeDate,
			PageNumber:       page,
			AssignedSignerID: "signer-1",
			Position:         geometry.PercentRect{X: 10, Y: 10, Width: 15, Height: 5},
			Value:            "2026-08-31",
			Completed:        true,
			CompletedAt:      &now,
		}
	}

	When("the document is being finalized", func() {
		It("stamps the source and marks the document completed", func() {
			mockDocuments.EXPECT().GetByID(gomock.Any(), document.ID).Return(document, nil)
			mockFields.EXPECT().FindAllByDocument(gomock.Any(), document.ID).Return([]domain.FormField{completed(1)}, nil)
			mockStorage.EXPECT().Get(gomock.Any(), document.SourceKey).Return(newBlob("%PDF-source"), nil)
			mockStorage.EXPECT().Put(gomock.Any(), "documents/doc-1/finalized.pdf", gomock.Any()).Return(nil)
			mockDocuments.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, updated domain.Document) error {
					Expect(updated.Status).To(Equal(domain.DocumentStatusCompleted))
					Expect(updated.FinalizedKey).To(Equal("documents/doc-1/finalized.pdf"))
					return nil
				})

			Expect(service.Finalize(context.Background(), document.ID)).To(Succeed())
			Expect(processor.stamped).To(HaveLen(1))
		})
	})

	When("the flatten pipeline fails", func() {
		It("rolls the document back to draft", func() {
			processor.failOpen = true
			mockDocuments.EXPECT().GetByID(gomock.Any(), document.ID).Return(document, nil)
			mockFields.EXPECT().FindAllByDocument(gomock.Any(), document.ID).Return([]domain.FormField{completed(1)}, nil)
			mockStorage.EXPECT().Get(gomock.Any(), document.SourceKey).Return(newBlob("junk"), nil)
			mockDocuments.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, updated domain.Document) error {
					Expect(updated.Status).To(Equal(domain.DocumentStatusDraft))
					return nil
				})

			err := service.Finalize(context.Background(), document.ID)
			Expect(err).To(HaveOccurred())
		})
	})

	When("the document is not in the finalizing state", func() {
		It("refuses to run", func() {
			document.Status = domain.DocumentStatusDraft
			mockDocuments.EXPECT().GetByID(gomock.Any(), document.ID).Return(document, nil)

			err := service.Finalize(context.Background(), document.ID)
			Expect(err).To(MatchError(usecases.ErrDocumentNotFinalizing))
		})
	})
})
