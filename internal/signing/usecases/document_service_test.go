package usecases_test

import (
	"context"
	"strings"

	"signflow-server/internal/infra/async"
	"signflow-server/internal/signing/domain"
	"signflow-server/internal/signing/usecases"
	mocksigning "signflow-server/test/unit/doubles/signing/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("SimpleDocumentService", func() {
	var (
		ctrl          *gomock.Controller
		mockDocuments *mocksigning.MockDocumentRepository
		mockStorage   *mocksigning.MockFileStore
		processor     *stubProcessor
		broker        *async.LocalBroker
		service       usecases.DocumentService
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockDocuments = mocksigning.NewMockDocumentRepository(ctrl)
		mockStorage = mocksigning.NewMockFileStore(ctrl)
		processor = &stubProcessor{pageCount: 4}
		broker = async.NewLocalBroker()
		service = usecases.NewDocumentService(mockDocuments, mockStorage, processor, broker)
	})

	AfterEach(func() {
		broker.Stop()
		ctrl.Finish()
	})

	Context("CreateDocument", func() {
		When("the upload is a readable PDF", func() {
			It("stores the source and records the page count", func() {
				mockStorage.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				mockDocuments.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, document domain.Document) error {
						Expect(document.PageCount).To(Equal(4))
						Expect(document.Status).To(Equal(domain.DocumentStatusDraft))
						Expect(document.SourceKey).To(HavePrefix("documents/"))
						return nil
					})

				document, err := service.CreateDocument(context.Background(), "owner-1", "Lease Agreement", strings.NewReader("%PDF-1.7"))
				Expect(err).NotTo(HaveOccurred())
				Expect(document.Title).To(Equal("Lease Agreement"))
				Expect(document.OwnerID).To(Equal(domain.ID("owner-1")))
			})
		})

		When("the upload is not a PDF", func() {
			It("rejects it before storing anything", func() {
				processor.failOpen = true

				_, err := service.CreateDocument(context.Background(), "owner-1", "Broken", strings.NewReader("junk"))
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("opening uploaded document"))
			})
		})

		When("the title is empty", func() {
			It("returns the domain error", func() {
				_, err := service.CreateDocument(context.Background(), "owner-1", "", strings.NewReader("%PDF-1.7"))
				Expect(err).To(MatchError(domain.ErrDocumentTitleRequired))
			})
		})
	})

	Context("RequestFinalize", func() {
		var document domain.Document

		BeforeEach(func() {
			document = domain.Document{
				ID:        "doc-1",
				OwnerID:   "owner-1",
				Title:     "Lease Agreement",
				Status:    domain.DocumentStatusDraft,
				SourceKey: "documents/doc-1/source.pdf",
				PageCount: 4,
			}
		})

		When("the document is a draft", func() {
			It("freezes placement and publishes the request", func() {
				subscription, err := broker.Subscribe(usecases.TopicDocumentFinalizeRequested)
				Expect(err).NotTo(HaveOccurred())

				mockDocuments.EXPECT().GetByID(gomock.Any(), document.ID).Return(document, nil)
				mockDocuments.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, updated domain.Document) error {
						Expect(updated.Status).To(Equal(domain.DocumentStatusFinalizing))
						return nil
					})

				Expect(service.RequestFinalize(context.Background(), document.ID)).To(Succeed())

				var msg async.BrokerMessage
				Eventually(subscription.Receiver).Should(Receive(&msg))
				event, ok := msg.Value.(domain.DocumentFinalizeRequestedEvent)
				Expect(ok).To(BeTrue())
				Expect(event.DocumentID).To(Equal(document.ID))
			})
		})

		When("the document already left draft", func() {
			It("rejects the request", func() {
				document.Status = domain.DocumentStatusCompleted
				mockDocuments.EXPECT().GetByID(gomock.Any(), document.ID).Return(document, nil)

				err := service.RequestFinalize(context.Background(), document.ID)
				Expect(err).To(MatchError(usecases.ErrDocumentNotDraft))
			})
		})
	})

	Context("OpenFinalized", func() {
		It("refuses documents without a finalized output", func() {
			document := domain.Document{ID: "doc-1", Status: domain.DocumentStatusDraft}
			mockDocuments.EXPECT().GetByID(gomock.Any(), document.ID).Return(document, nil)

			_, err := service.OpenFinalized(context.Background(), document.ID)
			Expect(err).To(MatchError(usecases.ErrDocumentNotFinalized))
		})

		It("opens the stored blob for completed documents", func() {
			document := domain.Document{
				ID:           "doc-1",
				Status:       domain.DocumentStatusCompleted,
				FinalizedKey: "documents/doc-1/finalized.pdf",
			}
			mockDocuments.EXPECT().GetByID(gomock.Any(), document.ID).Return(document, nil)
			mockStorage.EXPECT().Get(gomock.Any(), document.FinalizedKey).Return(newBlob("%PDF-final"), nil)

			rs, err := service.OpenFinalized(context.Background(), document.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(rs).NotTo(BeNil())
		})
	})
})
