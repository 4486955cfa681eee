package usecases_test

import (
	"context"

	"signflow-server/internal/infra/async"
	"signflow-server/internal/infra/cache"
	"signflow-server/internal/signing/domain"
	"signflow-server/internal/signing/geometry"
	"signflow-server/internal/signing/usecases"
	mocksigning "signflow-server/test/unit/doubles/signing/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("SimpleFieldService", func() {
	var (
		ctrl          *gomock.Controller
		mockFields    *mocksigning.MockFieldRepository
		mockDocuments *mocksigning.MockDocumentRepository
		mockSigners   *mocksigning.MockSignerRepository
		broker        *async.LocalBroker
		service       usecases.FieldService
		document      domain.Document
		signer        domain.Signer
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockFields = mocksigning.NewMockFieldRepository(ctrl)
		mockDocuments = mocksigning.NewMockDocumentRepository(ctrl)
		mockSigners = mocksigning.NewMockSignerRepository(ctrl)
		broker = async.NewLocalBroker()

		pageCache, err := cache.New(nil)
		Expect(err).NotTo(HaveOccurred())

		service = usecases.NewFieldService(mockFields, mockDocuments, mockSigners, pageCache, broker)

		document = domain.Document{
			ID:        "doc-1",
			OwnerID:   "owner-1",
			Title:     "Lease Agreement",
			Status:    domain.DocumentStatusDraft,
			PageCount: 3,
		}
		signer = domain.Signer{
			ID:         "signer-1",
			DocumentID: document.ID,
			Name:       "Alex Doe",
			Email:      "alex@example.com",
		}
	})

	AfterEach(func() {
		broker.Stop()
		ctrl.Finish()
	})

	draft := func(page int, position geometry.PercentRect) domain.FormField {
		return domain.FormField{
			FieldType:        domain.FieldTypeText,
			PageNumber:       page,
			AssignedSignerID: "signer-1",
			Position:         position,
			Required:         true,
		}
	}

	Context("CreateField", func() {
		When("the draft satisfies every gate", func() {
			It("persists the field and publishes a creation event", func() {
				subscription, err := broker.Subscribe(usecases.TopicDocumentEvents)
				Expect(err).NotTo(HaveOccurred())

				mockDocuments.EXPECT().GetByID(gomock.Any(), document.ID).Return(document, nil)
				mockSigners.EXPECT().GetByID(gomock.Any(), signer.ID).Return(signer, nil)
				mockFields.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

				field, err := service.CreateField(context.Background(), document.ID, draft(1, geometry.PercentRect{X: 5, Y: 6.25, Width: 15, Height: 5}))
				Expect(err).NotTo(HaveOccurred())
				Expect(field.ID()).NotTo(BeEmpty())
				Expect(field.DocumentID).To(Equal(document.ID))

				var msg async.BrokerMessage
				Eventually(subscription.Receiver).Should(Receive(&msg))
				Expect(msg.Event).To(Equal("field_created"))
			})
		})

		When("the position leaks past the page edge", func() {
			It("clamps before validating", func() {
				mockDocuments.EXPECT().GetByID(gomock.Any(), document.ID).Return(document, nil)
				mockSigners.EXPECT().GetByID(gomock.Any(), signer.ID).Return(signer, nil)
				mockFields.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

				field, err := service.CreateField(context.Background(), document.ID, draft(1, geometry.PercentRect{X: 95, Y: 10, Width: 20, Height: 5}))
				Expect(err).NotTo(HaveOccurred())
				Expect(field.Position.X).To(BeNumerically("~", 80.0, 1e-9))
				Expect(field.Position.Width).To(BeNumerically("~", 20.0, 1e-9))
			})
		})

		When("the page is outside the document", func() {
			It("rejects the draft", func() {
				mockDocuments.EXPECT().GetByID(gomock.Any(), document.ID).Return(document, nil)

				_, err := service.CreateField(context.Background(), document.ID, draft(9, geometry.PercentRect{X: 5, Y: 5, Width: 10, Height: 5}))
				Expect(err).To(MatchError(usecases.ErrPageOutOfRange))
			})
		})

		When("the signer belongs to another document", func() {
			It("rejects the draft", func() {
				foreign := signer
				foreign.DocumentID = "doc-other"
				mockDocuments.EXPECT().GetByID(gomock.Any(), document.ID).Return(document, nil)
				mockSigners.EXPECT().GetByID(gomock.Any(), signer.ID).Return(foreign, nil)

				_, err := service.CreateField(context.Background(), document.ID, draft(1, geometry.PercentRect{X: 5, Y: 5, Width: 10, Height: 5}))
				Expect(err).To(MatchError(usecases.ErrSignerNotInDocument))
			})
		})

		When("placement is frozen", func() {
			It("rejects the draft", func() {
				document.Status = domain.DocumentStatusFinalizing
				mockDocuments.EXPECT().GetByID(gomock.Any(), document.ID).Return(document, nil)

				_, err := service.CreateField(context.Background(), document.ID, draft(1, geometry.PercentRect{X: 5, Y: 5, Width: 10, Height: 5}))
				Expect(err).To(MatchError(usecases.ErrDocumentNotDraft))
			})
		})
	})

	Context("ListFields", func() {
		It("serves the page through the cache loader", func() {
			stored := domain.FormField{
				Identity:         domain.CommittedIdentity("field-1"),
				DocumentID:       document.ID,
				FieldType:        domain.FieldTypeText,
				PageNumber:       2,
				AssignedSignerID: signer.ID,
				Position:         geometry.PercentRect{X: 5, Y: 5, Width: 10, Height: 5},
			}
			mockFields.EXPECT().FindAllByPage(gomock.Any(), document.ID, 2).Return([]domain.FormField{stored}, nil)

			fields, err := service.ListFields(context.Background(), document.ID, 2)
			Expect(err).NotTo(HaveOccurred())
			Expect(fields).To(HaveLen(1))
			Expect(fields[0].ID()).To(Equal("field-1"))
		})

		It("keeps serving typed fields once the cache returns encoded entries", func() {
			stored := domain.FormField{
				Identity:         domain.CommittedIdentity("field-1"),
				DocumentID:       document.ID,
				FieldType:        domain.FieldTypeText,
				PageNumber:       2,
				AssignedSignerID: signer.ID,
				Position:         geometry.PercentRect{X: 5, Y: 5, Width: 10, Height: 5},
			}
			mockFields.EXPECT().FindAllByPage(gomock.Any(), document.ID, 2).Return([]domain.FormField{stored}, nil).Times(1)

			encoded := newEncodingCache()
			encodedService := usecases.NewFieldService(mockFields, mockDocuments, mockSigners, encoded, broker)

			fields, err := encodedService.ListFields(context.Background(), document.ID, 2)
			Expect(err).NotTo(HaveOccurred())
			Expect(fields).To(HaveLen(1))

			fields, err = encodedService.ListFields(context.Background(), document.ID, 2)
			Expect(err).NotTo(HaveOccurred())
			Expect(fields).To(HaveLen(1))
			Expect(fields[0].ID()).To(Equal("field-1"))
			Expect(fields[0].PageNumber).To(Equal(2))
		})
	})

	Context("UpdateFieldPosition", func() {
		It("rejects updates once the document left draft", func() {
			document.Status = domain.DocumentStatusCompleted
			mockDocuments.EXPECT().GetByID(gomock.Any(), document.ID).Return(document, nil)

			_, err := service.UpdateFieldPosition(context.Background(), document.ID, "field-1", geometry.PercentRect{X: 10, Y: 10, Width: 10, Height: 5})
			Expect(err).To(MatchError(usecases.ErrDocumentNotDraft))
		})

		It("persists a valid move", func() {
			stored := domain.FormField{
				Identity:         domain.CommittedIdentity("field-1"),
				DocumentID:       document.ID,
				FieldType:        domain.FieldTypeText,
				PageNumber:       1,
				AssignedSignerID: signer.ID,
				Position:         geometry.PercentRect{X: 5, Y: 5, Width: 10, Height: 5},
			}
			mockDocuments.EXPECT().GetByID(gomock.Any(), document.ID).Return(document, nil)
			mockFields.EXPECT().GetByID(gomock.Any(), document.ID, "field-1").Return(stored, nil)
			mockFields.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

			field, err := service.UpdateFieldPosition(context.Background(), document.ID, "field-1", geometry.PercentRect{X: 20, Y: 20, Width: 10, Height: 5})
			Expect(err).NotTo(HaveOccurred())
			Expect(field.Position.X).To(BeNumerically("~", 20.0, 1e-9))
		})
	})

	Context("CompleteField", func() {
		var stored domain.FormField

		BeforeEach(func() {
			stored = domain.FormField{
				Identity:         domain.CommittedIdentity("field-1"),
				DocumentID:       document.ID,
				FieldType:        domain.FieldTypeText,
				PageNumber:       1,
				AssignedSignerID: signer.ID,
				Position:         geometry.PercentRect{X: 5, Y: 5, Width: 10, Height: 5},
				Required:         true,
			}
		})

		When("the assigned signer completes their last field", func() {
			It("flips the signer to completed", func() {
				mockFields.EXPECT().GetByID(gomock.Any(), document.ID, "field-1").Return(stored, nil)
				mockFields.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
				mockFields.EXPECT().CountIncompleteBySigner(gomock.Any(), signer.ID).Return(0, nil)
				mockSigners.EXPECT().GetByID(gomock.Any(), signer.ID).Return(signer, nil)
				mockSigners.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, updated domain.Signer) error {
						Expect(updated.Status).To(Equal(domain.SignerStatusCompleted))
						return nil
					})

				field, err := service.CompleteField(context.Background(), document.ID, "field-1", signer.ID, "hello")
				Expect(err).NotTo(HaveOccurred())
				Expect(field.Completed).To(BeTrue())
				Expect(field.Value).To(Equal("hello"))
			})
		})

		When("another signer tries to complete the field", func() {
			It("returns the domain error", func() {
				mockFields.EXPECT().GetByID(gomock.Any(), document.ID, "field-1").Return(stored, nil)

				_, err := service.CompleteField(context.Background(), document.ID, "field-1", "signer-2", "hello")
				Expect(err).To(MatchError(domain.ErrFieldWrongSigner))
			})
		})

		When("a text field is completed without a value", func() {
			It("returns the domain error", func() {
				mockFields.EXPECT().GetByID(gomock.Any(), document.ID, "field-1").Return(stored, nil)

				_, err := service.CompleteField(context.Background(), document.ID, "field-1", signer.ID, "")
				Expect(err).To(MatchError(domain.ErrFieldValueRequired))
			})
		})
	})
})
