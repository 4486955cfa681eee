package persistence_test

import (
	"context"
	"time"

	"signflow-server/internal/infra/pubsub"
	"signflow-server/internal/infra/sql"
	"signflow-server/internal/infra/utils"
	"signflow-server/internal/signing/domain"
	signingPersistence "signflow-server/internal/signing/persistence"
	"signflow-server/internal/signing/usecases"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("SimpleDocumentRepository", func() {
	var (
		orm     sql.ORM
		factory pubsub.PublisherFactory
		repo    usecases.DocumentRepository
		ctx     context.Context
	)

	ginkgo.BeforeEach(func() {
		var err error
		orm, err = sql.NewMemoryORM("migrations")
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		factory = pubsub.NewMemoryPublisherFactory()

		repo, err = signingPersistence.NewDocumentRepository(factory, orm)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(repo).NotTo(gomega.BeNil())

		ctx = context.Background()
	})

	newDocument := func(ownerID domain.ID) domain.Document {
		document, err := domain.NewDocumentBuilder().
			WithOwner(ownerID).
			WithTitle("Lease Agreement").
			WithSourceKey("documents/x/source.pdf").
			WithPageCount(3).
			Build()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		return document
	}

	ginkgo.Context("Create and GetByID", func() {
		ginkgo.When("the document exists", func() {
			ginkgo.It("round-trips the row", func() {
				document := newDocument(domain.ID(utils.GenerateUUID()))
				gomega.Expect(repo.Create(ctx, document)).To(gomega.Succeed())

				result, err := repo.GetByID(ctx, document.ID)
				gomega.Expect(err).NotTo(gomega.HaveOccurred())
				gomega.Expect(result.ID).To(gomega.Equal(document.ID))
				gomega.Expect(result.Title).To(gomega.Equal("Lease Agreement"))
				gomega.Expect(result.Status).To(gomega.Equal(domain.DocumentStatusDraft))
				gomega.Expect(result.PageCount).To(gomega.Equal(3))
			})
		})

		ginkgo.When("the document does not exist", func() {
			ginkgo.It("returns ErrDocumentNotFound", func() {
				_, err := repo.GetByID(ctx, domain.ID(utils.GenerateUUID()))
				gomega.Expect(err).To(gomega.MatchError(usecases.ErrDocumentNotFound))
			})
		})
	})

	ginkgo.Context("Update", func() {
		ginkgo.It("persists status transitions", func() {
			document := newDocument(domain.ID(utils.GenerateUUID()))
			gomega.Expect(repo.Create(ctx, document)).To(gomega.Succeed())

			document.RequestFinalize()
			gomega.Expect(repo.Update(ctx, document)).To(gomega.Succeed())

			result, err := repo.GetByID(ctx, document.ID)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(result.Status).To(gomega.Equal(domain.DocumentStatusFinalizing))
		})
	})

	ginkgo.Context("FindAllByOwner", func() {
		var ownerID domain.ID

		ginkgo.BeforeEach(func() {
			ownerID = domain.ID(utils.GenerateUUID())
			for range 3 {
				gomega.Expect(repo.Create(ctx, newDocument(ownerID))).To(gomega.Succeed())
			}
		})

		ginkgo.When("paginating", func() {
			ginkgo.It("returns the page and the full total", func() {
				result, total, err := repo.FindAllByOwner(ctx, ownerID, usecases.Pagination{Limit: 2, Offset: 0})
				gomega.Expect(err).NotTo(gomega.HaveOccurred())
				gomega.Expect(result).To(gomega.HaveLen(2))
				gomega.Expect(total).To(gomega.Equal(3))
			})
		})

		ginkgo.When("a document is soft deleted", func() {
			ginkgo.It("disappears from the owner listing", func() {
				result, _, err := repo.FindAllByOwner(ctx, ownerID, usecases.Pagination{Limit: 10, Offset: 0})
				gomega.Expect(err).NotTo(gomega.HaveOccurred())

				deleted := result[0]
				deleted.SoftDelete()
				gomega.Expect(repo.Update(ctx, deleted)).To(gomega.Succeed())

				remaining, total, err := repo.FindAllByOwner(ctx, ownerID, usecases.Pagination{Limit: 10, Offset: 0})
				gomega.Expect(err).NotTo(gomega.HaveOccurred())
				gomega.Expect(remaining).To(gomega.HaveLen(2))
				gomega.Expect(total).To(gomega.Equal(2))
			})
		})

		ginkgo.When("listing for a different owner", func() {
			ginkgo.It("returns an empty page", func() {
				result, total, err := repo.FindAllByOwner(ctx, domain.ID(utils.GenerateUUID()), usecases.Pagination{Limit: 10, Offset: 0})
				gomega.Expect(err).NotTo(gomega.HaveOccurred())
				gomega.Expect(result).To(gomega.BeEmpty())
				gomega.Expect(total).To(gomega.Equal(0))
			})
		})
	})

	ginkgo.Context("FindAllDeletedBefore and HardDelete", func() {
		ginkgo.It("sweeps only rows deleted before the cutoff", func() {
			document := newDocument(domain.ID(utils.GenerateUUID()))
			gomega.Expect(repo.Create(ctx, document)).To(gomega.Succeed())

			document.SoftDelete()
			gomega.Expect(repo.Update(ctx, document)).To(gomega.Succeed())

			expired, err := repo.FindAllDeletedBefore(ctx, time.Now().Add(time.Minute))
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(expired).NotTo(gomega.BeEmpty())

			fresh, err := repo.FindAllDeletedBefore(ctx, time.Now().Add(-time.Hour))
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(fresh).NotTo(gomega.ContainElement(gomega.HaveField("ID", document.ID)))

			gomega.Expect(repo.HardDelete(ctx, document.ID)).To(gomega.Succeed())
			_, err = repo.GetByID(ctx, document.ID)
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrDocumentNotFound))
		})
	})
})
