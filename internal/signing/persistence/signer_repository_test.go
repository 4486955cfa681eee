package persistence_test

import (
	"context"

	"signflow-server/internal/infra/pubsub"
	"signflow-server/internal/infra/sql"
	"signflow-server/internal/infra/utils"
	"signflow-server/internal/signing/domain"
	signingPersistence "signflow-server/internal/signing/persistence"
	"signflow-server/internal/signing/usecases"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("SimpleSignerRepository", func() {
	var (
		orm        sql.ORM
		factory    pubsub.PublisherFactory
		repo       usecases.SignerRepository
		ctx        context.Context
		documentID domain.ID
	)

	ginkgo.BeforeEach(func() {
		var err error
		orm, err = sql.NewMemoryORM("migrations")
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		factory = pubsub.NewMemoryPublisherFactory()

		repo, err = signingPersistence.NewSignerRepository(factory, orm)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		ctx = context.Background()
		documentID = domain.ID(utils.GenerateUUID())
	})

	newSigner := func(index int) domain.Signer {
		signer, err := domain.NewSignerBuilder().
			WithDocument(documentID).
			WithName("Alice Chen").
			WithEmail("alice@example.com").
			WithDisplayIndex(index).
			Build()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		return signer
	}

	ginkgo.Context("Create and GetByID", func() {
		ginkgo.It("round-trips the row", func() {
			signer := newSigner(0)
			gomega.Expect(repo.Create(ctx, signer)).To(gomega.Succeed())

			result, err := repo.GetByID(ctx, signer.ID)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(result.DocumentID).To(gomega.Equal(documentID))
			gomega.Expect(result.Email).To(gomega.Equal("alice@example.com"))
			gomega.Expect(result.Status).To(gomega.Equal(domain.SignerStatusPending))
		})

		ginkgo.When("the signer does not exist", func() {
			ginkgo.It("returns ErrSignerNotFound", func() {
				_, err := repo.GetByID(ctx, domain.ID(utils.GenerateUUID()))
				gomega.Expect(err).To(gomega.MatchError(usecases.ErrSignerNotFound))
			})
		})
	})

	ginkgo.Context("FindAllByDocument", func() {
		ginkgo.It("orders signers by display index", func() {
			second := newSigner(1)
			first := newSigner(0)
			gomega.Expect(repo.Create(ctx, second)).To(gomega.Succeed())
			gomega.Expect(repo.Create(ctx, first)).To(gomega.Succeed())

			result, err := repo.FindAllByDocument(ctx, documentID)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(result).To(gomega.HaveLen(2))
			gomega.Expect(result[0].ID).To(gomega.Equal(first.ID))
			gomega.Expect(result[1].ID).To(gomega.Equal(second.ID))
		})
	})

	ginkgo.Context("CountByDocument", func() {
		ginkgo.It("counts only the document's signers", func() {
			gomega.Expect(repo.Create(ctx, newSigner(0))).To(gomega.Succeed())
			gomega.Expect(repo.Create(ctx, newSigner(1))).To(gomega.Succeed())

			total, err := repo.CountByDocument(ctx, documentID)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(total).To(gomega.Equal(2))

			other, err := repo.CountByDocument(ctx, domain.ID(utils.GenerateUUID()))
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(other).To(gomega.Equal(0))
		})
	})

	ginkgo.Context("Delete", func() {
		ginkgo.It("removes the row", func() {
			signer := newSigner(0)
			gomega.Expect(repo.Create(ctx, signer)).To(gomega.Succeed())
			gomega.Expect(repo.Delete(ctx, signer.ID)).To(gomega.Succeed())

			_, err := repo.GetByID(ctx, signer.ID)
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrSignerNotFound))
		})
	})
})
