package cache_test

import (
	"signflow-server/internal/infra/cache"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"github.com/vmihailenco/msgpack/v5"
)

var _ = ginkgo.Describe("As", func() {
	type entry struct {
		ID    string
		Page  int
		Score float64
	}

	ginkgo.When("the entry holds a live value", func() {
		ginkgo.It("should return it unchanged", func() {
			value := []entry{{ID: "field-1", Page: 2, Score: 0.5}}

			resolved, err := cache.As[[]entry](any(value))
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(resolved).To(gomega.Equal(value))
		})
	})

	ginkgo.When("the entry holds msgpack bytes", func() {
		ginkgo.It("should decode them into the requested type", func() {
			value := []entry{
				{ID: "field-1", Page: 2, Score: 0.5},
				{ID: "field-2", Page: 3, Score: 1.25},
			}
			encoded, err := msgpack.Marshal(value)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			resolved, err := cache.As[[]entry](encoded)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(resolved).To(gomega.Equal(value))
		})

		ginkgo.It("should fail on bytes that do not decode", func() {
			_, err := cache.As[[]entry]([]byte{0xc1})
			gomega.Expect(err).To(gomega.HaveOccurred())
			gomega.Expect(err.Error()).To(gomega.ContainSubstring("decoding cache entry"))
		})
	})

	ginkgo.When("the entry holds an unrelated type", func() {
		ginkgo.It("should fail instead of guessing", func() {
			_, err := cache.As[[]entry](42)
			gomega.Expect(err).To(gomega.HaveOccurred())
			gomega.Expect(err.Error()).To(gomega.ContainSubstring("unexpected cache entry"))
		})
	})
})
