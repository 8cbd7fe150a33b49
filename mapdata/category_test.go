package mapdata_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/lanemap/mapdata"
)

var _ = Describe("CategoryRegistry", func() {
	var r *mapdata.CategoryRegistry

	BeforeEach(func() {
		r = mapdata.NewCategoryRegistry()
	})

	It("should register a prefix", func() {
		Expect(r.Register(categorySign, "sign_")).To(Succeed())

		prefix, ok := r.Prefix(categorySign)
		Expect(ok).To(BeTrue())
		Expect(prefix).To(Equal("sign_"))
	})

	It("should not register a category twice", func() {
		Expect(r.Register(categorySign, "sign_")).To(Succeed())
		Expect(r.Register(categorySign, "s_")).NotTo(Succeed())
	})

	It("should reject empty prefixes and categories", func() {
		Expect(r.Register(categorySign, "")).NotTo(Succeed())
		Expect(r.Register("", "x_")).NotTo(Succeed())
	})

	It("should panic if the category is not registered", func() {
		Expect(func() { r.PrefixMustBeRegistered(categorySign) }).To(Panic())
	})

	It("should list categories sorted", func() {
		Expect(r.Register(categorySign, "sign_")).To(Succeed())
		Expect(r.Register(mapdata.CategoryLane, "lane_")).To(Succeed())

		Expect(r.Categories()).To(Equal(
			[]mapdata.Category{mapdata.CategoryLane, categorySign}))
	})

	It("should have lanes in the default registry", func() {
		Expect(mapdata.DefaultCategories.PrefixMustBeRegistered(
			mapdata.CategoryLane)).To(Equal("lane_"))
	})
})
