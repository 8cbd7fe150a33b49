package mapdata_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/lanemap/mapdata"
)

var _ = Describe("Duplicates", func() {
	It("should find ids shared by several entities", func() {
		entities := lanesWithIDs("lane_1", "lane_0", "lane_1", "", "", "b", "b")
		scene := &fakeScene{holder: &fakeHolder{entities: entities}}

		dups := mapdata.FindDuplicateIDs(scene, mapdata.CategoryLane)

		Expect(dups).To(HaveLen(2))
		Expect(dups[0].ID).To(Equal("b"))
		Expect(dups[1].ID).To(Equal("lane_1"))
		Expect(dups[1].Entities).To(ConsistOf(entities[0], entities[2]))
	})

	It("should find entities by id", func() {
		entities := lanesWithIDs("lane_1", "lane_0", "lane_1")
		scene := &fakeScene{holder: &fakeHolder{entities: entities}}

		found := mapdata.EntitiesWithID(scene, mapdata.CategoryLane, "lane_1")

		Expect(found).To(HaveLen(2))
		Expect(found[0]).To(BeIdenticalTo(entities[0]))
		Expect(found[1]).To(BeIdenticalTo(entities[2]))
	})
})
