package mapdata_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/sarchlab/lanemap/mapdata"
)

var _ = Describe("LogHook", func() {
	var (
		logger  *logrus.Logger
		entries *test.Hook
		h       *mapdata.LogHook
	)

	BeforeEach(func() {
		logger, entries = test.NewNullLogger()
		logger.SetLevel(logrus.DebugLevel)
		h = mapdata.NewLogHook(logger)
	})

	It("should log assignments with fields", func() {
		lane := mapdata.NewLane()

		h.Func(mapdata.HookCtx{
			Pos:  mapdata.HookPosIDAssigned,
			Item: lane,
			Detail: mapdata.IDAssignment{
				Entity:   lane,
				Category: mapdata.CategoryLane,
				NewID:    "lane_3",
				Source:   mapdata.SourceBackfill,
			},
		})

		Expect(entries.AllEntries()).To(HaveLen(1))
		entry := entries.LastEntry()
		Expect(entry.Message).To(Equal("id assigned"))
		Expect(entry.Data["new_id"]).To(Equal("lane_3"))
		Expect(entry.Data["source"]).To(Equal(mapdata.SourceBackfill))
	})

	It("should log the end of a backfill pass", func() {
		h.Func(mapdata.HookCtx{
			Pos:    mapdata.HookPosBackfillEnd,
			Detail: mapdata.BackfillReport{Scanned: 4},
		})

		Expect(entries.LastEntry().Data["scanned"]).To(Equal(4))
	})

	It("should ignore other positions", func() {
		h.Func(mapdata.HookCtx{Pos: mapdata.HookPosBackfillStart})

		Expect(entries.AllEntries()).To(BeEmpty())
	})
})
