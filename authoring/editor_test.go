package authoring_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/sarchlab/lanemap/authoring"
	"github.com/sarchlab/lanemap/mapdata"
	"github.com/sarchlab/lanemap/scene"
)

var _ = Describe("Editor", func() {
	var (
		mockCtrl *gomock.Controller
		doc      *scene.Document
		holder   *scene.Node
		existing *mapdata.Lane
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())

		doc = scene.NewDocument("Town")
		holder = scene.NewHolderNode("Map")
		doc.AddRoot(holder)

		existing = mapdata.NewLane()
		existing.SetID("lane_0")
		holder.AddChild(scene.NewEntityNode("Existing", existing))
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	Context("headless", func() {
		var editor *authoring.Editor

		BeforeEach(func() {
			editor = authoring.MakeBuilder().Build(doc)
		})

		It("should give created entities a fresh id", func() {
			lane := mapdata.NewLane()

			node, err := editor.CreateEntity(holder, "New", lane)

			Expect(err).ToNot(HaveOccurred())
			Expect(lane.ID()).To(Equal("lane_1"))
			Expect(node.Parent()).To(BeIdenticalTo(holder))
			Expect(node.Entity()).To(BeIdenticalTo(lane))
		})

		It("should add created entities without parent as roots", func() {
			node, err := editor.CreateEntity(nil, "Root", mapdata.NewLane())

			Expect(err).ToNot(HaveOccurred())
			Expect(doc.Roots()).To(ContainElement(node))
		})

		It("should rename without checking uniqueness", func() {
			lane := mapdata.NewLane()
			_, err := editor.CreateEntity(holder, "New", lane)
			Expect(err).ToNot(HaveOccurred())

			editor.RenameEntity(lane, "lane_0")

			Expect(lane.ID()).To(Equal("lane_0"))
			dups := editor.Duplicates(mapdata.CategoryLane)
			Expect(dups).To(HaveLen(1))
			Expect(dups[0].ID).To(Equal("lane_0"))
		})

		It("should not undo", func() {
			editor.RenameEntity(existing, "main_street")

			Expect(editor.Undo()).To(BeFalse())
			Expect(existing.ID()).To(Equal("main_street"))
		})

		It("should backfill on load", func() {
			legacy := mapdata.NewLane()
			holder.AddChild(scene.NewEntityNode("Legacy", legacy))

			report, err := editor.OnDocumentLoaded(context.Background())

			Expect(err).ToNot(HaveOccurred())
			Expect(report.NumAssigned()).To(Equal(1))
			Expect(legacy.ID()).To(Equal("lane_1"))
		})

		It("should tell the next id without assigning it", func() {
			id, err := editor.NextID(mapdata.CategoryLane)

			Expect(err).ToNot(HaveOccurred())
			Expect(id).To(Equal("lane_1"))

			id, err = editor.NextID(mapdata.CategoryLane)
			Expect(err).ToNot(HaveOccurred())
			Expect(id).To(Equal("lane_1"))
		})
	})

	Context("interactive", func() {
		var (
			history *MockHistory
			editor  *authoring.Editor
		)

		BeforeEach(func() {
			history = NewMockHistory(mockCtrl)
			editor = authoring.MakeBuilder().
				WithMode(authoring.Interactive).
				WithHistory(history).
				Build(doc)
		})

		It("should require a history", func() {
			Expect(func() {
				authoring.MakeBuilder().
					WithMode(authoring.Interactive).
					Build(doc)
			}).To(Panic())
		})

		It("should record each rename once", func() {
			history.EXPECT().RecordIDChange(mapdata.IDChange{
				Entity: existing,
				OldID:  "lane_0",
				NewID:  "main_street",
			}).Times(1)

			editor.RenameEntity(existing, "main_street")
		})

		It("should not record the backfill", func() {
			holder.AddChild(scene.NewEntityNode("Legacy", mapdata.NewLane()))

			_, err := editor.OnDocumentLoaded(context.Background())

			Expect(err).ToNot(HaveOccurred())
		})

		It("should undo and redo through the history", func() {
			change := mapdata.IDChange{
				Entity: existing,
				OldID:  "lane_0",
				NewID:  "main_street",
			}
			history.EXPECT().Undo().Return(change, true)
			history.EXPECT().Redo().Return(change, true)
			history.EXPECT().Undo().Return(mapdata.IDChange{}, false)

			Expect(editor.Undo()).To(BeTrue())
			Expect(editor.Redo()).To(BeTrue())
			Expect(editor.Undo()).To(BeFalse())
		})
	})

	Context("with a real history", func() {
		It("should undo renames one entity at a time", func() {
			other := mapdata.NewLane()
			other.SetID("lane_1")
			holder.AddChild(scene.NewEntityNode("Other", other))

			editor := authoring.MakeBuilder().
				WithMode(authoring.Interactive).
				WithHistory(mapdata.NewIDHistory()).
				Build(doc)

			editor.RenameEntity(existing, "a")
			editor.RenameEntity(other, "b")

			Expect(editor.Undo()).To(BeTrue())
			Expect(other.ID()).To(Equal("lane_1"))
			Expect(existing.ID()).To(Equal("a"))

			Expect(editor.Redo()).To(BeTrue())
			Expect(other.ID()).To(Equal("b"))
		})
	})

	It("should invoke hooks on create and rename", func() {
		hook := NewMockHook(mockCtrl)
		editor := authoring.MakeBuilder().WithHook(hook).Build(doc)

		var sources []mapdata.AssignmentSource
		hook.EXPECT().Func(gomock.Any()).Do(func(ctx mapdata.HookCtx) {
			if ctx.Pos == mapdata.HookPosIDAssigned {
				sources = append(sources,
					ctx.Detail.(mapdata.IDAssignment).Source)
			}
		}).AnyTimes()

		lane := mapdata.NewLane()
		_, err := editor.CreateEntity(holder, "New", lane)
		Expect(err).ToNot(HaveOccurred())
		editor.RenameEntity(lane, "x")
		holder.AddChild(scene.NewEntityNode("Legacy", mapdata.NewLane()))
		_, err = editor.OnDocumentLoaded(context.Background())
		Expect(err).ToNot(HaveOccurred())

		Expect(sources).To(Equal([]mapdata.AssignmentSource{
			mapdata.SourceCreate,
			mapdata.SourceRename,
			mapdata.SourceBackfill,
		}))
	})
})
