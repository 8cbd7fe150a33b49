package mapdata

import (
	"github.com/sirupsen/logrus"
)

// A LogHook logs every id assignment it is invoked with.
type LogHook struct {
	logger logrus.FieldLogger
}

// NewLogHook creates a LogHook that writes to the given logger.
func NewLogHook(logger logrus.FieldLogger) *LogHook {
	return &LogHook{logger: logger}
}

// Func logs id assignments and backfill summaries. Other positions are
// ignored.
func (h *LogHook) Func(ctx HookCtx) {
	switch ctx.Pos {
	case HookPosIDAssigned:
		a := ctx.Detail.(IDAssignment)
		h.logger.WithFields(logrus.Fields{
			"category": a.Category,
			"old_id":   a.OldID,
			"new_id":   a.NewID,
			"source":   a.Source,
		}).Info("id assigned")
	case HookPosBackfillEnd:
		r := ctx.Detail.(BackfillReport)
		h.logger.WithFields(logrus.Fields{
			"scanned":  r.Scanned,
			"assigned": r.NumAssigned(),
		}).Debug("backfill finished")
	}
}
