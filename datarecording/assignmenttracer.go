package datarecording

import (
	"context"

	"github.com/sarchlab/lanemap/mapdata"
)

// AssignmentTable is the table that holds id assignments.
const AssignmentTable = "id_assignment"

// AssignmentEntry is a row of the id_assignment table.
type AssignmentEntry struct {
	Document string
	Category string
	Source   string
	OldID    string
	NewID    string
	Time     string
}

// AssignmentTracer is a hook that records every id assignment.
type AssignmentTracer struct {
	recorder DataRecorder
	document string
}

// NewAssignmentTracer creates a tracer that labels its rows with the document
// name.
func NewAssignmentTracer(
	recorder DataRecorder,
	document string,
) *AssignmentTracer {
	recorder.CreateTable(AssignmentTable, AssignmentEntry{})

	return &AssignmentTracer{
		recorder: recorder,
		document: document,
	}
}

// Func records the assignment carried by an IDAssigned hook.
func (t *AssignmentTracer) Func(ctx mapdata.HookCtx) {
	if ctx.Pos != mapdata.HookPosIDAssigned {
		return
	}

	a := ctx.Detail.(mapdata.IDAssignment)
	t.recorder.InsertData(AssignmentTable, AssignmentEntry{
		Document: t.document,
		Category: string(a.Category),
		Source:   string(a.Source),
		OldID:    a.OldID,
		NewID:    a.NewID,
		Time:     now(),
	})
}

// ReadAssignments returns the recorded assignments in insertion order.
// A non-empty document restricts the rows to that document.
func ReadAssignments(
	ctx context.Context,
	reader DataReader,
	document string,
) ([]AssignmentEntry, error) {
	reader.MapTable(AssignmentTable, AssignmentEntry{})

	params := QueryParams{OrderBy: "rowid"}
	if document != "" {
		params.Where = "Document = ?"
		params.Args = []any{document}
	}

	rows, _, err := reader.Query(ctx, AssignmentTable, params)
	if err != nil {
		return nil, err
	}

	entries := make([]AssignmentEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, *r.(*AssignmentEntry))
	}

	return entries, nil
}
