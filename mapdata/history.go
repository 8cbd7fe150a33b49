package mapdata

import (
	"github.com/golang-collections/collections/stack"
)

// IDChange is an undoable change of the id of one entity.
type IDChange struct {
	Entity Entity
	OldID  string
	NewID  string
}

// UndoRecorder records id changes made by user-facing actions.
type UndoRecorder interface {
	// RecordIDChange records one id change as one undoable unit.
	RecordIDChange(change IDChange)
}

// History can revert and replay recorded id changes.
type History interface {
	UndoRecorder

	// Undo reverts the latest recorded change. It returns false if there is
	// nothing to undo.
	Undo() (IDChange, bool)

	// Redo replays the latest undone change. It returns false if there is
	// nothing to redo.
	Redo() (IDChange, bool)
}

// IDHistory keeps id changes on an undo stack and a redo stack. Each undo or
// redo touches exactly one entity.
type IDHistory struct {
	undoStack *stack.Stack
	redoStack *stack.Stack
}

// NewIDHistory creates an empty history.
func NewIDHistory() *IDHistory {
	return &IDHistory{
		undoStack: stack.New(),
		redoStack: stack.New(),
	}
}

// RecordIDChange pushes a change to the undo stack and forgets every undone
// change.
func (h *IDHistory) RecordIDChange(change IDChange) {
	h.undoStack.Push(change)
	h.redoStack = stack.New()
}

// Undo sets the entity of the latest change back to its old id.
func (h *IDHistory) Undo() (IDChange, bool) {
	if h.undoStack.Len() == 0 {
		return IDChange{}, false
	}

	change := h.undoStack.Pop().(IDChange)
	change.Entity.SetID(change.OldID)
	h.redoStack.Push(change)

	return change, true
}

// Redo sets the entity of the latest undone change to its new id again.
func (h *IDHistory) Redo() (IDChange, bool) {
	if h.redoStack.Len() == 0 {
		return IDChange{}, false
	}

	change := h.redoStack.Pop().(IDChange)
	change.Entity.SetID(change.NewID)
	h.undoStack.Push(change)

	return change, true
}

// CanUndo returns true if there is a change to undo.
func (h *IDHistory) CanUndo() bool {
	return h.undoStack.Len() > 0
}

// CanRedo returns true if there is a change to redo.
func (h *IDHistory) CanRedo() bool {
	return h.redoStack.Len() > 0
}
