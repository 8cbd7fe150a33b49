package mapdata

// HookPos defines the enum of possible hooking positions.
type HookPos struct {
	Name string
}

// HookCtx is the context that holds all the information about the site that a
// hook is triggered.
type HookCtx struct {
	Domain Hookable
	Pos    *HookPos
	Item   interface{}
	Detail interface{}
}

// Hookable defines an object that accept Hooks.
type Hookable interface {
	// AcceptHook registers a hook.
	AcceptHook(hook Hook)

	// NumHooks returns the number of hooks registered.
	NumHooks() int

	// Hooks returns all the hooks registered.
	Hooks() []Hook
}

// Hook is a short piece of program that can be invoked by a hookable object.
type Hook interface {
	// Func determines what to do if hook is invoked.
	Func(ctx HookCtx)
}

// HookPosBackfillStart triggers before a backfill pass visits any entity. The
// item is the scene.
var HookPosBackfillStart = &HookPos{Name: "BackfillStart"}

// HookPosBackfillEnd triggers after a backfill pass, including interrupted
// passes. The detail is the BackfillReport.
var HookPosBackfillEnd = &HookPos{Name: "BackfillEnd"}

// HookPosIDAssigned triggers after an entity receives a new id. The item is
// the entity and the detail is the IDAssignment.
var HookPosIDAssigned = &HookPos{Name: "IDAssigned"}

// A HookableBase provides some utility function for other type that implement
// the Hookable interface.
type HookableBase struct {
	hookList []Hook
}

// NumHooks returns the number of hooks registered.
func (h *HookableBase) NumHooks() int {
	return len(h.hookList)
}

// Hooks returns all the hooks registered.
func (h *HookableBase) Hooks() []Hook {
	return h.hookList
}

// AcceptHook register a hook.
func (h *HookableBase) AcceptHook(hook Hook) {
	h.mustNotHaveDuplicatedHook(hook)
	h.hookList = append(h.hookList, hook)
}

func (h *HookableBase) mustNotHaveDuplicatedHook(hook Hook) {
	for _, h := range h.hookList {
		if h == hook {
			panic("duplicated hook")
		}
	}
}

// InvokeHook triggers the register Hooks.
func (h *HookableBase) InvokeHook(ctx HookCtx) {
	for _, hook := range h.hookList {
		hook.Func(ctx)
	}
}

// AssignmentSource tells which action produced an id assignment.
type AssignmentSource string

// The actions that assign ids.
const (
	SourceCreate   AssignmentSource = "create"
	SourceBackfill AssignmentSource = "backfill"
	SourceRename   AssignmentSource = "rename"
	SourceUndo     AssignmentSource = "undo"
	SourceRedo     AssignmentSource = "redo"
)

// IDAssignment describes a single change of an entity id.
type IDAssignment struct {
	Entity   Entity
	Category Category
	OldID    string
	NewID    string
	Source   AssignmentSource
}
