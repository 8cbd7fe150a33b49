// Package authoring connects the id subsystem to an authoring host.
package authoring

import (
	"context"

	"github.com/pkg/errors"

	"github.com/sarchlab/lanemap/mapdata"
	"github.com/sarchlab/lanemap/scene"
)

// Mode tells what the host is capable of.
type Mode int

// The capabilities of a host.
const (
	// Headless hosts run batch jobs and keep no undo history.
	Headless Mode = iota

	// Interactive hosts let users edit documents and undo their edits.
	Interactive
)

func (m Mode) String() string {
	switch m {
	case Headless:
		return "headless"
	case Interactive:
		return "interactive"
	default:
		return "unknown"
	}
}

// An Editor performs id-related edits on a document.
//
// An Editor is not safe for concurrent use. All calls must come from the
// thread that owns the document.
type Editor struct {
	mapdata.HookableBase

	doc        *scene.Document
	mode       Mode
	history    mapdata.History
	registry   *mapdata.CategoryRegistry
	generator  mapdata.IDGenerator
	backfiller *mapdata.Backfiller
}

// Document returns the edited document.
func (e *Editor) Document() *scene.Document {
	return e.doc
}

// Mode returns the capability of the host.
func (e *Editor) Mode() Mode {
	return e.mode
}

// Registry returns the registry that provides the id prefixes.
func (e *Editor) Registry() *mapdata.CategoryRegistry {
	return e.registry
}

// Categories returns the categories backfilled on load.
func (e *Editor) Categories() []mapdata.Category {
	return e.backfiller.Categories()
}

// NextID returns the id a new entity of the category would receive.
func (e *Editor) NextID(cat mapdata.Category) (string, error) {
	return e.generator.Generate(cat)
}

// CreateEntity gives the entity a fresh id and then attaches it under the
// parent node. The entity is not part of the document until it has an id.
// A nil parent adds the node as a root.
func (e *Editor) CreateEntity(
	parent *scene.Node,
	name string,
	entity mapdata.Entity,
) (*scene.Node, error) {
	id, err := e.generator.Generate(entity.Category())
	if err != nil {
		return nil, errors.Wrapf(err, "creating %s", name)
	}

	old := entity.ID()
	entity.SetID(id)

	node := scene.NewEntityNode(name, entity)
	if parent == nil {
		e.doc.AddRoot(node)
	} else {
		parent.AddChild(node)
	}

	e.invokeAssigned(entity, old, id, mapdata.SourceCreate)

	return node, nil
}

// RenameEntity replaces the id of an entity as a user would. The new id is
// not checked for uniqueness. In interactive mode the rename is recorded as
// one undoable unit.
func (e *Editor) RenameEntity(entity mapdata.Entity, newID string) {
	old := entity.ID()
	entity.SetID(newID)

	if e.mode == Interactive {
		e.history.RecordIDChange(mapdata.IDChange{
			Entity: entity,
			OldID:  old,
			NewID:  newID,
		})
	}

	e.invokeAssigned(entity, old, newID, mapdata.SourceRename)
}

// Undo reverts the latest rename. It returns false if there is nothing to
// undo or the host is headless.
func (e *Editor) Undo() bool {
	if e.mode != Interactive {
		return false
	}

	change, ok := e.history.Undo()
	if !ok {
		return false
	}

	e.invokeAssigned(change.Entity, change.NewID, change.OldID,
		mapdata.SourceUndo)

	return true
}

// Redo replays the latest undone rename. It returns false if there is
// nothing to redo or the host is headless.
func (e *Editor) Redo() bool {
	if e.mode != Interactive {
		return false
	}

	change, ok := e.history.Redo()
	if !ok {
		return false
	}

	e.invokeAssigned(change.Entity, change.OldID, change.NewID,
		mapdata.SourceRedo)

	return true
}

// OnDocumentLoaded must be called after the document is fully loaded and
// before anything reads entity ids. It backfills missing ids. Calling it again
// assigns nothing new. The backfill is not recorded in the undo history.
func (e *Editor) OnDocumentLoaded(
	ctx context.Context,
) (mapdata.BackfillReport, error) {
	return e.backfiller.Backfill(ctx, e.doc)
}

// Duplicates lists the ids used by more than one entity of the category.
func (e *Editor) Duplicates(cat mapdata.Category) []mapdata.DuplicateID {
	return mapdata.FindDuplicateIDs(e.doc, cat)
}

func (e *Editor) invokeAssigned(
	entity mapdata.Entity,
	old, id string,
	source mapdata.AssignmentSource,
) {
	e.InvokeHook(mapdata.HookCtx{
		Domain: e,
		Pos:    mapdata.HookPosIDAssigned,
		Item:   entity,
		Detail: mapdata.IDAssignment{
			Entity:   entity,
			Category: entity.Category(),
			OldID:    old,
			NewID:    id,
			Source:   source,
		},
	})
}
