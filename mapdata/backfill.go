package mapdata

import (
	"context"
	"strings"
)

// A Holder is the root of the map objects of a document. In the authoring
// tool it is the object that owns all the map annotations.
type Holder interface {
	// EntitiesOf returns all the entities of a category under the holder,
	// the holder itself included, in the native child order of the document.
	EntitiesOf(cat Category) []Entity
}

// Scene is the document as seen by the backfill pass.
type Scene interface {
	EntityLister

	// FindHolder returns the holder of the map objects of a category, if
	// the document has one.
	FindHolder(cat Category) (Holder, bool)
}

// BackfillReport summarizes a backfill pass.
type BackfillReport struct {
	Scanned     int
	Assignments []IDAssignment
}

// NumAssigned returns the number of entities that received an id.
func (r BackfillReport) NumAssigned() int {
	return len(r.Assignments)
}

// A Backfiller gives an id to every entity that was loaded without one, for
// example entities saved before ids existed or pasted from another document.
//
// A pass assumes exclusive access to the scene. Nothing else may mutate the
// scene while Backfill runs.
type Backfiller struct {
	HookableBase

	registry    *CategoryRegistry
	categories  []Category
	maxAttempts int
}

// BackfillerBuilder builds Backfillers.
type BackfillerBuilder struct {
	registry    *CategoryRegistry
	categories  []Category
	maxAttempts int
}

// MakeBackfillerBuilder returns a builder that backfills lanes using the
// default category registry.
func MakeBackfillerBuilder() BackfillerBuilder {
	return BackfillerBuilder{
		registry:    DefaultCategories,
		categories:  []Category{CategoryLane},
		maxAttempts: 2,
	}
}

// WithRegistry sets the registry that provides the id prefixes.
func (b BackfillerBuilder) WithRegistry(r *CategoryRegistry) BackfillerBuilder {
	b.registry = r
	return b
}

// WithCategories sets the categories to backfill, in the order they are
// processed.
func (b BackfillerBuilder) WithCategories(cats ...Category) BackfillerBuilder {
	b.categories = append([]Category(nil), cats...)
	return b
}

// WithMaxAttempts sets how many candidates the id generator tries.
func (b BackfillerBuilder) WithMaxAttempts(n int) BackfillerBuilder {
	b.maxAttempts = n
	return b
}

// Build creates the Backfiller. It panics if a category is not registered.
func (b BackfillerBuilder) Build() *Backfiller {
	for _, cat := range b.categories {
		b.registry.PrefixMustBeRegistered(cat)
	}

	return &Backfiller{
		registry:    b.registry,
		categories:  b.categories,
		maxAttempts: b.maxAttempts,
	}
}

// Categories returns the categories the backfiller processes.
func (b *Backfiller) Categories() []Category {
	return append([]Category(nil), b.categories...)
}

// Backfill assigns an id to every entity with an empty or blank id. Entities
// that already have an id are never changed, whatever the id looks like.
// Running it on a fully populated scene changes nothing.
//
// The context is checked between entities. When it is done, the pass stops
// and returns what was assigned so far together with the context error. The
// scene stays valid and the next pass completes the job.
func (b *Backfiller) Backfill(
	ctx context.Context,
	scene Scene,
) (BackfillReport, error) {
	report := BackfillReport{}

	b.InvokeHook(HookCtx{
		Domain: b,
		Pos:    HookPosBackfillStart,
		Item:   scene,
	})

	err := b.backfillCategories(ctx, scene, &report)

	b.InvokeHook(HookCtx{
		Domain: b,
		Pos:    HookPosBackfillEnd,
		Item:   scene,
		Detail: report,
	})

	return report, err
}

func (b *Backfiller) backfillCategories(
	ctx context.Context,
	scene Scene,
	report *BackfillReport,
) error {
	generator := MakeIDGeneratorBuilder().
		WithRegistry(b.registry).
		WithMaxAttempts(b.maxAttempts).
		Build(scene)

	for _, cat := range b.categories {
		holder, found := scene.FindHolder(cat)
		if !found {
			continue
		}

		err := b.backfillCategory(ctx, cat, holder, generator, report)
		if err != nil {
			return err
		}
	}

	return nil
}

func (b *Backfiller) backfillCategory(
	ctx context.Context,
	cat Category,
	holder Holder,
	generator IDGenerator,
	report *BackfillReport,
) error {
	for _, e := range holder.EntitiesOf(cat) {
		if err := ctx.Err(); err != nil {
			return err
		}

		report.Scanned++

		if !IsBlankID(e.ID()) {
			continue
		}

		id, err := generator.Generate(cat)
		if err != nil {
			return err
		}

		assignment := IDAssignment{
			Entity:   e,
			Category: cat,
			OldID:    e.ID(),
			NewID:    id,
			Source:   SourceBackfill,
		}

		e.SetID(id)
		report.Assignments = append(report.Assignments, assignment)

		b.InvokeHook(HookCtx{
			Domain: b,
			Pos:    HookPosIDAssigned,
			Item:   e,
			Detail: assignment,
		})
	}

	return nil
}

// IsBlankID returns true if the id is empty or only contains white space.
func IsBlankID(id string) bool {
	return strings.TrimSpace(id) == ""
}
