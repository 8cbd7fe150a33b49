package authoring

import (
	"github.com/sarchlab/lanemap/mapdata"
	"github.com/sarchlab/lanemap/scene"
)

// Builder can be used to build an Editor.
type Builder struct {
	mode        Mode
	history     mapdata.History
	registry    *mapdata.CategoryRegistry
	categories  []mapdata.Category
	maxAttempts int
	hooks       []mapdata.Hook
}

// MakeBuilder creates a builder of headless editors that manage lanes.
func MakeBuilder() Builder {
	return Builder{
		mode:        Headless,
		registry:    mapdata.DefaultCategories,
		categories:  []mapdata.Category{mapdata.CategoryLane},
		maxAttempts: 2,
	}
}

// WithMode sets the capability of the host.
func (b Builder) WithMode(mode Mode) Builder {
	b.mode = mode
	return b
}

// WithHistory sets the history that records renames in interactive mode.
func (b Builder) WithHistory(h mapdata.History) Builder {
	b.history = h
	return b
}

// WithRegistry sets the registry that provides the id prefixes.
func (b Builder) WithRegistry(r *mapdata.CategoryRegistry) Builder {
	b.registry = r
	return b
}

// WithCategories sets the categories that are backfilled on load.
func (b Builder) WithCategories(cats ...mapdata.Category) Builder {
	b.categories = append([]mapdata.Category(nil), cats...)
	return b
}

// WithMaxAttempts sets how many candidates the id generator tries.
func (b Builder) WithMaxAttempts(n int) Builder {
	b.maxAttempts = n
	return b
}

// WithHook registers a hook on both the editor and its backfiller.
func (b Builder) WithHook(h mapdata.Hook) Builder {
	b.hooks = append(append([]mapdata.Hook(nil), b.hooks...), h)
	return b
}

func (b Builder) parametersMustBeValid() {
	if b.mode == Interactive && b.history == nil {
		panic("an interactive editor requires a history")
	}
}

// Build creates an editor of the document.
func (b Builder) Build(doc *scene.Document) *Editor {
	b.parametersMustBeValid()

	e := &Editor{
		doc:      doc,
		mode:     b.mode,
		history:  b.history,
		registry: b.registry,
	}

	e.generator = mapdata.MakeIDGeneratorBuilder().
		WithRegistry(b.registry).
		WithMaxAttempts(b.maxAttempts).
		Build(doc)

	e.backfiller = mapdata.MakeBackfillerBuilder().
		WithRegistry(b.registry).
		WithCategories(b.categories...).
		WithMaxAttempts(b.maxAttempts).
		Build()

	for _, h := range b.hooks {
		e.AcceptHook(h)
		e.backfiller.AcceptHook(h)
	}

	return e
}
