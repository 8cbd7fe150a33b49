package mapdata

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrUniquenessRace is returned when every generated candidate collided with
// an id that appeared while the generator was running. It means the document
// was mutated during generation.
var ErrUniquenessRace = errors.New("generated id collided with a concurrent change")

// An EntityLister enumerates all live entities of a category in a document.
type EntityLister interface {
	Entities(cat Category) []Entity
}

// IDGenerator can generate ids.
type IDGenerator interface {
	// Generate returns an id of the given category that no entity in the
	// document currently uses.
	Generate(cat Category) (string, error)
}

// IDGeneratorBuilder builds IDGenerators.
type IDGeneratorBuilder struct {
	registry    *CategoryRegistry
	maxAttempts int
}

// MakeIDGeneratorBuilder returns a builder with the default category registry
// and a single retry.
func MakeIDGeneratorBuilder() IDGeneratorBuilder {
	return IDGeneratorBuilder{
		registry:    DefaultCategories,
		maxAttempts: 2,
	}
}

// WithRegistry sets the registry that provides the id prefixes.
func (b IDGeneratorBuilder) WithRegistry(r *CategoryRegistry) IDGeneratorBuilder {
	b.registry = r
	return b
}

// WithMaxAttempts sets how many candidates are tried before giving up.
func (b IDGeneratorBuilder) WithMaxAttempts(n int) IDGeneratorBuilder {
	b.maxAttempts = n
	return b
}

// Build creates an IDGenerator that scans the entities provided by the
// lister.
func (b IDGeneratorBuilder) Build(lister EntityLister) IDGenerator {
	if b.maxAttempts < 1 {
		panic("max attempts must be at least 1")
	}

	return &scanningIDGenerator{
		lister:      lister,
		registry:    b.registry,
		maxAttempts: b.maxAttempts,
	}
}

// scanningIDGenerator keeps no counter. Every call rescans the live entities
// so that deletions and manual renames are always taken into account.
type scanningIDGenerator struct {
	lister      EntityLister
	registry    *CategoryRegistry
	maxAttempts int
}

func (g *scanningIDGenerator) Generate(cat Category) (string, error) {
	prefix := g.registry.PrefixMustBeRegistered(cat)

	var candidate string

	for attempt := 0; attempt < g.maxAttempts; attempt++ {
		candidate = NextFreeID(prefix, g.usedIDs(cat))

		if _, taken := g.usedIDs(cat)[candidate]; !taken {
			return candidate, nil
		}
	}

	return "", errors.Wrapf(ErrUniquenessRace,
		"category %s, candidate %s", cat, candidate)
}

func (g *scanningIDGenerator) usedIDs(cat Category) map[string]struct{} {
	entities := g.lister.Entities(cat)

	used := make(map[string]struct{}, len(entities))
	for _, e := range entities {
		used[e.ID()] = struct{}{}
	}

	return used
}

// NextFreeID returns prefix+N where N is the smallest non-negative integer
// such that prefix+N is not in used. Ids that do not have the form prefix+N
// do not take part in numbering.
func NextFreeID(prefix string, used map[string]struct{}) string {
	numbers := make(map[int]struct{}, len(used))

	for id := range used {
		n, ok := SequenceNumber(prefix, id)
		if ok {
			numbers[n] = struct{}{}
		}
	}

	for n := 0; ; n++ {
		if _, ok := numbers[n]; ok {
			continue
		}

		candidate := prefix + strconv.Itoa(n)
		if _, ok := used[candidate]; ok {
			continue
		}

		return candidate
	}
}

// SequenceNumber extracts N from an id of the form prefix+N. Only the
// canonical decimal form counts, so "lane_07" and "lane_-1" are not
// numbered lane ids.
func SequenceNumber(prefix, id string) (int, bool) {
	if !strings.HasPrefix(id, prefix) {
		return 0, false
	}

	suffix := id[len(prefix):]

	n, err := strconv.Atoi(suffix)
	if err != nil || n < 0 || strconv.Itoa(n) != suffix {
		return 0, false
	}

	return n, true
}
