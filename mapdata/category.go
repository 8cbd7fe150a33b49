package mapdata

import (
	"sort"
	"sync"

	"github.com/pkg/errors"
)

// A Category is the kind of a map entity. Ids are unique within a category.
type Category string

// CategoryLane is the category of lanes.
const CategoryLane Category = "lane"

// LaneIDPrefix is prepended to the sequence number of generated lane ids.
const LaneIDPrefix = "lane_"

// A CategoryRegistry maps categories to the prefixes of their generated ids.
type CategoryRegistry struct {
	lock     sync.RWMutex
	prefixes map[Category]string
}

// NewCategoryRegistry creates an empty registry.
func NewCategoryRegistry() *CategoryRegistry {
	return &CategoryRegistry{
		prefixes: make(map[Category]string),
	}
}

// Register associates a prefix with a category. A category can only be
// registered once.
func (r *CategoryRegistry) Register(cat Category, prefix string) error {
	if cat == "" {
		return errors.New("category must not be empty")
	}

	if prefix == "" {
		return errors.Errorf("prefix of category %s must not be empty", cat)
	}

	r.lock.Lock()
	defer r.lock.Unlock()

	if _, ok := r.prefixes[cat]; ok {
		return errors.Errorf("category %s already registered", cat)
	}

	r.prefixes[cat] = prefix

	return nil
}

// Prefix returns the prefix of a category and whether the category is
// registered.
func (r *CategoryRegistry) Prefix(cat Category) (string, bool) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	prefix, ok := r.prefixes[cat]

	return prefix, ok
}

// PrefixMustBeRegistered returns the prefix of a category and panics if the
// category is not registered.
func (r *CategoryRegistry) PrefixMustBeRegistered(cat Category) string {
	prefix, ok := r.Prefix(cat)
	if !ok {
		panic("category " + string(cat) + " is not registered")
	}

	return prefix
}

// Categories returns all the registered categories, sorted by name.
func (r *CategoryRegistry) Categories() []Category {
	r.lock.RLock()
	defer r.lock.RUnlock()

	cats := make([]Category, 0, len(r.prefixes))
	for cat := range r.prefixes {
		cats = append(cats, cat)
	}

	sort.Slice(cats, func(i, j int) bool { return cats[i] < cats[j] })

	return cats
}

// DefaultCategories is the registry used when no other registry is given.
var DefaultCategories = NewCategoryRegistry()

func init() {
	err := DefaultCategories.Register(CategoryLane, LaneIDPrefix)
	if err != nil {
		panic(err)
	}
}
