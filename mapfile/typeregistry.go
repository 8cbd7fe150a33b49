package mapfile

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/sarchlab/lanemap/mapdata"
)

// An EntityFactory creates an empty entity of a type.
type EntityFactory func() mapdata.Entity

type typeRegistry struct {
	lock sync.RWMutex

	factories map[string]EntityFactory
}

func (r *typeRegistry) RegisterType(typeName string, f EntityFactory) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if _, ok := r.factories[typeName]; ok {
		return errors.Errorf("entity type %s already registered", typeName)
	}

	r.factories[typeName] = f

	return nil
}

func (r *typeRegistry) CreateInstance(typeName string) (mapdata.Entity, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	f, ok := r.factories[typeName]
	if !ok {
		return nil, errors.Errorf("entity type %s not found", typeName)
	}

	return f(), nil
}

var registry = typeRegistry{
	factories: map[string]EntityFactory{
		string(mapdata.CategoryLane): func() mapdata.Entity {
			return mapdata.NewLane()
		},
	},
}

// RegisterEntityType makes an entity type loadable. Entities are saved with
// their category as type name, so the type name must be the category.
func RegisterEntityType(typeName string, f EntityFactory) error {
	return registry.RegisterType(typeName, f)
}

// CreateEntity creates an empty entity of a registered type.
func CreateEntity(typeName string) (mapdata.Entity, error) {
	return registry.CreateInstance(typeName)
}
