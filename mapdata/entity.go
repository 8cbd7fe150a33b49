package mapdata

// An Entity is a map object that carries an id unique within its category.
type Entity interface {
	// Category returns the category that scopes the uniqueness of the id.
	Category() Category

	// ID returns the current id, which may be empty.
	ID() string

	// SetID replaces the id. No uniqueness check is performed.
	SetID(id string)
}

// Spawnable is an entity that downstream simulation may use as a spawn
// location.
type Spawnable interface {
	IsSpawnable() bool
	SetSpawnable(spawnable bool)
}

// SpawnDenier is an entity that can be barred from spawning even when it is
// spawnable.
type SpawnDenier interface {
	DenySpawn() bool
	SetDenySpawn(deny bool)
}

// PointHolder is an entity that is shaped by an ordered sequence of points.
type PointHolder interface {
	Points() []Point
	SetPoints(points []Point)
}
