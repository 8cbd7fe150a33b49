package mapdata

// A Lane is a lane placeholder of a road network.
type Lane struct {
	DataPoints

	id        string
	spawnable bool
	denySpawn bool
}

// NewLane creates a lane with an empty id that is not spawnable.
func NewLane() *Lane {
	return &Lane{}
}

// Category returns CategoryLane.
func (l *Lane) Category() Category {
	return CategoryLane
}

// ID returns the id of the lane.
func (l *Lane) ID() string {
	return l.id
}

// SetID replaces the id of the lane.
func (l *Lane) SetID(id string) {
	l.id = id
}

// IsSpawnable returns true if the lane matches the pattern of a spawnable
// lane.
func (l *Lane) IsSpawnable() bool {
	return l.spawnable
}

// SetSpawnable sets if the lane is spawnable.
func (l *Lane) SetSpawnable(spawnable bool) {
	l.spawnable = spawnable
}

// DenySpawn returns true if spawning is denied on the lane regardless of the
// spawnable flag, as on some ramp lanes.
func (l *Lane) DenySpawn() bool {
	return l.denySpawn
}

// SetDenySpawn sets the deny-spawn override.
func (l *Lane) SetDenySpawn(deny bool) {
	l.denySpawn = deny
}

// SpawnEligible returns true if the lane can be used as a spawn location.
func (l *Lane) SpawnEligible() bool {
	return l.spawnable && !l.denySpawn
}
