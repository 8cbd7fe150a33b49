package scene

import (
	"github.com/sarchlab/lanemap/mapdata"
)

// A Document is a named forest of nodes.
type Document struct {
	name  string
	roots []*Node
}

// NewDocument creates an empty document.
func NewDocument(name string) *Document {
	return &Document{name: name}
}

// Name returns the name of the document.
func (d *Document) Name() string {
	return d.name
}

// Roots returns the root nodes in order.
func (d *Document) Roots() []*Node {
	return append([]*Node(nil), d.roots...)
}

// AddRoot appends a root node. It panics if the node has a parent.
func (d *Document) AddRoot(n *Node) {
	if n.parent != nil {
		panic("node " + n.name + " has a parent and cannot be a root")
	}

	d.roots = append(d.roots, n)
}

// Walk visits all the nodes in pre-order, root by root.
func (d *Document) Walk(visit func(*Node) bool) {
	for _, r := range d.roots {
		r.Walk(visit)
	}
}

// FindHolder returns the first holder node in pre-order. The document has a
// single holder for all categories.
func (d *Document) FindHolder(_ mapdata.Category) (mapdata.Holder, bool) {
	holder := d.HolderNode()
	if holder == nil {
		return nil, false
	}

	return holder, true
}

// HolderNode returns the first holder node in pre-order, or nil.
func (d *Document) HolderNode() *Node {
	var holder *Node

	d.Walk(func(n *Node) bool {
		if holder != nil {
			return false
		}

		if n.holder {
			holder = n
			return false
		}

		return true
	})

	return holder
}

// Entities returns every entity of a category in the document, including the
// ones outside of the holder.
func (d *Document) Entities(cat mapdata.Category) []mapdata.Entity {
	var entities []mapdata.Entity

	for _, r := range d.roots {
		entities = append(entities, r.EntitiesOf(cat)...)
	}

	return entities
}

// NodeOf returns the node that carries the entity, or nil.
func (d *Document) NodeOf(e mapdata.Entity) *Node {
	var found *Node

	d.Walk(func(n *Node) bool {
		if found != nil {
			return false
		}

		if n.entity == e {
			found = n
			return false
		}

		return true
	})

	return found
}
