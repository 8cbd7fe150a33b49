// Package scene provides an in-memory document made of a tree of nodes. It
// is the host document used by the lanemap tools.
package scene

import (
	"github.com/sarchlab/lanemap/mapdata"
)

// A Node is an object of the document. A node may carry one map entity and
// may be marked as the holder of the map objects.
type Node struct {
	name     string
	holder   bool
	entity   mapdata.Entity
	parent   *Node
	children []*Node
}

// NewNode creates a node.
func NewNode(name string) *Node {
	return &Node{name: name}
}

// NewHolderNode creates a node that holds map objects.
func NewHolderNode(name string) *Node {
	return &Node{name: name, holder: true}
}

// NewEntityNode creates a node that carries an entity.
func NewEntityNode(name string, e mapdata.Entity) *Node {
	return &Node{name: name, entity: e}
}

// Name returns the name of the node.
func (n *Node) Name() string {
	return n.name
}

// IsHolder returns true if the node holds map objects.
func (n *Node) IsHolder() bool {
	return n.holder
}

// SetHolder marks or unmarks the node as a holder.
func (n *Node) SetHolder(holder bool) {
	n.holder = holder
}

// Entity returns the entity of the node, or nil.
func (n *Node) Entity() mapdata.Entity {
	return n.entity
}

// SetEntity attaches an entity to the node.
func (n *Node) SetEntity(e mapdata.Entity) {
	n.entity = e
}

// Parent returns the parent node, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the child nodes in order.
func (n *Node) Children() []*Node {
	return append([]*Node(nil), n.children...)
}

// AddChild appends a child. It panics if the child already has a parent.
func (n *Node) AddChild(child *Node) {
	if child.parent != nil {
		panic("node " + child.name + " already has a parent")
	}

	child.parent = n
	n.children = append(n.children, child)
}

// RemoveChild detaches a child. It returns false if the node is not a child.
func (n *Node) RemoveChild(child *Node) bool {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil

			return true
		}
	}

	return false
}

// Walk visits the node and its descendants in pre-order. Returning false from
// visit skips the descendants of the visited node.
func (n *Node) Walk(visit func(*Node) bool) {
	if !visit(n) {
		return
	}

	for _, c := range n.children {
		c.Walk(visit)
	}
}

// EntitiesOf returns the entities of a category carried by the node and its
// descendants, in pre-order.
func (n *Node) EntitiesOf(cat mapdata.Category) []mapdata.Entity {
	var entities []mapdata.Entity

	n.Walk(func(node *Node) bool {
		if node.entity != nil && node.entity.Category() == cat {
			entities = append(entities, node.entity)
		}

		return true
	})

	return entities
}
