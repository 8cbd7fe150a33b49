package mapfile

import (
	"github.com/pkg/errors"

	"github.com/sarchlab/lanemap/mapdata"
	"github.com/sarchlab/lanemap/scene"
)

type fileDocument struct {
	Name  string     `json:"name" yaml:"name"`
	Nodes []fileNode `json:"nodes" yaml:"nodes"`
}

type fileNode struct {
	Name     string      `json:"name" yaml:"name"`
	Holder   bool        `json:"holder,omitempty" yaml:"holder,omitempty"`
	Entity   *fileEntity `json:"entity,omitempty" yaml:"entity,omitempty"`
	Children []fileNode  `json:"children,omitempty" yaml:"children,omitempty"`
}

type fileEntity struct {
	Type      string          `json:"type" yaml:"type"`
	ID        string          `json:"id" yaml:"id"`
	Spawnable bool            `json:"spawnable,omitempty" yaml:"spawnable,omitempty"`
	DenySpawn bool            `json:"deny_spawn,omitempty" yaml:"deny_spawn,omitempty"`
	Points    []mapdata.Point `json:"points,omitempty" yaml:"points,omitempty"`
}

func toFile(doc *scene.Document) fileDocument {
	fd := fileDocument{Name: doc.Name()}

	for _, r := range doc.Roots() {
		fd.Nodes = append(fd.Nodes, nodeToFile(r))
	}

	return fd
}

func nodeToFile(n *scene.Node) fileNode {
	fn := fileNode{
		Name:   n.Name(),
		Holder: n.IsHolder(),
	}

	if e := n.Entity(); e != nil {
		fn.Entity = entityToFile(e)
	}

	for _, c := range n.Children() {
		fn.Children = append(fn.Children, nodeToFile(c))
	}

	return fn
}

func entityToFile(e mapdata.Entity) *fileEntity {
	fe := &fileEntity{
		Type: string(e.Category()),
		ID:   e.ID(),
	}

	if s, ok := e.(mapdata.Spawnable); ok {
		fe.Spawnable = s.IsSpawnable()
	}

	if d, ok := e.(mapdata.SpawnDenier); ok {
		fe.DenySpawn = d.DenySpawn()
	}

	if p, ok := e.(mapdata.PointHolder); ok {
		fe.Points = p.Points()
	}

	return fe
}

func fromFile(fd fileDocument) (*scene.Document, error) {
	doc := scene.NewDocument(fd.Name)

	for _, fn := range fd.Nodes {
		n, err := nodeFromFile(fn)
		if err != nil {
			return nil, err
		}

		doc.AddRoot(n)
	}

	return doc, nil
}

func nodeFromFile(fn fileNode) (*scene.Node, error) {
	n := scene.NewNode(fn.Name)
	n.SetHolder(fn.Holder)

	if fn.Entity != nil {
		e, err := entityFromFile(fn.Entity)
		if err != nil {
			return nil, errors.Wrapf(err, "node %s", fn.Name)
		}

		n.SetEntity(e)
	}

	for _, fc := range fn.Children {
		c, err := nodeFromFile(fc)
		if err != nil {
			return nil, err
		}

		n.AddChild(c)
	}

	return n, nil
}

func entityFromFile(fe *fileEntity) (mapdata.Entity, error) {
	e, err := CreateEntity(fe.Type)
	if err != nil {
		return nil, err
	}

	e.SetID(fe.ID)

	if s, ok := e.(mapdata.Spawnable); ok {
		s.SetSpawnable(fe.Spawnable)
	}

	if d, ok := e.(mapdata.SpawnDenier); ok {
		d.SetDenySpawn(fe.DenySpawn)
	}

	if p, ok := e.(mapdata.PointHolder); ok {
		p.SetPoints(fe.Points)
	}

	return e, nil
}
