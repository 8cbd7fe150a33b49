package mapdata_test

import "github.com/sarchlab/lanemap/mapdata"

const categorySign mapdata.Category = "sign"

type sign struct {
	id string
}

func (s *sign) Category() mapdata.Category { return categorySign }
func (s *sign) ID() string                 { return s.id }
func (s *sign) SetID(id string)            { s.id = id }

func lanesWithIDs(ids ...string) []mapdata.Entity {
	entities := make([]mapdata.Entity, len(ids))

	for i, id := range ids {
		l := mapdata.NewLane()
		l.SetID(id)
		entities[i] = l
	}

	return entities
}

func idsOf(entities []mapdata.Entity) []string {
	ids := make([]string, len(entities))
	for i, e := range entities {
		ids[i] = e.ID()
	}

	return ids
}

type fakeHolder struct {
	entities []mapdata.Entity
}

func (h *fakeHolder) EntitiesOf(cat mapdata.Category) []mapdata.Entity {
	var list []mapdata.Entity

	for _, e := range h.entities {
		if e.Category() == cat {
			list = append(list, e)
		}
	}

	return list
}

// fakeScene has one holder, plus entities that live outside of the holder.
type fakeScene struct {
	holder  *fakeHolder
	outside []mapdata.Entity
}

func (s *fakeScene) Entities(cat mapdata.Category) []mapdata.Entity {
	var list []mapdata.Entity

	if s.holder != nil {
		list = append(list, s.holder.EntitiesOf(cat)...)
	}

	for _, e := range s.outside {
		if e.Category() == cat {
			list = append(list, e)
		}
	}

	return list
}

func (s *fakeScene) FindHolder(_ mapdata.Category) (mapdata.Holder, bool) {
	if s.holder == nil {
		return nil, false
	}

	return s.holder, true
}
