package mapdata

import "sort"

// DuplicateID is an id that more than one entity of a category uses.
type DuplicateID struct {
	ID       string
	Entities []Entity
}

// FindDuplicateIDs lists the non-blank ids used by more than one entity of a
// category, sorted by id. Renaming by hand can create duplicates and the
// backfill pass leaves them alone, so they are reported rather than fixed.
func FindDuplicateIDs(lister EntityLister, cat Category) []DuplicateID {
	byID := make(map[string][]Entity)

	for _, e := range lister.Entities(cat) {
		if IsBlankID(e.ID()) {
			continue
		}

		byID[e.ID()] = append(byID[e.ID()], e)
	}

	var dups []DuplicateID

	for id, entities := range byID {
		if len(entities) > 1 {
			dups = append(dups, DuplicateID{ID: id, Entities: entities})
		}
	}

	sort.Slice(dups, func(i, j int) bool { return dups[i].ID < dups[j].ID })

	return dups
}

// EntitiesWithID returns the entities of a category whose id equals the given
// one, in the lister order.
func EntitiesWithID(lister EntityLister, cat Category, id string) []Entity {
	var found []Entity

	for _, e := range lister.Entities(cat) {
		if e.ID() == id {
			found = append(found, e)
		}
	}

	return found
}
