package model

import "slices"

// CalculateSelection maps the items hit by a click or drag rectangle to the
// ids that end up selected.
//
// With allowGroupSelection each hit resolves to its outermost group. A
// single hit inside a group that is already selected drills down one level
// instead. With toggle, a single hit is added to or removed from current and
// multiple hits are added to it; without toggle current is replaced.
func CalculateSelection(hits []DiagramItem, d *Diagram, allowGroupSelection, toggle bool, current []string) []string {
	hits = slices.DeleteFunc(slices.Clone(hits), func(i DiagramItem) bool { return i == nil })

	resolve := func(id, stop string) string {
		if !allowGroupSelection {
			return id
		}
		for {
			pid, ok := d.parents[id]
			if !ok || pid == stop {
				return id
			}
			id = pid
		}
	}

	switch len(hits) {
	case 0:
		if toggle {
			return slices.Clone(current)
		}
		return []string{}

	case 1:
		hit := hits[0].ID()
		if toggle {
			id := resolve(hit, "")
			if i := slices.Index(current, id); i >= 0 {
				return slices.Delete(slices.Clone(current), i, i+1)
			}
			return append(slices.Clone(current), id)
		}

		stop := ""
		for _, a := range d.Ancestors(hit) {
			if slices.Contains(current, a) {
				stop = a
				break
			}
		}
		return []string{resolve(hit, stop)}
	}

	var selection []string
	if toggle {
		selection = slices.Clone(current)
	}
	for _, hit := range hits {
		id := resolve(hit.ID(), "")
		if !slices.Contains(selection, id) {
			selection = append(selection, id)
		}
	}
	return selection
}
