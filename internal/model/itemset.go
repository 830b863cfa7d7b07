package model

import (
	"fmt"
	"slices"
)

// ItemSet is a flattened, non-owning view over a subtree selection of a
// diagram: the visuals and groups reachable from a list of root ids, in
// depth-first order following each group's child order.
type ItemSet struct {
	rootIDs []string
	visuals []DiagramItem
	groups  []*Group
	byID    map[string]DiagramItem
}

// CreateFromDiagram collects the items reachable from ids. Ids that are
// descendants of another requested id are covered by their ancestor.
func CreateFromDiagram(ids []string, d *Diagram) (*ItemSet, error) {
	requested := make(map[string]bool, len(ids))
	for _, id := range ids {
		if !d.Contains(id) {
			return nil, fmt.Errorf("item set: %w: %s", ErrItemNotFound, id)
		}
		requested[id] = true
	}

	set := &ItemSet{byID: make(map[string]DiagramItem)}

	var walk func(id string)
	walk = func(id string) {
		item := d.items[id]
		set.byID[id] = item
		if g, ok := item.(*Group); ok {
			set.groups = append(set.groups, g)
			for _, c := range g.childIDs {
				walk(c)
			}
			return
		}
		set.visuals = append(set.visuals, item)
	}

	for _, id := range ids {
		if _, done := set.byID[id]; done || hasRequestedAncestor(d, id, requested) {
			continue
		}
		set.rootIDs = append(set.rootIDs, id)
		walk(id)
	}
	return set, nil
}

func hasRequestedAncestor(d *Diagram, id string, requested map[string]bool) bool {
	for _, a := range d.Ancestors(id) {
		if requested[a] {
			return true
		}
	}
	return false
}

// NewItemSet builds a set from loose items, typically freshly deserialized
// ones. Every group child must be part of the set and owned by exactly one
// group. Roots are the items no group owns, ordered by their first visual
// in the visuals list.
func NewItemSet(visuals []DiagramItem, groups []*Group) (*ItemSet, error) {
	set := &ItemSet{
		visuals: slices.Clone(visuals),
		groups:  slices.Clone(groups),
		byID:    make(map[string]DiagramItem, len(visuals)+len(groups)),
	}

	for _, item := range set.Items() {
		if _, dup := set.byID[item.ID()]; dup {
			return nil, fmt.Errorf("item set: %w: %s", ErrDuplicateID, item.ID())
		}
		set.byID[item.ID()] = item
	}

	owner := make(map[string]string)
	for _, g := range set.groups {
		for _, c := range g.childIDs {
			if _, ok := set.byID[c]; !ok {
				return nil, fmt.Errorf("item set: group %s: %w: child %s", g.id, ErrItemNotFound, c)
			}
			if prev, ok := owner[c]; ok {
				return nil, fmt.Errorf("item set: %w: %s is a child of %s and %s", ErrInvalidGrouping, c, prev, g.id)
			}
			owner[c] = g.id
		}
	}

	rank := make(map[string]int, len(set.byID))
	for i, v := range set.visuals {
		rank[v.ID()] = i
	}
	var firstVisual func(id string) int
	firstVisual = func(id string) int {
		g, ok := set.byID[id].(*Group)
		if !ok {
			return rank[id]
		}
		best := len(set.visuals)
		for _, c := range g.childIDs {
			best = min(best, firstVisual(c))
		}
		return best
	}

	for _, item := range set.Items() {
		if _, owned := owner[item.ID()]; !owned {
			set.rootIDs = append(set.rootIDs, item.ID())
		}
	}
	if err := set.checkAcyclic(); err != nil {
		return nil, err
	}
	slices.SortStableFunc(set.rootIDs, func(a, b string) int {
		return firstVisual(a) - firstVisual(b)
	})
	return set, nil
}

// checkAcyclic verifies every item is reachable from a root.
func (s *ItemSet) checkAcyclic() error {
	seen := make(map[string]bool, len(s.byID))
	var walk func(id string)
	walk = func(id string) {
		if seen[id] {
			return
		}
		seen[id] = true
		if g, ok := s.byID[id].(*Group); ok {
			for _, c := range g.childIDs {
				walk(c)
			}
		}
	}
	for _, id := range s.rootIDs {
		walk(id)
	}
	if len(seen) != len(s.byID) {
		return fmt.Errorf("item set: %w: groups form a cycle", ErrInvalidGrouping)
	}
	return nil
}

func (s *ItemSet) RootIDs() []string { return slices.Clone(s.rootIDs) }

// AllVisuals returns the non-group items in traversal order.
func (s *ItemSet) AllVisuals() []DiagramItem { return slices.Clone(s.visuals) }

// AllGroups returns the groups in traversal order.
func (s *ItemSet) AllGroups() []*Group { return slices.Clone(s.groups) }

// Items returns visuals followed by groups.
func (s *ItemSet) Items() []DiagramItem {
	items := make([]DiagramItem, 0, len(s.visuals)+len(s.groups))
	items = append(items, s.visuals...)
	for _, g := range s.groups {
		items = append(items, g)
	}
	return items
}

func (s *ItemSet) Item(id string) (DiagramItem, bool) {
	item, ok := s.byID[id]
	return item, ok
}

func (s *ItemSet) Contains(id string) bool {
	_, ok := s.byID[id]
	return ok
}

func (s *ItemSet) Len() int { return len(s.byID) }
