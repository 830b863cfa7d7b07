package model

import (
	"fmt"
	"maps"
	"slices"

	"github.com/inamate/wireframe/backend-go/internal/geom"
)

// Diagram is an immutable snapshot of items, their root ordering and group
// membership. Every edit returns a new Diagram; the receiver stays valid.
//
// Items live in one id-keyed table. Root ids and each group's child ids
// partition that table: every item has exactly one owner.
type Diagram struct {
	id      string
	items   map[string]DiagramItem
	order   []string          // insertion order of items
	rootIDs []string          // back to front
	parents map[string]string // child id -> group id
}

// Empty creates a diagram without items.
func Empty(id string) *Diagram {
	return &Diagram{
		id:      id,
		items:   make(map[string]DiagramItem),
		parents: make(map[string]string),
	}
}

func (d *Diagram) ID() string { return d.id }

func (d *Diagram) Len() int { return len(d.items) }

func (d *Diagram) Item(id string) (DiagramItem, bool) {
	item, ok := d.items[id]
	return item, ok
}

func (d *Diagram) Contains(id string) bool {
	_, ok := d.items[id]
	return ok
}

// Items returns all items in insertion order.
func (d *Diagram) Items() []DiagramItem {
	items := make([]DiagramItem, len(d.order))
	for i, id := range d.order {
		items[i] = d.items[id]
	}
	return items
}

// Last returns the most recently added item, or nil for an empty diagram.
func (d *Diagram) Last() DiagramItem {
	if len(d.order) == 0 {
		return nil
	}
	return d.items[d.order[len(d.order)-1]]
}

func (d *Diagram) RootIDs() []string { return slices.Clone(d.rootIDs) }

// Parent returns the group directly owning id.
func (d *Diagram) Parent(id string) (*Group, bool) {
	pid, ok := d.parents[id]
	if !ok {
		return nil, false
	}
	g, ok := d.items[pid].(*Group)
	return g, ok
}

// Ancestors returns the chain of groups owning id, innermost first.
func (d *Diagram) Ancestors(id string) []string {
	var chain []string
	for {
		pid, ok := d.parents[id]
		if !ok {
			return chain
		}
		chain = append(chain, pid)
		id = pid
	}
}

// Descendants returns id and every item below it, depth first.
func (d *Diagram) Descendants(id string) []string {
	var out []string
	var walk func(string)
	walk = func(id string) {
		item, ok := d.items[id]
		if !ok {
			return
		}
		out = append(out, id)
		if g, ok := item.(*Group); ok {
			for _, c := range g.childIDs {
				walk(c)
			}
		}
	}
	walk(id)
	return out
}

// AddVisual adds a non-group item as the topmost root.
func (d *Diagram) AddVisual(item DiagramItem) (*Diagram, error) {
	if item == nil {
		return nil, fmt.Errorf("add visual: %w: nil item", ErrItemNotFound)
	}
	if _, ok := item.(*Group); ok {
		return nil, fmt.Errorf("add visual %s: %w: groups are created with Group", item.ID(), ErrInvalidGrouping)
	}
	if d.Contains(item.ID()) {
		return nil, fmt.Errorf("add visual: %w: %s", ErrDuplicateID, item.ID())
	}

	next := d.clone()
	next.put(item)
	next.rootIDs = append(next.rootIDs, item.ID())
	return next, nil
}

// Group wraps the given items into a new group with groupID. The items must
// share one owner; the group takes the place of the backmost item and keeps
// the items' relative order.
func (d *Diagram) Group(groupID string, ids []string) (*Diagram, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("group %s: %w: no items", groupID, ErrInvalidGrouping)
	}
	if d.Contains(groupID) {
		return nil, fmt.Errorf("group: %w: %s", ErrDuplicateID, groupID)
	}

	selected := make(map[string]bool, len(ids))
	parentID := ""
	for i, id := range ids {
		if !d.Contains(id) {
			return nil, fmt.Errorf("group %s: %w: %s", groupID, ErrItemNotFound, id)
		}
		pid := d.parents[id]
		if i > 0 && pid != parentID {
			return nil, fmt.Errorf("group %s: %w: items have different parents", groupID, ErrInvalidGrouping)
		}
		parentID = pid
		selected[id] = true
	}

	siblings := d.childList(parentID)
	children := make([]string, 0, len(selected))
	remaining := make([]string, 0, len(siblings))
	insertAt := -1
	for _, id := range siblings {
		if selected[id] {
			if insertAt < 0 {
				insertAt = len(remaining)
			}
			children = append(children, id)
			continue
		}
		remaining = append(remaining, id)
	}
	remaining = slices.Insert(remaining, insertAt, groupID)

	next := d.clone()
	next.put(NewGroup(groupID, children, 0))
	next.setChildList(parentID, remaining)
	for _, id := range children {
		next.parents[id] = groupID
	}
	if parentID != "" {
		next.parents[groupID] = parentID
	}
	return next, nil
}

// Ungroup replaces the group with its children.
func (d *Diagram) Ungroup(groupID string) (*Diagram, error) {
	g, ok := d.items[groupID].(*Group)
	if !ok {
		return nil, fmt.Errorf("ungroup: %w: group %s", ErrItemNotFound, groupID)
	}

	parentID := d.parents[groupID]
	siblings := d.childList(parentID)
	idx := slices.Index(siblings, groupID)
	siblings = slices.Replace(slices.Clone(siblings), idx, idx+1, g.childIDs...)

	next := d.clone()
	next.remove(groupID)
	next.setChildList(parentID, siblings)
	for _, id := range g.childIDs {
		if parentID == "" {
			delete(next.parents, id)
		} else {
			next.parents[id] = parentID
		}
	}
	return next, nil
}

// RemoveItems removes the items with all of their descendants. Groups left
// without children are removed as well.
func (d *Diagram) RemoveItems(ids ...string) (*Diagram, error) {
	for _, id := range ids {
		if !d.Contains(id) {
			return nil, fmt.Errorf("remove: %w: %s", ErrItemNotFound, id)
		}
	}

	next := d.clone()
	for _, id := range ids {
		if !next.Contains(id) {
			continue // already removed as a descendant
		}
		next.detach(id)
	}
	return next, nil
}

// detach removes id and its subtree, pruning emptied ancestors.
func (d *Diagram) detach(id string) {
	parentID, hasParent := d.parents[id]
	for _, did := range d.Descendants(id) {
		d.remove(did)
	}

	if !hasParent {
		d.setChildList("", slices.DeleteFunc(slices.Clone(d.rootIDs), func(s string) bool { return s == id }))
		return
	}

	siblings := slices.DeleteFunc(slices.Clone(d.childList(parentID)), func(s string) bool { return s == id })
	if len(siblings) == 0 {
		d.detach(parentID)
		return
	}
	d.setChildList(parentID, siblings)
}

type ReorderMode int

const (
	BringToFront ReorderMode = iota
	BringForwards
	SendBackwards
	SendToBack
)

var reorderModeNames = map[ReorderMode]string{
	BringToFront:  "front",
	BringForwards: "forwards",
	SendBackwards: "backwards",
	SendToBack:    "back",
}

func (m ReorderMode) String() string {
	if name, ok := reorderModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("ReorderMode(%d)", int(m))
}

// ParseReorderMode accepts the names returned by String.
func ParseReorderMode(s string) (ReorderMode, error) {
	for m, name := range reorderModeNames {
		if name == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown mode %q", ErrInvalidOrder, s)
}

// Reorder moves items that share one owner within that owner's z-order.
func (d *Diagram) Reorder(ids []string, mode ReorderMode) (*Diagram, error) {
	if len(ids) == 0 {
		return d, nil
	}

	selected := make(map[string]bool, len(ids))
	parentID := ""
	for i, id := range ids {
		if !d.Contains(id) {
			return nil, fmt.Errorf("reorder: %w: %s", ErrItemNotFound, id)
		}
		pid := d.parents[id]
		if i > 0 && pid != parentID {
			return nil, fmt.Errorf("reorder: %w: items have different parents", ErrInvalidOrder)
		}
		parentID = pid
		selected[id] = true
	}

	list := slices.Clone(d.childList(parentID))
	switch mode {
	case BringToFront, SendToBack:
		moved := make([]string, 0, len(selected))
		rest := make([]string, 0, len(list))
		for _, id := range list {
			if selected[id] {
				moved = append(moved, id)
			} else {
				rest = append(rest, id)
			}
		}
		if mode == BringToFront {
			list = append(rest, moved...)
		} else {
			list = append(moved, rest...)
		}

	case BringForwards:
		for i := len(list) - 2; i >= 0; i-- {
			if selected[list[i]] && !selected[list[i+1]] {
				list[i], list[i+1] = list[i+1], list[i]
			}
		}

	case SendBackwards:
		for i := 1; i < len(list); i++ {
			if selected[list[i]] && !selected[list[i-1]] {
				list[i], list[i-1] = list[i-1], list[i]
			}
		}

	default:
		return nil, fmt.Errorf("reorder: %w: unknown mode %d", ErrInvalidOrder, mode)
	}

	next := d.clone()
	next.setChildList(parentID, list)
	return next, nil
}

// TransformItems maps the items and all their descendants from oldBounds
// into newBounds.
func (d *Diagram) TransformItems(ids []string, oldBounds, newBounds geom.Transform) (*Diagram, error) {
	targets, err := d.subtrees(ids)
	if err != nil {
		return nil, fmt.Errorf("transform: %w", err)
	}

	next := d.clone()
	for _, id := range targets {
		next.items[id] = d.items[id].TransformByBounds(oldBounds, newBounds)
	}
	return next, nil
}

// UpdateAppearance sets key on every shape among the items and their
// descendants. Non-shape items are skipped.
func (d *Diagram) UpdateAppearance(ids []string, key string, value any) (*Diagram, error) {
	targets, err := d.subtrees(ids)
	if err != nil {
		return nil, fmt.Errorf("update appearance: %w", err)
	}

	next := d.clone()
	for _, id := range targets {
		s, ok := d.items[id].(*Shape)
		if !ok {
			continue
		}
		updated, err := s.SetAppearance(key, value)
		if err != nil {
			return nil, fmt.Errorf("update appearance of %s: %w", id, err)
		}
		next.items[id] = updated
	}
	return next, nil
}

// AddItemSet adds every item of set. The set's roots are appended on top of
// the existing roots. Nothing is added if any id is already taken.
func (d *Diagram) AddItemSet(set *ItemSet) (*Diagram, error) {
	for _, item := range set.Items() {
		if d.Contains(item.ID()) {
			return nil, fmt.Errorf("add items: %w: %s", ErrDuplicateID, item.ID())
		}
	}

	next := d.clone()
	for _, item := range set.Items() {
		next.put(item)
	}
	for _, g := range set.AllGroups() {
		for _, c := range g.childIDs {
			next.parents[c] = g.id
		}
	}
	next.rootIDs = append(next.rootIDs, set.RootIDs()...)
	return next, nil
}

// Validate checks the ownership invariants: every referenced id exists and
// every item is owned exactly once, by the root list or by one group.
func (d *Diagram) Validate() error {
	owner := make(map[string]string, len(d.items))
	claim := func(id, by string) error {
		if !d.Contains(id) {
			return fmt.Errorf("%w: %s references missing item %s", ErrBrokenInvariants, by, id)
		}
		if prev, ok := owner[id]; ok {
			return fmt.Errorf("%w: %s owned by both %s and %s", ErrBrokenInvariants, id, prev, by)
		}
		owner[id] = by
		return nil
	}

	for _, id := range d.rootIDs {
		if err := claim(id, "root"); err != nil {
			return err
		}
	}
	for _, id := range d.order {
		g, ok := d.items[id].(*Group)
		if !ok {
			continue
		}
		for _, c := range g.childIDs {
			if err := claim(c, g.id); err != nil {
				return err
			}
		}
	}
	if len(owner) != len(d.items) {
		return fmt.Errorf("%w: %d items without owner", ErrBrokenInvariants, len(d.items)-len(owner))
	}
	return nil
}

// subtrees expands ids to themselves plus descendants, without duplicates.
func (d *Diagram) subtrees(ids []string) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, id := range ids {
		if !d.Contains(id) {
			return nil, fmt.Errorf("%w: %s", ErrItemNotFound, id)
		}
		for _, did := range d.Descendants(id) {
			if !seen[did] {
				seen[did] = true
				out = append(out, did)
			}
		}
	}
	return out, nil
}

func (d *Diagram) childList(parentID string) []string {
	if parentID == "" {
		return d.rootIDs
	}
	return d.items[parentID].(*Group).childIDs
}

func (d *Diagram) setChildList(parentID string, ids []string) {
	if parentID == "" {
		d.rootIDs = ids
		return
	}
	d.items[parentID] = d.items[parentID].(*Group).withChildIDs(ids)
}

func (d *Diagram) put(item DiagramItem) {
	d.items[item.ID()] = item
	d.order = append(d.order, item.ID())
}

func (d *Diagram) remove(id string) {
	delete(d.items, id)
	delete(d.parents, id)
	d.order = slices.DeleteFunc(d.order, func(s string) bool { return s == id })
}

// clone copies the tables so the copy can be edited. Items are immutable
// and shared.
func (d *Diagram) clone() *Diagram {
	return &Diagram{
		id:      d.id,
		items:   maps.Clone(d.items),
		order:   slices.Clone(d.order),
		rootIDs: slices.Clone(d.rootIDs),
		parents: maps.Clone(d.parents),
	}
}
