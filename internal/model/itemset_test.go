package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(items []DiagramItem) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.ID()
	}
	return out
}

func TestCreateFromDiagramTraversalOrder(t *testing.T) {
	t.Parallel()

	d := buildDiagram(t)
	d, err := d.Group("inner", []string{"b", "c"})
	require.NoError(t, err)
	d, err = d.Group("outer", []string{"a", "inner"})
	require.NoError(t, err)

	set, err := CreateFromDiagram([]string{"outer", "b", "d"}, d)
	require.NoError(t, err)

	assert.Equal(t, []string{"outer", "d"}, set.RootIDs())
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(set.AllVisuals()))
	require.Len(t, set.AllGroups(), 2)
	assert.Equal(t, "outer", set.AllGroups()[0].ID())
	assert.Equal(t, "inner", set.AllGroups()[1].ID())

	_, err = CreateFromDiagram([]string{"missing"}, d)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestNewItemSetComputesRootOrder(t *testing.T) {
	t.Parallel()

	visuals := []DiagramItem{newTestShape("a", 0, 0), newTestShape("b", 0, 0), newTestShape("c", 0, 0)}
	groups := []*Group{NewGroup("g", []string{"b"}, 0)}

	set, err := NewItemSet(visuals, groups)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "g", "c"}, set.RootIDs())

	d, err := Empty("diagram").AddItemSet(set)
	require.NoError(t, err)
	require.NoError(t, d.Validate())
	parent, ok := d.Parent("b")
	require.True(t, ok)
	assert.Equal(t, "g", parent.ID())

	_, err = d.AddItemSet(set)
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestNewItemSetRejectsBrokenGroups(t *testing.T) {
	t.Parallel()

	a := newTestShape("a", 0, 0)

	_, err := NewItemSet([]DiagramItem{a}, []*Group{NewGroup("g", []string{"missing"}, 0)})
	assert.ErrorIs(t, err, ErrItemNotFound)

	_, err = NewItemSet([]DiagramItem{a}, []*Group{NewGroup("g", []string{"a"}, 0), NewGroup("h", []string{"a"}, 0)})
	assert.ErrorIs(t, err, ErrInvalidGrouping)

	_, err = NewItemSet([]DiagramItem{a}, []*Group{NewGroup("g", []string{"h"}, 0), NewGroup("h", []string{"g"}, 0)})
	assert.ErrorIs(t, err, ErrInvalidGrouping)

	_, err = NewItemSet([]DiagramItem{a, a}, nil)
	assert.ErrorIs(t, err, ErrDuplicateID)
}
