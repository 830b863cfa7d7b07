package typeid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLikeKeepsPrefix(t *testing.T) {
	t.Parallel()

	old := NewShapeID()
	fresh := NewLike(old)

	assert.NotEqual(t, old, fresh)
	require.Equal(t, PrefixShape, Prefix(fresh))
}

func TestNewLikeFallsBackToItemPrefix(t *testing.T) {
	t.Parallel()

	fresh := NewLike("8c1f0a52-7c3e-4d1b-9a57-0f3b1f7b2f11")

	assert.Equal(t, PrefixItem, Prefix(fresh))
}

func TestPrefix(t *testing.T) {
	t.Parallel()

	assert.Equal(t, PrefixGroup, Prefix(NewGroupID()))
	assert.Equal(t, "", Prefix("not a typeid"))
}
