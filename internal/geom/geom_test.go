package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateFromVecs(t *testing.T) {
	t.Parallel()

	r := CreateFromVecs(V(40, 10), V(10, 30))
	assert.Equal(t, NewRect2(10, 10, 30, 20), r)
	assert.Equal(t, 600.0, r.Area())

	single := CreateFromVecs(V(5, 7))
	assert.Equal(t, NewRect2(5, 7, 0, 0), single)
	assert.Equal(t, 0.0, single.Area())
}

func TestContainsRectInclusiveBoundary(t *testing.T) {
	t.Parallel()

	outer := NewRect2(10, 10, 100, 50)

	assert.True(t, outer.ContainsRect(outer))
	assert.True(t, outer.ContainsRect(NewRect2(10, 10, 100, 0)))
	assert.True(t, outer.ContainsRect(NewRect2(20, 20, 10, 10)))
	assert.False(t, outer.ContainsRect(NewRect2(9.5, 10, 10, 10)))
	assert.False(t, outer.ContainsRect(NewRect2(100, 50, 11, 10)))
}

func TestContainsVec(t *testing.T) {
	t.Parallel()

	r := NewRect2(0, 0, 10, 10)

	assert.True(t, r.ContainsVec(V(0, 0)))
	assert.True(t, r.ContainsVec(V(10, 10)))
	assert.True(t, r.ContainsVec(V(5, 5)))
	assert.False(t, r.ContainsVec(V(10.01, 5)))
}

func TestCreateFromRects(t *testing.T) {
	t.Parallel()

	u := CreateFromRects(NewRect2(0, 0, 10, 10), NewRect2(20, 5, 10, 20))
	assert.Equal(t, NewRect2(0, 0, 30, 25), u)
}

func TestRotationNormalizes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 270.0, Degrees(-90).Degrees())
	assert.Equal(t, 30.0, Degrees(390).Degrees())
	assert.True(t, Degrees(360).IsZero())
}

func TestAabbUnrotated(t *testing.T) {
	t.Parallel()

	tr := NewTransform(V(100, 20), V(40, 10), 0)
	assert.Equal(t, NewRect2(80, 15, 40, 10), tr.Aabb())
}

func TestAabbRotated(t *testing.T) {
	t.Parallel()

	tr := NewTransform(V(50, 50), V(40, 10), Degrees(90))
	aabb := tr.Aabb()

	assert.InDelta(t, 45, aabb.Left(), 1e-9)
	assert.InDelta(t, 30, aabb.Top(), 1e-9)
	assert.InDelta(t, 10, aabb.Width(), 1e-9)
	assert.InDelta(t, 40, aabb.Height(), 1e-9)

	diag := NewTransform(V(0, 0), V(10, 10), Degrees(45)).Aabb()
	assert.InDelta(t, 10*math.Sqrt2, diag.Width(), 1e-9)
	assert.True(t, diag.ContainsVec(V(0, 7)))
}

func TestTransformByBoundsScalesAndMoves(t *testing.T) {
	t.Parallel()

	oldBounds := NewTransform(V(50, 50), V(100, 100), 0)
	newBounds := NewTransform(V(200, 100), V(200, 100), 0)
	child := NewTransform(V(25, 25), V(50, 50), 0)

	moved := child.TransformByBounds(oldBounds, newBounds)

	assert.True(t, moved.Position.Equals(V(150, 75)), "got %v", moved.Position)
	assert.True(t, moved.Size.Equals(V(100, 50)), "got %v", moved.Size)
	assert.True(t, moved.Rotation.IsZero())
}

func TestTransformByBoundsRotates(t *testing.T) {
	t.Parallel()

	oldBounds := NewTransform(V(0, 0), V(100, 100), 0)
	newBounds := NewTransform(V(0, 0), V(100, 100), Degrees(90))
	child := NewTransform(V(10, 0), V(20, 10), 0)

	rotated := child.TransformByBounds(oldBounds, newBounds)

	assert.True(t, rotated.Position.Equals(V(0, 10)), "got %v", rotated.Position)
	assert.Equal(t, 90.0, rotated.Rotation.Degrees())
	assert.True(t, rotated.Size.Equals(V(20, 10)))
}

func TestTransformByBoundsSameBoundsIsIdentity(t *testing.T) {
	t.Parallel()

	b := NewTransform(V(10, 10), V(20, 20), 0)
	child := NewTransform(V(3, 4), V(5, 6), Degrees(10))

	assert.Equal(t, child, child.TransformByBounds(b, b))
}

func TestCreateFromTransformsAndRotation(t *testing.T) {
	t.Parallel()

	a := NewTransform(V(10, 10), V(20, 20), 0)
	b := NewTransform(V(50, 30), V(20, 20), 0)

	bounds := CreateFromTransformsAndRotation([]Transform{a, b}, 0)

	assert.Equal(t, NewRect2(0, 0, 60, 40), bounds.Aabb())
	assert.Equal(t, ZeroTransform, CreateFromTransformsAndRotation(nil, 0))

	rotated := CreateFromTransformsAndRotation([]Transform{a}, Degrees(90))
	assert.True(t, rotated.Position.Equals(V(10, 10)))
	assert.True(t, rotated.Size.Equals(V(20, 20)))
}

func TestMatrixInvert(t *testing.T) {
	t.Parallel()

	m := Translate(10, 5).Multiply(Rotate(0.3)).Multiply(Translate(-4, 2))
	product := m.Multiply(m.Invert())
	for i, want := range Identity() {
		assert.InDelta(t, want, product[i], 1e-9)
	}
	assert.Equal(t, Identity(), Matrix2D{}.Invert())
}

func TestTransformContainsVec(t *testing.T) {
	t.Parallel()

	straight := NewTransform(V(300, 300), V(100, 60), 0)
	assert.True(t, straight.ContainsVec(V(350, 330)))
	assert.False(t, straight.ContainsVec(V(350, 331)))

	rotated := straight.RotateBy(Degrees(45))
	assert.True(t, rotated.ContainsVec(V(300, 300)))
	assert.True(t, rotated.ContainsVec(V(340, 300)))
	assert.True(t, rotated.Aabb().ContainsVec(V(350, 250)))
	assert.False(t, rotated.ContainsVec(V(350, 250)))
}
