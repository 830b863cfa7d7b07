package geom

import "math"

// Transform places a shape: Position is the center, Size the unrotated
// extent and Rotation the clockwise angle around the center.
type Transform struct {
	Position Vec2     `json:"position"`
	Size     Vec2     `json:"size"`
	Rotation Rotation `json:"rotation"`
}

var ZeroTransform = Transform{}

func NewTransform(position, size Vec2, rotation Rotation) Transform {
	return Transform{Position: position, Size: size, Rotation: rotation}
}

// CreateFromRect returns an unrotated transform covering r.
func CreateFromRect(r Rect2) Transform {
	return Transform{Position: r.Center(), Size: r.Size}
}

// CreateFromTransformsAndRotation returns the smallest transform with the
// given rotation that covers all transforms. Used for group bounds.
func CreateFromTransformsAndRotation(transforms []Transform, rotation Rotation) Transform {
	if len(transforms) == 0 {
		return ZeroTransform
	}

	corners := make([]Vec2, 0, len(transforms)*4)
	for _, t := range transforms {
		corners = append(corners, t.Corners()...)
	}

	if rotation.IsZero() {
		return CreateFromRect(CreateFromVecs(corners...))
	}

	center := CreateFromVecs(corners...).Center()
	inverse := rotation.Neg()
	for i, c := range corners {
		corners[i] = c.Rotated(center, inverse)
	}
	box := CreateFromVecs(corners...)

	return Transform{
		Position: box.Center().Rotated(center, rotation),
		Size:     box.Size,
		Rotation: rotation,
	}
}

func (t Transform) HalfSize() Vec2 { return t.Size.Scale(0.5) }

// Rect returns the unrotated rectangle of t.
func (t Transform) Rect() Rect2 {
	return Rect2{Position: t.Position.Sub(t.HalfSize()), Size: t.Size}
}

// Corners returns the four corners of the rotated rectangle, clockwise from
// the top-left.
func (t Transform) Corners() []Vec2 {
	m := FromTransform(t)
	return []Vec2{
		m.TransformVec(Vec2{0, 0}),
		m.TransformVec(Vec2{t.Size.X, 0}),
		m.TransformVec(Vec2{t.Size.X, t.Size.Y}),
		m.TransformVec(Vec2{0, t.Size.Y}),
	}
}

// Aabb returns the axis-aligned bounding box of the rotated rectangle.
func (t Transform) Aabb() Rect2 {
	if t.Rotation.IsZero() {
		return t.Rect()
	}
	return FromTransform(t).TransformRect(NewRect2(0, 0, t.Size.X, t.Size.Y))
}

// ContainsVec reports whether p lies inside the rotated rectangle, edges
// included.
func (t Transform) ContainsVec(p Vec2) bool {
	if t.Rotation.IsZero() {
		return t.Rect().ContainsVec(p)
	}
	local := FromTransform(t).Invert().TransformVec(p)
	return NewRect2(0, 0, t.Size.X, t.Size.Y).ContainsVec(local)
}

func (t Transform) MoveTo(p Vec2) Transform {
	t.Position = p
	return t
}

func (t Transform) MoveBy(d Vec2) Transform {
	t.Position = t.Position.Add(d)
	return t
}

func (t Transform) RotateBy(r Rotation) Transform {
	t.Rotation = t.Rotation.Add(r)
	return t
}

func (t Transform) Equals(o Transform) bool {
	return t.Position.Equals(o.Position) && t.Size.Equals(o.Size) && t.Rotation.Sub(o.Rotation).IsZero()
}

// TransformByBounds maps t from the frame oldBounds to the frame newBounds,
// scaling its offset and size by the size ratio and adding the rotation delta.
func (t Transform) TransformByBounds(oldBounds, newBounds Transform) Transform {
	if oldBounds.Equals(newBounds) {
		return t
	}

	scale := newBounds.Size.Div(oldBounds.Size)

	offset := t.Position.Sub(oldBounds.Position).Rotated(Zero, oldBounds.Rotation.Neg())
	offset = offset.Mul(scale).Rotated(Zero, newBounds.Rotation)

	size := t.Size
	switch relative := t.Rotation.Sub(oldBounds.Rotation).Degrees(); {
	case nearlyRightAngle(relative, 0), nearlyRightAngle(relative, 180):
		size = size.Mul(scale)
	case nearlyRightAngle(relative, 90), nearlyRightAngle(relative, 270):
		size = size.Mul(Vec2{scale.Y, scale.X})
	}

	return Transform{
		Position: newBounds.Position.Add(offset),
		Size:     size,
		Rotation: t.Rotation.Add(newBounds.Rotation.Sub(oldBounds.Rotation)),
	}
}

func nearlyRightAngle(deg, target float64) bool {
	return math.Abs(deg-target) < 1e-6 || math.Abs(deg-target-360) < 1e-6
}
