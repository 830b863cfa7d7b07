// Package geom holds the immutable geometry value types used by the diagram
// model: vectors, rectangles, rotations and shape transforms.
package geom

import "math"

// Vec2 is a 2D point or direction.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

var Zero = Vec2{}

func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Mul(o Vec2) Vec2 { return Vec2{v.X * o.X, v.Y * o.Y} }

func (v Vec2) Scale(f float64) Vec2 { return Vec2{v.X * f, v.Y * f} }

// Div divides component-wise. A zero divisor component yields 1 for that
// component so that degenerate sizes do not produce NaN scale factors.
func (v Vec2) Div(o Vec2) Vec2 {
	r := Vec2{1, 1}
	if o.X != 0 {
		r.X = v.X / o.X
	}
	if o.Y != 0 {
		r.Y = v.Y / o.Y
	}
	return r
}

func (v Vec2) LengthSquared() float64 { return v.X*v.X + v.Y*v.Y }

func (v Vec2) Length() float64 { return math.Sqrt(v.LengthSquared()) }

// Rotated rotates v around center by r.
func (v Vec2) Rotated(center Vec2, r Rotation) Vec2 {
	if r.IsZero() {
		return v
	}
	m := Translate(center.X, center.Y).Multiply(Rotate(r.Radians())).Multiply(Translate(-center.X, -center.Y))
	x, y := m.TransformPoint(v.X, v.Y)
	return Vec2{x, y}
}

func (v Vec2) Equals(o Vec2) bool {
	return nearlyEqual(v.X, o.X) && nearlyEqual(v.Y, o.Y)
}

func nearlyEqual(a, b float64) bool {
	const eps = 1e-9
	return math.Abs(a-b) < eps
}
