package geom

import "math"

// Rotation is an angle in degrees normalized to [0, 360).
type Rotation float64

func Degrees(d float64) Rotation {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	return Rotation(d)
}

func (r Rotation) Degrees() float64 { return float64(r) }

func (r Rotation) Radians() float64 { return float64(r) * math.Pi / 180.0 }

func (r Rotation) Add(o Rotation) Rotation { return Degrees(float64(r) + float64(o)) }
func (r Rotation) Sub(o Rotation) Rotation { return Degrees(float64(r) - float64(o)) }
func (r Rotation) Neg() Rotation           { return Degrees(-float64(r)) }

func (r Rotation) IsZero() bool { return nearlyEqual(float64(r), 0) }
