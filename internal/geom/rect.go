package geom

import "math"

// Rect2 is an axis-aligned rectangle given by its top-left position and size.
type Rect2 struct {
	Position Vec2 `json:"position"`
	Size     Vec2 `json:"size"`
}

var EmptyRect = Rect2{}

func NewRect2(x, y, w, h float64) Rect2 {
	return Rect2{Position: Vec2{x, y}, Size: Vec2{w, h}}
}

// CreateFromVecs returns the smallest rectangle covering all points.
// A single point yields a zero-area rectangle at that point.
func CreateFromVecs(points ...Vec2) Rect2 {
	if len(points) == 0 {
		return EmptyRect
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX = min(minX, p.X)
		minY = min(minY, p.Y)
		maxX = max(maxX, p.X)
		maxY = max(maxY, p.Y)
	}
	return NewRect2(minX, minY, maxX-minX, maxY-minY)
}

// CreateFromRects returns the union of all given rectangles.
func CreateFromRects(rects ...Rect2) Rect2 {
	if len(rects) == 0 {
		return EmptyRect
	}
	points := make([]Vec2, 0, len(rects)*2)
	for _, r := range rects {
		points = append(points, r.Position, Vec2{r.Right(), r.Bottom()})
	}
	return CreateFromVecs(points...)
}

func (r Rect2) Left() float64   { return r.Position.X }
func (r Rect2) Top() float64    { return r.Position.Y }
func (r Rect2) Right() float64  { return r.Position.X + r.Size.X }
func (r Rect2) Bottom() float64 { return r.Position.Y + r.Size.Y }

func (r Rect2) Width() float64  { return r.Size.X }
func (r Rect2) Height() float64 { return r.Size.Y }

func (r Rect2) Area() float64 { return r.Size.X * r.Size.Y }

func (r Rect2) Center() Vec2 {
	return Vec2{r.Position.X + r.Size.X/2, r.Position.Y + r.Size.Y/2}
}

// IsEmpty checks if the rect has zero or negative area.
func (r Rect2) IsEmpty() bool {
	return r.Size.X <= 0 || r.Size.Y <= 0
}

// ContainsVec reports whether p lies inside r, edges included.
func (r Rect2) ContainsVec(p Vec2) bool {
	return p.X >= r.Left() && p.X <= r.Right() && p.Y >= r.Top() && p.Y <= r.Bottom()
}

// ContainsRect reports whether o lies entirely inside r, edges included.
func (r Rect2) ContainsRect(o Rect2) bool {
	return o.Left() >= r.Left() && o.Right() <= r.Right() &&
		o.Top() >= r.Top() && o.Bottom() <= r.Bottom()
}

func (r Rect2) Equals(o Rect2) bool {
	return r.Position.Equals(o.Position) && r.Size.Equals(o.Size)
}
