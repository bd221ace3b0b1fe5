package geom

import "math"

// Eps is the tolerance used when comparing scene coordinates.
const Eps = 1e-9

// Vec is a 2D vector in scene units. Positive Y points up.
type Vec struct {
	X, Y float64
}

// Point is a position in scene units.
type Point = Vec

// Standard directions. Diagonals are sums of the axis directions.
var (
	Origin = Vec{0, 0}
	Up     = Vec{0, 1}
	Down   = Vec{0, -1}
	Left   = Vec{-1, 0}
	Right  = Vec{1, 0}
	UL     = Vec{-1, 1}
	UR     = Vec{1, 1}
	DL     = Vec{-1, -1}
	DR     = Vec{1, -1}
)

// Add returns v + o.
func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }

// Mul returns v scaled by f.
func (v Vec) Mul(f float64) Vec { return Vec{v.X * f, v.Y * f} }

// Neg returns -v.
func (v Vec) Neg() Vec { return Vec{-v.X, -v.Y} }

// Mask zeroes the components of v where m is zero.
func (v Vec) Mask(m Vec) Vec {
	r := v
	if m.X == 0 {
		r.X = 0
	}
	if m.Y == 0 {
		r.Y = 0
	}
	return r
}

// Sign returns the per-component sign of v (-1, 0 or 1).
func (v Vec) Sign() Vec { return Vec{sign(v.X), sign(v.Y)} }

// Eq reports whether v and o are equal within Eps.
func (v Vec) Eq(o Vec) bool {
	return math.Abs(v.X-o.X) < Eps && math.Abs(v.Y-o.Y) < Eps
}

// ScaleAbout returns v scaled by f relative to the anchor point.
func (v Vec) ScaleAbout(f float64, about Point) Vec {
	return about.Add(v.Sub(about).Mul(f))
}

func sign(f float64) float64 {
	switch {
	case f > 0:
		return 1
	case f < 0:
		return -1
	}
	return 0
}

// Rect is an axis-aligned bounding box in scene units.
type Rect struct {
	Left, Right float64
	Bottom, Top float64
}

// RectFromPoints returns the smallest Rect containing every point.
// An empty input yields the zero Rect.
func RectFromPoints(pts ...Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	r := Rect{Left: pts[0].X, Right: pts[0].X, Bottom: pts[0].Y, Top: pts[0].Y}
	for _, p := range pts[1:] {
		r.Left = min(r.Left, p.X)
		r.Right = max(r.Right, p.X)
		r.Bottom = min(r.Bottom, p.Y)
		r.Top = max(r.Top, p.Y)
	}
	return r
}

// RectAround returns a w×h Rect centred on c.
func RectAround(c Point, w, h float64) Rect {
	return Rect{Left: c.X - w/2, Right: c.X + w/2, Bottom: c.Y - h/2, Top: c.Y + h/2}
}

// Width returns the horizontal span of the rect.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns the vertical span of the rect.
func (r Rect) Height() float64 { return r.Top - r.Bottom }

// CenterX returns the horizontal center point of the rect.
func (r Rect) CenterX() float64 { return (r.Left + r.Right) / 2 }

// CenterY returns the vertical center point of the rect.
func (r Rect) CenterY() float64 { return (r.Bottom + r.Top) / 2 }

// Center returns the center point of the rect.
func (r Rect) Center() Point { return Point{r.CenterX(), r.CenterY()} }

// Empty reports whether the rect has no area in either dimension.
func (r Rect) Empty() bool { return r.Width() <= 0 || r.Height() <= 0 }

// CriticalPoint returns the point of the rect selected by dir: per axis the
// minimum edge for a negative component, the maximum edge for a positive one
// and the center for zero. Critical(Origin) is the center, Critical(UL) the
// upper-left corner.
func (r Rect) CriticalPoint(dir Vec) Point {
	return Point{
		X: pick(dir.X, r.Left, r.CenterX(), r.Right),
		Y: pick(dir.Y, r.Bottom, r.CenterY(), r.Top),
	}
}

// Coord returns the X (axis 0) or Y (axis 1) coordinate of CriticalPoint(dir).
func (r Rect) Coord(axis Axis, dir Vec) float64 {
	p := r.CriticalPoint(dir)
	if axis == AxisX {
		return p.X
	}
	return p.Y
}

func pick(d, lo, mid, hi float64) float64 {
	switch {
	case d < 0:
		return lo
	case d > 0:
		return hi
	}
	return mid
}

// Union returns the smallest Rect containing r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		Left:   min(r.Left, o.Left),
		Right:  max(r.Right, o.Right),
		Bottom: min(r.Bottom, o.Bottom),
		Top:    max(r.Top, o.Top),
	}
}

// Shift returns r translated by v.
func (r Rect) Shift(v Vec) Rect {
	return Rect{Left: r.Left + v.X, Right: r.Right + v.X, Bottom: r.Bottom + v.Y, Top: r.Top + v.Y}
}

// ScaleAbout returns r scaled by f relative to the anchor point.
func (r Rect) ScaleAbout(f float64, about Point) Rect {
	lo := Point{r.Left, r.Bottom}.ScaleAbout(f, about)
	hi := Point{r.Right, r.Top}.ScaleAbout(f, about)
	return RectFromPoints(lo, hi)
}

// Pad returns r grown by d on every side.
func (r Rect) Pad(d float64) Rect {
	return Rect{Left: r.Left - d, Right: r.Right + d, Bottom: r.Bottom - d, Top: r.Top + d}
}

// Contains reports whether o lies within r, allowing Eps of slack.
func (r Rect) Contains(o Rect) bool {
	return o.Left >= r.Left-Eps && o.Right <= r.Right+Eps &&
		o.Bottom >= r.Bottom-Eps && o.Top <= r.Top+Eps
}

// Axis selects a coordinate dimension.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// String returns "x" or "y".
func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}
