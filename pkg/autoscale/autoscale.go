package autoscale

import (
	"github.com/matzehuels/codevideo/pkg/geom"
	"github.com/matzehuels/codevideo/pkg/scene"
)

// Bounds is the rectangle, given by its four corners, that an Element is
// allowed to fill.
type Bounds struct {
	UL, UR, DR, DL geom.Point
}

// FrameBounds returns the frame inset by buff on every side.
func FrameBounds(f geom.Frame, buff float64) Bounds {
	r := f.Rect().Pad(-buff)
	return Bounds{
		UL: geom.Point{X: r.Left, Y: r.Top},
		UR: geom.Point{X: r.Right, Y: r.Top},
		DR: geom.Point{X: r.Right, Y: r.Bottom},
		DL: geom.Point{X: r.Left, Y: r.Bottom},
	}
}

// Width returns the horizontal distance between the upper corners.
func (b *Bounds) Width() float64 { return abs(b.UL.X - b.UR.X) }

// Height returns the vertical distance between the right corners.
func (b *Bounds) Height() float64 { return abs(b.UR.Y - b.DR.Y) }

// Rect returns the bounding box of the four corners.
func (b *Bounds) Rect() geom.Rect { return geom.RectFromPoints(b.UL, b.UR, b.DR, b.DL) }

// snap moves the edges on the side(s) selected by dir to the matching edges
// of r. Only exact unit components select a side.
func (b *Bounds) snap(dir geom.Vec, r geom.Rect) {
	switch dir.X {
	case -1:
		b.UL.X, b.DL.X = r.Left, r.Left
	case 1:
		b.UR.X, b.DR.X = r.Right, r.Right
	}
	switch dir.Y {
	case -1:
		b.DR.Y, b.DL.Y = r.Bottom, r.Bottom
	case 1:
		b.UR.Y, b.UL.Y = r.Top, r.Top
	}
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

// Element wraps a scene element and rescales it after every repositioning
// so that it fits its Bounds: uniformly scaled by
// min(bounds.w/w, bounds.h/h) about the bounds corner facing the anchor
// direction.
//
// Elements returned by Copy share their Bounds with the original.
type Element struct {
	delegate scene.Element
	bounds   *Bounds
	frame    geom.Frame
	factor   float64
}

// New wraps delegate with bounds set to the default frame inset by the
// object buffer and fits it about the bounds center.
func New(delegate scene.Element) *Element {
	return NewInFrame(delegate, geom.DefaultFrame())
}

// NewInFrame is New for a custom frame.
func NewInFrame(delegate scene.Element, f geom.Frame) *Element {
	e := &Element{delegate: delegate, bounds: &Bounds{}, frame: f, factor: 1}
	e.ResetBounds()
	e.Autoscale(geom.Origin)
	return e
}

// Delegate returns the wrapped element.
func (e *Element) Delegate() scene.Element { return e.delegate }

// Unwrap implements scene.Wrapper.
func (e *Element) Unwrap() scene.Element { return e.delegate }

// Bounds returns the current bounds. The value is shared with copies.
func (e *Element) Bounds() *Bounds { return e.bounds }

// ScaleFactor returns the product of every scale applied to the delegate.
func (e *Element) ScaleFactor() float64 { return e.factor }

// Box returns the delegate's bounding box.
func (e *Element) Box() geom.Rect { return e.delegate.Box() }

// Shift translates the delegate without rescaling.
func (e *Element) Shift(v geom.Vec) { e.delegate.Shift(v) }

// Scale scales the delegate and accumulates f into the scale factor.
func (e *Element) Scale(f float64, about geom.Point) {
	e.factor *= f
	e.delegate.Scale(f, about)
}

// Clone returns an independent copy; see Copy.
func (e *Element) Clone() scene.Element { return e.Copy() }

// Copy returns a wrapper around a clone of the delegate that shares this
// element's Bounds and starts from its scale factor. No rescale happens.
func (e *Element) Copy() *Element {
	return &Element{delegate: e.delegate.Clone(), bounds: e.bounds, frame: e.frame, factor: e.factor}
}

// Snapshot returns a fully independent copy, bounds included. It is used to
// predict the geometry a sequence of operations will produce without
// touching e.
func (e *Element) Snapshot() *Element {
	b := *e.bounds
	return &Element{delegate: e.delegate.Clone(), bounds: &b, frame: e.frame, factor: e.factor}
}

// SetOpacity forwards to the delegate when it supports opacity.
func (e *Element) SetOpacity(o float64) {
	if f, ok := e.delegate.(scene.Fader); ok {
		f.SetOpacity(o)
	}
}

// ResetBounds sets the bounds to the full frame inset by the default
// object buffer.
func (e *Element) ResetBounds() {
	*e.bounds = FrameBounds(e.frame, geom.DefaultObjectBuff)
}

// Autoscale fits the delegate into the current bounds, anchored at the
// bounds' critical point in dir. A delegate with zero width or height is
// not yet measurable and is left untouched.
func (e *Element) Autoscale(dir geom.Vec) {
	box := e.delegate.Box()
	w, h := box.Width(), box.Height()
	if w == 0 || h == 0 {
		return
	}
	f := min(e.bounds.Width()/w, e.bounds.Height()/h)
	e.Scale(f, e.bounds.Rect().CriticalPoint(dir))
}

// reposition snaps the bounds to the delegate on the side given by dir and
// refits.
func (e *Element) reposition(dir geom.Vec) *Element {
	e.bounds.snap(dir, e.delegate.Box())
	e.Autoscale(dir)
	return e
}

// ToEdge moves the delegate to the frame edge in dir with buff spacing.
func (e *Element) ToEdge(dir geom.Vec, buff float64) *Element {
	scene.ToEdge(e.delegate, e.frame, dir, buff)
	return e.reposition(dir)
}

// NextTo places the delegate beside target in dir. The bounds edge facing
// target follows the delegate.
func (e *Element) NextTo(target geom.Rect, dir geom.Vec, buff float64) *Element {
	scene.NextTo(e.delegate, target, dir, buff)
	return e.reposition(dir.Neg())
}

// MoveTo moves the delegate's critical point in aligned onto p.
func (e *Element) MoveTo(p geom.Point, aligned geom.Vec) *Element {
	scene.MoveTo(e.delegate, p, aligned)
	return e.reposition(aligned)
}

// SetX moves the delegate horizontally so its critical point in dir is at x.
func (e *Element) SetX(x float64, dir geom.Vec) *Element {
	scene.SetX(e.delegate, x, dir)
	return e.reposition(dir)
}

// SetY moves the delegate vertically so its critical point in dir is at y.
func (e *Element) SetY(y float64, dir geom.Vec) *Element {
	scene.SetY(e.delegate, y, dir)
	return e.reposition(dir)
}

// FillBetweenX restricts the bounds to the horizontal band
// [xLeft, xRight] and left-anchors the delegate at xLeft.
func (e *Element) FillBetweenX(xLeft, xRight float64) *Element {
	e.bounds.UR.X = xRight
	e.bounds.DR.X = xRight
	e.SetX(xLeft, geom.Left)
	return e.reposition(geom.Left)
}

// FullSize resets the bounds to the frame, centres the delegate and fits
// it symmetrically. The scale factor keeps accumulating, so it still
// relates the delegate to its constructed size.
func (e *Element) FullSize() *Element {
	e.ResetBounds()
	scene.Center(e.delegate)
	e.Autoscale(geom.Origin)
	return e
}

var (
	_ scene.Element = (*Element)(nil)
	_ scene.Wrapper = (*Element)(nil)
	_ scene.Fader   = (*Element)(nil)
)
