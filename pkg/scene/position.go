package scene

import "github.com/matzehuels/codevideo/pkg/geom"

// NextTo places e beside target in direction dir, separated by buff.
// The side of e facing target is centred on the matching side of target.
func NextTo(e Element, target geom.Rect, dir geom.Vec, buff float64) {
	NextToAligned(e, target, dir, buff, geom.Origin)
}

// NextToAligned is NextTo with an alignment edge: with aligned = Left and
// dir = Down, the left edges of e and target line up.
func NextToAligned(e Element, target geom.Rect, dir geom.Vec, buff float64, aligned geom.Vec) {
	targetPt := target.CriticalPoint(aligned.Add(dir))
	own := e.Box().CriticalPoint(aligned.Sub(dir))
	e.Shift(targetPt.Sub(own).Add(dir.Mul(buff)))
}

// NextToPoint places e beside p in direction dir, separated by buff.
func NextToPoint(e Element, p geom.Point, dir geom.Vec, buff float64) {
	NextTo(e, geom.RectAround(p, 0, 0), dir, buff)
}

// ToEdge moves e against the frame border in direction dir, leaving buff
// between them. Only the axes where dir is non-zero change.
func ToEdge(e Element, f geom.Frame, dir geom.Vec, buff float64) {
	target := f.EdgePoint(dir)
	own := e.Box().CriticalPoint(dir)
	shift := target.Sub(own).Sub(dir.Mul(buff))
	e.Shift(shift.Mask(dir.Sign()))
}

// SetCoord moves e along axis so that the critical point in dir lies at v.
func SetCoord(e Element, axis geom.Axis, v float64, dir geom.Vec) {
	d := v - e.Box().Coord(axis, dir)
	if axis == geom.AxisX {
		e.Shift(geom.Vec{X: d})
	} else {
		e.Shift(geom.Vec{Y: d})
	}
}

// SetX moves e horizontally so that its critical point in dir has x.
func SetX(e Element, x float64, dir geom.Vec) { SetCoord(e, geom.AxisX, x, dir) }

// SetY moves e vertically so that its critical point in dir has y.
func SetY(e Element, y float64, dir geom.Vec) { SetCoord(e, geom.AxisY, y, dir) }

// MoveTo moves e so that its critical point in aligned lies on p.
func MoveTo(e Element, p geom.Point, aligned geom.Vec) {
	e.Shift(p.Sub(e.Box().CriticalPoint(aligned)))
}

// AlignTo lines up the edge of e in dir with the same edge of target, on
// the axes where dir is non-zero.
func AlignTo(e Element, target geom.Rect, dir geom.Vec) {
	want := target.CriticalPoint(dir)
	have := e.Box().CriticalPoint(dir)
	e.Shift(want.Sub(have).Mask(dir))
}

// Center moves e onto the origin.
func Center(e Element) { MoveTo(e, geom.Origin, geom.Origin) }

// ScaleInPlace scales e by f about its own center.
func ScaleInPlace(e Element, f float64) { e.Scale(f, e.Box().Center()) }

// StretchToFitWidth scales e uniformly so its width equals w, about its center.
// Zero-width elements are left unchanged.
func StretchToFitWidth(e Element, w float64) {
	if cur := e.Box().Width(); cur > 0 {
		ScaleInPlace(e, w/cur)
	}
}
