package geom

// Standard spacing constants in scene units.
const (
	SmallBuff    = 0.1
	MedSmallBuff = 0.25
	MedLargeBuff = 0.5
	LargeBuff    = 1.0

	// DefaultObjectBuff separates neighbouring objects (next_to).
	DefaultObjectBuff = MedSmallBuff
	// DefaultEdgeBuff separates objects from the frame border (to_edge).
	DefaultEdgeBuff = MedLargeBuff
)

// Default frame dimensions: a 16:9 frame eight units tall.
const (
	DefaultFrameWidth  = 8.0 * 16.0 / 9.0
	DefaultFrameHeight = 8.0
)

// Frame is the fixed viewport. The origin is at the center.
type Frame struct {
	Width, Height float64
}

// DefaultFrame returns the 16:9 default viewport.
func DefaultFrame() Frame {
	return Frame{Width: DefaultFrameWidth, Height: DefaultFrameHeight}
}

// XRadius returns half the frame width.
func (f Frame) XRadius() float64 { return f.Width / 2 }

// YRadius returns half the frame height.
func (f Frame) YRadius() float64 { return f.Height / 2 }

// Rect returns the full frame as a Rect.
func (f Frame) Rect() Rect {
	return Rect{Left: -f.XRadius(), Right: f.XRadius(), Bottom: -f.YRadius(), Top: f.YRadius()}
}

// EdgePoint returns the frame border point in direction dir, i.e. the frame
// radii multiplied by sign(dir).
func (f Frame) EdgePoint(dir Vec) Point {
	s := dir.Sign()
	return Point{s.X * f.XRadius(), s.Y * f.YRadius()}
}
