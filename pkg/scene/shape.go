package scene

import "github.com/matzehuels/codevideo/pkg/geom"

// ShapeKind selects how a Shape's points are drawn.
type ShapeKind int

const (
	// KindPolygon is a closed outline through Points.
	KindPolygon ShapeKind = iota
	// KindLine is an open segment from Points[0] to Points[1].
	KindLine
	// KindArrow is a segment with a tip at Points[1].
	KindArrow
)

// String returns the kind name.
func (k ShapeKind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindArrow:
		return "arrow"
	}
	return "polygon"
}

// Default stroke widths in output pixels at 1080p.
const (
	DefaultStrokeWidth = 4.0
	ArrowStrokeWidth   = DefaultStrokeWidth * 1.2
)

// Style holds stroke and fill attributes.
type Style struct {
	Stroke      string  // Stroke colour ("#RRGGBB"); empty means none
	StrokeWidth float64 // Stroke width in output pixels
	Fill        string  // Fill colour; empty means none
	FillOpacity float64 // Fill opacity in [0,1]
	Opacity     float64 // Overall opacity in [0,1]
	Dashed      bool    // Draw the stroke dashed
}

// DefaultStyle is a white, unfilled, solid outline.
func DefaultStyle() Style {
	return Style{Stroke: "#FFFFFF", StrokeWidth: DefaultStrokeWidth, Opacity: 1}
}

// Shape is a vector outline defined by its points.
type Shape struct {
	Kind   ShapeKind
	Points []geom.Point
	Radius float64 // Corner radius for rounded polygons
	Style  Style
}

// NewRectangle returns a w×h rectangle centred on the origin.
func NewRectangle(w, h float64) *Shape {
	return &Shape{
		Kind: KindPolygon,
		Points: []geom.Point{
			{X: -w / 2, Y: h / 2},
			{X: w / 2, Y: h / 2},
			{X: w / 2, Y: -h / 2},
			{X: -w / 2, Y: -h / 2},
		},
		Style: DefaultStyle(),
	}
}

// NewPolygon returns a closed outline through pts.
func NewPolygon(pts ...geom.Point) *Shape {
	return &Shape{Kind: KindPolygon, Points: append([]geom.Point(nil), pts...), Style: DefaultStyle()}
}

// NewLine returns a segment from a to b.
func NewLine(a, b geom.Point) *Shape {
	return &Shape{Kind: KindLine, Points: []geom.Point{a, b}, Style: DefaultStyle()}
}

// NewDashedLine returns a thin dashed segment from a to b.
func NewDashedLine(a, b geom.Point) *Shape {
	s := NewLine(a, b)
	s.Style.Dashed = true
	s.Style.StrokeWidth = DefaultStrokeWidth / 2
	return s
}

// NewArrow returns an arrow from a to b with its tip at b.
func NewArrow(a, b geom.Point) *Shape {
	s := &Shape{Kind: KindArrow, Points: []geom.Point{a, b}, Style: DefaultStyle()}
	s.Style.StrokeWidth = ArrowStrokeWidth
	return s
}

// Start returns the first point.
func (s *Shape) Start() geom.Point { return s.Points[0] }

// End returns the last point.
func (s *Shape) End() geom.Point { return s.Points[len(s.Points)-1] }

func (s *Shape) Box() geom.Rect { return geom.RectFromPoints(s.Points...) }

func (s *Shape) Shift(v geom.Vec) {
	for i := range s.Points {
		s.Points[i] = s.Points[i].Add(v)
	}
}

func (s *Shape) Scale(f float64, about geom.Point) {
	for i := range s.Points {
		s.Points[i] = s.Points[i].ScaleAbout(f, about)
	}
	s.Radius *= f
}

func (s *Shape) Clone() Element {
	out := *s
	out.Points = append([]geom.Point(nil), s.Points...)
	return &out
}

func (s *Shape) SetOpacity(o float64) { s.Style.Opacity = o }

// Image is a raster image stretched over its box.
type Image struct {
	Path    string
	Opacity float64
	box     geom.Rect
}

// NewImage returns an image of w×h scene units centred on the origin.
func NewImage(path string, w, h float64) *Image {
	return &Image{Path: path, Opacity: 1, box: geom.RectAround(geom.Origin, w, h)}
}

func (i *Image) Box() geom.Rect { return i.box }

func (i *Image) Shift(v geom.Vec) { i.box = i.box.Shift(v) }

func (i *Image) Scale(f float64, about geom.Point) { i.box = i.box.ScaleAbout(f, about) }

func (i *Image) Clone() Element {
	out := *i
	return &out
}

func (i *Image) SetOpacity(o float64) { i.Opacity = o }
