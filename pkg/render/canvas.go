package render

import (
	"math"
	"strconv"

	"github.com/matzehuels/codevideo/pkg/geom"
	"github.com/matzehuels/codevideo/pkg/scene"
)

// Viewport maps the scene frame onto an image of Width×Height pixels.
type Viewport struct {
	Frame         geom.Frame
	Width, Height int
}

// DefaultViewport is the default frame at 1080p.
func DefaultViewport() Viewport {
	return Viewport{Frame: geom.DefaultFrame(), Width: 1920, Height: 1080}
}

// scale returns pixels per scene unit.
func (v Viewport) scale() float64 { return float64(v.Width) / v.Frame.Width }

// point converts a scene point to pixel coordinates with y pointing down.
func (v Viewport) point(p geom.Point) pt {
	s := v.scale()
	return pt{(p.X + v.Frame.XRadius()) * s, (v.Frame.YRadius() - p.Y) * s}
}

// rect converts a scene rectangle to its top-left pixel corner and size.
func (v Viewport) rect(r geom.Rect) (pt, float64, float64) {
	s := v.scale()
	return v.point(geom.Point{X: r.Left, Y: r.Top}), r.Width() * s, r.Height() * s
}

// stroke converts a stroke width given at 1080p to this viewport.
func (v Viewport) stroke(w float64) float64 { return w * float64(v.Height) / 1080 }

// arrowTip is the length of an arrow head in scene units.
const arrowTip = 0.25

type pt struct{ X, Y float64 }

type anchor int

const (
	anchorStart anchor = iota
	anchorMiddle
	anchorEnd
)

// paint is a resolved stroke and fill.
type paint struct {
	stroke        string
	strokeOpacity float64
	width         float64
	fill          string
	fillOpacity   float64
	dashed        bool
}

// textRun is one Text laid out in pixels.
type textRun struct {
	lines    []string
	spans    []scene.Span
	x, top   float64
	lineH    float64
	size     float64
	anchor   anchor
	style    scene.TextStyle
	opacity  float64
	baseline float64 // offset of the first baseline below top
}

// canvas is a drawing backend.
type canvas interface {
	polygon(pts []pt, closed bool, p paint)
	roundedRect(origin pt, w, h, radius float64, p paint)
	text(t textRun)
	image(path string, origin pt, w, h, opacity float64)
}

// draw paints e and its descendants in drawing order.
func draw(c canvas, vp Viewport, e scene.Element) {
	switch v := e.(type) {
	case *scene.Shape:
		drawShape(c, vp, v)
	case *scene.Text:
		drawText(c, vp, v, anchorMiddle)
	case *scene.Image:
		if v.Opacity > 0 {
			o, w, h := vp.rect(v.Box())
			c.image(v.Path, o, w, h, v.Opacity)
		}
	case *scene.Code:
		drawShape(c, vp, v.Background)
		for i := range v.Lines {
			drawText(c, vp, v.Numbers[i], anchorEnd)
			drawText(c, vp, v.Lines[i], anchorStart)
		}
	case scene.Wrapper:
		draw(c, vp, v.Unwrap())
	case scene.Container:
		for _, m := range v.Members() {
			draw(c, vp, m)
		}
	}
}

func drawShape(c canvas, vp Viewport, s *scene.Shape) {
	st := s.Style
	if st.Opacity <= 0 || len(s.Points) == 0 {
		return
	}
	p := paint{
		stroke:        st.Stroke,
		strokeOpacity: st.Opacity,
		width:         vp.stroke(st.StrokeWidth),
		fill:          st.Fill,
		fillOpacity:   st.FillOpacity * st.Opacity,
		dashed:        st.Dashed,
	}

	if s.Kind == scene.KindPolygon && s.Radius > 0 && len(s.Points) == 4 {
		o, w, h := vp.rect(s.Box())
		c.roundedRect(o, w, h, s.Radius*vp.scale(), p)
		return
	}

	pts := make([]pt, len(s.Points))
	for i, q := range s.Points {
		pts[i] = vp.point(q)
	}
	if s.Kind == scene.KindPolygon {
		c.polygon(pts, true, p)
		return
	}
	p.fill = ""
	c.polygon(pts, false, p)
	if s.Kind == scene.KindArrow {
		if head := arrowHead(pts[0], pts[len(pts)-1], arrowTip*vp.scale()); head != nil {
			c.polygon(head, true, paint{fill: st.Stroke, fillOpacity: st.Opacity})
		}
	}
}

// arrowHead returns the triangle at the tip b of the segment a-b, or nil
// for a zero-length segment. The head is at most half the segment long.
func arrowHead(a, b pt, length float64) []pt {
	dx, dy := b.X-a.X, b.Y-a.Y
	n := math.Hypot(dx, dy)
	if n == 0 {
		return nil
	}
	length = min(length, n/2)
	ux, uy := dx/n, dy/n
	base := pt{b.X - ux*length, b.Y - uy*length}
	half := length / 2
	return []pt{
		b,
		{base.X - uy*half, base.Y + ux*half},
		{base.X + uy*half, base.Y - ux*half},
	}
}

func drawText(c canvas, vp Viewport, t *scene.Text, a anchor) {
	if t.Opacity <= 0 || t.Content == "" {
		return
	}
	o, w, h := vp.rect(t.Box())
	lines := t.Lines()
	lineH := h / float64(len(lines))
	x := o.X
	switch a {
	case anchorMiddle:
		x += w / 2
	case anchorEnd:
		x += w
	}
	c.text(textRun{
		lines:    lines,
		spans:    t.Spans,
		x:        x,
		top:      o.Y,
		lineH:    lineH,
		size:     t.Style.Size * vp.scale(),
		anchor:   a,
		style:    t.Style,
		opacity:  t.Opacity,
		baseline: 0.8 * lineH,
	})
}

// rgb parses "#RRGGBB" or "#RRGGBBAA" into components in [0,1]. The alpha
// of a six digit colour is 1.
func rgb(hex string) (r, g, b, a float64, ok bool) {
	if len(hex) != 7 && len(hex) != 9 || hex[0] != '#' {
		return 0, 0, 0, 0, false
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return 0, 0, 0, 0, false
	}
	a = 1
	if len(hex) == 9 {
		a = float64(v&0xFF) / 255
		v >>= 8
	}
	return float64(v>>16&0xFF) / 255, float64(v>>8&0xFF) / 255, float64(v&0xFF) / 255, a, true
}
