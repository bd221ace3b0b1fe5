package render

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/matzehuels/codevideo/pkg/fonts"
	"github.com/matzehuels/codevideo/pkg/scene"
)

// DefaultBackground is the frame colour behind every scene.
const DefaultBackground = "#000000"

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	vp         Viewport
	background string
}

// WithViewport sets the frame and pixel size.
func WithViewport(vp Viewport) SVGOption { return func(r *svgRenderer) { r.vp = vp } }

// WithBackground sets the frame colour. Empty leaves it transparent.
func WithBackground(c string) SVGOption { return func(r *svgRenderer) { r.background = c } }

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{vp: DefaultViewport(), background: DefaultBackground}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// RenderSVG draws root as a standalone SVG document.
func RenderSVG(root scene.Element, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)
	c := &svgCanvas{}
	fmt.Fprintf(&c.buf, `<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		r.vp.Width, r.vp.Height, r.vp.Width, r.vp.Height)
	if r.background != "" {
		fmt.Fprintf(&c.buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", r.background)
	}
	draw(c, r.vp, root)
	c.buf.WriteString("</svg>\n")
	return c.buf.Bytes()
}

type svgCanvas struct {
	buf bytes.Buffer
}

func escapeXML(s string) string {
	var b bytes.Buffer
	xml.EscapeText(&b, []byte(s))
	return b.String()
}

func (p paint) attrs() string {
	var b strings.Builder
	if p.fill != "" && p.fillOpacity > 0 {
		fmt.Fprintf(&b, ` fill="%s" fill-opacity="%.3g"`, p.fill, p.fillOpacity)
	} else {
		b.WriteString(` fill="none"`)
	}
	if p.stroke != "" && p.width > 0 {
		fmt.Fprintf(&b, ` stroke="%s" stroke-opacity="%.3g" stroke-width="%.2f" stroke-linejoin="round"`, p.stroke, p.strokeOpacity, p.width)
		if p.dashed {
			fmt.Fprintf(&b, ` stroke-dasharray="%.1f %.1f"`, p.width*3, p.width*2)
		}
	}
	return b.String()
}

func (c *svgCanvas) polygon(pts []pt, closed bool, p paint) {
	var coords strings.Builder
	for i, q := range pts {
		if i > 0 {
			coords.WriteByte(' ')
		}
		fmt.Fprintf(&coords, "%.2f,%.2f", q.X, q.Y)
	}
	tag := "polyline"
	if closed {
		tag = "polygon"
	}
	fmt.Fprintf(&c.buf, `  <%s points="%s"%s/>`+"\n", tag, coords.String(), p.attrs())
}

func (c *svgCanvas) roundedRect(o pt, w, h, radius float64, p paint) {
	fmt.Fprintf(&c.buf, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="%.2f"%s/>`+"\n",
		o.X, o.Y, w, h, radius, p.attrs())
}

func fontFamily(st scene.TextStyle) string {
	if fonts.Resolve(st.Font, st.Italic) == fonts.Mono {
		return fmt.Sprintf("'%s', '%s', monospace", st.Font, fonts.Mono)
	}
	return fmt.Sprintf("'%s', '%s', sans-serif", st.Font, fonts.Regular)
}

func (c *svgCanvas) text(t textRun) {
	anchor := [...]string{"start", "middle", "end"}[t.anchor]
	style := ""
	if t.style.Italic {
		style = ` font-style="italic"`
	}
	fmt.Fprintf(&c.buf, `  <text font-family="%s" font-size="%.2f" fill="%s" fill-opacity="%.3g" text-anchor="%s" xml:space="preserve"%s>`,
		escapeXML(fontFamily(t.style)), t.size, t.style.Color, t.opacity, anchor, style)
	for i, line := range t.lines {
		y := t.top + t.baseline + float64(i)*t.lineH
		if len(t.spans) > 0 && len(t.lines) == 1 {
			fmt.Fprintf(&c.buf, `<tspan x="%.2f" y="%.2f">`, t.x, y)
			for _, s := range t.spans {
				fmt.Fprintf(&c.buf, `<tspan fill="%s">%s</tspan>`, s.Color, escapeXML(s.Text))
			}
			c.buf.WriteString("</tspan>")
			continue
		}
		fmt.Fprintf(&c.buf, `<tspan x="%.2f" y="%.2f">%s</tspan>`, t.x, y, escapeXML(line))
	}
	c.buf.WriteString("</text>\n")
}

func (c *svgCanvas) image(path string, o pt, w, h, opacity float64) {
	fmt.Fprintf(&c.buf, `  <image xlink:href="%s" x="%.2f" y="%.2f" width="%.2f" height="%.2f" opacity="%.3g" preserveAspectRatio="none"/>`+"\n",
		escapeXML(path), o.X, o.Y, w, h, opacity)
}
