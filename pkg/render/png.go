package render

import (
	"bytes"
	"fmt"
	"image"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/matzehuels/codevideo/pkg/fonts"
	"github.com/matzehuels/codevideo/pkg/scene"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	vp         Viewport
	background string
}

// WithPNGViewport sets the frame and pixel size.
func WithPNGViewport(vp Viewport) PNGOption { return func(r *pngRenderer) { r.vp = vp } }

// WithPNGBackground sets the frame colour. Empty leaves it transparent.
func WithPNGBackground(c string) PNGOption { return func(r *pngRenderer) { r.background = c } }

// RenderPNG draws root with gg and returns the encoded image.
func RenderPNG(root scene.Element, opts ...PNGOption) ([]byte, error) {
	img, err := RenderImage(root, opts...)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := gg.NewContextForImage(img).EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderImage draws root with gg.
func RenderImage(root scene.Element, opts ...PNGOption) (image.Image, error) {
	r := pngRenderer{vp: DefaultViewport(), background: DefaultBackground}
	for _, opt := range opts {
		opt(&r)
	}
	c := &ggCanvas{dc: gg.NewContext(r.vp.Width, r.vp.Height), faces: make(map[faceKey]font.Face)}
	if red, g, b, a, ok := rgb(r.background); ok {
		c.dc.SetRGBA(red, g, b, a)
		c.dc.Clear()
	}
	draw(c, r.vp, root)
	if c.err != nil {
		return nil, c.err
	}
	return c.dc.Image(), nil
}

type faceKey struct {
	name string
	size float64
}

type ggCanvas struct {
	dc    *gg.Context
	faces map[faceKey]font.Face
	err   error
}

func (c *ggCanvas) setColor(hex string, opacity float64) bool {
	r, g, b, a, ok := rgb(hex)
	if !ok {
		return false
	}
	c.dc.SetRGBA(r, g, b, a*opacity)
	return true
}

func (c *ggCanvas) finish(p paint) {
	if p.fill != "" && p.fillOpacity > 0 && c.setColor(p.fill, p.fillOpacity) {
		if p.stroke != "" && p.width > 0 {
			c.dc.FillPreserve()
		} else {
			c.dc.Fill()
		}
	}
	if p.stroke != "" && p.width > 0 && c.setColor(p.stroke, p.strokeOpacity) {
		c.dc.SetLineWidth(p.width)
		if p.dashed {
			c.dc.SetDash(p.width*3, p.width*2)
		}
		c.dc.Stroke()
		c.dc.SetDash()
	}
	c.dc.ClearPath()
}

func (c *ggCanvas) polygon(pts []pt, closed bool, p paint) {
	c.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, q := range pts[1:] {
		c.dc.LineTo(q.X, q.Y)
	}
	if closed {
		c.dc.ClosePath()
	}
	c.finish(p)
}

func (c *ggCanvas) roundedRect(o pt, w, h, radius float64, p paint) {
	c.dc.DrawRoundedRectangle(o.X, o.Y, w, h, radius)
	c.finish(p)
}

func (c *ggCanvas) face(st scene.TextStyle, size float64) font.Face {
	k := faceKey{fonts.Resolve(st.Font, st.Italic), size}
	if f, ok := c.faces[k]; ok {
		return f
	}
	f, err := fonts.Face(st, size)
	if err != nil {
		if c.err == nil {
			c.err = err
		}
		return nil
	}
	c.faces[k] = f
	return f
}

func (c *ggCanvas) text(t textRun) {
	face := c.face(t.style, t.size)
	if face == nil {
		return
	}
	c.dc.SetFontFace(face)
	ax := [...]float64{0, 0.5, 1}[t.anchor]

	for i, line := range t.lines {
		y := t.top + t.baseline + float64(i)*t.lineH
		if len(t.spans) == 0 || len(t.lines) > 1 {
			c.setColor(t.style.Color, t.opacity)
			c.dc.DrawStringAnchored(line, t.x, y, ax, 0)
			continue
		}
		w, _ := c.dc.MeasureString(line)
		x := t.x - ax*w
		for _, s := range t.spans {
			c.setColor(s.Color, t.opacity)
			c.dc.DrawString(s.Text, x, y)
			sw, _ := c.dc.MeasureString(s.Text)
			x += sw
		}
	}
}

func (c *ggCanvas) image(path string, o pt, w, h, _ float64) {
	img, err := gg.LoadImage(path)
	if err != nil {
		if c.err == nil {
			c.err = fmt.Errorf("load image %s: %w", path, err)
		}
		return
	}
	b := img.Bounds()
	c.dc.Push()
	c.dc.Translate(o.X, o.Y)
	c.dc.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	c.dc.DrawImage(img, 0, 0)
	c.dc.Pop()
}
