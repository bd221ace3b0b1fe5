package diagram

import (
	"github.com/matzehuels/codevideo/pkg/errors"
	"github.com/matzehuels/codevideo/pkg/geom"
	"github.com/matzehuels/codevideo/pkg/scene"
)

// DefaultTextFont is the font used for box labels.
const DefaultTextFont = "Helvetica"

// Connection label layout.
const (
	ConnectionLabelSize    = 0.7 * scene.DefaultTextSize
	VerticalLabelBuff      = 0.2
	borderedGroupPadding   = 1.2
	borderedGroupTitleZoom = 0.8
)

// Library builds boxes and connections with shared font and palette
// settings.
type Library struct {
	Measurer scene.Measurer
	TextFont string
	Palette  []string
}

// New returns a library using m for text metrics, DefaultTextFont and
// DefaultPalette.
func New(m scene.Measurer) *Library {
	return &Library{Measurer: m, TextFont: DefaultTextFont, Palette: DefaultPalette}
}

// BorderedGroup frames children in a rectangle reaching 0.6 beyond their
// combined extent on every side. A non-empty title is set in a black box
// at 80% size centred on the top border.
func (l *Library) BorderedGroup(children []scene.Element, title string, opts ...BoxOption) (*scene.Group, error) {
	if len(children) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "bordered group needs at least one child")
	}
	g := scene.NewGroup(children...)
	g.Name = "bordered_group"

	extent := g.Box()
	rect := scene.NewRectangle(extent.Width()+borderedGroupPadding, extent.Height()+borderedGroupPadding)
	scene.MoveTo(rect, extent.Center(), geom.Origin)
	g.AddToBack(rect)

	if title != "" {
		opts = append([]BoxOption{
			WithBackground("#000000"),
			WithBorderColor("#000000"),
			WithoutShadow(),
		}, opts...)
		label, err := l.TextBox(title, opts...)
		if err != nil {
			return nil, err
		}
		scene.ScaleInPlace(label, borderedGroupTitleZoom)
		scene.MoveTo(label, g.Box().CriticalPoint(geom.Up), geom.Origin)
		g.Add(label)
	}
	return g, nil
}

// Connection is an arrow between two elements with an optional label.
type Connection struct {
	*scene.Group
	Arrow *scene.Shape
	Label *scene.Text // nil without label
}

// Clone returns an independent copy of the connection.
func (c *Connection) Clone() scene.Element {
	out := &Connection{Arrow: c.Arrow.Clone().(*scene.Shape), Group: scene.NewGroup()}
	out.Name = c.Name
	out.Add(out.Arrow)
	if c.Label != nil {
		out.Label = c.Label.Clone().(*scene.Text)
		out.Add(out.Label)
	}
	return out
}

// Connect draws an arrow from source to target. The arrangements tried, in
// order, are source left of target, right of target, above and below; the
// arrow runs between the facing edge centres. Horizontal arrows carry the
// label above them, vertical arrows to their right. Overlapping elements
// fail with AMBIGUOUS_CONNECTION.
func (l *Library) Connect(source, target scene.Element, label string) (*Connection, error) {
	s, t := source.Box(), target.Box()

	var (
		arrow    *scene.Shape
		labelDir = geom.Up
		buff     = 0.0
	)
	switch {
	case s.Right <= t.Left:
		arrow = scene.NewArrow(s.CriticalPoint(geom.Right), t.CriticalPoint(geom.Left))
	case s.Left >= t.Right:
		arrow = scene.NewArrow(s.CriticalPoint(geom.Left), t.CriticalPoint(geom.Right))
	case s.Bottom >= t.Top:
		arrow = scene.NewArrow(s.CriticalPoint(geom.Down), t.CriticalPoint(geom.Up))
		labelDir, buff = geom.Right, VerticalLabelBuff
	case s.Top <= t.Bottom:
		arrow = scene.NewArrow(s.CriticalPoint(geom.Up), t.CriticalPoint(geom.Down))
		labelDir, buff = geom.Right, VerticalLabelBuff
	default:
		return nil, errors.New(errors.ErrCodeAmbiguousConnection,
			"cannot connect overlapping elements %v and %v", s, t)
	}

	c := &Connection{Arrow: arrow, Group: scene.NewGroup(arrow)}
	c.Name = "connection"
	if label != "" {
		text := scene.NewText(l.Measurer, label, scene.TextStyle{Font: l.TextFont, Size: ConnectionLabelSize, Italic: true})
		scene.NextTo(text, arrow.Box(), labelDir, buff)
		c.Label = text
		c.Add(text)
	}
	return c, nil
}
