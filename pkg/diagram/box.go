package diagram

import (
	"github.com/matzehuels/codevideo/pkg/geom"
	"github.com/matzehuels/codevideo/pkg/scene"
)

// Box styling constants in scene units.
const (
	DefaultWrapAt        = 30
	DefaultBorderPadding = 0.5
	RoundedRadius        = 0.05

	ShadowColor   = "#000000"
	ShadowOpacity = 0.3
	ShadowShift   = 0.07

	notePaddingX = 0.3
	notePaddingY = 0.3
	noteEarRatio = 0.05
)

// BoxKind distinguishes plain text boxes from notes.
type BoxKind int

const (
	KindTextBox BoxKind = iota
	KindNoteBox
)

// Box is a label on a bordered, filled panel with an optional drop shadow.
// Children are drawn shadow first, then border, then title.
type Box struct {
	*scene.Group
	Kind   BoxKind
	Text   string // Label as given, before wrapping
	Border *scene.Shape
	Title  *scene.Text
	Shadow *scene.Shape // nil without shadow
}

// Clone returns an independent copy of the box.
func (b *Box) Clone() scene.Element {
	out := &Box{
		Kind:   b.Kind,
		Text:   b.Text,
		Border: b.Border.Clone().(*scene.Shape),
		Title:  b.Title.Clone().(*scene.Text),
		Group:  scene.NewGroup(),
	}
	out.Name = b.Name
	if b.Shadow != nil {
		out.Shadow = b.Shadow.Clone().(*scene.Shape)
		out.Add(out.Shadow)
	}
	out.Add(out.Border, out.Title)
	return out
}

// BoxOption configures TextBox and NoteBox.
type BoxOption func(*boxConfig)

type boxConfig struct {
	wrapAt  int
	rounded bool
	shadow  bool
	color   string
	bg      string
	border  string
	padding float64
	text    scene.TextStyle
}

// WithWrap wraps the label at n columns; zero disables wrapping.
func WithWrap(n int) BoxOption { return func(c *boxConfig) { c.wrapAt = n } }

// WithRounded rounds the border corners.
func WithRounded() BoxOption { return func(c *boxConfig) { c.rounded = true } }

// WithoutShadow drops the drop shadow.
func WithoutShadow() BoxOption { return func(c *boxConfig) { c.shadow = false } }

// WithTextColor sets the label colour.
func WithTextColor(color string) BoxOption { return func(c *boxConfig) { c.color = color } }

// WithBackground sets the fill colour, see ParseColor.
func WithBackground(color string) BoxOption { return func(c *boxConfig) { c.bg = color } }

// WithBorderColor sets the border stroke colour.
func WithBorderColor(color string) BoxOption { return func(c *boxConfig) { c.border = color } }

// WithPadding sets the space between label and border of a text box.
func WithPadding(p float64) BoxOption { return func(c *boxConfig) { c.padding = p } }

// WithTextStyle sets the label font, size and slant. The colour is taken
// from WithTextColor.
func WithTextStyle(st scene.TextStyle) BoxOption { return func(c *boxConfig) { c.text = st } }

func (l *Library) boxConfig(bg string, opts []BoxOption) boxConfig {
	cfg := boxConfig{
		wrapAt:  DefaultWrapAt,
		shadow:  true,
		color:   "#FFFFFF",
		bg:      bg,
		border:  "#FFFFFF",
		padding: DefaultBorderPadding,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.text.Font == "" {
		cfg.text.Font = l.TextFont
	}
	cfg.text.Color = cfg.color
	return cfg
}

// TextBox returns a rectangular box around text centred on the origin. The
// border is the label size plus padding, at least the height of one line.
// The default background is RandomColor with a shadow.
func (l *Library) TextBox(text string, opts ...BoxOption) (*Box, error) {
	cfg := l.boxConfig(RandomColor, opts)
	return l.box(KindTextBox, text, cfg, func(title *scene.Text) *scene.Shape {
		_, lineH := l.Measurer.Measure("Ay", title.Style)
		w := title.Box().Width() + cfg.padding
		h := max(lineH, title.Box().Height()) + cfg.padding
		return scene.NewRectangle(w, h)
	})
}

// NoteBox returns a note with a folded upper-right corner. The default
// background is opaque white.
func (l *Library) NoteBox(text string, opts ...BoxOption) (*Box, error) {
	cfg := l.boxConfig("#FFFFFFFF", opts)
	cfg.rounded = false
	return l.box(KindNoteBox, text, cfg, func(title *scene.Text) *scene.Shape {
		tb := title.Box()
		ear := tb.Width() * noteEarRatio
		w := tb.Width() + 2*notePaddingX
		h := tb.Height() + notePaddingY
		return scene.NewPolygon(
			geom.Point{X: 0, Y: h},
			geom.Point{X: w - ear, Y: h},
			geom.Point{X: w, Y: h - ear},
			geom.Point{X: w, Y: 0},
			geom.Point{X: 0, Y: 0},
		)
	})
}

func (l *Library) box(kind BoxKind, text string, cfg boxConfig, border func(*scene.Text) *scene.Shape) (*Box, error) {
	label := text
	if cfg.wrapAt > 0 {
		label = scene.Wrap(text, cfg.wrapAt)
	}
	bg, opacity, err := ParseColor(cfg.bg, label, l.Palette)
	if err != nil {
		return nil, err
	}

	title := scene.NewText(l.Measurer, label, cfg.text)
	b := border(title)
	scene.Center(b)
	b.Style.Stroke = cfg.border
	b.Style.Fill = bg
	b.Style.FillOpacity = opacity
	if cfg.rounded {
		b.Radius = RoundedRadius
	}
	scene.MoveTo(title, b.Box().Center(), geom.Origin)

	box := &Box{Kind: kind, Text: text, Border: b, Title: title, Group: scene.NewGroup(b, title)}
	if cfg.shadow && opacity != 0 {
		s := b.Clone().(*scene.Shape)
		s.Style.Stroke = ""
		s.Style.StrokeWidth = 0
		s.Style.Fill = ShadowColor
		s.Style.FillOpacity = ShadowOpacity
		scene.ScaleInPlace(s, 1+ShadowShift)
		s.Shift(geom.DR.Mul(ShadowShift))
		box.Shadow = s
		box.AddToBack(s)
	}
	return box, nil
}
