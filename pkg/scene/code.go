package scene

import (
	"strconv"
	"strings"

	"github.com/alecthomas/chroma"
	"github.com/alecthomas/chroma/lexers"
	"github.com/alecthomas/chroma/styles"

	"github.com/matzehuels/codevideo/pkg/geom"
)

// Code layout constants relative to the code text size.
const (
	DefaultCodeTheme = "fruity"
	DefaultCodeSize  = 0.35

	codeLinePitch = 1.25 // line advance
	codeNumberGap = 1.0  // gap between numbers and code
	codePadding   = 0.6  // background padding
)

// CodeOptions configures NewCode.
type CodeOptions struct {
	// LineNoFrom is the number shown next to the first line (default 1).
	LineNoFrom int
	// Language selects the lexer by name, alias or file extension. Empty
	// disables syntax colouring.
	Language string
	// Theme is the chroma style used for colouring and the background.
	Theme string
	// Text sets the code font and size.
	Text TextStyle
}

// Code is a block of source lines with a line-number gutter on a background
// panel. Lines[i] and Numbers[i] belong to display line LineNoFrom+i.
type Code struct {
	Lines      []*Text
	Numbers    []*Text
	Background *Shape
	LineNoFrom int
	Language   string
}

// NewCode typesets lines with m and centres the block on the origin.
func NewCode(m Measurer, lines []string, opts CodeOptions) *Code {
	if opts.LineNoFrom == 0 {
		opts.LineNoFrom = 1
	}
	if opts.Theme == "" {
		opts.Theme = DefaultCodeTheme
	}
	if opts.Text.Size == 0 {
		opts.Text.Size = DefaultCodeSize
	}
	st := styles.Get(opts.Theme)

	c := &Code{LineNoFrom: opts.LineNoFrom, Language: opts.Language}
	spans := colourise(lines, opts.Language, st)

	_, lineH := m.Measure("Ay", opts.Text.withDefaults())
	numStyle := opts.Text
	numStyle.Color = "#888888"

	for i, raw := range lines {
		line := strings.ReplaceAll(strings.TrimRight(raw, "\r\n"), "\t", "    ")
		top := -float64(i) * lineH * codeLinePitch

		t := NewText(m, line, opts.Text)
		if spans != nil {
			t.Spans = spans[i]
		}
		MoveTo(t, geom.Point{X: 0, Y: top}, geom.UL)
		c.Lines = append(c.Lines, t)

		n := NewText(m, strconv.Itoa(opts.LineNoFrom+i), numStyle)
		MoveTo(n, geom.Point{X: -codeNumberGap * opts.Text.Size, Y: top}, geom.UR)
		c.Numbers = append(c.Numbers, n)
	}

	var r geom.Rect
	for i := range c.Lines {
		b := c.Lines[i].Box().Union(c.Numbers[i].Box())
		if i == 0 {
			r = b
		} else {
			r = r.Union(b)
		}
	}
	r = r.Pad(codePadding * opts.Text.Size)

	bg := NewRectangle(r.Width(), r.Height())
	bg.Shift(r.Center())
	bg.Radius = 0.1
	bg.Style.Stroke = ""
	bg.Style.Fill = "#111111"
	bg.Style.FillOpacity = 1
	if e := st.Get(chroma.Background); e.Background.IsSet() {
		bg.Style.Fill = e.Background.String()
	}
	c.Background = bg

	Center(c)
	return c
}

// colourise tokenises lines with the lexer for language and returns one
// span list per line, or nil when no lexer applies.
func colourise(lines []string, language string, st *chroma.Style) [][]Span {
	if language == "" {
		return nil
	}
	lexer := lexers.Get(language)
	if lexer == nil {
		return nil
	}
	lexer = chroma.Coalesce(lexer)

	text := strings.Join(lines, "\n") + "\n"
	it, err := lexer.Tokenise(nil, strings.ReplaceAll(text, "\t", "    "))
	if err != nil {
		return nil
	}

	out := make([][]Span, len(lines))
	for i, toks := range chroma.SplitTokensIntoLines(it.Tokens()) {
		if i >= len(out) {
			break
		}
		for _, tok := range toks {
			v := strings.TrimRight(tok.Value, "\r\n")
			if v == "" {
				continue
			}
			colour := "#FFFFFF"
			if e := st.Get(tok.Type); e.Colour.IsSet() {
				colour = e.Colour.String()
			}
			out[i] = append(out[i], Span{Text: v, Color: colour})
		}
	}
	return out
}

// Len returns the number of displayed lines.
func (c *Code) Len() int { return len(c.Lines) }

// Index converts a display line number into a position in Lines.
func (c *Code) Index(number int) int { return number - c.LineNoFrom }

// LastLine returns the display number of the final line.
func (c *Code) LastLine() int { return c.LineNoFrom + len(c.Lines) - 1 }

// LineNumber returns the gutter glyph for display line number.
func (c *Code) LineNumber(number int) *Text { return c.Numbers[c.Index(number)] }

// SetLineOpacity sets the opacity of the line at position i and its number.
func (c *Code) SetLineOpacity(i int, o float64) {
	c.Lines[i].Opacity = o
	c.Numbers[i].Opacity = o
}

// LineOpacity returns the opacity of the line at position i.
func (c *Code) LineOpacity(i int) float64 { return c.Lines[i].Opacity }

// Opacities returns the current opacity of every line.
func (c *Code) Opacities() []float64 {
	out := make([]float64, len(c.Lines))
	for i, l := range c.Lines {
		out[i] = l.Opacity
	}
	return out
}

// SetOpacity sets every line and number to o.
func (c *Code) SetOpacity(o float64) {
	for i := range c.Lines {
		c.SetLineOpacity(i, o)
	}
}

func (c *Code) Box() geom.Rect { return c.Background.Box() }

func (c *Code) Shift(v geom.Vec) {
	c.Background.Shift(v)
	for i := range c.Lines {
		c.Lines[i].Shift(v)
		c.Numbers[i].Shift(v)
	}
}

func (c *Code) Scale(f float64, about geom.Point) {
	c.Background.Scale(f, about)
	for i := range c.Lines {
		c.Lines[i].Scale(f, about)
		c.Numbers[i].Scale(f, about)
	}
}

func (c *Code) Clone() Element {
	out := &Code{
		Background: c.Background.Clone().(*Shape),
		LineNoFrom: c.LineNoFrom,
		Language:   c.Language,
		Lines:      make([]*Text, len(c.Lines)),
		Numbers:    make([]*Text, len(c.Numbers)),
	}
	for i := range c.Lines {
		out.Lines[i] = c.Lines[i].Clone().(*Text)
		out.Numbers[i] = c.Numbers[i].Clone().(*Text)
	}
	return out
}
