package scene

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/matzehuels/codevideo/pkg/geom"
)

// DefaultTextSize is the height of one text line in scene units at size 1.
const DefaultTextSize = 0.5

// TextStyle describes how a Text is set.
type TextStyle struct {
	Font   string  // Font family name
	Size   float64 // Line height in scene units; zero means DefaultTextSize
	Italic bool
	Color  string // Fill colour; empty means white
}

func (s TextStyle) withDefaults() TextStyle {
	if s.Size == 0 {
		s.Size = DefaultTextSize
	}
	if s.Color == "" {
		s.Color = "#FFFFFF"
	}
	return s
}

// Measurer reports the extent of set text in scene units.
type Measurer interface {
	// Measure returns the width and height of s, which may span several
	// lines separated by "\n".
	Measure(s string, style TextStyle) (w, h float64)
}

// MonoMeasurer is a fixed-advance Measurer: each display column is 0.6 of
// the text size wide and each line is exactly one text size tall. Wide runes
// count as two columns.
type MonoMeasurer struct{}

// MonoAdvance is the column width of MonoMeasurer relative to the text size.
const MonoAdvance = 0.6

func (MonoMeasurer) Measure(s string, style TextStyle) (float64, float64) {
	style = style.withDefaults()
	lines := strings.Split(s, "\n")
	cols := 0
	for _, l := range lines {
		cols = max(cols, runewidth.StringWidth(l))
	}
	return float64(cols) * MonoAdvance * style.Size, float64(len(lines)) * style.Size
}

// Span is a run of text with a single colour.
type Span struct {
	Text  string
	Color string
}

// Text is a block of one or more lines of set text.
type Text struct {
	Content string
	Style   TextStyle
	Opacity float64
	// Spans optionally colours a single-line text; their concatenation
	// equals Content.
	Spans []Span

	box geom.Rect
}

// NewText measures content with m and returns it centred on the origin.
func NewText(m Measurer, content string, style TextStyle) *Text {
	style = style.withDefaults()
	w, h := m.Measure(content, style)
	return &Text{Content: content, Style: style, Opacity: 1, box: geom.RectAround(geom.Origin, w, h)}
}

// Lines returns the text split into lines.
func (t *Text) Lines() []string { return strings.Split(t.Content, "\n") }

func (t *Text) Box() geom.Rect { return t.box }

func (t *Text) Shift(v geom.Vec) { t.box = t.box.Shift(v) }

func (t *Text) Scale(f float64, about geom.Point) {
	t.box = t.box.ScaleAbout(f, about)
	t.Style.Size *= f
}

func (t *Text) Clone() Element {
	out := *t
	out.Spans = append([]Span(nil), t.Spans...)
	return &out
}

func (t *Text) SetOpacity(o float64) { t.Opacity = o }

// Wrap breaks s into lines of at most width display columns, collapsing
// runs of whitespace. Words longer than width are split. A width <= 0
// returns s unchanged.
func Wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	var (
		lines []string
		cur   strings.Builder
		curW  int
	)
	flush := func() {
		if curW > 0 {
			lines = append(lines, cur.String())
		}
		cur.Reset()
		curW = 0
	}
	for _, word := range strings.Fields(s) {
		for _, chunk := range splitWord(word, width) {
			w := runewidth.StringWidth(chunk)
			if curW > 0 && curW+1+w > width {
				flush()
			}
			if curW > 0 {
				cur.WriteByte(' ')
				curW++
			}
			cur.WriteString(chunk)
			curW += w
		}
	}
	flush()
	return strings.Join(lines, "\n")
}

func splitWord(word string, width int) []string {
	if runewidth.StringWidth(word) <= width {
		return []string{word}
	}
	var (
		out []string
		b   strings.Builder
		w   int
	)
	for _, r := range word {
		rw := runewidth.RuneWidth(r)
		if w > 0 && w+rw > width {
			out = append(out, b.String())
			b.Reset()
			w = 0
		}
		b.WriteRune(r)
		w += rw
	}
	if w > 0 {
		out = append(out, b.String())
	}
	return out
}
