package diagram

import (
	"context"
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/codevideo/pkg/errors"
	"github.com/matzehuels/codevideo/pkg/geom"
	"github.com/matzehuels/codevideo/pkg/scene"
)

const eps = 1e-9

func newLib() *Library { return New(scene.MonoMeasurer{}) }

func TestParseColor(t *testing.T) {
	tests := []struct {
		value       string
		wantColor   string
		wantOpacity float64
		wantErr     bool
	}{
		{"#112233", "#112233", 1, false},
		{"#11223380", "#112233", 128.0 / 255, false},
		{"#FFFFFF00", "#FFFFFF", 0, false},
		{"red", "", 0, true},
		{"#12345", "", 0, true},
		{"#GG2233", "", 0, true},
		{"", "", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			c, o, err := ParseColor(tt.value, "label", DefaultPalette)
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidColor) {
					t.Errorf("error = %v, want INVALID_COLOR", err)
				}
				return
			}
			if err != nil || c != tt.wantColor || math.Abs(o-tt.wantOpacity) > eps {
				t.Errorf("ParseColor(%q) = %q, %v, %v; want %q, %v", tt.value, c, o, err, tt.wantColor, tt.wantOpacity)
			}
		})
	}
}

func TestParseColorRandom(t *testing.T) {
	c1, o, err := ParseColor(RandomColor, "Component A", DefaultPalette)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Contains(DefaultPalette, c1) || o != 0.2 {
		t.Errorf("random colour = %q, %v", c1, o)
	}
	c2, _, _ := ParseColor(RandomColor, "Component A", DefaultPalette)
	if c1 != c2 {
		t.Error("random colour should be stable for the same text")
	}
	if _, _, err := ParseColor(RandomColor, "x", nil); !errors.Is(err, errors.ErrCodeInvalidColor) {
		t.Errorf("empty palette error = %v", err)
	}
}

func TestTextBox(t *testing.T) {
	lib := newLib()

	b, err := lib.TextBox("Component A")
	if err != nil {
		t.Fatal(err)
	}
	// 11 columns at 0.3 per column, one line of 0.5, plus padding.
	if w, h := b.Border.Box().Width(), b.Border.Box().Height(); math.Abs(w-3.8) > eps || math.Abs(h-1.0) > eps {
		t.Errorf("border = %vx%v, want 3.8x1", w, h)
	}
	if b.Len() != 3 || b.Children[0] != scene.Element(b.Shadow) {
		t.Errorf("children = %d, shadow should be drawn first", b.Len())
	}
	if c := b.Title.Box().Center(); !c.Eq(b.Border.Box().Center()) {
		t.Errorf("title center = %v, want border center", c)
	}
	if b.Shadow.Style.FillOpacity != ShadowOpacity || b.Shadow.Box().Width() <= b.Border.Box().Width() {
		t.Error("shadow should be a larger translucent copy of the border")
	}

	plain, _ := lib.TextBox("Component A", WithoutShadow(), WithRounded())
	if plain.Len() != 2 || plain.Shadow != nil || plain.Border.Radius != RoundedRadius {
		t.Errorf("plain box = %d children, radius %v", plain.Len(), plain.Border.Radius)
	}

	clear, _ := lib.TextBox("Component A", WithBackground("#FFFFFF00"))
	if clear.Shadow != nil {
		t.Error("transparent boxes get no shadow")
	}

	if _, err := lib.TextBox("x", WithBackground("blue")); !errors.Is(err, errors.ErrCodeInvalidColor) {
		t.Errorf("error = %v, want INVALID_COLOR", err)
	}
}

func TestTextBoxWraps(t *testing.T) {
	b, err := newLib().TextBox("one two three four five six seven eight nine ten")
	if err != nil {
		t.Fatal(err)
	}
	if got := len(b.Title.Lines()); got != 2 {
		t.Errorf("lines = %d, want 2", got)
	}
	if b.Text != "one two three four five six seven eight nine ten" {
		t.Errorf("Text = %q, should keep the unwrapped label", b.Text)
	}
}

func TestNoteBox(t *testing.T) {
	n, err := newLib().NoteBox("Remember this", WithoutShadow())
	if err != nil {
		t.Fatal(err)
	}
	if n.Kind != KindNoteBox || len(n.Border.Points) != 5 {
		t.Errorf("note kind %v with %d points", n.Kind, len(n.Border.Points))
	}
	tw := n.Title.Box().Width()
	if w := n.Border.Box().Width(); math.Abs(w-(tw+0.6)) > eps {
		t.Errorf("note width = %v, want %v", w, tw+0.6)
	}
	if c := n.Border.Box().Center(); !c.Eq(geom.Origin) {
		t.Errorf("note center = %v, want origin", c)
	}
}

func TestBoxClone(t *testing.T) {
	b, _ := newLib().TextBox("Clone me")
	c := b.Clone().(*Box)
	c.Shift(geom.Vec{X: 2})
	if b.Box() == c.Box() {
		t.Error("clone should move independently")
	}
	if c.Shadow == nil || c.Children[0] != scene.Element(c.Shadow) {
		t.Error("clone should keep its own shadow first")
	}
}

func TestConnect(t *testing.T) {
	lib := newLib()
	a, _ := lib.TextBox("A", WithoutShadow())
	b, _ := lib.TextBox("B", WithoutShadow())

	t.Run("horizontal", func(t *testing.T) {
		a.Shift(geom.Vec{X: -4})
		defer a.Shift(geom.Vec{X: 4})
		c, err := lib.Connect(a, b, "call")
		if err != nil {
			t.Fatal(err)
		}
		if !c.Arrow.Start().Eq(a.Box().CriticalPoint(geom.Right)) || !c.Arrow.End().Eq(b.Box().CriticalPoint(geom.Left)) {
			t.Errorf("arrow %v -> %v", c.Arrow.Start(), c.Arrow.End())
		}
		if math.Abs(c.Label.Box().Bottom-c.Arrow.Box().Top) > eps {
			t.Error("label should sit on the arrow")
		}
		if !c.Label.Style.Italic {
			t.Error("label should be italic")
		}
	})

	t.Run("vertical", func(t *testing.T) {
		a.Shift(geom.Vec{Y: 3})
		defer a.Shift(geom.Vec{Y: -3})
		c, err := lib.Connect(a, b, "down")
		if err != nil {
			t.Fatal(err)
		}
		if !c.Arrow.End().Eq(b.Box().CriticalPoint(geom.Up)) {
			t.Errorf("arrow end = %v", c.Arrow.End())
		}
		if math.Abs(c.Label.Box().Left-(c.Arrow.Box().Right+VerticalLabelBuff)) > eps {
			t.Error("label should sit right of the arrow")
		}
	})

	t.Run("reverse", func(t *testing.T) {
		a.Shift(geom.Vec{X: 4})
		defer a.Shift(geom.Vec{X: -4})
		c, err := lib.Connect(a, b, "")
		if err != nil {
			t.Fatal(err)
		}
		if c.Label != nil || c.Len() != 1 {
			t.Error("unlabelled connection should only hold the arrow")
		}
		if !c.Arrow.Start().Eq(a.Box().CriticalPoint(geom.Left)) {
			t.Errorf("arrow start = %v", c.Arrow.Start())
		}
	})

	t.Run("overlap", func(t *testing.T) {
		if _, err := lib.Connect(a, b, "x"); !errors.Is(err, errors.ErrCodeAmbiguousConnection) {
			t.Errorf("error = %v, want AMBIGUOUS_CONNECTION", err)
		}
	})
}

func TestBorderedGroup(t *testing.T) {
	lib := newLib()
	a, _ := lib.TextBox("A")
	b, _ := lib.TextBox("B")
	b.Shift(geom.Vec{X: 3, Y: -1})
	extent := a.Box().Union(b.Box())

	g, err := lib.BorderedGroup([]scene.Element{a, b}, "Services")
	if err != nil {
		t.Fatal(err)
	}
	if g.Len() != 4 {
		t.Fatalf("children = %d, want border, two boxes, title", g.Len())
	}
	border := g.Children[0].Box()
	if math.Abs(border.Width()-(extent.Width()+1.2)) > eps || !border.Center().Eq(extent.Center()) {
		t.Errorf("border = %+v for extent %+v", border, extent)
	}
	title := g.Children[3].(*Box)
	if math.Abs(title.Box().CenterY()-border.Top) > eps {
		t.Errorf("title center y = %v, want border top %v", title.Box().CenterY(), border.Top)
	}
	if title.Shadow != nil {
		t.Error("group title has no shadow")
	}

	if _, err := lib.BorderedGroup(nil, ""); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("empty group error = %v", err)
	}
}

const boxesScript = `
title = "Components"

[[box]]
id = "a"
text = "Component A"
edge = "left"
shadow = false

[[box]]
id = "b"
text = "Component B"
of = "a"
direction = "down"
buff = 1

[[box]]
id = "c"
text = "Component C"
of = "a"
direction = "right"
buff = 4
note = true

[[connect]]
from = "b"
to = "a"
label = "Do something"

[[connect]]
from = "a"
to = "c"
label = "Do another thing"

[[group]]
title = "Backend"
boxes = ["a", "b"]
`

func TestBuildScript(t *testing.T) {
	s, err := ParseScript([]byte(boxesScript))
	if err != nil {
		t.Fatal(err)
	}
	sh, err := newLib().Build(s, geom.DefaultFrame())
	if err != nil {
		t.Fatal(err)
	}

	a, b, c := sh.Boxes["a"].Box(), sh.Boxes["b"].Box(), sh.Boxes["c"].Box()
	f := geom.DefaultFrame()
	if math.Abs(a.Left-(-f.XRadius()+geom.DefaultEdgeBuff)) > eps {
		t.Errorf("a left = %v", a.Left)
	}
	if math.Abs(b.Top-(a.Bottom-1)) > eps || math.Abs(b.CenterX()-a.CenterX()) > eps {
		t.Errorf("b = %+v should be 1 below a = %+v", b, a)
	}
	if math.Abs(c.Left-(a.Right+4)) > eps {
		t.Errorf("c left = %v, want %v", c.Left, a.Right+4)
	}
	if len(sh.Connections) != 2 || len(sh.Groups) != 1 {
		t.Errorf("connections = %d, groups = %d", len(sh.Connections), len(sh.Groups))
	}
	// group, ungrouped c, two connections
	if sh.Root.Len() != 4 {
		t.Errorf("root children = %d, want 4", sh.Root.Len())
	}
}

func TestScriptValidation(t *testing.T) {
	tests := []struct {
		name   string
		script string
	}{
		{"missing id", "[[box]]\ntext = \"x\""},
		{"duplicate id", "[[box]]\nid = \"a\"\n[[box]]\nid = \"a\""},
		{"forward reference", "[[box]]\nid = \"a\"\nof = \"b\"\ndirection = \"down\"\n[[box]]\nid = \"b\""},
		{"unknown connection", "[[box]]\nid = \"a\"\n[[connect]]\nfrom = \"a\"\nto = \"z\""},
		{"double group", "[[box]]\nid = \"a\"\n[[group]]\nboxes = [\"a\"]\n[[group]]\nboxes = [\"a\"]"},
		{"bad toml", "[[box]\nid = "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseScript([]byte(tt.script)); !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("error = %v, want INVALID_INPUT", err)
			}
		})
	}

	s, _ := ParseScript([]byte("[[box]]\nid = \"a\"\n[[box]]\nid = \"b\"\nof = \"a\"\ndirection = \"sideways\""))
	if _, err := newLib().Build(s, geom.DefaultFrame()); !errors.Is(err, errors.ErrCodeInvalidDirection) {
		t.Errorf("Build error = %v, want INVALID_DIRECTION", err)
	}
}

func TestToDOT(t *testing.T) {
	s, err := ParseScript([]byte(boxesScript))
	if err != nil {
		t.Fatal(err)
	}
	dot, err := newLib().ToDOT(s)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"digraph G {",
		`"b" -> "a" [label="Do something"];`,
		`"c" [label="Component C", fillcolor="#FFFFFFFF", shape=note`,
		"subgraph cluster_0 {",
		`label="Backend";`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="170pt" height="116pt" viewBox="0.00 0.00 170.00 116.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	out := string(normalizeViewBox(in))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 170.00 116.00" width="170" height="116"><g/></svg>`
	if out != want {
		t.Errorf("normalizeViewBox() = %s", out)
	}
	if got := normalizeViewBox([]byte("<svg/>")); string(got) != "<svg/>" {
		t.Errorf("no viewBox should be left alone, got %s", got)
	}
}

func TestRenderSVG(t *testing.T) {
	svg, err := RenderSVG(context.Background(), "digraph G { a -> b; }")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(svg), `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 `) {
		t.Errorf("unexpected SVG header: %.200s", svg)
	}
}
