package highlight

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/matzehuels/codevideo/pkg/anim"
	"github.com/matzehuels/codevideo/pkg/autoscale"
	"github.com/matzehuels/codevideo/pkg/errors"
	"github.com/matzehuels/codevideo/pkg/geom"
	"github.com/matzehuels/codevideo/pkg/layout"
	"github.com/matzehuels/codevideo/pkg/scene"
)

func captionText(text string) scene.Element {
	return scene.NewText(scene.MonoMeasurer{}, scene.Wrap(text, 25), scene.TextStyle{Size: 0.25})
}

func newCode(n int) (*autoscale.Element, *scene.Code) {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = "value = compute(value)"
	}
	c := scene.NewCode(scene.MonoMeasurer{}, lines, scene.CodeOptions{})
	return autoscale.New(c), c
}

func play(tr Transition) {
	for _, step := range tr.Steps {
		for _, a := range step {
			a.Run()
		}
	}
}

func TestOpacityScenario(t *testing.T) {
	eng := New(captionText)
	code, c := newCode(10)

	tr, err := eng.Lines(State{}, code, Request{Start: 3, End: 5})
	if err != nil {
		t.Fatalf("Lines: %v", err)
	}
	play(tr)

	want := []float64{0.3, 0.3, 1, 1, 1, 0.3, 0.3, 0.3, 0.3, 0.3}
	if got := c.Opacities(); !reflect.DeepEqual(got, want) {
		t.Errorf("opacities = %v, want %v", got, want)
	}
	for i, n := range c.Numbers {
		if n.Opacity != want[i] {
			t.Errorf("line number %d opacity = %v, want %v", i+1, n.Opacity, want[i])
		}
	}

	tr, err = eng.None(tr.State, code)
	if err != nil {
		t.Fatalf("None: %v", err)
	}
	play(tr)
	for i, o := range c.Opacities() {
		if o != 1 {
			t.Errorf("line %d opacity after None = %v, want 1", i+1, o)
		}
	}
}

func TestCaptionPlacement(t *testing.T) {
	eng := New(captionText)
	code, c := newCode(10)
	cols := layout.NewColumns(3, geom.SmallBuff)

	caption := "Compute the next value from the previous one"
	tr, err := eng.Lines(State{}, code, Request{Start: 4, End: ToEnd, Caption: caption})
	if err != nil {
		t.Fatalf("Lines: %v", err)
	}
	if len(tr.Steps) != 2 {
		t.Fatalf("steps = %d, want fill step then highlight step", len(tr.Steps))
	}
	if got := tr.Steps[0][0].Label; got != "fill_between_x" {
		t.Errorf("first step = %q, want fill_between_x", got)
	}
	if got := tr.Steps[1][0].Label; got != "4-10" {
		t.Errorf("highlight label = %q, want 4-10", got)
	}
	play(tr)

	if !tr.State.Showing() || tr.State.Text != caption {
		t.Fatalf("state = %+v, want caption shown", tr.State)
	}
	if want := HoldTime(caption); math.Abs(tr.Hold-want) > 1e-9 {
		t.Errorf("Hold = %v, want %v", tr.Hold, want)
	}

	box := tr.State.Caption.Box()
	if math.Abs(box.Left-cols.Left(3, 1)) > 1e-9 {
		t.Errorf("caption left = %v, want %v", box.Left, cols.Left(3, 1))
	}
	if top := c.LineNumber(4).Box().Top; math.Abs(box.Top-top) > 1e-9 {
		t.Errorf("caption top = %v, want start line top %v", box.Top, top)
	}
	if r := code.Box().Right; r > cols.Right(1, 2)+1e-9 {
		t.Errorf("code right = %v, should stay left of %v", r, cols.Right(1, 2))
	}
}

func TestCaptionMutualExclusion(t *testing.T) {
	eng := New(captionText)
	code, _ := newCode(10)

	first, err := eng.Lines(State{}, code, Request{Start: 1, End: 2, Caption: "First"})
	if err != nil {
		t.Fatal(err)
	}
	play(first)

	second, err := eng.Lines(first.State, code, Request{Start: 3, End: 4, Caption: "Second"})
	if err != nil {
		t.Fatal(err)
	}

	fadeOutStep, fadeInStep, fadeOuts := -1, -1, 0
	for i, step := range second.Steps {
		for _, a := range step {
			switch {
			case a.Kind == anim.KindFadeOut && a.Target == first.State.Caption:
				fadeOuts++
				fadeOutStep = i
			case a.Kind == anim.KindFadeIn && a.Target == second.State.Caption:
				fadeInStep = i
			case a.Label == "fill_between_x":
				t.Error("code is already narrowed; no second fill expected")
			}
		}
	}
	if fadeOuts != 1 {
		t.Errorf("fade outs of first caption = %d, want 1", fadeOuts)
	}
	if !(fadeOutStep >= 0 && fadeOutStep < fadeInStep) {
		t.Errorf("fade out step %d should precede fade in step %d", fadeOutStep, fadeInStep)
	}
}

func TestUncaptionedAfterCaptionRestoresFullSize(t *testing.T) {
	tests := []struct {
		name   string
		code   func() *autoscale.Element
		shrink bool
	}{
		{
			name: "height bound",
			code: func() *autoscale.Element { a, _ := newCode(10); return a },
		},
		{
			name: "width bound",
			code: func() *autoscale.Element {
				wide := strings.Repeat("value = compute(value) + ", 6) + "1"
				return autoscale.New(scene.NewCode(scene.MonoMeasurer{}, []string{wide, "x = 1", "y = 2"}, scene.CodeOptions{}))
			},
			shrink: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng := New(captionText)
			code := tt.code()
			orig := code.Box()

			tr, err := eng.Lines(State{}, code, Request{Start: 1, End: 1, Caption: "Narrow"})
			if err != nil {
				t.Fatal(err)
			}
			play(tr)
			narrowed := code.Box()
			if left := eng.cols.Left(codeColumn, codeSpan); math.Abs(narrowed.Left-left) > 1e-6 {
				t.Errorf("left = %v, want column edge %v", narrowed.Left, left)
			}
			if right := eng.cols.Right(codeColumn, codeSpan); narrowed.Right > right+1e-6 {
				t.Errorf("right = %v, past column edge %v", narrowed.Right, right)
			}
			if shrunk := narrowed.Width() < orig.Width()-1e-6; shrunk != tt.shrink {
				t.Errorf("width %v -> %v, shrink = %v, want %v", orig.Width(), narrowed.Width(), shrunk, tt.shrink)
			}

			tr, err = eng.Lines(tr.State, code, Request{Start: 2, End: 3})
			if err != nil {
				t.Fatal(err)
			}
			play(tr)
			if tr.State.Showing() {
				t.Error("caption should be cleared")
			}
			got := code.Box()
			if math.Abs(got.Left-orig.Left) > 1e-6 || math.Abs(got.Right-orig.Right) > 1e-6 {
				t.Errorf("box = [%v, %v], want original [%v, %v]", got.Left, got.Right, orig.Left, orig.Right)
			}
		})
	}
}

func TestNoneFadesCaption(t *testing.T) {
	eng := New(captionText)
	code, _ := newCode(4)

	tr, _ := eng.Line(State{}, code, 2, "Only this one")
	play(tr)

	none, err := eng.None(tr.State, code)
	if err != nil {
		t.Fatal(err)
	}
	if len(none.Steps) != 2 || none.Steps[0][0].Kind != anim.KindFadeOut {
		t.Errorf("None steps = %v", none.Steps)
	}
	if none.State.Showing() {
		t.Error("None should clear the caption")
	}

	if got := eng.Clear(tr.State); len(got.Steps) != 1 {
		t.Errorf("Clear steps = %d, want 1", len(got.Steps))
	}
	if got := eng.Clear(State{}); len(got.Steps) != 0 {
		t.Errorf("Clear without caption steps = %d, want 0", len(got.Steps))
	}
}

func TestInvalidRequests(t *testing.T) {
	eng := New(captionText)
	code, _ := newCode(5)

	for _, req := range []Request{{Start: 0, End: 2}, {Start: 4, End: 2}, {Start: 1, End: 6}} {
		if _, err := eng.Lines(State{}, code, req); !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("Lines(%+v) error = %v, want INVALID_INPUT", req, err)
		}
	}

	notCode := autoscale.New(scene.NewRectangle(1, 1))
	if _, err := eng.Lines(State{}, notCode, Request{Start: 1, End: 1}); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("non-code target error = %v, want INVALID_INPUT", err)
	}
}

func TestHoldTime(t *testing.T) {
	if got := HoldTime(strings.Repeat("x", 100)); math.Abs(got-6) > 1e-9 {
		t.Errorf("HoldTime(100 chars) = %v, want 6", got)
	}
	if got := HoldTime(""); got != 0 {
		t.Errorf("HoldTime(\"\") = %v, want 0", got)
	}
}
