package anim

import (
	"reflect"
	"testing"

	"github.com/matzehuels/codevideo/pkg/scene"
)

func newCode(n, from int) *scene.Code {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = "x = 1"
	}
	return scene.NewCode(scene.MonoMeasurer{}, lines, scene.CodeOptions{LineNoFrom: from})
}

func TestLineOpacities(t *testing.T) {
	tests := []struct {
		name       string
		from, n    int
		start, end int
		want       []float64
	}{
		{"middle", 1, 5, 2, 3, []float64{0.3, 1, 1, 0.3, 0.3}},
		{"offset", 10, 3, 11, 11, []float64{0.3, 1, 0.3}},
		{"all", 1, 3, 1, 3, []float64{1, 1, 1}},
		{"outside", 1, 2, 5, 6, []float64{0.3, 0.3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LineOpacities(tt.from, tt.n, tt.start, tt.end)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("LineOpacities() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHighlightLinesDeferred(t *testing.T) {
	code := newCode(4, 5)
	a := HighlightLines(code, code, 6, -1)

	if a.Kind != KindHighlight || a.Label != "6-8" {
		t.Errorf("animation = %s", a)
	}
	if code.LineOpacity(0) != 1 {
		t.Fatal("building the animation should not change the scene")
	}

	a.Run()
	want := []float64{0.3, 1, 1, 1}
	if got := code.Opacities(); !reflect.DeepEqual(got, want) {
		t.Errorf("opacities after Run = %v, want %v", got, want)
	}

	HighlightNone(code, code).Run()
	if got := code.Opacities(); !reflect.DeepEqual(got, []float64{1, 1, 1, 1}) {
		t.Errorf("opacities after HighlightNone = %v", got)
	}
}

func TestApplyAndDuration(t *testing.T) {
	ran := false
	r := scene.NewRectangle(1, 1)
	batch := []Animation{
		Apply(r, "full_size", func() { ran = true }),
		FadeIn(r).WithRunTime(2.5),
		FadeOut(r),
	}
	if got := Duration(batch); got != 2.5 {
		t.Errorf("Duration() = %v, want 2.5", got)
	}
	for _, a := range batch {
		a.Run()
	}
	if !ran {
		t.Error("Run should apply the deferred mutation")
	}
	if got := batch[0].String(); got != "apply(full_size)" {
		t.Errorf("String() = %q", got)
	}
}
