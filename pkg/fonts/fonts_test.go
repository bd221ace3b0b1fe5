package fonts

import (
	"math"
	"testing"

	"github.com/matzehuels/codevideo/pkg/scene"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		family string
		italic bool
		want   string
	}{
		{"Ubuntu Mono", false, Mono},
		{"Courier New", true, Mono},
		{"Helvetica", false, Regular},
		{"Helvetica", true, Italic},
		{"", false, Regular},
	}
	for _, tt := range tests {
		if got := Resolve(tt.family, tt.italic); got != tt.want {
			t.Errorf("Resolve(%q, %v) = %q, want %q", tt.family, tt.italic, got, tt.want)
		}
	}
}

func TestMeasureMono(t *testing.T) {
	m := NewMeasurer()
	style := scene.TextStyle{Font: "Ubuntu Mono", Size: 1}

	w1, h1 := m.Measure("abcd", style)
	w2, _ := m.Measure("ijkl", style)
	if math.Abs(w1-w2) > 1e-9 {
		t.Errorf("monospace widths differ: %v vs %v", w1, w2)
	}
	if h1 != 1 {
		t.Errorf("height = %v, want one line", h1)
	}

	w3, h3 := m.Measure("abcd\nab", scene.TextStyle{Font: "Ubuntu Mono", Size: 2})
	if math.Abs(w3-2*w1) > 1e-9 || h3 != 4 {
		t.Errorf("doubled size: %v x %v", w3, h3)
	}
}

func TestMeasureProportional(t *testing.T) {
	m := NewMeasurer()
	narrow, _ := m.Measure("iiii", scene.TextStyle{})
	wide, _ := m.Measure("WWWW", scene.TextStyle{})
	if narrow >= wide {
		t.Errorf("proportional font: iiii=%v WWWW=%v", narrow, wide)
	}
}

func TestFace(t *testing.T) {
	f, err := Face(scene.TextStyle{Font: "Go Mono"}, 24)
	if err != nil {
		t.Fatal(err)
	}
	if f.Metrics().Height <= 0 {
		t.Error("face should have a positive line height")
	}
}
