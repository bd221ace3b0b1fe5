package geom

import (
	"math"
	"testing"

	"github.com/matzehuels/codevideo/pkg/errors"
)

func TestRectWidthHeight(t *testing.T) {
	tests := []struct {
		name         string
		rect         Rect
		wantW, wantH float64
	}{
		{"positive", Rect{Left: 10, Right: 50, Bottom: 20, Top: 80}, 40, 60},
		{"zero", Rect{Left: 10, Right: 10, Bottom: 5, Top: 5}, 0, 0},
		{"straddling origin", Rect{Left: -2, Right: 2, Bottom: -1, Top: 1}, 4, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rect.Width(); got != tt.wantW {
				t.Errorf("Width() = %v, want %v", got, tt.wantW)
			}
			if got := tt.rect.Height(); got != tt.wantH {
				t.Errorf("Height() = %v, want %v", got, tt.wantH)
			}
		})
	}
}

func TestRectCriticalPoint(t *testing.T) {
	r := Rect{Left: 0, Right: 4, Bottom: 0, Top: 2}
	tests := []struct {
		name string
		dir  Vec
		want Point
	}{
		{"origin", Origin, Point{2, 1}},
		{"up", Up, Point{2, 2}},
		{"down", Down, Point{2, 0}},
		{"left", Left, Point{0, 1}},
		{"right", Right, Point{4, 1}},
		{"upper left", UL, Point{0, 2}},
		{"upper right", UR, Point{4, 2}},
		{"lower left", DL, Point{0, 0}},
		{"lower right", DR, Point{4, 0}},
		{"scaled direction", Vec{-3, 0.5}, Point{0, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.CriticalPoint(tt.dir); !got.Eq(tt.want) {
				t.Errorf("CriticalPoint(%v) = %v, want %v", tt.dir, got, tt.want)
			}
		})
	}
}

func TestRectScaleAbout(t *testing.T) {
	r := Rect{Left: 0, Right: 4, Bottom: 0, Top: 2}

	t.Run("about corner keeps corner", func(t *testing.T) {
		got := r.ScaleAbout(0.5, Point{0, 2})
		want := Rect{Left: 0, Right: 2, Bottom: 1, Top: 2}
		if got != want {
			t.Errorf("ScaleAbout = %+v, want %+v", got, want)
		}
	})

	t.Run("about center keeps center", func(t *testing.T) {
		got := r.ScaleAbout(2, r.Center())
		if !got.Center().Eq(r.Center()) {
			t.Errorf("center moved: %v -> %v", r.Center(), got.Center())
		}
		if math.Abs(got.Width()-8) > Eps || math.Abs(got.Height()-4) > Eps {
			t.Errorf("size = %vx%v, want 8x4", got.Width(), got.Height())
		}
	})
}

func TestRectFromPoints(t *testing.T) {
	got := RectFromPoints(Point{1, 5}, Point{-2, 3}, Point{4, -1})
	want := Rect{Left: -2, Right: 4, Bottom: -1, Top: 5}
	if got != want {
		t.Errorf("RectFromPoints = %+v, want %+v", got, want)
	}
	if (RectFromPoints() != Rect{}) {
		t.Error("RectFromPoints() should be the zero rect")
	}
}

func TestRectContains(t *testing.T) {
	outer := Rect{Left: 0, Right: 10, Bottom: 0, Top: 10}
	if !outer.Contains(Rect{Left: 1, Right: 9, Bottom: 1, Top: 9}) {
		t.Error("inner rect should be contained")
	}
	if !outer.Contains(outer) {
		t.Error("rect should contain itself")
	}
	if outer.Contains(Rect{Left: -1, Right: 9, Bottom: 1, Top: 9}) {
		t.Error("overflowing rect should not be contained")
	}
}

func TestVecMaskAndSign(t *testing.T) {
	if got := (Vec{3, -4}).Mask(Left); !got.Eq(Vec{3, 0}) {
		t.Errorf("Mask(Left) = %v", got)
	}
	if got := (Vec{-0.5, 7}).Sign(); !got.Eq(UL) {
		t.Errorf("Sign = %v, want %v", got, UL)
	}
}

func TestFrame(t *testing.T) {
	f := DefaultFrame()
	if math.Abs(f.Width/f.Height-16.0/9.0) > 1e-9 {
		t.Errorf("aspect = %v, want 16:9", f.Width/f.Height)
	}
	if got := f.EdgePoint(UR); !got.Eq(Point{f.XRadius(), f.YRadius()}) {
		t.Errorf("EdgePoint(UR) = %v", got)
	}
	if got := f.Rect(); math.Abs(got.Width()-f.Width) > Eps {
		t.Errorf("Rect width = %v, want %v", got.Width(), f.Width)
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		name string
		want Vec
	}{
		{"left", Left},
		{"UP", Up},
		{" dr ", DR},
		{"down_left", DL},
		{"center", Origin},
	}
	for _, tt := range tests {
		got, err := ParseDirection(tt.name)
		if err != nil || got != tt.want {
			t.Errorf("ParseDirection(%q) = %v, %v; want %v", tt.name, got, err, tt.want)
		}
	}
	if _, err := ParseDirection("sideways"); !errors.Is(err, errors.ErrCodeInvalidDirection) {
		t.Errorf("ParseDirection(sideways) error = %v, want INVALID_DIRECTION", err)
	}
}
