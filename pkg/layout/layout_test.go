package layout

import (
	"math"
	"testing"

	"github.com/matzehuels/codevideo/pkg/errors"
	"github.com/matzehuels/codevideo/pkg/geom"
)

func TestColumnsX(t *testing.T) {
	f := geom.DefaultFrame()
	cols := NewColumns(3, geom.SmallBuff)
	third := f.Width / 3

	tests := []struct {
		name         string
		column, span int
		dir          geom.Vec
		want         float64
	}{
		{"first left", 1, 1, geom.Left, -f.XRadius() + 0.1},
		{"first two right", 1, 2, geom.Right, -f.XRadius() + 2*third - 0.1},
		{"third left", 3, 1, geom.Left, -f.XRadius() + 2*third + 0.1},
		{"third right", 3, 1, geom.Right, f.XRadius() - 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cols.X(tt.column, tt.span, tt.dir)
			if err != nil {
				t.Fatalf("X() error = %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("X(%d, %d) = %v, want %v", tt.column, tt.span, got, tt.want)
			}
		})
	}
}

func TestColumnsInvalidDirection(t *testing.T) {
	cols := NewColumns(3, geom.SmallBuff)
	for _, dir := range []geom.Vec{geom.Up, geom.Down, geom.Origin, geom.UL} {
		if _, err := cols.X(1, 1, dir); !errors.Is(err, errors.ErrCodeInvalidDirection) {
			t.Errorf("X(dir=%v) error = %v, want INVALID_DIRECTION", dir, err)
		}
	}
}

func TestColumnsMonotonic(t *testing.T) {
	for _, n := range []int{1, 2, 3, 5} {
		cols := NewColumns(n, geom.SmallBuff)
		for c := 1; c <= n; c++ {
			if !(cols.Left(c, 1) < cols.Right(c, 1)) {
				t.Errorf("n=%d: column %d left %v >= right %v", n, c, cols.Left(c, 1), cols.Right(c, 1))
			}
			if c < n && cols.Left(c+1, 1) < cols.Right(c, 1) {
				t.Errorf("n=%d: column %d overlaps column %d", n, c+1, c)
			}
		}
	}
}

func TestColumnsDefaults(t *testing.T) {
	if got := NewColumns(0, DefaultBuff).Count(); got != DefaultColumns {
		t.Errorf("Count() = %d, want %d", got, DefaultColumns)
	}
}
