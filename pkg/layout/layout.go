// Package layout splits the frame width into equal columns.
//
//	cols := layout.NewColumns(3, geom.SmallBuff)
//	left, _ := cols.X(1, 2, geom.Left)   // left edge of columns 1-2
//	right, _ := cols.X(1, 2, geom.Right) // right edge of columns 1-2
package layout

import (
	"github.com/matzehuels/codevideo/pkg/errors"
	"github.com/matzehuels/codevideo/pkg/geom"
)

// Defaults for NewColumns arguments.
const (
	DefaultColumns = 2
	DefaultBuff    = geom.SmallBuff
)

// Columns maps column indices to x coordinates.
type Columns struct {
	count int
	buff  float64
	left  float64
	width float64
}

// NewColumns partitions the default frame into count columns inset by buff.
// A count below 1 falls back to DefaultColumns.
func NewColumns(count int, buff float64) Columns {
	return NewColumnsInFrame(geom.DefaultFrame(), count, buff)
}

// NewColumnsInFrame is NewColumns for a custom frame.
func NewColumnsInFrame(f geom.Frame, count int, buff float64) Columns {
	if count < 1 {
		count = DefaultColumns
	}
	return Columns{count: count, buff: buff, left: -f.XRadius(), width: f.Width / float64(count)}
}

// Count returns the number of columns.
func (c Columns) Count() int { return c.count }

// Width returns the raw width of one column.
func (c Columns) Width() float64 { return c.width }

// X returns the left or right x coordinate of the region spanning span
// columns from column (1-based), inset by the buffer. Any other direction
// fails with INVALID_DIRECTION.
func (c Columns) X(column, span int, dir geom.Vec) (float64, error) {
	col := float64(column - 1)
	switch dir {
	case geom.Left:
		return c.left + col*c.width + c.buff, nil
	case geom.Right:
		return c.left + (col+float64(span))*c.width - c.buff, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidDirection, "column edge must be LEFT or RIGHT, got (%g, %g)", dir.X, dir.Y)
}

// Left is X(column, span, geom.Left).
func (c Columns) Left(column, span int) float64 {
	x, _ := c.X(column, span, geom.Left)
	return x
}

// Right is X(column, span, geom.Right).
func (c Columns) Right(column, span int) float64 {
	x, _ := c.X(column, span, geom.Right)
	return x
}
