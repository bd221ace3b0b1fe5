package autoscale

import (
	"math"
	"testing"

	"github.com/matzehuels/codevideo/pkg/geom"
	"github.com/matzehuels/codevideo/pkg/scene"
)

const eps = 1e-6

func checkFit(t *testing.T, step string, e *Element) {
	t.Helper()
	b := e.Box()
	bw, bh := e.Bounds().Width(), e.Bounds().Height()
	if b.Width() > bw+eps || b.Height() > bh+eps {
		t.Errorf("%s: %vx%v exceeds bounds %vx%v", step, b.Width(), b.Height(), bw, bh)
	}
	if math.Abs(b.Width()-bw) > eps && math.Abs(b.Height()-bh) > eps {
		t.Errorf("%s: %vx%v fills neither dimension of %vx%v", step, b.Width(), b.Height(), bw, bh)
	}
}

func TestNewFitsFrame(t *testing.T) {
	e := New(scene.NewRectangle(20, 4))
	f := geom.DefaultFrame()

	wantW := f.Width - 2*geom.DefaultObjectBuff
	if got := e.Box().Width(); math.Abs(got-wantW) > eps {
		t.Errorf("width = %v, want %v", got, wantW)
	}
	if got := e.ScaleFactor(); math.Abs(got-wantW/20) > eps {
		t.Errorf("ScaleFactor() = %v, want %v", got, wantW/20)
	}
	if c := e.Box().Center(); !c.Eq(geom.Origin) {
		t.Errorf("center = %+v, want origin", c)
	}
}

func TestFitInvariant(t *testing.T) {
	title := scene.NewRectangle(3, 0.6)
	scene.ToEdge(title, geom.DefaultFrame(), geom.Up, geom.DefaultEdgeBuff)

	shapes := map[string]scene.Element{
		"wide":   scene.NewRectangle(30, 2),
		"tall":   scene.NewRectangle(1, 40),
		"square": scene.NewRectangle(3, 3),
		"code":   scene.NewCode(scene.MonoMeasurer{}, []string{"def f():", "    return 1", "", "print(f())"}, scene.CodeOptions{}),
	}

	ops := []struct {
		name string
		fn   func(*Element)
	}{
		{"to edge up", func(e *Element) { e.ToEdge(geom.Up, geom.DefaultEdgeBuff) }},
		{"next to title", func(e *Element) { e.NextTo(title.Box(), geom.Down, geom.DefaultObjectBuff) }},
		{"fill between", func(e *Element) { e.FillBetweenX(-6.5, 2.3) }},
		{"set x", func(e *Element) { e.SetX(-6, geom.Left) }},
		{"set y", func(e *Element) { e.SetY(2, geom.Up) }},
		{"move to", func(e *Element) { e.MoveTo(geom.Point{X: -6, Y: 3}, geom.UL) }},
		{"to edge left", func(e *Element) { e.ToEdge(geom.Left, geom.DefaultEdgeBuff) }},
		{"full size", func(e *Element) { e.FullSize() }},
		{"fill again", func(e *Element) { e.FillBetweenX(-7, 0) }},
	}

	for name, shape := range shapes {
		t.Run(name, func(t *testing.T) {
			e := New(shape)
			checkFit(t, "new", e)
			for _, op := range ops {
				op.fn(e)
				checkFit(t, op.name, e)
			}
		})
	}
}

func TestFillBetweenX(t *testing.T) {
	e := New(scene.NewRectangle(10, 2))
	e.FillBetweenX(-6, 1)

	b := e.Box()
	if math.Abs(b.Left-(-6)) > eps {
		t.Errorf("left = %v, want -6", b.Left)
	}
	if b.Right > 1+eps {
		t.Errorf("right = %v, want <= 1", b.Right)
	}
	if math.Abs(e.Bounds().Width()-7) > eps {
		t.Errorf("bounds width = %v, want 7", e.Bounds().Width())
	}
}

func TestFullSizeRestores(t *testing.T) {
	e := New(scene.NewRectangle(10, 2))
	full := e.Box().Width()

	e.FillBetweenX(-6, 0)
	if e.Box().Width() >= full {
		t.Fatal("FillBetweenX should shrink a wide element")
	}

	e.FullSize()
	if math.Abs(e.Box().Width()-full) > eps {
		t.Errorf("width after FullSize = %v, want %v", e.Box().Width(), full)
	}
	if c := e.Box().Center(); !c.Eq(geom.Origin) {
		t.Errorf("center after FullSize = %+v", c)
	}
	if want := full / 10; math.Abs(e.ScaleFactor()-want) > eps {
		t.Errorf("ScaleFactor() after FullSize = %v, want %v", e.ScaleFactor(), want)
	}
}

func TestCopySharesBounds(t *testing.T) {
	e := New(scene.NewRectangle(4, 4))
	e.SetX(-5, geom.Left)

	c := e.Copy()
	if c.Bounds() != e.Bounds() {
		t.Error("Copy should share bounds")
	}
	if c.ScaleFactor() != e.ScaleFactor() {
		t.Errorf("Copy factor = %v, want %v", c.ScaleFactor(), e.ScaleFactor())
	}

	before := e.Box()
	c.Shift(geom.Vec{X: 1})
	if e.Box() != before {
		t.Error("Copy should wrap an independent delegate")
	}

	e.FillBetweenX(-5, -1)
	if c.Bounds().Width() != e.Bounds().Width() {
		t.Error("bounds change should be visible through the copy")
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	e := New(scene.NewRectangle(10, 2))
	before := *e.Bounds()
	box := e.Box()

	s := e.Snapshot()
	s.FillBetweenX(-6, 0)

	if *e.Bounds() != before || e.Box() != box {
		t.Error("Snapshot operations should not affect the original")
	}

	e.FillBetweenX(-6, 0)
	if e.Box() != s.Box() {
		t.Errorf("original %+v should match the predicted %+v", e.Box(), s.Box())
	}
}

func TestZeroSizeDelegate(t *testing.T) {
	e := New(scene.NewGroup())
	if e.ScaleFactor() != 1 {
		t.Errorf("ScaleFactor() = %v, want 1 for empty content", e.ScaleFactor())
	}
	e.ToEdge(geom.Left, geom.DefaultEdgeBuff)
	if e.ScaleFactor() != 1 {
		t.Errorf("ScaleFactor() = %v after move, want 1", e.ScaleFactor())
	}
}

func TestUnwrap(t *testing.T) {
	r := scene.NewRectangle(1, 1)
	e := New(r)
	if scene.Unwrap(e) != scene.Element(r) {
		t.Error("Unwrap should return the delegate")
	}
}
