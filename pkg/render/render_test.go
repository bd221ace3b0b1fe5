package render

import (
	"bytes"
	"context"
	"encoding/json"
	"image/png"
	"math"
	"strings"
	"testing"

	"github.com/matzehuels/codevideo/pkg/anim"
	"github.com/matzehuels/codevideo/pkg/geom"
	"github.com/matzehuels/codevideo/pkg/scene"
)

func TestRecorderClock(t *testing.T) {
	ctx := context.Background()
	r := NewRecorder(WithSnapshots())
	box := scene.NewRectangle(1, 1)
	text := scene.NewText(scene.MonoMeasurer{}, "hi", scene.TextStyle{})

	if err := r.Play(ctx, anim.Create(box), anim.FadeIn(text).WithRunTime(2)); err != nil {
		t.Fatal(err)
	}
	if err := r.Wait(ctx, 1.5); err != nil {
		t.Fatal(err)
	}
	if err := r.Wait(ctx, -1); err != nil {
		t.Fatal(err)
	}
	if err := r.Play(ctx, anim.FadeOut(text)); err != nil {
		t.Fatal(err)
	}

	if r.Time() != 4.5 {
		t.Errorf("Time = %v, want 4.5", r.Time())
	}
	segs := r.Segments()
	if len(segs) != 3 {
		t.Fatalf("segments = %d, want 3 (non-positive waits are skipped)", len(segs))
	}
	if segs[0].Duration != 2 || segs[1].Kind != SegmentWait || segs[1].Start != 2 || segs[2].End() != 4.5 {
		t.Errorf("segments = %+v", segs)
	}
	if got := segs[0].Animations; len(got) != 2 || got[0] != "create" {
		t.Errorf("animations = %v", got)
	}

	if r.Scene().Len() != 1 || r.Scene().Children[0] != box {
		t.Errorf("scene should hold only the rectangle, has %d children", r.Scene().Len())
	}
	if f := segs[1].Frame().(*scene.Group); f.Len() != 2 {
		t.Errorf("snapshot during the wait has %d children, want 2", f.Len())
	}
}

func TestRecorderRunsMutations(t *testing.T) {
	r := NewRecorder()
	box := scene.NewRectangle(1, 1)
	r.Add(box)
	r.Add(box)
	moved := anim.Apply(box, "shift", func() { box.Shift(geom.Right) })
	if err := r.Play(context.Background(), moved); err != nil {
		t.Fatal(err)
	}
	if c := box.Box().Center(); c.X != 1 {
		t.Errorf("center = %v, the batch should run its mutation", c)
	}
	if r.Scene().Len() != 1 {
		t.Error("adding twice should keep one copy")
	}
}

func TestRecorderCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := NewRecorder()
	if err := r.Play(ctx, anim.Create(scene.NewRectangle(1, 1))); err == nil {
		t.Error("Play should fail on a cancelled context")
	}
	if r.Len() != 0 {
		t.Error("nothing should be recorded")
	}
}

func TestTimeline(t *testing.T) {
	r := NewRecorder()
	_ = r.Wait(context.Background(), 2)
	data, err := r.Timeline()
	if err != nil {
		t.Fatal(err)
	}
	var got struct {
		Duration float64   `json:"duration"`
		Segments []Segment `json:"segments"`
	}
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if got.Duration != 2 || len(got.Segments) != 1 || got.Segments[0].Kind != SegmentWait {
		t.Errorf("timeline = %s", data)
	}
}

func TestViewport(t *testing.T) {
	vp := DefaultViewport()
	if p := vp.point(geom.Origin); math.Abs(p.X-960) > 1e-9 || math.Abs(p.Y-540) > 1e-9 {
		t.Errorf("origin = %+v", p)
	}
	corner := vp.point(geom.Point{X: -vp.Frame.XRadius(), Y: vp.Frame.YRadius()})
	if math.Abs(corner.X) > 1e-9 || math.Abs(corner.Y) > 1e-9 {
		t.Errorf("upper left = %+v", corner)
	}
	if vp.stroke(4) != 4 {
		t.Errorf("stroke at 1080p = %v", vp.stroke(4))
	}
}

func TestRGB(t *testing.T) {
	tests := []struct {
		in         string
		r, g, b, a float64
		ok         bool
	}{
		{"#FF0000", 1, 0, 0, 1, true},
		{"#00FF0080", 0, 1, 0, 128.0 / 255, true},
		{"red", 0, 0, 0, 0, false},
		{"#GGGGGG", 0, 0, 0, 0, false},
		{"", 0, 0, 0, 0, false},
	}
	for _, tt := range tests {
		r, g, b, a, ok := rgb(tt.in)
		if ok != tt.ok || r != tt.r || g != tt.g || b != tt.b || math.Abs(a-tt.a) > 1e-9 {
			t.Errorf("rgb(%q) = %v %v %v %v %v", tt.in, r, g, b, a, ok)
		}
	}
}

func TestArrowHead(t *testing.T) {
	head := arrowHead(pt{0, 0}, pt{10, 0}, 2)
	if len(head) != 3 || head[0] != (pt{10, 0}) {
		t.Fatalf("head = %v", head)
	}
	if head[1].X != 8 || head[2].X != 8 || math.Abs(head[1].Y+head[2].Y) > 1e-9 {
		t.Errorf("head base = %v %v", head[1], head[2])
	}
	if short := arrowHead(pt{0, 0}, pt{1, 0}, 2); short[1].X != 0.5 {
		t.Errorf("head of a short arrow should be clamped: %v", short)
	}
	if arrowHead(pt{1, 1}, pt{1, 1}, 2) != nil {
		t.Error("zero-length arrow has no head")
	}
}

func testScene() *scene.Group {
	m := scene.MonoMeasurer{}
	code := scene.NewCode(m, []string{"x := 1", "y := x & 2"}, scene.CodeOptions{Language: "go"})
	code.SetLineOpacity(1, anim.DimOpacity)
	arrow := scene.NewArrow(geom.Point{X: -2}, geom.Point{X: 2})
	rounded := scene.NewRectangle(2, 1)
	rounded.Radius = 0.1
	line := scene.NewDashedLine(geom.Point{Y: -1}, geom.Point{Y: -3})
	label := scene.NewText(m, "a <b>", scene.TextStyle{Italic: true})
	return scene.NewGroup(code, arrow, rounded, line, label)
}

func TestRenderSVG(t *testing.T) {
	svg := string(RenderSVG(testScene(), WithBackground("#1E1E1E")))

	for _, want := range []string{
		`viewBox="0 0 1920 1080"`,
		`fill="#1E1E1E"`,
		`<polygon`,
		`<polyline`,
		`rx="`,
		`stroke-dasharray`,
		`text-anchor="end"`,
		`fill-opacity="0.3"`,
		`a &lt;b&gt;`,
		`font-style="italic"`,
		`&amp;`,
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("svg missing %q", want)
		}
	}
	if !strings.HasSuffix(svg, "</svg>\n") {
		t.Error("svg should be closed")
	}
}

func TestRenderSVGSkipsHidden(t *testing.T) {
	box := scene.NewRectangle(1, 1)
	box.SetOpacity(0)
	svg := string(RenderSVG(box, WithBackground("")))
	if strings.Contains(svg, "<polygon") || strings.Contains(svg, "<rect") {
		t.Errorf("invisible shapes should not be drawn:\n%s", svg)
	}
}

func TestRenderPNG(t *testing.T) {
	vp := Viewport{Frame: geom.DefaultFrame(), Width: 320, Height: 180}
	data, err := RenderPNG(testScene(), WithPNGViewport(vp))
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 320 || b.Dy() != 180 {
		t.Errorf("size = %v", b)
	}
	if _, _, _, a := img.At(0, 0).RGBA(); a == 0 {
		t.Error("background should be painted")
	}
}

func TestRenderPNGMissingImage(t *testing.T) {
	img := scene.NewImage("/no/such/background.png", 2, 2)
	if _, err := RenderPNG(img); err == nil {
		t.Error("a missing image file should fail")
	}
}
