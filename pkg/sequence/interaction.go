package sequence

import (
	"fmt"

	"github.com/matzehuels/codevideo/pkg/diagram"
	"github.com/matzehuels/codevideo/pkg/geom"
	"github.com/matzehuels/codevideo/pkg/scene"
)

// Kind is the shape of an interaction.
type Kind int

const (
	// KindMessage is an arrow from Source to a different Target.
	KindMessage Kind = iota
	// KindSelf is a looping arrow from Source back to itself.
	KindSelf
	// KindNote is a note box beside Source.
	KindNote
)

func (k Kind) String() string {
	switch k {
	case KindSelf:
		return "self"
	case KindNote:
		return "note"
	}
	return "message"
}

// Interaction layout constants in unscaled scene units.
const (
	LabelSize    = 0.5 * scene.DefaultTextSize
	SelfWrapAt   = 30
	selfDistance = 0.8
	selfSpacing  = 0.4
)

// Interaction is one recorded event. A message without a Target is open:
// it is finished when the next actor scope starts.
type Interaction struct {
	Kind      Kind
	Source    *Actor
	Target    *Actor // nil while open
	Label     string
	Direction geom.Vec // side of Source a note is placed on

	// proto is the element built from the unscaled actor positions when the
	// interaction is finished.
	proto *scene.Group
}

// Open reports whether the interaction is a message still waiting for its
// target.
func (i *Interaction) Open() bool { return i.Target == nil }

func (i *Interaction) String() string {
	target := "?"
	if i.Target != nil {
		target = i.Target.Name
	}
	s := fmt.Sprintf("%s (%s->%s)", i.Kind, i.Source.Name, target)
	if i.Label != "" {
		s += " - " + i.Label
	}
	return s
}

// build creates the prototype element for a finished interaction.
func (i *Interaction) build(lib *diagram.Library) error {
	switch i.Kind {
	case KindMessage:
		i.proto = i.buildMessage(lib)
	case KindSelf:
		i.proto = i.buildSelf(lib)
	case KindNote:
		g, err := i.buildNote(lib)
		if err != nil {
			return err
		}
		i.proto = g
	}
	return nil
}

func labelStyle(lib *diagram.Library) scene.TextStyle {
	return scene.TextStyle{Font: lib.TextFont, Size: LabelSize, Italic: true}
}

func (i *Interaction) buildMessage(lib *diagram.Library) *scene.Group {
	arrow := scene.NewArrow(
		geom.Point{X: i.Source.Center().X},
		geom.Point{X: i.Target.Center().X},
	)
	g := scene.NewGroup(arrow)
	g.Name = "message"
	if i.Label != "" {
		text := scene.NewText(lib.Measurer, i.Label, labelStyle(lib))
		scene.NextTo(text, arrow.Box(), geom.Up, 0)
		g.Add(text)
	}
	return g
}

func (i *Interaction) buildSelf(lib *diagram.Library) *scene.Group {
	cx := i.Source.Center().X
	loop := scene.NewPolygon(
		geom.Point{X: cx, Y: selfSpacing},
		geom.Point{X: cx + selfDistance, Y: selfSpacing},
		geom.Point{X: cx + selfDistance, Y: -selfSpacing},
		geom.Point{X: cx + selfDistance/2, Y: -selfSpacing},
		geom.Point{X: cx + selfDistance, Y: -selfSpacing},
		geom.Point{X: cx + selfDistance, Y: selfSpacing},
		geom.Point{X: cx, Y: selfSpacing},
	)
	loop.Style.StrokeWidth = scene.ArrowStrokeWidth
	back := scene.NewArrow(
		geom.Point{X: cx + selfDistance, Y: -selfSpacing},
		geom.Point{X: cx, Y: -selfSpacing},
	)
	lines := scene.NewGroup(loop, back)

	g := scene.NewGroup(lines)
	g.Name = "self"
	if i.Label != "" {
		title := scene.NewText(lib.Measurer, scene.Wrap(i.Label, SelfWrapAt), labelStyle(lib))
		scene.NextTo(title, lines.Box(), geom.Right, geom.DefaultObjectBuff)
		g.Add(title)
	}
	scene.NextToPoint(g, i.Source.Center(), geom.Right, geom.DefaultObjectBuff)
	return g
}

func (i *Interaction) buildNote(lib *diagram.Library) (*scene.Group, error) {
	box, err := lib.NoteBox(i.Label,
		diagram.WithTextStyle(scene.TextStyle{Font: lib.TextFont, Size: LabelSize}),
		diagram.WithBackground("#FFFFFF00"),
		diagram.WithoutShadow(),
	)
	if err != nil {
		return nil, err
	}
	g := scene.NewGroup(box)
	g.Name = "note"
	scene.NextToPoint(g, i.Source.Center(), i.Direction, geom.DefaultObjectBuff)
	return g, nil
}

// place returns a copy of the prototype scaled by f and realigned to the
// current actor positions. The vertical position is left to the caller.
func (i *Interaction) place(f float64) *scene.Group {
	g := i.proto.Clone().(*scene.Group)
	scene.ScaleInPlace(g, f)
	src := i.Source.Center()

	switch i.Kind {
	case KindMessage:
		arrow := g.Children[0]
		side := geom.Right
		if src.X < i.Target.Center().X {
			side = geom.Left
		}
		scene.AlignTo(arrow, geom.RectAround(src, 0, 0), side)
		if len(g.Children) > 1 {
			scene.NextTo(g.Children[1], arrow.Box(), geom.Up, 0)
		}
	case KindSelf:
		scene.NextToPoint(g, src, geom.Right, 0)
	case KindNote:
		scene.NextToPoint(g, src, i.Direction, geom.DefaultObjectBuff)
	}
	return g
}
