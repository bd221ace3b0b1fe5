package sequence

import (
	"github.com/matzehuels/codevideo/pkg/diagram"
	"github.com/matzehuels/codevideo/pkg/geom"
	"github.com/matzehuels/codevideo/pkg/scene"
)

// Actor is a participant column: a title block, a dashed lifeline below it
// and a copy of the block at the lifeline's end.
type Actor struct {
	*scene.Group
	Name   string
	Block  *diagram.Box
	Line   *scene.Shape
	Bottom *diagram.Box

	diagram *Diagram
}

func newActor(d *Diagram, name string) (*Actor, error) {
	block, err := d.lib.TextBox(name, diagram.WithRounded())
	if err != nil {
		return nil, err
	}
	a := &Actor{Name: name, Block: block, diagram: d, Group: scene.NewGroup()}
	a.Group.Name = "actor:" + name
	a.Stretch(0)
	return a, nil
}

// Stretch redraws the lifeline with length h and moves the bottom block to
// its end.
func (a *Actor) Stretch(h float64) {
	top := a.Block.Box().CriticalPoint(geom.Down)
	a.Line = scene.NewDashedLine(top, geom.Point{X: top.X, Y: top.Y - h})
	a.Bottom = a.Block.Clone().(*diagram.Box)
	scene.NextTo(a.Bottom, a.Line.Box(), geom.Down, 0)
	a.Children = []scene.Element{a.Block, a.Line, a.Bottom}
}

// Center returns the actor's center point. Its x is the lifeline.
func (a *Actor) Center() geom.Point { return a.Box().Center() }

// Clone returns an independent copy detached from the diagram.
func (a *Actor) Clone() scene.Element {
	out := &Actor{
		Name:   a.Name,
		Block:  a.Block.Clone().(*diagram.Box),
		Line:   a.Line.Clone().(*scene.Shape),
		Bottom: a.Bottom.Clone().(*diagram.Box),
		Group:  scene.NewGroup(),
	}
	out.Group.Name = a.Group.Name
	out.Children = []scene.Element{out.Block, out.Line, out.Bottom}
	return out
}

// Begin opens a scope in which this actor is the source of the next
// interaction. The caller must End the scope, typically with defer.
func (a *Actor) Begin() *Scope { return a.diagram.begin(a) }

// Within runs fn inside a scope for this actor and ends the scope however
// fn returns.
func (a *Actor) Within(fn func()) {
	s := a.Begin()
	defer s.End()
	fn()
}

// Text labels the open interaction, which the next scope entered by this
// actor will finish.
func (a *Actor) Text(label string) *Actor {
	a.diagram.label(label)
	return a
}

// Ret labels the reply this actor sends when its current scope ends.
func (a *Actor) Ret(label string) *Actor {
	a.diagram.label(label)
	return a
}

// To records a finished message from this actor to target. A message to
// the actor itself is a self call.
func (a *Actor) To(target *Actor, label string) *Actor {
	kind := KindMessage
	if target == a {
		kind = KindSelf
	}
	a.diagram.insert(&Interaction{Kind: kind, Source: a, Target: target, Label: label})
	return a
}

// ToSelf records a self call.
func (a *Actor) ToSelf(label string) *Actor { return a.To(a, label) }

// Note records a note to the right of the actor.
func (a *Actor) Note(text string) *Actor {
	a.diagram.insert(&Interaction{Kind: KindNote, Source: a, Target: a, Label: text, Direction: geom.Right})
	return a
}

func (a *Actor) String() string { return "Actor (" + a.Name + ")" }
