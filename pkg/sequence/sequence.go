package sequence

import (
	"context"
	"iter"
	"slices"

	"github.com/matzehuels/codevideo/pkg/anim"
	"github.com/matzehuels/codevideo/pkg/autoscale"
	"github.com/matzehuels/codevideo/pkg/diagram"
	"github.com/matzehuels/codevideo/pkg/errors"
	"github.com/matzehuels/codevideo/pkg/geom"
	"github.com/matzehuels/codevideo/pkg/scene"
)

// Layout constants in unscaled scene units.
const (
	MinActorWidth      = 5.0
	ActorPadding       = 0.5
	InteractionSpacing = 0.5
)

// Diagram records actors and their interactions and lays them out as a
// sequence diagram. The embedded group holds the actors, plus the
// interactions once they have been animated.
type Diagram struct {
	*scene.Group

	lib    *diagram.Library
	frame  geom.Frame
	maxY   float64
	hasMax bool

	actors       []*Actor
	byName       map[string]*Actor
	interactions []*Interaction
	scopes       []*Scope
	factor       float64
	err          error
}

// Option configures a Diagram.
type Option func(*Diagram)

// WithFrame lays the diagram out in f instead of the default frame.
func WithFrame(f geom.Frame) Option { return func(d *Diagram) { d.frame = f } }

// WithMaxY keeps the top of the fitted diagram at or below y, leaving room
// for a title.
func WithMaxY(y float64) Option {
	return func(d *Diagram) { d.maxY, d.hasMax = y, true }
}

// New returns an empty diagram drawing its boxes with lib.
func New(lib *diagram.Library, opts ...Option) *Diagram {
	d := &Diagram{
		Group:  scene.NewGroup(),
		lib:    lib,
		frame:  geom.DefaultFrame(),
		byName: make(map[string]*Actor),
		factor: 1,
	}
	d.Group.Name = "sequence"
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Err returns the first error met while recording interactions.
func (d *Diagram) Err() error { return d.err }

func (d *Diagram) fail(err error) {
	if d.err == nil {
		d.err = err
	}
}

// ScaleFactor returns the product of every fit applied to the actors.
func (d *Diagram) ScaleFactor() float64 { return d.factor }

// Actors returns the actors in registration order.
func (d *Diagram) Actors() []*Actor { return slices.Clone(d.actors) }

// Actor returns the actor registered under name.
func (d *Diagram) Actor(name string) (*Actor, bool) {
	a, ok := d.byName[name]
	return a, ok
}

// Interactions returns every recorded interaction, open ones included, in
// order.
func (d *Diagram) Interactions() []*Interaction { return slices.Clone(d.interactions) }

// AddObjects registers actors left to right and returns them in the order
// of names. Names already registered return the existing actor. Every
// actor column is as wide as the widest title plus padding, and at least
// MinActorWidth.
func (d *Diagram) AddObjects(names ...string) ([]*Actor, error) {
	out := make([]*Actor, 0, len(names))
	for _, name := range names {
		if a, ok := d.byName[name]; ok {
			out = append(out, a)
			continue
		}
		a, err := newActor(d, name)
		if err != nil {
			return nil, err
		}
		if len(d.actors) == 0 {
			scene.ToEdge(a, d.frame, geom.Left, geom.DefaultEdgeBuff)
		} else {
			scene.NextTo(a, d.actors[len(d.actors)-1].Box(), geom.Right, geom.DefaultObjectBuff)
		}
		scene.ToEdge(a, d.frame, geom.Up, geom.DefaultEdgeBuff)
		d.actors = append(d.actors, a)
		d.byName[name] = a
		d.Add(a)
		out = append(out, a)
	}
	if len(d.actors) == 0 {
		return out, nil
	}

	startX := d.actors[0].Box().Left
	width := MinActorWidth
	for _, a := range d.actors {
		width = max(width, a.Box().Width()+ActorPadding)
	}
	for idx, a := range d.actors {
		left := startX + width*float64(idx)
		scene.SetX(a, left+(width-a.Box().Width())/2, geom.Left)
	}
	return out, nil
}

// Scope is an open actor context returned by Actor.Begin.
type Scope struct {
	d      *Diagram
	actor  *Actor
	parent *Actor
	ended  bool
}

// Actor returns the scope's actor.
func (s *Scope) Actor() *Actor { return s.actor }

// End closes the scope. The enclosing scope's actor, if any, becomes the
// source again, which finishes an open reply from this actor. Calling End
// more than once has no further effect.
func (s *Scope) End() {
	if s.ended {
		return
	}
	s.ended = true
	if i := slices.Index(s.d.scopes, s); i >= 0 {
		s.d.scopes = slices.Delete(s.d.scopes, i, i+1)
	}
	if s.parent != nil {
		s.d.startInteraction(s.parent)
	}
}

func (d *Diagram) begin(a *Actor) *Scope {
	s := &Scope{d: d, actor: a}
	if n := len(d.scopes); n > 0 {
		s.parent = d.scopes[n-1].actor
	}
	d.scopes = append(d.scopes, s)
	d.startInteraction(a)
	return s
}

func (d *Diagram) last() *Interaction {
	if len(d.interactions) == 0 {
		return nil
	}
	return d.interactions[len(d.interactions)-1]
}

// startInteraction makes a the source of the next interaction. An open
// interaction from a is continued; one from another actor is finished with
// a as its target.
func (d *Diagram) startInteraction(a *Actor) *Interaction {
	if last := d.last(); last != nil && last.Open() {
		if last.Source == a {
			return last
		}
		d.finish(last, a)
	}
	i := &Interaction{Kind: KindMessage, Source: a}
	d.interactions = append(d.interactions, i)
	return i
}

func (d *Diagram) finish(i *Interaction, target *Actor) {
	i.Target = target
	if target == i.Source {
		i.Kind = KindSelf
	}
	if err := i.build(d.lib); err != nil {
		d.fail(err)
	}
	d.stretch()
}

// insert records a finished interaction just before the open one, so it
// appears next to the message that activated its actor, or at the end when
// nothing is open.
func (d *Diagram) insert(i *Interaction) {
	if err := i.build(d.lib); err != nil {
		d.fail(err)
		return
	}
	if last := d.last(); last != nil && last.Open() {
		d.interactions = slices.Insert(d.interactions, len(d.interactions)-1, i)
	} else {
		d.interactions = append(d.interactions, i)
	}
	d.stretch()
}

// label sets the label of the open interaction. Without one it does
// nothing.
func (d *Diagram) label(text string) {
	if last := d.last(); last != nil && last.Open() {
		last.Label = text
	}
}

// stretch extends every lifeline to the total height of the laid out
// interactions plus spacing.
func (d *Diagram) stretch() {
	var h float64
	for _, i := range d.interactions {
		if i.proto != nil {
			h += i.proto.Box().Height() + InteractionSpacing
		}
	}
	for _, a := range d.actors {
		a.Stretch(h * d.factor)
	}
}

// Fit scales the actors to fit the frame, top aligned below the max y
// when set, and returns the cumulative scale factor. Interactions should
// be recorded before fitting.
func (d *Diagram) Fit() float64 {
	actors := scene.NewGroup()
	for _, a := range d.actors {
		actors.Add(a)
	}
	if actors.Len() == 0 {
		return d.factor
	}
	scene.Center(actors)
	a := autoscale.NewInFrame(actors, d.frame)
	if d.hasMax {
		b := a.Bounds()
		b.UL.Y, b.UR.Y = d.maxY, d.maxY
		a.SetY(d.maxY, geom.Up)
	} else {
		a.ToEdge(geom.Up, geom.DefaultEdgeBuff)
	}
	d.factor *= a.ScaleFactor()
	return d.factor
}

// Placed is an interaction positioned for display.
type Placed struct {
	*Interaction
	Element *scene.Group
}

// Layout yields the finished interactions and notes in recorded order,
// each scaled by the diagram's scale factor and stacked below the previous
// one. Open interactions are skipped. Every call lays out fresh copies.
func (d *Diagram) Layout() iter.Seq[Placed] {
	return func(yield func(Placed) bool) {
		if len(d.actors) == 0 {
			return
		}
		f := d.factor
		first := true
		var bottom float64
		for _, i := range d.interactions {
			if i.proto == nil {
				continue
			}
			g := i.place(f)
			if first {
				scene.SetY(g, d.labelBottom()-geom.MedSmallBuff, geom.Up)
				first = false
			} else {
				scene.SetY(g, bottom-geom.MedLargeBuff*f, geom.Up)
			}
			bottom = g.Box().Bottom
			if !yield(Placed{Interaction: i, Element: g}) {
				return
			}
		}
	}
}

// labelBottom is the lowest edge of any actor's title block.
func (d *Diagram) labelBottom() float64 {
	y := d.actors[0].Block.Box().Bottom
	for _, a := range d.actors[1:] {
		y = min(y, a.Block.Box().Bottom)
	}
	return y
}

// Animate fits the diagram, fades the actors in and then draws each laid
// out interaction in turn, adding it to the diagram group.
func (d *Diagram) Animate(ctx context.Context, p anim.Player) error {
	if d.err != nil {
		return d.err
	}
	if len(d.actors) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "sequence diagram has no actors")
	}
	d.Fit()

	intro := make([]anim.Animation, 0, len(d.actors))
	for _, a := range d.actors {
		intro = append(intro, anim.FadeIn(a))
	}
	if err := p.Play(ctx, intro...); err != nil {
		return err
	}
	for pl := range d.Layout() {
		d.Add(pl.Element)
		if err := p.Play(ctx, anim.Create(pl.Element)); err != nil {
			return err
		}
	}
	return nil
}
