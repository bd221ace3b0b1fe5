package scene

import "github.com/matzehuels/codevideo/pkg/geom"

// Element is a positionable visual node.
type Element interface {
	// Box returns the axis-aligned bounding box in scene units.
	Box() geom.Rect
	// Shift translates the element by v.
	Shift(v geom.Vec)
	// Scale scales the element uniformly by f, keeping about fixed.
	Scale(f float64, about geom.Point)
	// Clone returns an independent deep copy.
	Clone() Element
}

// Fader is implemented by elements whose opacity can be changed.
type Fader interface {
	SetOpacity(o float64)
}

// Wrapper is implemented by elements that decorate another element, such as
// the autoscale wrapper. Renderers unwrap to reach the drawable node.
type Wrapper interface {
	Unwrap() Element
}

// Unwrap strips every Wrapper layer from e.
func Unwrap(e Element) Element {
	for {
		w, ok := e.(Wrapper)
		if !ok {
			return e
		}
		e = w.Unwrap()
	}
}

// Group is an ordered collection of elements that move and scale together.
// Children are drawn in order, so earlier children appear behind later ones.
type Group struct {
	Name     string
	Children []Element

	// anchor is the group position while it has no children.
	anchor geom.Point
}

// NewGroup returns a group holding children in order.
func NewGroup(children ...Element) *Group {
	return &Group{Children: children}
}

// Add appends elements to the front of the drawing order.
func (g *Group) Add(e ...Element) *Group {
	g.Children = append(g.Children, e...)
	return g
}

// AddToBack inserts elements behind every existing child.
func (g *Group) AddToBack(e ...Element) *Group {
	g.Children = append(append([]Element{}, e...), g.Children...)
	return g
}

// Remove drops every child identical to one of e.
func (g *Group) Remove(e ...Element) *Group {
	kept := g.Children[:0]
	for _, c := range g.Children {
		if !contains(e, c) {
			kept = append(kept, c)
		}
	}
	g.Children = kept
	return g
}

func contains(list []Element, e Element) bool {
	for _, x := range list {
		if x == e {
			return true
		}
	}
	return false
}

// Len returns the number of direct children.
func (g *Group) Len() int { return len(g.Children) }

// Box returns the union of the children's boxes. An empty group is a
// zero-size box at its anchor.
func (g *Group) Box() geom.Rect {
	if len(g.Children) == 0 {
		return geom.RectAround(g.anchor, 0, 0)
	}
	r := g.Children[0].Box()
	for _, c := range g.Children[1:] {
		r = r.Union(c.Box())
	}
	return r
}

func (g *Group) Shift(v geom.Vec) {
	g.anchor = g.anchor.Add(v)
	for _, c := range g.Children {
		c.Shift(v)
	}
}

func (g *Group) Scale(f float64, about geom.Point) {
	g.anchor = g.anchor.ScaleAbout(f, about)
	for _, c := range g.Children {
		c.Scale(f, about)
	}
}

func (g *Group) Clone() Element {
	out := &Group{Name: g.Name, anchor: g.anchor, Children: make([]Element, len(g.Children))}
	for i, c := range g.Children {
		out.Children[i] = c.Clone()
	}
	return out
}

// SetOpacity sets the opacity of every child that supports it.
func (g *Group) SetOpacity(o float64) {
	for _, c := range g.Children {
		if f, ok := c.(Fader); ok {
			f.SetOpacity(o)
		}
	}
}

// Container is implemented by elements made of child elements. Types that
// embed *Group inherit it.
type Container interface {
	Members() []Element
}

// Members returns the children in drawing order.
func (g *Group) Members() []Element { return g.Children }

// Walk calls fn for e and, depth first, for every descendant of a Container
// or Wrapper. Walking stops early when fn returns false.
func Walk(e Element, fn func(Element) bool) bool {
	if !fn(e) {
		return false
	}
	switch v := e.(type) {
	case Container:
		for _, c := range v.Members() {
			if !Walk(c, fn) {
				return false
			}
		}
	case Wrapper:
		return Walk(v.Unwrap(), fn)
	}
	return true
}
