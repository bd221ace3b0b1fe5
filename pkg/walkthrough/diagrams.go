package walkthrough

import (
	"context"

	"github.com/matzehuels/codevideo/pkg/anim"
	"github.com/matzehuels/codevideo/pkg/diagram"
	"github.com/matzehuels/codevideo/pkg/errors"
	"github.com/matzehuels/codevideo/pkg/geom"
	"github.com/matzehuels/codevideo/pkg/scene"
	"github.com/matzehuels/codevideo/pkg/sequence"
)

// Title shows text at the top edge of the frame without animating it.
func (s *Scene) Title(text string) *scene.Text {
	t := scene.NewText(s.measurer, text, scene.TextStyle{Font: s.lib.TextFont})
	scene.ToEdge(t, s.frame, geom.Up, geom.DefaultEdgeBuff)
	s.r.Add(t)
	return t
}

// AnimateSequence fades in the actors of d and draws its interactions one
// after another, then waits.
func (s *Scene) AnimateSequence(ctx context.Context, d *sequence.Diagram) error {
	s.logger.Info("animating sequence diagram", "actors", len(d.Actors()), "interactions", len(d.Interactions()))
	if err := d.Animate(ctx, s); err != nil {
		return err
	}
	return s.Wait(ctx, DefaultWait)
}

// AnimateSheet fades in the boxes and groups of sheet, then draws the
// connections, then waits.
func (s *Scene) AnimateSheet(ctx context.Context, sheet *diagram.Sheet) error {
	if sheet == nil || sheet.Root == nil || sheet.Root.Len() == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "diagram has nothing to draw")
	}
	var boxes, rest []anim.Animation
	for _, e := range sheet.Root.Children {
		if _, ok := e.(*diagram.Connection); ok {
			rest = append(rest, anim.Create(e))
		} else {
			boxes = append(boxes, anim.FadeIn(e))
		}
	}
	s.logger.Info("animating diagram", "boxes", len(boxes), "connections", len(sheet.Connections))
	for _, batch := range [][]anim.Animation{boxes, rest} {
		if len(batch) == 0 {
			continue
		}
		if err := s.Play(ctx, batch...); err != nil {
			return err
		}
	}
	return s.Wait(ctx, DefaultWait)
}
