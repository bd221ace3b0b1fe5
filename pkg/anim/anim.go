// Package anim describes the animations a scene hands to its renderer.
//
// An [Animation] names what happens to which element. Animations that change
// the scene state (moves, rescales, opacity changes) carry a deferred
// mutation that the renderer applies when it plays the animation via
// [Animation.Run], so the state machines that build them stay pure.
//
// Animations passed to a single play call form a batch and run together.
package anim

import (
	"context"
	"fmt"

	"github.com/matzehuels/codevideo/pkg/scene"
)

// Kind identifies an animation type.
type Kind string

const (
	KindCreate    Kind = "create"
	KindFadeIn    Kind = "fade_in"
	KindFadeOut   Kind = "fade_out"
	KindApply     Kind = "apply"
	KindHighlight Kind = "highlight"
)

// Line opacities used by highlights.
const (
	FullOpacity = 1.0
	DimOpacity  = 0.3
)

// DefaultRunTime is the duration of an animation in seconds.
const DefaultRunTime = 1.0

// Player plays animation batches. Play returns once the batch has
// finished on the render clock.
type Player interface {
	Play(ctx context.Context, batch ...Animation) error
}

// Animation is one visual transition of a target element.
type Animation struct {
	Kind    Kind
	Target  scene.Element
	Label   string  // Method name for KindApply, e.g. "full_size"
	RunTime float64 // Seconds

	// Opacities holds the per-line target opacities of a KindHighlight.
	Opacities []float64

	apply func()
}

// Run applies the animation's end state to the scene.
func (a Animation) Run() {
	if a.apply != nil {
		a.apply()
	}
}

// String renders the animation as "kind(label)".
func (a Animation) String() string {
	if a.Label != "" {
		return fmt.Sprintf("%s(%s)", a.Kind, a.Label)
	}
	return string(a.Kind)
}

// WithRunTime returns a copy of a lasting d seconds.
func (a Animation) WithRunTime(d float64) Animation {
	a.RunTime = d
	return a
}

// Create draws e stroke by stroke.
func Create(e scene.Element) Animation {
	return Animation{Kind: KindCreate, Target: e, RunTime: DefaultRunTime}
}

// FadeIn fades e in.
func FadeIn(e scene.Element) Animation {
	return Animation{Kind: KindFadeIn, Target: e, RunTime: DefaultRunTime}
}

// FadeOut fades e out.
func FadeOut(e scene.Element) Animation {
	return Animation{Kind: KindFadeOut, Target: e, RunTime: DefaultRunTime}
}

// Apply animates e from its current state to the state left by fn.
func Apply(e scene.Element, label string, fn func()) Animation {
	return Animation{Kind: KindApply, Target: e, Label: label, RunTime: DefaultRunTime, apply: fn}
}

// HighlightLines dims every line of code outside the display line range
// [start, end] to DimOpacity and raises the range to FullOpacity. An end of
// -1 means the last line. target is the element the renderer animates,
// typically the autoscale wrapper around code.
func HighlightLines(target scene.Element, code *scene.Code, start, end int) Animation {
	if end == -1 {
		end = code.LastLine()
	}
	ops := LineOpacities(code.LineNoFrom, code.Len(), start, end)
	return Animation{
		Kind:      KindHighlight,
		Target:    target,
		Label:     fmt.Sprintf("%d-%d", start, end),
		RunTime:   DefaultRunTime,
		Opacities: ops,
		apply: func() {
			for i, o := range ops {
				code.SetLineOpacity(i, o)
			}
		},
	}
}

// HighlightNone returns every line of code to FullOpacity.
func HighlightNone(target scene.Element, code *scene.Code) Animation {
	return HighlightLines(target, code, code.LineNoFrom, -1)
}

// LineOpacities returns the opacity of each of n lines numbered from
// lineNoFrom when [start, end] is highlighted.
func LineOpacities(lineNoFrom, n, start, end int) []float64 {
	out := make([]float64, n)
	for i := range out {
		if no := lineNoFrom + i; start <= no && no <= end {
			out[i] = FullOpacity
		} else {
			out[i] = DimOpacity
		}
	}
	return out
}

// Duration returns the run time of the longest animation in batch.
func Duration(batch []Animation) float64 {
	var d float64
	for _, a := range batch {
		d = max(d, a.RunTime)
	}
	return d
}
