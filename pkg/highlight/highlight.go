// Package highlight turns line-range highlight requests into the animations
// that move a code block between highlighted states.
//
// The engine is a pure state machine. The caption currently on screen is an
// explicit [State] value: each call to [Engine.Lines] or [Engine.None] takes
// the previous state and returns a [Transition] holding the ordered play
// steps, the reading time to hold afterwards and the next state.
//
//	eng := highlight.New(captionBox)
//	tr, err := eng.Lines(state, code, highlight.Request{Start: 3, End: 5, Caption: "Load config"})
//	for _, step := range tr.Steps {
//	    renderer.Play(ctx, step...)
//	}
//	state = tr.State
//
// A request with a caption narrows the code to the left two of three columns
// and shows the caption in the third, aligned with the first highlighted
// line. A request without a caption restores the code to the full frame and
// still dims every line outside the range, so a plain range reads the same
// with or without a caption.
// Captions are never cross-faded: the old one fades out in its own step
// before the new one fades in.
package highlight

import (
	"unicode/utf8"

	"github.com/matzehuels/codevideo/pkg/anim"
	"github.com/matzehuels/codevideo/pkg/autoscale"
	"github.com/matzehuels/codevideo/pkg/errors"
	"github.com/matzehuels/codevideo/pkg/geom"
	"github.com/matzehuels/codevideo/pkg/layout"
	"github.com/matzehuels/codevideo/pkg/scene"
)

// Reading rate used to size caption hold times.
const (
	WordsPerMinute = 200
	CharsPerWord   = 5
)

// ToEnd is the End value meaning the last line of the code.
const ToEnd = -1

// Caption column layout: code spans columns 1-2 of 3, captions column 3.
const (
	columns       = 3
	codeColumn    = 1
	codeSpan      = 2
	captionColumn = 3
)

// Request asks for display lines [Start, End] to be highlighted.
type Request struct {
	Start   int    // First display line, inclusive
	End     int    // Last display line, inclusive; ToEnd for the last line
	Caption string // Optional caption text
}

// State is the caption currently shown next to the code.
type State struct {
	Caption scene.Element // nil when no caption is shown
	Text    string
}

// Showing reports whether a caption is on screen.
func (s State) Showing() bool { return s.Caption != nil }

// Transition is the result of one highlight request.
type Transition struct {
	// Steps are played in order; the animations within a step run together.
	Steps [][]anim.Animation
	// Hold is the reading time in seconds for the new caption, or zero.
	Hold float64
	// State is the state after all steps have played.
	State State
}

// CaptionFunc builds the visual box for a caption.
type CaptionFunc func(text string) scene.Element

// Engine computes highlight transitions.
type Engine struct {
	caption CaptionFunc
	cols    layout.Columns
}

// New returns an engine for the default frame that builds caption boxes
// with caption.
func New(caption CaptionFunc) *Engine {
	return NewInFrame(geom.DefaultFrame(), caption)
}

// NewInFrame is New for a custom frame.
func NewInFrame(f geom.Frame, caption CaptionFunc) *Engine {
	return &Engine{caption: caption, cols: layout.NewColumnsInFrame(f, columns, geom.SmallBuff)}
}

// HoldTime returns the reading time for text in seconds.
func HoldTime(text string) float64 {
	return float64(utf8.RuneCountInString(text)) / (WordsPerMinute * CharsPerWord / 60.0)
}

// codeOf returns the code block wrapped by a.
func codeOf(a *autoscale.Element) (*scene.Code, error) {
	code, ok := scene.Unwrap(a).(*scene.Code)
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidInput, "highlight target must wrap a code block, got %T", scene.Unwrap(a))
	}
	return code, nil
}

// Lines computes the transition from state to a highlight of req on code.
func (e *Engine) Lines(state State, code *autoscale.Element, req Request) (Transition, error) {
	c, err := codeOf(code)
	if err != nil {
		return Transition{}, err
	}
	if req.End == ToEnd {
		req.End = c.LastLine()
	}
	if req.Start < c.LineNoFrom || req.End > c.LastLine() || req.Start > req.End {
		return Transition{}, errors.New(errors.ErrCodeInvalidInput,
			"line range %d-%d outside %d-%d", req.Start, req.End, c.LineNoFrom, c.LastLine())
	}

	var tr Transition
	left, right := e.cols.Left(codeColumn, codeSpan), e.cols.Right(codeColumn, codeSpan)
	narrow := req.Caption != "" && !state.Showing()
	if narrow {
		tr.Steps = append(tr.Steps, []anim.Animation{
			anim.Apply(code, "fill_between_x", func() { code.FillBetweenX(left, right) }),
		})
	}

	if state.Showing() {
		tr.Steps = append(tr.Steps, []anim.Animation{anim.FadeOut(state.Caption)})
		state = State{}
	}

	if req.Caption == "" {
		tr.Steps = append(tr.Steps, []anim.Animation{
			anim.Apply(code, "full_size", func() { code.FullSize() }),
			anim.HighlightLines(code, c, req.Start, req.End),
		})
		tr.State = state
		return tr, nil
	}

	// Place the caption against where the start line will be once the
	// preceding steps have run.
	probe := code.Snapshot()
	if narrow {
		probe.FillBetweenX(left, right)
	}
	pc, _ := codeOf(probe)
	top := pc.LineNumber(req.Start).Box().Top

	box := e.caption(req.Caption)
	scene.AlignTo(box, geom.RectAround(geom.Point{Y: top}, 0, 0), geom.Up)
	scene.SetX(box, e.cols.Left(captionColumn, 1), geom.Left)

	tr.Steps = append(tr.Steps, []anim.Animation{
		anim.HighlightLines(code, c, req.Start, req.End),
		anim.FadeIn(box),
	})
	tr.Hold = HoldTime(req.Caption)
	tr.State = State{Caption: box, Text: req.Caption}
	return tr, nil
}

// Line highlights a single display line.
func (e *Engine) Line(state State, code *autoscale.Element, number int, caption string) (Transition, error) {
	return e.Lines(state, code, Request{Start: number, End: number, Caption: caption})
}

// None clears any caption, returns every line to full opacity and restores
// the code to the full frame.
func (e *Engine) None(state State, code *autoscale.Element) (Transition, error) {
	c, err := codeOf(code)
	if err != nil {
		return Transition{}, err
	}
	var tr Transition
	first := []anim.Animation{anim.HighlightNone(code, c)}
	if state.Showing() {
		first = append([]anim.Animation{anim.FadeOut(state.Caption)}, first...)
	}
	tr.Steps = [][]anim.Animation{
		first,
		{anim.Apply(code, "full_size", func() { code.FullSize() })},
	}
	return tr, nil
}

// Clear fades out the current caption, if any, leaving the code untouched.
func (e *Engine) Clear(state State) Transition {
	if !state.Showing() {
		return Transition{}
	}
	return Transition{Steps: [][]anim.Animation{{anim.FadeOut(state.Caption)}}}
}
