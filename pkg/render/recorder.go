package render

import (
	"context"
	"encoding/json"
	"io"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/codevideo/pkg/anim"
	"github.com/matzehuels/codevideo/pkg/observability"
	"github.com/matzehuels/codevideo/pkg/scene"
)

// Segment kinds.
const (
	SegmentPlay = "play"
	SegmentWait = "wait"
)

// Segment is one recorded batch or wait.
type Segment struct {
	Index      int      `json:"index"`
	Kind       string   `json:"kind"`
	Start      float64  `json:"start"`
	Duration   float64  `json:"duration"`
	Animations []string `json:"animations,omitempty"`

	frame scene.Element
}

// Frame returns the scene as it was at the end of the segment, or nil
// when the recorder keeps no snapshots.
func (s Segment) Frame() scene.Element { return s.frame }

// End returns the clock time at which the segment finished.
func (s Segment) End() float64 { return s.Start + s.Duration }

// Recorder is an anim.Player on a logical clock.
type Recorder struct {
	root      *scene.Group
	clock     float64
	segments  []Segment
	snapshots bool
	logger    *log.Logger
}

// RecorderOption configures a Recorder.
type RecorderOption func(*Recorder)

// WithSnapshots keeps a copy of the scene after every segment.
func WithSnapshots() RecorderOption { return func(r *Recorder) { r.snapshots = true } }

// WithLogger logs every segment at debug level.
func WithLogger(l *log.Logger) RecorderOption { return func(r *Recorder) { r.logger = l } }

// NewRecorder returns a recorder with an empty scene at time zero.
func NewRecorder(opts ...RecorderOption) *Recorder {
	r := &Recorder{root: scene.NewGroup(), logger: log.New(io.Discard)}
	r.root.Name = "scene"
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Scene returns the root group of everything on screen.
func (r *Recorder) Scene() *scene.Group { return r.root }

// Time returns the logical clock in seconds.
func (r *Recorder) Time() float64 { return r.clock }

// Segments returns the recorded segments in order.
func (r *Recorder) Segments() []Segment { return slices.Clone(r.segments) }

// Len returns the number of recorded segments.
func (r *Recorder) Len() int { return len(r.segments) }

// Add puts elements on screen without animating them.
func (r *Recorder) Add(e ...scene.Element) {
	for _, x := range e {
		if !slices.Contains(r.root.Children, x) {
			r.root.Add(x)
		}
	}
}

// AddToBack puts elements on screen behind everything else.
func (r *Recorder) AddToBack(e ...scene.Element) {
	for _, x := range e {
		if !slices.Contains(r.root.Children, x) {
			r.root.AddToBack(x)
		}
	}
}

// Remove takes elements off screen without animating them.
func (r *Recorder) Remove(e ...scene.Element) { r.root.Remove(e...) }

// Play runs batch as one segment lasting as long as its longest animation.
// Created and faded in targets are added to the scene, faded out targets
// are removed once the batch ends.
func (r *Recorder) Play(ctx context.Context, batch ...anim.Animation) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(batch) == 0 {
		return nil
	}
	labels := make([]string, len(batch))
	var gone []scene.Element
	for i, a := range batch {
		labels[i] = a.String()
		switch a.Kind {
		case anim.KindCreate, anim.KindFadeIn:
			r.Add(a.Target)
		case anim.KindFadeOut:
			gone = append(gone, a.Target)
		}
		a.Run()
	}
	r.Remove(gone...)

	d := anim.Duration(batch)
	observability.Scene().OnPlay(ctx, labels, r.clock, d)
	r.logger.Debug("play", "at", r.clock, "duration", d, "animations", labels)
	r.record(Segment{Kind: SegmentPlay, Duration: d, Animations: labels})
	return nil
}

// Wait holds the current frame for d seconds. Waits of zero or less
// record nothing.
func (r *Recorder) Wait(ctx context.Context, d float64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}
	observability.Scene().OnWait(ctx, r.clock, d)
	r.logger.Debug("wait", "at", r.clock, "duration", d)
	r.record(Segment{Kind: SegmentWait, Duration: d})
	return nil
}

func (r *Recorder) record(s Segment) {
	s.Index = len(r.segments)
	s.Start = r.clock
	if r.snapshots {
		s.frame = r.root.Clone()
	}
	r.segments = append(r.segments, s)
	r.clock += s.Duration
}

// Timeline returns the segments as indented JSON.
func (r *Recorder) Timeline() ([]byte, error) {
	return json.MarshalIndent(struct {
		Duration float64   `json:"duration"`
		Segments []Segment `json:"segments"`
	}{r.clock, r.segments}, "", "  ")
}

var _ anim.Player = (*Recorder)(nil)
