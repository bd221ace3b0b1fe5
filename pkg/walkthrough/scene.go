package walkthrough

import (
	"context"
	"io"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/codevideo/pkg/anim"
	"github.com/matzehuels/codevideo/pkg/diagram"
	"github.com/matzehuels/codevideo/pkg/fonts"
	"github.com/matzehuels/codevideo/pkg/geom"
	"github.com/matzehuels/codevideo/pkg/highlight"
	"github.com/matzehuels/codevideo/pkg/music"
	"github.com/matzehuels/codevideo/pkg/observability"
	"github.com/matzehuels/codevideo/pkg/scene"
)

// DefaultWait is the pause in seconds used when none is given.
const DefaultWait = 1.0

// MusicTail is how long the background track keeps playing after the
// last animation.
const MusicTail = 2.0

// Caption boxes are set at half the text size.
const (
	CaptionSize   = 0.5 * scene.DefaultTextSize
	CaptionWrapAt = 25
	// CaptionLead ends a caption's hold this many seconds before the
	// measure it snaps to.
	CaptionLead = 1.5
)

// Renderer plays animations on a clock.
type Renderer interface {
	anim.Player
	// Wait holds the current frame for seconds.
	Wait(ctx context.Context, seconds float64) error
	// Time returns the clock in seconds.
	Time() float64
	// Len returns the number of segments rendered so far.
	Len() int
	// Add puts elements on screen without animating them.
	Add(e ...scene.Element)
	// AddToBack puts elements on screen behind everything else.
	AddToBack(e ...scene.Element)
}

// Scene is a code walkthrough in progress.
type Scene struct {
	r        Renderer
	frame    geom.Frame
	measurer scene.Measurer
	lib      *diagram.Library
	engine   *highlight.Engine
	caption  highlight.State

	codeFont  string
	codeTheme string
	slides    bool
	pauses    []int
	music     *music.Track
	ffmpeg    string
	logger    *log.Logger
}

// Option configures a Scene.
type Option func(*Scene)

// WithFrame sets the viewport frame.
func WithFrame(f geom.Frame) Option { return func(s *Scene) { s.frame = f } }

// WithMeasurer sets the text measurer. The default uses the embedded Go
// fonts.
func WithMeasurer(m scene.Measurer) Option { return func(s *Scene) { s.measurer = m } }

// WithCodeStyle sets the code font family and chroma theme.
func WithCodeStyle(font, theme string) Option {
	return func(s *Scene) { s.codeFont, s.codeTheme = font, theme }
}

// WithLibrary sets the box library used for titles and captions.
func WithLibrary(lib *diagram.Library) Option { return func(s *Scene) { s.lib = lib } }

// WithSlides turns waits into slide checkpoints.
func WithSlides() Option { return func(s *Scene) { s.slides = true } }

// WithMusic sets the background track that beat and measure waits snap to.
func WithMusic(t *music.Track) Option { return func(s *Scene) { s.music = t } }

// WithFFmpeg sets the ffmpeg executable used to fit the music.
func WithFFmpeg(path string) Option { return func(s *Scene) { s.ffmpeg = path } }

// WithLogger sets the logger. The default discards output.
func WithLogger(l *log.Logger) Option { return func(s *Scene) { s.logger = l } }

// New returns a scene playing on r.
func New(r Renderer, opts ...Option) *Scene {
	s := &Scene{
		r:         r,
		frame:     geom.DefaultFrame(),
		codeFont:  fonts.Mono,
		codeTheme: scene.DefaultCodeTheme,
		ffmpeg:    "ffmpeg",
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.measurer == nil {
		s.measurer = fonts.NewMeasurer()
	}
	if s.lib == nil {
		s.lib = diagram.New(s.measurer)
	}
	s.engine = highlight.NewInFrame(s.frame, s.captionBox)
	return s
}

// Renderer returns the renderer the scene plays on.
func (s *Scene) Renderer() Renderer { return s.r }

// Library returns the box library.
func (s *Scene) Library() *diagram.Library { return s.lib }

// Caption returns the caption currently on screen.
func (s *Scene) Caption() highlight.State { return s.caption }

// Pauses returns the recorded slide checkpoints.
func (s *Scene) Pauses() []int { return slices.Clone(s.pauses) }

func (s *Scene) captionBox(text string) scene.Element {
	box, err := s.lib.TextBox(text,
		diagram.WithWrap(CaptionWrapAt),
		diagram.WithTextStyle(scene.TextStyle{Font: s.lib.TextFont, Size: CaptionSize}),
	)
	if err != nil {
		// TextBox only fails on a bad palette entry.
		return scene.NewText(s.measurer, scene.Wrap(text, CaptionWrapAt), scene.TextStyle{Size: CaptionSize})
	}
	return box
}

// Play plays batch on the renderer.
func (s *Scene) Play(ctx context.Context, batch ...anim.Animation) error {
	return s.r.Play(ctx, batch...)
}

// Wait pauses for d seconds. In slides mode it records a checkpoint after
// the latest segment instead.
func (s *Scene) Wait(ctx context.Context, d float64) error {
	if s.slides {
		idx := s.r.Len() - 1
		s.logger.Debug("slide checkpoint", "segment", idx)
		observability.Scene().OnCheckpoint(ctx, idx)
		s.pauses = append(s.pauses, idx)
		return nil
	}
	return s.r.Wait(ctx, d)
}

// WaitUntilBeat waits at least w seconds, extended to the next beat of the
// background track. Without music it waits w.
func (s *Scene) WaitUntilBeat(ctx context.Context, w float64) error {
	if s.music == nil {
		return s.Wait(ctx, w)
	}
	now := s.r.Time()
	beat, err := s.music.NextBeat(now + w)
	if err != nil {
		return err
	}
	return s.Wait(ctx, beat-now)
}

// WaitUntilMeasure waits at least w seconds, extended to the next measure
// of the background track, then shifted by post. Without music it waits w.
func (s *Scene) WaitUntilMeasure(ctx context.Context, w, post float64) error {
	if s.music == nil {
		return s.Wait(ctx, w)
	}
	now := s.r.Time()
	return s.Wait(ctx, s.music.NextMeasure(now+w)-now+post)
}

// AddBackground puts a full frame image behind the scene, stretched to
// the frame width.
func (s *Scene) AddBackground(path string) *scene.Image {
	img := scene.NewImage(path, s.frame.Width, s.frame.Height)
	s.r.AddToBack(img)
	return img
}

// AddBackgroundMusic sets the background track.
func (s *Scene) AddBackgroundMusic(t *music.Track) *Scene {
	s.music = t
	return s
}

// Result summarises a finished scene.
type Result struct {
	Duration float64 `json:"duration"`
	Segments int     `json:"segments"`
	Pauses   []int   `json:"pauses,omitempty"`
	// Audio is a temporary copy of the background track fitted to the
	// scene, empty without music. The caller removes it.
	Audio string `json:"audio,omitempty"`
}

// TearDown finishes the scene: the background track, if any, is trimmed
// to the scene length plus MusicTail and faded out.
func (s *Scene) TearDown(ctx context.Context) (*Result, error) {
	res := &Result{Duration: s.r.Time(), Segments: s.r.Len(), Pauses: s.Pauses()}
	if s.music != nil {
		audio, err := music.FitAudio(ctx, s.ffmpeg, s.music.Path, res.Duration+MusicTail)
		if err != nil {
			return nil, err
		}
		res.Audio = audio
	}
	s.logger.Debug("scene finished", "duration", res.Duration, "segments", res.Segments, "pauses", len(res.Pauses))
	return res, nil
}
