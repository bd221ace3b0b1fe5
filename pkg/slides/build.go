package slides

import (
	"context"
	"io"
	"os"
	"runtime"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/codevideo/pkg/errors"
	"github.com/matzehuels/codevideo/pkg/toolchain"
)

// Builder joins slide segments into clips.
type Builder struct {
	// FFmpeg is the ffmpeg executable (default "ffmpeg").
	FFmpeg string
	// Concurrency bounds the ffmpeg processes run at once (default
	// GOMAXPROCS).
	Concurrency int
	Logger      *log.Logger
}

// Build writes one clip per slide of m, records the clip paths in
// m.Clips and returns them in slide order.
func (b Builder) Build(ctx context.Context, m *Manifest) ([]string, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	groups := m.Slides()
	if len(groups) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "%s has no segments to split", m.Movie)
	}
	ffmpeg := b.FFmpeg
	if ffmpeg == "" {
		ffmpeg = "ffmpeg"
	}
	if err := toolchain.Require(ffmpeg, "Install ffmpeg to build slides."); err != nil {
		return nil, err
	}
	logger := b.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	jobs := b.Concurrency
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	clips := make([]string, len(groups))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(groups)))
	for i, files := range groups {
		g.Go(func() error {
			out := ClipName(m.Movie, i)
			if err := concat(gctx, ffmpeg, files, out); err != nil {
				return err
			}
			logger.Debug("slide clip", "index", i, "segments", len(files), "path", out)
			clips[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	m.Clips = clips
	logger.Info("built slides", "movie", m.Movie, "clips", len(clips))
	return clips, nil
}

func concat(ctx context.Context, ffmpeg string, files []string, out string) error {
	list, err := ConcatList(files)
	if err != nil {
		return err
	}
	f, err := os.CreateTemp("", "codevideo-concat-*.txt")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())
	if _, err := f.WriteString(list); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	_, err = toolchain.Run(ctx, ffmpeg, nil, ConcatArgs(f.Name(), out)...)
	return err
}
