package walkthrough

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/codevideo/pkg/anim"
	"github.com/matzehuels/codevideo/pkg/autoscale"
	"github.com/matzehuels/codevideo/pkg/comments"
	"github.com/matzehuels/codevideo/pkg/errors"
	"github.com/matzehuels/codevideo/pkg/geom"
	"github.com/matzehuels/codevideo/pkg/highlight"
	"github.com/matzehuels/codevideo/pkg/scene"
)

// CodeSource is the code shown by PartialCode: either the file at Path or
// the given Lines.
type CodeSource struct {
	Path  string
	Lines []string
	// Extension selects the syntax highlighting for Lines, e.g. "py".
	// It defaults to the extension of Path.
	Extension string
	// LineNoFrom is the number shown next to the first line (default 1).
	LineNoFrom int
}

func (src CodeSource) resolve() ([]string, string, error) {
	if src.Path == "" && len(src.Lines) == 0 {
		return nil, "", errors.New(errors.ErrCodeInvalidInput, "code needs a path or lines")
	}
	ext := src.Extension
	if len(src.Lines) > 0 && src.Path == "" && ext == "" {
		return nil, "", errors.New(errors.ErrCodeInvalidInput, "inline code needs an extension")
	}
	if ext == "" {
		ext = filepath.Ext(src.Path)
	}
	ext = strings.TrimPrefix(ext, ".")
	if ext != "" {
		if err := errors.ValidateExtension(ext); err != nil {
			return nil, "", err
		}
	}

	lines := src.Lines
	if src.Path != "" && len(lines) == 0 {
		data, err := os.ReadFile(src.Path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, "", errors.Wrap(errors.ErrCodeFileNotFound, err, "source file %s", src.Path)
			}
			return nil, "", err
		}
		lines = strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	}
	return lines, ext, nil
}

// PartialCode typesets src and wraps it to fit the frame.
func (s *Scene) PartialCode(src CodeSource) (*autoscale.Element, error) {
	lines, ext, err := src.resolve()
	if err != nil {
		return nil, err
	}
	code := scene.NewCode(s.measurer, lines, scene.CodeOptions{
		LineNoFrom: src.LineNoFrom,
		Language:   ext,
		Theme:      s.codeTheme,
		Text:       scene.TextStyle{Font: s.codeFont},
	})
	return autoscale.NewInFrame(code, s.frame), nil
}

// CreateCode typesets the whole file at path.
func (s *Scene) CreateCode(path string) (*autoscale.Element, error) {
	return s.PartialCode(CodeSource{Path: path})
}

// CommentOptions configures AnimateCodeComments.
type CommentOptions struct {
	// Title is shown above the code. It defaults to the path.
	Title string
	// KeepComments shows the comment lines in the code.
	KeepComments bool
	// StartLine and EndLine restrict the file to a 1-based inclusive range.
	// Zero values mean the first and last line.
	StartLine, EndLine int
	// KeepHighlight leaves the last highlight and layout in place instead
	// of restoring the full code.
	KeepHighlight bool
}

// AnimateCodeComments shows the file at path under a title and steps
// through its comments, highlighting the lines each one captions.
func (s *Scene) AnimateCodeComments(ctx context.Context, path string, opts CommentOptions) (*autoscale.Element, error) {
	src, err := comments.ParseFile(path, comments.Options{
		KeepComments: opts.KeepComments,
		StartLine:    opts.StartLine,
		EndLine:      opts.EndLine,
	})
	if err != nil {
		return nil, err
	}
	if len(src.Code) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "%s has no code lines to show", path)
	}
	from := max(opts.StartLine, 1)
	code, err := s.PartialCode(CodeSource{Lines: src.Code, Extension: filepath.Ext(path), LineNoFrom: from})
	if err != nil {
		return nil, err
	}

	label := opts.Title
	if label == "" {
		label = path
	}
	title := s.Title(label)
	code.NextTo(title.Box(), geom.Down, geom.DefaultObjectBuff)

	s.logger.Info("animating comments", "file", path, "lines", len(src.Code), "comments", len(src.Comments))
	if err := s.Play(ctx, anim.Create(code)); err != nil {
		return nil, err
	}
	if err := s.Wait(ctx, DefaultWait); err != nil {
		return nil, err
	}

	for _, c := range src.Comments {
		// Comment ranges index the emitted code; the display numbers
		// start at from.
		start, end := c.Start+from-1, c.End+from-1
		if err := s.HighlightLines(ctx, code, start, end, c.Caption()); err != nil {
			return nil, err
		}
	}

	if err := s.play(ctx, s.engine.Clear(s.caption)); err != nil {
		return nil, err
	}
	s.caption = highlight.State{}

	if !opts.KeepHighlight {
		if err := s.HighlightNone(ctx, code); err != nil {
			return nil, err
		}
	}
	return code, nil
}

func (s *Scene) play(ctx context.Context, tr highlight.Transition) error {
	for _, step := range tr.Steps {
		if err := s.Play(ctx, step...); err != nil {
			return err
		}
	}
	return nil
}

// HighlightLines highlights display lines [start, end] of code, with an
// optional caption beside them. end may be highlight.ToEnd. A caption is
// held on screen for its reading time, snapped to the next measure when
// music is playing.
func (s *Scene) HighlightLines(ctx context.Context, code *autoscale.Element, start, end int, caption string) error {
	tr, err := s.engine.Lines(s.caption, code, highlight.Request{Start: start, End: end, Caption: caption})
	if err != nil {
		return err
	}
	if err := s.play(ctx, tr); err != nil {
		return err
	}
	s.caption = tr.State
	if tr.Hold > 0 {
		return s.WaitUntilMeasure(ctx, tr.Hold, -CaptionLead)
	}
	return nil
}

// HighlightLine highlights a single display line.
func (s *Scene) HighlightLine(ctx context.Context, code *autoscale.Element, number int, caption string) error {
	return s.HighlightLines(ctx, code, number, number, caption)
}

// HighlightNone removes any caption and highlight and restores the code
// to the full frame.
func (s *Scene) HighlightNone(ctx context.Context, code *autoscale.Element) error {
	tr, err := s.engine.None(s.caption, code)
	if err != nil {
		return err
	}
	if err := s.play(ctx, tr); err != nil {
		return err
	}
	s.caption = tr.State
	return nil
}
