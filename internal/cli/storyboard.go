package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matzehuels/codevideo/pkg/config"
	"github.com/matzehuels/codevideo/pkg/music"
	"github.com/matzehuels/codevideo/pkg/render"
	"github.com/matzehuels/codevideo/pkg/walkthrough"
)

// storyboardFormats are the frame formats a storyboard can be written in.
var storyboardFormats = []string{"svg", "png", "pdf"}

// timelineFile is the name of the storyboard index.
const timelineFile = "timeline.json"

// boardOpts holds the flags shared by the commands that write storyboards.
type boardOpts struct {
	output     string // output directory
	formats    string // comma-separated frame formats
	music      string // background audio file
	background string // background image file
	slides     bool   // record checkpoints instead of waits
	noCache    bool   // bypass the beat cache
}

func (o *boardOpts) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "output directory (default: <input>.storyboard)")
	cmd.Flags().StringVarP(&o.formats, "format", "f", "", "frame format(s): svg (default), png, pdf (comma-separated)")
	cmd.Flags().StringVar(&o.music, "music", "", "background audio to snap captions to")
	cmd.Flags().StringVar(&o.background, "background", "", "background image")
	cmd.Flags().BoolVar(&o.slides, "slides", false, "record slide checkpoints instead of waits")
	cmd.Flags().BoolVar(&o.noCache, "no-cache", false, "detect beats again instead of using the cache")
}

// commentOpts holds the storyboard flags for AnimateCodeComments.
type commentOpts struct {
	title         string
	keepComments  bool
	startLine     int
	endLine       int
	keepHighlight bool
}

// storyboardCommand creates the storyboard command, which previews a code
// walkthrough without the animation renderer.
func (c *CLI) storyboardCommand() *cobra.Command {
	var (
		board boardOpts
		opts  commentOpts
	)

	cmd := &cobra.Command{
		Use:   "storyboard [file]",
		Short: "Preview a code walkthrough as one frame per animation",
		Long: `Storyboard steps through the caption comments of a source file the way
the walkthrough scene does and writes the frame at the end of every
animation, plus a ` + timelineFile + ` with the timing of each segment.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formats := parseFormats(board.formats)
			if err := validateFormats(formats, storyboardFormats...); err != nil {
				return err
			}
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			return c.runStoryboard(cmd.Context(), cfg, args[0], board, formats, func(ctx context.Context, s *walkthrough.Scene) error {
				_, err := s.AnimateCodeComments(ctx, args[0], walkthrough.CommentOptions{
					Title:         opts.title,
					KeepComments:  opts.keepComments,
					StartLine:     opts.startLine,
					EndLine:       opts.endLine,
					KeepHighlight: opts.keepHighlight,
				})
				return err
			})
		},
	}

	board.register(cmd)
	cmd.Flags().StringVar(&opts.title, "title", "", "title above the code (default: the file path)")
	cmd.Flags().BoolVar(&opts.keepComments, "keep-comments", false, "keep comment lines in the code")
	cmd.Flags().IntVar(&opts.startLine, "start", 1, "first line of the file to show")
	cmd.Flags().IntVar(&opts.endLine, "end", 0, "last line of the file to show (default: end of file)")
	cmd.Flags().BoolVar(&opts.keepHighlight, "keep-highlight", false, "leave the last highlight in place")

	return cmd
}

// storyboard is the timeline.json document.
type storyboard struct {
	Run      string           `json:"run"`
	Source   string           `json:"source"`
	Duration float64          `json:"duration"`
	Pauses   []int            `json:"pauses,omitempty"`
	Audio    string           `json:"audio,omitempty"`
	Segments []render.Segment `json:"segments"`
	Frames   []string         `json:"frames"`
}

// runStoryboard plays fn on a recording scene and writes its frames.
func (c *CLI) runStoryboard(ctx context.Context, cfg *config.Config, input string, board boardOpts, formats []string, fn func(context.Context, *walkthrough.Scene) error) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	rec := render.NewRecorder(render.WithSnapshots(), render.WithLogger(logger))
	opts := sceneOptions(cfg, logger)
	if board.slides {
		opts = append(opts, walkthrough.WithSlides())
	}
	var track *music.Track
	if board.music != "" {
		var err error
		track, err = c.loadMusic(ctx, cfg, board.music, board.noCache)
		if err != nil {
			return err
		}
		logger.Infof("Loaded %s: %d beats, %d measures", board.music, len(track.Beats), len(track.Measures))
		opts = append(opts, walkthrough.WithMusic(track))
	}
	s := walkthrough.New(rec, opts...)
	if board.background != "" {
		s.AddBackground(board.background)
	}

	if err := fn(ctx, s); err != nil {
		return err
	}
	res, err := s.TearDown(ctx)
	if err != nil {
		return err
	}
	if track != nil && res.Duration > track.Length() {
		printWarning("Scene runs %.1fs, past the last beat at %.1fs", res.Duration, track.Length())
	}

	dir := board.output
	if dir == "" {
		dir = basePath("", input) + ".storyboard"
	}
	doc, err := writeFrames(ctx, cfg, rec, dir, formats)
	if err != nil {
		return err
	}
	doc.Source, doc.Duration, doc.Pauses = input, res.Duration, res.Pauses
	if res.Audio != "" {
		audio := filepath.Join(dir, "music"+filepath.Ext(res.Audio))
		if err := moveFile(res.Audio, audio); err != nil {
			return err
		}
		doc.Audio = audio
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	index := filepath.Join(dir, timelineFile)
	if err := writeOutput(index, append(data, '\n')); err != nil {
		return err
	}

	prog.done(fmt.Sprintf("Wrote %s", pluralize(len(doc.Frames), "frame")))
	printSceneStats(res.Segments, res.Duration, len(res.Pauses))
	printFile(index)
	return nil
}

// writeFrames renders the snapshot of every play segment of rec into dir.
func writeFrames(ctx context.Context, cfg *config.Config, rec *render.Recorder, dir string, formats []string) (*storyboard, error) {
	vp := cfg.Viewport()
	svgOpts := []render.SVGOption{render.WithViewport(vp), render.WithBackground(cfg.Theme.Background)}
	doc := &storyboard{Run: uuid.NewString(), Segments: rec.Segments()}

	for _, seg := range doc.Segments {
		if seg.Kind != render.SegmentPlay || seg.Frame() == nil {
			continue
		}
		for _, format := range formats {
			var (
				data []byte
				err  error
			)
			switch format {
			case "svg":
				data = render.RenderSVG(seg.Frame(), svgOpts...)
			case "png":
				data, err = render.RenderPNG(seg.Frame(), render.WithPNGViewport(vp), render.WithPNGBackground(cfg.Theme.Background))
			case "pdf":
				data, err = render.RenderPDF(ctx, seg.Frame(), svgOpts...)
			}
			if err != nil {
				return nil, fmt.Errorf("frame %d: %w", seg.Index, err)
			}
			path := filepath.Join(dir, fmt.Sprintf("frame-%03d.%s", seg.Index, format))
			if err := writeOutput(path, data); err != nil {
				return nil, err
			}
			doc.Frames = append(doc.Frames, path)
		}
	}
	return doc, nil
}
