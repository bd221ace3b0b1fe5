package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/codevideo/pkg/config"
	"github.com/matzehuels/codevideo/pkg/diagram"
	"github.com/matzehuels/codevideo/pkg/fonts"
	"github.com/matzehuels/codevideo/pkg/geom"
	"github.com/matzehuels/codevideo/pkg/render"
	"github.com/matzehuels/codevideo/pkg/scene"
	"github.com/matzehuels/codevideo/pkg/walkthrough"
)

// Box diagram engines.
const (
	engineScene    = "scene"    // boxes placed the way the walkthrough scene places them
	engineGraphviz = "graphviz" // automatic Graphviz layout
)

// boxesFormats are the output formats of the boxes command.
var boxesFormats = []string{"svg", "png", "pdf", "dot"}

// pngScale is the rsvg-convert scale used for Graphviz PNG output.
const pngScale = 2.0

// boxesOpts holds the command-line flags for the boxes command.
type boxesOpts struct {
	output  string
	formats string
	engine  string
	animate bool
	board   boardOpts
}

// boxesCommand creates the boxes command, which draws a TOML box diagram.
func (c *CLI) boxesCommand() *cobra.Command {
	opts := boxesOpts{engine: engineScene}

	cmd := &cobra.Command{
		Use:   "boxes [script.toml]",
		Short: "Draw a box and arrow diagram script",
		Long: `Boxes draws the boxes, connections and groups of a TOML diagram script.

The scene engine places boxes exactly as the script says, relative to the
frame and to each other. The graphviz engine ignores the placement and
lets Graphviz lay the diagram out. DOT output is available from both.
With --animate a storyboard is written instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			script, err := diagram.LoadScript(args[0])
			if err != nil {
				return err
			}
			if opts.animate {
				formats := parseFormats(opts.board.formats)
				if err := validateFormats(formats, storyboardFormats...); err != nil {
					return err
				}
				return c.runStoryboard(cmd.Context(), cfg, args[0], opts.board, formats, func(ctx context.Context, s *walkthrough.Scene) error {
					if script.Title != "" {
						s.Title(script.Title)
					}
					sheet, err := s.Library().Build(script, cfg.SceneFrame())
					if err != nil {
						return err
					}
					return s.AnimateSheet(ctx, sheet)
				})
			}

			formats := parseFormats(opts.formats)
			if err := validateFormats(formats, boxesFormats...); err != nil {
				return err
			}
			if opts.engine != engineScene && opts.engine != engineGraphviz {
				return fmt.Errorf("invalid engine: %s (must be '%s' or '%s')", opts.engine, engineScene, engineGraphviz)
			}
			return runBoxes(cmd.Context(), cfg, args[0], script, formats, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output base path (default: input without extension)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): svg (default), png, pdf, dot (comma-separated)")
	cmd.Flags().StringVar(&opts.engine, "engine", opts.engine, "layout engine: scene (default), graphviz")
	cmd.Flags().BoolVar(&opts.animate, "animate", false, "write a storyboard of the diagram being drawn")
	opts.board.register(cmd)

	return cmd
}

func runBoxes(ctx context.Context, cfg *config.Config, input string, script *diagram.Script, formats []string, opts boxesOpts) error {
	logger := loggerFromContext(ctx)
	lib := cfg.Library(fonts.NewMeasurer())
	base := basePath(opts.output, input)

	for _, format := range formats {
		data, err := renderBoxes(ctx, cfg, lib, script, format, opts.engine)
		if err != nil {
			return fmt.Errorf("%s/%s: %w", opts.engine, format, err)
		}
		path := base + "." + format
		if err := writeOutput(path, data); err != nil {
			return err
		}
		logger.Infof("Generated %s", path)
		printFile(path)
	}
	return nil
}

// renderBoxes renders script in one format with one engine.
func renderBoxes(ctx context.Context, cfg *config.Config, lib *diagram.Library, script *diagram.Script, format, engine string) ([]byte, error) {
	if format == "dot" || engine == engineGraphviz {
		dot, err := lib.ToDOT(script)
		if err != nil {
			return nil, err
		}
		switch format {
		case "dot":
			return []byte(dot), nil
		case "svg":
			return diagram.RenderSVG(ctx, dot)
		case "pdf":
			return diagram.RenderPDF(ctx, dot)
		case "png":
			return diagram.RenderPNG(ctx, dot, pngScale)
		}
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	sheet, err := lib.Build(script, cfg.SceneFrame())
	if err != nil {
		return nil, err
	}
	root := scene.NewGroup(sheet.Root)
	if script.Title != "" {
		title := scene.NewText(lib.Measurer, script.Title, scene.TextStyle{Font: lib.TextFont})
		scene.ToEdge(title, cfg.SceneFrame(), geom.Up, geom.DefaultEdgeBuff)
		root.Add(title)
	}
	vp := cfg.Viewport()
	switch format {
	case "svg":
		return render.RenderSVG(root, render.WithViewport(vp), render.WithBackground(cfg.Theme.Background)), nil
	case "pdf":
		return render.RenderPDF(ctx, root, render.WithViewport(vp), render.WithBackground(cfg.Theme.Background))
	case "png":
		return render.RenderPNG(root, render.WithPNGViewport(vp), render.WithPNGBackground(cfg.Theme.Background))
	}
	return nil, fmt.Errorf("unsupported format: %s", format)
}
