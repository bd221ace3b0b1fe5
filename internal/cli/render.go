package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/codevideo/pkg/config"
	"github.com/matzehuels/codevideo/pkg/errors"
	"github.com/matzehuels/codevideo/pkg/slides"
	"github.com/matzehuels/codevideo/pkg/toolchain"
)

// manifestSuffix is appended to the movie base path for the saved slides
// manifest.
const manifestSuffix = ".slides.json"

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	slides      bool // split the render into slides
	concurrency int  // parallel ffmpeg processes (0 = config)
}

// renderCommand creates the render command, which runs the configured
// animation renderer.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [args...]",
		Short: "Run the animation renderer",
		Long: `Render runs the renderer configured under [render] with the given
arguments, after the configured default arguments.

With --slides the renderer is asked, through the ` + slides.ManifestEnv + `
environment variable, to write a slides manifest. The partial movie files it
lists are then joined into one clip per slide next to the movie, and the
manifest is saved as <movie>` + manifestSuffix + ` for "codevideo play".`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			return runRender(cmd.Context(), cfg, args, opts)
		},
	}
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().BoolVar(&opts.slides, "slides", false, "split the render into slides")
	cmd.Flags().IntVar(&opts.concurrency, "jobs", 0, "parallel ffmpeg processes (default: config or CPU count)")

	return cmd
}

func runRender(ctx context.Context, cfg *config.Config, args []string, opts renderOpts) error {
	logger := loggerFromContext(ctx)
	command := cfg.Render.Command
	argv := append(append([]string(nil), cfg.Render.Args...), args...)
	if err := toolchain.Require(command, "Set [render] command in "+config.FileName+"."); err != nil {
		return err
	}

	var env []string
	var manifestPath string
	if opts.slides {
		dir, err := os.MkdirTemp("", "codevideo-slides-")
		if err != nil {
			return err
		}
		defer os.RemoveAll(dir)
		manifestPath = filepath.Join(dir, "manifest.json")
		env = append(env, slides.ManifestEnv+"="+manifestPath)
	}

	logger.Infof("Running %s %s", command, strings.Join(argv, " "))
	prog := newProgress(logger)
	if err := toolchain.StreamEnv(ctx, env, os.Stdout, os.Stderr, command, argv...); err != nil {
		return err
	}
	prog.done("Rendered")

	if !opts.slides {
		return nil
	}
	m, err := slides.LoadManifest(manifestPath)
	if errors.Is(err, errors.ErrCodeFileNotFound) {
		return errors.Wrap(errors.ErrCodeExternalTool, err, "%s wrote no slides manifest", command)
	}
	if err != nil {
		return err
	}
	return buildSlides(ctx, cfg, m, opts.concurrency)
}

// buildSlides cuts m into clips and saves the manifest next to the movie.
func buildSlides(ctx context.Context, cfg *config.Config, m *slides.Manifest, jobs int) error {
	if jobs == 0 {
		jobs = cfg.Slides.Concurrency
	}
	b := slides.Builder{FFmpeg: cfg.Slides.FFmpeg, Concurrency: jobs, Logger: loggerFromContext(ctx)}

	n := len(m.Slides())
	err := spin(ctx, "Building slides", "Built "+pluralize(n, "slide"), func(ctx context.Context) error {
		_, err := b.Build(ctx, m)
		return err
	})
	if err != nil {
		return err
	}

	path := manifestPathFor(m.Movie)
	if err := m.Save(path); err != nil {
		return err
	}
	for _, clip := range m.Clips {
		printFile(clip)
	}
	printFile(path)
	printNextStep("Present them with", "codevideo play "+path)
	return nil
}

// manifestPathFor returns where the slides manifest of movie is saved.
func manifestPathFor(movie string) string {
	return strings.TrimSuffix(movie, filepath.Ext(movie)) + manifestSuffix
}
