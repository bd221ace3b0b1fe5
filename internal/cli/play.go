package cli

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/codevideo/pkg/config"
	"github.com/matzehuels/codevideo/pkg/errors"
	"github.com/matzehuels/codevideo/pkg/slides"
	"github.com/matzehuels/codevideo/pkg/toolchain"
)

// playCommand creates the play command, which presents rendered slides.
func (c *CLI) playCommand() *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "play [movie.mp4|movie" + manifestSuffix + "]",
		Short: "Present rendered slides one at a time",
		Long: `Play shows the clips built by "render --slides" with the configured
player, waiting for a key between slides. With --list the slides are
printed instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			m, err := loadPlayable(args[0])
			if err != nil {
				return err
			}
			if list {
				fmt.Print(describeSlides(m))
				return nil
			}
			if err := toolchain.Require(cfg.Slides.Player, "Set [slides] player in "+config.FileName+"."); err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("playing slides", "session", m.Session, "clips", len(m.Clips))

			model := NewSlideModel(filepath.Base(m.Movie), m.Clips, playerCommand(cfg))
			final, err := tea.NewProgram(model, tea.WithContext(cmd.Context())).Run()
			if err != nil {
				return err
			}
			if sm, ok := final.(SlideModel); ok && sm.Err != nil {
				return errors.Wrap(errors.ErrCodeExternalTool, sm.Err, "slide player")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&list, "list", false, "print the slides instead of playing them")

	return cmd
}

// loadPlayable loads the manifest at path, or the one saved next to the
// movie at path, and checks that its clips exist.
func loadPlayable(path string) (*slides.Manifest, error) {
	if !strings.HasSuffix(path, manifestSuffix) {
		path = manifestPathFor(path)
	}
	m, err := slides.LoadManifest(path)
	if err != nil {
		return nil, err
	}
	if len(m.Clips) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "%s lists no clips; run \"%s render --slides\" first", path, appName)
	}
	for _, clip := range m.Clips {
		if _, err := os.Stat(clip); err != nil {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "slide clip %s", clip)
		}
	}
	return m, nil
}

// playerCommand returns a function building the player invocation for a
// clip.
func playerCommand(cfg *config.Config) playerFunc {
	return func(clip string) *exec.Cmd {
		args := append(append([]string(nil), cfg.Slides.PlayerArgs...), clip)
		return exec.Command(cfg.Slides.Player, args...)
	}
}

// describeSlides lists the slides of m as "n: clip" lines.
func describeSlides(m *slides.Manifest) string {
	var b strings.Builder
	for i, clip := range m.Clips {
		fmt.Fprintf(&b, "%d: %s\n", i+1, clip)
	}
	return b.String()
}
