package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/codevideo/pkg/sequence"
	"github.com/matzehuels/codevideo/pkg/walkthrough"
)

// sequenceCommand creates the sequence command, which storyboards a TOML
// sequence diagram script.
func (c *CLI) sequenceCommand() *cobra.Command {
	var (
		board boardOpts
		title string
	)

	cmd := &cobra.Command{
		Use:   "sequence [script.toml]",
		Short: "Preview a sequence diagram script as a storyboard",
		Long: `Sequence lays out the actors and interactions of a TOML sequence script,
fades the actors in and draws one interaction per frame.

  actors = ["Browser", "Web"]

  [[do]]
  actor = "Browser"

    [[do.do]]
    actor = "Web"
    text = "Make a request"`,
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
			script, err := sequence.LoadScript(args[0])
			if err != nil {
				return err
			}
			return c.runStoryboard(cmd.Context(), cfg, args[0], board, formats, func(ctx context.Context, s *walkthrough.Scene) error {
				var opts []sequence.Option
				opts = append(opts, sequence.WithFrame(cfg.SceneFrame()))
				if title != "" {
					t := s.Title(title)
					opts = append(opts, sequence.WithMaxY(t.Box().Bottom-sequenceTitleGap))
				}
				d, err := script.Build(s.Library(), opts...)
				if err != nil {
					return err
				}
				return s.AnimateSequence(ctx, d)
			})
		},
	}

	board.register(cmd)
	cmd.Flags().StringVar(&title, "title", "", "title above the diagram")

	return cmd
}

// sequenceTitleGap separates a title from the diagram below it.
const sequenceTitleGap = 0.25
