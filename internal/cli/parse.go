package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/matzehuels/codevideo/pkg/comments"
)

// captionWidth truncates captions in the comment table.
const captionWidth = 60

// parseOpts holds the command-line flags for the parse command.
type parseOpts struct {
	keepComments bool   // keep comment lines in the code
	startLine    int    // first input line
	endLine      int    // last input line, 0 for the end
	json         bool   // print JSON instead of a table
	output       string // output file path (stdout if empty)
}

func (o parseOpts) commentOptions() comments.Options {
	return comments.Options{KeepComments: o.keepComments, StartLine: o.startLine, EndLine: o.endLine}
}

// parseCommand creates the parse command, which lists the captions a file
// would show.
func (c *CLI) parseCommand() *cobra.Command {
	var opts parseOpts

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "List the caption comments of a source file",
		Long: `Parse reads a source file and lists its caption comments together with
the display lines each one highlights. A run of "# " comment lines captions
the next code line, and "# end" extends the caption to the line before it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.keepComments, "keep-comments", false, "keep comment lines in the code")
	cmd.Flags().IntVar(&opts.startLine, "start", 1, "first line of the file to use")
	cmd.Flags().IntVar(&opts.endLine, "end", 0, "last line of the file to use (default: end of file)")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print JSON")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")

	return cmd
}

func runParse(ctx context.Context, path string, opts parseOpts) error {
	logger := loggerFromContext(ctx)
	src, err := comments.ParseFile(path, opts.commentOptions())
	if err != nil {
		return err
	}
	logger.Debugf("Parsed %s: %d code lines, %d comments", path, len(src.Code), len(src.Comments))

	out, err := openOutput(opts.output)
	if err != nil {
		return err
	}
	defer out.Close()

	if opts.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(src)
	}
	_, err = fmt.Fprintln(out, commentTable(src, max(opts.startLine, 1)))
	return err
}

// commentTable renders the comments of src with display line numbers
// counted from first.
func commentTable(src *comments.Source, first int) string {
	rows := make([][]string, 0, len(src.Comments))
	for i, cm := range src.Comments {
		lines := strconv.Itoa(cm.Start + first - 1)
		if cm.End != cm.Start {
			lines += "-" + strconv.Itoa(cm.End+first-1)
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			lines,
			runewidth.Truncate(cm.Caption(), captionWidth, "…"),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Lines", "Caption").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 1:
				return lipgloss.NewStyle().Foreground(colorCyan)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})
	return t.Render()
}
