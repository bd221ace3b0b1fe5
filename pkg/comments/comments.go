package comments

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/matzehuels/codevideo/pkg/errors"
)

// Comment is a run of contiguous comment lines attached to a range of
// emitted code lines. Start and End are 1-based, inclusive indices into the
// emitted code, not into the original file.
type Comment struct {
	Lines []string `json:"lines"`
	Start int      `json:"start"`
	End   int      `json:"end"`
}

// Empty reports whether the comment has no caption lines. Empty comments are
// never emitted.
func (c *Comment) Empty() bool { return len(c.Lines) == 0 }

// Caption returns the caption lines joined by newlines.
func (c *Comment) Caption() string { return strings.Join(c.Lines, "\n") }

// Options controls which part of a source file is parsed and whether
// comment lines stay in the emitted code.
type Options struct {
	// KeepComments retains comment and terminator lines in the emitted code.
	KeepComments bool
	// StartLine is the first 1-based input line to consider (default 1).
	StartLine int
	// EndLine is the last 1-based input line to consider, inclusive.
	// Zero parses to EOF.
	EndLine int
	// Marker overrides the comment marker derived from the file type.
	Marker string
}

// Source is the result of parsing an annotated file.
type Source struct {
	Code     []string  `json:"code"`
	Comments []Comment `json:"comments"`
	Marker   string    `json:"marker"`
}

// ParseFile reads path and parses it with the comment marker registered for
// its file type. It fails with UNSUPPORTED_FILE_TYPE when no lexer matches
// the file name and opts.Marker is empty.
func ParseFile(path string, opts Options) (*Source, error) {
	marker := opts.Marker
	if marker == "" {
		fam, err := FamilyFor(path)
		if err != nil {
			return nil, err
		}
		marker = fam.Marker
	}

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "source file %s", path)
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	opts.Marker = marker
	return ParseReader(f, opts)
}

// ParseReader splits r into lines and parses them. opts.Marker must be set.
func ParseReader(r io.Reader, opts Options) (*Source, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}
	return Parse(lines, opts)
}

// Parse extracts code lines and caption ranges from lines.
//
// A line whose trimmed text starts with "<marker> " is a comment line and is
// appended to the running comment. A line starting with "<marker> end" is a
// terminator: it closes the running comment on the next emitted line if one
// is open, and otherwise sets the End of the most recently closed comment to
// the current emitted code length. A comment left pointing past the last
// emitted line is dropped. The first code line seen while the running
// comment has content closes it with Start = End = that line's emitted index.
func Parse(lines []string, opts Options) (*Source, error) {
	if opts.Marker == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "comment marker must be set")
	}
	lines, err := window(lines, opts.StartLine, opts.EndLine)
	if err != nil {
		return nil, err
	}

	var (
		code       []string
		comments   []Comment
		running    Comment
		terminator = opts.Marker + " end"
		prefix     = opts.Marker + " "
	)

	for i, line := range lines {
		stripped := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(stripped, terminator):
			switch {
			case !running.Empty():
				running.Start = len(code) + 1
				running.End = running.Start
				comments = append(comments, running)
				running = Comment{}
			case len(comments) == 0:
				return nil, errors.New(errors.ErrCodeDanglingTerminator,
					"line %d: %q without a preceding comment", i+startOf(opts), stripped)
			default:
				comments[len(comments)-1].End = len(code)
			}
			if !opts.KeepComments {
				continue
			}
		case strings.HasPrefix(stripped, prefix):
			running.Lines = append(running.Lines, strings.TrimSpace(stripped[len(prefix):]))
			if !opts.KeepComments {
				continue
			}
		case !running.Empty():
			running.Start = len(code) + 1
			running.End = running.Start
			comments = append(comments, running)
			running = Comment{}
		}
		code = append(code, line)
	}

	if n := len(code); n > 0 && strings.TrimSpace(code[n-1]) == "" {
		code = code[:n-1]
	}
	for len(comments) > 0 && comments[len(comments)-1].Start > len(code) {
		comments = comments[:len(comments)-1]
	}

	return &Source{Code: code, Comments: comments, Marker: opts.Marker}, nil
}

func startOf(opts Options) int {
	if opts.StartLine < 1 {
		return 1
	}
	return opts.StartLine
}

// window restricts lines to [start, end] (1-based, inclusive).
func window(lines []string, start, end int) ([]string, error) {
	if start == 0 {
		start = 1
	}
	if err := errors.ValidateLineRange(start, end); err != nil {
		return nil, err
	}
	if start > len(lines) {
		return nil, nil
	}
	lines = lines[start-1:]
	if end != 0 && end-start+1 < len(lines) {
		lines = lines[:end-start+1]
	}
	return lines, nil
}
