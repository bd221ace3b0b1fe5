package slides

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

// Group cuts segments into slides. Empty segment paths are dropped first;
// a slide ends after every remaining index listed in stops, and whatever
// follows the last stop forms a final slide.
func Group(segments []string, stops []int) [][]string {
	var (
		out     [][]string
		current []string
		kept    = slices.DeleteFunc(slices.Clone(segments), func(s string) bool { return s == "" })
	)
	for i, seg := range kept {
		current = append(current, seg)
		if slices.Contains(stops, i) {
			out = append(out, current)
			current = nil
		}
	}
	if len(current) > 0 {
		out = append(out, current)
	}
	return out
}

// ClipName returns the path of slide i of movie: the movie path with its
// extension replaced by "-<i>.mp4".
func ClipName(movie string, i int) string {
	return fmt.Sprintf("%s-%d.mp4", strings.TrimSuffix(movie, filepath.Ext(movie)), i)
}

// ConcatList returns an ffmpeg concat demuxer list for files. Paths are
// made absolute and single quotes escaped.
func ConcatList(files []string) (string, error) {
	var b strings.Builder
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "file '%s'\n", strings.ReplaceAll(abs, "'", `'\''`))
	}
	return b.String(), nil
}

// ConcatArgs returns the ffmpeg arguments that join the files in list into
// out without re-encoding.
func ConcatArgs(list, out string) []string {
	return []string{"-y", "-loglevel", "error", "-f", "concat", "-safe", "0", "-i", list, "-c", "copy", out}
}
