package music

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/matzehuels/codevideo/pkg/errors"
	"github.com/matzehuels/codevideo/pkg/toolchain"
)

// FadeOut is the length of the fade at the end of a fitted track.
const FadeOut = 1.0

// FitArgs returns the ffmpeg arguments that trim in to length seconds and
// fade out its last second into out.
func FitArgs(in, out string, length float64) []string {
	start := max(length-FadeOut, 0)
	return []string{
		"-y", "-loglevel", "error",
		"-i", in,
		"-t", fmt.Sprintf("%.3f", length),
		"-af", fmt.Sprintf("afade=t=out:st=%.3f:d=%.3f", start, FadeOut),
		out,
	}
}

// FitAudio writes a copy of the audio at in trimmed to length seconds with
// a fade out, and returns the path of the temporary copy. The caller
// removes it.
func FitAudio(ctx context.Context, ffmpeg, in string, length float64) (string, error) {
	if length <= 0 {
		return "", errors.New(errors.ErrCodeInvalidInput, "audio length must be positive, got %g", length)
	}
	if ffmpeg == "" {
		ffmpeg = "ffmpeg"
	}
	tmp, err := os.CreateTemp("", "codevideo-music-*"+filepath.Ext(in))
	if err != nil {
		return "", err
	}
	out := tmp.Name()
	tmp.Close()

	if _, err := toolchain.Run(ctx, ffmpeg, nil, FitArgs(in, out, length)...); err != nil {
		os.Remove(out)
		return "", err
	}
	return out, nil
}
