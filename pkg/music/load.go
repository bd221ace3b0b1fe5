package music

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/codevideo/pkg/cache"
	"github.com/matzehuels/codevideo/pkg/errors"
	"github.com/matzehuels/codevideo/pkg/observability"
	"github.com/matzehuels/codevideo/pkg/toolchain"
)

// SidecarExt is appended to an audio path to find its beat file.
const SidecarExt = ".beats"

const cacheKeyType = "beats"

// Loader finds the beats of an audio file.
type Loader struct {
	// Command is the beat detector. The audio path is appended as the last
	// argument and the command prints one beat time per line.
	Command []string
	// Cache stores detector output keyed by audio content. Nil disables
	// caching.
	Cache cache.Cache
	// Logger receives progress messages. Nil discards them.
	Logger *log.Logger
}

func (l *Loader) logger() *log.Logger {
	if l.Logger == nil {
		return log.New(io.Discard)
	}
	return l.Logger
}

// Load returns the beat track for the audio at path, preferring a sidecar
// file over the detector.
func (l *Loader) Load(ctx context.Context, path string) (*Track, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "music file %s", path)
		}
		return nil, err
	}

	if f, err := os.Open(path + SidecarExt); err == nil {
		defer f.Close()
		l.logger().Debug("reading beats", "file", path+SidecarExt)
		beats, err := ParseBeats(f)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "beat file %s", path+SidecarExt)
		}
		return NewTrack(path, beats), nil
	}

	if len(l.Command) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig,
			"no beats for %s: add %s or set music.beat_command", path, path+SidecarExt)
	}
	beats, err := l.detect(ctx, path)
	if err != nil {
		return nil, err
	}
	return NewTrack(path, beats), nil
}

func (l *Loader) detect(ctx context.Context, path string) ([]float64, error) {
	audio, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	c := l.Cache
	if c == nil {
		c = cache.NewNullCache()
	}
	key := cache.Key(cacheKeyType, cache.Hash(audio), l.Command)

	if data, ok, err := c.Get(ctx, key); err == nil && ok {
		var beats []float64
		if json.Unmarshal(data, &beats) == nil {
			observability.Cache().OnCacheHit(ctx, cacheKeyType)
			l.logger().Debug("beats from cache", "file", path, "beats", len(beats))
			return beats, nil
		}
	}
	observability.Cache().OnCacheMiss(ctx, cacheKeyType)

	l.logger().Info("detecting beats", "file", path, "command", l.Command[0])
	args := append(slices.Clone(l.Command[1:]), path)
	out, err := toolchain.Run(ctx, l.Command[0], nil, args...)
	if err != nil {
		return nil, err
	}
	beats, err := ParseBeats(bytes.NewReader(out))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeExternalTool, err, "parse %s output", l.Command[0])
	}

	if data, err := json.Marshal(beats); err == nil {
		if err := c.Set(ctx, key, data, 0); err != nil {
			l.logger().Warn("caching beats failed", "error", err)
		} else {
			observability.Cache().OnCacheSet(ctx, cacheKeyType, len(data))
		}
	}
	return beats, nil
}

// ParseBeats reads beat times in seconds. The input is either a JSON array
// of numbers or text with one time per line, where only the first field of
// each line counts. Blank lines and lines starting with '#' are skipped.
func ParseBeats(r io.Reader) ([]float64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '[' {
		var beats []float64
		if err := json.Unmarshal(trimmed, &beats); err != nil {
			return nil, fmt.Errorf("decode beats: %w", err)
		}
		return beats, validate(beats)
	}

	var beats []float64
	sc := bufio.NewScanner(bytes.NewReader(data))
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		v, err := strconv.ParseFloat(strings.Fields(line)[0], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		beats = append(beats, v)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return beats, validate(beats)
}

func validate(beats []float64) error {
	for _, b := range beats {
		if b < 0 {
			return fmt.Errorf("negative beat time %g", b)
		}
	}
	return nil
}
