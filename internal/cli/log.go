// Logging for the codevideo CLI.
//
// Every command logs through one charmbracelet logger writing to stderr at
// info level, or debug with --verbose (-v). The logger travels in the
// command context and is also registered as the observability hooks, so
// scene segments, external tool runs and cache lookups show up as debug
// lines.
package cli

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created,
// e.g. "Rendered 12 frames (1.234s)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default() when
// none is attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// logHooks reports observability events as debug log lines.
type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnPlay(_ context.Context, labels []string, at, duration float64) {
	h.logger.Debug("segment", "at", at, "duration", duration, "play", strings.Join(labels, ","))
}

func (h logHooks) OnWait(_ context.Context, at, duration float64) {
	h.logger.Debug("segment", "at", at, "duration", duration, "wait", true)
}

func (h logHooks) OnCheckpoint(_ context.Context, index int) {
	h.logger.Debug("checkpoint", "segment", index)
}

func (h logHooks) OnToolStart(_ context.Context, tool string, args []string) {
	h.logger.Debug("running", "tool", tool, "args", strings.Join(args, " "))
}

func (h logHooks) OnToolComplete(_ context.Context, tool string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("tool failed", "tool", tool, "elapsed", d.Round(time.Millisecond), "err", err)
		return
	}
	h.logger.Debug("tool finished", "tool", tool, "elapsed", d.Round(time.Millisecond))
}

func (h logHooks) OnCacheHit(_ context.Context, key string) {
	h.logger.Debug("cache hit", "key", key)
}

func (h logHooks) OnCacheMiss(_ context.Context, key string) {
	h.logger.Debug("cache miss", "key", key)
}

func (h logHooks) OnCacheSet(_ context.Context, key string, size int) {
	h.logger.Debug("cache set", "key", key, "bytes", size)
}
