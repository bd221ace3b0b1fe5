package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info level", log.InfoLevel, func(l *log.Logger) { l.Info("test") }, true},
		{"debug at info level", log.InfoLevel, func(l *log.Logger) { l.Debug("test") }, false},
		{"debug at debug level", log.DebugLevel, func(l *log.Logger) { l.Debug("test") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))
			if got := buf.Len() > 0; got != tt.wantLog {
				t.Errorf("got log output = %v, want %v", got, tt.wantLog)
			}
		})
	}
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, log.InfoLevel))
	time.Sleep(5 * time.Millisecond)
	prog.done("Rendered 3 frames")

	if !strings.Contains(buf.String(), "Rendered 3 frames (") {
		t.Errorf("output = %q, want message with elapsed time", buf.String())
	}
}

func TestLoggerContext(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("loggerFromContext should fall back to log.Default()")
	}
	var buf bytes.Buffer
	custom := newLogger(&buf, log.InfoLevel)
	if loggerFromContext(withLogger(context.Background(), custom)) != custom {
		t.Error("loggerFromContext should return the attached logger")
	}
}

func TestLogHooks(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	h := logHooks{newLogger(&buf, log.DebugLevel)}

	h.OnPlay(ctx, []string{"create", "fade_in"}, 1, 2)
	h.OnWait(ctx, 3, 1)
	h.OnCheckpoint(ctx, 4)
	h.OnToolStart(ctx, "ffmpeg", []string{"-i", "a.mp3"})
	h.OnToolComplete(ctx, "ffmpeg", time.Second, errors.New("exit status 1"))
	h.OnCacheHit(ctx, "beats:abc")

	out := buf.String()
	for _, want := range []string{"create,fade_in", "checkpoint", "-i a.mp3", "tool failed", "beats:abc"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	quiet := logHooks{newLogger(&buf, log.InfoLevel)}
	quiet.OnWait(ctx, 0, 1)
	if buf.Len() != 0 {
		t.Error("hooks should only log at debug level")
	}
}
