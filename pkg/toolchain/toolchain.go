// Package toolchain runs the external media tools codevideo delegates to:
// the animation renderer, ffmpeg, rsvg-convert and beat detectors.
//
// Every run reports to [observability.Tool] and turns failures into
// EXTERNAL_TOOL errors carrying the tool's stderr:
//
//	out, err := toolchain.Run(ctx, "rsvg-convert", svg, "-f", "pdf")
//	if errors.Is(err, errors.ErrCodeExternalTool) {
//	    // rsvg-convert missing or failed
//	}
package toolchain

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/matzehuels/codevideo/pkg/errors"
	"github.com/matzehuels/codevideo/pkg/observability"
)

// Require fails with EXTERNAL_TOOL when name is not on PATH. hint is
// appended to the message, typically install instructions.
func Require(name, hint string) error {
	if _, err := exec.LookPath(name); err != nil {
		if hint != "" {
			return errors.Wrap(errors.ErrCodeExternalTool, err, "%s not found in PATH. %s", name, hint)
		}
		return errors.Wrap(errors.ErrCodeExternalTool, err, "%s not found in PATH", name)
	}
	return nil
}

// Run executes name with args, feeding stdin when non-nil, and returns its
// standard output.
func Run(ctx context.Context, name string, stdin []byte, args ...string) ([]byte, error) {
	if err := Require(name, ""); err != nil {
		return nil, err
	}
	cmd := exec.CommandContext(ctx, name, args...)
	if stdin != nil {
		cmd.Stdin = bytes.NewReader(stdin)
	}
	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := run(ctx, cmd, name, args); err != nil {
		return nil, errors.Tool(name, stderr.String(), err)
	}
	return out.Bytes(), nil
}

// Stream executes name with args, copying its output to stdout and stderr
// as it runs.
func Stream(ctx context.Context, stdout, stderr io.Writer, name string, args ...string) error {
	return StreamEnv(ctx, nil, stdout, stderr, name, args...)
}

// StreamEnv is Stream with env, in "KEY=value" form, added to the
// inherited environment.
func StreamEnv(ctx context.Context, env []string, stdout, stderr io.Writer, name string, args ...string) error {
	if err := Require(name, ""); err != nil {
		return err
	}
	cmd := exec.CommandContext(ctx, name, args...)
	if len(env) > 0 {
		cmd.Env = append(os.Environ(), env...)
	}
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	if err := run(ctx, cmd, name, args); err != nil {
		return errors.Tool(name, "", err)
	}
	return nil
}

func run(ctx context.Context, cmd *exec.Cmd, name string, args []string) error {
	hooks := observability.Tool()
	hooks.OnToolStart(ctx, name, args)
	start := time.Now()
	err := cmd.Run()
	hooks.OnToolComplete(ctx, name, time.Since(start), err)
	return err
}
