package toolchain

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"testing"

	"github.com/matzehuels/codevideo/pkg/errors"
)

func TestRequireMissing(t *testing.T) {
	err := Require("codevideo-no-such-tool", "install it")
	if !errors.Is(err, errors.ErrCodeExternalTool) {
		t.Fatalf("error = %v, want EXTERNAL_TOOL", err)
	}
	if !strings.Contains(errors.UserMessage(err), "install it") {
		t.Errorf("message %q should carry the hint", errors.UserMessage(err))
	}
}

func TestRun(t *testing.T) {
	if _, err := exec.LookPath("cat"); err != nil {
		t.Skip("cat not available")
	}
	out, err := Run(context.Background(), "cat", []byte("beat"))
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "beat" {
		t.Errorf("out = %q", out)
	}
}

func TestRunFailureCarriesStderr(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	_, err := Run(context.Background(), "sh", nil, "-c", "echo broken >&2; exit 3")
	if !errors.Is(err, errors.ErrCodeExternalTool) {
		t.Fatalf("error = %v, want EXTERNAL_TOOL", err)
	}
	var te *errors.ToolError
	if !errors.As(err, &te) || strings.TrimSpace(te.Stderr) != "broken" {
		t.Errorf("tool error = %+v", te)
	}
}

func TestStream(t *testing.T) {
	if _, err := exec.LookPath("echo"); err != nil {
		t.Skip("echo not available")
	}
	var out bytes.Buffer
	if err := Stream(context.Background(), &out, &out, "echo", "hello"); err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out.String()) != "hello" {
		t.Errorf("out = %q", out.String())
	}
}

func TestStreamEnv(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	var out bytes.Buffer
	err := StreamEnv(context.Background(), []string{"CODEVIDEO_TEST=on"}, &out, &out, "sh", "-c", "echo $CODEVIDEO_TEST")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out.String()) != "on" {
		t.Errorf("out = %q", out.String())
	}
}
