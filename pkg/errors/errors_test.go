package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNewAndWrap(t *testing.T) {
	err := New(ErrCodeDanglingTerminator, "line %d: %q without a preceding comment", 4, "# end")
	if err.Code != ErrCodeDanglingTerminator {
		t.Errorf("Code = %v", err.Code)
	}
	if want := `DANGLING_TERMINATOR: line 4: "# end" without a preceding comment`; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	cause := errors.New("exit status 1")
	wrapped := Wrap(ErrCodeExternalTool, cause, "ffmpeg concat")
	if want := "EXTERNAL_TOOL: ffmpeg concat: exit status 1"; wrapped.Error() != want {
		t.Errorf("Error() = %q, want %q", wrapped.Error(), want)
	}
	if errors.Unwrap(wrapped) != cause || !errors.Is(wrapped, cause) {
		t.Error("the cause should be reachable through Unwrap")
	}
}

func TestCodes(t *testing.T) {
	nested := fmt.Errorf("parse demo.py: %w", New(ErrCodeUnsupportedFileType, "no lexer for demo.xyz"))

	tests := []struct {
		name    string
		err     error
		code    Code
		message string
	}{
		{"direct", New(ErrCodeNoMoreMusic, "no beat after 12.5s"), ErrCodeNoMoreMusic, "no beat after 12.5s"},
		{"fmt wrapped", nested, ErrCodeUnsupportedFileType, "no lexer for demo.xyz"},
		{"outer code wins", Wrap(ErrCodeInvalidConfig, New(ErrCodeInvalidColor, "teal"), "codevideo.toml"), ErrCodeInvalidConfig, "codevideo.toml"},
		{"plain", errors.New("plain"), "", "plain"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.code {
				t.Errorf("GetCode() = %q, want %q", got, tt.code)
			}
			if tt.code != "" && !Is(tt.err, tt.code) {
				t.Errorf("Is(%q) = false", tt.code)
			}
			if Is(tt.err, ErrCodeAmbiguousConnection) {
				t.Error("Is should not match an unrelated code")
			}
			if got := UserMessage(tt.err); got != tt.message {
				t.Errorf("UserMessage() = %q, want %q", got, tt.message)
			}
		})
	}

	if Is(nil, ErrCodeInvalidInput) || GetCode(nil) != "" {
		t.Error("nil carries no code")
	}
}

func TestToolError(t *testing.T) {
	tests := []struct {
		name string
		err  *ToolError
		want string
	}{
		{"with stderr", &ToolError{Tool: "ffmpeg", Stderr: "no such file", Err: errors.New("exit status 1")}, "ffmpeg: exit status 1: no such file"},
		{"without stderr", &ToolError{Tool: "rsvg-convert", Err: errors.New("not found")}, "rsvg-convert: not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
			if tt.err.Code() != ErrCodeExternalTool {
				t.Errorf("Code() = %v", tt.err.Code())
			}
		})
	}

	err := Tool("ffplay", "bad input", errors.New("exit status 1"))
	if !Is(err, ErrCodeExternalTool) {
		t.Errorf("Tool() code = %v", GetCode(err))
	}
	var te *ToolError
	if !As(err, &te) || te.Stderr != "bad input" || te.Tool != "ffplay" {
		t.Errorf("As(ToolError) = %+v", te)
	}
}
