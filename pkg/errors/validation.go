package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateLineRange validates a 1-based inclusive line range.
// An end of 0 means "to the last line" and is always accepted.
func ValidateLineRange(start, end int) error {
	if start < 1 {
		return New(ErrCodeInvalidInput, "start line must be >= 1, got %d", start)
	}
	if end != 0 && end < start {
		return New(ErrCodeInvalidInput, "end line %d is before start line %d", end, start)
	}
	return nil
}

// extensionRegex matches a bare file extension such as "py" or "cpp".
var extensionRegex = regexp.MustCompile(`^[A-Za-z0-9_+-]{1,16}$`)

// ValidateExtension validates a bare file extension (no leading dot).
func ValidateExtension(ext string) error {
	if ext == "" {
		return New(ErrCodeInvalidInput, "extension cannot be empty")
	}
	if !extensionRegex.MatchString(ext) {
		return New(ErrCodeInvalidInput, "invalid extension: %q", ext)
	}
	return nil
}

// ValidatePath validates a user supplied output or input path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 1024 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 1024
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}
	return nil
}

// ValidateCommand validates the name of an external executable from configuration.
// Shell metacharacters are rejected because commands are never run through a shell.
func ValidateCommand(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidConfig, "command cannot be empty")
	}
	if strings.ContainsAny(name, ";|&$`<>\n") {
		return New(ErrCodeInvalidConfig, "command contains shell metacharacters: %q", name)
	}
	return nil
}
