package comments

import (
	"path/filepath"

	"github.com/alecthomas/chroma/lexers"

	"github.com/matzehuels/codevideo/pkg/errors"
)

// Comment markers.
const (
	HashMarker  = "#"
	SlashMarker = "//"
)

// slashLexers lists lexer names whose line comments start with "//".
var slashLexers = map[string]bool{
	"C":          true,
	"C++":        true,
	"C#":         true,
	"Dart":       true,
	"Go":         true,
	"Java":       true,
	"JavaScript": true,
	"Kotlin":     true,
	"Rust":       true,
	"Scala":      true,
	"Swift":      true,
	"TypeScript": true,
}

// Family is the comment family resolved for a file.
type Family struct {
	Lexer  string // Lexer name reported by chroma (e.g. "Python")
	Marker string // Line comment marker
}

// FamilyFor resolves the comment family of path from its file name.
// It fails with UNSUPPORTED_FILE_TYPE when no lexer is registered for it.
func FamilyFor(path string) (Family, error) {
	l := lexers.Match(filepath.Base(path))
	if l == nil {
		return Family{}, errors.New(errors.ErrCodeUnsupportedFileType, "no lexer registered for %s", filepath.Base(path))
	}
	name := l.Config().Name
	if slashLexers[name] {
		return Family{Lexer: name, Marker: SlashMarker}, nil
	}
	return Family{Lexer: name, Marker: HashMarker}, nil
}

// MarkerFor is a shorthand for FamilyFor(path).Marker.
func MarkerFor(path string) (string, error) {
	fam, err := FamilyFor(path)
	if err != nil {
		return "", err
	}
	return fam.Marker, nil
}
