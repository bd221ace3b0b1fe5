package slides

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/matzehuels/codevideo/pkg/errors"
)

// ManifestEnv names the environment variable through which the render
// command is told where to write its manifest.
const ManifestEnv = "CODEVIDEO_SLIDES_MANIFEST"

// Manifest describes a scene rendered in slides mode.
type Manifest struct {
	// Session identifies the render run.
	Session string `json:"session"`
	// Movie is the path of the full movie.
	Movie string `json:"movie"`
	// Segments are the partial movie files in play order. Segments that
	// produced no file are empty.
	Segments []string `json:"segments"`
	// Stops are the checkpoint indices into the non-empty segments.
	Stops []int `json:"stops"`
	// Clips are the per-slide files, filled in by Builder.
	Clips []string `json:"clips,omitempty"`
}

// NewManifest returns a manifest for movie with a fresh session id.
func NewManifest(movie string) *Manifest {
	return &Manifest{Session: uuid.NewString(), Movie: movie}
}

// LoadManifest reads a manifest written by Save.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "slides manifest %s", path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode slides manifest %s", path)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks that the manifest names a movie and that every stop
// indexes a non-empty segment.
func (m *Manifest) Validate() error {
	if m.Movie == "" {
		return errors.New(errors.ErrCodeInvalidInput, "slides manifest has no movie")
	}
	n := 0
	for _, s := range m.Segments {
		if s != "" {
			n++
		}
	}
	for _, s := range m.Stops {
		if s < 0 || s >= n {
			return errors.New(errors.ErrCodeInvalidInput, "checkpoint %d outside %d segments", s, n)
		}
	}
	return nil
}

// Save writes the manifest as indented JSON.
func (m *Manifest) Save(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Slides returns the segments of each slide.
func (m *Manifest) Slides() [][]string { return Group(m.Segments, m.Stops) }
