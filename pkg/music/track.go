package music

import (
	"slices"

	"github.com/matzehuels/codevideo/pkg/errors"
)

// Track is the beat grid of an audio file. All times are seconds from the
// start of the audio.
type Track struct {
	Path     string
	Beats    []float64 // Beat times, starting at 0
	OffBeats []float64 // Midpoints of consecutive beats
	Measures []float64 // Every second off-beat
}

// NewTrack builds the beat grid from detected beats. A beat at time 0 is
// added when missing and the beats are sorted.
func NewTrack(path string, beats []float64) *Track {
	times := slices.Clone(beats)
	slices.Sort(times)
	if len(times) == 0 || times[0] != 0 {
		times = append([]float64{0}, times...)
	}

	t := &Track{Path: path, Beats: times}
	for i := 0; i+1 < len(times); i++ {
		t.OffBeats = append(t.OffBeats, (times[i]+times[i+1])/2)
	}
	for i := 0; i < len(t.OffBeats); i += 2 {
		t.Measures = append(t.Measures, t.OffBeats[i])
	}
	return t
}

// NextBeat returns the first beat at or after at. Past the last beat it
// fails with NO_MORE_MUSIC.
func (t *Track) NextBeat(at float64) (float64, error) {
	for _, b := range t.Beats {
		if b >= at {
			return b, nil
		}
	}
	return 0, errors.New(errors.ErrCodeNoMoreMusic, "no beat after %.2fs in %s", at, t.Path)
}

// NextMeasure returns the first measure at or after at, or at itself past
// the last measure.
func (t *Track) NextMeasure(at float64) float64 {
	for _, m := range t.Measures {
		if m >= at {
			return m
		}
	}
	return at
}

// Length returns the time of the last beat.
func (t *Track) Length() float64 { return t.Beats[len(t.Beats)-1] }
