// Package music aligns scene waits to the beats of a background track.
//
// A [Track] holds the beat times of an audio file. Off-beats are the
// midpoints between consecutive beats and measures are every second
// off-beat, so waits snapped to a measure land between beats rather than on
// them:
//
//	loader := &music.Loader{Command: []string{"aubio", "beat"}}
//	track, err := loader.Load(ctx, "intro.mp3")
//	at, err := track.NextBeat(clock + 1.5)
//
// Beat times come from a sidecar file next to the audio ("intro.mp3.beats",
// one time in seconds per line) or from an external beat detector command
// whose output has the same format. Detector results are cached by audio
// content.
//
// [FitAudio] trims a track to the length of a scene and fades out its last
// second using ffmpeg.
package music
