// Package walkthrough animates annotated source files.
//
// A [Scene] drives a [Renderer] (the render package's Recorder, or any
// player with a clock) through the steps of a code walkthrough: show the
// file under a title, step through its comment captions highlighting the
// lines each one describes, and restore the code at the end.
//
//	rec := render.NewRecorder()
//	s := walkthrough.New(rec, walkthrough.WithMusic(track))
//	code, err := s.AnimateCodeComments(ctx, "main.py", walkthrough.CommentOptions{})
//	res, err := s.TearDown(ctx)
//
// Waits can be snapped to the beats or measures of a background track.
// In slides mode waits do not advance the clock; they record a checkpoint
// after the latest segment instead, and the checkpoints become slide
// boundaries.
package walkthrough
