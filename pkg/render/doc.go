// Package render plays scenes on a logical clock and draws their frames.
//
// # Recording
//
// [Recorder] implements anim.Player without producing video: each played
// batch and each wait advances a logical clock and is recorded as a
// [Segment], the unit the animation renderer would write as one partial
// movie file. Slide checkpoints refer to segment indices.
//
//	rec := render.NewRecorder(render.WithSnapshots())
//	_ = rec.Play(ctx, anim.Create(code))
//	_ = rec.Wait(ctx, 1)
//	rec.Time() // 2
//
// # Drawing
//
// [RenderSVG] and [RenderPNG] draw a scene element, usually the recorder's
// root group or a segment snapshot, into a [Viewport] that maps the scene
// frame onto pixels. PNG output is drawn with gg and the embedded Go fonts;
// [RenderPDF] converts the SVG with rsvg-convert.
//
//	svg := render.RenderSVG(rec.Scene(), render.WithBackground("#1E1E1E"))
//	png, err := render.RenderPNG(rec.Scene(), render.WithPNGViewport(vp))
//	pdf, err := render.RenderPDF(ctx, rec.Scene())
package render
