// Package slides splits a rendered walkthrough into one clip per slide.
//
// A scene rendered in slides mode records a checkpoint instead of pausing.
// The renderer writes a [Manifest] listing its partial movie files, the
// checkpoint indices and the final movie path. [Group] cuts the partial
// files into slides, each ending at a checkpoint, and [Builder] joins the
// files of every slide into "<movie>-<n>.mp4" with ffmpeg's concat demuxer:
//
//	m, err := slides.LoadManifest("scene.slides.json")
//	b := slides.Builder{FFmpeg: "ffmpeg"}
//	clips, err := b.Build(ctx, m)
//
// The clips are recorded back into the manifest so a player can step
// through them.
package slides
