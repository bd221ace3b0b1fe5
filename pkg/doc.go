// Package pkg provides the libraries behind codevideo, a toolkit for code
// walkthrough videos.
//
// # Overview
//
// A walkthrough shows a source file, highlights line ranges while a caption
// explains them, and mixes in box diagrams and sequence diagrams, optionally
// timed to the beats of background music. The pkg directory is organized
// into three areas:
//
//  1. Layout - geometry, scene elements and the autoscale engine
//  2. Content - comment parsing, highlight transitions and diagrams
//  3. Output - recording, storyboard sinks, slides and music
//
// # Data Flow
//
//	annotated source file
//	         ↓
//	[comments] → code lines + caption ranges
//	         ↓
//	[walkthrough] → [highlight] transitions → [anim] batches
//	         ↓
//	Renderer ([render].Recorder or an external animation renderer)
//	         ↓
//	storyboard frames, timeline, [slides] clips
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/codevideo/pkg/fonts"
//	    "github.com/matzehuels/codevideo/pkg/render"
//	    "github.com/matzehuels/codevideo/pkg/walkthrough"
//	)
//
//	rec := render.NewRecorder(render.WithSnapshots())
//	s := walkthrough.New(rec, walkthrough.WithMeasurer(fonts.NewMeasurer()))
//	_, err := s.AnimateCodeComments(ctx, "main.go", walkthrough.CommentOptions{Title: "main.go"})
//	svg := render.RenderSVG(rec.Scene())
//
// # Layout
//
// [geom] - Points, directions, rectangles and the frame with its standard
// buffers.
//
// [scene] - Bounding-box scene graph: shapes, text, code blocks, groups and
// the positioning helpers (NextTo, ToEdge, SetX, SetY, AlignTo).
//
// [autoscale] - Wraps an element so every repositioning rescales it to fit
// its remaining bounds.
//
// [layout] - Equal-width frame columns.
//
// # Content
//
// [comments] - Extracts code lines and caption ranges from comment markers,
// with the comment syntax taken from the chroma lexer for the file.
//
// [highlight] - Pure transitions between highlighted states of a code block.
//
// [diagram] - Text boxes, note boxes, bordered groups, connections and TOML
// box scripts, with Graphviz export.
//
// [sequence] - Actors, interactions and scoped DSL for sequence diagrams.
//
// [anim] - Animation descriptions handed to renderers.
//
// # Output
//
// [walkthrough] - The code scene: waits, beat-synced waits, code comment
// animation, backgrounds and teardown.
//
// [render] - Recorder with a logical clock, SVG and PNG sinks and PDF
// conversion.
//
// [music] - Beat grids, beat detection and audio fitting.
//
// [slides] - Groups partial movie files into per-checkpoint clips.
//
// # Infrastructure
//
// [config] - TOML configuration. [cache] - File cache for beat grids.
// [observability] - Hooks for scene, tool and cache events. [errors] -
// Structured error codes. [toolchain] - External command execution.
// [fonts] - Embedded Go fonts and text metrics. [buildinfo] - Version
// information.
//
// [geom]: https://pkg.go.dev/github.com/matzehuels/codevideo/pkg/geom
// [scene]: https://pkg.go.dev/github.com/matzehuels/codevideo/pkg/scene
// [autoscale]: https://pkg.go.dev/github.com/matzehuels/codevideo/pkg/autoscale
// [layout]: https://pkg.go.dev/github.com/matzehuels/codevideo/pkg/layout
// [comments]: https://pkg.go.dev/github.com/matzehuels/codevideo/pkg/comments
// [highlight]: https://pkg.go.dev/github.com/matzehuels/codevideo/pkg/highlight
// [diagram]: https://pkg.go.dev/github.com/matzehuels/codevideo/pkg/diagram
// [sequence]: https://pkg.go.dev/github.com/matzehuels/codevideo/pkg/sequence
// [anim]: https://pkg.go.dev/github.com/matzehuels/codevideo/pkg/anim
// [walkthrough]: https://pkg.go.dev/github.com/matzehuels/codevideo/pkg/walkthrough
// [render]: https://pkg.go.dev/github.com/matzehuels/codevideo/pkg/render
// [music]: https://pkg.go.dev/github.com/matzehuels/codevideo/pkg/music
// [slides]: https://pkg.go.dev/github.com/matzehuels/codevideo/pkg/slides
// [config]: https://pkg.go.dev/github.com/matzehuels/codevideo/pkg/config
// [cache]: https://pkg.go.dev/github.com/matzehuels/codevideo/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/codevideo/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/codevideo/pkg/errors
// [toolchain]: https://pkg.go.dev/github.com/matzehuels/codevideo/pkg/toolchain
// [fonts]: https://pkg.go.dev/github.com/matzehuels/codevideo/pkg/fonts
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/codevideo/pkg/buildinfo
package pkg
