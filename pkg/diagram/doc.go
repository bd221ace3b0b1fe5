// Package diagram builds box-and-arrow diagrams on top of the scene graph.
//
// A [Library] carries the label font, the text [scene.Measurer] and the
// colour palette. It produces:
//
//   - [Library.TextBox]: a label on a filled rectangle with a drop shadow
//   - [Library.NoteBox]: a label on a note with a folded corner
//   - [Library.BorderedGroup]: a titled frame around other elements
//   - [Library.Connect]: a labelled arrow between two elements
//
// Box backgrounds accept "#RRGGBB", "#RRGGBBAA" or "random", which picks a
// palette colour from a hash of the label so the same label always gets
// the same colour. See [ParseColor].
//
// # Scripts
//
// [Script] is a TOML description of a whole diagram. [Library.Build] lays it
// out as a [Sheet] of scene elements; [Library.ToDOT] exports it as a
// Graphviz graph that [RenderSVG] renders without the animation toolchain:
//
//	s, err := diagram.LoadScript("boxes.toml")
//	dot, err := lib.ToDOT(s)
//	svg, err := diagram.RenderSVG(ctx, dot)
package diagram
