// Package scene provides the bounding-box scene graph used by the layout,
// highlight and diagram packages.
//
// # Overview
//
// Every visual node implements [Element]: it reports an axis-aligned bounding
// box and can be shifted, scaled about a point and cloned. Concrete nodes are
// [Shape] (rectangles, polygons, lines and arrows), [Text], [Image], [Code]
// (syntax-coloured lines with line numbers) and [Group].
//
// Coordinates are scene units with the origin at the frame center and Y
// pointing up, see [geom.Frame].
//
// # Positioning
//
// The free functions [NextTo], [ToEdge], [SetX], [SetY], [MoveTo], [AlignTo]
// and [Center] move any Element by translating it. They never scale; scaling
// to fit a region is the job of the autoscale package.
//
//	title := scene.NewText(m, "main.go", scene.TextStyle{})
//	scene.ToEdge(title, geom.DefaultFrame(), geom.Up, geom.DefaultEdgeBuff)
//
// # Text metrics
//
// Text geometry comes from a [Measurer]. [MonoMeasurer] is a deterministic
// fixed-advance implementation; the fonts package provides one backed by real
// font metrics.
package scene
