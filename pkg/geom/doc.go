// Package geom provides the scene coordinate system shared by every layout
// component.
//
// Coordinates follow the animation renderer's convention: the origin is the
// frame center, X grows to the right and Y grows upwards. A [Rect] is an
// axis-aligned bounding box; a direction is a [Vec] whose components are -1, 0
// or 1 ([Up], [DL], [Origin], ...).
//
// # Critical Points
//
// Most placement operations are expressed through [Rect.CriticalPoint]. For
// each axis a negative direction component selects the minimum edge, a
// positive one the maximum edge and zero the center:
//
//	r := geom.Rect{Left: 0, Right: 4, Bottom: 0, Top: 2}
//	r.CriticalPoint(geom.UL)     // (0, 2)
//	r.CriticalPoint(geom.Right)  // (4, 1)
//	r.CriticalPoint(geom.Origin) // (2, 1)
//
// # Frame
//
// [Frame] describes the fixed viewport. [DefaultFrame] is a 16:9 frame eight
// units tall, matching the renderer's default camera.
package geom
