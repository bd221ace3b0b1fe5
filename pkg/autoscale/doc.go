// Package autoscale keeps a scene element scaled to fit a shrinking region
// of the frame as it is repositioned.
//
// An [Element] owns a [Bounds] rectangle, initially the frame inset by the
// object buffer. Each positioning call ([Element.ToEdge], [Element.NextTo],
// [Element.SetX], [Element.SetY], [Element.MoveTo]) first moves the wrapped
// element, then snaps the bounds edge on the anchored side to the element's
// new edge, then rescales the element uniformly about the bounds corner in
// that direction so it fills the bounds in one dimension without exceeding
// them in the other.
//
// [Element.FillBetweenX] carves out a horizontal band, used to narrow code
// to the left two thirds of the frame while a caption occupies the rest.
// [Element.FullSize] undoes every constraint.
//
//	code := autoscale.New(scene.NewCode(m, lines, scene.CodeOptions{}))
//	code.NextTo(title.Box(), geom.Down, geom.DefaultObjectBuff)
//	code.FillBetweenX(-7, 2.4)
//
// The cumulative [Element.ScaleFactor] lets callers build companion
// elements at the same scale as content that was shrunk earlier.
package autoscale
