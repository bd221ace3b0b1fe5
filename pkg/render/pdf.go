package render

import (
	"context"

	"github.com/matzehuels/codevideo/pkg/scene"
)

// RenderPDF draws root as SVG and converts it to PDF. Requires librsvg.
func RenderPDF(ctx context.Context, root scene.Element, opts ...SVGOption) ([]byte, error) {
	return ToPDF(ctx, RenderSVG(root, opts...))
}
