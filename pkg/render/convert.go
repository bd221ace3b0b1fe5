package render

import (
	"context"
	"fmt"

	"github.com/matzehuels/codevideo/pkg/toolchain"
)

const rsvgHint = "Install librsvg:\n  macOS:  brew install librsvg\n  Linux:  apt install librsvg2-bin"

// ToPDF converts SVG bytes to PDF using rsvg-convert.
func ToPDF(ctx context.Context, svg []byte) ([]byte, error) {
	return rsvgConvert(ctx, svg, "pdf")
}

// ToPNG converts SVG bytes to PNG using rsvg-convert. A scale of 2
// doubles the resolution.
func ToPNG(ctx context.Context, svg []byte, scale float64) ([]byte, error) {
	return rsvgConvert(ctx, svg, "png", "-z", fmt.Sprintf("%.2f", scale))
}

func rsvgConvert(ctx context.Context, svg []byte, format string, extra ...string) ([]byte, error) {
	if err := toolchain.Require("rsvg-convert", rsvgHint); err != nil {
		return nil, err
	}
	return toolchain.Run(ctx, "rsvg-convert", svg, append([]string{"-f", format}, extra...)...)
}
