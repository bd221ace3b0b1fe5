package diagram

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/codevideo/pkg/render"
)

// ToDOT converts a box script to Graphviz DOT. Boxes become filled nodes
// with their resolved background colour, groups become clusters and
// connections labelled edges. The result can be rendered with [RenderSVG],
// [RenderPDF] or [RenderPNG].
func (l *Library) ToDOT(s *Script) (string, error) {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	fmt.Fprintf(&buf, "  node [shape=box, style=\"filled\", fontname=%q, fontsize=24, margin=\"0.2,0.1\"];\n", l.TextFont)
	fmt.Fprintf(&buf, "  edge [fontname=%q, fontsize=18];\n", l.TextFont)
	if s.Title != "" {
		fmt.Fprintf(&buf, "  label=%q;\n", s.Title)
	}
	buf.WriteString("\n")

	for _, b := range s.Boxes {
		attrs, err := l.dotAttrs(b)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", b.ID, strings.Join(attrs, ", "))
	}

	for i, g := range s.Groups {
		fmt.Fprintf(&buf, "\n  subgraph cluster_%d {\n", i)
		if g.Title != "" {
			fmt.Fprintf(&buf, "    label=%q;\n", g.Title)
		}
		for _, id := range g.Boxes {
			fmt.Fprintf(&buf, "    %q;\n", id)
		}
		buf.WriteString("  }\n")
	}

	buf.WriteString("\n")
	for _, c := range s.Connections {
		if c.Label != "" {
			fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", c.From, c.To, c.Label)
		} else {
			fmt.Fprintf(&buf, "  %q -> %q;\n", c.From, c.To)
		}
	}

	buf.WriteString("}\n")
	return buf.String(), nil
}

func (l *Library) dotAttrs(b BoxSpec) ([]string, error) {
	text := b.Text
	if text == "" {
		text = b.ID
	}
	bg := b.Background
	if bg == "" {
		bg = RandomColor
		if b.Note {
			bg = "#FFFFFFFF"
		}
	}
	colour, opacity, err := ParseColor(bg, text, l.Palette)
	if err != nil {
		return nil, err
	}
	alpha := int(math.Round(opacity * 255))
	attrs := []string{
		fmt.Sprintf("label=%q", text),
		fmt.Sprintf("fillcolor=\"%s%02X\"", colour, alpha),
	}
	if b.Note {
		attrs = append(attrs, "shape=note", "fontcolor=black")
	} else if b.Rounded {
		attrs = append(attrs, "style=\"rounded,filled\"")
	}
	if opacity < 0.5 {
		attrs = append(attrs, "color=white", "fontcolor=white")
	}
	return attrs, nil
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root tag so the drawing starts at the
// origin and carries explicit pixel dimensions.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}
	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}
	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`, w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
// Requires librsvg.
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion at the given
// scale. Requires librsvg.
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(ctx, svg, scale)
}
