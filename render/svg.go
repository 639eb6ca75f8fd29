package render

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/pflow-xyz/go-lindenmayer/scene"
)

// SVGRenderer maps scene coordinates onto a fixed canvas and emits
// SVG. The scene's bounds are fitted into the canvas minus a margin,
// preserving aspect ratio. Y grows upward in turtle space and downward
// in SVG, so the vertical axis is flipped.
type SVGRenderer struct {
	Width       float64
	Height      float64
	Margin      float64
	Background  string
	StrokeColor string
	MinStroke   float64
}

// NewSVGRenderer creates a renderer with the given canvas size and
// conventional defaults.
func NewSVGRenderer(width, height float64) *SVGRenderer {
	return &SVGRenderer{
		Width:       width,
		Height:      height,
		Margin:      20,
		Background:  "#ffffff",
		StrokeColor: "#1a1a1a",
		MinStroke:   0.25,
	}
}

// Render emits the full scene as SVG.
func (r *SVGRenderer) Render(s *scene.Scene) string {
	return r.RenderFrame(s, Reveal(s, float64(s.PrimitiveCount())))
}

// RenderFrame emits only the frame's visible primitives, scaled to the
// full scene's bounds so successive frames of an animation share one
// viewport.
func (r *SVGRenderer) RenderFrame(s *scene.Scene, frame Frame) string {
	minX, minY, maxX, maxY, ok := s.Bounds()
	if !ok {
		minX, minY, maxX, maxY = 0, 0, 1, 1
	}
	xrange := maxX - minX
	if xrange == 0 {
		xrange = 1
	}
	yrange := maxY - minY
	if yrange == 0 {
		yrange = 1
	}

	// Uniform scale so the drawing is not distorted.
	scale := math.Min((r.Width-2*r.Margin)/xrange, (r.Height-2*r.Margin)/yrange)
	offsetX := (r.Width - xrange*scale) / 2
	offsetY := (r.Height - yrange*scale) / 2

	sx := func(x float64) float64 { return offsetX + (x-minX)*scale }
	sy := func(y float64) float64 { return r.Height - offsetY - (y-minY)*scale }

	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		int(r.Width), int(r.Height), int(r.Width), int(r.Height)))
	if r.Background != "" {
		sb.WriteString(fmt.Sprintf(`<rect width="%d" height="%d" fill="%s"/>`,
			int(r.Width), int(r.Height), r.Background))
	}

	for _, poly := range frame.FilledPolygons {
		if len(poly.Vertices) == 0 {
			continue
		}
		path := strings.Builder{}
		for i, v := range poly.Vertices {
			if i == 0 {
				path.WriteString(fmt.Sprintf("M%.3f,%.3f", sx(v.X), sy(v.Y)))
			} else {
				path.WriteString(fmt.Sprintf(" L%.3f,%.3f", sx(v.X), sy(v.Y)))
			}
		}
		path.WriteString(" Z")
		fill := poly.Fill
		if fill == "" {
			fill = r.StrokeColor
		}
		sb.WriteString(fmt.Sprintf(`<path d="%s" fill="%s" stroke="none"/>`, path.String(), fill))
	}

	for _, seg := range frame.Segments {
		width := seg.Width * scale
		if width < r.MinStroke {
			width = r.MinStroke
		}
		sb.WriteString(fmt.Sprintf(`<line x1="%.3f" y1="%.3f" x2="%.3f" y2="%.3f" stroke="%s" stroke-width="%.3f" stroke-linecap="round"/>`,
			sx(seg.Start.X), sy(seg.Start.Y), sx(seg.End.X), sy(seg.End.Y), r.StrokeColor, width))
	}

	for _, dot := range frame.Dots {
		radius := dot.Radius * scale
		if radius < r.MinStroke {
			radius = r.MinStroke
		}
		sb.WriteString(fmt.Sprintf(`<circle cx="%.3f" cy="%.3f" r="%.3f" fill="%s"/>`,
			sx(dot.Center.X), sy(dot.Center.Y), radius, r.StrokeColor))
	}

	sb.WriteString(`</svg>`)
	return sb.String()
}

// SaveSVG renders the full scene and writes it to a file.
func (r *SVGRenderer) SaveSVG(s *scene.Scene, filename string) error {
	return os.WriteFile(filename, []byte(r.Render(s)), 0644)
}
