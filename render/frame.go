// Package render turns a scene into drawable output: a progressive
// frame gated by a progress counter, and an SVG backend.
package render

import (
	"math"

	"github.com/pflow-xyz/go-lindenmayer/scene"
)

// Frame is the visible subset of a scene at a given progress value.
// Open polygons never appear; only segments, dots and filled polygons
// are renderable.
type Frame struct {
	Segments       []scene.Segment
	Dots           []scene.Dot
	FilledPolygons []scene.FilledPolygon
	Progress       float64
	Total          int
}

// Reveal computes the frame for the given progress. A primitive with
// 0-based ordinal i in its collection is visible iff i < progress.
// Visibility is recomputed from scratch every call, so Reveal is
// idempotent for a fixed progress value: progress <= 0 reveals
// nothing, progress >= the scene's primitive count reveals everything.
func Reveal(s *scene.Scene, progress float64) Frame {
	visible := func(length int) int {
		if progress <= 0 {
			return 0
		}
		n := int(math.Floor(progress))
		if progress > math.Floor(progress) {
			// A fractional progress of e.g. 2.5 shows ordinals 0..2.
			n++
		}
		if n > length {
			n = length
		}
		return n
	}

	return Frame{
		Segments:       s.Segments[:visible(len(s.Segments))],
		Dots:           s.Dots[:visible(len(s.Dots))],
		FilledPolygons: s.FilledPolygons[:visible(len(s.FilledPolygons))],
		Progress:       progress,
		Total:          s.PrimitiveCount(),
	}
}

// Complete reports whether every primitive is revealed.
func (f Frame) Complete() bool {
	return f.Progress >= float64(f.Total)
}
