// Package scene holds the geometric output of one turtle
// interpretation pass: line segments, dots, open polygon outlines and
// filled polygons, all append-only and recorded in draw order.
package scene

import "math"

// Point is a 2D position.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Segment is one drawn line from Start to End with a stroke width.
type Segment struct {
	Start Point   `json:"start"`
	End   Point   `json:"end"`
	Width float64 `json:"width"`
}

// Dot is a filled circle at Center.
type Dot struct {
	Center Point   `json:"center"`
	Radius float64 `json:"radius"`
}

// Polygon is an open (in-progress) polygon outline.
type Polygon struct {
	Vertices []Point `json:"vertices"`
}

// FilledPolygon is a finalized polygon with its fill color.
type FilledPolygon struct {
	Vertices []Point `json:"vertices"`
	Fill     string  `json:"fill"`
}

// Scene accumulates the primitives of a single interpretation pass.
// Collections are append-only within a pass; a new pass replaces the
// whole Scene rather than patching it.
type Scene struct {
	Segments       []Segment       `json:"segments"`
	Dots           []Dot           `json:"dots"`
	Polygons       []Polygon       `json:"polygons"`
	FilledPolygons []FilledPolygon `json:"filledPolygons"`
}

// New creates an empty scene.
func New() *Scene {
	return &Scene{}
}

// AddSegment appends a drawn line.
func (s *Scene) AddSegment(start, end Point, width float64) {
	s.Segments = append(s.Segments, Segment{Start: start, End: end, Width: width})
}

// AddDot appends a dot.
func (s *Scene) AddDot(center Point, radius float64) {
	s.Dots = append(s.Dots, Dot{Center: center, Radius: radius})
}

// OpenPolygon pushes a new empty polygon to the front of the open
// polygon collection. The front polygon is the one moves extend.
func (s *Scene) OpenPolygon() {
	s.Polygons = append([]Polygon{{}}, s.Polygons...)
}

// ExtendPolygon appends a vertex to the most recently opened polygon.
// No-op when no polygon is open.
func (s *Scene) ExtendPolygon(p Point) {
	if len(s.Polygons) == 0 {
		return
	}
	s.Polygons[0].Vertices = append(s.Polygons[0].Vertices, p)
}

// ClosePolygon pops the front open polygon and records it as a filled
// polygon with the given fill color. No-op when none is open.
func (s *Scene) ClosePolygon(fill string) {
	if len(s.Polygons) == 0 {
		return
	}
	closed := s.Polygons[0]
	s.Polygons = s.Polygons[1:]
	s.FilledPolygons = append(s.FilledPolygons, FilledPolygon{
		Vertices: closed.Vertices,
		Fill:     fill,
	})
}

// PrimitiveCount returns the reveal bound for progressive rendering:
// the largest of the renderable collection lengths. Open polygons are
// not renderable and do not count.
func (s *Scene) PrimitiveCount() int {
	n := len(s.Segments)
	if len(s.Dots) > n {
		n = len(s.Dots)
	}
	if len(s.FilledPolygons) > n {
		n = len(s.FilledPolygons)
	}
	return n
}

// Empty reports whether the scene has no renderable primitives.
func (s *Scene) Empty() bool {
	return s.PrimitiveCount() == 0
}

// Bounds returns the axis-aligned extents of every renderable
// primitive. ok is false for an empty scene.
func (s *Scene) Bounds() (minX, minY, maxX, maxY float64, ok bool) {
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)

	grow := func(p Point) {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
		ok = true
	}

	for _, seg := range s.Segments {
		grow(seg.Start)
		grow(seg.End)
	}
	for _, dot := range s.Dots {
		grow(Point{X: dot.Center.X - dot.Radius, Y: dot.Center.Y - dot.Radius})
		grow(Point{X: dot.Center.X + dot.Radius, Y: dot.Center.Y + dot.Radius})
	}
	for _, poly := range s.FilledPolygons {
		for _, v := range poly.Vertices {
			grow(v)
		}
	}
	return minX, minY, maxX, maxY, ok
}
