package turtle

import (
	"math"
	"testing"

	"github.com/pflow-xyz/go-lindenmayer/lsystem"
	"github.com/pflow-xyz/go-lindenmayer/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const epsilon = 1e-9

func interpretText(t *testing.T, text string, mapping Mapping, params Params) *scene.Scene {
	t.Helper()
	return Interpret(lsystem.ParseSequence(text), mapping, params)
}

func unitParams() Params {
	p := DefaultParams()
	p.StepSize = 1
	p.TurningAngle = 60
	p.StartAngle = 0
	return p
}

func TestInterpretKochIteration(t *testing.T) {
	// One Koch iteration: F+F--F+F at 60 degrees, step 1, from the
	// origin heading 0.
	sc := interpretText(t, "F+F--F+F", DefaultMapping(), unitParams())

	require.Len(t, sc.Segments, 4)

	sqrt3half := math.Sqrt(3) / 2
	wantEnds := []scene.Point{
		{X: 1, Y: 0},
		{X: 1.5, Y: sqrt3half},
		{X: 2, Y: 0},
		{X: 3, Y: 0},
	}
	for i, want := range wantEnds {
		assert.InDelta(t, want.X, sc.Segments[i].End.X, epsilon, "segment %d end X", i)
		assert.InDelta(t, want.Y, sc.Segments[i].End.Y, epsilon, "segment %d end Y", i)
	}

	// Segments chain: each starts where the previous ended.
	for i := 1; i < len(sc.Segments); i++ {
		assert.InDelta(t, sc.Segments[i-1].End.X, sc.Segments[i].Start.X, epsilon)
		assert.InDelta(t, sc.Segments[i-1].End.Y, sc.Segments[i].Start.Y, epsilon)
	}
}

func TestInterpretInertSymbolsProduceEmptyScene(t *testing.T) {
	// X maps to NoAction; unknown symbols resolve to NoAction too.
	sc := interpretText(t, "XX?!X", DefaultMapping(), unitParams())

	assert.Empty(t, sc.Segments)
	assert.Empty(t, sc.Dots)
	assert.Empty(t, sc.FilledPolygons)
}

func TestInterpretPushPopRoundTrip(t *testing.T) {
	// "[F]F": the second segment starts back at the pre-bracket
	// position.
	sc := interpretText(t, "[F]F", DefaultMapping(), unitParams())

	require.Len(t, sc.Segments, 2)
	assert.InDelta(t, 0, sc.Segments[1].Start.X, epsilon)
	assert.InDelta(t, 0, sc.Segments[1].Start.Y, epsilon)
}

func TestInterpretBalancedStackRestoresState(t *testing.T) {
	// After a balanced bracket group the turtle continues as if the
	// group never happened.
	plain := interpretText(t, "FF", DefaultMapping(), unitParams())
	bracketed := interpretText(t, "F[+F-F+F]F", DefaultMapping(), unitParams())

	require.Len(t, plain.Segments, 2)
	last := bracketed.Segments[len(bracketed.Segments)-1]
	assert.InDelta(t, plain.Segments[1].End.X, last.End.X, epsilon)
	assert.InDelta(t, plain.Segments[1].End.Y, last.End.Y, epsilon)
}

func TestInterpretPopEmptyStackIsNoOp(t *testing.T) {
	sc := interpretText(t, "]]F", DefaultMapping(), unitParams())

	require.Len(t, sc.Segments, 1)
	assert.InDelta(t, 1, sc.Segments[0].End.X, epsilon)
	assert.InDelta(t, 0, sc.Segments[0].End.Y, epsilon)
}

func TestHeadingQuantization(t *testing.T) {
	// Heading is rounded to the nearest integer degree and wrapped
	// into [0, 360) after every turn.
	tests := []struct {
		name  string
		start float64
		turns []float64
		want  float64
	}{
		{"fractional turn rounds", 0, []float64{8.78}, 9},
		{"accumulates rounded", 0, []float64{8.78, 8.78}, 18},
		{"wraps negative", 0, []float64{-90}, 270},
		{"wraps over 360", 350, []float64{20}, 10},
		{"half rounds up", 0, []float64{0.5}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := &State{angle: normalizeAngle(tt.start)}
			for _, turn := range tt.turns {
				st.turn(turn)
			}
			assert.Equal(t, tt.want, st.angle)
			assert.GreaterOrEqual(t, st.angle, 0.0)
			assert.Less(t, st.angle, 360.0)
			assert.Equal(t, math.Trunc(st.angle), st.angle, "heading is a whole degree")
		})
	}
}

func TestReverseDirection(t *testing.T) {
	mapping := DefaultMapping()
	mapping.Assign('|', ReverseDirection)

	sc := interpretText(t, "F|F", mapping, unitParams())

	require.Len(t, sc.Segments, 2)
	assert.InDelta(t, 0, sc.Segments[1].End.X, epsilon)
	assert.InDelta(t, 0, sc.Segments[1].End.Y, epsilon)
}

func TestSwapPlusMinusInvertsTurns(t *testing.T) {
	mapping := DefaultMapping()
	mapping.Assign('!', SwapPlusMinus)

	// With the swap active, "+" turns right instead of left.
	swapped := interpretText(t, "!+F", mapping, unitParams())
	inverted := interpretText(t, "-F", DefaultMapping(), unitParams())

	require.Len(t, swapped.Segments, 1)
	require.Len(t, inverted.Segments, 1)
	assert.InDelta(t, inverted.Segments[0].End.X, swapped.Segments[0].End.X, epsilon)
	assert.InDelta(t, inverted.Segments[0].End.Y, swapped.Segments[0].End.Y, epsilon)

	// Toggling twice restores normal turn direction.
	restored := interpretText(t, "!!+F", mapping, unitParams())
	normal := interpretText(t, "+F", DefaultMapping(), unitParams())
	assert.InDelta(t, normal.Segments[0].End.X, restored.Segments[0].End.X, epsilon)
	assert.InDelta(t, normal.Segments[0].End.Y, restored.Segments[0].End.Y, epsilon)
}

func TestMoveWithoutDrawing(t *testing.T) {
	mapping := DefaultMapping()
	mapping.Assign('f', MoveWithoutDrawing)

	sc := interpretText(t, "FfF", mapping, unitParams())

	require.Len(t, sc.Segments, 2)
	// The gap: second segment starts one step past the first's end.
	assert.InDelta(t, 2, sc.Segments[1].Start.X, epsilon)
	assert.InDelta(t, 3, sc.Segments[1].End.X, epsilon)
}

func TestFractionalStep(t *testing.T) {
	mapping := DefaultMapping()
	params := unitParams()
	params.FractionalStepSize = 0.25

	sc := interpretText(t, "G", mapping, params)

	require.Len(t, sc.Segments, 1)
	assert.InDelta(t, 0.25, sc.Segments[0].End.X, epsilon)
}

func TestStepLengthMultiplyDivide(t *testing.T) {
	mapping := DefaultMapping()
	mapping.Assign('>', MultiplyStepLength)
	mapping.Assign('<', DivideStepLength)
	params := unitParams()
	params.StepFactor = 2

	sc := interpretText(t, "F>F<F", mapping, params)

	require.Len(t, sc.Segments, 3)
	lengths := []float64{1, 2, 1}
	for i, want := range lengths {
		got := sc.Segments[i].End.X - sc.Segments[i].Start.X
		assert.InDelta(t, want, got, epsilon, "segment %d length", i)
	}
}

func TestLineWidthIncrementDecrement(t *testing.T) {
	mapping := DefaultMapping()
	mapping.Assign('#', IncrementLineWidth)
	mapping.Assign('%', DecrementLineWidth)
	params := unitParams()
	params.LineWidth = 1
	params.LineWidthIncrement = 0.5

	sc := interpretText(t, "F#F%%%F", mapping, params)

	require.Len(t, sc.Segments, 3)
	assert.InDelta(t, 1, sc.Segments[0].Width, epsilon)
	assert.InDelta(t, 1.5, sc.Segments[1].Width, epsilon)
	// No lower bound: width may go negative.
	assert.InDelta(t, 0, sc.Segments[2].Width, epsilon)
}

func TestDrawDot(t *testing.T) {
	mapping := DefaultMapping()
	mapping.Assign('@', DrawDot)
	params := unitParams()
	params.DotRadius = 3

	sc := interpretText(t, "F@", mapping, params)

	require.Len(t, sc.Dots, 1)
	assert.InDelta(t, 1, sc.Dots[0].Center.X, epsilon)
	assert.Equal(t, 3.0, sc.Dots[0].Radius)
}

func TestPolygonLifecycle(t *testing.T) {
	mapping := DefaultMapping()
	mapping.Assign('{', OpenPolygon)
	mapping.Assign('}', ClosePolygon)
	params := unitParams()
	params.TurningAngle = 120
	params.FillColor = "#00ff00"

	sc := interpretText(t, "{F+F+F}", mapping, params)

	assert.Empty(t, sc.Polygons)
	require.Len(t, sc.FilledPolygons, 1)
	assert.Equal(t, "#00ff00", sc.FilledPolygons[0].Fill)
	require.Len(t, sc.FilledPolygons[0].Vertices, 3)

	// The triangle closes back at the origin.
	last := sc.FilledPolygons[0].Vertices[2]
	assert.InDelta(t, 0, last.X, epsilon)
	assert.InDelta(t, 0, last.Y, epsilon)
}

func TestClosePolygonWithoutOpen(t *testing.T) {
	mapping := DefaultMapping()
	mapping.Assign('}', ClosePolygon)

	sc := interpretText(t, "F}F", mapping, unitParams())

	assert.Empty(t, sc.FilledPolygons)
	assert.Len(t, sc.Segments, 2)
}

func TestTurningAngleIncrementDecrement(t *testing.T) {
	mapping := DefaultMapping()
	mapping.Assign('(', DecrementTurningAngle)
	mapping.Assign(')', IncrementTurningAngle)
	params := unitParams()
	params.TurningAngle = 90
	params.TurningAngleIncrement = 30

	// After one decrement the turn is 60 degrees.
	sc := interpretText(t, "(+F", mapping, params)

	require.Len(t, sc.Segments, 1)
	assert.InDelta(t, math.Cos(60*math.Pi/180), sc.Segments[0].End.X, epsilon)
	assert.InDelta(t, math.Sin(60*math.Pi/180), sc.Segments[0].End.Y, epsilon)
}

func TestInterpretDeterministic(t *testing.T) {
	sequence := lsystem.ParseSequence("F+F--F+F[+F]F")
	first := Interpret(sequence, DefaultMapping(), unitParams())
	second := Interpret(sequence, DefaultMapping(), unitParams())
	assert.Equal(t, first, second)
}

func TestStartPositionAndAngle(t *testing.T) {
	params := unitParams()
	params.StartPosition = scene.Point{X: 10, Y: 20}
	params.StartAngle = 90

	sc := interpretText(t, "F", DefaultMapping(), params)

	require.Len(t, sc.Segments, 1)
	assert.InDelta(t, 10, sc.Segments[0].End.X, epsilon)
	assert.InDelta(t, 21, sc.Segments[0].End.Y, epsilon)
}
