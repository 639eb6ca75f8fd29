package turtle

import (
	"math"

	"github.com/pflow-xyz/go-lindenmayer/scene"
)

// Params are the numeric inputs of one interpretation pass. The caller
// (UI boundary) normalizes missing or non-numeric values before they
// get here; the interpreter assumes finite floats.
type Params struct {
	StepSize              float64     `json:"stepSize" yaml:"stepSize"`
	FractionalStepSize    float64     `json:"fractionalStepSize" yaml:"fractionalStepSize"`
	TurningAngle          float64     `json:"turningAngle" yaml:"turningAngle"`
	TurningAngleIncrement float64     `json:"turningAngleIncrement" yaml:"turningAngleIncrement"`
	LineWidthIncrement    float64     `json:"lineWidthIncrement" yaml:"lineWidthIncrement"`
	StepFactor            float64     `json:"stepFactor" yaml:"stepFactor"`
	DotRadius             float64     `json:"dotRadius" yaml:"dotRadius"`
	StartPosition         scene.Point `json:"startPosition" yaml:"startPosition"`
	StartAngle            float64     `json:"startAngle" yaml:"startAngle"`
	LineWidth             float64     `json:"lineWidth" yaml:"lineWidth"`
	FillColor             string      `json:"fillColor" yaml:"fillColor"`
}

// DefaultParams returns a usable parameter set for interactive use.
func DefaultParams() Params {
	return Params{
		StepSize:              10,
		FractionalStepSize:    2,
		TurningAngle:          90,
		TurningAngleIncrement: 5,
		LineWidthIncrement:    1,
		StepFactor:            2,
		DotRadius:             2,
		StartAngle:            90,
		LineWidth:             1,
		FillColor:             "#000000",
	}
}

// savedState is one stack frame of the turtle: position and heading at
// the time of a PushState.
type savedState struct {
	position scene.Point
	angle    float64
}

// State is the transient working state of one interpretation pass. It
// is created fresh per pass and discarded once the scene is produced.
type State struct {
	position      scene.Point
	angle         float64
	stack         []savedState
	lineWidth     float64
	fillColor     string
	swapPlusMinus bool

	stepSize     float64
	turningAngle float64
}

func newState(params Params) *State {
	return &State{
		position:     params.StartPosition,
		angle:        normalizeAngle(params.StartAngle),
		lineWidth:    params.LineWidth,
		fillColor:    params.FillColor,
		stepSize:     params.StepSize,
		turningAngle: params.TurningAngle,
	}
}

// normalizeAngle rounds to the nearest integer degree and wraps into
// [0, 360). The quantization is intentional: sub-degree precision is
// discarded after every turn.
func normalizeAngle(angle float64) float64 {
	deg := int(math.Round(angle)) % 360
	if deg < 0 {
		deg += 360
	}
	return float64(deg)
}

// advance moves the turtle by distance along the current heading and
// returns the new position.
func (st *State) advance(distance float64) scene.Point {
	radians := st.angle * math.Pi / 180
	st.position = scene.Point{
		X: st.position.X + distance*math.Cos(radians),
		Y: st.position.Y + distance*math.Sin(radians),
	}
	return st.position
}

// turn rotates the heading by delta degrees and quantizes.
func (st *State) turn(delta float64) {
	st.angle = normalizeAngle(st.angle + delta)
}

// push saves the current position and heading.
func (st *State) push() {
	st.stack = append(st.stack, savedState{position: st.position, angle: st.angle})
}

// pop restores the most recently saved state. Popping an empty stack
// is a no-op, not an error.
func (st *State) pop() {
	if len(st.stack) == 0 {
		return
	}
	top := st.stack[len(st.stack)-1]
	st.stack = st.stack[:len(st.stack)-1]
	st.position = top.position
	st.angle = top.angle
}
