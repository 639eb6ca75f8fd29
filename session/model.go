// Package session models an interactive editing session as an explicit
// state-transition function: (Model, Event) -> Model. There is no
// shared mutable state; every event produces a new model value, which
// makes the session testable without a UI harness and replayable from
// a recorded event log.
package session

import (
	"github.com/pflow-xyz/go-lindenmayer/animate"
	"github.com/pflow-xyz/go-lindenmayer/lsystem"
	"github.com/pflow-xyz/go-lindenmayer/scene"
	"github.com/pflow-xyz/go-lindenmayer/turtle"
)

// Model is the complete state of one editing session: the system
// definition, the turtle parameters, and the derived scene with its
// reveal progress.
type Model struct {
	Axiom      []lsystem.Symbol
	Rules      *lsystem.RuleSet
	Mapping    turtle.Mapping
	Params     turtle.Params
	Iterations int
	Speed      float64

	// Derived: the scene of the last ApplyAxiom and how much of it is
	// revealed. A regeneration replaces the scene wholly and resets
	// progress; there is no partial-result merging.
	Scene    *scene.Scene
	Progress float64
}

// NewModel returns a session with the default alphabet and parameters
// and an empty scene.
func NewModel() Model {
	return Model{
		Rules:      lsystem.NewRuleSet(),
		Mapping:    turtle.DefaultMapping(),
		Params:     turtle.DefaultParams(),
		Iterations: 1,
		Speed:      1,
		Scene:      scene.New(),
	}
}

// regenerate expands the axiom and reinterprets it, discarding the
// previous scene and any in-flight progress.
func (m Model) regenerate() Model {
	sequence := lsystem.Expand(m.Axiom, m.Rules, m.Iterations)
	m.Scene = turtle.Interpret(sequence, m.Mapping, m.Params)
	m.Progress = 0
	return m
}

// tick advances the reveal progress from an elapsed-time delta.
func (m Model) tick(clock animate.Clock, elapsed float64) Model {
	clock.Speed = m.Speed
	m.Progress = clock.Advance(m.Progress, millis(elapsed), m.Scene.PrimitiveCount())
	return m
}
