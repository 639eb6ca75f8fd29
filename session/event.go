package session

import (
	"time"

	"github.com/pflow-xyz/go-lindenmayer/animate"
	"github.com/pflow-xyz/go-lindenmayer/lsystem"
	"github.com/pflow-xyz/go-lindenmayer/scene"
	"github.com/pflow-xyz/go-lindenmayer/turtle"
)

// Event is one discrete session action. The set is closed; Apply does
// an exhaustive case analysis over it.
type Event interface {
	// Kind names the event for logging and replay.
	Kind() string
}

// SetAxiom replaces the axiom text.
type SetAxiom struct {
	Axiom string `json:"axiom"`
}

// PutRule appends a rewrite rule. A later rule for the same trigger
// shadows earlier ones.
type PutRule struct {
	Trigger     string `json:"trigger"`
	Replacement string `json:"replacement"`
}

// RemoveRule drops every rule for a trigger.
type RemoveRule struct {
	Trigger string `json:"trigger"`
}

// AssignSymbol binds a symbol to a turtle action.
type AssignSymbol struct {
	Symbol string        `json:"symbol"`
	Action turtle.Action `json:"action"`
}

// SetParams replaces the numeric turtle parameters.
type SetParams struct {
	Params turtle.Params `json:"params"`
}

// SetIterations sets the expansion depth. Negative values normalize
// to zero.
type SetIterations struct {
	Iterations int `json:"iterations"`
}

// SetSpeed sets the animation speed multiplier.
type SetSpeed struct {
	Speed float64 `json:"speed"`
}

// ApplyAxiom regenerates the scene from the current definition,
// discarding the previous scene and resetting progress.
type ApplyAxiom struct{}

// Tick advances the reveal progress by an elapsed-time delta in
// milliseconds.
type Tick struct {
	ElapsedMillis float64 `json:"elapsedMillis"`
}

// Reset clears the scene and sets progress to zero.
type Reset struct{}

func (SetAxiom) Kind() string      { return "set-axiom" }
func (PutRule) Kind() string       { return "put-rule" }
func (RemoveRule) Kind() string    { return "remove-rule" }
func (AssignSymbol) Kind() string  { return "assign-symbol" }
func (SetParams) Kind() string     { return "set-params" }
func (SetIterations) Kind() string { return "set-iterations" }
func (SetSpeed) Kind() string      { return "set-speed" }
func (ApplyAxiom) Kind() string    { return "apply-axiom" }
func (Tick) Kind() string          { return "tick" }
func (Reset) Kind() string         { return "reset" }

// Apply computes the next model for an event. Definition edits do not
// regenerate the scene by themselves; an ApplyAxiom event does, which
// matches the interactive flow of editing several fields and then
// applying. Unknown events leave the model unchanged.
func Apply(m Model, event Event) Model {
	switch e := event.(type) {
	case SetAxiom:
		m.Axiom = lsystem.ParseSequence(e.Axiom)

	case PutRule:
		trigger := lsystem.ParseSequence(e.Trigger)
		if len(trigger) != 1 {
			return m
		}
		rules := lsystem.NewRuleSet()
		for _, r := range m.Rules.Rules() {
			rules.Add(r.Trigger, r.Replacement)
		}
		rules.AddString(trigger[0], e.Replacement)
		m.Rules = rules

	case RemoveRule:
		trigger := lsystem.ParseSequence(e.Trigger)
		if len(trigger) != 1 {
			return m
		}
		rules := lsystem.NewRuleSet()
		for _, r := range m.Rules.Rules() {
			rules.Add(r.Trigger, r.Replacement)
		}
		rules.Remove(trigger[0])
		m.Rules = rules

	case AssignSymbol:
		sym := lsystem.ParseSequence(e.Symbol)
		if len(sym) != 1 {
			return m
		}
		mapping := m.Mapping.Clone()
		mapping.Assign(sym[0], e.Action)
		m.Mapping = mapping

	case SetParams:
		m.Params = e.Params

	case SetIterations:
		if e.Iterations < 0 {
			e.Iterations = 0
		}
		m.Iterations = e.Iterations

	case SetSpeed:
		m.Speed = e.Speed

	case ApplyAxiom:
		m = m.regenerate()

	case Tick:
		m = m.tick(animate.Clock{}, e.ElapsedMillis)

	case Reset:
		m.Scene = scene.New()
		m.Progress = 0
	}

	return m
}

func millis(ms float64) time.Duration {
	return time.Duration(ms * float64(time.Millisecond))
}
