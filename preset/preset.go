// Package preset bundles a complete L-system configuration (axiom,
// rules, symbol mapping, turtle parameters) under a name, with a
// registry of classic curves, YAML import/export, and a SQLite store
// for user-defined presets.
package preset

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/pflow-xyz/go-lindenmayer/lsystem"
	"github.com/pflow-xyz/go-lindenmayer/session"
	"github.com/pflow-xyz/go-lindenmayer/turtle"
)

// Preset is an opaque named bundle of the generator's inputs. Rules
// are stored in "F -> F+F--F+F" text form, definition order preserved.
type Preset struct {
	ID         string                   `json:"id" yaml:"id"`
	Name       string                   `json:"name" yaml:"name"`
	Axiom      string                   `json:"axiom" yaml:"axiom"`
	Rules      []string                 `json:"rules" yaml:"rules"`
	Mapping    map[string]turtle.Action `json:"mapping,omitempty" yaml:"mapping,omitempty"`
	Params     turtle.Params            `json:"params" yaml:"params"`
	Iterations int                      `json:"iterations" yaml:"iterations"`
	Speed      float64                  `json:"speed" yaml:"speed"`
}

// New creates an empty preset with a fresh ID.
func New(name string) Preset {
	return Preset{
		ID:     uuid.NewString(),
		Name:   name,
		Params: turtle.DefaultParams(),
		Speed:  1,
	}
}

// RuleSet parses the preset's rule lines in order.
func (p Preset) RuleSet() (*lsystem.RuleSet, error) {
	rs := lsystem.NewRuleSet()
	for _, line := range p.Rules {
		rule, err := lsystem.ParseRule(line)
		if err != nil {
			return nil, fmt.Errorf("preset %q: %w", p.Name, err)
		}
		rs.Add(rule.Trigger, rule.Replacement)
	}
	return rs, nil
}

// SymbolMapping returns the default turtle alphabet overlaid with the
// preset's overrides.
func (p Preset) SymbolMapping() (turtle.Mapping, error) {
	mapping := turtle.DefaultMapping()
	for key, action := range p.Mapping {
		sym := lsystem.ParseSequence(key)
		if len(sym) != 1 {
			return nil, fmt.Errorf("preset %q: mapping key %q must be a single symbol", p.Name, key)
		}
		mapping.Assign(sym[0], action)
	}
	return mapping, nil
}

// Model builds a session model from the preset, ready for ApplyAxiom.
func (p Preset) Model() (session.Model, error) {
	rules, err := p.RuleSet()
	if err != nil {
		return session.Model{}, err
	}
	mapping, err := p.SymbolMapping()
	if err != nil {
		return session.Model{}, err
	}

	m := session.NewModel()
	m.Axiom = lsystem.ParseSequence(p.Axiom)
	m.Rules = rules
	m.Mapping = mapping
	m.Params = p.Params
	m.Iterations = p.Iterations
	if p.Speed > 0 {
		m.Speed = p.Speed
	}
	return m, nil
}

// Validate checks the parts the core cares about: a parseable rule
// table and mapping. Presets are otherwise opaque records.
func (p Preset) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("preset: name required")
	}
	if _, err := p.RuleSet(); err != nil {
		return err
	}
	if _, err := p.SymbolMapping(); err != nil {
		return err
	}
	return nil
}
