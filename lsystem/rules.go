// Package lsystem implements deterministic context-free string rewriting
// (Lindenmayer systems). A rule set maps single-symbol triggers to
// replacement sequences; the expander applies the rules to an axiom for
// a fixed number of iterations.
package lsystem

import (
	"fmt"
	"strings"
)

// Symbol is a single character of an L-system alphabet.
type Symbol rune

// Rule rewrites one trigger symbol into a replacement sequence.
type Rule struct {
	Trigger     Symbol
	Replacement []Symbol
}

// String renders the rule in "F -> F+F--F+F" form.
func (r Rule) String() string {
	return fmt.Sprintf("%c -> %s", r.Trigger, Sequence(r.Replacement))
}

// RuleSet is an append-only ordered list of rules. When several rules
// share a trigger, the last one defined wins.
type RuleSet struct {
	rules []Rule
}

// NewRuleSet creates an empty rule set.
func NewRuleSet() *RuleSet {
	return &RuleSet{}
}

// Add appends a rule. Earlier rules for the same trigger are kept in
// the list but shadowed on lookup.
func (rs *RuleSet) Add(trigger Symbol, replacement []Symbol) {
	rs.rules = append(rs.rules, Rule{Trigger: trigger, Replacement: replacement})
}

// AddString appends a rule with the replacement given as plain text.
func (rs *RuleSet) AddString(trigger Symbol, replacement string) {
	rs.Add(trigger, ParseSequence(replacement))
}

// Lookup returns the replacement for a trigger, scanning from the most
// recently defined rule backwards. ok is false when no rule matches.
func (rs *RuleSet) Lookup(trigger Symbol) (replacement []Symbol, ok bool) {
	if rs == nil {
		return nil, false
	}
	for i := len(rs.rules) - 1; i >= 0; i-- {
		if rs.rules[i].Trigger == trigger {
			return rs.rules[i].Replacement, true
		}
	}
	return nil, false
}

// Len returns the number of rules, shadowed ones included.
func (rs *RuleSet) Len() int {
	if rs == nil {
		return 0
	}
	return len(rs.rules)
}

// Rules returns the rules in definition order.
func (rs *RuleSet) Rules() []Rule {
	if rs == nil {
		return nil
	}
	out := make([]Rule, len(rs.rules))
	copy(out, rs.rules)
	return out
}

// Remove drops every rule defined for the trigger.
func (rs *RuleSet) Remove(trigger Symbol) {
	kept := rs.rules[:0]
	for _, r := range rs.rules {
		if r.Trigger != trigger {
			kept = append(kept, r)
		}
	}
	rs.rules = kept
}

// String renders all rules, definition order, one per line.
func (rs *RuleSet) String() string {
	var sb strings.Builder
	for i, r := range rs.rules {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(r.String())
	}
	return sb.String()
}

// Sequence is a convenience view of a symbol slice.
type Sequence []Symbol

// String concatenates the symbols back to plain text.
func (s Sequence) String() string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, sym := range s {
		sb.WriteRune(rune(sym))
	}
	return sb.String()
}

// ParseSequence converts plain text to a symbol sequence. Every rune is
// one symbol; whitespace is skipped so "F + F" and "F+F" are the same.
func ParseSequence(text string) []Symbol {
	out := make([]Symbol, 0, len(text))
	for _, r := range text {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		out = append(out, Symbol(r))
	}
	return out
}

// ParseRule parses a single "F -> F+F--F+F" line. The arrow may be
// "->" or "=". An empty replacement is valid (erasing rule).
func ParseRule(line string) (Rule, error) {
	var trigger, replacement string
	switch {
	case strings.Contains(line, "->"):
		parts := strings.SplitN(line, "->", 2)
		trigger, replacement = parts[0], parts[1]
	case strings.Contains(line, "="):
		parts := strings.SplitN(line, "=", 2)
		trigger, replacement = parts[0], parts[1]
	default:
		return Rule{}, fmt.Errorf("rule %q: missing \"->\"", line)
	}

	trig := ParseSequence(trigger)
	if len(trig) != 1 {
		return Rule{}, fmt.Errorf("rule %q: trigger must be a single symbol", line)
	}
	return Rule{Trigger: trig[0], Replacement: ParseSequence(replacement)}, nil
}

// ParseRules parses newline- or semicolon-separated rule lines into a
// rule set, preserving definition order. Blank lines are skipped.
func ParseRules(text string) (*RuleSet, error) {
	rs := NewRuleSet()
	for _, line := range strings.FieldsFunc(text, func(r rune) bool {
		return r == '\n' || r == ';'
	}) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		rule, err := ParseRule(line)
		if err != nil {
			return nil, err
		}
		rs.Add(rule.Trigger, rule.Replacement)
	}
	return rs, nil
}
