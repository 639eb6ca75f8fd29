package session

import (
	"testing"

	"github.com/pflow-xyz/go-lindenmayer/lsystem"
	"github.com/pflow-xyz/go-lindenmayer/turtle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kochModel() Model {
	m := NewModel()
	m = Apply(m, SetAxiom{Axiom: "F"})
	m = Apply(m, PutRule{Trigger: "F", Replacement: "F+F--F+F"})
	m = Apply(m, SetIterations{Iterations: 1})
	params := turtle.DefaultParams()
	params.TurningAngle = 60
	params.StepSize = 1
	params.StartAngle = 0
	m = Apply(m, SetParams{Params: params})
	return m
}

func TestApplyEditsDoNotRegenerate(t *testing.T) {
	m := kochModel()
	assert.True(t, m.Scene.Empty(), "edits alone leave the scene untouched")
}

func TestApplyAxiomRegenerates(t *testing.T) {
	m := Apply(kochModel(), ApplyAxiom{})

	assert.Len(t, m.Scene.Segments, 4)
	assert.Equal(t, 0.0, m.Progress)
}

func TestApplyAxiomSupersedesScene(t *testing.T) {
	m := Apply(kochModel(), ApplyAxiom{})
	m = Apply(m, Tick{ElapsedMillis: 200})
	require.Greater(t, m.Progress, 0.0)

	// A regeneration wholly replaces the scene and resets progress.
	m = Apply(m, SetIterations{Iterations: 2})
	m = Apply(m, ApplyAxiom{})
	assert.Len(t, m.Scene.Segments, 16)
	assert.Equal(t, 0.0, m.Progress)
}

func TestApplyIsPure(t *testing.T) {
	before := kochModel()
	rulesBefore := before.Rules.Len()

	after := Apply(before, PutRule{Trigger: "X", Replacement: "FX"})

	assert.Equal(t, rulesBefore, before.Rules.Len(), "input model unchanged")
	assert.Equal(t, rulesBefore+1, after.Rules.Len())
}

func TestPutRuleShadowsEarlier(t *testing.T) {
	m := kochModel()
	m = Apply(m, PutRule{Trigger: "F", Replacement: "FF"})

	replacement, ok := m.Rules.Lookup('F')
	require.True(t, ok)
	assert.Equal(t, "FF", lsystem.Sequence(replacement).String())
}

func TestRemoveRule(t *testing.T) {
	m := kochModel()
	m = Apply(m, RemoveRule{Trigger: "F"})

	_, ok := m.Rules.Lookup('F')
	assert.False(t, ok)
}

func TestAssignSymbol(t *testing.T) {
	m := NewModel()
	m = Apply(m, AssignSymbol{Symbol: "@", Action: turtle.DrawDot})

	assert.Equal(t, turtle.DrawDot, m.Mapping.Resolve('@'))
	// The default alphabet is untouched.
	assert.Equal(t, turtle.MoveForward, m.Mapping.Resolve('F'))
}

func TestTickAdvancesAndClamps(t *testing.T) {
	m := Apply(kochModel(), ApplyAxiom{})
	require.Equal(t, 4, m.Scene.PrimitiveCount())

	m = Apply(m, Tick{ElapsedMillis: 100})
	assert.InDelta(t, 1.0, m.Progress, 1e-9)

	m = Apply(m, Tick{ElapsedMillis: 1e9})
	assert.Equal(t, 4.0, m.Progress)
}

func TestTickSpeedMultiplier(t *testing.T) {
	m := Apply(kochModel(), ApplyAxiom{})
	m = Apply(m, SetSpeed{Speed: 2})

	m = Apply(m, Tick{ElapsedMillis: 100})
	assert.InDelta(t, 2.0, m.Progress, 1e-9)
}

func TestReset(t *testing.T) {
	m := Apply(kochModel(), ApplyAxiom{})
	m = Apply(m, Tick{ElapsedMillis: 100})

	m = Apply(m, Reset{})

	assert.Equal(t, 0.0, m.Progress)
	assert.True(t, m.Scene.Empty())
}

func TestSetIterationsNormalizesNegative(t *testing.T) {
	m := Apply(NewModel(), SetIterations{Iterations: -3})
	assert.Equal(t, 0, m.Iterations)
}

func TestInvalidEditEventsAreIgnored(t *testing.T) {
	m := kochModel()

	unchanged := Apply(m, PutRule{Trigger: "FG", Replacement: "F"})
	assert.Equal(t, m.Rules.Len(), unchanged.Rules.Len())

	unchanged = Apply(m, AssignSymbol{Symbol: "", Action: turtle.DrawDot})
	assert.Equal(t, m.Mapping, unchanged.Mapping)
}
