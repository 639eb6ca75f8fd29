package main

import (
	"fmt"
	"os"

	"github.com/pflow-xyz/go-lindenmayer/lsystem"
	"github.com/pflow-xyz/go-lindenmayer/preset"
	"github.com/pflow-xyz/go-lindenmayer/scene"
	"github.com/pflow-xyz/go-lindenmayer/turtle"
	"github.com/spf13/cobra"
)

// addSystemFlags registers the flags shared by expand, render and
// animate: a preset source plus explicit overrides.
func addSystemFlags(cmd *cobra.Command) {
	cmd.Flags().String("preset", "", "Built-in preset slug or preset file path")
	cmd.Flags().String("axiom", "", "Axiom text (overrides preset)")
	cmd.Flags().StringArray("rule", nil, `Rewrite rule, e.g. "F -> F+F--F+F" (repeatable)`)
	cmd.Flags().Int("iterations", -1, "Expansion iterations (overrides preset)")
	cmd.Flags().Float64("angle", 0, "Turning angle in degrees (overrides preset)")
	cmd.Flags().Float64("step", 0, "Step size (overrides preset)")
	cmd.Flags().Float64("start-angle", -1, "Starting heading in degrees (overrides preset)")
}

// resolveInputs builds the effective preset from --preset plus any
// explicit overrides. Without --preset it starts from defaults, so
// --axiom and --rule alone fully describe a system.
func resolveInputs(cmd *cobra.Command) (preset.Preset, error) {
	p := preset.Preset{
		Name:       "cli",
		Params:     turtle.DefaultParams(),
		Iterations: 1,
		Speed:      1,
	}

	if source, _ := cmd.Flags().GetString("preset"); source != "" {
		loaded, err := preset.Get(source)
		if err != nil {
			if _, statErr := os.Stat(source); statErr != nil {
				return preset.Preset{}, fmt.Errorf("preset %q: not a built-in slug or readable file", source)
			}
			loaded, err = preset.LoadFile(source)
			if err != nil {
				return preset.Preset{}, err
			}
		}
		p = loaded
	}

	if axiom, _ := cmd.Flags().GetString("axiom"); axiom != "" {
		p.Axiom = axiom
	}
	if rules, _ := cmd.Flags().GetStringArray("rule"); len(rules) > 0 {
		p.Rules = rules
	}
	if iterations, _ := cmd.Flags().GetInt("iterations"); iterations >= 0 {
		p.Iterations = iterations
	}
	if angle, _ := cmd.Flags().GetFloat64("angle"); angle != 0 {
		p.Params.TurningAngle = angle
	}
	if step, _ := cmd.Flags().GetFloat64("step"); step != 0 {
		p.Params.StepSize = step
	}
	if startAngle, _ := cmd.Flags().GetFloat64("start-angle"); startAngle >= 0 {
		p.Params.StartAngle = startAngle
	}

	if p.Axiom == "" {
		return preset.Preset{}, fmt.Errorf("axiom required: pass --axiom or --preset")
	}
	return p, nil
}

// buildScene expands and interprets the preset.
func buildScene(p preset.Preset) (*scene.Scene, []lsystem.Symbol, error) {
	rules, err := p.RuleSet()
	if err != nil {
		return nil, nil, err
	}
	mapping, err := p.SymbolMapping()
	if err != nil {
		return nil, nil, err
	}
	sequence := lsystem.Expand(lsystem.ParseSequence(p.Axiom), rules, p.Iterations)
	return turtle.Interpret(sequence, mapping, p.Params), sequence, nil
}
