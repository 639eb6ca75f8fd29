package preset

import (
	"fmt"
	"sort"

	"github.com/pflow-xyz/go-lindenmayer/turtle"
)

// Registry holds the built-in presets, keyed by slug.
var Registry = map[string]Preset{
	"koch-snowflake": {
		ID:    "builtin-koch-snowflake",
		Name:  "Koch Snowflake",
		Axiom: "F--F--F",
		Rules: []string{"F -> F+F--F+F"},
		Params: withDefaults(func(p *turtle.Params) {
			p.TurningAngle = 60
			p.StepSize = 4
		}),
		Iterations: 4,
		Speed:      1,
	},
	"sierpinski-arrowhead": {
		ID:    "builtin-sierpinski-arrowhead",
		Name:  "Sierpinski Arrowhead",
		Axiom: "A",
		Rules: []string{"A -> B-A-B", "B -> A+B+A"},
		Mapping: map[string]turtle.Action{
			"A": turtle.MoveForward,
			"B": turtle.MoveForward,
		},
		Params: withDefaults(func(p *turtle.Params) {
			p.TurningAngle = 60
			p.StepSize = 3
		}),
		Iterations: 6,
		Speed:      2,
	},
	"dragon-curve": {
		ID:    "builtin-dragon-curve",
		Name:  "Dragon Curve",
		Axiom: "FX",
		Rules: []string{"X -> X+YF+", "Y -> -FX-Y"},
		Mapping: map[string]turtle.Action{
			"Y": turtle.NoAction,
		},
		Params: withDefaults(func(p *turtle.Params) {
			p.TurningAngle = 90
			p.StepSize = 4
		}),
		Iterations: 10,
		Speed:      4,
	},
	"hilbert-curve": {
		ID:    "builtin-hilbert-curve",
		Name:  "Hilbert Curve",
		Axiom: "L",
		Rules: []string{"L -> +RF-LFL-FR+", "R -> -LF+RFR+FL-"},
		Mapping: map[string]turtle.Action{
			"L": turtle.NoAction,
			"R": turtle.NoAction,
		},
		Params: withDefaults(func(p *turtle.Params) {
			p.TurningAngle = 90
			p.StepSize = 6
		}),
		Iterations: 5,
		Speed:      2,
	},
	"gosper-curve": {
		ID:    "builtin-gosper-curve",
		Name:  "Gosper Curve",
		Axiom: "X",
		Rules: []string{
			"X -> X+YF++YF-FX--FXFX-YF+",
			"Y -> -FX+YFYF++YF+FX--FX-Y",
		},
		Mapping: map[string]turtle.Action{
			"X": turtle.NoAction,
			"Y": turtle.NoAction,
		},
		Params: withDefaults(func(p *turtle.Params) {
			p.TurningAngle = 60
			p.StepSize = 4
		}),
		Iterations: 4,
		Speed:      2,
	},
	"fractal-plant": {
		ID:    "builtin-fractal-plant",
		Name:  "Fractal Plant",
		Axiom: "X",
		Rules: []string{
			"X -> F+[[X]-X]-F[-FX]+X",
			"F -> FF",
		},
		Params: withDefaults(func(p *turtle.Params) {
			p.TurningAngle = 25
			p.StepSize = 2
			p.StartAngle = 65
		}),
		Iterations: 5,
		Speed:      4,
	},
	"rectangles": {
		ID:    "builtin-rectangles",
		Name:  "Rectangles",
		Axiom: "F-F-F-F",
		Rules: []string{"F -> FF-F+F-F-FF"},
		Params: withDefaults(func(p *turtle.Params) {
			p.TurningAngle = 90
			p.StepSize = 3
		}),
		Iterations: 3,
		Speed:      2,
	},
}

func withDefaults(mutate func(*turtle.Params)) turtle.Params {
	params := turtle.DefaultParams()
	mutate(&params)
	return params
}

// Get returns a built-in preset by slug.
func Get(slug string) (Preset, error) {
	p, ok := Registry[slug]
	if !ok {
		return Preset{}, fmt.Errorf("unknown preset: %s", slug)
	}
	return p, nil
}

// List returns the built-in slugs in sorted order.
func List() []string {
	slugs := make([]string, 0, len(Registry))
	for slug := range Registry {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)
	return slugs
}
