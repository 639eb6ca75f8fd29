// Package turtle interprets an expanded symbol sequence as turtle
// graphics commands, folding the sequence into a scene of segments,
// dots and polygons.
package turtle

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Action is a turtle command. The set is closed; symbols resolve to
// actions through a Mapping and unmapped symbols mean NoAction.
type Action int

const (
	NoAction Action = iota
	MoveForward
	MoveFractionalForward
	MoveWithoutDrawing
	TurnLeft
	TurnRight
	ReverseDirection
	PushState
	PopState
	IncrementLineWidth
	DecrementLineWidth
	DrawDot
	OpenPolygon
	ClosePolygon
	MultiplyStepLength
	DivideStepLength
	SwapPlusMinus
	IncrementTurningAngle
	DecrementTurningAngle
)

var actionNames = map[Action]string{
	NoAction:              "NoAction",
	MoveForward:           "MoveForward",
	MoveFractionalForward: "MoveFractionalForward",
	MoveWithoutDrawing:    "MoveWithoutDrawing",
	TurnLeft:              "TurnLeft",
	TurnRight:             "TurnRight",
	ReverseDirection:      "ReverseDirection",
	PushState:             "PushState",
	PopState:              "PopState",
	IncrementLineWidth:    "IncrementLineWidth",
	DecrementLineWidth:    "DecrementLineWidth",
	DrawDot:               "DrawDot",
	OpenPolygon:           "OpenPolygon",
	ClosePolygon:          "ClosePolygon",
	MultiplyStepLength:    "MultiplyStepLength",
	DivideStepLength:      "DivideStepLength",
	SwapPlusMinus:         "SwapPlusMinus",
	IncrementTurningAngle: "IncrementTurningAngle",
	DecrementTurningAngle: "DecrementTurningAngle",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// ParseAction resolves an action by name, as used in preset files.
func ParseAction(name string) (Action, error) {
	for a, n := range actionNames {
		if n == name {
			return a, nil
		}
	}
	return NoAction, fmt.Errorf("unknown action %q", name)
}

// MarshalText implements encoding.TextMarshaler so actions round-trip
// through JSON and YAML by name.
func (a Action) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Action) UnmarshalText(text []byte) error {
	parsed, err := ParseAction(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalYAML keeps the by-name encoding in YAML preset files, which
// do not go through encoding.TextMarshaler.
func (a Action) MarshalYAML() (interface{}, error) {
	return a.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (a *Action) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	return a.UnmarshalText([]byte(name))
}
