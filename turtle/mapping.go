package turtle

import "github.com/pflow-xyz/go-lindenmayer/lsystem"

// Mapping binds symbols to actions. Symbols absent from the mapping
// resolve to NoAction.
type Mapping map[lsystem.Symbol]Action

// DefaultMapping returns the conventional turtle alphabet.
func DefaultMapping() Mapping {
	return Mapping{
		'F': MoveForward,
		'G': MoveFractionalForward,
		'+': TurnLeft,
		'-': TurnRight,
		'[': PushState,
		']': PopState,
		'X': NoAction,
	}
}

// Resolve returns the action for a symbol, NoAction when unmapped.
func (m Mapping) Resolve(sym lsystem.Symbol) Action {
	if action, ok := m[sym]; ok {
		return action
	}
	return NoAction
}

// Assign binds a symbol to an action, replacing any prior binding.
func (m Mapping) Assign(sym lsystem.Symbol, action Action) {
	m[sym] = action
}

// Clone returns an independent copy of the mapping.
func (m Mapping) Clone() Mapping {
	out := make(Mapping, len(m))
	for sym, action := range m {
		out[sym] = action
	}
	return out
}
