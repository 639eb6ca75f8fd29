package turtle

import (
	"github.com/pflow-xyz/go-lindenmayer/lsystem"
	"github.com/pflow-xyz/go-lindenmayer/scene"
)

// Interpret folds the symbol sequence into a scene. Each symbol
// resolves to exactly one action and one state transition, applied in
// sequence order. The pass is total: malformed input degrades to
// no-ops and the result is deterministic for identical inputs.
func Interpret(sequence []lsystem.Symbol, mapping Mapping, params Params) *scene.Scene {
	out := scene.New()
	st := newState(params)

	for _, sym := range sequence {
		switch mapping.Resolve(sym) {
		case MoveForward:
			from := st.position
			to := st.advance(st.stepSize)
			out.AddSegment(from, to, st.lineWidth)
			out.ExtendPolygon(to)

		case MoveFractionalForward:
			from := st.position
			to := st.advance(params.FractionalStepSize)
			out.AddSegment(from, to, st.lineWidth)
			out.ExtendPolygon(to)

		case MoveWithoutDrawing:
			to := st.advance(st.stepSize)
			out.ExtendPolygon(to)

		case TurnLeft:
			if st.swapPlusMinus {
				st.turn(-st.turningAngle)
			} else {
				st.turn(st.turningAngle)
			}

		case TurnRight:
			if st.swapPlusMinus {
				st.turn(st.turningAngle)
			} else {
				st.turn(-st.turningAngle)
			}

		case ReverseDirection:
			st.turn(180)

		case PushState:
			st.push()

		case PopState:
			st.pop()

		case IncrementLineWidth:
			st.lineWidth += params.LineWidthIncrement

		case DecrementLineWidth:
			// May go negative; the renderer decides what to do with it.
			st.lineWidth -= params.LineWidthIncrement

		case DrawDot:
			out.AddDot(st.position, params.DotRadius)

		case OpenPolygon:
			out.OpenPolygon()

		case ClosePolygon:
			out.ClosePolygon(st.fillColor)

		case MultiplyStepLength:
			st.stepSize *= params.StepFactor

		case DivideStepLength:
			if params.StepFactor != 0 {
				st.stepSize /= params.StepFactor
			}

		case SwapPlusMinus:
			st.swapPlusMinus = !st.swapPlusMinus

		case IncrementTurningAngle:
			st.turningAngle += params.TurningAngleIncrement

		case DecrementTurningAngle:
			st.turningAngle -= params.TurningAngleIncrement

		case NoAction:
			// Unmapped or explicitly inert symbol.
		}
	}

	return out
}
