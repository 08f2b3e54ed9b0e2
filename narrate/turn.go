// SPDX-License-Identifier: MIT
// Package: routenav/narrate
//
// turn.go - bearings and turn classification.
//
// Canvas coordinates grow downwards, so a positive turn angle is clockwise,
// i.e. a right turn from the traveller's point of view.

package narrate

import (
	"math"

	"github.com/katalvlaran/routenav/core"
)

// Thresholds (degrees) separating the turn classes.
const (
	straightLimit = 20.0
	uTurnLimit    = 160.0
)

// Turn classifies the change of heading at an intermediate node.
type Turn int

const (
	// TurnNone marks the start and arrival instructions.
	TurnNone Turn = iota
	TurnStraight
	TurnRight
	TurnLeft
	TurnUTurn
)

// String returns the instruction verb for t.
func (t Turn) String() string {
	switch t {
	case TurnStraight:
		return "Continue straight"
	case TurnRight:
		return "Turn right"
	case TurnLeft:
		return "Turn left"
	case TurnUTurn:
		return "Make a U-turn"
	default:
		return ""
	}
}

// MarshalText encodes t as its instruction verb.
func (t Turn) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Bearing returns the heading from one node to another in degrees,
// atan2(dy, dx), within [-180, 180].
func Bearing(from, to core.Node) float64 {
	return math.Atan2(to.Y-from.Y, to.X-from.X) * 180 / math.Pi
}

// TurnAngle returns b2 - b1 normalized into (-180, 180].
func TurnAngle(b1, b2 float64) float64 {
	a := math.Mod(b2-b1, 360)
	if a > 180 {
		a -= 360
	}
	if a <= -180 {
		a += 360
	}
	return a
}

// Classify maps a normalized turn angle to a Turn:
//
//	|a| < 20          straight
//	20 ≤ a < 160      right
//	-160 < a ≤ -20    left
//	otherwise         U-turn
func Classify(angle float64) Turn {
	switch {
	case math.Abs(angle) < straightLimit:
		return TurnStraight
	case angle >= straightLimit && angle < uTurnLimit:
		return TurnRight
	case angle <= -straightLimit && angle > -uTurnLimit:
		return TurnLeft
	default:
		return TurnUTurn
	}
}
