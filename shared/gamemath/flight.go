package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Forward returns the unit vector for a heading in radians (0 points right).
func Forward(heading float64) dmath.Vec2 {
	return dmath.Vec2{X: math.Cos(heading), Y: math.Sin(heading)}
}

// Advance moves pos along forward by speed*dt.
func Advance(pos, forward dmath.Vec2, speed, dt float64) dmath.Vec2 {
	step := speed * dt
	return dmath.Vec2{
		X: pos.X + forward.X*step,
		Y: pos.Y + forward.Y*step,
	}
}

// Wrap folds v into [0, size). Used to keep the ship and stars on screen.
func Wrap(v, size float64) float64 {
	if size <= 0 {
		return v
	}
	v = math.Mod(v, size)
	if v < 0 {
		v += size
	}
	return v
}
