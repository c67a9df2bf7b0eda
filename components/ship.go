package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ShipData is the player ship's transform and throttle
type ShipData struct {
	Position math.Vec2
	Heading  float64 // Radians, 0 points right
	Speed    float64 // Pixels per second

	// Throttle eases Speed from rest to cruise on launch; nil once finished
	Throttle *gween.Tween
}

var Ship = donburi.NewComponentType[ShipData]()
