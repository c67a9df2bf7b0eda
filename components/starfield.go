package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// Star is one backdrop point; Depth >= 1 slows its parallax
type Star struct {
	Position math.Vec2
	Depth    float64
}

// StarfieldData holds the flight scene backdrop (singleton component)
type StarfieldData struct {
	Stars []Star
}

var Starfield = donburi.NewComponentType[StarfieldData]()
