package components

import (
	cfg "github.com/automoto/voidrunner/config"
	"github.com/yohamta/donburi"
)

// InputDevice is the kind of device that last produced an action
type InputDevice int

const (
	InputKeyboard InputDevice = iota
	InputGamepad
)

// ActionState is an action's state this frame
type ActionState struct {
	Pressed      bool
	JustPressed  bool
	JustReleased bool
}

// InputData holds two frames of action state; edges are derived by comparing them
type InputData struct {
	Current    [cfg.ActionCount]bool
	Previous   [cfg.ActionCount]bool
	LastDevice InputDevice
}

var Input = donburi.NewComponentType[InputData]()
