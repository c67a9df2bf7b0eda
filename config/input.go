package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID is a logical menu action, independent of device
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMenuUp
	ActionMenuDown
	ActionMenuLeft
	ActionMenuRight
	ActionMenuSelect
	ActionMenuBack
	ActionCount // array size, keep last
)

// InputBinding lists the keys and standard-layout gamepad buttons for an action.
// The left stick is polled separately for the four directions.
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

type InputConfig struct {
	Bindings       map[ActionID]InputBinding `yaml:"-"`
	AnalogDeadzone float64                   `yaml:"analogDeadzone"`
}

var Input InputConfig

func bind(button ebiten.StandardGamepadButton, keys ...ebiten.Key) InputBinding {
	return InputBinding{Keys: keys, StandardGamepadButtons: []ebiten.StandardGamepadButton{button}}
}

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		Bindings: map[ActionID]InputBinding{
			ActionMenuUp:     bind(ebiten.StandardGamepadButtonLeftTop, ebiten.KeyUp, ebiten.KeyW),
			ActionMenuDown:   bind(ebiten.StandardGamepadButtonLeftBottom, ebiten.KeyDown, ebiten.KeyS),
			ActionMenuLeft:   bind(ebiten.StandardGamepadButtonLeftLeft, ebiten.KeyLeft, ebiten.KeyA),
			ActionMenuRight:  bind(ebiten.StandardGamepadButtonLeftRight, ebiten.KeyRight, ebiten.KeyD),
			ActionMenuSelect: bind(ebiten.StandardGamepadButtonRightBottom, ebiten.KeyEnter, ebiten.KeySpace),
			ActionMenuBack:   bind(ebiten.StandardGamepadButtonRightRight, ebiten.KeyEscape, ebiten.KeyBackspace),
		},
	}
}
