package systems

import (
	"github.com/automoto/voidrunner/components"
	cfg "github.com/automoto/voidrunner/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reused between polls
var gamepadIDs []ebiten.GamepadID

// heldActions is the most recent poll. It outlives scenes so a new scene's
// input starts from what is already held instead of from nothing.
var heldActions [cfg.ActionCount]bool

// UpdateInput polls keyboard and gamepads into the scene's Input component.
// Must run before any menu system.
func UpdateInput(e *ecs.ECS) {
	current, device, used := pollActions()
	input := getOrCreateInput(e)
	applyInput(input, current)
	if used {
		input.LastDevice = device
	}
}

func pollActions() (current [cfg.ActionCount]bool, device components.InputDevice, used bool) {
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for id, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				current[id] = true
				if !used {
					device, used = components.InputKeyboard, true
				}
			}
		}
		for _, gp := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gp) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gp, btn) {
					current[id] = true
					device, used = components.InputGamepad, true
				}
			}
		}
	}

	if pollLeftStick(&current) {
		device, used = components.InputGamepad, true
	}
	return current, device, used
}

// pollLeftStick maps left stick deflection past the deadzone onto the menu
// directions and reports whether any stick moved.
func pollLeftStick(current *[cfg.ActionCount]bool) bool {
	dz := cfg.Input.AnalogDeadzone
	moved := false
	for _, gp := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gp) {
			continue
		}
		x := ebiten.StandardGamepadAxisValue(gp, ebiten.StandardGamepadAxisLeftStickHorizontal)
		y := ebiten.StandardGamepadAxisValue(gp, ebiten.StandardGamepadAxisLeftStickVertical)
		for _, d := range []struct {
			on bool
			id cfg.ActionID
		}{
			{x < -dz, cfg.ActionMenuLeft},
			{x > dz, cfg.ActionMenuRight},
			{y < -dz, cfg.ActionMenuUp},
			{y > dz, cfg.ActionMenuDown},
		} {
			if d.on {
				current[d.id] = true
				moved = true
			}
		}
	}
	return moved
}

// applyInput advances input by one frame
func applyInput(input *components.InputData, current [cfg.ActionCount]bool) {
	input.Previous = input.Current
	input.Current = current
	heldActions = current
}

// getOrCreateInput returns the singleton Input component. A new one starts
// with the held actions as its current frame.
func getOrCreateInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Input))
		components.Input.SetValue(entry, components.InputData{Current: heldActions})
	}
	return components.Input.Get(entry)
}

// GetAction returns the state of one action, edges included
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
