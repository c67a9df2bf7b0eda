package systems

import (
	"github.com/automoto/voidrunner/components"
	cfg "github.com/automoto/voidrunner/config"
	"github.com/automoto/voidrunner/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

var quitRequested bool

// RequestQuit asks the game loop to terminate after the current frame
func RequestQuit() {
	quitRequested = true
}

// QuitRequested reports whether the player confirmed quitting
func QuitRequested() bool {
	return quitRequested
}

// NewUpdateMenu creates an UpdateMenu system with scene transition capability
func NewUpdateMenu(sceneChanger SceneChanger, createFlightScene, createSettingsScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e)
		input := getOrCreateInput(e)

		if menu.ShowingConfirmDialog {
			updateQuitDialog(e, menu, input)
			return
		}

		numOptions := len(menu.VisibleOptions)
		if numOptions == 0 {
			return
		}

		// Navigate menu with wrap-around
		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			PlaySFX(e, cfg.SoundMenuNavigate)
			menu.SelectedIndex = (menu.SelectedIndex - 1 + numOptions) % numOptions
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			PlaySFX(e, cfg.SoundMenuNavigate)
			menu.SelectedIndex = (menu.SelectedIndex + 1) % numOptions
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			PlaySFX(e, cfg.SoundMenuSelect)
			switch menu.VisibleOptions[menu.SelectedIndex] {
			case components.MainMenuStart:
				sceneChanger.ChangeScene(createFlightScene())
			case components.MainMenuSettings:
				sceneChanger.ChangeScene(createSettingsScene())
			case components.MainMenuExit:
				openQuitDialog(menu)
			}
			return
		}

		// Escape asks before quitting, same as the Exit entry
		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			PlaySFX(e, cfg.SoundMenuNavigate)
			openQuitDialog(menu)
		}
	}
}

func openQuitDialog(menu *components.MenuData) {
	menu.ShowingConfirmDialog = true
	menu.ConfirmSelection = 0
}

// updateQuitDialog handles the Yes/No quit confirmation
func updateQuitDialog(e *ecs.ECS, menu *components.MenuData, input *components.InputData) {
	if GetAction(input, cfg.ActionMenuLeft).JustPressed || GetAction(input, cfg.ActionMenuRight).JustPressed {
		menu.ConfirmSelection = 1 - menu.ConfirmSelection
		PlaySFX(e, cfg.SoundMenuNavigate)
	}

	if GetAction(input, cfg.ActionMenuBack).JustPressed {
		menu.ShowingConfirmDialog = false
		PlaySFX(e, cfg.SoundMenuNavigate)
		return
	}

	if GetAction(input, cfg.ActionMenuSelect).JustPressed {
		PlaySFX(e, cfg.SoundMenuSelect)
		if menu.ConfirmSelection == 1 {
			RequestQuit()
			return
		}
		menu.ShowingConfirmDialog = false
	}
}

// DrawMenu renders the main menu screen
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateMenu(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.DrawFilledRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Menu.BackgroundColor,
		false,
	)

	titleFont := fonts.Title.Get()
	title := "VOIDRUNNER"
	titleWidth := len(title) * 20 // Approximate width for 32pt font
	titleX := int((width - float64(titleWidth)) / 2)
	text.Draw(screen, title, titleFont, titleX, int(cfg.Menu.TitleY), cfg.Menu.TitleColor)

	menuFont := fonts.Bold.Get()
	for i, option := range menu.VisibleOptions {
		y := cfg.Menu.MenuStartY + float64(i)*(cfg.Menu.MenuItemHeight+cfg.Menu.MenuItemGap)

		textColor := cfg.Menu.TextColorNormal
		if i == menu.SelectedIndex {
			textColor = cfg.Menu.TextColorSelected
		}

		label := getOptionLabel(option)
		textWidth := len(label) * 12
		x := int((width - float64(textWidth)) / 2)
		text.Draw(screen, label, menuFont, x, int(y)+int(cfg.Menu.MenuItemHeight), textColor)
	}

	input := getOrCreateInput(e)
	hint := getMenuHint(input.LastDevice)
	hintFont := fonts.Small.Get()
	hintWidth := len(hint) * 7
	hintX := int((width - float64(hintWidth)) / 2)
	text.Draw(screen, hint, hintFont, hintX, int(height)-12, cfg.Menu.TextColorNormal)

	if menu.ShowingConfirmDialog {
		drawQuitDialog(screen, menu, width, height)
	}
}

// drawQuitDialog renders the quit confirmation box over the menu
func drawQuitDialog(screen *ebiten.Image, menu *components.MenuData, width, height float64) {
	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), cfg.Menu.DialogColor, false)

	boxW, boxH := 260.0, 90.0
	boxX := (width - boxW) / 2
	boxY := (height - boxH) / 2
	vector.DrawFilledRect(screen, float32(boxX), float32(boxY), float32(boxW), float32(boxH), cfg.Menu.BackgroundColor, false)
	vector.StrokeRect(screen, float32(boxX), float32(boxY), float32(boxW), float32(boxH), 2, cfg.Menu.TextColorSelected, false)

	font := fonts.Bold.Get()
	prompt := cfg.Menu.QuitPrompt
	promptX := int(width/2) - len(prompt)*6
	text.Draw(screen, prompt, font, promptX, int(boxY)+34, cfg.Menu.TitleColor)

	choices := [2]string{"No", "Yes"}
	for i, choice := range choices {
		clr := cfg.Menu.TextColorNormal
		if i == menu.ConfirmSelection {
			clr = cfg.Menu.TextColorSelected
			choice = "> " + choice
		}
		x := int(boxX) + 60 + i*100
		text.Draw(screen, choice, font, x, int(boxY)+70, clr)
	}
}

// getMenuHint returns the navigation hint for the last used device
func getMenuHint(device components.InputDevice) string {
	if device == components.InputGamepad {
		return "Stick/D-Pad: Navigate   A: Select   B: Quit"
	}
	return "Arrows: Navigate   Enter: Select   Esc: Quit"
}

// getOptionLabel returns the display text for a menu option
func getOptionLabel(option components.MainMenuOption) string {
	switch option {
	case components.MainMenuStart:
		return "Start"
	case components.MainMenuSettings:
		return "Settings"
	case components.MainMenuExit:
		return "Exit"
	default:
		return ""
	}
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	if _, ok := components.Menu.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Menu))
		components.Menu.SetValue(ent, components.MenuData{
			SelectedIndex: 0,
			VisibleOptions: []components.MainMenuOption{
				components.MainMenuStart,
				components.MainMenuSettings,
				components.MainMenuExit,
			},
		})
	}

	ent, _ := components.Menu.First(e.World)
	return components.Menu.Get(ent)
}
