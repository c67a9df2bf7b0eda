package ui

import (
	"bytes"
	"image/color"

	"github.com/automoto/voidrunner/logging"
	"github.com/automoto/voidrunner/settings"
	"github.com/automoto/voidrunner/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/rs/zerolog"
	"golang.org/x/image/font/gofont/goregular"
)

// SettingsUI holds the ebitenui interface for the settings screen
type SettingsUI struct {
	UI       *ebitenui.UI
	Settings *settings.Synchronizer

	// Callbacks
	OnChange func()
	OnGoBack func()

	// Keyboard/gamepad focus
	SelectedRow int

	// Widget references for updates
	titleLabels []*widget.Label
	valueLabels []*widget.Label
	statusLabel *widget.Label

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face

	log zerolog.Logger

	initialized bool
}

// NewSettingsUI creates the settings screen for s
func NewSettingsUI(s *settings.Synchronizer, onChange, onGoBack func()) *SettingsUI {
	sui := &SettingsUI{
		Settings: s,
		OnChange: onChange,
		OnGoBack: onGoBack,
		log:      logging.WithComponent("settings-ui"),
	}

	sui.loadFonts()
	sui.buildUI()

	return sui
}

func (sui *SettingsUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	sui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   20,
	}
	sui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   13,
	}
	sui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   10,
	}
}

func (sui *SettingsUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{8, 10, 24, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("SETTINGS", &sui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	contentContainer.AddChild(sui.buildRowsContainer())
	contentContainer.AddChild(sui.buildButtonsContainer())

	sui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &sui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 100, 255},
		}),
	)
	contentContainer.AddChild(sui.statusLabel)

	rootContainer.AddChild(contentContainer)

	sui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
	// Widgets aren't validated yet; labels are refreshed on the first Update
}

func (sui *SettingsUI) buildRowsContainer() *widget.Container {
	padding := widget.Insets{Top: 4, Bottom: 4, Left: 6, Right: 6}
	container := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{30, 30, 40, 255})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(3),
		)),
	)

	sui.titleLabels = make([]*widget.Label, len(systems.SettingsRows))
	sui.valueLabels = make([]*widget.Label, len(systems.SettingsRows))
	for i, row := range systems.SettingsRows {
		container.AddChild(sui.buildSettingRow(i, row))
	}

	return container
}

func (sui *SettingsUI) buildSettingRow(index int, row systems.SettingsRow) *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	title, value := systems.SettingLabel(sui.Settings, row)

	sui.titleLabels[index] = widget.NewLabel(
		widget.LabelOpts.Text(title, &sui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	container.AddChild(sui.titleLabels[index])

	container.AddChild(sui.arrowButton("<", func() { sui.adjust(index, -1) }))

	sui.valueLabels[index] = widget.NewLabel(
		widget.LabelOpts.Text(value, &sui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 100, 255},
		}),
	)
	container.AddChild(sui.valueLabels[index])

	container.AddChild(sui.arrowButton(">", func() { sui.adjust(index, 1) }))

	return container
}

func (sui *SettingsUI) arrowButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(24, 18)),
		widget.ButtonOpts.Image(sui.buttonImage()),
		widget.ButtonOpts.Text(label, &sui.smallFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{200, 200, 200, 255},
			Hover:   color.RGBA{255, 255, 255, 255},
			Pressed: color.RGBA{150, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (sui *SettingsUI) buildButtonsContainer() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	backButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(80, 28)),
		widget.ButtonOpts.Image(sui.buttonImage()),
		widget.ButtonOpts.Text("Back", &sui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 200, 200, 255},
			Pressed: color.RGBA{200, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if sui.OnGoBack != nil {
				sui.OnGoBack()
			}
		}),
	)
	container.AddChild(backButton)

	saveButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(100, 28)),
		widget.ButtonOpts.Image(sui.saveButtonImage()),
		widget.ButtonOpts.Text("SAVE", &sui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{200, 255, 200, 255},
			Pressed: color.RGBA{150, 200, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			sui.Save()
		}),
	)
	container.AddChild(saveButton)

	return container
}

func (sui *SettingsUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})

	return &widget.ButtonImage{
		Idle:    idle,
		Hover:   hover,
		Pressed: pressed,
	}
}

func (sui *SettingsUI) saveButtonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{40, 100, 40, 255})
	hover := image.NewNineSliceColor(color.RGBA{60, 140, 60, 255})
	pressed := image.NewNineSliceColor(color.RGBA{30, 80, 30, 255})

	return &widget.ButtonImage{
		Idle:    idle,
		Hover:   hover,
		Pressed: pressed,
	}
}

// MoveSelection moves keyboard focus up or down with wrap-around
func (sui *SettingsUI) MoveSelection(direction int) {
	n := len(systems.SettingsRows)
	sui.SelectedRow = ((sui.SelectedRow+direction)%n + n) % n
	sui.UpdateUI()
}

// AdjustSelected steps the focused row's value
func (sui *SettingsUI) AdjustSelected(direction int) {
	sui.adjust(sui.SelectedRow, direction)
}

func (sui *SettingsUI) adjust(index, direction int) {
	sui.SelectedRow = index
	if err := systems.AdjustSetting(sui.Settings, systems.SettingsRows[index], direction); err != nil {
		sui.log.Warn().Err(err).Int("row", index).Msg("setting rejected")
		sui.statusLabel.Label = "Invalid value"
		return
	}
	sui.statusLabel.Label = ""
	sui.UpdateUI()
	if sui.OnChange != nil {
		sui.OnChange()
	}
}

// Save persists the current settings and reports the outcome in the status line
func (sui *SettingsUI) Save() {
	if err := sui.Settings.Save(); err != nil {
		sui.log.Error().Err(err).Msg("could not save settings")
		sui.statusLabel.Label = "Could not save settings"
		return
	}
	sui.statusLabel.Label = "Settings saved"
}

// UpdateUI refreshes every row; preset changes rewrite texture and AA rows too
func (sui *SettingsUI) UpdateUI() {
	for i, row := range systems.SettingsRows {
		title, value := systems.SettingLabel(sui.Settings, row)
		if i == sui.SelectedRow {
			title = "> " + title
		}
		if sui.titleLabels[i] != nil {
			sui.titleLabels[i].Label = title
		}
		if sui.valueLabels[i] != nil {
			sui.valueLabels[i].Label = value
		}
	}
}

// Update calls the UI's Update method
func (sui *SettingsUI) Update() {
	sui.UI.Update()
	if !sui.initialized {
		sui.initialized = true
		sui.UpdateUI()
	}
}
