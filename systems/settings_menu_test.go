package systems

import (
	"testing"

	cfg "github.com/automoto/voidrunner/config"
	"github.com/automoto/voidrunner/prefs"
	"github.com/automoto/voidrunner/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newTestSync(t *testing.T) *settings.Synchronizer {
	t.Helper()
	return settings.NewSynchronizer(prefs.NewMemoryStore(), settings.Options{ResolutionCount: 4})
}

func TestAdjustPresetCycles(t *testing.T) {
	s := newTestSync(t)
	require.Equal(t, settings.PresetVeryHigh, s.Preset())

	require.NoError(t, AdjustSetting(s, RowPreset, +1))
	assert.Equal(t, settings.PresetUltra, s.Preset())

	require.NoError(t, AdjustSetting(s, RowPreset, +1))
	assert.Equal(t, settings.PresetVeryLow, s.Preset())
	assert.Equal(t, settings.TextureEighth, s.Values().Texture)

	require.NoError(t, AdjustSetting(s, RowPreset, -1))
	assert.Equal(t, settings.PresetUltra, s.Preset())
}

func TestAdjustPresetLeavesCustom(t *testing.T) {
	s := newTestSync(t)
	require.NoError(t, AdjustSetting(s, RowTexture, +1))
	require.Equal(t, settings.PresetCustom, s.Preset())

	require.NoError(t, AdjustSetting(s, RowPreset, +1))
	assert.Equal(t, settings.PresetVeryLow, s.Preset())

	require.NoError(t, AdjustSetting(s, RowAntiAliasing, -1))
	require.Equal(t, settings.PresetCustom, s.Preset())
	require.NoError(t, AdjustSetting(s, RowPreset, -1))
	assert.Equal(t, settings.PresetUltra, s.Preset())
}

func TestAdjustSubOptionsWrap(t *testing.T) {
	s := newTestSync(t)

	require.NoError(t, AdjustSetting(s, RowTexture, -1))
	assert.Equal(t, settings.TextureEighth, s.Values().Texture)

	require.NoError(t, AdjustSetting(s, RowAntiAliasing, +1))
	require.NoError(t, AdjustSetting(s, RowAntiAliasing, +1))
	assert.Equal(t, settings.AAOff, s.Values().AntiAliasing)

	require.NoError(t, AdjustSetting(s, RowWindowMode, -1))
	assert.Equal(t, settings.Windowed, s.Values().WindowMode)

	require.NoError(t, AdjustSetting(s, RowResolution, -1))
	assert.Equal(t, 3, s.Values().Resolution)
}

func TestAdjustVolumeSteps(t *testing.T) {
	s := newTestSync(t)

	require.NoError(t, AdjustSetting(s, RowVolume, +1))
	assert.Equal(t, 1.0, s.Values().Volume)

	require.NoError(t, AdjustSetting(s, RowVolume, -1))
	require.NoError(t, AdjustSetting(s, RowVolume, -1))
	assert.InDelta(t, 0.8, s.Values().Volume, 1e-9)

	require.NoError(t, s.SetVolume(0.04))
	require.NoError(t, AdjustSetting(s, RowVolume, -1))
	assert.Equal(t, 0.0, s.Values().Volume)
}

func TestAdjustUnknownRow(t *testing.T) {
	s := newTestSync(t)
	assert.ErrorIs(t, AdjustSetting(s, SettingsRow(99), 1), settings.ErrInvalidArgument)
}

func TestSettingLabel(t *testing.T) {
	s := newTestSync(t)

	_, value := SettingLabel(s, RowPreset)
	assert.Equal(t, "Very High", value)

	_, value = SettingLabel(s, RowResolution)
	assert.Equal(t, "1280 x 720", value)

	require.NoError(t, s.SetVolume(0.5))
	_, value = SettingLabel(s, RowVolume)
	assert.Equal(t, "[|||||.....] 50%", value)

	require.NoError(t, AdjustSetting(s, RowTexture, +1))
	_, value = SettingLabel(s, RowPreset)
	assert.Equal(t, "Custom", value)
}

func TestWrapIndex(t *testing.T) {
	assert.Equal(t, 0, wrapIndex(3, 1, 4))
	assert.Equal(t, 3, wrapIndex(0, -1, 4))
	assert.Equal(t, 0, wrapIndex(2, 1, 0))
}

type fakeNavigator struct {
	moves   []int
	adjusts []int
	saves   int
}

func (f *fakeNavigator) MoveSelection(direction int)  { f.moves = append(f.moves, direction) }
func (f *fakeNavigator) AdjustSelected(direction int) { f.adjusts = append(f.adjusts, direction) }
func (f *fakeNavigator) Save()                        { f.saves++ }

func TestUpdateSettingsMenuRoutesActions(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	input := getOrCreateInput(e)
	nav := &fakeNavigator{}
	backs := 0
	system := NewUpdateSettingsMenu(nav, func() { backs++ })

	for _, id := range []cfg.ActionID{cfg.ActionMenuDown, cfg.ActionMenuUp, cfg.ActionMenuRight, cfg.ActionMenuLeft, cfg.ActionMenuSelect} {
		press(input, id)
		system(e)
		release(input)
		system(e)
	}

	assert.Equal(t, []int{1, -1}, nav.moves)
	assert.Equal(t, []int{1, -1}, nav.adjusts)
	assert.Equal(t, 1, nav.saves)
	assert.Zero(t, backs)

	press(input, cfg.ActionMenuBack)
	system(e)
	assert.Equal(t, 1, backs)
}
