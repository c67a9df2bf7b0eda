package settings

import (
	"errors"
	"testing"

	"github.com/automoto/voidrunner/prefs"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingEngine struct {
	texture    []TextureLevel
	aa         []AntiAliasing
	resolution []int
	windowMode []WindowMode
	volume     []float64
}

func (e *recordingEngine) SetTextureLevel(l TextureLevel) { e.texture = append(e.texture, l) }
func (e *recordingEngine) SetAntiAliasing(l AntiAliasing) { e.aa = append(e.aa, l) }
func (e *recordingEngine) SetResolution(i int)            { e.resolution = append(e.resolution, i) }
func (e *recordingEngine) SetWindowMode(m WindowMode)     { e.windowMode = append(e.windowMode, m) }
func (e *recordingEngine) SetVolume(v float64)            { e.volume = append(e.volume, v) }

type failingStore struct {
	*prefs.MemoryStore
	failOn prefs.Key
}

var errDiskFull = errors.New("disk full")

func (s failingStore) SetInt(key prefs.Key, v int) error {
	if key == s.failOn {
		return errDiskFull
	}
	return s.MemoryStore.SetInt(key, v)
}

func newSync(store prefs.Store) *Synchronizer {
	return NewSynchronizer(store, Options{ResolutionCount: 4, DefaultResolution: 2})
}

func TestApplyPresetUsesTable(t *testing.T) {
	for _, p := range NamedPresets {
		t.Run(p.String(), func(t *testing.T) {
			s := newSync(prefs.NewMemoryStore())
			require.NoError(t, s.ApplyPreset(p))

			want, ok := PresetPair(p)
			require.True(t, ok)
			v := s.Values()
			assert.Equal(t, p, v.Preset)
			assert.Equal(t, want.Texture, v.Texture)
			assert.Equal(t, want.AntiAliasing, v.AntiAliasing)
		})
	}
}

func TestApplyPresetIsIdempotent(t *testing.T) {
	once := newSync(prefs.NewMemoryStore())
	twice := newSync(prefs.NewMemoryStore())
	require.NoError(t, once.SetTextureLevel(TextureHalf))
	require.NoError(t, twice.SetTextureLevel(TextureHalf))

	require.NoError(t, once.ApplyPreset(PresetMedium))
	require.NoError(t, twice.ApplyPreset(PresetMedium))
	require.NoError(t, twice.ApplyPreset(PresetMedium))

	if diff := cmp.Diff(once.Values(), twice.Values()); diff != "" {
		t.Errorf("values mismatch (-once +twice):\n%s", diff)
	}
}

func TestApplyPresetCustomKeepsSubOptions(t *testing.T) {
	s := newSync(prefs.NewMemoryStore())
	require.NoError(t, s.ApplyPreset(PresetLow))
	require.NoError(t, s.ApplyPreset(PresetCustom))

	v := s.Values()
	assert.Equal(t, PresetCustom, v.Preset)
	assert.Equal(t, TextureQuarter, v.Texture)
	assert.Equal(t, AAOff, v.AntiAliasing)
}

func TestSubOptionForcesCustom(t *testing.T) {
	for _, p := range append(NamedPresets, PresetCustom) {
		t.Run(p.String()+"/texture", func(t *testing.T) {
			s := newSync(prefs.NewMemoryStore())
			require.NoError(t, s.ApplyPreset(p))
			require.NoError(t, s.SetTextureLevel(TextureFull))
			assert.Equal(t, PresetCustom, s.Preset())
		})
		t.Run(p.String()+"/aa", func(t *testing.T) {
			s := newSync(prefs.NewMemoryStore())
			require.NoError(t, s.ApplyPreset(p))
			require.NoError(t, s.SetAntiAliasingLevel(AA4x))
			assert.Equal(t, PresetCustom, s.Preset())
		})
	}
}

func TestVeryLowThenAntiAliasing(t *testing.T) {
	s := newSync(prefs.NewMemoryStore())

	require.NoError(t, s.ApplyPreset(PresetVeryLow))
	v := s.Values()
	assert.Equal(t, TextureLevel(3), v.Texture)
	assert.Equal(t, AntiAliasing(0), v.AntiAliasing)
	assert.Equal(t, PresetVeryLow, v.Preset)

	require.NoError(t, s.SetAntiAliasingLevel(2))
	v = s.Values()
	assert.Equal(t, AntiAliasing(2), v.AntiAliasing)
	assert.Equal(t, PresetCustom, v.Preset)
	assert.Equal(t, TextureLevel(3), v.Texture)
}

func TestInvalidArgumentsLeaveStateUnchanged(t *testing.T) {
	s := newSync(prefs.NewMemoryStore())
	require.NoError(t, s.ApplyPreset(PresetHigh))
	before := s.Values()

	assert.ErrorIs(t, s.ApplyPreset(QualityPreset(7)), ErrInvalidArgument)
	assert.ErrorIs(t, s.ApplyPreset(QualityPreset(-1)), ErrInvalidArgument)
	assert.ErrorIs(t, s.SetTextureLevel(TextureLevel(4)), ErrInvalidArgument)
	assert.ErrorIs(t, s.SetTextureLevel(TextureLevel(-1)), ErrInvalidArgument)
	assert.ErrorIs(t, s.SetAntiAliasingLevel(AntiAliasing(9)), ErrInvalidArgument)
	assert.ErrorIs(t, s.SetResolution(4), ErrInvalidArgument)
	assert.ErrorIs(t, s.SetResolution(-1), ErrInvalidArgument)

	if diff := cmp.Diff(before, s.Values()); diff != "" {
		t.Errorf("state changed after rejected input (-before +after):\n%s", diff)
	}
}

func TestSetResolutionWithoutKnownList(t *testing.T) {
	s := NewSynchronizer(prefs.NewMemoryStore(), Options{})
	require.NoError(t, s.SetResolution(11))
	assert.Equal(t, 11, s.Values().Resolution)
}

func TestWindowModeCoercion(t *testing.T) {
	s := newSync(prefs.NewMemoryStore())

	s.SetWindowMode(Windowed)
	assert.Equal(t, Windowed, s.Values().WindowMode)

	s.SetWindowMode(WindowMode(42))
	assert.Equal(t, ExclusiveFullscreen, s.Values().WindowMode)
}

func TestSetVolumeClamps(t *testing.T) {
	s := newSync(prefs.NewMemoryStore())

	require.NoError(t, s.SetVolume(0.4))
	assert.InDelta(t, 0.4, s.Values().Volume, 1e-9)

	require.NoError(t, s.SetVolume(1.7))
	assert.Equal(t, 1.0, s.Values().Volume)

	require.NoError(t, s.SetVolume(-3))
	assert.Equal(t, 0.0, s.Values().Volume)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := prefs.NewMemoryStore()
	s := newSync(store)
	require.NoError(t, s.ApplyPreset(PresetMedium))
	require.NoError(t, s.SetTextureLevel(TextureEighth))
	require.NoError(t, s.SetResolution(3))
	s.SetWindowMode(BorderlessFullscreenWindow)
	require.NoError(t, s.SetVolume(0.35))
	require.NoError(t, s.Save())

	restarted := newSync(store)
	restarted.Load()

	if diff := cmp.Diff(s.Values(), restarted.Values()); diff != "" {
		t.Errorf("reloaded values mismatch (-saved +loaded):\n%s", diff)
	}
	for _, k := range prefs.Keys {
		assert.True(t, store.Has(k), "key %s not written", k)
	}
}

func TestLoadEmptyStoreYieldsDefaults(t *testing.T) {
	s := newSync(prefs.NewMemoryStore())
	require.NoError(t, s.ApplyPreset(PresetLow))
	s.Load()

	want := Values{
		Preset:       PresetVeryHigh,
		Resolution:   2,
		Texture:      TextureFull,
		AntiAliasing: AA4x,
		WindowMode:   ExclusiveFullscreen,
		Volume:       1.0,
	}
	if diff := cmp.Diff(want, s.Values()); diff != "" {
		t.Errorf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFillsMissingSubOptionsFromPreset(t *testing.T) {
	store := prefs.NewMemoryStore()
	require.NoError(t, store.SetInt(prefs.KeyQualityPreset, int(PresetLow)))

	s := newSync(store)
	s.Load()

	v := s.Values()
	assert.Equal(t, PresetLow, v.Preset)
	assert.Equal(t, TextureQuarter, v.Texture)
	assert.Equal(t, AAOff, v.AntiAliasing)
}

func TestLoadMarksMismatchedPresetCustom(t *testing.T) {
	store := prefs.NewMemoryStore()
	require.NoError(t, store.SetInt(prefs.KeyQualityPreset, int(PresetVeryHigh)))
	require.NoError(t, store.SetInt(prefs.KeyTexture, int(TextureEighth)))

	s := newSync(store)
	s.Load()

	v := s.Values()
	assert.Equal(t, PresetCustom, v.Preset)
	assert.Equal(t, TextureEighth, v.Texture)
	assert.Equal(t, AA4x, v.AntiAliasing)
}

func TestLoadKeepsPresetWhenSubOptionsMatch(t *testing.T) {
	store := prefs.NewMemoryStore()
	require.NoError(t, store.SetInt(prefs.KeyQualityPreset, int(PresetMedium)))
	require.NoError(t, store.SetInt(prefs.KeyTexture, int(TextureHalf)))
	require.NoError(t, store.SetInt(prefs.KeyAntiAliasing, int(AA2x)))

	s := newSync(store)
	s.Load()

	assert.Equal(t, PresetMedium, s.Preset())
}

func TestLoadDiscardsOutOfRangeValues(t *testing.T) {
	store := prefs.NewMemoryStore()
	require.NoError(t, store.SetInt(prefs.KeyQualityPreset, 99))
	require.NoError(t, store.SetInt(prefs.KeyTexture, 12))
	require.NoError(t, store.SetInt(prefs.KeyAntiAliasing, -2))
	require.NoError(t, store.SetInt(prefs.KeyResolution, 40))
	require.NoError(t, store.SetInt(prefs.KeyScreenMode, 8))
	require.NoError(t, store.SetFloat(prefs.KeyVolume, 2.5))

	s := newSync(store)
	s.Load()

	want := Values{
		Preset:       PresetVeryHigh,
		Resolution:   2,
		Texture:      TextureFull,
		AntiAliasing: AA4x,
		WindowMode:   ExclusiveFullscreen,
		Volume:       1.0,
	}
	if diff := cmp.Diff(want, s.Values()); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadDefaultResolutionOutOfRange(t *testing.T) {
	s := NewSynchronizer(prefs.NewMemoryStore(), Options{ResolutionCount: 2, DefaultResolution: 5})
	s.Load()
	assert.Equal(t, 0, s.Values().Resolution)
}

func TestSaveReportsStoreError(t *testing.T) {
	store := failingStore{MemoryStore: prefs.NewMemoryStore(), failOn: prefs.KeyTexture}
	s := newSync(store)

	err := s.Save()
	require.Error(t, err)
	assert.ErrorIs(t, err, errDiskFull)
	assert.Contains(t, err.Error(), string(prefs.KeyTexture))
}

func TestEngineReceivesChanges(t *testing.T) {
	eng := &recordingEngine{}
	s := NewSynchronizer(prefs.NewMemoryStore(), Options{ResolutionCount: 3, Engine: eng})

	require.NoError(t, s.ApplyPreset(PresetUltra))
	require.NoError(t, s.SetTextureLevel(TextureHalf))
	require.NoError(t, s.SetResolution(1))
	s.SetWindowMode(Windowed)
	require.NoError(t, s.SetVolume(0.5))

	assert.Equal(t, []TextureLevel{TextureFull, TextureHalf}, eng.texture)
	assert.Equal(t, []AntiAliasing{AA8x}, eng.aa)
	assert.Equal(t, []int{1}, eng.resolution)
	assert.Equal(t, []WindowMode{Windowed}, eng.windowMode)
	assert.Equal(t, []float64{0.5}, eng.volume)
}

func TestEngineNotCalledOnRejectedInput(t *testing.T) {
	eng := &recordingEngine{}
	s := NewSynchronizer(prefs.NewMemoryStore(), Options{ResolutionCount: 3, Engine: eng})

	_ = s.ApplyPreset(QualityPreset(10))
	_ = s.SetTextureLevel(TextureLevel(10))
	_ = s.SetResolution(3)

	assert.Empty(t, eng.texture)
	assert.Empty(t, eng.aa)
	assert.Empty(t, eng.resolution)
}

func TestApplyAll(t *testing.T) {
	eng := &recordingEngine{}
	s := NewSynchronizer(prefs.NewMemoryStore(), Options{ResolutionCount: 3, DefaultResolution: 1, Engine: eng})
	s.Load()
	s.ApplyAll()

	assert.Equal(t, []WindowMode{ExclusiveFullscreen}, eng.windowMode)
	assert.Equal(t, []int{1}, eng.resolution)
	assert.Equal(t, []TextureLevel{TextureFull}, eng.texture)
	assert.Equal(t, []AntiAliasing{AA4x}, eng.aa)
	assert.Equal(t, []float64{1.0}, eng.volume)
}
