package systems

import (
	"sync"

	"github.com/automoto/voidrunner/assets"
	"github.com/automoto/voidrunner/components"
	cfg "github.com/automoto/voidrunner/config"
	"github.com/automoto/voidrunner/logging"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/rs/zerolog"
	"github.com/yohamta/donburi/ecs"
)

// sfxSource hands out a fresh player per sound
type sfxSource interface {
	Player(id cfg.SoundID) (*audio.Player, error)
}

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalToneLoader   sfxSource
	globalMasterVolume = 1.0
	audioLog           zerolog.Logger
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		audioLog = logging.WithComponent("audio")
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		loader := assets.NewToneLoader(globalAudioContext)
		loader.Preload()
		globalToneLoader = loader
	})
}

// UpdateAudio plays sound effects queued during the frame
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	for _, soundID := range audioData.PendingSFX {
		playSFX(soundID)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(soundID cfg.SoundID) {
	if globalMasterVolume <= 0 {
		return
	}
	player, err := globalToneLoader.Player(soundID)
	if err != nil {
		audioLog.Warn().Err(err).Int("sound", int(soundID)).Msg("could not play sound")
		return
	}
	player.SetVolume(globalMasterVolume)
	player.Play()
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// SetMasterVolume changes the output volume (0.0 - 1.0)
func SetMasterVolume(volume float64) {
	globalMasterVolume = volume
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
