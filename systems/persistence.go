package systems

import (
	cfg "github.com/automoto/voidrunner/config"
	"github.com/automoto/voidrunner/logging"
	"github.com/automoto/voidrunner/prefs"
	"github.com/automoto/voidrunner/settings"
)

// OpenPreferences opens the on-disk preference store, falling back to an
// in-memory store so the game still runs when the save directory is unusable.
func OpenPreferences() prefs.Store {
	store, err := prefs.OpenDiskStore(cfg.Settings.AppName)
	if err != nil {
		log := logging.WithComponent("persistence")
		log.Warn().Err(err).Msg("could not initialize persistence, settings will not be saved")
		return prefs.NewMemoryStore()
	}
	return store
}

// LoadSettings builds the synchronizer for the configured resolutions,
// loads stored values and applies them to the engine.
func LoadSettings(store prefs.Store, engine settings.Engine) *settings.Synchronizer {
	sync := settings.NewSynchronizer(store, settings.Options{
		ResolutionCount:   len(cfg.Settings.Resolutions),
		DefaultResolution: settings.BestResolutionIndex(ResolutionSizes(), CurrentDisplaySize()),
		Engine:            engine,
	})
	sync.Load()
	sync.ApplyAll()
	return sync
}
