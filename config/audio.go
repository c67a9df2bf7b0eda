package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundMenuNavigate
	SoundMenuSelect
)

// Tone describes a generated UI blip
type Tone struct {
	Frequency float64 // Hz
	Millis    int
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int              `yaml:"sampleRate"`
	BlipAmplitude float64          `yaml:"blipAmplitude"`
	Tones         map[SoundID]Tone `yaml:"-"`
}

var Audio AudioConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		BlipAmplitude: 0.3,
		Tones: map[SoundID]Tone{
			SoundMenuNavigate: {Frequency: 660, Millis: 40},
			SoundMenuSelect:   {Frequency: 880, Millis: 70},
		},
	}
}
