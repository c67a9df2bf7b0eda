package assets

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"

	cfg "github.com/automoto/voidrunner/config"
	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// blipGenerator streams a sine wave with a linear fade-out over length samples.
type blipGenerator struct {
	sr        beep.SampleRate
	freq      float64
	amplitude float64
	length    int
	pos       int
}

func (g *blipGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.length {
			return i, i > 0
		}
		t := float64(g.pos) / float64(g.sr)
		envelope := 1 - float64(g.pos)/float64(g.length)
		v := math.Sin(2*math.Pi*g.freq*t) * g.amplitude * envelope
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *blipGenerator) Err() error {
	return nil
}

// RenderTone synthesizes tone as 16-bit little-endian stereo PCM, the
// format ebiten's audio players take.
func RenderTone(tone cfg.Tone, sampleRate int, amplitude float64) []byte {
	sr := beep.SampleRate(sampleRate)
	length := sr.N(time.Duration(tone.Millis) * time.Millisecond)
	streamer := beep.Take(length, &blipGenerator{
		sr:        sr,
		freq:      tone.Frequency,
		amplitude: amplitude,
		length:    length,
	})

	pcm := make([]byte, 0, length*4)
	buf := make([][2]float64, 512)
	for {
		n, ok := streamer.Stream(buf)
		for _, s := range buf[:n] {
			pcm = binary.LittleEndian.AppendUint16(pcm, uint16(toInt16(s[0])))
			pcm = binary.LittleEndian.AppendUint16(pcm, uint16(toInt16(s[1])))
		}
		if !ok {
			break
		}
	}
	return pcm
}

func toInt16(v float64) int16 {
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}
	return int16(v * math.MaxInt16)
}

// ToneLoader renders configured UI tones once and hands out players for them
type ToneLoader struct {
	cache   map[cfg.SoundID][]byte
	context *audio.Context
}

// NewToneLoader creates a new tone loader with the given context
func NewToneLoader(ctx *audio.Context) *ToneLoader {
	return &ToneLoader{
		cache:   make(map[cfg.SoundID][]byte),
		context: ctx,
	}
}

// Preload renders every configured tone. Call this at startup to avoid
// synthesis on first play.
func (l *ToneLoader) Preload() {
	for id := range cfg.Audio.Tones {
		_, _ = l.pcm(id)
	}
}

// Player returns a new player for the sound each time
func (l *ToneLoader) Player(id cfg.SoundID) (*audio.Player, error) {
	pcm, err := l.pcm(id)
	if err != nil {
		return nil, err
	}
	return l.context.NewPlayerFromBytes(pcm), nil
}

func (l *ToneLoader) pcm(id cfg.SoundID) ([]byte, error) {
	if data, ok := l.cache[id]; ok {
		return data, nil
	}
	tone, ok := cfg.Audio.Tones[id]
	if !ok {
		return nil, fmt.Errorf("no tone configured for sound %d", id)
	}
	data := RenderTone(tone, l.context.SampleRate(), cfg.Audio.BlipAmplitude)
	l.cache[id] = data
	return data, nil
}
