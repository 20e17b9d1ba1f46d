package audio

import "github.com/lixenwraith/vi-snake/constants"

// AudioConfig holds mixer settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0 - 1.0
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns the built-in mix
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   constants.DefaultSampleRate,
		EffectVolumes: map[SoundType]float64{
			SoundBell:   1.0,
			SoundCoin:   0.5,
			SoundWhoosh: 0.6,
			SoundBuzz:   0.8,
		},
	}
}

// NewAudioConfig builds a mix from named effect volumes
// Unknown names are skipped, missing effects keep their default volume
func NewAudioConfig(enabled bool, master float64, sampleRate int, effects map[string]float64) *AudioConfig {
	cfg := DefaultAudioConfig()
	cfg.Enabled = enabled
	cfg.MasterVolume = clamp01(master)
	if sampleRate > 0 {
		cfg.SampleRate = sampleRate
	}
	for name, v := range effects {
		if st, err := ParseSoundType(name); err == nil {
			cfg.EffectVolumes[st] = clamp01(v)
		}
	}
	return cfg
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
