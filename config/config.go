package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/engine"
)

// Environment overrides
const (
	EnvAudioEnabled = "VI_SNAKE_AUDIO_ENABLED"
	EnvMasterVolume = "VI_SNAKE_MASTER_VOLUME" // 0-100
	EnvSFXVolumes   = "VI_SNAKE_SFX_VOLUMES"   // JSON object of effect name to 0.0-1.0
	EnvSeed         = "VI_SNAKE_SEED"
)

// Config is the full runtime configuration
type Config struct {
	Field   FieldConfig   `toml:"field"`
	Game    GameConfig    `toml:"game"`
	Audio   AudioConfig   `toml:"audio"`
	Display DisplayConfig `toml:"display"`

	// Keys present in the file but not in the schema, reported by the caller once logging is up
	Unknown []string `toml:"-"`
}

// FieldConfig sizes the playfield as a pixel canvas divided into square cells
type FieldConfig struct {
	Width    int `toml:"width"`
	Height   int `toml:"height"`
	CellSize int `toml:"cell_size"`
}

// GameConfig selects session parameters
type GameConfig struct {
	Difficulty string        `toml:"difficulty"`
	Seed       int64         `toml:"seed"`       // 0 seeds from the clock
	BonusUnit  time.Duration `toml:"bonus_unit"` // One bonus countdown step
}

// AudioConfig is the sound effect mix
type AudioConfig struct {
	Enabled      bool               `toml:"enabled"`
	MasterVolume float64            `toml:"master_volume"`
	SampleRate   int                `toml:"sample_rate"`
	Effects      map[string]float64 `toml:"effects"`
}

// DisplayConfig controls terminal output
type DisplayConfig struct {
	Color bool `toml:"color"`
	Debug bool `toml:"debug"`
}

// Default returns the built-in configuration: 600x400 canvas, 20 px cells, Easy
func Default() *Config {
	return &Config{
		Field: FieldConfig{
			Width:    constants.DefaultFieldWidth,
			Height:   constants.DefaultFieldHeight,
			CellSize: constants.DefaultCellSize,
		},
		Game: GameConfig{
			Difficulty: engine.DifficultyEasy.String(),
			BonusUnit:  constants.BonusCountdownUnit,
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 0.5,
			SampleRate:   constants.DefaultSampleRate,
			Effects:      map[string]float64{},
		},
		Display: DisplayConfig{
			Color: true,
		},
	}
}

// Load reads an optional TOML file over the defaults, then applies environment overrides
// An empty path skips the file
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", path, err)
		}
		for _, key := range md.Undecoded() {
			cfg.Unknown = append(cfg.Unknown, key.String())
		}
	}

	ApplyEnv(cfg)
	return cfg, nil
}

// ApplyEnv overlays environment variables; malformed values are ignored
func ApplyEnv(cfg *Config) {
	if enabled := os.Getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Audio.Enabled = val
		}
	}

	// Master volume (0-100 converted to 0.0-1.0)
	if volume := os.Getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.Audio.MasterVolume = min(max(float64(val)/100.0, 0), 1)
		}
	}

	if effectVols := os.Getenv(EnvSFXVolumes); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			if cfg.Audio.Effects == nil {
				cfg.Audio.Effects = make(map[string]float64, len(volumes))
			}
			for name, v := range volumes {
				cfg.Audio.Effects[strings.ToLower(name)] = v
			}
		}
	}

	if seed := os.Getenv(EnvSeed); seed != "" {
		if val, err := strconv.ParseInt(seed, 10, 64); err == nil {
			cfg.Game.Seed = val
		}
	}
}

// Validate checks every field the engine and mixer depend on
func (c *Config) Validate() error {
	if _, err := c.Grid(); err != nil {
		return err
	}
	if _, err := engine.ParseDifficulty(c.Game.Difficulty); err != nil {
		return err
	}
	if c.Game.BonusUnit <= 0 {
		return fmt.Errorf("%w: bonus unit %v must be positive", engine.ErrInvalidConfiguration, c.Game.BonusUnit)
	}
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		return fmt.Errorf("%w: master volume %.2f outside 0-1", engine.ErrInvalidConfiguration, c.Audio.MasterVolume)
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d", engine.ErrInvalidConfiguration, c.Audio.SampleRate)
	}
	for name, v := range c.Audio.Effects {
		if _, err := audio.ParseSoundType(name); err != nil {
			return fmt.Errorf("%w: %v", engine.ErrInvalidConfiguration, err)
		}
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: %s volume %.2f outside 0-1", engine.ErrInvalidConfiguration, name, v)
		}
	}
	return nil
}

// Grid derives the cell lattice from the pixel field
func (c *Config) Grid() (engine.Grid, error) {
	return engine.NewGridFromPixels(c.Field.Width, c.Field.Height, c.Field.CellSize)
}

// Difficulty resolves the configured tier, falling back to Easy for unknown names
func (c *Config) Difficulty() engine.Difficulty {
	d, err := engine.ParseDifficulty(c.Game.Difficulty)
	if err != nil {
		return engine.DifficultyEasy
	}
	return d
}

// AudioSettings converts the mix for the sound manager
func (c *Config) AudioSettings() *audio.AudioConfig {
	return audio.NewAudioConfig(c.Audio.Enabled, c.Audio.MasterVolume, c.Audio.SampleRate, c.Audio.Effects)
}
