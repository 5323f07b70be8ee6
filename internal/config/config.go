package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// DefaultFile is the config file looked up next to the binary when none is given
const DefaultFile = "newmodule.yaml"

// WindowConfig holds window settings
type WindowConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
	VSync  bool   `mapstructure:"vsync"`
}

// PhysicsConfig holds gravity and stepping settings
type PhysicsConfig struct {
	GravityScalar  float32 `mapstructure:"gravityScalar"`
	StepsPerRender int     `mapstructure:"stepsPerRender"`
}

// AudioConfig holds audio output settings
type AudioConfig struct {
	Enabled    bool          `mapstructure:"enabled"`
	SampleRate int           `mapstructure:"sampleRate"`
	Buffer     time.Duration `mapstructure:"buffer"`
}

// ModuleConfig holds settings for the scene module
type ModuleConfig struct {
	StartBackground int `mapstructure:"startBackground"`
}

// Config is the full application configuration
type Config struct {
	LogLevel             string        `mapstructure:"logLevel"`
	SharedMultimediaPath string        `mapstructure:"sharedMultimediaPath"`
	SoundsPath           string        `mapstructure:"soundsPath"`
	Window               WindowConfig  `mapstructure:"window"`
	Physics              PhysicsConfig `mapstructure:"physics"`
	Audio                AudioConfig   `mapstructure:"audio"`
	Module               ModuleConfig  `mapstructure:"module"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")
	v.SetDefault("sharedMultimediaPath", "../../../shared/mm")
	v.SetDefault("soundsPath", "../mm/sounds")

	v.SetDefault("window.width", 1024)
	v.SetDefault("window.height", 768)
	v.SetDefault("window.title", "NewModule")
	v.SetDefault("window.vsync", true)

	v.SetDefault("physics.gravityScalar", 9.81)
	v.SetDefault("physics.stepsPerRender", 1)

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.sampleRate", 44100)
	v.SetDefault("audio.buffer", "100ms")

	v.SetDefault("module.startBackground", 0)
}

// Load reads the configuration file at path on top of the defaults.
// An empty path loads the defaults only.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}

	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return nil, fmt.Errorf("invalid window size %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Physics.StepsPerRender < 0 {
		return nil, fmt.Errorf("invalid physics.stepsPerRender %d", cfg.Physics.StepsPerRender)
	}

	return &cfg, nil
}
