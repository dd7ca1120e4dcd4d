// Package config handles player configuration loading and management.
package config

// Config holds all player settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Playback PlaybackConfig `yaml:"playback"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings for the preview window.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// PlaybackConfig holds scene and timing settings.
type PlaybackConfig struct {
	// ScenePath is the scene description document to play.
	ScenePath string `yaml:"scene"`
	// AudioPath, when set, makes the audio stream the time source instead
	// of the wall clock.
	AudioPath string `yaml:"audio"`
	Loop      bool   `yaml:"loop"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Playback: PlaybackConfig{
			ScenePath: "scene.yaml",
			Loop:      true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
