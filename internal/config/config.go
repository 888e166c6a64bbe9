package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"
)

// fsys is swapped for an in-memory filesystem in tests.
var fsys = afero.NewOsFs()

type Config struct {
	UI        UIConfig       `toml:"ui"`
	Playback  PlaybackConfig `toml:"playback"`
	Subtitles SubtitleConfig `toml:"subtitles"`
	Keybinds  KeybindConfig  `toml:"keybinds"`
	Log       LogConfig      `toml:"log"`
}

type UIConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

type PlaybackConfig struct {
	HWDec  string `toml:"hwdec"`
	Volume int    `toml:"volume"`
}

type SubtitleConfig struct {
	Font        string  `toml:"font"`
	FontSize    int     `toml:"font_size"`
	Color       string  `toml:"color"`
	BorderColor string  `toml:"border_color"`
	BorderSize  float64 `toml:"border_size"`
	Position    int     `toml:"position"`
}

type KeybindConfig struct {
	PlayPause    string `toml:"play_pause"`
	SeekForward  string `toml:"seek_forward"`
	SeekBackward string `toml:"seek_backward"`
	VolumeUp     string `toml:"volume_up"`
	VolumeDown   string `toml:"volume_down"`
	SubCycle     string `toml:"sub_cycle"`
	Fullscreen   string `toml:"fullscreen"`
	Clear        string `toml:"clear"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Width:  1280,
			Height: 720,
		},
		Playback: PlaybackConfig{
			HWDec:  "auto-safe",
			Volume: 50,
		},
		Subtitles: SubtitleConfig{
			Font:        "Liberation Sans",
			FontSize:    48,
			Color:       "#FFFFFF",
			BorderColor: "#000000",
			BorderSize:  3,
			Position:    95,
		},
		Keybinds: KeybindConfig{
			PlayPause:    "Space",
			SeekForward:  "Right",
			SeekBackward: "Left",
			VolumeUp:     "Up",
			VolumeDown:   "Down",
			SubCycle:     "S",
			Fullscreen:   "F11",
			Clear:        "C",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

func ConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "matinee"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config file, falling back to defaults when it does not
// exist. A missing home directory is not an error; the defaults carry.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	path, err := ConfigPath()
	if err != nil {
		return cfg, nil
	}

	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}

	if err := fsys.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := fsys.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}
