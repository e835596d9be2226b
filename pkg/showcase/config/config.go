// Package config loads the showcase configuration from a TOML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/BrandonKowalski/showcase/pkg/showcase/constants"
	"github.com/BurntSushi/toml"
)

// WindowConfig maps onto SDL window flags.
type WindowConfig struct {
	Borderless bool  `toml:"borderless"`
	Resizable  bool  `toml:"resizable"`
	Fullscreen bool  `toml:"fullscreen"`
	Width      int32 `toml:"width"`  // dev mode only
	Height     int32 `toml:"height"` // dev mode only
}

// Config is everything the application reads at startup.
type Config struct {
	WindowTitle    string       `toml:"window_title"`
	Development    bool         `toml:"development"`
	LogPath        string       `toml:"log_path"`
	LogLevel       string       `toml:"log_level"`
	Platform       string       `toml:"platform"`      // overrides detection, e.g. "linux+tv"
	ReduceMotion   string       `toml:"reduce_motion"` // "", "true" or "false"
	Language       string       `toml:"language"`
	FontPath       string       `toml:"font_path"`
	BackgroundPath string       `toml:"background_path"`
	RemoteDevice   string       `toml:"remote_device"` // evdev path, e.g. /dev/input/event3
	LinkPrefixes   []string     `toml:"link_prefixes"`
	Window         WindowConfig `toml:"window"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		WindowTitle:  "Reanimated examples",
		LogLevel:     "info",
		Language:     "en",
		FontPath:     "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		LinkPrefixes: []string{"showcase://"},
		Window: WindowConfig{
			Resizable: true,
			Width:     1024,
			Height:    768,
		},
	}
}

// Load reads path over the defaults. A missing file is not an error;
// unknown keys are.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("config: unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}

	return cfg, nil
}

// ApplyEnv overrides fields from the environment. Pass os.Getenv.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if getenv(constants.EnvironmentEnvVar) == constants.Development {
		c.Development = true
	}
	if v := getenv(constants.PlatformEnvVar); v != "" {
		c.Platform = v
	}
	if v := getenv(constants.LanguageEnvVar); v != "" {
		c.Language = v
	}
	if v := getenv(constants.BackgroundPathEnvVar); v != "" {
		c.BackgroundPath = v
	}
	if v := getenv(constants.WindowWidthEnvVar); v != "" {
		if n, err := strconv.ParseInt(v, 10, 32); err == nil {
			c.Window.Width = int32(n)
		}
	}
	if v := getenv(constants.WindowHeightEnvVar); v != "" {
		if n, err := strconv.ParseInt(v, 10, 32); err == nil {
			c.Window.Height = int32(n)
		}
	}
}

// Validate reports values that would fail later at startup.
func (c Config) Validate() error {
	var errs []error

	switch strings.ToLower(c.LogLevel) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Errorf("config: log_level %q is not one of debug, info, warn, error", c.LogLevel))
	}

	if c.ReduceMotion != "" {
		if _, err := strconv.ParseBool(c.ReduceMotion); err != nil {
			errs = append(errs, fmt.Errorf("config: reduce_motion %q is not a boolean", c.ReduceMotion))
		}
	}

	if c.Window.Width < 0 || c.Window.Height < 0 {
		errs = append(errs, fmt.Errorf("config: window size %dx%d is negative", c.Window.Width, c.Window.Height))
	}

	return errors.Join(errs...)
}

// LoadFromEnv is Load followed by ApplyEnv(os.Getenv) and Validate.
func LoadFromEnv(path string) (Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return Config{}, err
	}
	cfg.ApplyEnv(os.Getenv)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
