package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Engine EngineConfig `mapstructure:"engine"`
	UI     UIConfig     `mapstructure:"ui"`
	Log    LogConfig    `mapstructure:"log"`
}

// EngineConfig holds calculator behaviour settings.
type EngineConfig struct {
	ResetDelay       time.Duration `mapstructure:"reset_delay"`
	MaxDigits        int           `mapstructure:"max_digits"`
	CancellableReset bool          `mapstructure:"cancellable_reset"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Accent   string `mapstructure:"accent"`
	ShowHelp bool   `mapstructure:"show_help"`
	Mouse    bool   `mapstructure:"mouse"`
}

// LogConfig holds the log file location. An empty path disables logging.
type LogConfig struct {
	Path string `mapstructure:"path"`
}

// DefaultPath is where Load looks when JASKCALC_CONFIG is unset.
func DefaultPath() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "jaskcalc", "config.toml")
}

func newViper(path string) *viper.Viper {
	v := viper.New()

	// default values
	v.SetDefault("engine.reset_delay", "2s")
	v.SetDefault("engine.max_digits", 0)
	v.SetDefault("engine.cancellable_reset", true)
	v.SetDefault("ui.accent", "#89b4fa")
	v.SetDefault("ui.show_help", true)
	v.SetDefault("ui.mouse", true)
	v.SetDefault("log.path", filepath.Join(os.Getenv("HOME"), ".local", "state", "jaskcalc", "jaskcalc.log"))

	v.SetConfigType("toml")
	v.SetConfigFile(path)

	v.SetEnvPrefix("JASKCALC")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	return v
}

func resolvePath(path string) string {
	if path != "" {
		return path
	}
	if p := os.Getenv("JASKCALC_CONFIG"); p != "" {
		return p
	}
	return DefaultPath()
}

// Load reads configuration from file and env. Env var overrides use prefix JASKCALC_.
func Load() (Config, error) {
	return LoadFrom("")
}

// LoadFrom reads the config file at path (or the default location when
// path is empty). A missing file is not an error.
func LoadFrom(path string) (Config, error) {
	v := newViper(resolvePath(path))

	// read config file if present
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}
	return decode(v)
}

func decode(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.Engine.MaxDigits < 0 {
		return Config{}, fmt.Errorf("engine.max_digits must not be negative, got %d", c.Engine.MaxDigits)
	}
	if c.Engine.ResetDelay < 0 {
		return Config{}, fmt.Errorf("engine.reset_delay must not be negative, got %s", c.Engine.ResetDelay)
	}
	return c, nil
}

// Save writes the provided config to path (or the default location),
// creating the config directory if needed.
func Save(path string, cfg Config) error {
	path = resolvePath(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("engine.reset_delay", cfg.Engine.ResetDelay.String())
	v.Set("engine.max_digits", cfg.Engine.MaxDigits)
	v.Set("engine.cancellable_reset", cfg.Engine.CancellableReset)
	v.Set("ui.accent", cfg.UI.Accent)
	v.Set("ui.show_help", cfg.UI.ShowHelp)
	v.Set("ui.mouse", cfg.UI.Mouse)
	v.Set("log.path", cfg.Log.Path)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Watch calls onChange with the re-read config every time the file at path
// is written. The file must exist.
func Watch(path string, onChange func(Config, error)) error {
	path = resolvePath(path)
	v := newViper(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("watch config: %w", err)
	}
	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		onChange(decode(v))
	})
	v.WatchConfig()
	return nil
}
