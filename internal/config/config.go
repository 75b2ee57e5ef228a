package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/egoavara/spin-hub/internal/log"
)

// DefaultSpinVersion is used for template branch selection when SPIN_VERSION is unset
const DefaultSpinVersion = "2.0.0"

// ErrMissingConfiguration is returned when a required setting is absent at the point it is needed
var ErrMissingConfiguration = errors.New("missing configuration")

// Config represents the resolved configuration
type Config struct {
	Locale  string        `mapstructure:"locale" yaml:"locale"` // "auto" or ISO format (e.g., "ko-KR", "en-US")
	Debug   bool          `mapstructure:"debug" yaml:"debug"`
	LogFile string        `mapstructure:"log_file" yaml:"log_file"`
	Hub     HubConfig     `mapstructure:"hub" yaml:"hub"`
	Spin    SpinConfig    `mapstructure:"spin" yaml:"spin"`
	Process ProcessConfig `mapstructure:"process" yaml:"process"`
}

// HubConfig contains catalog settings
type HubConfig struct {
	BaseURL   string        `mapstructure:"base_url" yaml:"base_url"`
	CacheTTL  time.Duration `mapstructure:"cache_ttl" yaml:"cache_ttl"`   // 0 disables the index cache
	CacheFile string        `mapstructure:"cache_file" yaml:"cache_file"` // persisted index cache
}

// SpinConfig contains settings for the companion spin binary
type SpinConfig struct {
	Version string `mapstructure:"version" yaml:"version"`   // SPIN_VERSION
	BinPath string `mapstructure:"bin_path" yaml:"bin_path"` // SPIN_BIN_PATH
}

// ProcessConfig contains external process settings
type ProcessConfig struct {
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"` // 0 = wait forever
}

// Defaults returns a Config with default values
func Defaults() Config {
	return Config{
		Locale:  "auto", // default: auto-detect system locale
		LogFile: LogPath(),
		Hub: HubConfig{
			BaseURL:   "https://developer.fermyon.com",
			CacheTTL:  10 * time.Minute,
			CacheFile: CachePath(),
		},
		Spin: SpinConfig{
			Version: DefaultSpinVersion,
		},
	}
}

// Configure registers defaults, the config file and environment bindings on v.
// Lookup order: defaults, config file, environment. An empty file means
// ~/.config/spin-hub/config.yaml, which may be absent.
// Flags are applied by the caller before Unmarshal.
func Configure(v *viper.Viper, file string) error {
	defaults := Defaults()
	v.SetDefault("locale", defaults.Locale)
	v.SetDefault("debug", defaults.Debug)
	v.SetDefault("log_file", defaults.LogFile)
	v.SetDefault("hub.base_url", defaults.Hub.BaseURL)
	v.SetDefault("hub.cache_ttl", defaults.Hub.CacheTTL)
	v.SetDefault("hub.cache_file", defaults.Hub.CacheFile)
	v.SetDefault("spin.version", defaults.Spin.Version)
	v.SetDefault("spin.bin_path", defaults.Spin.BinPath)
	v.SetDefault("process.timeout", defaults.Process.Timeout)

	v.SetEnvPrefix("SPIN_HUB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// The spin toolchain's own variables take no prefix
	_ = v.BindEnv("spin.version", "SPIN_VERSION")
	_ = v.BindEnv("spin.bin_path", "SPIN_BIN_PATH")

	explicit := file != ""
	if explicit {
		v.SetConfigFile(file)
	} else {
		v.AddConfigPath(Dir())
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !explicit && errors.As(err, &notFound) {
			log.Debug(log.CatConfig, "no config file, using defaults", "dir", Dir())
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}

	log.Debug(log.CatConfig, "loaded config", "file", v.ConfigFileUsed())
	return nil
}

// Unmarshal decodes the settings held by v
func Unmarshal(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if cfg.Spin.Version == "" {
		cfg.Spin.Version = DefaultSpinVersion
	}
	if cfg.Locale == "" {
		cfg.Locale = "auto"
	}
	return &cfg, nil
}

