package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Locale      string   `mapstructure:"locale"`
	CommonCodes []string `mapstructure:"common_codes"`
	Log         LogConfig
	Database    DatabaseConfig
	UI          UIConfig
}

// LogConfig holds the rotating log file settings.
type LogConfig struct {
	Level      string
	Path       string
	MaxSizeMB  int  `mapstructure:"max_size_mb"`
	MaxBackups int  `mapstructure:"max_backups"`
	MaxAgeDays int  `mapstructure:"max_age_days"`
	Compress   bool `mapstructure:"compress"`
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	PageSize int `mapstructure:"page_size"`
}

// DefaultCommonCodes seeds the "Common Countries" section when the config
// file does not name any.
var DefaultCommonCodes = []string{"US", "GB", "CA", "AU", "IN"}

// Load reads configuration from file and env. Env var overrides use prefix DIALPICK_.
func Load() (Config, error) {
	v := viper.New()

	home := os.Getenv("HOME")
	v.SetDefault("locale", "en")
	v.SetDefault("common_codes", DefaultCommonCodes)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.path", filepath.Join(home, ".local", "state", "dialpick", "dialpick.log"))
	v.SetDefault("log.max_size_mb", 5)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 28)
	v.SetDefault("log.compress", true)
	v.SetDefault("database.path", filepath.Join(home, ".local", "share", "dialpick", "dialpick.db"))
	v.SetDefault("ui.page_size", 10)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("DIALPICK_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(home, ".config", "dialpick"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("DIALPICK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.CommonCodes = NormalizeCodes(c.CommonCodes)
	if c.UI.PageSize <= 0 {
		c.UI.PageSize = 10
	}
	return c, nil
}

// NormalizeCodes trims and upper-cases territory codes, dropping blanks.
// Order and duplicates are kept.
func NormalizeCodes(codes []string) []string {
	out := make([]string, 0, len(codes))
	for _, code := range codes {
		code = strings.ToUpper(strings.TrimSpace(code))
		if code == "" {
			continue
		}
		out = append(out, code)
	}
	return out
}

// Path returns the config file location Save writes to.
func Path() string {
	if path := os.Getenv("DIALPICK_CONFIG"); path != "" {
		return path
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "dialpick", "config.toml")
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("locale", cfg.Locale)
	v.Set("common_codes", cfg.CommonCodes)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.max_size_mb", cfg.Log.MaxSizeMB)
	v.Set("log.max_backups", cfg.Log.MaxBackups)
	v.Set("log.max_age_days", cfg.Log.MaxAgeDays)
	v.Set("log.compress", cfg.Log.Compress)
	v.Set("database.path", cfg.Database.Path)
	v.Set("ui.page_size", cfg.UI.PageSize)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
