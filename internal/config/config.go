// Package config provides configuration management for the trading desk.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Account Account `mapstructure:"account"`
	Journal Journal `mapstructure:"journal"`
	UI      UI      `mapstructure:"ui"`
	Logging Logging `mapstructure:"logging"`
}

// Account holds the account defaults the calculator starts from.
type Account struct {
	Currency       string  `mapstructure:"currency"`
	Balance        float64 `mapstructure:"balance"`
	RiskPercentage float64 `mapstructure:"risk_percentage"`
	Leverage       float64 `mapstructure:"leverage"`
}

// Journal holds journal storage configuration.
type Journal struct {
	DBPath string `mapstructure:"db_path"`
}

// UI holds output-related configuration.
type UI struct {
	ColorEnabled bool   `mapstructure:"color_enabled"`
	DateFormat   string `mapstructure:"date_format"`
	TimeFormat   string `mapstructure:"time_format"`
}

// Logging holds logging configuration.
type Logging struct {
	Level      string `mapstructure:"level"`
	Console    bool   `mapstructure:"console"`
	File       bool   `mapstructure:"file"`
	FilePath   string `mapstructure:"file_path"`
	MaxSize    int    `mapstructure:"max_size"` // megabytes
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"` // days
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/tradingdesk"
	}
	return filepath.Join(home, ".config", "tradingdesk")
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	dir := DefaultConfigDir()
	return &Config{
		Account: Account{
			Currency:       "USD",
			Balance:        10000,
			RiskPercentage: 1,
			Leverage:       100,
		},
		Journal: Journal{
			DBPath: filepath.Join(dir, "desk.db"),
		},
		UI: UI{
			ColorEnabled: true,
			DateFormat:   "02-Jan-2006",
			TimeFormat:   "15:04:05",
		},
		Logging: Logging{
			Level:      "info",
			Console:    true,
			File:       true,
			FilePath:   filepath.Join(dir, "logs", "desk.log"),
			MaxSize:    100,
			MaxBackups: 7,
			MaxAge:     30,
		},
	}
}

// Load loads configuration from the specified directory. If configDir is
// empty the default config directory is used; a missing config file gets a
// commented template written in its place and the defaults returned.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	cfg := Default()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	setDefaults(v, cfg)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if err := createTemplateConfig(configDir); err != nil {
				return nil, fmt.Errorf("creating config template: %w", err)
			}
			applyEnvOverrides(cfg)
			return cfg, cfg.Validate()
		}
		return nil, fmt.Errorf("loading config.toml: %w", err)
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config.toml: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("account.currency", cfg.Account.Currency)
	v.SetDefault("account.balance", cfg.Account.Balance)
	v.SetDefault("account.risk_percentage", cfg.Account.RiskPercentage)
	v.SetDefault("account.leverage", cfg.Account.Leverage)
	v.SetDefault("journal.db_path", cfg.Journal.DBPath)
	v.SetDefault("ui.color_enabled", cfg.UI.ColorEnabled)
	v.SetDefault("ui.date_format", cfg.UI.DateFormat)
	v.SetDefault("ui.time_format", cfg.UI.TimeFormat)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.console", cfg.Logging.Console)
	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("logging.file_path", cfg.Logging.FilePath)
	v.SetDefault("logging.max_size", cfg.Logging.MaxSize)
	v.SetDefault("logging.max_backups", cfg.Logging.MaxBackups)
	v.SetDefault("logging.max_age", cfg.Logging.MaxAge)
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("DESK_DB_PATH"); v != "" {
		cfg.Journal.DBPath = v
	}
	if v := os.Getenv("DESK_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Account.Balance <= 0 {
		return fmt.Errorf("account.balance must be positive")
	}
	if c.Account.RiskPercentage <= 0 || c.Account.RiskPercentage > 100 {
		return fmt.Errorf("account.risk_percentage must be between 0 and 100")
	}
	if c.Account.Leverage < 1 {
		return fmt.Errorf("account.leverage must be at least 1")
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging.level: %s", c.Logging.Level)
	}
	return nil
}
