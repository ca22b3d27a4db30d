package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const configTemplate = `# Trading Desk Configuration

[account]
# Account currency
currency = "USD"
# Starting account balance for the position-size calculator
balance = 10000.0
# Default risk per trade, percent of balance
risk_percentage = 1.0
# Default leverage
leverage = 100.0

[journal]
# Path to the desk database (trade journal, templates, preferences)
db_path = ""

[ui]
# Enable colored output
color_enabled = true
# Date format
date_format = "02-Jan-2006"
# Time format
time_format = "15:04:05"

[logging]
# Log level: debug, info, warn, error
level = "info"
# Log to the console
console = true
# Log to a rotating file
file = true
# Log file path (empty = default under the config directory)
file_path = ""
# Rotation: max size in MB, backups to keep, max age in days
max_size = 100
max_backups = 7
max_age = 30
`

// createTemplateConfig writes a commented config template so a first run
// leaves something editable behind.
func createTemplateConfig(configDir string) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	path := filepath.Join(configDir, "config.toml")
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	if err := os.WriteFile(path, []byte(configTemplate), 0644); err != nil {
		return fmt.Errorf("writing config template: %w", err)
	}
	return nil
}
