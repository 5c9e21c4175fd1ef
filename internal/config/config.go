package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tool holds all configuration for the skillkit tool.
type Tool struct {
	// DataDir is the directory of skill parameter YAML files.
	DataDir string `yaml:"data_dir"`

	// Database
	Database DatabaseConfig `yaml:"database"`
}

// DatabaseConfig selects and parameterizes the settings database.
// Driver is "postgres" or "sqlite"; Path is only used by sqlite.
type DatabaseConfig struct {
	Driver   string `yaml:"driver"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
	Path     string `yaml:"path"`
}

// DSN returns the connection string for the configured driver.
func (d DatabaseConfig) DSN() string {
	if d.Driver == "sqlite" {
		return fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", d.Path)
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// DefaultTool returns Tool config with sensible defaults: skill files
// under data/skills, settings in a local sqlite file.
func DefaultTool() Tool {
	return Tool{
		DataDir: "data/skills",
		Database: DatabaseConfig{
			Driver:   "sqlite",
			Path:     "skillkit.db",
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "skillkit",
			Password: "skillkit",
			DBName:   "skillkit",
			SSLMode:  "disable",
		},
	}
}

// LoadTool loads tool config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadTool(path string) (Tool, error) {
	cfg := DefaultTool()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
