package meta

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config carries runner settings that do not affect play semantics.
type Config struct {
	LogLevel   string `yaml:"log_level"`
	PrettyLogs bool   `yaml:"pretty_logs"`
	Seed       uint64 `yaml:"seed"`
	MetricsDir string `yaml:"metrics_dir"`
}

// LoadConfig reads a yaml config file. An empty path yields defaults.
func LoadConfig(path string) (Config, error) {
	var c Config
	if path == "" {
		return c, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return c, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}
