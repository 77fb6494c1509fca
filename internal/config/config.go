// Package config resolves application configuration from defaults, an
// optional YAML file, and CHRONO_* environment variables, in that order.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config defines application configuration.
type Config struct {
	DataDir string        `yaml:"data_dir"`
	DB      DBConfig      `yaml:"db"`
	Scripts ScriptsConfig `yaml:"scripts"`
	Log     LogConfig     `yaml:"log"`
}

type DBConfig struct {
	Path string `yaml:"path"`
}

// ScriptsConfig locates the external scrape and submit scripts.
type ScriptsConfig struct {
	Command       string `yaml:"command"`
	ScrapePath    string `yaml:"scrape_path"`
	SubmitPath    string `yaml:"submit_path"`
	TimeoutSecond int    `yaml:"timeout_seconds"`
}

type LogConfig struct {
	Path string `yaml:"path"` // empty disables the use-case log
}

// Load reads configuration from an optional YAML file and environment
// variables. DB and script paths default relative to the data directory.
func Load() (Config, error) {
	dataDir := defaultDataDir()
	cfg := Config{
		DataDir: dataDir,
		Scripts: ScriptsConfig{
			Command:       "python3",
			TimeoutSecond: 300,
		},
	}

	if path := os.Getenv("CHRONO_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if dir := os.Getenv("CHRONO_DATA_DIR"); dir != "" {
		cfg.DataDir = dir
	}
	if dbPath := os.Getenv("CHRONO_DB_PATH"); dbPath != "" {
		cfg.DB.Path = dbPath
	}
	if cmd := os.Getenv("CHRONO_SCRIPT_COMMAND"); cmd != "" {
		cfg.Scripts.Command = cmd
	}
	if p := os.Getenv("CHRONO_SCRAPE_SCRIPT"); p != "" {
		cfg.Scripts.ScrapePath = p
	}
	if p := os.Getenv("CHRONO_SUBMIT_SCRIPT"); p != "" {
		cfg.Scripts.SubmitPath = p
	}
	if s := os.Getenv("CHRONO_SCRIPT_TIMEOUT_SECONDS"); s != "" {
		secs, err := strconv.Atoi(s)
		if err != nil {
			return Config{}, fmt.Errorf("invalid CHRONO_SCRIPT_TIMEOUT_SECONDS: %w", err)
		}
		cfg.Scripts.TimeoutSecond = secs
	}
	if p := os.Getenv("CHRONO_LOG_PATH"); p != "" {
		cfg.Log.Path = p
	}

	cfg.applyDerivedDefaults()
	return cfg, nil
}

func (c *Config) applyDerivedDefaults() {
	if c.DB.Path == "" {
		c.DB.Path = filepath.Join(c.DataDir, "chronoassist.db")
	}
	if c.Scripts.ScrapePath == "" {
		c.Scripts.ScrapePath = filepath.Join(c.DataDir, "scripts", "scrape_timesheets.py")
	}
	if c.Scripts.SubmitPath == "" {
		c.Scripts.SubmitPath = filepath.Join(c.DataDir, "scripts", "submit_timesheets.py")
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".chronoassist"
	}
	return filepath.Join(home, ".chronoassist")
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
