// Package config resolves WorkSync settings from defaults, an optional
// worksync.yaml, an optional .env file, the process environment and flags,
// in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	AppName  = "worksync"
	FileName = "worksync.yaml"

	DriverSQLite = "sqlite"
	DriverFile   = "file"
	DriverMemory = "memory"
)

type Storage struct {
	Driver string
	// Path is the database file for sqlite and the directory for file.
	Path string
}

type Config struct {
	Home         string
	Storage      Storage
	LatencyScale float64
	LogLevel     string
	LogJSON      bool
}

// Options carries the values given on the command line; empty fields are unset.
type Options struct {
	Home       string
	ConfigFile string
	LogLevel   string
	// LookupEnv defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)
}

type fileConfig struct {
	Storage struct {
		Driver string `yaml:"driver"`
		Path   string `yaml:"path"`
	} `yaml:"storage"`
	LatencyScale *float64 `yaml:"latency_scale"`
	LogLevel     string   `yaml:"log_level"`
	LogJSON      *bool    `yaml:"log_json"`
}

func Load(opts Options) (Config, error) {
	lookup := opts.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}

	home := opts.Home
	if home == "" {
		if v, ok := lookup("WORKSYNC_HOME"); ok && v != "" {
			home = v
		}
	}
	if home == "" {
		var err error
		if home, err = defaultHome(lookup); err != nil {
			return Config{}, err
		}
	}

	cfg := Config{
		Home:         home,
		Storage:      Storage{Driver: DriverSQLite},
		LatencyScale: 1,
		LogLevel:     "info",
	}

	configFile := opts.ConfigFile
	explicit := configFile != ""
	if !explicit {
		configFile = filepath.Join(home, FileName)
	}
	if err := cfg.applyFile(configFile, explicit); err != nil {
		return Config{}, err
	}

	dotenv, err := readDotenv(filepath.Join(home, ".env"))
	if err != nil {
		return Config{}, err
	}
	env := func(key string) (string, bool) {
		if v, ok := lookup(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}
	if err := cfg.applyEnv(env); err != nil {
		return Config{}, err
	}

	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
	if cfg.Storage.Path == "" {
		switch cfg.Storage.Driver {
		case DriverSQLite:
			cfg.Storage.Path = filepath.Join(home, "worksync.db")
		case DriverFile:
			cfg.Storage.Path = filepath.Join(home, "collections")
		}
	} else if !filepath.IsAbs(cfg.Storage.Path) {
		cfg.Storage.Path = filepath.Join(home, cfg.Storage.Path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Storage.Driver {
	case DriverSQLite, DriverFile, DriverMemory:
	default:
		return fmt.Errorf("unsupported storage driver %q", c.Storage.Driver)
	}
	if c.LatencyScale < 0 {
		return fmt.Errorf("latency scale must be non-negative, got %v", c.LatencyScale)
	}
	if strings.TrimSpace(c.Home) == "" {
		return fmt.Errorf("home directory is required")
	}
	return nil
}

func (c *Config) applyFile(path string, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return nil
		}
		return fmt.Errorf("read config file %s: %w", path, err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("decode config file %s: %w", path, err)
	}
	if fc.Storage.Driver != "" {
		c.Storage.Driver = fc.Storage.Driver
	}
	if fc.Storage.Path != "" {
		c.Storage.Path = fc.Storage.Path
	}
	if fc.LatencyScale != nil {
		c.LatencyScale = *fc.LatencyScale
	}
	if fc.LogLevel != "" {
		c.LogLevel = fc.LogLevel
	}
	if fc.LogJSON != nil {
		c.LogJSON = *fc.LogJSON
	}
	return nil
}

func (c *Config) applyEnv(env func(string) (string, bool)) error {
	if v, ok := env("WORKSYNC_STORAGE"); ok && v != "" {
		c.Storage.Driver = v
	}
	if v, ok := env("WORKSYNC_STORAGE_PATH"); ok && v != "" {
		c.Storage.Path = v
	}
	if v, ok := env("WORKSYNC_LATENCY_SCALE"); ok && v != "" {
		scale, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("parse WORKSYNC_LATENCY_SCALE: %w", err)
		}
		c.LatencyScale = scale
	}
	if v, ok := env("WORKSYNC_LOG_LEVEL"); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := env("WORKSYNC_LOG_JSON"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parse WORKSYNC_LOG_JSON: %w", err)
		}
		c.LogJSON = b
	}
	return nil
}

func readDotenv(path string) (map[string]string, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return values, nil
}

func defaultHome(lookup func(string) (string, bool)) (string, error) {
	if xdg, ok := lookup("XDG_DATA_HOME"); ok && xdg != "" {
		return filepath.Join(xdg, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", AppName), nil
}
