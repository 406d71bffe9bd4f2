package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	DefaultOrigin   = "https://10secondcalm.app"
	DefaultLogLevel = "warn"
	CueTone         = "tone"
	CueBell         = "bell"
	fileName        = "config.yaml"
)

type Config struct {
	DataDir   string
	DBPath    string
	LogPath   string
	Origin    string
	Sound     bool
	Cue       string
	LogLevel  string
	ExportDir string
}

// fileConfig mirrors the optional YAML file. Pointers distinguish unset keys
// from explicit zero values.
type fileConfig struct {
	Origin    *string `yaml:"origin"`
	Sound     *bool   `yaml:"sound"`
	Cue       *string `yaml:"cue"`
	LogLevel  *string `yaml:"log_level"`
	ExportDir *string `yaml:"export_dir"`
}

// DefaultDataDir resolves the per-user directory that holds the database,
// log, and config file.
func DefaultDataDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(dir, "calm"), nil
}

func New(dataDir string) (Config, error) {
	if dataDir == "" {
		return Config{}, fmt.Errorf("data dir is required")
	}
	return Config{
		DataDir:   dataDir,
		DBPath:    filepath.Join(dataDir, "calm.db"),
		LogPath:   filepath.Join(dataDir, "calm.log"),
		Origin:    DefaultOrigin,
		Sound:     true,
		Cue:       CueTone,
		LogLevel:  DefaultLogLevel,
		ExportDir: ".",
	}, nil
}

// Load builds a Config for dataDir and applies overrides from path. An empty
// path means <dataDir>/config.yaml; a missing default file is not an error.
func Load(dataDir, path string) (Config, error) {
	cfg, err := New(dataDir)
	if err != nil {
		return Config{}, err
	}
	explicit := path != ""
	if !explicit {
		path = filepath.Join(dataDir, fileName)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	fc := fileConfig{}
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if fc.Origin != nil && *fc.Origin != "" {
		cfg.Origin = *fc.Origin
	}
	if fc.Sound != nil {
		cfg.Sound = *fc.Sound
	}
	if fc.Cue != nil {
		switch *fc.Cue {
		case CueTone, CueBell:
			cfg.Cue = *fc.Cue
		default:
			return Config{}, fmt.Errorf("decode config: cue must be %q or %q, got %q", CueTone, CueBell, *fc.Cue)
		}
	}
	if fc.LogLevel != nil && *fc.LogLevel != "" {
		cfg.LogLevel = *fc.LogLevel
	}
	if fc.ExportDir != nil && *fc.ExportDir != "" {
		cfg.ExportDir = *fc.ExportDir
	}
	return cfg, nil
}
