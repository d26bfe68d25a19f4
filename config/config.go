package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/k1LoW/expand"
)

var (
	homePath       string
	configHomePath string
	stateHomePath  string
)

type Config struct {
	// Canvas size in pixels
	Width  int `yaml:"width,omitempty" json:"width,omitempty"`
	Height int `yaml:"height,omitempty" json:"height,omitempty"`
	// Colors as #rgb or #rrggbb
	Background   string `yaml:"background,omitempty" json:"background,omitempty"`
	GradientFrom string `yaml:"gradientFrom,omitempty" json:"gradientFrom,omitempty"`
	GradientTo   string `yaml:"gradientTo,omitempty" json:"gradientTo,omitempty"`
	Accent       string `yaml:"accent,omitempty" json:"accent,omitempty"`
	// Caption text drawn under the icon
	Caption string `yaml:"caption,omitempty" json:"caption,omitempty"`
	// Optional TTF file for the caption
	Font string `yaml:"font,omitempty" json:"font,omitempty"`
	// Output file path
	Output string `yaml:"output,omitempty" json:"output,omitempty"`
	// Literal previous-size note for the size report
	Was string `yaml:"was,omitempty" json:"was,omitempty"`
	// Extra square sizes to render next to the main output
	Sizes []int `yaml:"sizes,omitempty" json:"sizes,omitempty"`

	// Loaded is the config file the values came from, empty for defaults.
	Loaded string `yaml:"-" json:"-"`
}

func init() {
	var err error
	homePath, err = os.UserHomeDir()
	if err != nil {
		panic(fmt.Sprintf("failed to get home directory: %v", err))
	}
}

// Default returns the stock configuration.
func Default() *Config {
	return &Config{
		Width:        300,
		Height:       300,
		Background:   "#17181c",
		GradientFrom: "#17171b",
		GradientTo:   "#242428",
		Accent:       "#62f5a9",
		Caption:      "No Artwork",
		Output:       filepath.Join("public", "img", "placeholder-new.png"),
		Was:          "4.4MB",
	}
}

// Load loads the configuration.
// If path is set it is read directly; a missing file is an error.
// Otherwise config files are searched in the following order:
// 1. $XDG_CONFIG_HOME/artstub/config-{profile}.yml
// 2. $XDG_CONFIG_HOME/artstub/config.yml
// If no config file is found, the defaults are returned.
func Load(path, profile string) (*Config, error) {
	cfg := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := unmarshal(b, cfg); err != nil {
			return nil, err
		}
		cfg.Loaded = path
		return cfg, nil
	}
	var configBasePaths []string
	if profile != "" {
		configBasePaths = append(configBasePaths, filepath.Join(configPath(), fmt.Sprintf("config-%s", profile)))
	}
	configBasePaths = append(configBasePaths, filepath.Join(configPath(), "config"))
	for _, basePath := range configBasePaths {
		for _, ext := range []string{".yml", ".yaml"} {
			configPath := basePath + ext
			if b, err := os.ReadFile(configPath); err == nil {
				if err := unmarshal(b, cfg); err != nil {
					return nil, err
				}
				cfg.Loaded = configPath
				return cfg, nil
			}
		}
	}
	// If no config file is found, return the defaults
	return cfg, nil
}

// unmarshal expands environment variables before decoding, so values like
// `caption: ${PLACEHOLDER_CAPTION}` work.
func unmarshal(b []byte, cfg *Config) error {
	if err := yaml.Unmarshal(expand.ExpandenvYAMLBytes(b), cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return nil
}

// configPath returns the path to the configuration directory.
func configPath() string {
	if configHomePath != "" {
		return configHomePath
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		configHomePath = filepath.Join(v, "artstub")
	} else {
		configHomePath = filepath.Join(homePath, ".config", "artstub")
	}
	return configHomePath
}

// StateHomePath returns the path to the state home directory.
func StateHomePath() string {
	if stateHomePath != "" {
		return stateHomePath
	}
	if v := os.Getenv("XDG_STATE_HOME"); v != "" {
		stateHomePath = filepath.Join(v, "artstub")
	} else {
		stateHomePath = filepath.Join(homePath, ".local", "state", "artstub")
	}
	return stateHomePath
}
