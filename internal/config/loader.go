package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. SCHEDULER_BUCKET_WIDTH=30m
const EnvPrefix = "SCHEDULER"

// Load merges defaults, the global config, the project config, the
// environment and any flags that were set, in that order. An explicit path
// replaces both config files and must exist.
func Load(explicitPath string, flags *pflag.FlagSet, logger *log.Logger) (*Config, error) {
	v := newViper()

	if explicitPath != "" {
		if err := mergeFile(v, explicitPath); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", explicitPath, err)
		}
	} else {
		for _, path := range []string{GlobalConfigPath(), ProjectConfigPath()} {
			if path == "" {
				continue
			}
			if err := mergeFile(v, path); err != nil && !errors.Is(err, os.ErrNotExist) {
				// Log warning but continue
				if logger != nil {
					logger.Printf("Warning: ignoring config %s: %v", path, err)
				}
			}
		}
	}

	if flags != nil {
		bindFlags(v, flags)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks settings that would make operations misbehave
func (c *Config) Validate() error {
	if c.TimeLayout == "" {
		return errors.New("time_layout must not be empty")
	}
	if c.BucketWidth <= 0 {
		return fmt.Errorf("bucket_width must be positive, got %s", c.BucketWidth)
	}
	return nil
}

func newViper() *viper.Viper {
	v := viper.New()
	def := DefaultConfig()
	v.SetDefault("time_layout", def.TimeLayout)
	v.SetDefault("bucket_width", def.BucketWidth)
	v.SetDefault("default_sort", def.DefaultSort)
	v.SetDefault("tasks_file", def.TasksFile)
	v.SetDefault("no_color", def.NoColor)
	v.SetDefault("verbose", def.Verbose)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

func mergeFile(v *viper.Viper, path string) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	return v.MergeInConfig()
}

// bindFlags maps changed flags such as --bucket-width onto bucket_width.
// Unchanged flags are skipped so file and env values win over flag defaults.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	flags.Visit(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		if isKnownKey(key) {
			v.Set(key, f.Value.String())
		}
	})
}

func isKnownKey(key string) bool {
	switch key {
	case "time_layout", "bucket_width", "default_sort", "tasks_file", "no_color", "verbose":
		return true
	}
	return false
}

// GlobalConfigPath returns the path to the global config file
func GlobalConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".scheduler", "config.yaml")
}

// ProjectConfigPath returns the path to the config file in the working directory
func ProjectConfigPath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return filepath.Join(cwd, ".scheduler", "config.yaml")
}
