package config

import (
	"time"

	"github.com/tiwariParth/go-scheduler/internal/storage"
)

// DefaultTimeLayout is the layout for times typed at the prompt or read from task files
const DefaultTimeLayout = "2006-01-02 15:04"

// Config represents the scheduler configuration
type Config struct {
	// Layout used to parse and print times
	TimeLayout string `yaml:"time_layout" mapstructure:"time_layout"`

	// Busy-slot bucket width when none is given
	BucketWidth time.Duration `yaml:"bucket_width" mapstructure:"bucket_width"`

	// Criterion used by "sort" when --by is omitted
	DefaultSort string `yaml:"default_sort" mapstructure:"default_sort"`

	// Optional YAML file of tasks loaded at startup
	TasksFile string `yaml:"tasks_file" mapstructure:"tasks_file"`

	NoColor bool `yaml:"no_color" mapstructure:"no_color"`
	Verbose bool `yaml:"verbose" mapstructure:"verbose"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		TimeLayout:  DefaultTimeLayout,
		BucketWidth: storage.DefaultBucketWidth,
		DefaultSort: string(storage.SortByDeadline),
	}
}
