package app

import (
	"fmt"
	"io"
	"log"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/tiwariParth/go-scheduler/internal/config"
	"github.com/tiwariParth/go-scheduler/internal/models"
	"github.com/tiwariParth/go-scheduler/internal/storage"
	"github.com/tiwariParth/go-scheduler/internal/storage/file"
)

// SchedulerApp turns front-end input into store operations
type SchedulerApp struct {
	store  storage.Storage
	cfg    *config.Config
	logger *log.Logger
}

// NewSchedulerApp wires a store with configuration. A nil logger discards output.
func NewSchedulerApp(store storage.Storage, cfg *config.Config, logger *log.Logger) *SchedulerApp {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &SchedulerApp{store: store, cfg: cfg, logger: logger}
}

// Store exposes the underlying task collection
func (a *SchedulerApp) Store() storage.Storage {
	return a.store
}

// Config returns the active configuration
func (a *SchedulerApp) Config() *config.Config {
	return a.cfg
}

// LoadTasks seeds the store from a YAML task file
func (a *SchedulerApp) LoadTasks(path string) (int, error) {
	tasks, err := file.LoadFile(path, a.cfg.TimeLayout)
	if err != nil {
		return 0, err
	}
	if err := file.Seed(a.store, tasks); err != nil {
		return 0, err
	}
	a.logger.Printf("loaded %d tasks from %s", len(tasks), path)
	return len(tasks), nil
}

// AddTask parses the times and adds a task
func (a *SchedulerApp) AddTask(start, end, category, description string, priority int) (models.Task, error) {
	startTime, err := a.ParseTime(start)
	if err != nil {
		return models.Task{}, err
	}
	endTime, err := a.ParseTime(end)
	if err != nil {
		return models.Task{}, err
	}

	task, err := models.NewTask(startTime, endTime, strings.TrimSpace(category), strings.TrimSpace(description), priority)
	if err != nil {
		return models.Task{}, err
	}
	if err := a.store.Add(task); err != nil {
		return models.Task{}, err
	}
	a.logger.Printf("added %s", task)
	return task, nil
}

// SortTasks reorders by the named criterion, or the configured default when name is blank
func (a *SchedulerApp) SortTasks(name string) (storage.SortKey, error) {
	key := storage.ParseSortKey(name)
	if key == "" {
		key = storage.ParseSortKey(a.cfg.DefaultSort)
	}
	if err := a.store.Reorder(key); err != nil {
		return key, err
	}
	return key, nil
}

// FindTasks returns the tasks overlapping the given time
func (a *SchedulerApp) FindTasks(at string) (time.Time, []models.Task, error) {
	instant, err := a.ParseTime(at)
	if err != nil {
		return time.Time{}, nil, err
	}
	return instant, a.store.FindAt(instant), nil
}

// AnalyzeBusySlots runs the density analysis over buckets of width
func (a *SchedulerApp) AnalyzeBusySlots(width time.Duration) ([]storage.Slot, error) {
	return a.store.Analyze(width)
}

// DefaultWidth is the configured bucket width
func (a *SchedulerApp) DefaultWidth() time.Duration {
	return a.cfg.BucketWidth
}

// ExportChart writes the category groups as YAML for a chart renderer
func (a *SchedulerApp) ExportChart(w io.Writer) error {
	return file.EncodeChart(w, a.store.GroupByCategory(), a.cfg.TimeLayout)
}

// ParseTime reads a time in the configured layout, in local time
func (a *SchedulerApp) ParseTime(s string) (time.Time, error) {
	t, err := time.ParseInLocation(a.cfg.TimeLayout, strings.TrimSpace(s), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q, expected layout %q", s, a.cfg.TimeLayout)
	}
	return t, nil
}

// FormatTime prints t in the configured layout
func (a *SchedulerApp) FormatTime(t time.Time) string {
	return t.Format(a.cfg.TimeLayout)
}

// maxWidthHours is the largest whole-hour width a time.Duration can hold
const maxWidthHours = int64(math.MaxInt64 / int64(time.Hour))

// ParseWidth accepts a Go duration ("90m") or a bare number of hours ("2").
// Whole hours must be positive and fit in a time.Duration.
func ParseWidth(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if hours, err := strconv.ParseInt(s, 10, 64); err == nil {
		if hours <= 0 || hours > maxWidthHours {
			return 0, fmt.Errorf("invalid interval %q: %w: hours must be between 1 and %d",
				s, storage.ErrInvalidArgument, maxWidthHours)
		}
		return time.Duration(hours) * time.Hour, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid interval %q: %w", s, err)
	}
	return d, nil
}
