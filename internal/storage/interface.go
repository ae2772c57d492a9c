package storage

import (
	"errors"
	"strings"
	"time"

	"github.com/tiwariParth/go-scheduler/internal/models"
)

// Common errors that can be returned by any storage implementation
var (
	ErrTaskValidation     = errors.New("task validation failed")
	ErrUnsupportedSortKey = errors.New("unsupported sort key")
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrNothingToAnalyze   = errors.New("no tasks to analyze")
)

// DefaultBucketWidth is the slot width used when none is configured
const DefaultBucketWidth = time.Hour

// SortKey names a reorder criterion
type SortKey string

const (
	SortByDeadline SortKey = "deadline" // ascending by end time
	SortByPriority SortKey = "priority" // descending by priority
	SortByType     SortKey = "type"     // ascending by category
)

// SortKeys lists the supported criteria in menu order
var SortKeys = []SortKey{SortByDeadline, SortByPriority, SortByType}

// ParseSortKey normalizes user input into a SortKey. The result may not be
// supported; check Valid.
func ParseSortKey(s string) SortKey {
	return SortKey(strings.ToLower(strings.TrimSpace(s)))
}

// Valid reports whether k is a supported criterion
func (k SortKey) Valid() bool {
	switch k {
	case SortByDeadline, SortByPriority, SortByType:
		return true
	default:
		return false
	}
}

func (k SortKey) String() string {
	return string(k)
}

// Slot is one bucket of a busy-slot analysis
type Slot struct {
	Start time.Time `yaml:"start"`
	End   time.Time `yaml:"end"`
	Count int       `yaml:"count"`
}

// Bar is a single task as consumed by a chart renderer
type Bar struct {
	Start       time.Time `yaml:"start"`
	End         time.Time `yaml:"end"`
	Description string    `yaml:"description"`
}

// Group holds the bars of one category
type Group struct {
	Category string `yaml:"category"`
	Bars     []Bar  `yaml:"bars"`
}

// Storage defines the operations the front-end performs on the task collection
type Storage interface {
	// Add inserts a task keeping the collection ordered by models.Compare.
	Add(task models.Task) error
	// Reorder replaces the current order with a stable sort by key.
	Reorder(key SortKey) error

	FindAt(instant time.Time) []models.Task
	Analyze(width time.Duration) ([]Slot, error)
	GroupByCategory() []Group

	List() []models.Task
	Len() int
}
