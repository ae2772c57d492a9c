package models

import (
	"cmp"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidInterval is returned when a task ends before it starts.
var ErrInvalidInterval = errors.New("task ends before it starts")

// Common task categories. Category is an open set; any label is accepted.
const (
	CategoryPersonal = "personal"
	CategoryAcademic = "academic"
)

// Task represents a time-bounded, labeled, prioritized unit of scheduled work
type Task struct {
	Start       time.Time
	End         time.Time
	Category    string
	Description string
	Priority    int // higher is more urgent
}

// NewTask creates a task and checks that its interval is well formed
func NewTask(start, end time.Time, category, description string, priority int) (Task, error) {
	t := Task{
		Start:       start,
		End:         end,
		Category:    category,
		Description: description,
		Priority:    priority,
	}
	if err := t.Validate(); err != nil {
		return Task{}, err
	}
	return t, nil
}

// Validate checks if the task has valid data
func (t Task) Validate() error {
	if t.End.Before(t.Start) {
		return fmt.Errorf("%w: start %s, end %s", ErrInvalidInterval,
			t.Start.Format(time.RFC3339), t.End.Format(time.RFC3339))
	}
	return nil
}

// Contains reports whether instant falls inside the task, inclusive on both ends.
func (t Task) Contains(instant time.Time) bool {
	return !instant.Before(t.Start) && !instant.After(t.End)
}

// Intersects reports whether the task overlaps [from, to). Touching either
// boundary does not count.
func (t Task) Intersects(from, to time.Time) bool {
	return t.Start.Before(to) && t.End.After(from)
}

// Duration returns how long the task lasts
func (t Task) Duration() time.Duration {
	return t.End.Sub(t.Start)
}

// Compare orders tasks by (Start, End, Category, Description, Priority).
func Compare(a, b Task) int {
	if c := a.Start.Compare(b.Start); c != 0 {
		return c
	}
	if c := a.End.Compare(b.End); c != 0 {
		return c
	}
	if c := strings.Compare(a.Category, b.Category); c != 0 {
		return c
	}
	if c := strings.Compare(a.Description, b.Description); c != 0 {
		return c
	}
	return cmp.Compare(a.Priority, b.Priority)
}

// String renders the task on one line
func (t Task) String() string {
	return fmt.Sprintf("(%s, %s, %s, %s, %d)",
		t.Start.Format(time.DateTime), t.End.Format(time.DateTime),
		t.Category, t.Description, t.Priority)
}
