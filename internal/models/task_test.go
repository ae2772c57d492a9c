package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

func at(hour, minute int) time.Time {
	return day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func TestNewTask(t *testing.T) {
	task, err := NewTask(at(9, 0), at(10, 0), CategoryAcademic, "Lecture", 5)
	require.NoError(t, err)
	assert.Equal(t, "Lecture", task.Description)
	assert.Equal(t, time.Hour, task.Duration())

	// zero-length tasks are allowed
	_, err = NewTask(at(9, 0), at(9, 0), CategoryPersonal, "Call", 1)
	assert.NoError(t, err)

	_, err = NewTask(at(10, 0), at(9, 0), CategoryPersonal, "Backwards", 1)
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestTask_Contains(t *testing.T) {
	task := Task{Start: at(9, 0), End: at(10, 0)}

	assert.True(t, task.Contains(at(9, 0)))
	assert.True(t, task.Contains(at(9, 30)))
	assert.True(t, task.Contains(at(10, 0)))
	assert.False(t, task.Contains(at(9, 0).Add(-time.Nanosecond)))
	assert.False(t, task.Contains(at(10, 0).Add(time.Nanosecond)))
}

func TestTask_Intersects(t *testing.T) {
	task := Task{Start: at(9, 0), End: at(10, 0)}

	tests := []struct {
		name     string
		from, to time.Time
		want     bool
	}{
		{"inside", at(9, 15), at(9, 45), true},
		{"covering", at(8, 0), at(11, 0), true},
		{"touching end", at(10, 0), at(11, 0), false},
		{"touching start", at(8, 0), at(9, 0), false},
		{"overlapping start", at(8, 30), at(9, 1), true},
		{"after", at(11, 0), at(12, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, task.Intersects(tt.from, tt.to))
		})
	}
}

func TestCompare(t *testing.T) {
	base := Task{Start: at(9, 0), End: at(10, 0), Category: "academic", Description: "Lecture", Priority: 5}

	assert.Zero(t, Compare(base, base))

	later := base
	later.Start = at(9, 30)
	assert.Negative(t, Compare(base, later))
	assert.Positive(t, Compare(later, base))

	longer := base
	longer.End = at(11, 0)
	assert.Negative(t, Compare(base, longer))

	personal := base
	personal.Category = "personal"
	assert.Negative(t, Compare(base, personal))

	other := base
	other.Description = "Seminar"
	assert.Negative(t, Compare(base, other))

	urgent := base
	urgent.Priority = 9
	assert.Negative(t, Compare(base, urgent))
}
