package memory

import (
	"fmt"
	"time"

	"github.com/tiwariParth/go-scheduler/internal/storage"
)

// Analyze splits the span from the earliest start to the latest end into
// consecutive buckets of the given width and counts the tasks intersecting
// each one. The last bucket may run past the latest end.
func (m *MemoryStore) Analyze(width time.Duration) ([]storage.Slot, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: bucket width must be positive, got %s", storage.ErrInvalidArgument, width)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.tasks) == 0 {
		return nil, storage.ErrNothingToAnalyze
	}

	rangeStart, rangeEnd := m.tasks[0].Start, m.tasks[0].End
	for _, task := range m.tasks[1:] {
		if task.Start.Before(rangeStart) {
			rangeStart = task.Start
		}
		if task.End.After(rangeEnd) {
			rangeEnd = task.End
		}
	}

	var slots []storage.Slot
	for cursor := rangeStart; cursor.Before(rangeEnd); cursor = cursor.Add(width) {
		slot := storage.Slot{Start: cursor, End: cursor.Add(width)}
		for _, task := range m.tasks {
			if task.Intersects(slot.Start, slot.End) {
				slot.Count++
			}
		}
		slots = append(slots, slot)
	}
	return slots, nil
}
