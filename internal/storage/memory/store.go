package memory

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/tiwariParth/go-scheduler/internal/mergesort"
	"github.com/tiwariParth/go-scheduler/internal/models"
	"github.com/tiwariParth/go-scheduler/internal/storage"
)

// MemoryStore implements the storage.Storage interface using in-memory storage
type MemoryStore struct {
	tasks []models.Task
	mu    sync.RWMutex
}

var _ storage.Storage = (*MemoryStore)(nil)

// NewMemoryStore creates a new instance of MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Add inserts task after any equal tasks so the collection stays sorted by
// models.Compare.
func (m *MemoryStore) Add(task models.Task) error {
	if err := task.Validate(); err != nil {
		return fmt.Errorf("%w: %w", storage.ErrTaskValidation, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.insertionPoint(task)
	m.tasks = slices.Insert(m.tasks, i, task)
	return nil
}

// Reorder sorts the collection by key. Unsupported keys leave it unchanged.
func (m *MemoryStore) Reorder(key storage.SortKey) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch key {
	case storage.SortByDeadline:
		m.tasks = mergesort.SortByFunc(m.tasks, func(t models.Task) time.Time { return t.End }, time.Time.Compare)
	case storage.SortByPriority:
		m.tasks = mergesort.SortBy(m.tasks, func(t models.Task) int { return -t.Priority })
	case storage.SortByType:
		m.tasks = mergesort.SortBy(m.tasks, func(t models.Task) string { return t.Category })
	default:
		return fmt.Errorf("%w: %q", storage.ErrUnsupportedSortKey, string(key))
	}
	return nil
}

// FindAt returns the tasks whose interval contains instant, in current order
func (m *MemoryStore) FindAt(instant time.Time) []models.Task {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var found []models.Task
	for _, task := range m.tasks {
		if task.Contains(instant) {
			found = append(found, task)
		}
	}
	return found
}

// GroupByCategory partitions the collection by category for chart rendering.
// Groups appear in the order their category is first seen.
func (m *MemoryStore) GroupByCategory() []storage.Group {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var groups []storage.Group
	index := make(map[string]int)
	for _, task := range m.tasks {
		i, ok := index[task.Category]
		if !ok {
			i = len(groups)
			index[task.Category] = i
			groups = append(groups, storage.Group{Category: task.Category})
		}
		groups[i].Bars = append(groups[i].Bars, storage.Bar{
			Start:       task.Start,
			End:         task.End,
			Description: task.Description,
		})
	}
	return groups
}

// List returns a copy of the collection in current order
func (m *MemoryStore) List() []models.Task {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return slices.Clone(m.tasks)
}

// Len returns the number of stored tasks
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.tasks)
}

// Helper functions

// insertionPoint binary-searches for the index after the last task that
// compares <= task. After a Reorder the collection is no longer in tuple
// order and the result is only where the search lands.
func (m *MemoryStore) insertionPoint(task models.Task) int {
	lo, hi := 0, len(m.tasks)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if models.Compare(task, m.tasks[mid]) < 0 {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}
