package file

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tiwariParth/go-scheduler/internal/models"
	"github.com/tiwariParth/go-scheduler/internal/storage"
)

// FileData represents the structure of a task file
type FileData struct {
	Tasks []TaskRecord `yaml:"tasks"`
}

// TaskRecord is a task as written in a file, with times in the configured layout
type TaskRecord struct {
	Start       string `yaml:"start"`
	End         string `yaml:"end"`
	Category    string `yaml:"category"`
	Description string `yaml:"description"`
	Priority    int    `yaml:"priority"`
}

// ChartData is the document handed to an external chart renderer
type ChartData struct {
	Groups []GroupRecord `yaml:"groups"`
}

// GroupRecord is one category of bars
type GroupRecord struct {
	Category string      `yaml:"category"`
	Bars     []BarRecord `yaml:"bars"`
}

// BarRecord is one (start, end, description) triple
type BarRecord struct {
	Start       string `yaml:"start"`
	End         string `yaml:"end"`
	Description string `yaml:"description"`
}

// LoadFile reads tasks from a YAML file. Times are parsed with layout in
// the local time zone.
func LoadFile(path, layout string) ([]models.Task, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open task file: %w", err)
	}
	defer f.Close()

	tasks, err := Decode(f, layout)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tasks, nil
}

// Decode reads a YAML task document from r
func Decode(r io.Reader, layout string) ([]models.Task, error) {
	var data FileData
	if err := yaml.NewDecoder(r).Decode(&data); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to decode tasks: %w", err)
	}

	tasks := make([]models.Task, 0, len(data.Tasks))
	for i, rec := range data.Tasks {
		start, err := time.ParseInLocation(layout, rec.Start, time.Local)
		if err != nil {
			return nil, fmt.Errorf("task %d: invalid start: %w", i+1, err)
		}
		end, err := time.ParseInLocation(layout, rec.End, time.Local)
		if err != nil {
			return nil, fmt.Errorf("task %d: invalid end: %w", i+1, err)
		}
		task, err := models.NewTask(start, end, rec.Category, rec.Description, rec.Priority)
		if err != nil {
			return nil, fmt.Errorf("task %d: %w", i+1, err)
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// Seed adds every task to s, stopping at the first failure
func Seed(s storage.Storage, tasks []models.Task) error {
	for _, task := range tasks {
		if err := s.Add(task); err != nil {
			return fmt.Errorf("failed to add %q: %w", task.Description, err)
		}
	}
	return nil
}

// EncodeChart writes groups to w as a YAML chart document
func EncodeChart(w io.Writer, groups []storage.Group, layout string) error {
	data := ChartData{Groups: make([]GroupRecord, 0, len(groups))}
	for _, g := range groups {
		rec := GroupRecord{Category: g.Category, Bars: make([]BarRecord, 0, len(g.Bars))}
		for _, b := range g.Bars {
			rec.Bars = append(rec.Bars, BarRecord{
				Start:       b.Start.Format(layout),
				End:         b.End.Format(layout),
				Description: b.Description,
			})
		}
		data.Groups = append(data.Groups, rec)
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode chart: %w", err)
	}
	return encoder.Close()
}
