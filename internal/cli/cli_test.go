package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiwariParth/go-scheduler/internal/storage"
)

const tasksDoc = `tasks:
  - start: "2024-03-01 09:00"
    end: "2024-03-01 10:00"
    category: academic
    description: Lecture
    priority: 5
  - start: "2024-03-01 09:30"
    end: "2024-03-01 11:00"
    category: personal
    description: Gym
    priority: 3
  - start: "2024-03-01 14:00"
    end: "2024-03-01 15:00"
    category: academic
    description: Exam
    priority: 8
`

func writeTasks(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tasks.yaml")
	require.NoError(t, os.WriteFile(path, []byte(tasksDoc), 0o644))
	return path
}

// emptyConfig keeps tests away from config files in the home directory
func emptyConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0o644))
	return path
}

func run(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCommand(strings.NewReader(input), &out, &errOut)
	cmd.SetArgs(append([]string{"--no-color", "--config", emptyConfig(t)}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestSortCommand(t *testing.T) {
	out, err := run(t, "", "sort", "--tasks-file", writeTasks(t), "--by", "priority")
	require.NoError(t, err)

	assert.Contains(t, out, "Tasks sorted based on: priority")
	exam := strings.Index(out, "Exam")
	lecture := strings.Index(out, "Lecture")
	gym := strings.Index(out, "Gym")
	assert.True(t, exam < lecture && lecture < gym, out)
}

func TestSortCommand_Unsupported(t *testing.T) {
	_, err := run(t, "", "sort", "--tasks-file", writeTasks(t), "--by", "colour")
	require.Error(t, err)
	assert.ErrorIs(t, err, storage.ErrUnsupportedSortKey)
	assert.Contains(t, err.Error(), `cannot sort by "colour"`)
}

func TestFindCommand(t *testing.T) {
	path := writeTasks(t)

	out, err := run(t, "", "find", "--tasks-file", path, "--at", "2024-03-01 09:45")
	require.NoError(t, err)
	assert.Contains(t, out, "Tasks overlapping 2024-03-01 09:45")
	assert.Contains(t, out, "Lecture")
	assert.Contains(t, out, "Gym")
	assert.NotContains(t, out, "Exam")

	out, err = run(t, "", "find", "--tasks-file", path, "--at", "2024-03-01 12:00")
	require.NoError(t, err)
	assert.Contains(t, out, "No tasks found for the specified time.")
}

func TestFindCommand_BadTime(t *testing.T) {
	_, err := run(t, "", "find", "--tasks-file", writeTasks(t), "--at", "noon")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid time "noon"`)
}

func TestAnalyzeCommand(t *testing.T) {
	out, err := run(t, "", "analyze", "--tasks-file", writeTasks(t))
	require.NoError(t, err)

	assert.Contains(t, out, "Analyzing busy slots with 1h0m0s intervals...")
	assert.Contains(t, out, "2024-03-01 09:00 to 2024-03-01 10:00: 2 tasks")
	assert.Contains(t, out, "2024-03-01 10:00 to 2024-03-01 11:00: 1 tasks")
	assert.Contains(t, out, "2024-03-01 14:00 to 2024-03-01 15:00: 1 tasks")
}

func TestAnalyzeCommand_InvalidWidth(t *testing.T) {
	for _, width := range []string{"0", "-30m", "2562048"} {
		_, err := run(t, "", "analyze", "--tasks-file", writeTasks(t), "--width="+width)
		assert.ErrorIs(t, err, storage.ErrInvalidArgument, width)
	}
}

func TestAnalyzeCommand_Empty(t *testing.T) {
	out, err := run(t, "", "analyze")
	require.NoError(t, err)
	assert.Contains(t, out, "No tasks to analyze.")
}

func TestChartCommand(t *testing.T) {
	out, err := run(t, "", "chart", "--tasks-file", writeTasks(t))
	require.NoError(t, err)

	assert.Contains(t, out, "category: academic")
	assert.Contains(t, out, "category: personal")
	assert.Less(t, strings.Index(out, "Lecture"), strings.Index(out, "Exam"))
}

func TestBadTasksFile(t *testing.T) {
	_, err := run(t, "", "list", "--tasks-file", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestInteractiveMenu(t *testing.T) {
	input := strings.Join([]string{
		"1", "2024-03-01 09:00", "2024-03-01 10:00", "academic", "Lecture", "5",
		"1", "2024-03-01 09:30", "2024-03-01 11:00", "personal", "Gym", "3",
		"1", "2024-03-01 12:00", "2024-03-01 11:00", "personal", "Backwards", "1",
		"1", "2024-03-01 14:00", "2024-03-01 15:00", "academic", "Exam", "high",
		"3", "2024-03-01 09:45",
		"3", "noon",
		"4", "0",
		"4", "1",
		"2", "type",
		"9",
		"6",
	}, "\n") + "\n"

	out, err := run(t, input)
	require.NoError(t, err)

	assert.Equal(t, 2, strings.Count(out, "Task added successfully!"))
	assert.Contains(t, out, "failed to add task")
	assert.Contains(t, out, `invalid priority "high"`)
	assert.Contains(t, out, "Tasks overlapping 2024-03-01 09:45")
	assert.Contains(t, out, `invalid time "noon"`)
	assert.Contains(t, out, `invalid interval "0"`)
	assert.Contains(t, out, "2024-03-01 10:00 to 2024-03-01 11:00: 1 tasks")
	assert.Contains(t, out, "Tasks sorted based on: type")
	assert.Contains(t, out, "Enter task type (personal/academic): ")
	assert.Contains(t, out, "Lecture  2024-03-01 09:00 -> 2024-03-01 10:00 (1h0m0s)")
	assert.Contains(t, out, "Invalid choice. Try again!")
	assert.Contains(t, out, "Goodbye!")
}

func TestInteractiveMenu_EndOfInput(t *testing.T) {
	out, err := run(t, "4\n\n")
	require.NoError(t, err)
	assert.Contains(t, out, "No tasks to analyze.")
}

func TestHelpText(t *testing.T) {
	out, err := run(t, "", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "tasks loaded with --tasks-file and exit")

	out, err = run(t, "", "list", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "List tasks in their current order")
}
