package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/tiwariParth/go-scheduler/internal/app"
	"github.com/tiwariParth/go-scheduler/internal/models"
	"github.com/tiwariParth/go-scheduler/internal/storage"
)

// CLI represents the interactive scheduling assistant
type CLI struct {
	App    *app.SchedulerApp
	reader *bufio.Reader
	out    io.Writer
}

// NewCLI initializes a new CLI reading answers from in
func NewCLI(a *app.SchedulerApp, in io.Reader, out io.Writer) *CLI {
	return &CLI{App: a, reader: bufio.NewReader(in), out: out}
}

const menu = `
Personal Scheduling Assistant
1. Add Task
2. Sort Tasks
3. Find Task by Time
4. Analyze Busy Slots
5. Show Chart Data
6. Exit`

// Run shows the menu until the user exits or input ends. Operation errors
// are printed and the menu continues.
func (c *CLI) Run() error {
	for {
		fmt.Fprintln(c.out, Bold(menu))
		choice, err := c.prompt("Enter your choice: ")
		if err != nil {
			return eofIsExit(err)
		}

		var opErr error
		switch choice {
		case "1":
			err = c.addTask()
		case "2":
			var key string
			if key, err = c.prompt("Sort by (deadline/priority/type): "); err == nil {
				opErr = c.Sort(key)
			}
		case "3":
			var at string
			if at, err = c.prompt(fmt.Sprintf("Enter the time to search for (%s): ", c.App.Config().TimeLayout)); err == nil {
				opErr = c.Find(at)
			}
		case "4":
			var answer string
			if answer, err = c.prompt("Enter interval length in hours: "); err == nil {
				opErr = c.analyzeAnswer(answer)
			}
		case "5":
			opErr = c.Chart()
		case "6", "exit", "quit":
			fmt.Fprintln(c.out, "Goodbye!")
			return nil
		default:
			fmt.Fprintln(c.out, Red("Invalid choice. Try again!"))
		}

		if opErr != nil {
			c.printError(opErr)
		}
		if err != nil {
			return eofIsExit(err)
		}
	}
}

// addTask prompts for the fields and adds the task. Only input errors are
// returned; a rejected task is printed.
func (c *CLI) addTask() error {
	layout := c.App.Config().TimeLayout

	start, err := c.prompt(fmt.Sprintf("Enter start time (%s): ", layout))
	if err != nil {
		return err
	}
	end, err := c.prompt(fmt.Sprintf("Enter end time (%s): ", layout))
	if err != nil {
		return err
	}
	category, err := c.prompt(fmt.Sprintf("Enter task type (%s/%s): ", models.CategoryPersonal, models.CategoryAcademic))
	if err != nil {
		return err
	}
	description, err := c.prompt("Enter task description: ")
	if err != nil {
		return err
	}
	rawPriority, err := c.prompt("Enter task priority (1-10): ")
	if err != nil {
		return err
	}

	priority, convErr := strconv.Atoi(rawPriority)
	if convErr != nil {
		c.printError(fmt.Errorf("invalid priority %q: must be a whole number", rawPriority))
		return nil
	}
	if err := c.Add(start, end, category, description, priority); err != nil {
		c.printError(err)
	}
	return nil
}

// Add adds a task and reports the outcome
func (c *CLI) Add(start, end, category, description string, priority int) error {
	if _, err := c.App.AddTask(start, end, category, description, priority); err != nil {
		return fmt.Errorf("failed to add task: %w", err)
	}
	fmt.Fprintln(c.out, Green("Task added successfully!"))
	return nil
}

// Sort reorders the tasks and prints the new order
func (c *CLI) Sort(name string) error {
	key, err := c.App.SortTasks(name)
	if err != nil {
		if errors.Is(err, storage.ErrUnsupportedSortKey) {
			return fmt.Errorf("cannot sort by %q, choose one of %s: %w", key, sortKeyList(), storage.ErrUnsupportedSortKey)
		}
		return err
	}
	fmt.Fprintf(c.out, "\nTasks sorted based on: %s\n", Bold(key))
	c.List()
	return nil
}

// Find prints the tasks overlapping the given time
func (c *CLI) Find(at string) error {
	instant, found, err := c.App.FindTasks(at)
	if err != nil {
		return err
	}
	if len(found) == 0 {
		fmt.Fprintln(c.out, Yellow("No tasks found for the specified time."))
		return nil
	}
	fmt.Fprintf(c.out, "Tasks overlapping %s:\n", Bold(c.App.FormatTime(instant)))
	c.printTasks(found)
	return nil
}

func (c *CLI) analyzeAnswer(answer string) error {
	width := c.App.DefaultWidth()
	if strings.TrimSpace(answer) != "" {
		parsed, err := app.ParseWidth(answer)
		if err != nil {
			return err
		}
		width = parsed
	}
	return c.Analyze(width)
}

// Analyze prints the busy-slot density for buckets of width. An empty
// schedule is reported, not returned as an error.
func (c *CLI) Analyze(width time.Duration) error {
	fmt.Fprintf(c.out, "\nAnalyzing busy slots with %s intervals...\n", width)

	slots, err := c.App.AnalyzeBusySlots(width)
	switch {
	case errors.Is(err, storage.ErrNothingToAnalyze):
		fmt.Fprintln(c.out, Yellow("No tasks to analyze."))
		return nil
	case err != nil:
		return err
	}

	total := c.App.Store().Len()
	for _, slot := range slots {
		paint := countColor(slot.Count, total)
		fmt.Fprintf(c.out, "%s to %s: %s tasks\n",
			c.App.FormatTime(slot.Start), c.App.FormatTime(slot.End), paint(slot.Count))
	}
	return nil
}

// Chart writes the category groups for an external chart renderer
func (c *CLI) Chart() error {
	if c.App.Store().Len() == 0 {
		fmt.Fprintln(c.out, Yellow("No tasks to chart."))
		return nil
	}
	return c.App.ExportChart(c.out)
}

// List prints every task in current order
func (c *CLI) List() {
	tasks := c.App.Store().List()
	if len(tasks) == 0 {
		fmt.Fprintln(c.out, "No tasks found.")
		return
	}
	c.printTasks(tasks)
}

func (c *CLI) printTasks(tasks []models.Task) {
	for i, task := range tasks {
		fmt.Fprintf(c.out, "%d. %s  %s -> %s (%s)  [%s] priority %d\n",
			i+1, Bold(task.Description),
			c.App.FormatTime(task.Start), c.App.FormatTime(task.End), task.Duration(),
			Cyan(task.Category), task.Priority)
	}
}

func (c *CLI) printError(err error) {
	fmt.Fprintf(c.out, "%s %v\n", Red("Error:"), err)
}

func (c *CLI) prompt(label string) (string, error) {
	fmt.Fprint(c.out, label)
	line, err := c.reader.ReadString('\n')
	if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func eofIsExit(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func sortKeyList() string {
	names := make([]string, 0, len(storage.SortKeys))
	for _, k := range storage.SortKeys {
		names = append(names, k.String())
	}
	return strings.Join(names, ", ")
}
