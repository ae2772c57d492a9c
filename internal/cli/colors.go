package cli

import (
	"fmt"

	"github.com/fatih/color"
)

var (
	Bold   = color.New(color.Bold).SprintFunc()
	Red    = color.New(color.FgRed).SprintFunc()
	Green  = color.New(color.FgGreen).SprintFunc()
	Yellow = color.New(color.FgYellow).SprintFunc()
	Cyan   = color.New(color.FgCyan).SprintFunc()
)

// SetNoColor turns colored output off (or back on) for the whole process
func SetNoColor(off bool) {
	color.NoColor = off
}

// countColor highlights busier slots
func countColor(count, total int) func(a ...interface{}) string {
	switch {
	case count == 0:
		return fmt.Sprint
	case total > 1 && count == total:
		return Red
	case count > 1:
		return Yellow
	default:
		return Green
	}
}

