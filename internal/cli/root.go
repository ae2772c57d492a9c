package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tiwariParth/go-scheduler/internal/app"
	"github.com/tiwariParth/go-scheduler/internal/config"
	"github.com/tiwariParth/go-scheduler/internal/storage/memory"
)

// Execute runs the root command against the process streams
func Execute(version string) error {
	cmd := NewRootCommand(os.Stdin, os.Stdout, os.Stderr)
	cmd.Version = version
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, Red("Error:"), err)
		return err
	}
	return nil
}

// NewRootCommand builds the command tree. Each invocation gets its own
// in-memory store; nothing is written back when the process ends.
func NewRootCommand(in io.Reader, out, errOut io.Writer) *cobra.Command {
	var (
		configPath string
		session    *CLI
	)

	root := &cobra.Command{
		Use:   "scheduler",
		Short: "Personal scheduling assistant",
		Long: `scheduler keeps a small in-memory schedule of time-bounded tasks.

Run without a subcommand for the interactive menu. Subcommands work on the
tasks loaded with --tasks-file and exit.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger := log.New(io.Discard, "scheduler: ", 0)

			cfg, err := config.Load(configPath, cmd.Flags(), log.New(errOut, "scheduler: ", 0))
			if err != nil {
				return err
			}
			if cfg.Verbose {
				logger.SetOutput(errOut)
			}
			if cfg.NoColor {
				SetNoColor(true)
			}

			a := app.NewSchedulerApp(memory.NewMemoryStore(), cfg, logger)
			if cfg.TasksFile != "" {
				if _, err := a.LoadTasks(cfg.TasksFile); err != nil {
					return err
				}
			}
			session = NewCLI(a, in, out)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return session.Run()
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "config file (default ~/.scheduler/config.yaml and ./.scheduler/config.yaml)")
	flags.String("tasks-file", "", "YAML file of tasks to load at startup")
	flags.String("time-layout", config.DefaultTimeLayout, "Go time layout for entering and printing times")
	flags.Bool("no-color", false, "Disable colored output")
	flags.BoolP("verbose", "v", false, "Enable verbose output")

	current := func() *CLI { return session }
	root.AddCommand(
		newListCmd(current),
		newSortCmd(current),
		newFindCmd(current),
		newAnalyzeCmd(current),
		newChartCmd(current),
	)
	return root
}

func newListCmd(session func() *CLI) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tasks in their current order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session().List()
			return nil
		},
	}
}

func newSortCmd(session func() *CLI) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sort",
		Short: "List tasks sorted by deadline, priority or type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			by, _ := cmd.Flags().GetString("by")
			if by == "" {
				by = session().App.Config().DefaultSort
			}
			return session().Sort(by)
		},
	}
	cmd.Flags().String("by", "", "sort criterion: deadline, priority or type (default from config)")
	return cmd
}

func newFindCmd(session func() *CLI) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find",
		Short: "Show the tasks running at a given time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			at, _ := cmd.Flags().GetString("at")
			return session().Find(at)
		},
	}
	cmd.Flags().String("at", "", "time to look up, in the configured layout")
	_ = cmd.MarkFlagRequired("at")
	return cmd
}

func newAnalyzeCmd(session func() *CLI) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Count tasks per fixed-width time bucket",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			width := session().App.DefaultWidth()
			if cmd.Flags().Changed("width") {
				raw, _ := cmd.Flags().GetString("width")
				parsed, err := app.ParseWidth(raw)
				if err != nil {
					return err
				}
				width = parsed
			}
			return session().Analyze(width)
		},
	}
	cmd.Flags().String("width", time.Hour.String(), "bucket width as a duration (90m) or whole hours (2); default from config")
	return cmd
}

func newChartCmd(session func() *CLI) *cobra.Command {
	return &cobra.Command{
		Use:   "chart",
		Short: "Print tasks grouped by type as YAML for a chart renderer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return session().Chart()
		},
	}
}
