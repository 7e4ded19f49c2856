package cli

import (
	"github.com/spf13/cobra"

	"github.com/taskroll-cli/taskroll/internal/dateutil"
	"github.com/taskroll-cli/taskroll/internal/task"
)

// dateValue adapts dateutil.Date to pflag.Value.
type dateValue struct {
	date *dateutil.Date
}

func (v dateValue) Set(s string) error {
	parsed, err := dateutil.ParseDate(s)
	if err != nil {
		return err
	}
	*v.date = parsed
	return nil
}

func (v dateValue) String() string {
	if v.date == nil || v.date.IsZero() {
		return ""
	}
	return v.date.String()
}

func (v dateValue) Type() string {
	return "date"
}

// newTasksEnableCmd creates the "taskroll tasks enable" command.
func newTasksEnableCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "enable <slug>...",
		Short:             "Lift suppression on task(s)",
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: completeSlugs(disabledTasks),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}
			if err := st.EnableTasks(args); err != nil {
				return err
			}
			return st.Save()
		},
	}
}

// newTasksDisableCmd creates the "taskroll tasks disable" command. Without
// --until or --for the suppression is indefinite.
func newTasksDisableCmd() *cobra.Command {
	var (
		until   dateutil.Date
		forDays int
	)

	cmd := &cobra.Command{
		Use:               "disable <slug>...",
		Short:             "Suppress task(s) from the daily draw",
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: completeSlugs(enabledTasks),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}

			policy := task.Disabled{Kind: task.KindDisabled}
			switch {
			case !until.IsZero():
				policy = task.DisabledUntil(until)
			case forDays > 0:
				policy = task.DisabledFor(forDays)
			}

			if err := st.DisableTasks(args, policy); err != nil {
				return err
			}
			return st.Save()
		},
	}

	cmd.Flags().VarP(dateValue{date: &until}, "until", "u", "Disable through the given date (inclusive)")
	cmd.Flags().IntVar(&forDays, "for", 0, "Disable for the given number of days")
	cmd.MarkFlagsMutuallyExclusive("until", "for")

	return cmd
}

func init() {
	tasksCmd.AddCommand(newTasksEnableCmd())
	tasksCmd.AddCommand(newTasksDisableCmd())
}
