package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newTasksCompleteCmd creates the "taskroll tasks complete" command.
func newTasksCompleteCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:               "complete [slug]...",
		Aliases:           []string{"done"},
		Short:             "Mark task(s) as completed",
		ValidArgsFunction: completeSlugs(uncompletedTasks),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !all && len(args) == 0 {
				return fmt.Errorf("name at least one task or pass --all")
			}
			if all && len(args) > 0 {
				return fmt.Errorf("--all cannot be combined with task arguments")
			}

			st, err := openStore()
			if err != nil {
				return err
			}

			slugs := args
			if all {
				slugs = st.TodaysTasks().Slugs()
			}
			if err := st.CompleteTasks(slugs); err != nil {
				return err
			}
			return st.Save()
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Mark all of today's tasks as complete")

	return cmd
}

func init() {
	tasksCmd.AddCommand(newTasksCompleteCmd())
}
