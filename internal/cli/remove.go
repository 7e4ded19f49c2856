package cli

import (
	"github.com/spf13/cobra"
)

// newTasksRemoveCmd creates the "taskroll tasks rm" command. Removal purges
// the task from the catalog, the state map, and today's set.
func newTasksRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "rm <slug>...",
		Aliases:           []string{"remove", "delete"},
		Short:             "Remove task(s) from the catalog",
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: completeSlugs(anyTask),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}
			if err := st.RemoveTasks(args); err != nil {
				return err
			}
			return st.Save()
		},
	}
}

func init() {
	tasksCmd.AddCommand(newTasksRemoveCmd())
}
