package cli

import (
	"github.com/spf13/cobra"
)

// newTasksUpdateCmd creates the "taskroll tasks update" command. Only the
// flags that are provided override the stored definition; tags are unioned
// and the slug never changes.
func newTasksUpdateCmd() *cobra.Command {
	var (
		flags taskFlags
		title string
	)

	cmd := &cobra.Command{
		Use:               "update <slug>",
		Short:             "Update fields of an existing task",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeSlugs(anyTask),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}

			tc := flags.config(title)
			tc.Slug = args[0]
			if err := st.UpdateTask(tc); err != nil {
				return err
			}
			return st.Save()
		},
	}

	flags.register(cmd.Flags())
	cmd.Flags().StringVarP(&title, "task", "t", "", "Replace the task's title")
	// The slug is the positional argument here.
	cmd.Flags().MarkHidden("slug") //nolint:errcheck

	return cmd
}

// newTasksUpsertCmd creates the "taskroll tasks upsert" command: update the
// task if the slug exists, add it otherwise.
func newTasksUpsertCmd() *cobra.Command {
	var (
		flags taskFlags
		title string
	)

	cmd := &cobra.Command{
		Use:               "upsert <slug>",
		Short:             "Add a task, or update it if the slug already exists",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeSlugs(anyTask),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}

			tc := flags.config(title)
			tc.Slug = args[0]
			if tc.Task == "" {
				// A fresh insert still needs a title; fall back to the slug.
				tc.Task = args[0]
			}
			if err := st.UpsertTask(tc); err != nil {
				return err
			}
			return st.Save()
		},
	}

	flags.register(cmd.Flags())
	cmd.Flags().StringVarP(&title, "task", "t", "", "The task's title")
	cmd.Flags().MarkHidden("slug") //nolint:errcheck

	return cmd
}

func init() {
	tasksCmd.AddCommand(newTasksUpdateCmd())
	tasksCmd.AddCommand(newTasksUpsertCmd())
}
