package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskroll-cli/taskroll/internal/importer"
	"github.com/taskroll-cli/taskroll/internal/task"
)

// newTasksImportCmd creates the "taskroll tasks import" command.
func newTasksImportCmd() *cobra.Command {
	var update bool

	cmd := &cobra.Command{
		Use:   "import <file|glob>...",
		Short: "Import tasks from YAML or delimited files",
		Long: `Import task definitions from one or more files. YAML files hold a list
of task definitions; csv, tsv, and psv files hold one task per row with a
header naming the columns. Glob patterns (including **) are expanded.

Without --update, a task whose slug already exists is skipped with a
warning. With --update, existing tasks are field-merged instead.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tcs, err := importer.Load(args)
			if err != nil {
				return err
			}

			st, err := openStore()
			if err != nil {
				return err
			}

			added := 0
			if update {
				if err := st.UpsertTasks(tcs); err != nil {
					return err
				}
				added = len(tcs)
			} else {
				for _, tc := range tcs {
					err := st.AddTask(tc)
					var exists *task.AlreadyExistsError
					if errors.As(err, &exists) {
						fmt.Fprintf(cmd.ErrOrStderr(), "Skipping existing task %q.\n", exists.Slug)
						continue
					}
					if err != nil {
						return err
					}
					added++
				}
			}

			if err := st.Save(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Imported %d task(s).\n", added)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&update, "update", "u", false, "Field-merge tasks that already exist instead of skipping them")

	return cmd
}

func init() {
	tasksCmd.AddCommand(newTasksImportCmd())
}
