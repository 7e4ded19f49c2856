package cli

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/taskroll-cli/taskroll/internal/task"
)

// newTasksDetailsCmd creates the "taskroll tasks details" command, dumping
// full task snapshots as YAML keyed by slug.
func newTasksDetailsCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "details [slug]...",
		Short:             "Print full details for task(s) as YAML",
		ValidArgsFunction: completeSlugs(anyTask),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}

			slugs := args
			if len(slugs) == 0 {
				slugs = st.Slugs()
			}

			infos := make(map[string]task.Info, len(slugs))
			for _, slug := range slugs {
				t, ok := st.Task(slug)
				if !ok {
					return &task.NotFoundError{Slug: slug}
				}
				infos[slug] = t.Info(st, st.TodaysTasks())
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			defer enc.Close() //nolint:errcheck
			return enc.Encode(infos)
		},
	}
}

func init() {
	tasksCmd.AddCommand(newTasksDetailsCmd())
}
