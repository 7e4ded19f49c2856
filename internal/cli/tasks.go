package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

// tasksCmd groups the catalog management commands.
var tasksCmd = &cobra.Command{
	Use:     "tasks",
	Aliases: []string{"task"},
	Short:   "Manage the task catalog",
}

var headerStyle = lipgloss.NewStyle().Bold(true)

// newTasksListCmd creates the "taskroll tasks list" command.
func newTasksListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all tasks in the catalog",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}

			tbl := table.New().
				Border(lipgloss.RoundedBorder()).
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == table.HeaderRow {
						return headerStyle
					}
					return lipgloss.NewStyle().Padding(0, 1)
				}).
				Headers("SLUG", "TASK", "STATUS", "WEIGHT", "TAGS")
			for _, t := range st.Tasks() {
				tbl.Row(
					t.Slug(),
					t.Title(),
					string(t.Status(st, st.TodaysTasks())),
					fmt.Sprintf("%g", t.Weight()),
					strings.Join(t.Config.Tags, ", "),
				)
			}
			fmt.Fprintln(cmd.OutOrStdout(), tbl)
			return nil
		},
	}
}

func init() {
	tasksCmd.AddCommand(newTasksListCmd())
	rootCmd.AddCommand(tasksCmd)
}
