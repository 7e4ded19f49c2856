package cli

import (
	"fmt"
	"strings"

	"github.com/gen2brain/beeep"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/taskroll-cli/taskroll/internal/picker"
	"github.com/taskroll-cli/taskroll/internal/task"
)

// todayCmd groups the commands operating on today's task set.
var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Manage today's task set",
}

// todayItem is the per-task YAML output for "today get".
type todayItem struct {
	Task        string      `yaml:"task"`
	Status      task.Status `yaml:"status"`
	Description string      `yaml:"description,omitempty"`
}

// newTodayGetCmd creates the "taskroll today get" command: run a pick
// cycle, persist any changes, and print today's tasks.
func newTodayGetCmd() *cobra.Command {
	var notify bool

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Show today's tasks, drawing new ones if needed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}

			res := picker.New(nil).PickToday(st)
			if res.Changed() {
				if err := st.Save(); err != nil {
					return err
				}
			}

			tasks, err := st.ResolveToday()
			if err != nil {
				return err
			}

			items := make(map[string]todayItem, len(tasks))
			var titles []string
			for _, t := range tasks {
				items[t.Slug()] = todayItem{
					Task:        t.Title(),
					Status:      t.Status(st, st.TodaysTasks()),
					Description: t.Config.Description,
				}
				titles = append(titles, t.Title())
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			defer enc.Close() //nolint:errcheck
			if err := enc.Encode(items); err != nil {
				return err
			}

			if notify && len(titles) > 0 {
				if err := beeep.Notify("taskroll", strings.Join(titles, "\n"), ""); err != nil {
					logger.Warn("desktop notification failed", "error", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&notify, "notify", "n", false, "Send a desktop notification with today's tasks")

	return cmd
}

// newTodayRefreshCmd creates the "taskroll today refresh" command: drop the
// named tasks (or all of them) from today's set and draw replacements.
func newTodayRefreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "refresh [slug]...",
		Short:             "Re-roll some or all of today's tasks",
		ValidArgsFunction: completeSlugs(todaysTasks),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}

			drop := args
			if len(drop) == 0 {
				drop = st.TodaysTasks().Slugs()
			}
			for _, slug := range drop {
				if !st.TodaysTasks().Contains(slug) {
					return &task.NotFoundError{Slug: slug}
				}
				st.TodaysTasks().Remove(slug)
			}

			res := picker.New(nil).PickToday(st)
			for _, slug := range res.Picked {
				fmt.Fprintln(cmd.ErrOrStderr(), "Drew", slug)
			}
			return st.Save()
		},
	}
}

// newTodayResetCmd creates the "taskroll today reset" command: clear
// today's set without drawing replacements.
func newTodayResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Clear today's task set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}
			st.TodaysTasks().Clear()
			return st.Save()
		},
	}
}

func init() {
	todayCmd.AddCommand(newTodayGetCmd())
	todayCmd.AddCommand(newTodayRefreshCmd())
	todayCmd.AddCommand(newTodayResetCmd())
	rootCmd.AddCommand(todayCmd)
}
