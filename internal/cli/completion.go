package cli

import (
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taskroll-cli/taskroll/internal/state"
	"github.com/taskroll-cli/taskroll/internal/task"
)

// taskFilter selects which tasks a completion helper offers.
type taskFilter func(*task.Task, *state.Store) bool

// completeSlugs builds a cobra ValidArgsFunction offering task slugs that
// pass the filter. Load failures yield no candidates rather than an error;
// completion must never break the shell.
func completeSlugs(filter taskFilter) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		st, err := openStore()
		if err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}

		already := task.NewSet(args...)
		var candidates []candidate
		for _, t := range st.Tasks() {
			if already.Contains(t.Slug()) {
				continue
			}
			if filter != nil && !filter(t, st) {
				continue
			}
			candidates = append(candidates, candidate{slug: t.Slug(), help: t.Title()})
		}
		return rankCandidates(toComplete, candidates), cobra.ShellCompDirectiveNoFileComp
	}
}

type candidate struct {
	slug string
	help string
}

// rankCandidates orders matching slugs exact first, then prefix matches,
// then substring matches, then suffix-only matches, each group sorted.
func rankCandidates(current string, candidates []candidate) []string {
	var exact, prefix, substring, suffix []candidate
	for _, c := range candidates {
		switch {
		case c.slug == current:
			exact = append(exact, c)
		case strings.HasPrefix(c.slug, current):
			prefix = append(prefix, c)
		case strings.HasSuffix(c.slug, current):
			suffix = append(suffix, c)
		case strings.Contains(c.slug, current):
			substring = append(substring, c)
		}
	}

	var out []string
	for _, group := range [][]candidate{exact, prefix, substring, suffix} {
		sort.Slice(group, func(i, j int) bool { return group[i].slug < group[j].slug })
		for _, c := range group {
			if c.help != "" {
				out = append(out, c.slug+"\t"+c.help)
			} else {
				out = append(out, c.slug)
			}
		}
	}
	return out
}

// Filters shared by the task commands.
func anyTask(*task.Task, *state.Store) bool { return true }

func enabledTasks(t *task.Task, st *state.Store) bool {
	return !t.DisabledNow(st)
}

func disabledTasks(t *task.Task, st *state.Store) bool {
	return t.DisabledNow(st)
}

func uncompletedTasks(t *task.Task, st *state.Store) bool {
	return st.TodaysTasks().Contains(t.Slug()) && !t.State.Completed
}

func todaysTasks(t *task.Task, st *state.Store) bool {
	return st.TodaysTasks().Contains(t.Slug())
}
