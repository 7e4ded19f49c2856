package cli

import (
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/taskroll-cli/taskroll/internal/task"
)

// taskFlags collects the task definition flags shared by add, update, and
// upsert. Zero values are treated as "not provided" by Config.Merge.
type taskFlags struct {
	slug           string
	description    string
	weight         float64
	spoons         int
	maxOccurrences int
	minFrequency   int
	tags           []string
	disabled       task.Disabled
}

// register installs the shared definition flags on fs.
func (f *taskFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.slug, "slug", "s", "", "The task's stable identifier (derived from the title if omitted)")
	fs.StringVarP(&f.description, "description", "d", "", "A more detailed description of the task")
	fs.Float64VarP(&f.weight, "weight", "w", task.DefaultWeight, "How likely the task is to be chosen")
	fs.IntVarP(&f.spoons, "spoons", "p", task.DefaultSpoons, "How many spoons the task costs under budget mode")
	fs.IntVarP(&f.maxOccurrences, "max-occurrences", "o", 0, "Disable the task permanently after this many completions")
	fs.IntVarP(&f.minFrequency, "min-frequency", "f", 0, "Minimum number of days before the task can be chosen again")
	fs.StringArrayVar(&f.tags, "tag", nil, "A tag to associate with the task (repeatable)")
	fs.Var(&f.disabled, "disabled", `Suppression policy: "disabled", "until:<date>", or "for:<days>"`)
}

// config assembles a task.Config from the flags and an optional title.
func (f *taskFlags) config(title string) *task.Config {
	return &task.Config{
		Slug:           f.slug,
		Task:           title,
		Description:    f.description,
		Weight:         f.weight,
		Spoons:         f.spoons,
		MaxOccurrences: f.maxOccurrences,
		MinFrequency:   f.minFrequency,
		Disabled:       f.disabled,
		Tags:           f.tags,
	}
}

// newTasksAddCmd creates the "taskroll tasks add" command. With no title
// argument an interactive form collects the definition instead.
func newTasksAddCmd() *cobra.Command {
	var flags taskFlags

	cmd := &cobra.Command{
		Use:     "add [task]",
		Aliases: []string{"a", "new"},
		Short:   "Add a task to the catalog",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}

			var tc *task.Config
			if len(args) == 1 {
				tc = flags.config(args[0])
			} else {
				tc, err = promptTask()
				if err != nil {
					return err
				}
			}

			if err := st.AddTask(tc); err != nil {
				return err
			}
			return st.Save()
		},
	}

	flags.register(cmd.Flags())
	return cmd
}

// promptTask collects a task definition interactively.
func promptTask() (*task.Config, error) {
	var (
		title       string
		description string
		weightStr   = strconv.FormatFloat(task.DefaultWeight, 'g', -1, 64)
	)

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Task").
			Description("A short title for the task").
			Validate(huh.ValidateNotEmpty()).
			Value(&title),
		huh.NewText().
			Title("Description").
			Description("Optional details").
			Value(&description),
		huh.NewInput().
			Title("Weight").
			Description("Relative chance of being picked").
			Validate(func(s string) error {
				_, err := strconv.ParseFloat(s, 64)
				return err
			}).
			Value(&weightStr),
	))
	if err := form.Run(); err != nil {
		return nil, err
	}

	weight, err := strconv.ParseFloat(weightStr, 64)
	if err != nil {
		weight = task.DefaultWeight
	}
	tc, err := task.New(title)
	if err != nil {
		return nil, err
	}
	tc.Description = description
	tc.Weight = weight
	return tc, nil
}

func init() {
	tasksCmd.AddCommand(newTasksAddCmd())
}
