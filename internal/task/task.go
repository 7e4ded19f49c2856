// Package task defines the task domain model: the user-edited Config, the
// runtime State, the joined Task view shared between both persisted
// documents, and the eligibility rules deciding which tasks may enter
// today's draw.
package task

import "github.com/taskroll-cli/taskroll/internal/dateutil"

// DayContext supplies the effective day against which all date arithmetic
// is evaluated. It is implemented by state.Store, which memoizes the value
// for the lifetime of one invocation.
type DayContext interface {
	// TodaysDate returns the effective calendar date.
	TodaysDate() dateutil.Date
	// DaysSinceToday returns how many days before the effective date the
	// given date lies.
	DaysSinceToday(dateutil.Date) int
}

// Status is a task's presentation state relative to today's set.
type Status string

const (
	StatusDisabled   Status = "disabled"
	StatusComplete   Status = "complete"
	StatusInProgress Status = "in-progress"
	StatusInactive   Status = "inactive"
)

// Task joins a Config entry and a State entry that share a slug. Both the
// catalog and the state document reference the same underlying structs, so
// a mutation through the Task view is observed by every holder.
type Task struct {
	slug   string
	Config *Config
	State  *State
}

// Join wraps existing config and state entries into a Task view. The slug
// is materialized from the config if it has not been already.
func Join(cfg *Config, st *State) *Task {
	return &Task{slug: cfg.ResolveSlug(), Config: cfg, State: st}
}

// Slug returns the task's stable identifier.
func (t *Task) Slug() string {
	return t.slug
}

// Title returns the task's human-readable title.
func (t *Task) Title() string {
	return t.Config.Task
}

// Weight returns the task's relative selection probability.
func (t *Task) Weight() float64 {
	return t.Config.EffectiveWeight()
}

// Spoons returns the task's cost under the spoon-budget selection mode.
func (t *Task) Spoons() int {
	return t.Config.EffectiveSpoons()
}

// Complete marks the task done and bumps its completion counter.
func (t *Task) Complete() {
	t.State.Complete()
}

// Choose records that the task was picked into today's set.
func (t *Task) Choose(today dateutil.Date) {
	t.State.Choose(today)
}

// Enable lifts any suppression, mutating config and state together.
func (t *Task) Enable() {
	t.State.Enable()
	t.Config.Enable()
}

// Disable applies a suppression policy, mutating config and state together.
// An enabled (zero) policy is treated as the plain disabled variant.
func (t *Task) Disable(policy Disabled, today dateutil.Date) {
	if policy.IsEnabled() {
		policy = Disabled{Kind: KindDisabled}
	}
	t.Config.Disabled = policy
	t.State.Disable(today)
}

// DisabledNow evaluates the task's suppression policy against the effective
// day.
func (t *Task) DisabledNow(day DayContext) bool {
	return t.Config.Disabled.Active(day, t.State.DisabledOn)
}

// Choosable reports whether the task may enter today's draw. All of the
// following must hold: the task is not disabled, it is not already in
// today's set, it has completions left under max_occurrences, and its
// min_frequency gap since the last selection has elapsed.
func (t *Task) Choosable(day DayContext, todays *Set) bool {
	if t.DisabledNow(day) || todays.Contains(t.slug) {
		return false
	}
	if max := t.Config.MaxOccurrences; max > 0 && t.State.TimesCompleted >= max {
		return false
	}
	if freq := t.Config.MinFrequency; freq > 0 && !t.State.LastChosen.IsZero() {
		if day.DaysSinceToday(t.State.LastChosen) < freq {
			return false
		}
	}
	return true
}

// Status classifies the task for presentation.
func (t *Task) Status(day DayContext, todays *Set) Status {
	switch {
	case t.DisabledNow(day):
		return StatusDisabled
	case !todays.Contains(t.slug):
		return StatusInactive
	case t.State.Completed:
		return StatusComplete
	default:
		return StatusInProgress
	}
}

// Info is a read-only snapshot of a task for structured output.
type Info struct {
	Slug           string        `yaml:"-"`
	Task           string        `yaml:"task"`
	Status         Status        `yaml:"status"`
	Description    string        `yaml:"description,omitempty"`
	Weight         float64       `yaml:"weight"`
	Spoons         int           `yaml:"spoons"`
	MaxOccurrences int           `yaml:"max_occurrences,omitempty"`
	MinFrequency   int           `yaml:"min_frequency,omitempty"`
	Disabled       Disabled      `yaml:"disabled,omitempty"`
	Tags           []string      `yaml:"tags,omitempty"`
	Completed      bool          `yaml:"completed"`
	TimesCompleted int           `yaml:"times_completed"`
	LastChosen     dateutil.Date `yaml:"last_chosen,omitempty"`
}

// Info snapshots the task's config and state for rendering.
func (t *Task) Info(day DayContext, todays *Set) Info {
	return Info{
		Slug:           t.slug,
		Task:           t.Config.Task,
		Status:         t.Status(day, todays),
		Description:    t.Config.Description,
		Weight:         t.Weight(),
		Spoons:         t.Spoons(),
		MaxOccurrences: t.Config.MaxOccurrences,
		MinFrequency:   t.Config.MinFrequency,
		Disabled:       t.Config.Disabled,
		Tags:           t.Config.Tags,
		Completed:      t.State.Completed,
		TimesCompleted: t.State.TimesCompleted,
		LastChosen:     t.State.LastChosen,
	}
}
