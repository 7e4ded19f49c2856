package task

import "github.com/taskroll-cli/taskroll/internal/dateutil"

// State is the mutable, runtime-derived half of a task, persisted in the
// state document and keyed by the same slug as its Config. The zero value
// is the state of a freshly added task.
type State struct {
	Completed      bool          `yaml:"completed"`
	TimesCompleted int           `yaml:"times_completed"`
	LastChosen     dateutil.Date `yaml:"last_chosen,omitempty"`
	DisabledOn     dateutil.Date `yaml:"disabled_on,omitempty"`
}

// Complete marks the task done and bumps the completion counter. Each call
// increments the counter; invoking it once per logical completion event is
// the caller's responsibility.
func (s *State) Complete() {
	s.Completed = true
	s.TimesCompleted++
}

// Reset clears the completion flag. Called when the task is freshly picked
// into today's set.
func (s *State) Reset() {
	s.Completed = false
}

// Choose records a selection on the given effective day: the completion
// flag is reset and the last-chosen date stamped.
func (s *State) Choose(today dateutil.Date) {
	s.Reset()
	s.LastChosen = today
}

// Enable clears the disabled-on stamp.
func (s *State) Enable() {
	s.DisabledOn = dateutil.Date{}
}

// Disable records the effective day the task was disabled on, which anchors
// the "for N days" suppression policy.
func (s *State) Disable(today dateutil.Date) {
	s.DisabledOn = today
}
