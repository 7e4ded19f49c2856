// Package config owns the user-edited configuration document: the task
// catalog plus the daily selection policy. The document is TOML on disk and
// is synthesized with defaults on first run.
package config

import (
	"fmt"

	"github.com/taskroll-cli/taskroll/internal/dateutil"
	"github.com/taskroll-cli/taskroll/internal/task"
)

// Mode selects how the picker decides when to stop drawing.
type Mode string

const (
	// ModeCount draws until a fixed number of tasks is active for the day.
	ModeCount Mode = "count"
	// ModeSpoons draws until the daily spoon budget is exhausted.
	ModeSpoons Mode = "spoons"
)

// Defaults for a first-run config document.
const (
	DefaultDailyTasks  = 1
	DefaultDailySpoons = 10
)

// DefaultCutOff is 04:00: anything done before four in the morning counts
// toward the previous day.
var DefaultCutOff = dateutil.Clock{Hour: 4}

// Config is the top-level structure of the config document.
type Config struct {
	Mode        Mode           `toml:"mode"`
	DailyTasks  int            `toml:"daily_tasks"`
	DailySpoons int            `toml:"daily_spoons"`
	CutOff      dateutil.Clock `toml:"cut_off"`
	Tasks       []*task.Config `toml:"tasks"`
}

// Default returns a Config populated with first-run defaults and an empty
// catalog.
func Default() *Config {
	return &Config{
		Mode:        ModeCount,
		DailyTasks:  DefaultDailyTasks,
		DailySpoons: DefaultDailySpoons,
		CutOff:      DefaultCutOff,
	}
}

// Validate checks document-level invariants after a load: the selection
// mode must be known, counts non-negative, every task definition valid, and
// slugs unique across the catalog.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeCount, ModeSpoons:
	case "":
		c.Mode = ModeCount
	default:
		return fmt.Errorf("unknown selection mode %q", c.Mode)
	}
	if c.DailyTasks < 0 {
		return fmt.Errorf("daily_tasks must not be negative")
	}
	if c.DailySpoons < 0 {
		return fmt.Errorf("daily_spoons must not be negative")
	}
	seen := make(map[string]bool, len(c.Tasks))
	for _, t := range c.Tasks {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("task %q: %w", t.Task, err)
		}
		slug := t.ResolveSlug()
		if seen[slug] {
			return fmt.Errorf("duplicate task slug %q in catalog", slug)
		}
		seen[slug] = true
	}
	return nil
}

// Get returns the catalog entry for slug, or nil if absent.
func (c *Config) Get(slug string) *task.Config {
	for _, t := range c.Tasks {
		if t.ResolveSlug() == slug {
			return t
		}
	}
	return nil
}

// Add appends a task to the catalog. The caller is responsible for
// duplicate detection; Add rejects only direct slug collisions.
func (c *Config) Add(t *task.Config) error {
	slug := t.ResolveSlug()
	if c.Get(slug) != nil {
		return &task.AlreadyExistsError{Slug: slug}
	}
	c.Tasks = append(c.Tasks, t)
	return nil
}

// Remove deletes the catalog entry for slug, reporting whether one existed.
func (c *Config) Remove(slug string) bool {
	for i, t := range c.Tasks {
		if t.ResolveSlug() == slug {
			c.Tasks = append(c.Tasks[:i], c.Tasks[i+1:]...)
			return true
		}
	}
	return false
}
