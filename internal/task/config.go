package task

import (
	goslug "github.com/gosimple/slug"
)

const (
	// DefaultWeight is the relative selection probability assigned to tasks
	// that do not configure one.
	DefaultWeight = 1.0

	// DefaultSpoons is the per-task cost assumed under the spoon-budget
	// selection mode when a task does not configure one.
	DefaultSpoons = 3
)

// Config is a task's identity and configured behavior as the user edits it
// in the config document. The zero value is not valid; use New or fill the
// struct and call Validate.
type Config struct {
	// Slug is the task's stable identifier. Left empty, it is derived from
	// Task on first resolution and then never changes again, even if the
	// title is later edited.
	Slug           string   `toml:"slug,omitempty" yaml:"slug,omitempty" csv:"slug"`
	Task           string   `toml:"task" yaml:"task" csv:"task"`
	Description    string   `toml:"description,omitempty" yaml:"description,omitempty" csv:"description"`
	Weight         float64  `toml:"weight" yaml:"weight" csv:"weight"`
	Spoons         int      `toml:"spoons,omitempty" yaml:"spoons,omitempty" csv:"spoons"`
	MaxOccurrences int      `toml:"max_occurrences,omitempty" yaml:"max_occurrences,omitempty" csv:"max_occurrences"`
	MinFrequency   int      `toml:"min_frequency,omitempty" yaml:"min_frequency,omitempty" csv:"min_frequency"`
	Disabled       Disabled `toml:"disabled,omitempty" yaml:"disabled,omitempty" csv:"disabled"`
	Tags           []string `toml:"tags,omitempty" yaml:"tags,omitempty" csv:"tags"`
}

// New creates a Config for the given title with all defaults applied.
func New(title string) (*Config, error) {
	cfg := &Config{Task: title, Weight: DefaultWeight, Spoons: DefaultSpoons}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the definition before it enters the catalog. A task needs
// a non-empty title unless an explicit slug was provided, and a slug must be
// derivable from whatever identity is present.
func (c *Config) Validate() error {
	if c.Task == "" && c.Slug == "" {
		return &ValidationError{Reason: "a task needs a title"}
	}
	if c.ResolveSlug() == "" {
		return &ValidationError{Reason: "no slug could be derived from title " + c.Task}
	}
	if c.Weight < 0 {
		return &ValidationError{Reason: "weight must not be negative"}
	}
	return nil
}

// ResolveSlug returns the task's slug, deriving and caching it from the
// title on first use. Once materialized the slug is immutable.
func (c *Config) ResolveSlug() string {
	if c.Slug == "" {
		c.Slug = goslug.Make(c.Task)
	}
	return c.Slug
}

// Enable switches the suppression policy to the plain enabled variant.
func (c *Config) Enable() {
	c.Disabled = Disabled{}
}

// Disable switches the suppression policy to the plain disabled variant.
func (c *Config) Disable() {
	c.Disabled = Disabled{Kind: KindDisabled}
}

// Merge overlays other onto c field by field. Values that other leaves at
// their defaults keep c's setting; tags are unioned preserving order; the
// slug is never altered.
func (c *Config) Merge(other Config) {
	if other.Task != "" {
		c.Task = other.Task
	}
	if other.Description != "" {
		c.Description = other.Description
	}
	if other.Weight != DefaultWeight && other.Weight != 0 {
		c.Weight = other.Weight
	}
	if other.Spoons != 0 && other.Spoons != DefaultSpoons {
		c.Spoons = other.Spoons
	}
	if other.MaxOccurrences != 0 {
		c.MaxOccurrences = other.MaxOccurrences
	}
	if other.MinFrequency != 0 {
		c.MinFrequency = other.MinFrequency
	}
	if !other.Disabled.IsEnabled() {
		c.Disabled = other.Disabled
	}
	for _, tag := range other.Tags {
		if !contains(c.Tags, tag) {
			c.Tags = append(c.Tags, tag)
		}
	}
}

// EffectiveWeight returns the configured weight, or DefaultWeight when the
// field was omitted from the document.
func (c *Config) EffectiveWeight() float64 {
	if c.Weight == 0 {
		return DefaultWeight
	}
	return c.Weight
}

// EffectiveSpoons returns the configured spoon cost, or DefaultSpoons when
// the field was omitted from the document.
func (c *Config) EffectiveSpoons() int {
	if c.Spoons == 0 {
		return DefaultSpoons
	}
	return c.Spoons
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
