package task

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/taskroll-cli/taskroll/internal/dateutil"
)

// DisabledKind enumerates the suppression policies a task can carry.
type DisabledKind int

const (
	// KindEnabled means the task is not suppressed. This is the zero value.
	KindEnabled DisabledKind = iota
	// KindDisabled means the task is suppressed indefinitely.
	KindDisabled
	// KindUntil suppresses the task through a given date (inclusive).
	KindUntil
	// KindFor suppresses the task for N days counted from the date it was
	// disabled on.
	KindFor
)

// Disabled is the tagged suppression policy for a task: enabled, disabled,
// disabled until a date, or disabled for a number of days. It serializes as
// a short string ("enabled", "disabled", "until:2026-01-02", "for:3") in
// TOML, YAML, and flag values.
type Disabled struct {
	Kind  DisabledKind
	Until dateutil.Date
	Days  int
}

// DisabledUntil returns a policy suppressing the task through date (inclusive).
func DisabledUntil(date dateutil.Date) Disabled {
	return Disabled{Kind: KindUntil, Until: date}
}

// DisabledFor returns a policy suppressing the task for days days, counted
// from the task state's disabled-on date.
func DisabledFor(days int) Disabled {
	return Disabled{Kind: KindFor, Days: days}
}

// IsEnabled reports whether the policy imposes no suppression at all.
func (d Disabled) IsEnabled() bool {
	return d.Kind == KindEnabled
}

// IsZero lets yaml.v3 honor omitempty for the enabled policy.
func (d Disabled) IsZero() bool {
	return d.IsEnabled()
}

// Active evaluates the policy against the effective day. disabledOn is the
// date the task was last disabled (zero when never disabled); it only
// matters for the "for" variant.
func (d Disabled) Active(day DayContext, disabledOn dateutil.Date) bool {
	switch d.Kind {
	case KindEnabled:
		return false
	case KindDisabled:
		return true
	case KindUntil:
		// Inclusive upper bound: the task stays disabled through Until.
		return !d.Until.Before(day.TodaysDate())
	case KindFor:
		if disabledOn.IsZero() {
			return false
		}
		return day.DaysSinceToday(disabledOn) < d.Days
	default:
		return false
	}
}

func (d Disabled) String() string {
	switch d.Kind {
	case KindDisabled:
		return "disabled"
	case KindUntil:
		return "until:" + d.Until.String()
	case KindFor:
		return "for:" + strconv.Itoa(d.Days)
	default:
		return "enabled"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (d Disabled) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Plain booleans are
// accepted as a shorthand for enabled/disabled.
func (d *Disabled) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	switch s {
	case "", "enabled", "false":
		*d = Disabled{}
		return nil
	case "disabled", "true":
		*d = Disabled{Kind: KindDisabled}
		return nil
	}
	if rest, ok := strings.CutPrefix(s, "until:"); ok {
		date, err := dateutil.ParseDate(rest)
		if err != nil {
			return fmt.Errorf("parsing disabled policy %q: %w", s, err)
		}
		*d = DisabledUntil(date)
		return nil
	}
	if rest, ok := strings.CutPrefix(s, "for:"); ok {
		days, err := strconv.Atoi(rest)
		if err != nil || days < 0 {
			return fmt.Errorf("parsing disabled policy %q: day count must be a non-negative integer", s)
		}
		*d = DisabledFor(days)
		return nil
	}
	return fmt.Errorf("unknown disabled policy %q", s)
}

// Set implements pflag.Value so a policy can be passed as a flag value.
func (d *Disabled) Set(s string) error {
	return d.UnmarshalText([]byte(s))
}

// Type implements pflag.Value.
func (d *Disabled) Type() string {
	return "policy"
}

// MarshalYAML implements yaml.Marshaler.
func (d Disabled) MarshalYAML() (any, error) {
	return d.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Disabled) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return d.UnmarshalText([]byte(s))
}
