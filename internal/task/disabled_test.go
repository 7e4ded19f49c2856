package task

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskroll-cli/taskroll/internal/dateutil"
)

// fakeDay is a DayContext pinned to a fixed effective date.
type fakeDay struct {
	today dateutil.Date
}

func (f fakeDay) TodaysDate() dateutil.Date {
	return f.today
}

func (f fakeDay) DaysSinceToday(d dateutil.Date) int {
	return f.today.DaysSince(d)
}

var testToday = dateutil.Date{Year: 2026, Month: time.August, Day: 25}

func TestDisabled_Active(t *testing.T) {
	t.Parallel()
	day := fakeDay{today: testToday}

	tests := []struct {
		name       string
		policy     Disabled
		disabledOn dateutil.Date
		want       bool
	}{
		{name: "enabled", policy: Disabled{}, want: false},
		{name: "disabled", policy: Disabled{Kind: KindDisabled}, want: true},
		{name: "until future date", policy: DisabledUntil(testToday.AddDays(3)), want: true},
		{name: "until today is inclusive", policy: DisabledUntil(testToday), want: true},
		{name: "until past date", policy: DisabledUntil(testToday.AddDays(-1)), want: false},
		{name: "for 3 days, disabled 2 days ago", policy: DisabledFor(3), disabledOn: testToday.AddDays(-2), want: true},
		{name: "for 3 days, disabled 3 days ago", policy: DisabledFor(3), disabledOn: testToday.AddDays(-3), want: false},
		{name: "for 3 days, disabled today", policy: DisabledFor(3), disabledOn: testToday, want: true},
		{name: "for without a disable stamp", policy: DisabledFor(3), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.policy.Active(day, tt.disabledOn))
		})
	}
}

func TestDisabled_TextRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text   string
		policy Disabled
	}{
		{text: "enabled", policy: Disabled{}},
		{text: "disabled", policy: Disabled{Kind: KindDisabled}},
		{text: "until:2026-09-01", policy: DisabledUntil(dateutil.Date{Year: 2026, Month: time.September, Day: 1})},
		{text: "for:3", policy: DisabledFor(3)},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()
			var parsed Disabled
			require.NoError(t, parsed.UnmarshalText([]byte(tt.text)))
			assert.Equal(t, tt.policy, parsed)
			assert.Equal(t, tt.text, parsed.String())
		})
	}
}

func TestDisabled_UnmarshalBooleans(t *testing.T) {
	t.Parallel()
	var d Disabled
	require.NoError(t, d.UnmarshalText([]byte("true")))
	assert.Equal(t, KindDisabled, d.Kind)
	require.NoError(t, d.UnmarshalText([]byte("false")))
	assert.True(t, d.IsEnabled())
}

func TestDisabled_UnmarshalRejectsGarbage(t *testing.T) {
	t.Parallel()
	var d Disabled
	assert.Error(t, d.UnmarshalText([]byte("sometimes")))
	assert.Error(t, d.UnmarshalText([]byte("until:soon")))
	assert.Error(t, d.UnmarshalText([]byte("for:-1")))
}
