package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankCandidates_Ordering(t *testing.T) {
	t.Parallel()
	candidates := []candidate{
		{slug: "dog-walk"},
		{slug: "walk"},
		{slug: "walk-the-dog"},
		{slug: "sidewalk-sweep"},
		{slug: "walk-home"},
		{slug: "dishes"},
	}

	got := rankCandidates("walk", candidates)
	assert.Equal(t, []string{
		"walk",           // exact
		"walk-home",      // prefix, sorted
		"walk-the-dog",   // prefix, sorted
		"sidewalk-sweep", // substring
		"dog-walk",       // suffix
	}, got)
}

func TestRankCandidates_EmptyInputMatchesAll(t *testing.T) {
	t.Parallel()
	candidates := []candidate{{slug: "b"}, {slug: "a"}}
	assert.Equal(t, []string{"a", "b"}, rankCandidates("", candidates))
}

func TestRankCandidates_HelpText(t *testing.T) {
	t.Parallel()
	candidates := []candidate{{slug: "walk-the-dog", help: "Walk the dog"}}
	assert.Equal(t, []string{"walk-the-dog\tWalk the dog"}, rankCandidates("walk", candidates))
}

func TestRankCandidates_NoMatches(t *testing.T) {
	t.Parallel()
	candidates := []candidate{{slug: "dishes"}}
	assert.Empty(t, rankCandidates("walk", candidates))
}
