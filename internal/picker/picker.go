// Package picker implements the daily draw: deciding how many tasks are
// still needed today, filtering the catalog to choosable tasks, and
// sampling without replacement proportionally to weight.
package picker

import (
	"math/rand/v2"
	"time"

	"github.com/taskroll-cli/taskroll/internal/config"
	"github.com/taskroll-cli/taskroll/internal/logging"
	"github.com/taskroll-cli/taskroll/internal/state"
	"github.com/taskroll-cli/taskroll/internal/task"
)

var logger = logging.New("picker")

// Result reports what a pick cycle changed.
type Result struct {
	// Cleared is true when stale selections from a prior day were discarded.
	Cleared bool
	// Picked lists the slugs newly drawn into today's set, in draw order.
	Picked []string
}

// Changed reports whether the cycle mutated state at all; callers use this
// to decide whether to persist.
func (r Result) Changed() bool {
	return r.Cleared || len(r.Picked) > 0
}

// Picker draws tasks using an injectable random source so tests can run
// with a fixed seed.
type Picker struct {
	rng *rand.Rand
}

// New returns a Picker backed by src. A nil src seeds a PCG generator from
// the current time.
func New(src rand.Source) *Picker {
	if src == nil {
		now := time.Now()
		src = rand.NewPCG(uint64(now.UnixNano()), uint64(now.UnixNano()>>32))
	}
	return &Picker{rng: rand.New(src)}
}

// PickToday runs one pick cycle against the store. Running it twice within
// the same effective day with no intervening state change is a no-op the
// second time. Drawing fewer tasks than needed is a partial fill, not an
// error.
func (p *Picker) PickToday(st *state.Store) Result {
	var res Result

	// Day rollover: selections from a prior effective day are stale and are
	// discarded unconditionally, completed or not.
	if st.TodaysDate().After(st.LastGeneratedDate()) && st.TodaysTasks().Len() > 0 {
		logger.Debug("day rolled over, clearing today's tasks",
			"today", st.TodaysDate().String(),
			"last_generated", st.LastGeneratedDate().String())
		st.TodaysTasks().Clear()
		res.Cleared = true
	}

	var picked []*task.Task
	switch st.Config().Mode {
	case config.ModeSpoons:
		picked = p.pickBudget(st)
	default:
		picked = p.pickCount(st)
	}

	for _, t := range picked {
		t.Choose(st.TodaysDate())
		st.TodaysTasks().Add(t.Slug())
		res.Picked = append(res.Picked, t.Slug())
	}

	if res.Changed() {
		st.MarkGenerated()
	}
	return res
}

// pickCount draws until today's set holds the configured daily task count.
func (p *Picker) pickCount(st *state.Store) []*task.Task {
	needed := st.Config().DailyTasks - st.TodaysTasks().Len()
	if needed <= 0 {
		return nil
	}
	return p.draw(choosable(st), needed)
}

// pickBudget draws one task at a time until the daily spoon budget is
// exhausted or no remaining choosable task fits in it. The draw mechanism
// is shared with count mode; only the stopping condition differs.
func (p *Picker) pickBudget(st *state.Store) []*task.Task {
	remaining := st.Config().DailySpoons
	for _, slug := range st.TodaysTasks().Slugs() {
		if t, ok := st.Task(slug); ok {
			remaining -= t.Spoons()
		}
	}

	pool := choosable(st)
	var picked []*task.Task
	for remaining > 0 {
		fitting := pool[:0:0]
		for _, t := range pool {
			if t.Spoons() <= remaining {
				fitting = append(fitting, t)
			}
		}
		one := p.draw(fitting, 1)
		if len(one) == 0 {
			break
		}
		t := one[0]
		picked = append(picked, t)
		remaining -= t.Spoons()
		pool = without(pool, t)
	}
	return picked
}

// choosable filters the catalog to tasks eligible for today's draw, in
// slug order so seeded draws are reproducible.
func choosable(st *state.Store) []*task.Task {
	var out []*task.Task
	for _, t := range st.Tasks() {
		if t.Choosable(st, st.TodaysTasks()) {
			out = append(out, t)
		}
	}
	return out
}

// draw samples up to n tasks from pool without replacement, proportionally
// to weight, by sequential renormalization: each round one task is drawn
// with probability weight over the sum of the remaining positive weights
// and removed from the pool. Tasks with non-positive weight are only ever
// drawn when no positive-weight task remains and the quota is still unmet,
// in which case they are drawn uniformly.
func (p *Picker) draw(pool []*task.Task, n int) []*task.Task {
	pool = append([]*task.Task(nil), pool...)
	var picked []*task.Task

	for len(picked) < n && len(pool) > 0 {
		total := 0.0
		for _, t := range pool {
			if w := t.Weight(); w > 0 {
				total += w
			}
		}

		var idx int
		if total <= 0 {
			// Only non-positive weights left: fill the quota uniformly.
			idx = p.rng.IntN(len(pool))
		} else {
			r := p.rng.Float64() * total
			idx = -1
			for i, t := range pool {
				w := t.Weight()
				if w <= 0 {
					continue
				}
				r -= w
				idx = i
				if r < 0 {
					break
				}
			}
		}

		picked = append(picked, pool[idx])
		pool = append(pool[:idx], pool[idx+1:]...)
	}
	return picked
}

func without(pool []*task.Task, drop *task.Task) []*task.Task {
	out := pool[:0:0]
	for _, t := range pool {
		if t != drop {
			out = append(out, t)
		}
	}
	return out
}
