package state

import (
	"sort"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/taskroll-cli/taskroll/internal/config"
	"github.com/taskroll-cli/taskroll/internal/dateutil"
	"github.com/taskroll-cli/taskroll/internal/task"
)

// Store joins the config document and the state document into one runtime
// view. Each live task holds pointers into both documents, so mutating a
// task through the Store is observed by both on the next Save.
//
// The effective day is computed once when the Store is opened and never
// changes for the lifetime of the process, even if wall-clock time crosses
// the cut-off mid-run.
type Store struct {
	configPath string
	statePath  string

	config *config.Config
	model  *Model
	tasks  map[string]*task.Task

	orphans []string
	today   dateutil.Date
	now     func() time.Time

	// Document content hashes taken at load, used to skip rewriting a
	// document that has not changed.
	configSum uint64
	stateSum  uint64
}

// Options configures Open. Now is the clock used for the effective day and
// generation stamps; nil means time.Now.
type Options struct {
	ConfigPath string
	StatePath  string
	Now        func() time.Time
}

// Open loads both documents (synthesizing defaults on first run), joins
// state entries against the catalog by slug, and memoizes the effective
// day. State entries with no catalog entry are recorded as orphans,
// excluded from the live map, and reported through the logger; they are
// never fatal.
func Open(opts Options) (*Store, error) {
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	model, err := LoadModel(opts.StatePath, now())
	if err != nil {
		return nil, err
	}

	s := &Store{
		configPath: opts.ConfigPath,
		statePath:  opts.StatePath,
		config:     cfg,
		model:      model,
		tasks:      make(map[string]*task.Task, len(cfg.Tasks)),
		now:        now,
		today:      dateutil.EffectiveDate(now(), cfg.CutOff),
	}

	// Join: the catalog is authoritative. Tasks with no state entry get a
	// freshly defaulted one; state entries with no catalog entry are orphans.
	for _, tc := range cfg.Tasks {
		slug := tc.ResolveSlug()
		st, ok := model.Tasks[slug]
		if !ok {
			st = &task.State{}
			model.Tasks[slug] = st
		}
		s.tasks[slug] = task.Join(tc, st)
	}
	for slug := range model.Tasks {
		if _, ok := s.tasks[slug]; !ok {
			s.orphans = append(s.orphans, slug)
		}
	}
	sort.Strings(s.orphans)
	for _, slug := range s.orphans {
		logger.Warn("state entry has no matching task", "slug", slug)
	}

	s.configSum, s.stateSum = s.checksums()
	return s, nil
}

// checksums hashes both encoded documents. Encoding failures surface later
// in Save; here they just force a rewrite.
func (s *Store) checksums() (configSum, stateSum uint64) {
	if data, err := s.config.Encode(); err == nil {
		configSum = xxhash.Sum64(data)
	}
	if data, err := s.model.Encode(); err == nil {
		stateSum = xxhash.Sum64(data)
	}
	return configSum, stateSum
}

// Save persists both documents, state first. A document whose encoded
// content matches the load-time hash is skipped. If the state write
// succeeds and the config write fails the operation is incomplete; no
// rollback is attempted and the caller should retry.
func (s *Store) Save() error {
	stateData, err := s.model.Encode()
	if err != nil {
		return err
	}
	if sum := xxhash.Sum64(stateData); sum != s.stateSum {
		if err := config.WriteAtomic(s.statePath, stateData); err != nil {
			return err
		}
		s.stateSum = sum
	}

	configData, err := s.config.Encode()
	if err != nil {
		return err
	}
	if sum := xxhash.Sum64(configData); sum != s.configSum {
		if err := config.WriteAtomic(s.configPath, configData); err != nil {
			return err
		}
		s.configSum = sum
	}
	return nil
}

// Config exposes the underlying config document.
func (s *Store) Config() *config.Config {
	return s.config
}

// Orphans returns the slugs of state entries that had no catalog entry at
// load time, sorted.
func (s *Store) Orphans() []string {
	return s.orphans
}

// Task returns the live task for slug.
func (s *Store) Task(slug string) (*task.Task, bool) {
	t, ok := s.tasks[slug]
	return t, ok
}

// Slugs returns all catalog slugs in lexicographic order.
func (s *Store) Slugs() []string {
	slugs := make([]string, 0, len(s.tasks))
	for slug := range s.tasks {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)
	return slugs
}

// Tasks returns all live tasks ordered by slug.
func (s *Store) Tasks() []*task.Task {
	tasks := make([]*task.Task, 0, len(s.tasks))
	for _, slug := range s.Slugs() {
		tasks = append(tasks, s.tasks[slug])
	}
	return tasks
}

// AddTask registers a new task in the catalog, the state map, and the live
// map. The state entry starts from defaults, replacing any orphaned entry
// left under the same slug.
func (s *Store) AddTask(tc *task.Config) error {
	if err := tc.Validate(); err != nil {
		return err
	}
	slug := tc.ResolveSlug()
	if _, ok := s.tasks[slug]; ok {
		return &task.AlreadyExistsError{Slug: slug}
	}
	if err := s.config.Add(tc); err != nil {
		return err
	}
	st := &task.State{}
	s.model.Tasks[slug] = st
	s.tasks[slug] = task.Join(tc, st)
	return nil
}

// AddTasks adds each config in order, failing fast on the first error.
func (s *Store) AddTasks(tcs []*task.Config) error {
	for _, tc := range tcs {
		if err := s.AddTask(tc); err != nil {
			return err
		}
	}
	return nil
}

// UpdateTask field-merges tc into the existing catalog entry with the same
// slug. The slug itself is never altered.
func (s *Store) UpdateTask(tc *task.Config) error {
	slug := tc.ResolveSlug()
	t, ok := s.tasks[slug]
	if !ok {
		return &task.NotFoundError{Slug: slug}
	}
	t.Config.Merge(*tc)
	return nil
}

// UpdateTasks merges each config in order, failing fast on the first miss.
func (s *Store) UpdateTasks(tcs []*task.Config) error {
	for _, tc := range tcs {
		if err := s.UpdateTask(tc); err != nil {
			return err
		}
	}
	return nil
}

// UpsertTask updates the task if it exists and adds it otherwise. Given the
// existence check the delegated calls cannot miss, so UpsertTask never
// fails for a valid config.
func (s *Store) UpsertTask(tc *task.Config) error {
	if err := tc.Validate(); err != nil {
		return err
	}
	if _, ok := s.tasks[tc.ResolveSlug()]; ok {
		return s.UpdateTask(tc)
	}
	return s.AddTask(tc)
}

// UpsertTasks upserts each config in order.
func (s *Store) UpsertTasks(tcs []*task.Config) error {
	for _, tc := range tcs {
		if err := s.UpsertTask(tc); err != nil {
			return err
		}
	}
	return nil
}

// RemoveTask purges the task from the catalog, the state map, today's set,
// and the live map. Orphaned entries never accumulate from removals.
func (s *Store) RemoveTask(slug string) error {
	if _, ok := s.tasks[slug]; !ok {
		return &task.NotFoundError{Slug: slug}
	}
	s.config.Remove(slug)
	delete(s.model.Tasks, slug)
	s.model.TodaysTasks.Remove(slug)
	delete(s.tasks, slug)
	return nil
}

// RemoveTasks removes each slug in order, failing fast on the first miss.
// Earlier removals stay applied in memory; nothing is persisted until Save.
func (s *Store) RemoveTasks(slugs []string) error {
	for _, slug := range slugs {
		if err := s.RemoveTask(slug); err != nil {
			return err
		}
	}
	return nil
}

// EnableTask lifts suppression on the task, mutating config and state
// together.
func (s *Store) EnableTask(slug string) error {
	t, ok := s.tasks[slug]
	if !ok {
		return &task.NotFoundError{Slug: slug}
	}
	t.Enable()
	return nil
}

// EnableTasks enables each slug in order, failing fast on the first miss.
func (s *Store) EnableTasks(slugs []string) error {
	for _, slug := range slugs {
		if err := s.EnableTask(slug); err != nil {
			return err
		}
	}
	return nil
}

// DisableTask applies the suppression policy to the task, stamping the
// state's disabled-on date with the effective day.
func (s *Store) DisableTask(slug string, policy task.Disabled) error {
	t, ok := s.tasks[slug]
	if !ok {
		return &task.NotFoundError{Slug: slug}
	}
	t.Disable(policy, s.today)
	return nil
}

// DisableTasks disables each slug in order, failing fast on the first miss.
func (s *Store) DisableTasks(slugs []string, policy task.Disabled) error {
	for _, slug := range slugs {
		if err := s.DisableTask(slug, policy); err != nil {
			return err
		}
	}
	return nil
}

// CompleteTask marks the task done.
func (s *Store) CompleteTask(slug string) error {
	t, ok := s.tasks[slug]
	if !ok {
		return &task.NotFoundError{Slug: slug}
	}
	t.Complete()
	return nil
}

// CompleteTasks completes each slug in order, failing fast on the first miss.
func (s *Store) CompleteTasks(slugs []string) error {
	for _, slug := range slugs {
		if err := s.CompleteTask(slug); err != nil {
			return err
		}
	}
	return nil
}

// TodaysDate returns the memoized effective day.
func (s *Store) TodaysDate() dateutil.Date {
	return s.today
}

// DaysSinceToday returns how many days before the effective day date lies.
func (s *Store) DaysSinceToday(date dateutil.Date) int {
	return s.today.DaysSince(date)
}

// TodaysTasks returns the set of slugs active today.
func (s *Store) TodaysTasks() *task.Set {
	return s.model.TodaysTasks
}

// ResolveToday returns the live tasks for today's set, ordered by slug.
// Slugs that resolve to no task yield a NotFoundError.
func (s *Store) ResolveToday() ([]*task.Task, error) {
	slugs := s.model.TodaysTasks.Slugs()
	tasks := make([]*task.Task, 0, len(slugs))
	for _, slug := range slugs {
		t, ok := s.tasks[slug]
		if !ok {
			return nil, &task.NotFoundError{Slug: slug}
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// LastGenerated returns the timestamp of the most recent pick cycle.
func (s *Store) LastGenerated() time.Time {
	return s.model.LastGenerated
}

// LastGeneratedDate returns the effective day the last pick cycle ran on,
// with the configured cut-off taken into account.
func (s *Store) LastGeneratedDate() dateutil.Date {
	return dateutil.EffectiveDate(s.model.LastGenerated, s.config.CutOff)
}

// MarkGenerated stamps the current wall-clock time as the last pick cycle.
func (s *Store) MarkGenerated() {
	s.model.LastGenerated = s.now()
}
