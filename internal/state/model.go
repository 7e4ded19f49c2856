// Package state owns the persisted state document and the Store, the
// reconciled runtime view that joins the config catalog and the state map
// by slug for the duration of one invocation.
package state

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/taskroll-cli/taskroll/internal/config"
	"github.com/taskroll-cli/taskroll/internal/logging"
	"github.com/taskroll-cli/taskroll/internal/task"
)

var logger = logging.New("state")

// Model mirrors the on-disk layout of the state document.
type Model struct {
	LastGenerated time.Time              `yaml:"last_generated"`
	Tasks         map[string]*task.State `yaml:"tasks"`
	TodaysTasks   *task.Set              `yaml:"todays_tasks"`
}

// DefaultModel returns a first-run state document. LastGenerated is set a
// day in the past so the first pick cycle treats the empty set as stale.
func DefaultModel(now time.Time) *Model {
	return &Model{
		LastGenerated: now.Add(-24 * time.Hour),
		Tasks:         make(map[string]*task.State),
		TodaysTasks:   task.NewSet(),
	}
}

// LoadModel reads the state document at path. A missing file is not an
// error: defaults are synthesized, persisted, and returned.
func LoadModel(path string, now time.Time) (*Model, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Debug("no state document, writing defaults", "path", path)
		m := DefaultModel(now)
		if err := m.Save(path); err != nil {
			return nil, err
		}
		return m, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading state %s: %w", path, err)
	}

	var m Model
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("loading state %s: %w", path, err)
	}
	if m.Tasks == nil {
		m.Tasks = make(map[string]*task.State)
	}
	if m.TodaysTasks == nil {
		m.TodaysTasks = task.NewSet()
	}
	return &m, nil
}

// Encode renders the document as YAML.
func (m *Model) Encode() ([]byte, error) {
	data, err := yaml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encoding state: %w", err)
	}
	return data, nil
}

// Save writes the document to path atomically.
func (m *Model) Save(path string) error {
	data, err := m.Encode()
	if err != nil {
		return err
	}
	return config.WriteAtomic(path, data)
}
