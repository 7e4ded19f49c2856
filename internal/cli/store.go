package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/taskroll-cli/taskroll/internal/state"
)

// configPath resolves the config document location: --config flag, then
// TASKROLL_CONFIG, then the user config directory.
func configPath() (string, error) {
	if flagConfig != "" {
		return flagConfig, nil
	}
	if env := os.Getenv("TASKROLL_CONFIG"); env != "" {
		return env, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config directory: %w", err)
	}
	return filepath.Join(dir, "taskroll", "config.toml"), nil
}

// statePath resolves the state document location: --state flag, then
// TASKROLL_STATE, then the user cache directory.
func statePath() (string, error) {
	if flagState != "" {
		return flagState, nil
	}
	if env := os.Getenv("TASKROLL_STATE"); env != "" {
		return env, nil
	}
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("locating cache directory: %w", err)
	}
	return filepath.Join(dir, "taskroll", "state.yaml"), nil
}

// openStore loads both documents into a reconciled store.
func openStore() (*state.Store, error) {
	cfgPath, err := configPath()
	if err != nil {
		return nil, err
	}
	stPath, err := statePath()
	if err != nil {
		return nil, err
	}
	return state.Open(state.Options{ConfigPath: cfgPath, StatePath: stPath})
}
