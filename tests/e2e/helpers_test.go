package e2e_test

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

// testEnv is an isolated taskroll installation: a built binary plus config
// and state documents confined to a temp directory.
type testEnv struct {
	Dir        string
	BinaryPath string
	ConfigPath string
	StatePath  string
	t          *testing.T
}

// newTestEnv builds the taskroll binary into a fresh temp directory and
// points the config and state documents into it via environment variables,
// so nothing touches the developer's real documents.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dir := t.TempDir()
	binary := filepath.Join(dir, "taskroll")
	if runtime.GOOS == "windows" {
		binary += ".exe"
	}
	build := exec.Command("go", "build", "-o", binary, "./cmd/taskroll")
	build.Dir = projectRoot()
	out, err := build.CombinedOutput()
	require.NoError(t, err, "building taskroll: %s", string(out))

	return &testEnv{
		Dir:        dir,
		BinaryPath: binary,
		ConfigPath: filepath.Join(dir, "config.toml"),
		StatePath:  filepath.Join(dir, "state.yaml"),
		t:          t,
	}
}

// projectRoot returns the absolute path to the root of the repository. It
// uses runtime.Caller(0) to find this source file's location and navigates
// two directories up (tests/e2e/ -> tests/ -> repo root).
func projectRoot() string {
	_, thisFile, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(thisFile), "..", "..")
}

// run creates an exec.Cmd for taskroll pointed at the isolated documents.
func (te *testEnv) run(args ...string) *exec.Cmd {
	cmd := exec.Command(te.BinaryPath, args...)
	cmd.Dir = te.Dir
	cmd.Env = append(os.Environ(),
		"TASKROLL_CONFIG="+te.ConfigPath,
		"TASKROLL_STATE="+te.StatePath,
		"NO_COLOR=1",
		"TASKROLL_LOG_FORMAT=json",
	)
	return cmd
}

// runExpectSuccess runs taskroll and asserts exit code 0. Returns combined
// stdout+stderr output.
func (te *testEnv) runExpectSuccess(args ...string) string {
	te.t.Helper()
	cmd := te.run(args...)
	out, err := cmd.CombinedOutput()
	require.NoError(te.t, err, "taskroll %v failed:\n%s", args, string(out))
	return string(out)
}

// runExpectFailure runs taskroll and asserts a non-zero exit code. Returns
// combined output and the exit code.
func (te *testEnv) runExpectFailure(args ...string) (string, int) {
	te.t.Helper()
	cmd := te.run(args...)
	out, err := cmd.CombinedOutput()
	require.Error(te.t, err, "taskroll %v expected to fail but succeeded:\n%s", args, string(out))
	var exitErr *exec.ExitError
	require.True(te.t, errors.As(err, &exitErr), "expected *exec.ExitError, got %T: %v", err, err)
	return string(out), exitErr.ExitCode()
}

// writeConfig writes content to the isolated config document.
func (te *testEnv) writeConfig(content string) {
	te.t.Helper()
	require.NoError(te.t, os.WriteFile(te.ConfigPath, []byte(content), 0o644))
}

// readConfig returns the current content of the config document.
func (te *testEnv) readConfig() string {
	te.t.Helper()
	data, err := os.ReadFile(te.ConfigPath)
	require.NoError(te.t, err)
	return string(data)
}

// readState returns the current content of the state document.
func (te *testEnv) readState() string {
	te.t.Helper()
	data, err := os.ReadFile(te.StatePath)
	require.NoError(te.t, err)
	return string(data)
}
