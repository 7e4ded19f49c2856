package internal_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// projectRoot returns the absolute path to the project root directory.
// It walks up from the working directory until it finds go.mod.
func projectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err, "failed to get working directory")

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (no go.mod found in any parent directory)")
		}
		dir = parent
	}
}

// readFileContent reads a file and returns its content as a string.
func readFileContent(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err, "failed to read file: %s", path)
	return string(data)
}

func TestInternalSubpackages_Exist(t *testing.T) {
	t.Parallel()

	root := projectRoot(t)

	packages := []string{
		"buildinfo", "cli", "config", "dateutil",
		"importer", "logging", "picker", "state", "task",
	}

	for _, pkg := range packages {
		t.Run(pkg, func(t *testing.T) {
			t.Parallel()

			pkgDir := filepath.Join(root, "internal", pkg)
			info, err := os.Stat(pkgDir)
			require.NoError(t, err, "internal/%s directory does not exist", pkg)
			assert.True(t, info.IsDir(), "internal/%s is not a directory", pkg)
		})
	}
}

func TestGoMod_ModulePath(t *testing.T) {
	t.Parallel()

	root := projectRoot(t)
	content := readFileContent(t, filepath.Join(root, "go.mod"))

	assert.Contains(t, content, "module github.com/taskroll-cli/taskroll",
		"go.mod must declare module path as github.com/taskroll-cli/taskroll")
}

func TestGoMod_DirectDependencies(t *testing.T) {
	t.Parallel()

	root := projectRoot(t)
	content := readFileContent(t, filepath.Join(root, "go.mod"))

	expectedDeps := []struct {
		name       string
		modulePath string
	}{
		{name: "cobra", modulePath: "github.com/spf13/cobra"},
		{name: "toml", modulePath: "github.com/BurntSushi/toml"},
		{name: "yaml", modulePath: "gopkg.in/yaml.v3"},
		{name: "log", modulePath: "github.com/charmbracelet/log"},
		{name: "lipgloss", modulePath: "github.com/charmbracelet/lipgloss"},
		{name: "huh", modulePath: "github.com/charmbracelet/huh"},
		{name: "doublestar", modulePath: "github.com/bmatcuk/doublestar"},
		{name: "sync", modulePath: "golang.org/x/sync"},
		{name: "xxhash", modulePath: "github.com/cespare/xxhash"},
		{name: "slug", modulePath: "github.com/gosimple/slug"},
		{name: "testify", modulePath: "github.com/stretchr/testify"},
	}

	for _, dep := range expectedDeps {
		t.Run(dep.name, func(t *testing.T) {
			t.Parallel()
			assert.Contains(t, content, dep.modulePath,
				"go.mod must declare direct dependency on %s (%s)", dep.name, dep.modulePath)
		})
	}
}

func TestGoMod_NoReplaceDirectives(t *testing.T) {
	t.Parallel()

	root := projectRoot(t)
	content := readFileContent(t, filepath.Join(root, "go.mod"))

	assert.NotContains(t, content, "replace ",
		"go.mod must not contain replace directives")
}

func TestMainGo_Exists(t *testing.T) {
	t.Parallel()

	root := projectRoot(t)
	content := readFileContent(t, filepath.Join(root, "cmd", "taskroll", "main.go"))

	assert.Contains(t, content, "package main")
	assert.Contains(t, content, "func main()")
}
