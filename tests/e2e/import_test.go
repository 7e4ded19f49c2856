package e2e_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (te *testEnv) writeImportFile(name, content string) string {
	te.t.Helper()
	path := filepath.Join(te.Dir, name)
	require.NoError(te.t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestImport_YAML(t *testing.T) {
	t.Parallel()
	te := newTestEnv(t)
	file := te.writeImportFile("tasks.yaml", `
- task: Walk the dog
  weight: 2
- task: Dishes
`)

	out := te.runExpectSuccess("tasks", "import", file)
	assert.Contains(t, out, "Imported 2 task(s).")

	cfg := te.readConfig()
	assert.Contains(t, cfg, `slug = "walk-the-dog"`)
	assert.Contains(t, cfg, `slug = "dishes"`)
}

func TestImport_CSV(t *testing.T) {
	t.Parallel()
	te := newTestEnv(t)
	file := te.writeImportFile("tasks.csv", "task,weight,tags\nWalk the dog,2,outside;daily\n")

	te.runExpectSuccess("tasks", "import", file)
	cfg := te.readConfig()
	assert.Contains(t, cfg, `task = "Walk the dog"`)
	assert.Contains(t, cfg, "outside")
}

func TestImport_SkipsExistingWithoutUpdate(t *testing.T) {
	t.Parallel()
	te := newTestEnv(t)
	te.runExpectSuccess("tasks", "add", "Walk the dog", "--weight", "9")

	file := te.writeImportFile("tasks.yaml", "- task: Walk the dog\n  weight: 2\n")
	out := te.runExpectSuccess("tasks", "import", file)
	assert.Contains(t, out, "Skipping existing task")
	assert.Contains(t, out, "Imported 0 task(s).")
	assert.Contains(t, te.readConfig(), "weight = 9", "the stored definition is untouched")
}

func TestImport_UpdateMerges(t *testing.T) {
	t.Parallel()
	te := newTestEnv(t)
	te.runExpectSuccess("tasks", "add", "Walk the dog", "--weight", "9")

	file := te.writeImportFile("tasks.yaml", "- task: Walk the dog\n  weight: 2\n")
	te.runExpectSuccess("tasks", "import", "--update", file)
	assert.Contains(t, te.readConfig(), "weight = 2")
}

func TestImport_RejectsUnsupportedFile(t *testing.T) {
	t.Parallel()
	te := newTestEnv(t)
	file := te.writeImportFile("tasks.json", "[]")

	out, _ := te.runExpectFailure("tasks", "import", file)
	assert.Contains(t, out, "unsupported import file type")
}
