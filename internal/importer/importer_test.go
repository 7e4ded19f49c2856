package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskroll-cli/taskroll/internal/task"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_YAML(t *testing.T) {
	t.Parallel()
	path := writeFile(t, t.TempDir(), "tasks.yaml", `
- task: Walk the dog
  weight: 2
  tags: [outside, daily]
- task: Dishes
  spoons: 2
  disabled: for:3
`)

	tcs, err := Load([]string{path})
	require.NoError(t, err)
	require.Len(t, tcs, 2)

	assert.Equal(t, "walk-the-dog", tcs[0].ResolveSlug())
	assert.Equal(t, 2.0, tcs[0].Weight)
	assert.Equal(t, []string{"outside", "daily"}, tcs[0].Tags)

	assert.Equal(t, "dishes", tcs[1].ResolveSlug())
	assert.Equal(t, 2, tcs[1].Spoons)
	assert.Equal(t, task.DisabledFor(3), tcs[1].Disabled)
}

func TestLoad_CSV(t *testing.T) {
	t.Parallel()
	path := writeFile(t, t.TempDir(), "tasks.csv",
		"task,weight,spoons,tags,disabled\n"+
			"Walk the dog,2.5,4,outside;daily,\n"+
			"Dishes,,,,disabled\n")

	tcs, err := Load([]string{path})
	require.NoError(t, err)
	require.Len(t, tcs, 2)

	assert.Equal(t, 2.5, tcs[0].Weight)
	assert.Equal(t, 4, tcs[0].Spoons)
	assert.Equal(t, []string{"outside", "daily"}, tcs[0].Tags)

	assert.Equal(t, task.DefaultWeight, tcs[1].Weight, "empty cells keep defaults")
	assert.Equal(t, task.DefaultSpoons, tcs[1].Spoons)
	assert.Equal(t, task.KindDisabled, tcs[1].Disabled.Kind)
}

func TestLoad_TSVAndPSV(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	tsv := writeFile(t, dir, "tasks.tsv", "title\tweight\nWalk the dog\t3\n")
	psv := writeFile(t, dir, "tasks.psv", "task|description\nDishes|after dinner\n")

	tcs, err := Load([]string{tsv, psv})
	require.NoError(t, err)
	require.Len(t, tcs, 2)
	assert.Equal(t, "Walk the dog", tcs[0].Task, "title is an alias for task")
	assert.Equal(t, 3.0, tcs[0].Weight)
	assert.Equal(t, "after dinner", tcs[1].Description)
}

func TestLoad_CSVUnknownColumnIgnored(t *testing.T) {
	t.Parallel()
	path := writeFile(t, t.TempDir(), "tasks.csv", "task,mood\nWalk the dog,chipper\n")
	tcs, err := Load([]string{path})
	require.NoError(t, err)
	require.Len(t, tcs, 1)
	assert.Equal(t, "Walk the dog", tcs[0].Task)
}

func TestLoad_CSVBadWeight(t *testing.T) {
	t.Parallel()
	path := writeFile(t, t.TempDir(), "tasks.csv", "task,weight\nWalk the dog,heavy\n")
	_, err := Load([]string{path})
	assert.ErrorContains(t, err, "invalid weight")
	assert.ErrorContains(t, err, "row 2")
}

func TestLoad_Glob(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFile(t, dir, "a.yaml", "- task: Alpha\n")
	writeFile(t, dir, "b.yaml", "- task: Beta\n")
	writeFile(t, dir, "notes.txt", "not an import file\n")

	tcs, err := Load([]string{filepath.Join(dir, "*.yaml")})
	require.NoError(t, err)
	assert.Len(t, tcs, 2)
}

func TestLoad_GlobMatchesNothing(t *testing.T) {
	t.Parallel()
	_, err := Load([]string{filepath.Join(t.TempDir(), "*.yaml")})
	var verr *task.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestLoad_NoPatterns(t *testing.T) {
	t.Parallel()
	_, err := Load(nil)
	var verr *task.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	t.Parallel()
	path := writeFile(t, t.TempDir(), "tasks.json", "[]")
	_, err := Load([]string{path})
	var verr *task.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Reason, ".json")
}

func TestLoad_MissingLiteralFile(t *testing.T) {
	t.Parallel()
	_, err := Load([]string{filepath.Join(t.TempDir(), "missing.yaml")})
	assert.ErrorContains(t, err, "reading import file")
}

func TestLoad_InvalidDefinition(t *testing.T) {
	t.Parallel()
	path := writeFile(t, t.TempDir(), "tasks.yaml", "- description: no title here\n")
	_, err := Load([]string{path})
	var verr *task.ValidationError
	assert.ErrorAs(t, err, &verr)
}
