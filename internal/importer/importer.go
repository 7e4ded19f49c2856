// Package importer reads task definitions from external files so they can
// be fed through the store's add or upsert operations. YAML files hold a
// sequence of task configs; csv, tsv, and psv files hold one record per
// row with a header naming the columns.
package importer

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/taskroll-cli/taskroll/internal/logging"
	"github.com/taskroll-cli/taskroll/internal/task"
)

var logger = logging.New("import")

// Load expands the given path patterns (doublestar globs are supported),
// parses every matched file concurrently, and returns the task configs in
// pattern order. An unsupported file extension or a pattern matching
// nothing is a validation error surfaced before any state mutation.
func Load(patterns []string) ([]*task.Config, error) {
	files, err := expand(patterns)
	if err != nil {
		return nil, err
	}

	parsed := make([][]*task.Config, len(files))
	var g errgroup.Group
	for i, file := range files {
		g.Go(func() error {
			tcs, err := loadFile(file)
			if err != nil {
				return err
			}
			parsed[i] = tcs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []*task.Config
	for i, tcs := range parsed {
		logger.Debug("parsed import file", "file", files[i], "tasks", len(tcs))
		all = append(all, tcs...)
	}
	for _, tc := range all {
		if err := tc.Validate(); err != nil {
			return nil, err
		}
	}
	return all, nil
}

// expand resolves each pattern to concrete file paths. Literal paths are
// passed through so a missing file reports a read error rather than an
// empty glob.
func expand(patterns []string) ([]string, error) {
	var files []string
	for _, pattern := range patterns {
		if !strings.ContainsAny(pattern, "*?[{") {
			files = append(files, pattern)
			continue
		}
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("expanding pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, &task.ValidationError{Reason: fmt.Sprintf("pattern %q matched no files", pattern)}
		}
		files = append(files, matches...)
	}
	if len(files) == 0 {
		return nil, &task.ValidationError{Reason: "no import files given"}
	}
	return files, nil
}

func loadFile(path string) ([]*task.Config, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yml", ".yaml":
		return loadYAML(path)
	case ".csv":
		return loadDelimited(path, ',')
	case ".tsv":
		return loadDelimited(path, '\t')
	case ".psv":
		return loadDelimited(path, '|')
	default:
		return nil, &task.ValidationError{Reason: fmt.Sprintf("unsupported import file type %q", ext)}
	}
}

func loadYAML(path string) ([]*task.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading import file %s: %w", path, err)
	}
	var tcs []*task.Config
	if err := yaml.Unmarshal(data, &tcs); err != nil {
		return nil, fmt.Errorf("parsing import file %s: %w", path, err)
	}
	return tcs, nil
}

// loadDelimited parses a delimiter-separated file whose header row names
// the task config fields. Unknown columns are ignored; tags cells hold a
// semicolon-separated list.
func loadDelimited(path string, comma rune) ([]*task.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading import file %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck

	r := csv.NewReader(f)
	r.Comma = comma
	r.TrimLeadingSpace = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing import file %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	header := rows[0]
	var tcs []*task.Config
	for n, row := range rows[1:] {
		tc := &task.Config{Weight: task.DefaultWeight, Spoons: task.DefaultSpoons}
		for i, cell := range row {
			if i >= len(header) {
				break
			}
			if err := setField(tc, strings.TrimSpace(strings.ToLower(header[i])), strings.TrimSpace(cell)); err != nil {
				return nil, fmt.Errorf("parsing import file %s row %d: %w", path, n+2, err)
			}
		}
		tcs = append(tcs, tc)
	}
	return tcs, nil
}

func setField(tc *task.Config, column, value string) error {
	if value == "" {
		return nil
	}
	switch column {
	case "slug":
		tc.Slug = value
	case "task", "title":
		tc.Task = value
	case "description":
		tc.Description = value
	case "weight":
		w, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid weight %q", value)
		}
		tc.Weight = w
	case "spoons":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid spoons %q", value)
		}
		tc.Spoons = n
	case "max_occurrences":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid max_occurrences %q", value)
		}
		tc.MaxOccurrences = n
	case "min_frequency":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid min_frequency %q", value)
		}
		tc.MinFrequency = n
	case "disabled":
		return tc.Disabled.UnmarshalText([]byte(value))
	case "tags":
		for _, tag := range strings.Split(value, ";") {
			if tag = strings.TrimSpace(tag); tag != "" {
				tc.Tags = append(tc.Tags, tag)
			}
		}
	}
	return nil
}
