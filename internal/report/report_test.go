package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hochfrequenz/work-report/internal/hours"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotal(t *testing.T) {
	tasks := []hours.Task{
		{Description: "a", Hours: 2},
		{Description: "b", Hours: 0.5},
		{Description: "c", Hours: 0},
	}

	assert.InDelta(t, 2.5, Total(tasks), 1e-9)
	assert.InDelta(t, 0.0, Total(nil), 1e-9)
}

func TestWrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "Report")
	tasks := []hours.Task{
		{Description: "Write docs 2 hours", Hours: 2},
		{Description: "Review PR 30 min", Hours: 0.5},
	}

	path, err := Write(dir, "summary.md", tasks)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "summary.md"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, "# Work Report")
	assert.Contains(t, content, "## Task Summary")
	assert.Contains(t, content, "- Write docs 2 hours → 2.00 hours")
	assert.Contains(t, content, "- Review PR 30 min → 0.50 hours")
	assert.Contains(t, content, "**Total Hours:** 2.50")
	assert.NotContains(t, content, "No tasks provided.")
}

func TestWrite_EmptyTaskList(t *testing.T) {
	dir := t.TempDir()

	path, err := Write(dir, "summary.md", nil)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Contains(t, string(data), "- No tasks provided.")
	assert.Contains(t, string(data), "**Total Hours:** 0.00")
}

func TestWrite_OverwritesExisting(t *testing.T) {
	dir := t.TempDir()
	path, err := Write(dir, "summary.md", []hours.Task{{Description: "old 1h", Hours: 1}})
	require.NoError(t, err)

	_, err = Write(dir, "summary.md", []hours.Task{{Description: "new 3h", Hours: 3}})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "old 1h")
	assert.Contains(t, string(data), "new 3h")
}
