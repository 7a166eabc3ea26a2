package agent

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFiles(t *testing.T) {
	a := newMockAgent(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "test.py")

	err := a.WriteFiles([]FileSpec{{Path: path, Content: "print('hello')", Description: "Test file"}}, false)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "print('hello')", string(data))
}

func TestWriteFiles_CreatesNestedDirectories(t *testing.T) {
	a := newMockAgent(t)
	path := filepath.Join(t.TempDir(), "nested", "dir", "test.py")

	err := a.WriteFiles([]FileSpec{{Path: path, Content: "x = 1", Description: "Nested file"}}, false)
	require.NoError(t, err)

	assert.FileExists(t, path)
}

func TestWriteFiles_ExistingFileWithoutOverwrite(t *testing.T) {
	a := newMockAgent(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "test.py")
	require.NoError(t, os.WriteFile(path, []byte("original"), 0644))

	err := a.WriteFiles([]FileSpec{{Path: path, Content: "replacement", Description: "f"}}, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFileExists)
	assert.Contains(t, err.Error(), path)

	// The pre-existing content must be untouched.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "original", string(data))
}

func TestWriteFiles_OverwriteReplacesContent(t *testing.T) {
	a := newMockAgent(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "test.py")
	require.NoError(t, os.WriteFile(path, []byte("original content that is longer"), 0644))

	err := a.WriteFiles([]FileSpec{{Path: path, Content: "short", Description: "f"}}, true)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "short", string(data))
}

func TestWriteFiles_AbortsAtFirstConflict(t *testing.T) {
	a := newMockAgent(t)
	dir := t.TempDir()
	blocking := filepath.Join(dir, "b.py")
	require.NoError(t, os.WriteFile(blocking, []byte("keep"), 0644))

	files := []FileSpec{
		{Path: filepath.Join(dir, "a.py"), Content: "a", Description: "first"},
		{Path: blocking, Content: "b", Description: "conflict"},
		{Path: filepath.Join(dir, "c.py"), Content: "c", Description: "never written"},
	}

	err := a.WriteFiles(files, false)
	require.ErrorIs(t, err, ErrFileExists)

	// No rollback: the first file stays; the one after the conflict was
	// never written.
	assert.FileExists(t, filepath.Join(dir, "a.py"))
	assert.NoFileExists(t, filepath.Join(dir, "c.py"))
}

// Full workflow: generate, approve, implement, write. Mirrors the end-to-end
// scenario for the mock provider.
func TestWorkflowRoundTrip(t *testing.T) {
	a := newMockAgent(t)
	dir := t.TempDir()

	plan, err := a.GeneratePlan("Create a simple Python calculator application")
	require.NoError(t, err)
	assert.Contains(t, plan, "Create a simple Python calculator application")
	assert.Contains(t, plan, "main.py")

	require.NoError(t, a.ApprovePlan())

	files, err := a.ImplementPlan(dir)
	require.NoError(t, err)
	require.Len(t, files, 3)

	require.NoError(t, a.WriteFiles(files, false))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 3)

	for _, f := range files {
		data, err := os.ReadFile(f.Path)
		require.NoError(t, err)
		assert.Equal(t, f.Content, string(data))
		assert.NotEmpty(t, data)
	}
}
