package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/abhisek/qbank/internal/questions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupWorkdir creates the fixed question file under a fresh working
// directory and switches into it.
func setupWorkdir(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, questions.DefaultPath)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Chdir(dir)
	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(append([]string{}, args...))
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootRewritesThenChecks(t *testing.T) {
	path := setupWorkdir(t, `[
		{"question":"Q1","options":["Paris","London"],"correct_answer":"Paris"},
		{"question":"Q2","options":["X","Y","Z"],"correct_answer":"Option b"}
	]`)

	stdout, stderr, err := execute(t)
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Empty(t, stderr)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(got), `"id": 20002`)

	stdout, _, err = execute(t, "check")
	require.NoError(t, err)
	assert.Contains(t, stdout, "2 questions OK")
}

func TestRootWarnsOnUnresolved(t *testing.T) {
	setupWorkdir(t, `[{"question":"Q1","options":["X"],"correct_answer":"W"}]`)

	_, stderr, err := execute(t)
	require.NoError(t, err)
	assert.Contains(t, stderr, "warning: 1 of 1 questions")
}

func TestRootFailsOnMalformedInput(t *testing.T) {
	content := `[{"question":"Q1"}]`
	path := setupWorkdir(t, content)

	_, _, err := execute(t)
	require.Error(t, err)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, string(got))
}

func TestCheckReportsProblems(t *testing.T) {
	setupWorkdir(t, `[{"id":20001,"question":"Q1","options":[{"id":"a","text":"X"}],"correct_answer":null}]`)

	stdout, _, err := execute(t, "check")
	require.Error(t, err)
	assert.Contains(t, stdout, "correct_answer is null")
}

func TestVersion(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "qbank (devel)\n", stdout)
}
