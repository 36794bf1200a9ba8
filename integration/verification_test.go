//go:build integration

// Package integration contains integration tests for gitpivot.
// These tests are excluded from normal test runs due to build tags.
// To run these tests: go test -tags integration ./integration
package integration

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// commitAs runs git in dir with a fixed identity and timestamp.
func commitAs(t *testing.T, dir, author, day string, args ...string) {
	t.Helper()
	stamp := day + "T12:00:00Z"
	cmd := exec.Command("git", append([]string{"-c", "commit.gpgsign=false"}, args...)...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_AUTHOR_NAME="+author,
		"GIT_AUTHOR_EMAIL="+author+"@example.com",
		"GIT_AUTHOR_DATE="+stamp,
		"GIT_COMMITTER_NAME="+author,
		"GIT_COMMITTER_EMAIL="+author+"@example.com",
		"GIT_COMMITTER_DATE="+stamp,
	)
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v: %s", args, out)
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

// scratchRepo builds a small history:
//
//	2024-03-01 Alice adds a.txt (+3), Bob adds b.txt (+2)
//	2024-03-02 alice edits a.txt (+1 -1)
//	2024-03-03 Bob adds c.txt (+1) on a branch, Alice merges it
func scratchRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	commitAs(t, dir, "Alice", "2024-03-01", "init", "-q", "-b", "main")
	writeFile(t, dir, "a.txt", "1\n2\n3\n")
	commitAs(t, dir, "Alice", "2024-03-01", "add", "a.txt")
	commitAs(t, dir, "Alice", "2024-03-01", "commit", "-q", "-m", "add a")

	writeFile(t, dir, "b.txt", "x\ny\n")
	commitAs(t, dir, "Bob", "2024-03-01", "add", "b.txt")
	commitAs(t, dir, "Bob", "2024-03-01", "commit", "-q", "-m", "add b")

	writeFile(t, dir, "a.txt", "1\n2\nthree\n")
	commitAs(t, dir, "alice", "2024-03-02", "commit", "-q", "-am", "edit a")

	commitAs(t, dir, "Bob", "2024-03-03", "checkout", "-q", "-b", "feature")
	writeFile(t, dir, "c.txt", "c\n")
	commitAs(t, dir, "Bob", "2024-03-03", "add", "c.txt")
	commitAs(t, dir, "Bob", "2024-03-03", "commit", "-q", "-m", "add c")
	commitAs(t, dir, "Alice", "2024-03-03", "checkout", "-q", "main")
	commitAs(t, dir, "Alice", "2024-03-03", "merge", "-q", "--no-ff", "-m", "Merge branch 'feature'", "feature")

	return dir
}

// runBinary runs gitpivot and returns stdout, stderr and the exit code.
func runBinary(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	cmd := exec.Command(getBinary(), args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()

	code := 0
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code = exitErr.ExitCode()
	} else {
		require.NoError(t, err)
	}
	return stdout.String(), stderr.String(), code
}

func TestContributionTableAgainstScratchRepo(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
	repo := scratchRepo(t)

	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{
			name: "total with merges",
			args: []string{"t", "--repo", repo, "--output", "csv"},
			expected: "date,alice,bob\n" +
				"2024-03-01,3,2\n" +
				"2024-03-02,2,-\n" +
				"2024-03-03,1,1\n",
		},
		{
			name: "commit count skips merges and adds totals",
			args: []string{"t", "10", "--repo", repo, "--output", "csv"},
			expected: "date,alice,bob\n" +
				"2024-03-01,3,2\n" +
				"2024-03-02,2,-\n" +
				"2024-03-03,-,1\n" +
				"total,5,3\n",
		},
		{
			name: "commits",
			args: []string{"commits", "--repo", repo, "--output", "csv", "--skip-merges"},
			expected: "date,alice,bob\n" +
				"2024-03-01,1,1\n" +
				"2024-03-02,1,-\n" +
				"2024-03-03,-,1\n",
		},
		{
			name: "deletions",
			args: []string{"d", "--repo", repo, "--output", "csv"},
			expected: "date,alice,bob\n" +
				"2024-03-01,0,0\n" +
				"2024-03-02,1,-\n" +
				"2024-03-03,0,0\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, code := runBinary(t, tt.args...)
			require.Equal(t, 0, code, stderr)
			assert.Equal(t, tt.expected, stdout)
		})
	}
}

func TestTextOutputWithSummary(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
	repo := scratchRepo(t)

	stdout, stderr, code := runBinary(t, "a", "10", "--repo", repo, "--color", "no")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "Totals: alice=4, bob=3")
	assert.Contains(t, stderr, "Repo:")
}

func TestExitBehavior(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	t.Run("no arguments prints usage", func(t *testing.T) {
		stdout, _, code := runBinary(t)
		assert.Equal(t, 0, code)
		assert.Contains(t, stdout, "Usage:")
	})

	t.Run("not a repository", func(t *testing.T) {
		_, stderr, code := runBinary(t, "t", "--repo", t.TempDir())
		assert.Equal(t, 1, code)
		assert.Contains(t, stderr, "Fatal Error running git command")
	})

	t.Run("unknown metric", func(t *testing.T) {
		_, stderr, code := runBinary(t, "x", "--repo", scratchRepo(t))
		assert.Equal(t, 1, code)
		assert.Contains(t, stderr, "Fatal An error occurred")
	})
}
