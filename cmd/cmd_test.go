package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	if args == nil {
		// cobra falls back to os.Args for nil args
		args = []string{}
	}
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRootCmd_NoArgsPrintsHelp(t *testing.T) {
	out, err := executeRoot(t)
	require.NoError(t, err)
	assert.Contains(t, out, "gitpivot <metric> [commit_count]")
}

func TestRootCmd_TooManyArgs(t *testing.T) {
	_, err := executeRoot(t, "c", "10", "extra")
	assert.Error(t, err)
}

func TestVersionCmd(t *testing.T) {
	out, err := executeRoot(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "gitpivot CLI")
	assert.Contains(t, out, "Version: dev")
}

func TestMetricsCmd_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metrics.csv")
	_, err := executeRoot(t, "metrics", "--output", "csv", "--output-file", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 5)
	assert.Equal(t, "code,metric,reducer,field,purpose", lines[0])
}
