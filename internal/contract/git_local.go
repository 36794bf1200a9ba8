package contract

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// LogFieldSeparator separates the fields of each commit log line.
const LogFieldSeparator = "|"

// logFormat yields hash|author|date|subject for every commit.
var logFormat = "--pretty=format:" + strings.Join([]string{"%h", "%an", "%ad", "%s"}, LogFieldSeparator)

// GitCommandError reports a git invocation that could not run or exited non-zero.
type GitCommandError struct {
	RepoPath string
	Args     []string
	Stderr   string
	Err      error
}

// Error implements the error interface.
func (e *GitCommandError) Error() string {
	cmd := "git " + strings.Join(e.Args, " ")
	if e.Stderr != "" {
		return fmt.Sprintf("%q failed in %q: %s", cmd, e.RepoPath, e.Stderr)
	}
	return fmt.Sprintf("%q failed in %q: %v", cmd, e.RepoPath, e.Err)
}

// Unwrap returns the underlying exec error.
func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// LocalGitClient implements the GitClient interface by executing the
// local 'git' binary installed on the machine.
type LocalGitClient struct{}

var _ GitClient = &LocalGitClient{} // Compile-time check

// NewLocalGitClient creates a new instance of the local Git client.
func NewLocalGitClient() *LocalGitClient {
	return &LocalGitClient{}
}

// Run executes a git command and returns its standard output.
func (c *LocalGitClient) Run(ctx context.Context, repoPath string, args ...string) ([]byte, error) {
	fullArgs := append([]string{"-C", repoPath}, args...)
	cmd := exec.CommandContext(ctx, "git", fullArgs...)
	out, err := cmd.Output()
	if err == nil {
		return out, nil
	}
	gitErr := &GitCommandError{RepoPath: repoPath, Args: args, Err: err}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		gitErr.Stderr = strings.TrimSpace(string(exitErr.Stderr))
	}
	return nil, gitErr
}

// GetRepoRoot implements the GitClient interface.
func (c *LocalGitClient) GetRepoRoot(ctx context.Context, contextPath string) (string, error) {
	out, err := c.Run(ctx, contextPath, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// GetCommitLog implements the GitClient interface.
func (c *LocalGitClient) GetCommitLog(ctx context.Context, repoPath string, limit int) ([]byte, error) {
	args := []string{
		"log",
		fmt.Sprintf("-%d", limit),
		"--date=short",
		logFormat,
	}
	return c.Run(ctx, repoPath, args...)
}

// GetCommitDiffStat implements the GitClient interface.
// git show diffs the root commit against the empty tree, so it needs no
// special casing, and first-parent keeps merge commits comparable.
func (c *LocalGitClient) GetCommitDiffStat(ctx context.Context, repoPath string, hash string) ([]byte, error) {
	args := []string{
		"show",
		"-w",
		"--stat",
		"--format=",
		"--diff-merges=first-parent",
		hash,
	}
	return c.Run(ctx, repoPath, args...)
}
