// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import "context"

// GitClient defines the git operations needed to collect commit statistics.
// This allows the collection logic to be tested without needing a real git executable.
type GitClient interface {
	// Run executes a git command and returns its standard output.
	// Its use should be minimized in favor of the explicit methods below.
	Run(ctx context.Context, repoPath string, args ...string) ([]byte, error)

	// GetRepoRoot returns the absolute path to the root of the Git repository
	// containing the given context path.
	GetRepoRoot(ctx context.Context, contextPath string) (string, error)

	// GetCommitLog returns the newest limit commits, one per line, formatted
	// as hash|author|date|subject with short dates.
	GetCommitLog(ctx context.Context, repoPath string, limit int) ([]byte, error)

	// GetCommitDiffStat returns the whitespace-insensitive --stat output of a
	// single commit against its first parent.
	GetCommitDiffStat(ctx context.Context, repoPath string, hash string) ([]byte, error)
}
