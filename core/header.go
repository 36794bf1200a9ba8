package core

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/huangsam/gitpivot/internal/contract"
)

// logReportHeader prints a concise, 2-line header to stderr so that stdout
// stays clean for csv and json output.
func logReportHeader(cfg *contract.Config) {
	repoName := filepath.Base(cfg.RepoPath)
	if repoName == "" || repoName == "." {
		repoName = "current"
	}

	_, _ = fmt.Fprintf(os.Stderr, "🔎 Repo: %s (Metric: %s)\n", repoName, cfg.Metric)

	merges := "included"
	if cfg.SkipMerges {
		merges = fmt.Sprintf("skipped (marker %q)", cfg.MergeMarker)
	}
	_, _ = fmt.Fprintf(os.Stderr, "📜 Last %d commits, merges %s\n", cfg.Limit, merges)
}
