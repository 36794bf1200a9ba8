package core

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/huangsam/gitpivot/core/diffstat"
	"github.com/huangsam/gitpivot/internal/contract"
	"github.com/huangsam/gitpivot/schema"
)

// logEntry is one parsed line of the commit log.
type logEntry struct {
	hash    string
	author  string
	date    time.Time
	message string
}

// CollectCommits lists the newest cfg.Limit commits and computes the line
// statistics of each one against its first parent. Commits are processed one
// at a time in log order. Any git failure discards the whole collection.
func CollectCommits(ctx context.Context, cfg *contract.Config, client contract.GitClient) ([]schema.CommitRecord, error) {
	out, err := client.GetCommitLog(ctx, cfg.RepoPath, cfg.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list commits: %w", err)
	}

	entries, err := parseCommitLog(out)
	if err != nil {
		return nil, err
	}

	records := make([]schema.CommitRecord, 0, len(entries))
	for _, e := range entries {
		if cfg.SkipMerges && isMergeCommit(e.message, cfg.MergeMarker) {
			continue
		}

		stat, err := client.GetCommitDiffStat(ctx, cfg.RepoPath, e.hash)
		if err != nil {
			return nil, fmt.Errorf("failed to compute diffstat for %s: %w", e.hash, err)
		}
		additions, deletions := diffstat.Sum(string(stat))

		records = append(records, schema.NewCommitRecord(e.hash, e.author, e.date, e.message, additions, deletions))
	}
	return records, nil
}

// parseCommitLog splits hash|author|date|subject lines into entries.
// The subject is the last field so it may itself contain the separator.
func parseCommitLog(out []byte) ([]logEntry, error) {
	var entries []logEntry
	for line := range strings.SplitSeq(string(out), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		parts := strings.SplitN(line, contract.LogFieldSeparator, 4)
		if len(parts) != 4 {
			return nil, fmt.Errorf("malformed commit log line %q: expected hash|author|date|subject", line)
		}

		date, err := time.Parse(schema.DateFormat, strings.TrimSpace(parts[2]))
		if err != nil {
			return nil, fmt.Errorf("malformed date in commit log line %q: %w", line, err)
		}

		entries = append(entries, logEntry{
			hash:    strings.TrimSpace(parts[0]),
			author:  parts[1],
			date:    date,
			message: parts[3],
		})
	}
	return entries, nil
}

// isMergeCommit reports whether the subject carries the merge marker.
func isMergeCommit(message, marker string) bool {
	return marker != "" && strings.Contains(message, marker)
}
