// Package schema has models and enumerations shared by all parts of gitpivot.
package schema

import (
	"strings"
	"time"
)

// DateFormat is the layout of the day keys in git output and rendered tables.
const DateFormat = time.DateOnly

// CommitRecord holds the line statistics for a single commit.
// Values are fixed at construction; use NewCommitRecord to build one.
type CommitRecord struct {
	Hash        string    `json:"hash"`        // Abbreviated commit hash
	Author      string    `json:"author"`      // Author name, lowercased
	Date        time.Time `json:"date"`        // Author date truncated to the day
	Message     string    `json:"message"`     // Commit subject line
	Additions   int       `json:"additions"`   // Lines inserted against the first parent
	Deletions   int       `json:"deletions"`   // Lines deleted against the first parent
	Differences int       `json:"differences"` // Additions + Deletions
}

// NewCommitRecord creates a CommitRecord with a normalized author and a
// derived Differences value.
func NewCommitRecord(hash, author string, date time.Time, message string, additions, deletions int) CommitRecord {
	return CommitRecord{
		Hash:        hash,
		Author:      NormalizeAuthor(author),
		Date:        date,
		Message:     message,
		Additions:   additions,
		Deletions:   deletions,
		Differences: additions + deletions,
	}
}

// NormalizeAuthor folds author names so "Alice" and "alice" are one identity.
func NormalizeAuthor(author string) string {
	return strings.ToLower(strings.TrimSpace(author))
}

// ContributionTable is a sparse pivot of one metric keyed by (date, author).
// Dates and Authors are sorted ascending. A cell absent from Cells means no
// activity, which is distinct from a zero value.
type ContributionTable struct {
	Metric  Metric
	Dates   []time.Time
	Authors []string
	Cells   map[time.Time]map[string]int
}

// Value returns the cell for the date and author, and whether it is set.
func (t *ContributionTable) Value(date time.Time, author string) (int, bool) {
	row, ok := t.Cells[date]
	if !ok {
		return 0, false
	}
	v, ok := row[author]
	return v, ok
}

// IsEmpty reports whether the table has no rows.
func (t *ContributionTable) IsEmpty() bool {
	return len(t.Dates) == 0
}

// AuthorTotal is the sum of one author's column, ignoring unset cells.
type AuthorTotal struct {
	Author string `json:"author"`
	Total  int    `json:"total"`
}

// ContributionReport bundles everything a renderer needs.
type ContributionReport struct {
	Table   *ContributionTable
	Totals  []AuthorTotal // nil unless the summary was requested
	Commits int           // Number of commits that made it into the table
}
