// Package agg has aggregation logic for commit records.
package agg

import (
	"slices"
	"time"

	"github.com/huangsam/gitpivot/schema"
)

// BuildContributionTable groups records by (date, author), reduces each group
// with the metric's reducer and pivots the result into date rows and author
// columns. Groups with no records never get a cell.
func BuildContributionTable(records []schema.CommitRecord, metric schema.Metric) (*schema.ContributionTable, error) {
	def, err := metric.Definition()
	if err != nil {
		return nil, err
	}

	cells := make(map[time.Time]map[string]int)
	authorSet := make(map[string]struct{})

	for _, r := range records {
		day := dayKey(r.Date)
		author := schema.NormalizeAuthor(r.Author)

		row, ok := cells[day]
		if !ok {
			row = make(map[string]int)
			cells[day] = row
		}
		row[author] += observation(def, r)
		authorSet[author] = struct{}{}
	}

	dates := make([]time.Time, 0, len(cells))
	for d := range cells {
		dates = append(dates, d)
	}
	slices.SortFunc(dates, func(a, b time.Time) int { return a.Compare(b) })

	authors := make([]string, 0, len(authorSet))
	for a := range authorSet {
		authors = append(authors, a)
	}
	slices.Sort(authors)

	return &schema.ContributionTable{
		Metric:  metric,
		Dates:   dates,
		Authors: authors,
		Cells:   cells,
	}, nil
}

// Totals sums each author's column, skipping unset cells.
// Results follow the table's author order.
func Totals(table *schema.ContributionTable) []schema.AuthorTotal {
	totals := make([]schema.AuthorTotal, 0, len(table.Authors))
	for _, author := range table.Authors {
		sum := 0
		for _, date := range table.Dates {
			if v, ok := table.Value(date, author); ok {
				sum += v
			}
		}
		totals = append(totals, schema.AuthorTotal{Author: author, Total: sum})
	}
	return totals
}

// observation is what one record contributes to its cell.
func observation(def schema.MetricDefinition, r schema.CommitRecord) int {
	if def.Reducer == schema.CountReducer {
		return 1
	}
	return fieldValue(def.Field, r)
}

// fieldValue reads a numeric source field from the record.
func fieldValue(field schema.SourceField, r schema.CommitRecord) int {
	switch field {
	case schema.AdditionsField:
		return r.Additions
	case schema.DeletionsField:
		return r.Deletions
	case schema.DifferencesField:
		return r.Differences
	default:
		return 0
	}
}

// dayKey drops the clock and zone so equal days compare equal as map keys.
func dayKey(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
