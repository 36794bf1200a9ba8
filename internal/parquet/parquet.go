// Package parquet exports contribution tables to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"io"
	"time"

	"github.com/huangsam/gitpivot/schema"
	"github.com/parquet-go/parquet-go"
)

// ContributionCell is one set cell of a contribution table in long form.
// Unset cells have no row, so absence keeps meaning "no activity".
type ContributionCell struct {
	// Date is the day the commits were authored (stored as TIMESTAMP)
	Date time.Time `parquet:"date,snappy"`

	// Author is the lowercased author name
	Author string `parquet:"author,snappy,dict"`

	// Metric is the name of the aggregated metric (commits, additions, ...)
	Metric string `parquet:"metric,snappy,dict"`

	// Value is the reduced metric for this author on this day
	Value int64 `parquet:"value,snappy"`
}

// CellsFromTable flattens the set cells of a table, ordered by date then author.
func CellsFromTable(table *schema.ContributionTable) []ContributionCell {
	var cells []ContributionCell
	for _, date := range table.Dates {
		for _, author := range table.Authors {
			v, ok := table.Value(date, author)
			if !ok {
				continue
			}
			cells = append(cells, ContributionCell{
				Date:   date,
				Author: author,
				Metric: string(table.Metric),
				Value:  int64(v),
			})
		}
	}
	return cells
}

// WriteContributionCells writes cells to w as a single Parquet file.
func WriteContributionCells(w io.Writer, cells []ContributionCell) error {
	// The schema is derived from the ContributionCell struct tags
	writer := parquet.NewGenericWriter[ContributionCell](w)

	if _, err := writer.Write(cells); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}
