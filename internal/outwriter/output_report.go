package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/huangsam/gitpivot/internal/parquet"
	"github.com/huangsam/gitpivot/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// totalRowLabel marks the per-author totals row in CSV output.
const totalRowLabel = "total"

// writeReportTable prints the pivot as a table with one row per date and one
// column per author, followed by the totals line when present.
func writeReportTable(w io.Writer, report *schema.ContributionReport, colored bool, duration time.Duration) error {
	table := report.Table
	if table.IsEmpty() {
		_, err := fmt.Fprintln(w, "No commits found.")
		return err
	}

	placeholder := schema.Placeholder
	label := "Totals:"
	if colored {
		faint := color.New(color.Faint)
		faint.EnableColor()
		placeholder = faint.Sprint(schema.Placeholder)
		bold := color.New(color.Bold, color.FgCyan)
		bold.EnableColor()
		label = bold.Sprint(label)
	}

	tbl := tablewriter.NewWriter(w)

	// --- 1. Define Headers ---
	headers := append([]string{"Date"}, table.Authors...)
	tbl.Header(headers)

	// 2. Configure Alignment
	tbl.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// --- 3. Prepare Data Rows ---
	data := make([][]string, 0, len(table.Dates))
	for _, date := range table.Dates {
		row := make([]string, 0, len(table.Authors)+1)
		row = append(row, date.Format(schema.DateFormat))
		for _, author := range table.Authors {
			if v, ok := table.Value(date, author); ok {
				row = append(row, strconv.Itoa(v))
			} else {
				row = append(row, placeholder)
			}
		}
		data = append(data, row)
	}

	// --- 4. Render the table ---
	if err := tbl.Bulk(data); err != nil {
		return err
	}
	if err := tbl.Render(); err != nil {
		return err
	}

	if report.Totals != nil {
		if _, err := fmt.Fprintf(w, "%s %s\n", label, formatTotals(report.Totals)); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "Pivoted %s over %s commits in %v\n", table.Metric, humanize.Comma(int64(report.Commits)), duration)
	return err
}

// formatTotals renders totals as "alice=10, bob=3".
func formatTotals(totals []schema.AuthorTotal) string {
	parts := make([]string, 0, len(totals))
	for _, t := range totals {
		parts = append(parts, fmt.Sprintf("%s=%d", t.Author, t.Total))
	}
	return strings.Join(parts, ", ")
}

// writeReportCSV writes the pivot with a "date,<authors...>" header. Unset
// cells are written as the placeholder, and totals become a final row.
func writeReportCSV(w io.Writer, report *schema.ContributionReport) error {
	table := report.Table
	header := append([]string{"date"}, table.Authors...)
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, date := range table.Dates {
			record := make([]string, 0, len(header))
			record = append(record, date.Format(schema.DateFormat))
			for _, author := range table.Authors {
				if v, ok := table.Value(date, author); ok {
					record = append(record, strconv.Itoa(v))
				} else {
					record = append(record, schema.Placeholder)
				}
			}
			if err := csvWriter.Write(record); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
		if report.Totals == nil {
			return nil
		}
		record := make([]string, 0, len(header))
		record = append(record, totalRowLabel)
		for _, t := range report.Totals {
			record = append(record, strconv.Itoa(t.Total))
		}
		if err := csvWriter.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV totals: %w", err)
		}
		return nil
	})
}

// writeReportJSON writes the serializable report view.
func writeReportJSON(w io.Writer, report *schema.ContributionReport) error {
	return writeJSON(w, schema.NewReportView(report))
}

// writeReportParquet writes the set cells of the pivot in long form.
func writeReportParquet(w io.Writer, report *schema.ContributionReport) error {
	return parquet.WriteContributionCells(w, parquet.CellsFromTable(report.Table))
}
