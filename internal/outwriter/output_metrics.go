package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/huangsam/gitpivot/schema"
	"github.com/olekukonko/tablewriter"
)

// writeMetricsText renders the metric selectors as a table.
func writeMetricsText(w io.Writer, defs []schema.MetricDefinition) error {
	if _, err := fmt.Fprintln(w, "📊 Contribution Metrics"); err != nil {
		return err
	}

	tbl := tablewriter.NewWriter(w)
	tbl.Header([]string{"Code", "Metric", "Reducer", "Field", "Purpose"})

	data := make([][]string, 0, len(defs))
	for _, def := range defs {
		data = append(data, []string{
			def.Code,
			string(def.Metric),
			string(def.Reducer),
			string(def.Field),
			def.Purpose,
		})
	}
	if err := tbl.Bulk(data); err != nil {
		return err
	}
	return tbl.Render()
}

// writeMetricsCSV writes one row per metric selector.
func writeMetricsCSV(w io.Writer, defs []schema.MetricDefinition) error {
	header := []string{"code", "metric", "reducer", "field", "purpose"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, def := range defs {
			record := []string{def.Code, string(def.Metric), string(def.Reducer), string(def.Field), def.Purpose}
			if err := csvWriter.Write(record); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
		return nil
	})
}
