// Package outwriter has output and writer logic.
package outwriter

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/huangsam/gitpivot/internal/contract"
	"github.com/huangsam/gitpivot/schema"
	"golang.org/x/term"
)

// WriteReport prints a contribution report, dispatching based on the output format configured.
func WriteReport(report *schema.ContributionReport, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportJSON(w, report)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportCSV(w, report)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportParquet(w, report)
		}, "Wrote Parquet"); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportTable(w, report, useColor(cfg), duration)
		}, "Wrote table"); err != nil {
			return fmt.Errorf("error writing table output: %w", err)
		}
	}
	return nil
}

// WriteMetrics prints metric definitions using the configured output format.
func WriteMetrics(defs []schema.MetricDefinition, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, defs)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeMetricsCSV(w, defs)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return fmt.Errorf("output mode %q is not supported for metric definitions", cfg.Output)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeMetricsText(w, defs)
		}, "Wrote text")
	}
}

// useColor reports whether text output should carry ANSI colors.
// Files and pipes never get colors, even when they were requested.
func useColor(cfg *contract.Config) bool {
	return cfg.UseColors && cfg.OutputFile == "" && term.IsTerminal(int(os.Stdout.Fd()))
}
