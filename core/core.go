// Package core has core logic for collecting commits and building contribution reports.
package core

import (
	"context"
	"time"

	"github.com/huangsam/gitpivot/core/agg"
	"github.com/huangsam/gitpivot/internal/contract"
	"github.com/huangsam/gitpivot/internal/outwriter"
	"github.com/huangsam/gitpivot/schema"
)

// ExecuteContributions builds the contribution report and writes it in the
// configured output format. It serves as the main entry point for the CLI.
func ExecuteContributions(ctx context.Context, cfg *contract.Config, client contract.GitClient) error {
	start := time.Now()
	if !shouldSuppressHeader(ctx) {
		logReportHeader(cfg)
	}
	report, err := GetContributionReport(ctx, cfg, client)
	if err != nil {
		return err
	}
	return outwriter.WriteReport(report, cfg, time.Since(start))
}

// GetContributionReport collects commits, pivots the configured metric and,
// when cfg.Summary is set, attaches per-author totals.
func GetContributionReport(ctx context.Context, cfg *contract.Config, client contract.GitClient) (*schema.ContributionReport, error) {
	records, err := CollectCommits(ctx, cfg, client)
	if err != nil {
		return nil, err
	}

	table, err := agg.BuildContributionTable(records, cfg.Metric)
	if err != nil {
		return nil, err
	}

	report := &schema.ContributionReport{
		Table:   table,
		Commits: len(records),
	}
	if cfg.Summary {
		report.Totals = agg.Totals(table)
	}
	return report, nil
}

// ExecuteMetrics prints the metric definitions. No git calls are made.
func ExecuteMetrics(cfg *contract.Config) error {
	return outwriter.WriteMetrics(schema.AllMetricDefinitions(), cfg)
}
