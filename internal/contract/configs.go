package contract

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/huangsam/gitpivot/schema"
)

// Default values for configuration.
const (
	DefaultCommitLimit = 100
	MaxCommitLimit     = 100000
	DefaultMergeMarker = "Merge"
)

// Config holds the runtime configuration for a contribution report.
// This struct is the "final, validated" config.
type Config struct {
	RepoPath    string
	Metric      schema.Metric
	Limit       int
	SkipMerges  bool
	Summary     bool
	MergeMarker string
	Output      schema.OutputMode
	OutputFile  string
	UseColors   bool
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// These are set manually from positional args, so no tag
	MetricStr string
	CountStr  string

	Repo        string `mapstructure:"repo"`
	Limit       int    `mapstructure:"limit"`
	SkipMerges  bool   `mapstructure:"skip-merges"`
	Summary     bool   `mapstructure:"summary"`
	MergeMarker string `mapstructure:"merge-marker"`
	Output      string `mapstructure:"output"`
	OutputFile  string `mapstructure:"output-file"`
	Color       string `mapstructure:"color"`
}

// Clone returns a copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(ctx context.Context, cfg *Config, client GitClient, input *ConfigRawInput) error {
	if err := ProcessDisplayOptions(cfg, input); err != nil {
		return err
	}
	if err := processCollectOptions(cfg, input); err != nil {
		return err
	}
	if err := processMetric(cfg, input); err != nil {
		return err
	}
	if err := processCommitCount(cfg, input); err != nil {
		return err
	}
	return resolveGitPath(ctx, cfg, client, input)
}

// ProcessDisplayOptions validates the fields that only affect rendering.
// Commands that never touch git call this instead of ProcessAndValidate.
func ProcessDisplayOptions(cfg *Config, input *ConfigRawInput) error {
	cfg.OutputFile = input.OutputFile

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}
	if cfg.Output == schema.ParquetOut && cfg.OutputFile == "" {
		return fmt.Errorf("--output-file is required for parquet output")
	}
	return nil
}

// processCollectOptions validates the commit window and merge filtering.
func processCollectOptions(cfg *Config, input *ConfigRawInput) error {
	if err := validateLimit(input.Limit); err != nil {
		return err
	}
	cfg.Limit = input.Limit
	cfg.SkipMerges = input.SkipMerges
	cfg.Summary = input.Summary

	cfg.MergeMarker = input.MergeMarker
	if cfg.MergeMarker == "" {
		cfg.MergeMarker = DefaultMergeMarker
	}
	return nil
}

// processMetric maps the metric selector onto the enumerated type.
// An empty selector leaves the metric unset for callers that supply it later.
func processMetric(cfg *Config, input *ConfigRawInput) error {
	if input.MetricStr == "" {
		return nil
	}
	metric, err := schema.ParseMetric(input.MetricStr)
	if err != nil {
		return err
	}
	cfg.Metric = metric
	return nil
}

// processCommitCount handles the extended form '<metric> <commit_count>'.
// It overrides the limit and turns on merge skipping and the summary line.
func processCommitCount(cfg *Config, input *ConfigRawInput) error {
	if input.CountStr == "" {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(input.CountStr))
	if err != nil {
		return fmt.Errorf("invalid commit count '%s': must be a whole number", input.CountStr)
	}
	if err := validateLimit(n); err != nil {
		return err
	}
	cfg.Limit = n
	cfg.SkipMerges = true
	cfg.Summary = true
	return nil
}

// validateLimit checks that a commit limit is within bounds.
func validateLimit(limit int) error {
	if limit <= 0 || limit > MaxCommitLimit {
		return fmt.Errorf("commit limit must be greater than 0 and cannot exceed %d (received %d)", MaxCommitLimit, limit)
	}
	return nil
}

// resolveGitPath turns the requested repo path into the repository root.
func resolveGitPath(ctx context.Context, cfg *Config, client GitClient, input *ConfigRawInput) error {
	repo := input.Repo
	if repo == "" {
		repo = "."
	}
	absPath, err := filepath.Abs(repo)
	if err != nil {
		return fmt.Errorf("failed to resolve repo path %q: %w", repo, err)
	}
	if _, err := os.Stat(absPath); err != nil {
		return fmt.Errorf("repo path %q is not accessible: %w", absPath, err)
	}
	root, err := client.GetRepoRoot(ctx, absPath)
	if err != nil {
		return err
	}
	cfg.RepoPath = root
	return nil
}

// RevalidateContributions applies per-request overrides on top of an already
// validated config. Zero values keep the base config's setting.
func RevalidateContributions(ctx context.Context, cfg *Config, client GitClient, metricStr string, limit int, repoPath string) error {
	metric, err := schema.ParseMetric(metricStr)
	if err != nil {
		return err
	}
	cfg.Metric = metric

	if limit != 0 {
		if err := validateLimit(limit); err != nil {
			return err
		}
		cfg.Limit = limit
	}
	if cfg.Limit == 0 {
		cfg.Limit = DefaultCommitLimit
	}
	if cfg.MergeMarker == "" {
		cfg.MergeMarker = DefaultMergeMarker
	}

	if repoPath == "" {
		return nil
	}
	return resolveGitPath(ctx, cfg, client, &ConfigRawInput{Repo: repoPath})
}
