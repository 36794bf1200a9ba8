// Package main provides a performance benchmarking tool for the gitpivot CLI.
// It measures execution times across repositories and commit windows,
// running each case several times and averaging the successful runs,
// then writes a CSV file for performance analysis and documentation.
//
// Prerequisites:
// - gitpivot binary installed and available in PATH
// - Test repositories cloned to the specified base directory
// - Git repositories: csv-parser, fd, git, kubernetes
//
// Usage: go run benchmark/main.go [repo-base-dir]
//
//	repo-base-dir: Directory containing test repositories
package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// BenchmarkResult holds the averaged timing of one (repo, metric, limit) case.
type BenchmarkResult struct {
	Repository string
	Metric     string
	Limit      int
	AvgTime    string
	Runs       int
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	RepoBase  string
	Timeout   time.Duration
	Runs      int
	Metrics   []string
	Limits    []int
	TestRepos []string
}

func main() {
	// Parse command line arguments
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [repo-base-dir]\n", os.Args[0])
		os.Exit(1)
	}

	config := BenchmarkConfig{
		RepoBase:  os.Args[1],
		Timeout:   5 * time.Minute,
		Runs:      3,
		Metrics:   []string{"c", "t"},
		Limits:    []int{100, 1000},
		TestRepos: []string{"csv-parser", "fd", "git", "kubernetes"},
	}

	if err := checkPrerequisites(config); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// checkPrerequisites verifies that the gitpivot binary and test repositories exist
func checkPrerequisites(config BenchmarkConfig) error {
	if _, err := exec.LookPath("gitpivot"); err != nil {
		return errors.New("gitpivot binary not found in PATH")
	}

	for _, repo := range config.TestRepos {
		repoPath := filepath.Join(config.RepoBase, repo)
		if _, err := os.Stat(repoPath); os.IsNotExist(err) {
			return fmt.Errorf("repository %s not found at %s", repo, repoPath)
		}
	}
	return nil
}

// runBenchmarks executes every metric and limit combination across configured repositories
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d repos, %v timeout, %d runs per case\n",
		len(config.TestRepos), config.Timeout, config.Runs)

	for _, repo := range config.TestRepos {
		fmt.Printf("Benchmarking %s\n", repo)
		repoPath := filepath.Join(config.RepoBase, repo)

		for _, metric := range config.Metrics {
			for _, limit := range config.Limits {
				results = append(results, runCase(config, repo, repoPath, metric, limit))
			}
		}
	}
	return results
}

// runCase times one gitpivot invocation repeatedly and averages the successful runs
func runCase(config BenchmarkConfig, repo, repoPath, metric string, limit int) BenchmarkResult {
	fmt.Printf("  metric=%s limit=%d\n", metric, limit)

	args := []string{metric, "--repo", repoPath, "--limit", strconv.Itoa(limit), "--color", "no"}

	var times []float64
	for range config.Runs {
		if elapsed, ok := timeRun(config.Timeout, args); ok {
			times = append(times, elapsed)
		}
	}

	avg := "TIMEOUT"
	if len(times) > 0 {
		var sum float64
		for _, t := range times {
			sum += t
		}
		avg = fmt.Sprintf("%.3fs", sum/float64(len(times)))
	}
	fmt.Printf("    average: %s over %d runs\n", avg, len(times))

	return BenchmarkResult{
		Repository: repo,
		Metric:     metric,
		Limit:      limit,
		AvgTime:    avg,
		Runs:       len(times),
	}
}

// timeRun runs gitpivot once and reports the elapsed seconds when it succeeds
func timeRun(timeout time.Duration, args []string) (float64, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	start := time.Now()
	output, err := exec.CommandContext(ctx, "gitpivot", args...).CombinedOutput()
	if err != nil || !isSuccess(output) {
		return 0, false
	}
	return time.Since(start).Seconds(), true
}

// isSuccess checks if command output indicates a rendered table
func isSuccess(output []byte) bool {
	outputStr := string(output)
	return strings.Contains(outputStr, "Pivoted") || strings.Contains(outputStr, "No commits found.")
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(os.TempDir(), fmt.Sprintf("gitpivot_benchmark_%s.csv", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"repo", "metric", "limit", "avg_time", "runs"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, r := range results {
		record := []string{r.Repository, r.Metric, strconv.Itoa(r.Limit), r.AvgTime, strconv.Itoa(r.Runs)}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results grouped by repository
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")
	for _, r := range results {
		fmt.Printf("  %-12s %-2s limit=%-5d %s\n", r.Repository, r.Metric, r.Limit, r.AvgTime)
	}
}
