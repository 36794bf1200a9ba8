package schema

import (
	"errors"
	"fmt"
	"strings"
)

// Custom string types for type safety.
type (
	// Metric represents the value aggregated into each table cell.
	Metric string

	// OutputMode represents the format of the output.
	OutputMode string

	// Reducer represents how observations in one cell are combined.
	Reducer string

	// SourceField represents the CommitRecord field a metric reads from.
	SourceField string
)

// All metrics supported.
const (
	CommitsMetric   Metric = "commits" // default
	AdditionsMetric Metric = "additions"
	DeletionsMetric Metric = "deletions"
	TotalMetric     Metric = "total"
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All reducers supported.
const (
	CountReducer Reducer = "count"
	SumReducer   Reducer = "sum"
)

// All source fields a metric can read.
const (
	HashField        SourceField = "hash"
	AdditionsField   SourceField = "additions"
	DeletionsField   SourceField = "deletions"
	DifferencesField SourceField = "differences"
)

// Placeholder is rendered for table cells with no activity.
const Placeholder = "-"

// ErrUnknownMetric is returned for a metric selector outside the supported set.
var ErrUnknownMetric = errors.New("unknown metric")

// AllMetrics returns a list of all supported metrics in display order.
var AllMetrics = []Metric{CommitsMetric, AdditionsMetric, DeletionsMetric, TotalMetric}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// MetricDefinition describes how a metric maps to a reducer and a source field.
type MetricDefinition struct {
	Metric  Metric      `json:"metric"`
	Code    string      `json:"code"`
	Reducer Reducer     `json:"reducer"`
	Field   SourceField `json:"field"`
	Purpose string      `json:"purpose"`
}

var metricDefinitions = map[Metric]MetricDefinition{
	CommitsMetric: {
		Metric:  CommitsMetric,
		Code:    "c",
		Reducer: CountReducer,
		Field:   HashField,
		Purpose: "Number of commits per author per day",
	},
	AdditionsMetric: {
		Metric:  AdditionsMetric,
		Code:    "a",
		Reducer: SumReducer,
		Field:   AdditionsField,
		Purpose: "Lines inserted per author per day",
	},
	DeletionsMetric: {
		Metric:  DeletionsMetric,
		Code:    "d",
		Reducer: SumReducer,
		Field:   DeletionsField,
		Purpose: "Lines deleted per author per day",
	},
	TotalMetric: {
		Metric:  TotalMetric,
		Code:    "t",
		Reducer: SumReducer,
		Field:   DifferencesField,
		Purpose: "Lines inserted plus deleted per author per day",
	},
}

// Definition returns the reducer and source field for the metric.
func (m Metric) Definition() (MetricDefinition, error) {
	def, ok := metricDefinitions[m]
	if !ok {
		return MetricDefinition{}, fmt.Errorf("%w: %q", ErrUnknownMetric, string(m))
	}
	return def, nil
}

// Valid reports whether the metric is one of the supported selectors.
func (m Metric) Valid() bool {
	_, ok := metricDefinitions[m]
	return ok
}

// ParseMetric maps a short code (c, a, d, t) or long name to a Metric.
func ParseMetric(s string) (Metric, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, def := range metricDefinitions {
		if key == def.Code || key == string(def.Metric) {
			return def.Metric, nil
		}
	}
	return "", fmt.Errorf("%w: %q. must be c, a, d, t (commits, additions, deletions, total)", ErrUnknownMetric, s)
}

// AllMetricDefinitions returns the definitions of all metrics in display order.
func AllMetricDefinitions() []MetricDefinition {
	defs := make([]MetricDefinition, 0, len(AllMetrics))
	for _, m := range AllMetrics {
		defs = append(defs, metricDefinitions[m])
	}
	return defs
}
