package schema

// ReportRow is one date of a contribution table. Values holds nil for
// authors without activity on that day.
type ReportRow struct {
	Date   string          `json:"date"`
	Values map[string]*int `json:"values"`
}

// ReportView is the serializable form of a ContributionReport, shared by the
// JSON writer and the MCP tool.
type ReportView struct {
	Metric  Metric        `json:"metric"`
	Authors []string      `json:"authors"`
	Commits int           `json:"commits"`
	Rows    []ReportRow   `json:"rows"`
	Totals  []AuthorTotal `json:"totals,omitempty"`
}

// NewReportView converts a report into its serializable form.
func NewReportView(report *ContributionReport) ReportView {
	table := report.Table
	view := ReportView{
		Metric:  table.Metric,
		Authors: table.Authors,
		Commits: report.Commits,
		Rows:    make([]ReportRow, 0, len(table.Dates)),
		Totals:  report.Totals,
	}
	if view.Authors == nil {
		view.Authors = []string{}
	}
	for _, date := range table.Dates {
		row := ReportRow{
			Date:   date.Format(DateFormat),
			Values: make(map[string]*int, len(table.Authors)),
		}
		for _, author := range table.Authors {
			if v, ok := table.Value(date, author); ok {
				row.Values[author] = &v
			} else {
				row.Values[author] = nil
			}
		}
		view.Rows = append(view.Rows, row)
	}
	return view
}
