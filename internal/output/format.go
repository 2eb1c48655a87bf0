package output

import (
	"fmt"
	"time"

	"pullview/internal/collector"
	"pullview/internal/engine"
)

// Line is one formatted feed entry with its check status attached.
type Line struct {
	Label  string
	Value  string
	Status string
}

// Report is the view-model shared by the TUI feed and the plain console
// renderer. No printing happens here.
type Report struct {
	Hostname string
	Taken    time.Time
	Lines    []Line
}

// BuildReport pairs a snapshot with its evaluated checks.
func BuildReport(s *collector.Snapshot, results []engine.CheckResult) Report {
	r := Report{
		Hostname: s.Hostname,
		Taken:    s.Taken,
	}

	for _, c := range results {
		r.Lines = append(r.Lines, Line{
			Label:  c.Name,
			Value:  fmt.Sprintf("%.1f%%", c.Value),
			Status: c.Status,
		})
	}

	r.Lines = append(r.Lines,
		Line{Label: "Load (1m)", Value: fmt.Sprintf("%.2f", s.LoadAvg1), Status: engine.StatusHealthy},
		Line{Label: "RAM", Value: fmt.Sprintf("%.1f / %.1f GB", s.RAMUsedGB, s.RAMTotalGB), Status: engine.StatusHealthy},
		Line{Label: "Disk", Value: fmt.Sprintf("%.0f GB free of %.0f GB", s.DiskFreeGB, s.DiskTotalGB), Status: engine.StatusHealthy},
		Line{Label: "Uptime", Value: s.Uptime.Truncate(time.Second).String(), Status: engine.StatusHealthy},
	)
	return r
}

// FeedLines flattens a report into timestamped strings for the scrollback.
func FeedLines(r Report) []string {
	lines := make([]string, 0, len(r.Lines)+1)
	lines = append(lines, fmt.Sprintf("── %s @ %s ──", r.Hostname, r.Taken.Format("15:04:05")))
	for _, l := range r.Lines {
		lines = append(lines, fmt.Sprintf("[%-4s] %-12s %s", l.Status, l.Label, l.Value))
	}
	return lines
}
