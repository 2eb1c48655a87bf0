package output

import (
	"strings"
	"testing"
	"time"

	"pullview/internal/collector"
	"pullview/internal/engine"
)

func TestBuildReportCarriesChecks(t *testing.T) {
	snap := &collector.Snapshot{
		Hostname:   "box",
		CPUUsage:   95,
		RAMUsage:   10,
		DiskFreeGB: 50,
		Taken:      time.Now(),
	}
	report := BuildReport(snap, engine.Evaluate(snap))

	if report.Hostname != "box" {
		t.Errorf("Expected hostname box, got %q", report.Hostname)
	}
	found := false
	for _, l := range report.Lines {
		if l.Label == "CPU Usage" {
			found = true
			if l.Status != engine.StatusCritical {
				t.Errorf("Expected CPU line to carry CRIT, got %s", l.Status)
			}
		}
	}
	if !found {
		t.Error("Expected a CPU Usage line in the report")
	}
}

func TestFeedLinesStartWithHeader(t *testing.T) {
	snap := &collector.Snapshot{Hostname: "box", Taken: time.Now()}
	lines := FeedLines(BuildReport(snap, engine.Evaluate(snap)))

	if len(lines) < 2 {
		t.Fatalf("Expected header plus entries, got %d lines", len(lines))
	}
	if !strings.Contains(lines[0], "box") {
		t.Errorf("Expected header line to name the host, got %q", lines[0])
	}
}
