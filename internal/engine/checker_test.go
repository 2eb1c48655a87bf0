package engine

import (
	"testing"

	"pullview/internal/collector"
)

func findResult(results []CheckResult, name string) *CheckResult {
	for i := range results {
		if results[i].Name == name {
			return &results[i]
		}
	}
	return nil
}

func TestEvaluateHealthySnapshot(t *testing.T) {
	snap := &collector.Snapshot{
		CPUUsage:   10,
		RAMUsage:   30,
		DiskUsage:  40,
		DiskFreeGB: 100,
	}
	for _, r := range Evaluate(snap) {
		if r.Status != StatusHealthy {
			t.Errorf("Expected %s to be OK, got %s", r.Name, r.Status)
		}
	}
}

func TestEvaluateThresholdGrading(t *testing.T) {
	snap := &collector.Snapshot{
		CPUUsage:   95,
		RAMUsage:   75,
		DiskUsage:  50,
		DiskFreeGB: 100,
	}
	results := Evaluate(snap)

	if r := findResult(results, "CPU Usage"); r == nil || r.Status != StatusCritical {
		t.Errorf("Expected CPU at 95%% to be CRIT, got %+v", r)
	}
	if r := findResult(results, "RAM Usage"); r == nil || r.Status != StatusWarning {
		t.Errorf("Expected RAM at 75%% to be WARN, got %+v", r)
	}
	if r := findResult(results, "Disk Usage"); r == nil || r.Status != StatusHealthy {
		t.Errorf("Expected disk at 50%% to be OK, got %+v", r)
	}
}

func TestEvaluateDiskFreeFloor(t *testing.T) {
	snap := &collector.Snapshot{
		DiskUsage:  40,
		DiskFreeGB: 2,
	}
	results := Evaluate(snap)
	if r := findResult(results, "Disk Usage"); r == nil || r.Status != StatusWarning {
		t.Errorf("Expected low absolute free space to warn, got %+v", r)
	}
}
