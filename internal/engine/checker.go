package engine

import (
	"pullview/internal/collector"
)

const (
	StatusHealthy  = "OK"
	StatusWarning  = "WARN"
	StatusCritical = "CRIT"

	CPUWarningThreshold   = 70.0
	CPUCriticalThreshold  = 90.0
	RAMWarningThreshold   = 70.0
	RAMCriticalThreshold  = 90.0
	DiskWarningThreshold  = 80.0
	DiskCriticalThreshold = 90.0

	// Absolute floor: warn once less than 5GB of disk remains even when
	// the percentage looks fine.
	diskFreeFloorGB = 5.0
)

type CheckResult struct {
	Name   string
	Value  float64
	Status string
}

func getStatus(value, warning, critical float64) string {
	if value > critical {
		return StatusCritical
	}
	if value > warning {
		return StatusWarning
	}
	return StatusHealthy
}

// Evaluate grades a snapshot against the fixed thresholds.
func Evaluate(s *collector.Snapshot) []CheckResult {
	var results []CheckResult

	results = append(results, CheckResult{
		Name:   "CPU Usage",
		Value:  s.CPUUsage,
		Status: getStatus(s.CPUUsage, CPUWarningThreshold, CPUCriticalThreshold),
	})

	results = append(results, CheckResult{
		Name:   "RAM Usage",
		Value:  s.RAMUsage,
		Status: getStatus(s.RAMUsage, RAMWarningThreshold, RAMCriticalThreshold),
	})

	diskStatus := getStatus(s.DiskUsage, DiskWarningThreshold, DiskCriticalThreshold)
	if s.DiskFreeGB < diskFreeFloorGB && diskStatus == StatusHealthy {
		diskStatus = StatusWarning
	}
	results = append(results, CheckResult{
		Name:   "Disk Usage",
		Value:  s.DiskUsage,
		Status: diskStatus,
	})

	return results
}
