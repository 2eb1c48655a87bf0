package collector

import (
	"context"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"
)

// Snapshot is one reading of the metrics shown in the feed.
type Snapshot struct {
	Hostname string
	Uptime   time.Duration

	CPUUsage   float64 // overall utilization percentage (0-100)
	CPUPerCore []float64
	LoadAvg1   float64

	RAMUsage   float64
	RAMUsedGB  float64
	RAMTotalGB float64

	DiskUsage   float64
	DiskFreeGB  float64
	DiskTotalGB float64

	Taken time.Time
}

// StatsProvider is the contract the UI refreshes against. The TUI's
// pull-to-refresh callback calls Snapshot off the update loop.
type StatsProvider interface {
	Snapshot(ctx context.Context) (*Snapshot, error)
}

// SystemCollector reads live metrics via gopsutil.
type SystemCollector struct{}

type cpuReading struct {
	total   float64
	perCore []float64
	err     error
}

// Snapshot gathers the sensor groups concurrently. CPU sampling blocks
// for its measurement interval, so the others run alongside it.
func (s SystemCollector) Snapshot(ctx context.Context) (*Snapshot, error) {
	snap := &Snapshot{Taken: time.Now()}

	cpuCh := make(chan cpuReading, 1)
	go func() {
		total, err := cpu.PercentWithContext(ctx, 200*time.Millisecond, false)
		if err != nil {
			cpuCh <- cpuReading{err: err}
			return
		}
		perCore, err := cpu.PercentWithContext(ctx, 0, true)
		r := cpuReading{perCore: perCore, err: err}
		if len(total) > 0 {
			r.total = total[0]
		}
		cpuCh <- r
	}()

	var wg sync.WaitGroup
	wg.Add(4)

	go func() {
		defer wg.Done()
		if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil {
			snap.RAMUsage = vm.UsedPercent
			snap.RAMUsedGB = float64(vm.Used) / (1 << 30)
			snap.RAMTotalGB = float64(vm.Total) / (1 << 30)
		}
	}()

	go func() {
		defer wg.Done()
		if du, err := disk.UsageWithContext(ctx, "/"); err == nil {
			snap.DiskUsage = du.UsedPercent
			snap.DiskFreeGB = float64(du.Free) / (1 << 30)
			snap.DiskTotalGB = float64(du.Total) / (1 << 30)
		}
	}()

	go func() {
		defer wg.Done()
		if avg, err := load.AvgWithContext(ctx); err == nil {
			snap.LoadAvg1 = avg.Load1
		}
	}()

	go func() {
		defer wg.Done()
		if info, err := host.InfoWithContext(ctx); err == nil {
			snap.Hostname = info.Hostname
			snap.Uptime = time.Duration(info.Uptime) * time.Second
		}
	}()

	wg.Wait()

	r := <-cpuCh
	if r.err != nil {
		return nil, r.err
	}
	snap.CPUUsage = r.total
	snap.CPUPerCore = r.perCore
	return snap, nil
}
