package state

import (
	"time"

	"pullview/internal/collector"
	"pullview/internal/engine"
)

type Page int

const (
	PageMenu Page = iota
	PageFeed // pull-to-refresh stats feed
	PageAbout
)

// AppState holds the current snapshot of the demo application.
type AppState struct {
	Stats       *collector.Snapshot
	Results     []engine.CheckResult
	LastUpdate  time.Time
	Err         error
	CPUHistory  []float64
	FeedLines   []string
	OlderLoaded int // batches of older history appended so far
	CurrentPage Page
}
