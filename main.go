package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"pullview/internal/collector"
	"pullview/internal/engine"
	"pullview/internal/output"
	"pullview/ui/console"
	"pullview/ui/tui"
)

func main() {
	once := flag.Bool("once", false, "print one report and exit instead of starting the TUI")
	flag.Parse()

	var provider collector.StatsProvider = collector.SystemCollector{}

	if *once {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		snap, err := provider.Snapshot(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error collecting metrics: %v\n", err)
			os.Exit(1)
		}
		console.Print(os.Stdout, output.BuildReport(snap, engine.Evaluate(snap)))
		return
	}

	if err := tui.Start(provider); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
