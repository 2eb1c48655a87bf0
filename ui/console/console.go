package console

import (
	"fmt"
	"io"

	"pullview/internal/engine"
	"pullview/internal/output"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
)

// Print renders a one-shot report to the writer, no TUI involved.
func Print(w io.Writer, r output.Report) {
	fmt.Fprintf(w, "%s■ %s @ %s%s\n", colorCyan, r.Hostname, r.Taken.Format("15:04:05"), colorReset)
	for _, l := range r.Lines {
		fmt.Fprintf(w, "  %s%-4s%s %-12s %s\n", colorFor(l.Status), l.Status, colorReset, l.Label, l.Value)
	}
}

func colorFor(status string) string {
	switch status {
	case engine.StatusCritical:
		return colorRed
	case engine.StatusWarning:
		return colorYellow
	default:
		return colorGreen
	}
}
