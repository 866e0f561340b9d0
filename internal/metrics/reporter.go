package metrics

import (
	"fmt"
	"io"
	"time"
)

// PrintTimings writes a stage timing table to w.
func PrintTimings(w io.Writer, t Timings) {
	rows := []struct {
		name string
		d    time.Duration
	}{
		{"Decode", t.Decode},
		{"Resize", t.Resize},
		{"Interleave", t.Interleave},
		{"Commit", t.Commit},
		{"Encode", t.Encode},
	}

	fmt.Fprintln(w, "┌────────────┬────────────┬─────────┐")
	fmt.Fprintf(w, "│ %-10s │ %-10s │ %-7s │\n", "Stage", "Time", "Share")
	fmt.Fprintln(w, "├────────────┼────────────┼─────────┤")
	for _, r := range rows {
		share := 0.0
		if t.Total > 0 {
			share = float64(r.d) / float64(t.Total) * 100
		}
		fmt.Fprintf(w, "│ %-10s │ %10s │ %6.1f%% │\n", r.name, formatDuration(r.d), share)
	}
	fmt.Fprintln(w, "├────────────┼────────────┼─────────┤")
	fmt.Fprintf(w, "│ %-10s │ %10s │ %6.1f%% │\n", "Total", formatDuration(t.Total), 100.0)
	fmt.Fprintln(w, "└────────────┴────────────┴─────────┘")
}

// formatDuration picks a unit so the magnitude stays readable.
func formatDuration(d time.Duration) string {
	switch {
	case d < time.Microsecond:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	case d < time.Millisecond:
		return fmt.Sprintf("%.2fµs", float64(d.Nanoseconds())/1e3)
	case d < time.Second:
		return fmt.Sprintf("%.2fms", float64(d.Nanoseconds())/1e6)
	default:
		return fmt.Sprintf("%.3fs", d.Seconds())
	}
}
