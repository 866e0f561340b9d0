package metrics

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestCollectorStagesSumBelowTotal(t *testing.T) {
	c := NewCollector()
	time.Sleep(time.Millisecond)
	c.DecodeDone()
	c.ResizeDone()
	c.InterleaveDone()
	c.CommitDone()
	c.EncodeDone()

	tm := c.Timings()
	if tm.Decode < time.Millisecond {
		t.Errorf("Decode = %v, expected at least 1ms", tm.Decode)
	}
	sum := tm.Decode + tm.Resize + tm.Interleave + tm.Commit + tm.Encode
	if sum > tm.Total {
		t.Errorf("stage sum %v exceeds total %v", sum, tm.Total)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := map[time.Duration]string{
		500 * time.Nanosecond:   "500ns",
		1500 * time.Nanosecond:  "1.50µs",
		2 * time.Millisecond:    "2.00ms",
		1500 * time.Millisecond: "1.500s",
	}
	for d, want := range tests {
		if got := formatDuration(d); got != want {
			t.Errorf("formatDuration(%v) = %q, want %q", d, got, want)
		}
	}
}

func TestPrintTimings(t *testing.T) {
	var buf bytes.Buffer
	PrintTimings(&buf, Timings{Decode: time.Millisecond, Total: 2 * time.Millisecond})
	out := buf.String()
	for _, want := range []string{"Decode", "Encode", "Total", "50.0%"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
