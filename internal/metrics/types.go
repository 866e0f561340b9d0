package metrics

import "time"

// Timings holds the wall time spent in each stage of one pipeline run.
type Timings struct {
	Decode     time.Duration
	Resize     time.Duration
	Interleave time.Duration
	Commit     time.Duration
	Encode     time.Duration
	Total      time.Duration
}

// Collector measures stages as they complete.
type Collector struct {
	timings Timings
	start   time.Time
	mark    time.Time
}

// NewCollector starts timing a run.
func NewCollector() *Collector {
	now := time.Now()
	return &Collector{start: now, mark: now}
}

// lap returns the time since the previous lap and resets the mark.
func (c *Collector) lap() time.Duration {
	now := time.Now()
	d := now.Sub(c.mark)
	c.mark = now
	return d
}

// DecodeDone charges the time since the last mark to decoding.
func (c *Collector) DecodeDone() { c.timings.Decode += c.lap() }

// ResizeDone charges the time since the last mark to resizing.
func (c *Collector) ResizeDone() { c.timings.Resize += c.lap() }

// InterleaveDone charges the time since the last mark to flattening and
// interleaving.
func (c *Collector) InterleaveDone() { c.timings.Interleave += c.lap() }

// CommitDone charges the time since the last mark to the buffer commit.
func (c *Collector) CommitDone() { c.timings.Commit += c.lap() }

// EncodeDone charges the time since the last mark to encoding.
func (c *Collector) EncodeDone() { c.timings.Encode += c.lap() }

// Timings returns the stage durations with Total measured up to now.
func (c *Collector) Timings() Timings {
	t := c.timings
	t.Total = time.Since(c.start)
	return t
}
