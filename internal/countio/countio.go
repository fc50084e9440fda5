// Package countio tracks bytes crossing a shim connection.
package countio

import (
	"io"
	"sync/atomic"
)

// Counter accumulates byte totals for both directions of a connection.
type Counter struct {
	in  atomic.Int64
	out atomic.Int64
}

// AddIn records n received bytes.
func (c *Counter) AddIn(n int) { c.in.Add(int64(n)) }

// In returns total received bytes.
func (c *Counter) In() int64 { return c.in.Load() }

// Out returns total sent bytes.
func (c *Counter) Out() int64 { return c.out.Load() }

// Writer wraps w, adding everything written to the counter's out total.
func (c *Counter) Writer(w io.Writer) io.Writer {
	return &countWriter{w: w, c: c}
}

type countWriter struct {
	w io.Writer
	c *Counter
}

func (cw *countWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.c.out.Add(int64(n))
	return n, err
}
