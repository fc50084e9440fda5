// Package processor replays captured grid sessions offline: every
// envelope in a capture file is run through the same adapters the bridge
// uses live, and the adapted payloads are written out as JSONL. Useful
// for inspecting what an application handler would have received.
package processor

import (
	"io"

	"github.com/pdl-lex/gridbridge/adapter"
	"github.com/pdl-lex/gridbridge/event"
	"github.com/pdl-lex/gridbridge/internal/countio"
)

// Pipeline adapts captured Native events and outputs Adapted events
type Pipeline struct {
	reader   *event.Reader
	writer   *event.Writer
	registry *adapter.Registry
	counter  countio.Counter
	count    int
}

// NewPipeline creates a new replay pipeline
func NewPipeline(reader *event.Reader, w io.Writer, pretty bool) *Pipeline {
	p := &Pipeline{
		reader:   reader,
		registry: adapter.NewRegistry(),
	}
	p.writer = event.NewWriter(p.counter.Writer(w), pretty)
	return p
}

// Run processes all captured events
func (p *Pipeline) Run() error {
	for _, raw := range p.reader.AllEvents() {
		adapted, err := p.adaptEvent(raw)
		if err != nil {
			return err
		}
		if err := p.writer.Write(adapted); err != nil {
			return err
		}
		p.count++
	}
	return nil
}

// EventCount returns the number of events replayed.
func (p *Pipeline) EventCount() int {
	return p.count
}

// OutputBytes returns the number of bytes written.
func (p *Pipeline) OutputBytes() int64 {
	return p.counter.Out()
}

func (p *Pipeline) adaptEvent(raw event.Native) (event.Adapted, error) {
	snap, err := adapter.NewSnapshot(raw.State)
	if err != nil {
		return event.Adapted{}, err
	}

	payload := p.registry.Get(raw.Name).Adapt(raw, snap)

	return event.Adapted{
		Name:    raw.Name,
		GridID:  raw.GridID,
		Payload: payload,
		TS:      raw.TS,
	}, nil
}
