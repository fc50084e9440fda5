package event

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	intjson "github.com/pdl-lex/gridbridge/internal/json"
)

// Decode parses a single wire message: [name, gridId, payload, state, ts]
func Decode(data []byte) (Native, error) {
	var raw []json.RawMessage
	if err := intjson.Unmarshal(data, &raw); err != nil {
		return Native{}, fmt.Errorf("parsing event: %w", err)
	}
	return decodeParts(raw)
}

func decodeParts(raw []json.RawMessage) (Native, error) {
	if len(raw) < 5 {
		return Native{}, fmt.Errorf("array has %d elements, need 5", len(raw))
	}

	var e Native

	if err := intjson.Unmarshal(raw[0], &e.Name); err != nil {
		return Native{}, fmt.Errorf("parsing event name: %w", err)
	}
	if err := intjson.Unmarshal(raw[1], &e.GridID); err != nil {
		return Native{}, fmt.Errorf("parsing grid id: %w", err)
	}

	e.Payload = raw[2]
	if string(raw[3]) != "null" {
		e.State = raw[3]
	}

	if err := intjson.Unmarshal(raw[4], &e.TS); err != nil {
		return Native{}, fmt.Errorf("parsing timestamp: %w", err)
	}

	return e, nil
}

// Reader reads Native events from a capture file (a stream of JSON arrays)
type Reader struct {
	events []Native
}

// NewReaderFromFile creates a Reader from a file path
func NewReaderFromFile(path string) (*Reader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	return NewReader(data)
}

// NewReader creates a Reader from raw bytes
func NewReader(data []byte) (*Reader, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return &Reader{events: []Native{}}, nil
	}

	if data[0] != '[' {
		return nil, fmt.Errorf("expected JSON array, got: %c", data[0])
	}

	var events []Native
	decoder := json.NewDecoder(bytes.NewReader(data))

	eventNum := 0
	for decoder.More() {
		eventNum++
		var raw []json.RawMessage
		if err := decoder.Decode(&raw); err != nil {
			return nil, fmt.Errorf("event %d: %w", eventNum, err)
		}

		e, err := decodeParts(raw)
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", eventNum, err)
		}
		events = append(events, e)
	}

	return &Reader{events: events}, nil
}

// AllEvents returns all events as a slice
func (r *Reader) AllEvents() []Native {
	return r.events
}

// Writer writes Adapted events as JSONL
type Writer struct {
	w      io.Writer
	pretty bool
}

// NewWriter creates a new Writer
func NewWriter(w io.Writer, pretty bool) *Writer {
	return &Writer{w: w, pretty: pretty}
}

// Write outputs an Adapted event as JSON
func (w *Writer) Write(e Adapted) error {
	var data []byte
	var err error

	if w.pretty {
		data, err = intjson.MarshalIndent(e, "", "  ")
	} else {
		data, err = intjson.Marshal(e)
	}

	if err != nil {
		return err
	}

	_, err = w.w.Write(append(data, '\n'))
	return err
}
