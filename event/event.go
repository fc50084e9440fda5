package event

import (
	"encoding/json"

	intjson "github.com/pdl-lex/gridbridge/internal/json"
)

// Native represents a native grid event as received from the browser
// shim: [eventName, gridId, payload, state, ts]
type Native struct {
	Name    string
	GridID  string
	Payload json.RawMessage // raw JSON for flexible handling
	State   json.RawMessage // nullable; live grid state captured at event time
	TS      int64
}

// PayloadMap decodes the payload as an object. Returns nil when the
// payload is empty, null, or not an object.
func (e Native) PayloadMap() map[string]interface{} {
	if len(e.Payload) == 0 || string(e.Payload) == "null" {
		return nil
	}
	var m map[string]interface{}
	if err := intjson.Unmarshal(e.Payload, &m); err != nil {
		return nil
	}
	return m
}

// PayloadValue decodes the payload as an arbitrary JSON value.
func (e Native) PayloadValue() interface{} {
	if len(e.Payload) == 0 || string(e.Payload) == "null" {
		return nil
	}
	var v interface{}
	if err := intjson.Unmarshal(e.Payload, &v); err != nil {
		return nil
	}
	return v
}

// Payload is the ordered, fixed-arity tuple of plain values delivered to
// an application handler. Shape and arity never vary per event type.
type Payload []interface{}

// Adapted pairs an event with its adapted payload, for capture/replay output.
type Adapted struct {
	Name    string  `json:"n"`
	GridID  string  `json:"g,omitempty"`
	Payload Payload `json:"p,omitempty"`
	TS      int64   `json:"ts,omitempty"`
}
