package adapter

import (
	"github.com/pdl-lex/gridbridge/event"
	"github.com/pdl-lex/gridbridge/internal/fieldset"
)

// SelectionChanged adapts selectionChanged: (selected rows, change
// source, change type). The selected rows always come from the live API
// at call time — never from the event payload, which may be stale.
type SelectionChanged struct{}

func (a *SelectionChanged) Adapt(e event.Native, api API) event.Payload {
	rows := []map[string]interface{}{}
	if api != nil {
		if r := api.SelectedRows(); r != nil {
			rows = r
		}
	}

	m := e.PayloadMap()
	return event.Payload{
		rows,
		fieldset.String(m["source"]),
		fieldset.String(m["type"]),
	}
}
