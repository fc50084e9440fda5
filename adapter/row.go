package adapter

import (
	"github.com/pdl-lex/gridbridge/event"
	"github.com/pdl-lex/gridbridge/internal/fieldset"
)

// RowInteraction adapts rowClicked and rowDoubleClicked. The payload is a
// single allow-listed mapping; internal handles (context, api, source,
// node, event, eventPath) never appear.
type RowInteraction struct{}

func (a *RowInteraction) Adapt(e event.Native, api API) event.Payload {
	return event.Payload{fieldset.Pick(e.PayloadMap(), fieldset.RowFields)}
}

// RowSelected adapts rowSelected: (row data, whether the row is now
// selected, row index). The shim flattens node.isSelected() into the
// "selected" field before the event crosses the boundary.
type RowSelected struct{}

func (a *RowSelected) Adapt(e event.Native, api API) event.Payload {
	m := e.PayloadMap()
	return event.Payload{
		m["data"],
		fieldset.Bool(m["selected"]),
		fieldset.Int(m["rowIndex"]),
	}
}

// RowEditing adapts rowEditingStarted and rowEditingStopped:
// (rowIndex, full row data).
type RowEditing struct{}

func (a *RowEditing) Adapt(e event.Native, api API) event.Payload {
	m := e.PayloadMap()
	return event.Payload{fieldset.Int(m["rowIndex"]), m["data"]}
}
