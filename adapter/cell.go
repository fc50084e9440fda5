package adapter

import (
	"github.com/mitchellh/mapstructure"

	"github.com/pdl-lex/gridbridge/event"
	"github.com/pdl-lex/gridbridge/internal/fieldset"
)

// CellInteraction adapts cellClicked and cellDoubleClicked. The payload is
// a single allow-listed mapping; internal handles (context, api,
// columnApi, column, node, event, eventPath) never appear.
type CellInteraction struct{}

func (a *CellInteraction) Adapt(e event.Native, api API) event.Payload {
	m := e.PayloadMap()
	out := fieldset.Pick(m, fieldset.CellFields)
	if f := fieldset.Field(m); f != "" {
		out["field"] = f
	}
	return event.Payload{out}
}

// CellFocus adapts cellFocused: (rowIndex, colId or nil when no column
// has focus).
type CellFocus struct{}

func (a *CellFocus) Adapt(e event.Native, api API) event.Payload {
	m := e.PayloadMap()

	var colID interface{}
	if id := fieldset.ColID(m["column"]); id != "" {
		colID = id
	}

	return event.Payload{fieldset.Int(m["rowIndex"]), colID}
}

// cellChange is the extraction target for value-change and editing events.
type cellChange struct {
	RowIndex int `mapstructure:"rowIndex"`
	ColDef   struct {
		Field string `mapstructure:"field"`
	} `mapstructure:"colDef"`
	NewValue interface{} `mapstructure:"newValue"`
	Value    interface{} `mapstructure:"value"`
}

func decodeCellChange(e event.Native) cellChange {
	var c cellChange
	// Decode errors leave c zero-valued; arity is preserved regardless.
	_ = mapstructure.WeakDecode(e.PayloadMap(), &c)
	return c
}

// CellValue adapts cellValueChanged: (rowIndex, colDef.field, newValue).
type CellValue struct{}

func (a *CellValue) Adapt(e event.Native, api API) event.Payload {
	c := decodeCellChange(e)
	return event.Payload{c.RowIndex, c.ColDef.Field, c.NewValue}
}

// CellEditing adapts cellEditingStarted and cellEditingStopped:
// (rowIndex, colDef.field, value).
type CellEditing struct{}

func (a *CellEditing) Adapt(e event.Native, api API) event.Payload {
	c := decodeCellChange(e)
	return event.Payload{c.RowIndex, c.ColDef.Field, c.Value}
}
