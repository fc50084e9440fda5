package adapter

import (
	"github.com/pdl-lex/gridbridge/event"
	"github.com/pdl-lex/gridbridge/internal/fieldset"
)

// ColumnStructural adapts columnResized, columnMoved, columnVisible and
// columnPinned. The payload is a single allow-listed mapping with the
// affected column ids derived from the column object(s); the objects
// themselves (and context, api, columnApi, source) never appear.
type ColumnStructural struct{}

func (a *ColumnStructural) Adapt(e event.Native, api API) event.Payload {
	m := e.PayloadMap()
	out := fieldset.Pick(m, fieldset.ColumnFields)

	if id := fieldset.ColID(m["column"]); id != "" {
		out["column"] = id
	}
	if ids := fieldset.ColIDs(m["columns"]); len(ids) > 0 {
		out["columns"] = ids
	}

	return event.Payload{out}
}
