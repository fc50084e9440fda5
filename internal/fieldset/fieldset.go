package fieldset

// Allow-lists for the event categories that forward a filtered mapping.
// Native grid events carry live handles back into the widget's internals
// (api, columnApi, column objects, DOM nodes, the raw browser event);
// only the fields named here ever cross the boundary.

// CellFields lists the serializable fields of cell interaction events.
var CellFields = []string{"rowIndex", "rowPinned", "value", "data", "type"}

// RowFields lists the serializable fields of row interaction events.
var RowFields = []string{"rowIndex", "rowPinned", "data", "type"}

// ColumnFields lists the serializable fields of column structural events
// (resize, move, visibility, pin).
var ColumnFields = []string{"type", "finished"}

// Pick projects m onto the allowed field names. Fields absent from m are
// simply not present in the result; nothing outside allowed survives.
func Pick(m map[string]interface{}, allowed []string) map[string]interface{} {
	result := make(map[string]interface{}, len(allowed))
	for _, k := range allowed {
		if v, ok := m[k]; ok {
			result[k] = v
		}
	}
	return result
}
