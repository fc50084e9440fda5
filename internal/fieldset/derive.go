package fieldset

// Derivation helpers for fields that live inside nested widget objects
// (colDef, column) or arrive with JSON's loose numeric typing.

// Field extracts colDef.field from an event payload map.
func Field(m map[string]interface{}) string {
	colDef, ok := m["colDef"].(map[string]interface{})
	if !ok {
		return ""
	}
	f, _ := colDef["field"].(string)
	return f
}

// ColID extracts the colId of a column object.
func ColID(v interface{}) string {
	col, ok := v.(map[string]interface{})
	if !ok {
		return ""
	}
	id, _ := col["colId"].(string)
	return id
}

// ColIDs extracts the colIds of a list of column objects, skipping
// entries without one.
func ColIDs(v interface{}) []string {
	cols, ok := v.([]interface{})
	if !ok {
		return nil
	}
	ids := make([]string, 0, len(cols))
	for _, c := range cols {
		if id := ColID(c); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// Int coerces a decoded JSON value to int. JSON numbers decode as
// float64; anything else yields 0.
func Int(v interface{}) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	case int64:
		return int(n)
	}
	return 0
}

// Bool coerces a decoded JSON value to bool.
func Bool(v interface{}) bool {
	b, _ := v.(bool)
	return b
}

// String coerces a decoded JSON value to string.
func String(v interface{}) string {
	s, _ := v.(string)
	return s
}
