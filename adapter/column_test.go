package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnStructuralFlattensColumns(t *testing.T) {
	got := (&ColumnStructural{}).Adapt(native(t, "columnResized", map[string]interface{}{
		"type":     "columnResized",
		"finished": true,
		"column":   map[string]interface{}{"colId": "age", "sort": nil},
		"columns": []interface{}{
			map[string]interface{}{"colId": "age"},
			map[string]interface{}{"colId": "name"},
		},
		"api":       map[string]interface{}{"handle": "live"},
		"columnApi": map[string]interface{}{"handle": "live"},
		"source":    "uiColumnResized",
	}), nil)

	require.Len(t, got, 1)
	m := got[0].(map[string]interface{})

	for _, k := range []string{"api", "columnApi", "source"} {
		assert.NotContains(t, m, k)
	}
	assert.Equal(t, "columnResized", m["type"])
	assert.Equal(t, true, m["finished"])
	assert.Equal(t, "age", m["column"])
	assert.Equal(t, []string{"age", "name"}, m["columns"])
}

func TestColumnStructuralNoColumn(t *testing.T) {
	got := (&ColumnStructural{}).Adapt(native(t, "columnMoved", map[string]interface{}{
		"type":     "columnMoved",
		"finished": false,
	}), nil)

	require.Len(t, got, 1)
	m := got[0].(map[string]interface{})
	assert.NotContains(t, m, "column")
	assert.NotContains(t, m, "columns")
	assert.Equal(t, false, m["finished"])
}
