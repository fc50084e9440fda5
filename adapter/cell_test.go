package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cellClickedPayload is a structurally complete native cell event,
// including the internal handles a real widget attaches.
func cellClickedPayload() map[string]interface{} {
	return map[string]interface{}{
		"type":      "cellClicked",
		"rowIndex":  float64(3),
		"rowPinned": nil,
		"value":     "Ada Brook",
		"data":      map[string]interface{}{"name": "Ada Brook", "age": float64(31)},
		"colDef":    map[string]interface{}{"field": "name", "sortable": true},
		"context":   map[string]interface{}{"internal": true},
		"api":       map[string]interface{}{"handle": "live"},
		"columnApi": map[string]interface{}{"handle": "live"},
		"column":    map[string]interface{}{"colId": "name"},
		"node":      map[string]interface{}{"id": "0"},
		"event":     map[string]interface{}{"clientX": float64(10)},
		"eventPath": []interface{}{"div", "body"},
	}
}

func TestCellInteractionStripsHandles(t *testing.T) {
	got := (&CellInteraction{}).Adapt(native(t, "cellClicked", cellClickedPayload()), nil)

	require.Len(t, got, 1)
	m, ok := got[0].(map[string]interface{})
	require.True(t, ok)

	for _, k := range []string{"context", "api", "columnApi", "column", "node", "event", "eventPath", "colDef"} {
		assert.NotContains(t, m, k)
	}

	assert.Equal(t, "cellClicked", m["type"])
	assert.Equal(t, float64(3), m["rowIndex"])
	assert.Equal(t, "Ada Brook", m["value"])
	assert.Equal(t, "name", m["field"])
	assert.Equal(t, map[string]interface{}{"name": "Ada Brook", "age": float64(31)}, m["data"])
}

func TestCellInteractionWithoutColDef(t *testing.T) {
	got := (&CellInteraction{}).Adapt(native(t, "cellClicked", map[string]interface{}{
		"type":     "cellClicked",
		"rowIndex": float64(0),
	}), nil)

	m := got[0].(map[string]interface{})
	assert.NotContains(t, m, "field")
}

func TestCellValueChanged(t *testing.T) {
	got := (&CellValue{}).Adapt(native(t, "cellValueChanged", map[string]interface{}{
		"rowIndex": float64(2),
		"colDef":   map[string]interface{}{"field": "age"},
		"newValue": float64(31),
		"oldValue": float64(30),
		"api":      map[string]interface{}{"handle": "live"},
	}), nil)

	assert.Equal(t, 2, got[0])
	assert.Equal(t, "age", got[1])
	assert.Equal(t, float64(31), got[2])
}

func TestCellValueChangedMissingFields(t *testing.T) {
	got := (&CellValue{}).Adapt(native(t, "cellValueChanged", map[string]interface{}{}), nil)

	require.Len(t, got, 3)
	assert.Equal(t, 0, got[0])
	assert.Equal(t, "", got[1])
	assert.Nil(t, got[2])
}

func TestCellEditing(t *testing.T) {
	payload := map[string]interface{}{
		"rowIndex": float64(5),
		"colDef":   map[string]interface{}{"field": "role"},
		"value":    "Designer",
	}

	for _, name := range []string{"cellEditingStarted", "cellEditingStopped"} {
		got := (&CellEditing{}).Adapt(native(t, name, payload), nil)
		assert.Equal(t, 5, got[0])
		assert.Equal(t, "role", got[1])
		assert.Equal(t, "Designer", got[2])
	}
}

func TestCellFocused(t *testing.T) {
	got := (&CellFocus{}).Adapt(native(t, "cellFocused", map[string]interface{}{
		"rowIndex": float64(7),
		"column":   map[string]interface{}{"colId": "office"},
	}), nil)

	assert.Equal(t, 7, got[0])
	assert.Equal(t, "office", got[1])
}

func TestCellFocusedNoColumn(t *testing.T) {
	got := (&CellFocus{}).Adapt(native(t, "cellFocused", map[string]interface{}{
		"rowIndex": float64(7),
		"column":   nil,
	}), nil)

	assert.Equal(t, 7, got[0])
	assert.Nil(t, got[1])
}
