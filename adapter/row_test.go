package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowInteractionStripsHandles(t *testing.T) {
	got := (&RowInteraction{}).Adapt(native(t, "rowClicked", map[string]interface{}{
		"type":      "rowClicked",
		"rowIndex":  float64(1),
		"rowPinned": "top",
		"data":      map[string]interface{}{"name": "Ben Ito"},
		"context":   map[string]interface{}{"internal": true},
		"api":       map[string]interface{}{"handle": "live"},
		"source":    map[string]interface{}{"internal": true},
		"node":      map[string]interface{}{"id": "1"},
		"event":     map[string]interface{}{"clientY": float64(4)},
		"eventPath": []interface{}{"div"},
	}), nil)

	require.Len(t, got, 1)
	m := got[0].(map[string]interface{})

	for _, k := range []string{"context", "api", "source", "node", "event", "eventPath"} {
		assert.NotContains(t, m, k)
	}
	assert.Equal(t, "rowClicked", m["type"])
	assert.Equal(t, float64(1), m["rowIndex"])
	assert.Equal(t, "top", m["rowPinned"])
	assert.Equal(t, map[string]interface{}{"name": "Ben Ito"}, m["data"])
}

func TestRowSelected(t *testing.T) {
	got := (&RowSelected{}).Adapt(native(t, "rowSelected", map[string]interface{}{
		"data":     map[string]interface{}{"name": "Carla Mendez"},
		"selected": true,
		"rowIndex": float64(2),
	}), nil)

	require.Len(t, got, 3)
	assert.Equal(t, map[string]interface{}{"name": "Carla Mendez"}, got[0])
	assert.Equal(t, true, got[1])
	assert.Equal(t, 2, got[2])
}

func TestRowEditing(t *testing.T) {
	payload := map[string]interface{}{
		"rowIndex": float64(4),
		"data":     map[string]interface{}{"name": "Dev Patel", "age": float64(28)},
	}

	for _, name := range []string{"rowEditingStarted", "rowEditingStopped"} {
		got := (&RowEditing{}).Adapt(native(t, name, payload), nil)
		require.Len(t, got, 2)
		assert.Equal(t, 4, got[0])
		assert.Equal(t, payload["data"], got[1])
	}
}
