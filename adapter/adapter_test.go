package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdl-lex/gridbridge/event"
	intjson "github.com/pdl-lex/gridbridge/internal/json"
)

// native builds a Native event with the given payload object.
func native(t *testing.T, name string, payload map[string]interface{}) event.Native {
	t.Helper()
	data, err := intjson.Marshal(payload)
	require.NoError(t, err)
	return event.Native{Name: name, GridID: "grid-test", Payload: data, TS: 1700000000000}
}

func TestRegistryExactMatch(t *testing.T) {
	r := NewRegistry()

	assert.IsType(t, &CellInteraction{}, r.Get("cellClicked"))
	assert.IsType(t, &CellInteraction{}, r.Get("cellDoubleClicked"))
	assert.IsType(t, &SelectionChanged{}, r.Get("selectionChanged"))
	assert.IsType(t, &SortChanged{}, r.Get("sortChanged"))
	assert.IsType(t, &PaginationChanged{}, r.Get("paginationChanged"))
	assert.IsType(t, &ColumnStructural{}, r.Get("columnPinned"))
	assert.IsType(t, &Passthrough{}, r.Get("gridReady"))
}

func TestRegistryPrefixMatch(t *testing.T) {
	r := NewRegistry()

	assert.IsType(t, &CellEditing{}, r.Get("cellEditingStarted"))
	assert.IsType(t, &CellEditing{}, r.Get("cellEditingStopped"))
	assert.IsType(t, &RowEditing{}, r.Get("rowEditingStarted"))
	assert.IsType(t, &BodyScroll{}, r.Get("bodyScroll"))
	assert.IsType(t, &BodyScroll{}, r.Get("bodyScrollEnd"))
}

func TestRegistrySuffixMatch(t *testing.T) {
	r := NewRegistry()
	custom := Func(func(e event.Native, api API) event.Payload {
		return event.Payload{"custom"}
	})
	r.RegisterSuffix("Custom", custom)

	got := r.Get("somethingCustom").Adapt(event.Native{}, nil)
	assert.Equal(t, event.Payload{"custom"}, got)
}

func TestRegistryFallbackIsPassthrough(t *testing.T) {
	r := NewRegistry()
	assert.IsType(t, &Passthrough{}, r.Get("someFutureEvent"))
}

// Arity and field order are fixed per category, whatever the native
// event carries.
func TestPayloadArityInvariant(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		name  string
		arity int
	}{
		{"cellClicked", 1},
		{"cellDoubleClicked", 1},
		{"cellFocused", 2},
		{"cellValueChanged", 3},
		{"cellEditingStarted", 3},
		{"cellEditingStopped", 3},
		{"rowClicked", 1},
		{"rowDoubleClicked", 1},
		{"rowEditingStarted", 2},
		{"rowEditingStopped", 2},
		{"rowSelected", 3},
		{"selectionChanged", 3},
		{"columnResized", 1},
		{"columnMoved", 1},
		{"columnVisible", 1},
		{"columnPinned", 1},
		{"sortChanged", 1},
		{"filterChanged", 1},
		{"paginationChanged", 3},
		{"bodyScroll", 3},
		{"bodyScrollEnd", 3},
		{"gridSizeChanged", 2},
		{"gridReady", 1},
		{"modelUpdated", 1},
	}

	payloads := []map[string]interface{}{
		nil,
		{},
		{"rowIndex": 4.0, "data": map[string]interface{}{"a": 1.0}, "unrelated": "x"},
	}

	for _, tt := range tests {
		a := r.Get(tt.name)
		for _, p := range payloads {
			got := a.Adapt(native(t, tt.name, p), &Snapshot{})
			assert.Len(t, got, tt.arity, "event %s payload %v", tt.name, p)
		}
	}
}

func TestPassthroughIdentity(t *testing.T) {
	payload := map[string]interface{}{
		"type":   "gridReady",
		"nested": map[string]interface{}{"a": float64(1), "b": []interface{}{"x", "y"}},
	}

	got := (&Passthrough{}).Adapt(native(t, "gridReady", payload), nil)

	require.Len(t, got, 1)
	assert.Equal(t, payload, got[0])
}

func TestPassthroughNullPayload(t *testing.T) {
	e := event.Native{Name: "modelUpdated", Payload: []byte("null")}
	got := (&Passthrough{}).Adapt(e, nil)

	require.Len(t, got, 1)
	assert.Nil(t, got[0])
}
