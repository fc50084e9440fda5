package gridbridge

import (
	"github.com/pdl-lex/gridbridge/adapter"
	"github.com/pdl-lex/gridbridge/event"
)

// Handlers holds the typed event callbacks an application registers on a
// grid component. Every field matches one adapted event category; unset
// fields drop their events.
type Handlers struct {
	// Lifecycle (payload is the native event, unchanged)
	GridReady               func(e interface{})
	GridPreDestroyed        func(e interface{})
	FirstDataRendered       func(e interface{})
	RowDataUpdated          func(e interface{})
	NewColumnsLoaded        func(e interface{})
	DisplayedColumnsChanged func(e interface{})
	ModelUpdated            func(e interface{})
	ViewportChanged         func(e interface{})

	// Cell
	CellClicked        func(cell map[string]interface{})
	CellDoubleClicked  func(cell map[string]interface{})
	// CellFocused receives a nil colID when no column has focus.
	CellFocused        func(rowIndex int, colID *string)
	CellValueChanged   func(rowIndex int, field string, value interface{})
	CellEditingStarted func(rowIndex int, field string, value interface{})
	CellEditingStopped func(rowIndex int, field string, value interface{})

	// Row
	RowClicked        func(row map[string]interface{})
	RowDoubleClicked  func(row map[string]interface{})
	RowSelected       func(data map[string]interface{}, selected bool, rowIndex int)
	SelectionChanged  func(rows []map[string]interface{}, source, eventType string)
	RowEditingStarted func(rowIndex int, data map[string]interface{})
	RowEditingStopped func(rowIndex int, data map[string]interface{})

	// Column
	ColumnResized func(change map[string]interface{})
	ColumnMoved   func(change map[string]interface{})
	ColumnVisible func(change map[string]interface{})
	ColumnPinned  func(change map[string]interface{})

	// Sorting, filtering, pagination
	SortChanged       func(entries []adapter.SortEntry)
	FilterChanged     func(model map[string]interface{})
	PaginationChanged func(page, totalPages, pageSize int)

	// Scroll & layout
	BodyScroll      func(direction string, left, top float64)
	BodyScrollEnd   func(direction string, left, top float64)
	GridSizeChanged func(width, height int)
}

func (h *Handlers) dispatch(name string, p event.Payload) {
	switch name {
	case "gridReady":
		call1(h.GridReady, p)
	case "gridPreDestroyed":
		call1(h.GridPreDestroyed, p)
	case "firstDataRendered":
		call1(h.FirstDataRendered, p)
	case "rowDataUpdated":
		call1(h.RowDataUpdated, p)
	case "newColumnsLoaded":
		call1(h.NewColumnsLoaded, p)
	case "displayedColumnsChanged":
		call1(h.DisplayedColumnsChanged, p)
	case "modelUpdated":
		call1(h.ModelUpdated, p)
	case "viewportChanged":
		call1(h.ViewportChanged, p)

	case "cellClicked":
		callMap(h.CellClicked, p)
	case "cellDoubleClicked":
		callMap(h.CellDoubleClicked, p)
	case "cellFocused":
		if h.CellFocused != nil {
			h.CellFocused(asInt(at(p, 0)), asStringPtr(at(p, 1)))
		}
	case "cellValueChanged":
		callCell(h.CellValueChanged, p)
	case "cellEditingStarted":
		callCell(h.CellEditingStarted, p)
	case "cellEditingStopped":
		callCell(h.CellEditingStopped, p)

	case "rowClicked":
		callMap(h.RowClicked, p)
	case "rowDoubleClicked":
		callMap(h.RowDoubleClicked, p)
	case "rowSelected":
		if h.RowSelected != nil {
			h.RowSelected(asMap(at(p, 0)), asBool(at(p, 1)), asInt(at(p, 2)))
		}
	case "selectionChanged":
		if h.SelectionChanged != nil {
			h.SelectionChanged(asRows(at(p, 0)), asString(at(p, 1)), asString(at(p, 2)))
		}
	case "rowEditingStarted":
		callRowEdit(h.RowEditingStarted, p)
	case "rowEditingStopped":
		callRowEdit(h.RowEditingStopped, p)

	case "columnResized":
		callMap(h.ColumnResized, p)
	case "columnMoved":
		callMap(h.ColumnMoved, p)
	case "columnVisible":
		callMap(h.ColumnVisible, p)
	case "columnPinned":
		callMap(h.ColumnPinned, p)

	case "sortChanged":
		if h.SortChanged != nil {
			entries, _ := at(p, 0).([]adapter.SortEntry)
			h.SortChanged(entries)
		}
	case "filterChanged":
		if h.FilterChanged != nil {
			h.FilterChanged(asMap(at(p, 0)))
		}
	case "paginationChanged":
		if h.PaginationChanged != nil {
			h.PaginationChanged(asInt(at(p, 0)), asInt(at(p, 1)), asInt(at(p, 2)))
		}

	case "bodyScroll":
		callScroll(h.BodyScroll, p)
	case "bodyScrollEnd":
		callScroll(h.BodyScrollEnd, p)
	case "gridSizeChanged":
		if h.GridSizeChanged != nil {
			h.GridSizeChanged(asInt(at(p, 0)), asInt(at(p, 1)))
		}
	}
}

func call1(f func(interface{}), p event.Payload) {
	if f != nil {
		f(at(p, 0))
	}
}

func callMap(f func(map[string]interface{}), p event.Payload) {
	if f != nil {
		f(asMap(at(p, 0)))
	}
}

func callCell(f func(int, string, interface{}), p event.Payload) {
	if f != nil {
		f(asInt(at(p, 0)), asString(at(p, 1)), at(p, 2))
	}
}

func callRowEdit(f func(int, map[string]interface{}), p event.Payload) {
	if f != nil {
		f(asInt(at(p, 0)), asMap(at(p, 1)))
	}
}

func callScroll(f func(string, float64, float64), p event.Payload) {
	if f != nil {
		f(asString(at(p, 0)), asFloat(at(p, 1)), asFloat(at(p, 2)))
	}
}

func at(p event.Payload, i int) interface{} {
	if i < len(p) {
		return p[i]
	}
	return nil
}

func asMap(v interface{}) map[string]interface{} {
	m, _ := v.(map[string]interface{})
	return m
}

func asRows(v interface{}) []map[string]interface{} {
	rows, _ := v.([]map[string]interface{})
	return rows
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func asStringPtr(v interface{}) *string {
	if s, ok := v.(string); ok {
		return &s
	}
	return nil
}

func asBool(v interface{}) bool {
	b, _ := v.(bool)
	return b
}

func asInt(v interface{}) int {
	switch n := v.(type) {
	case int:
		return n
	case float64:
		return int(n)
	}
	return 0
}

func asFloat(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	}
	return 0
}
