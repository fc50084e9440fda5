// Package adapter converts native grid events into the fixed-shape,
// serializable payload tuples delivered to application event handlers.
//
// Each adapter is a pure, total function over a well-formed native event:
// it never returns an error, never panics, and owns no state across
// invocations. Fields that reference the widget's internals (API handles,
// column objects, DOM nodes, the raw browser event) never reach the
// output; the categories that need authoritative grid state (selection,
// sort, filter, pagination) query the live API rather than trust the
// event payload.
package adapter

import (
	"strings"

	"github.com/pdl-lex/gridbridge/event"
)

// Adapter transforms a Native event into the payload tuple for its category
type Adapter interface {
	Adapt(e event.Native, api API) event.Payload
}

// Func is a function type that implements Adapter
type Func func(e event.Native, api API) event.Payload

func (f Func) Adapt(e event.Native, api API) event.Payload {
	return f(e, api)
}

// Registry maps event names to adapters
type Registry struct {
	exact    map[string]Adapter
	prefix   map[string]Adapter
	suffix   map[string]Adapter
	fallback Adapter
}

// NewRegistry creates a new adapter registry with all grid event
// categories registered
func NewRegistry() *Registry {
	r := &Registry{
		exact:    make(map[string]Adapter),
		prefix:   make(map[string]Adapter),
		suffix:   make(map[string]Adapter),
		fallback: &Passthrough{},
	}

	r.registerCellAdapters()
	r.registerRowAdapters()
	r.registerColumnAdapters()
	r.registerQueryAdapters()
	r.registerLayoutAdapters()
	r.registerLifecycleAdapters()

	return r
}

func (r *Registry) registerCellAdapters() {
	cell := &CellInteraction{}
	r.exact["cellClicked"] = cell
	r.exact["cellDoubleClicked"] = cell

	r.exact["cellFocused"] = &CellFocus{}
	r.exact["cellValueChanged"] = &CellValue{}

	// cellEditingStarted and cellEditingStopped share one shape
	r.prefix["cellEditing"] = &CellEditing{}
}

func (r *Registry) registerRowAdapters() {
	row := &RowInteraction{}
	r.exact["rowClicked"] = row
	r.exact["rowDoubleClicked"] = row

	r.exact["rowSelected"] = &RowSelected{}
	r.exact["selectionChanged"] = &SelectionChanged{}

	r.prefix["rowEditing"] = &RowEditing{}
}

func (r *Registry) registerColumnAdapters() {
	col := &ColumnStructural{}
	r.exact["columnResized"] = col
	r.exact["columnMoved"] = col
	r.exact["columnVisible"] = col
	r.exact["columnPinned"] = col
}

func (r *Registry) registerQueryAdapters() {
	r.exact["sortChanged"] = &SortChanged{}
	r.exact["filterChanged"] = &FilterChanged{}
	r.exact["paginationChanged"] = &PaginationChanged{}
}

func (r *Registry) registerLayoutAdapters() {
	// bodyScroll and bodyScrollEnd share one shape
	r.prefix["bodyScroll"] = &BodyScroll{}

	r.exact["gridSizeChanged"] = &GridSize{}
}

func (r *Registry) registerLifecycleAdapters() {
	pt := &Passthrough{}
	r.exact["gridReady"] = pt
	r.exact["gridPreDestroyed"] = pt
	r.exact["firstDataRendered"] = pt
	r.exact["rowDataUpdated"] = pt
	r.exact["newColumnsLoaded"] = pt
	r.exact["displayedColumnsChanged"] = pt
	r.exact["modelUpdated"] = pt
	r.exact["viewportChanged"] = pt
}

// Get returns the adapter for an event name
func (r *Registry) Get(name string) Adapter {
	// Try exact match first
	if a, ok := r.exact[name]; ok {
		return a
	}

	// Try prefix matches
	for prefix, a := range r.prefix {
		if strings.HasPrefix(name, prefix) {
			return a
		}
	}

	// Try suffix matches
	for suffix, a := range r.suffix {
		if strings.HasSuffix(name, suffix) {
			return a
		}
	}

	return r.fallback
}

// Register adds an adapter for an exact event name match
func (r *Registry) Register(name string, a Adapter) {
	r.exact[name] = a
}

// RegisterPrefix adds an adapter for events matching a prefix
func (r *Registry) RegisterPrefix(prefix string, a Adapter) {
	r.prefix[prefix] = a
}

// RegisterSuffix adds an adapter for events matching a suffix
func (r *Registry) RegisterSuffix(suffix string, a Adapter) {
	r.suffix[suffix] = a
}
