package adapter

import (
	"encoding/json"

	"github.com/mitchellh/mapstructure"

	intjson "github.com/pdl-lex/gridbridge/internal/json"
)

// API is the live grid API: the widget's queryable state at the moment an
// event fired. Adapters for selection, sort, filter and pagination read
// from here instead of the event payload, because the native event for
// those categories carries incomplete or stale snapshots.
type API interface {
	// SelectedRows returns the currently selected row data.
	SelectedRows() []map[string]interface{}
	// ColumnState returns the current state of every column.
	ColumnState() []ColumnState
	// FilterModel returns the complete current filter model keyed by column id.
	FilterModel() map[string]interface{}
	// PaginationPage returns the current page index (0-based).
	PaginationPage() int
	// PaginationTotalPages returns the total page count.
	PaginationTotalPages() int
	// PaginationPageSize returns the page size.
	PaginationPageSize() int
}

// ColumnState mirrors one entry of the widget's column state.
type ColumnState struct {
	ColID     string `json:"colId" mapstructure:"colId"`
	Sort      string `json:"sort" mapstructure:"sort"`
	SortIndex int    `json:"sortIndex" mapstructure:"sortIndex"`
}

// SortEntry is one element of the sortChanged payload: a column currently
// participating in a sort.
type SortEntry struct {
	ColID     string `json:"colId"`
	Sort      string `json:"sort"`
	SortIndex int    `json:"sortIndex"`
}

// Snapshot is the production API implementation, decoded from the state
// member the browser shim captures alongside each event.
type Snapshot struct {
	Rows       []map[string]interface{} `mapstructure:"selectedRows"`
	Columns    []ColumnState            `mapstructure:"columnState"`
	Filter     map[string]interface{}   `mapstructure:"filterModel"`
	Page       int                      `mapstructure:"page"`
	TotalPages int                      `mapstructure:"totalPages"`
	PageSize   int                      `mapstructure:"pageSize"`
}

// NewSnapshot decodes a raw state blob into a Snapshot. A nil or null
// blob yields an empty snapshot.
func NewSnapshot(raw json.RawMessage) (*Snapshot, error) {
	s := &Snapshot{}
	if len(raw) == 0 || string(raw) == "null" {
		return s, nil
	}

	var m map[string]interface{}
	if err := intjson.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	if err := mapstructure.WeakDecode(m, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Snapshot) SelectedRows() []map[string]interface{} { return s.Rows }
func (s *Snapshot) ColumnState() []ColumnState             { return s.Columns }
func (s *Snapshot) FilterModel() map[string]interface{}    { return s.Filter }
func (s *Snapshot) PaginationPage() int                    { return s.Page }
func (s *Snapshot) PaginationTotalPages() int              { return s.TotalPages }
func (s *Snapshot) PaginationPageSize() int                { return s.PageSize }
