package grid

// Column is one entry of a grid's column list: either a leaf ColumnDef
// or a ColGroupDef holding nested columns under a grouped header.
type Column interface {
	isColumn()
}

func (ColumnDef) isColumn()   {}
func (ColGroupDef) isColumn() {}

// ColumnDef is a column definition, covering the Community-level colDef
// surface of the widget.
type ColumnDef struct {
	// Core
	Field        string      `json:"field"`
	ColID        string      `json:"colId,omitempty"`
	Type         interface{} `json:"type,omitempty"` // string or []string
	CellDataType interface{} `json:"cellDataType,omitempty"`

	// Header
	HeaderName                   string                 `json:"headerName,omitempty"`
	HeaderTooltip                string                 `json:"headerTooltip,omitempty"`
	HeaderClass                  interface{}            `json:"headerClass,omitempty"`
	HeaderComponent              JS                     `json:"headerComponent,omitempty"`
	HeaderComponentParams        map[string]interface{} `json:"headerComponentParams,omitempty"`
	WrapHeaderText               *bool                  `json:"wrapHeaderText,omitempty"`
	AutoHeaderHeight             *bool                  `json:"autoHeaderHeight,omitempty"`
	SuppressHeaderMenuButton     *bool                  `json:"suppressHeaderMenuButton,omitempty"`
	SuppressHeaderFilterButton   *bool                  `json:"suppressHeaderFilterButton,omitempty"`
	SuppressHeaderContextMenu    *bool                  `json:"suppressHeaderContextMenu,omitempty"`
	SuppressFloatingFilterButton *bool                  `json:"suppressFloatingFilterButton,omitempty"`

	// Display & visibility
	Hide            *bool       `json:"hide,omitempty"`
	InitialHide     *bool       `json:"initialHide,omitempty"`
	LockVisible     *bool       `json:"lockVisible,omitempty"`
	LockPosition    interface{} `json:"lockPosition,omitempty"` // bool or "left"/"right"
	SuppressMovable *bool       `json:"suppressMovable,omitempty"`

	// Width & sizing
	Width             *int  `json:"width,omitempty"`
	InitialWidth      *int  `json:"initialWidth,omitempty"`
	MinWidth          *int  `json:"minWidth,omitempty"`
	MaxWidth          *int  `json:"maxWidth,omitempty"`
	Flex              *int  `json:"flex,omitempty"`
	InitialFlex       *int  `json:"initialFlex,omitempty"`
	Resizable         *bool `json:"resizable,omitempty"`
	SuppressSizeToFit *bool `json:"suppressSizeToFit,omitempty"`
	SuppressAutoSize  *bool `json:"suppressAutoSize,omitempty"`

	// Sorting
	Sortable         *bool    `json:"sortable,omitempty"`
	Sort             string   `json:"sort,omitempty"`
	InitialSort      string   `json:"initialSort,omitempty"`
	SortIndex        *int     `json:"sortIndex,omitempty"`
	InitialSortIndex *int     `json:"initialSortIndex,omitempty"`
	SortingOrder     []string `json:"sortingOrder,omitempty"`
	Comparator       JS       `json:"comparator,omitempty"`
	UnSortIcon       *bool    `json:"unSortIcon,omitempty"`

	// Filtering
	Filter                        interface{}            `json:"filter,omitempty"` // string or bool
	FilterParams                  map[string]interface{} `json:"filterParams,omitempty"`
	FilterValueGetter             JS                     `json:"filterValueGetter,omitempty"`
	GetQuickFilterText            JS                     `json:"getQuickFilterText,omitempty"`
	FloatingFilter                *bool                  `json:"floatingFilter,omitempty"`
	FloatingFilterComponent       JS                     `json:"floatingFilterComponent,omitempty"`
	FloatingFilterComponentParams map[string]interface{} `json:"floatingFilterComponentParams,omitempty"`

	// Editing
	Editable                *bool                  `json:"editable,omitempty"`
	CellEditor              string                 `json:"cellEditor,omitempty"`
	CellEditorParams        map[string]interface{} `json:"cellEditorParams,omitempty"`
	CellEditorSelector      JS                     `json:"cellEditorSelector,omitempty"`
	CellEditorPopup         *bool                  `json:"cellEditorPopup,omitempty"`
	CellEditorPopupPosition string                 `json:"cellEditorPopupPosition,omitempty"`
	SingleClickEdit         *bool                  `json:"singleClickEdit,omitempty"`
	ValueSetter             JS                     `json:"valueSetter,omitempty"`
	ValueParser             JS                     `json:"valueParser,omitempty"`
	UseValueParserForImport *bool                  `json:"useValueParserForImport,omitempty"`

	// Data & value
	ValueGetter    JS                `json:"valueGetter,omitempty"`
	ValueFormatter JS                `json:"valueFormatter,omitempty"`
	RefData        map[string]string `json:"refData,omitempty"`

	// Rendering & styling
	CellRenderer          JS                     `json:"cellRenderer,omitempty"`
	CellRendererParams    map[string]interface{} `json:"cellRendererParams,omitempty"`
	CellRendererSelector  JS                     `json:"cellRendererSelector,omitempty"`
	CellStyle             map[string]interface{} `json:"cellStyle,omitempty"`
	CellClass             interface{}            `json:"cellClass,omitempty"` // string or []string
	CellClassRules        map[string]interface{} `json:"cellClassRules,omitempty"`
	EnableCellChangeFlash *bool                  `json:"enableCellChangeFlash,omitempty"`

	// Text display
	WrapText   *bool `json:"wrapText,omitempty"`
	AutoHeight *bool `json:"autoHeight,omitempty"`

	// Tooltips
	TooltipField           string                 `json:"tooltipField,omitempty"`
	TooltipValueGetter     JS                     `json:"tooltipValueGetter,omitempty"`
	TooltipComponent       JS                     `json:"tooltipComponent,omitempty"`
	TooltipComponentParams map[string]interface{} `json:"tooltipComponentParams,omitempty"`

	// Pinning
	Pinned        interface{} `json:"pinned,omitempty"` // bool or "left"/"right"
	InitialPinned interface{} `json:"initialPinned,omitempty"`
	LockPinned    *bool       `json:"lockPinned,omitempty"`

	// Spanning
	ColSpan JS `json:"colSpan,omitempty"`

	// Row drag
	RowDrag     *bool `json:"rowDrag,omitempty"`
	RowDragText JS    `json:"rowDragText,omitempty"`

	// Keyboard & navigation
	SuppressNavigable     *bool `json:"suppressNavigable,omitempty"`
	SuppressKeyboardEvent JS    `json:"suppressKeyboardEvent,omitempty"`
	SuppressPaste         *bool `json:"suppressPaste,omitempty"`
	SuppressFillHandle    *bool `json:"suppressFillHandle,omitempty"`

	// Export
	UseValueFormatterForExport *bool `json:"useValueFormatterForExport,omitempty"`

	// Misc
	CellAriaRole string                 `json:"cellAriaRole,omitempty"`
	Context      map[string]interface{} `json:"context,omitempty"`
}

// ColGroupDef is a column group definition for grouped column headers.
// Children may nest further groups.
type ColGroupDef struct {
	HeaderName                 string                 `json:"headerName"`
	GroupID                    string                 `json:"groupId,omitempty"`
	Children                   []Column               `json:"children"`
	MarryChildren              *bool                  `json:"marryChildren,omitempty"`
	OpenByDefault              *bool                  `json:"openByDefault,omitempty"`
	HeaderClass                interface{}            `json:"headerClass,omitempty"`
	HeaderGroupComponent       JS                     `json:"headerGroupComponent,omitempty"`
	HeaderGroupComponentParams map[string]interface{} `json:"headerGroupComponentParams,omitempty"`
	SuppressStickyLabel        *bool                  `json:"suppressStickyLabel,omitempty"`
}
