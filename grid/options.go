package grid

// RowSelection configures row selection. The widget expects an object
// with mode "singleRow" or "multiRow".
type RowSelection struct {
	Mode                       string `json:"mode"`
	CheckboxSelection          *bool  `json:"checkboxes,omitempty"`
	HeaderCheckbox             *bool  `json:"headerCheckbox,omitempty"`
	EnableClickSelection       *bool  `json:"enableClickSelection,omitempty"`
	EnableSelectionWithoutKeys *bool  `json:"enableSelectionWithoutKeys,omitempty"`
	SuppressRowDeselection     *bool  `json:"suppressRowDeselection,omitempty"`
}

// Selection modes.
const (
	SingleRow = "singleRow"
	MultiRow  = "multiRow"
)

// Options is the grid-level configuration: a flat, optional-field set
// mirroring the widget's own gridOptions names.
type Options struct {
	// Data
	ColumnDefs               []Column                 `json:"columnDefs"`
	RowData                  []map[string]interface{} `json:"rowData"`
	PinnedTopRowData         []map[string]interface{} `json:"pinnedTopRowData,omitempty"`
	PinnedBottomRowData      []map[string]interface{} `json:"pinnedBottomRowData,omitempty"`
	DefaultColDef            map[string]interface{}   `json:"defaultColDef,omitempty"`
	DefaultColGroupDef       map[string]interface{}   `json:"defaultColGroupDef,omitempty"`
	ColumnTypes              map[string]interface{}   `json:"columnTypes,omitempty"`
	DataTypeDefinitions      map[string]interface{}   `json:"dataTypeDefinitions,omitempty"`
	MaintainColumnOrder      *bool                    `json:"maintainColumnOrder,omitempty"`
	SuppressFieldDotNotation *bool                    `json:"suppressFieldDotNotation,omitempty"`

	// Selection
	RowSelection  *RowSelection `json:"rowSelection,omitempty"`
	CellSelection interface{}   `json:"cellSelection,omitempty"` // bool or object

	// Display & rendering
	AnimateRows                  *bool                  `json:"animateRows,omitempty"`
	DomLayout                    string                 `json:"domLayout,omitempty"` // "normal" | "autoHeight" | "print"
	EnableRTL                    *bool                  `json:"enableRtl,omitempty"`
	EnsureDomOrder               *bool                  `json:"ensureDomOrder,omitempty"`
	GetRowID                     JS                     `json:"getRowId,omitempty"`
	GetRowClass                  JS                     `json:"getRowClass,omitempty"`
	GetRowStyle                  JS                     `json:"getRowStyle,omitempty"`
	RowClass                     interface{}            `json:"rowClass,omitempty"`
	RowClassRules                map[string]interface{} `json:"rowClassRules,omitempty"`
	RowHeight                    *int                   `json:"rowHeight,omitempty"`
	GetRowHeight                 JS                     `json:"getRowHeight,omitempty"`
	RowBuffer                    *int                   `json:"rowBuffer,omitempty"`
	SuppressColumnVirtualisation *bool                  `json:"suppressColumnVirtualisation,omitempty"`
	SuppressRowVirtualisation    *bool                  `json:"suppressRowVirtualisation,omitempty"`
	CellFlashDuration            *int                   `json:"cellFlashDuration,omitempty"`
	CellFadeDuration             *int                   `json:"cellFadeDuration,omitempty"`
	AllowShowChangeAfterFilter   *bool                  `json:"allowShowChangeAfterFilter,omitempty"`
	GridID                       string                 `json:"gridId,omitempty"`
	Debug                        *bool                  `json:"debug,omitempty"`

	// Column headers
	HeaderHeight          *int `json:"headerHeight,omitempty"`
	GroupHeaderHeight     *int `json:"groupHeaderHeight,omitempty"`
	FloatingFiltersHeight *int `json:"floatingFiltersHeight,omitempty"`

	// Column moving
	SuppressMovableColumns         *bool `json:"suppressMovableColumns,omitempty"`
	SuppressMoveWhenColumnDragging *bool `json:"suppressMoveWhenColumnDragging,omitempty"`
	SuppressColumnMoveAnimation    *bool `json:"suppressColumnMoveAnimation,omitempty"`
	SuppressDragLeaveHidesColumns  *bool `json:"suppressDragLeaveHidesColumns,omitempty"`

	// Column sizing
	AutoSizeStrategy     map[string]interface{} `json:"autoSizeStrategy,omitempty"`
	ColResizeDefault     string                 `json:"colResizeDefault,omitempty"`
	SuppressAutoSize     *bool                  `json:"suppressAutoSize,omitempty"`
	AutoSizePadding      *int                   `json:"autoSizePadding,omitempty"`
	SkipHeaderOnAutoSize *bool                  `json:"skipHeaderOnAutoSize,omitempty"`

	// Column pinning
	ProcessUnpinnedColumns JS `json:"processUnpinnedColumns,omitempty"`

	// Editing
	EditType                          string `json:"editType,omitempty"` // "fullRow"
	SingleClickEdit                   *bool  `json:"singleClickEdit,omitempty"`
	SuppressClickEdit                 *bool  `json:"suppressClickEdit,omitempty"`
	StopEditingWhenCellsLoseFocus     *bool  `json:"stopEditingWhenCellsLoseFocus,omitempty"`
	EnterNavigatesVertically          *bool  `json:"enterNavigatesVertically,omitempty"`
	EnterNavigatesVerticallyAfterEdit *bool  `json:"enterNavigatesVerticallyAfterEdit,omitempty"`
	EnableCellEditingOnBackspace      *bool  `json:"enableCellEditingOnBackspace,omitempty"`
	UndoRedoCellEditing               *bool  `json:"undoRedoCellEditing,omitempty"`
	UndoRedoCellEditingLimit          *int   `json:"undoRedoCellEditingLimit,omitempty"`
	ReadOnlyEdit                      *bool  `json:"readOnlyEdit,omitempty"`

	// Pagination
	Pagination                 *bool       `json:"pagination,omitempty"`
	PaginationPageSize         *int        `json:"paginationPageSize,omitempty"`
	PaginationPageSizeSelector interface{} `json:"paginationPageSizeSelector,omitempty"` // []int or bool
	PaginationAutoPageSize     *bool       `json:"paginationAutoPageSize,omitempty"`
	PaginateChildRows          *bool       `json:"paginateChildRows,omitempty"`
	SuppressPaginationPanel    *bool       `json:"suppressPaginationPanel,omitempty"`

	// Filtering
	QuickFilterText                   string `json:"quickFilterText,omitempty"`
	CacheQuickFilter                  *bool  `json:"cacheQuickFilter,omitempty"`
	IncludeHiddenColumnsInQuickFilter *bool  `json:"includeHiddenColumnsInQuickFilter,omitempty"`
	IsExternalFilterPresent           JS     `json:"isExternalFilterPresent,omitempty"`
	DoesExternalFilterPass            JS     `json:"doesExternalFilterPass,omitempty"`
	EnableAdvancedFilter              *bool  `json:"enableAdvancedFilter,omitempty"`

	// Sorting
	MultiSortKey string `json:"multiSortKey,omitempty"` // "ctrl"
	AccentedSort *bool  `json:"accentedSort,omitempty"`
	PostSortRows JS     `json:"postSortRows,omitempty"`
	DeltaSort    *bool  `json:"deltaSort,omitempty"`

	// Overlays
	Loading                       *bool                  `json:"loading,omitempty"`
	OverlayLoadingTemplate        string                 `json:"overlayLoadingTemplate,omitempty"`
	LoadingOverlayComponent       JS                     `json:"loadingOverlayComponent,omitempty"`
	LoadingOverlayComponentParams map[string]interface{} `json:"loadingOverlayComponentParams,omitempty"`
	OverlayNoRowsTemplate         string                 `json:"overlayNoRowsTemplate,omitempty"`
	NoRowsOverlayComponent        JS                     `json:"noRowsOverlayComponent,omitempty"`
	NoRowsOverlayComponentParams  map[string]interface{} `json:"noRowsOverlayComponentParams,omitempty"`
	SuppressNoRowsOverlay         *bool                  `json:"suppressNoRowsOverlay,omitempty"`

	// CSV export
	DefaultCsvExportParams map[string]interface{} `json:"defaultCsvExportParams,omitempty"`
	SuppressCsvExport      *bool                  `json:"suppressCsvExport,omitempty"`

	// Localisation
	LocaleText map[string]string `json:"localeText,omitempty"`

	// Tooltips
	TooltipShowDelay   *int  `json:"tooltipShowDelay,omitempty"`
	TooltipHideDelay   *int  `json:"tooltipHideDelay,omitempty"`
	TooltipMouseTrack  *bool `json:"tooltipMouseTrack,omitempty"`
	TooltipInteraction *bool `json:"tooltipInteraction,omitempty"`

	// Keyboard navigation
	TabIndex             *int `json:"tabIndex,omitempty"`
	NavigateToNextCell   JS   `json:"navigateToNextCell,omitempty"`
	TabToNextCell        JS   `json:"tabToNextCell,omitempty"`
	NavigateToNextHeader JS   `json:"navigateToNextHeader,omitempty"`
	TabToNextHeader      JS   `json:"tabToNextHeader,omitempty"`

	// Row drag & drop
	RowDragManaged              *bool `json:"rowDragManaged,omitempty"`
	RowDragEntireRow            *bool `json:"rowDragEntireRow,omitempty"`
	RowDragMultiRow             *bool `json:"rowDragMultiRow,omitempty"`
	SuppressRowDrag             *bool `json:"suppressRowDrag,omitempty"`
	SuppressMoveWhenRowDragging *bool `json:"suppressMoveWhenRowDragging,omitempty"`

	// Misc
	PopupParent                   JS                     `json:"popupParent,omitempty"`
	Context                       map[string]interface{} `json:"context,omitempty"`
	ValueCache                    *bool                  `json:"valueCache,omitempty"`
	ValueCacheNeverExpires        *bool                  `json:"valueCacheNeverExpires,omitempty"`
	SuppressTouch                 *bool                  `json:"suppressTouch,omitempty"`
	SuppressFocusAfterRefresh     *bool                  `json:"suppressFocusAfterRefresh,omitempty"`
	SuppressChangeDetection       *bool                  `json:"suppressChangeDetection,omitempty"`
	SuppressBrowserResizeObserver *bool                  `json:"suppressBrowserResizeObserver,omitempty"`
	SuppressRowClickSelection     *bool                  `json:"suppressRowClickSelection,omitempty"`
	InitialState                  map[string]interface{} `json:"initialState,omitempty"`
	AlignedGrids                  []interface{}          `json:"alignedGrids,omitempty"`
}
