// Package command is the imperative surface of the grid: a closed,
// enumerated set of operations the server can invoke on a mounted widget.
// Every operation is a typed constructor producing a serializable
// Command; there is no dynamic by-name dispatch into the widget API.
package command

// Command is one imperative grid operation on the wire.
type Command struct {
	Op   string                 `json:"op"`
	Args map[string]interface{} `json:"args,omitempty"`
}

// Operation names.
const (
	OpSelectAll          = "selectAll"
	OpDeselectAll        = "deselectAll"
	OpExportCSV          = "exportDataAsCsv"
	OpRedrawRows         = "redrawRows"
	OpSizeColumnsToFit   = "sizeColumnsToFit"
	OpAutoSizeAllColumns = "autoSizeAllColumns"
	OpSetQuickFilter     = "setQuickFilter"
	OpSetFilterModel     = "setFilterModel"
	OpGoToPage           = "paginationGoToPage"
	OpFirstPage          = "paginationGoToFirstPage"
	OpLastPage           = "paginationGoToLastPage"
	OpNextPage           = "paginationGoToNextPage"
	OpPreviousPage       = "paginationGoToPreviousPage"
	OpStartEditingCell   = "startEditingCell"
	OpStopEditing        = "stopEditing"
	OpFlashCells         = "flashCells"
	OpRefreshCells       = "refreshCells"
	OpSetRowData         = "setRowData"
)

// SelectAll selects all rows.
func SelectAll() Command { return Command{Op: OpSelectAll} }

// DeselectAll clears the row selection.
func DeselectAll() Command { return Command{Op: OpDeselectAll} }

// ExportCSV exports the grid data as CSV.
func ExportCSV() Command { return Command{Op: OpExportCSV} }

// RedrawRows forces a redraw of all rows.
func RedrawRows() Command { return Command{Op: OpRedrawRows} }

// SizeColumnsToFit sizes all columns to fit the grid width.
func SizeColumnsToFit() Command { return Command{Op: OpSizeColumnsToFit} }

// AutoSizeAllColumns auto-sizes all columns based on content.
func AutoSizeAllColumns() Command { return Command{Op: OpAutoSizeAllColumns} }

// SetQuickFilter sets the quick filter text.
func SetQuickFilter(text string) Command {
	return Command{Op: OpSetQuickFilter, Args: map[string]interface{}{"text": text}}
}

// SetFilterModel replaces the filter model.
func SetFilterModel(model map[string]interface{}) Command {
	return Command{Op: OpSetFilterModel, Args: map[string]interface{}{"model": model}}
}

// GoToPage jumps to a pagination page (0-based).
func GoToPage(page int) Command {
	return Command{Op: OpGoToPage, Args: map[string]interface{}{"page": page}}
}

// FirstPage jumps to the first page.
func FirstPage() Command { return Command{Op: OpFirstPage} }

// LastPage jumps to the last page.
func LastPage() Command { return Command{Op: OpLastPage} }

// NextPage advances one page.
func NextPage() Command { return Command{Op: OpNextPage} }

// PreviousPage goes back one page.
func PreviousPage() Command { return Command{Op: OpPreviousPage} }

// StartEditingCell begins editing a specific cell.
func StartEditingCell(rowIndex int, colKey string) Command {
	return Command{Op: OpStartEditingCell, Args: map[string]interface{}{
		"rowIndex": rowIndex,
		"colKey":   colKey,
	}}
}

// StopEditing ends the current edit, discarding it when cancel is true.
func StopEditing(cancel bool) Command {
	return Command{Op: OpStopEditing, Args: map[string]interface{}{"cancel": cancel}}
}

// FlashCells flashes all cells.
func FlashCells() Command { return Command{Op: OpFlashCells} }

// RefreshCells refreshes all cells.
func RefreshCells() Command { return Command{Op: OpRefreshCells} }

// SetRowData replaces the row data.
func SetRowData(rows []map[string]interface{}) Command {
	return Command{Op: OpSetRowData, Args: map[string]interface{}{"rows": rows}}
}
