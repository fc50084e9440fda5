package grid

// Community filter types.
const (
	FilterText   = "agTextColumnFilter"
	FilterNumber = "agNumberColumnFilter"
	FilterDate   = "agDateColumnFilter"
)

// Community cell editor types.
const (
	EditorText      = "agTextCellEditor"
	EditorLargeText = "agLargeTextCellEditor"
	EditorSelect    = "agSelectCellEditor"
	EditorNumber    = "agNumberCellEditor"
	EditorDate      = "agDateCellEditor"
	EditorCheckbox  = "agCheckboxCellEditor"
)

// Theme selects the widget's CSS class-based theme.
type Theme string

// Available themes.
const (
	ThemeQuartz   Theme = "quartz"
	ThemeBalham   Theme = "balham"
	ThemeAlpine   Theme = "alpine"
	ThemeMaterial Theme = "material"
)

// ClassName returns the container CSS class for the theme, picking the
// dark variant when dark is true. Unknown themes yield an empty class.
func (t Theme) ClassName(dark bool) string {
	switch t {
	case ThemeQuartz, ThemeBalham, ThemeAlpine, ThemeMaterial:
		cls := "ag-theme-" + string(t)
		if dark {
			cls += "-dark"
		}
		return cls
	}
	return ""
}
