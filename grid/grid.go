// Package grid declares the configuration surface of the wrapped AG Grid
// Community widget: column definitions, grid options, filter and editor
// identifiers, and theming. Field names mirror the widget's own option
// names; everything serializes straight into the gridOptions object the
// browser shim hands to the widget.
package grid

// JS is a JavaScript expression handed verbatim to the browser shim, used
// for option fields the widget defines as callbacks (comparators, value
// getters, renderers). It is opaque to the server.
type JS string

// Bool returns a pointer to b, for optional boolean options where an
// explicit false differs from absence.
func Bool(b bool) *bool { return &b }

// Int returns a pointer to n, for optional numeric options where an
// explicit zero differs from absence.
func Int(n int) *int { return &n }
