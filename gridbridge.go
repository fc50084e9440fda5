// Package gridbridge wraps the AG Grid Community widget as a component
// for server-driven Go web UIs. The server declares a Component (options,
// column definitions, typed event handlers); the browser shim mounts the
// widget and streams its native events back as JSON envelopes; the
// adapter package reduces each native event to a fixed-shape payload that
// Dispatch routes to the matching typed handler.
package gridbridge

import (
	"github.com/google/uuid"

	"github.com/pdl-lex/gridbridge/event"
	"github.com/pdl-lex/gridbridge/grid"
)

// Component is one grid instance in the component tree.
type Component struct {
	// ID uniquely identifies the mounted grid. Generated when empty.
	ID string

	Options  *grid.Options
	Theme    grid.Theme
	DarkMode bool

	// Container sizing. Defaults: 100% x 400px.
	Width  string
	Height string

	Handlers *Handlers
}

// New creates a Component with the given options and a generated ID.
func New(opts *grid.Options) *Component {
	return &Component{
		ID:      "grid-" + uuid.NewString(),
		Options: opts,
		Theme:   grid.ThemeQuartz,
		Width:   "100%",
		Height:  "400px",
	}
}

// ThemeClass returns the container CSS class for the component's theme.
func (c *Component) ThemeClass() string {
	return c.Theme.ClassName(c.DarkMode)
}

// Dispatch routes an adapted payload to the component's typed handler for
// the event name. Events without a registered handler are dropped.
func (c *Component) Dispatch(name string, p event.Payload) {
	if c.Handlers != nil {
		c.Handlers.dispatch(name, p)
	}
}
