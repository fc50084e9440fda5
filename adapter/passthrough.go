package adapter

import "github.com/pdl-lex/gridbridge/event"

// Passthrough forwards the native event payload unchanged. Used for the
// lifecycle categories (gridReady, firstDataRendered, rowDataUpdated,
// newColumnsLoaded, displayedColumnsChanged, modelUpdated,
// viewportChanged, gridPreDestroyed) and as the registry fallback for
// unknown event names.
type Passthrough struct{}

func (a *Passthrough) Adapt(e event.Native, api API) event.Payload {
	return event.Payload{e.PayloadValue()}
}
