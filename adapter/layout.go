package adapter

import (
	"github.com/pdl-lex/gridbridge/event"
	"github.com/pdl-lex/gridbridge/internal/fieldset"
)

// BodyScroll adapts bodyScroll and bodyScrollEnd:
// (scroll direction, horizontal offset, vertical offset).
type BodyScroll struct{}

func (a *BodyScroll) Adapt(e event.Native, api API) event.Payload {
	m := e.PayloadMap()
	return event.Payload{
		fieldset.String(m["direction"]),
		m["left"],
		m["top"],
	}
}

// GridSize adapts gridSizeChanged: (visible width, visible height).
type GridSize struct{}

func (a *GridSize) Adapt(e event.Native, api API) event.Payload {
	m := e.PayloadMap()
	return event.Payload{m["clientWidth"], m["clientHeight"]}
}
