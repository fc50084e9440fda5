// Package bridge carries grid traffic between mounted browser widgets and
// server-side components: native events in, imperative commands out, over
// one WebSocket connection per grid.
package bridge

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/pdl-lex/gridbridge"
	"github.com/pdl-lex/gridbridge/adapter"
	"github.com/pdl-lex/gridbridge/command"
	"github.com/pdl-lex/gridbridge/event"
)

// Bridge dispatches native grid events to registered components and sends
// commands back to the browser shim. Implements http.Handler for the
// WebSocket endpoint.
type Bridge struct {
	log      *zap.Logger
	registry *adapter.Registry

	// AllowedOrigins restricts WebSocket upgrades. Entries may be exact
	// hosts or "*.suffix" patterns; "*" allows everything. Empty list
	// allows localhost only. Set before serving.
	AllowedOrigins []string

	mu    sync.RWMutex
	grids map[string]*gridbridge.Component
	conns map[string]*conn
}

// New creates a Bridge. A nil logger disables logging.
func New(log *zap.Logger) *Bridge {
	if log == nil {
		log = zap.NewNop()
	}
	return &Bridge{
		log:      log,
		registry: adapter.NewRegistry(),
		grids:    make(map[string]*gridbridge.Component),
		conns:    make(map[string]*conn),
	}
}

// Registry returns the adapter registry, for registering custom adapters
// before serving.
func (b *Bridge) Registry() *adapter.Registry {
	return b.registry
}

// Register mounts a component on the bridge.
func (b *Bridge) Register(c *gridbridge.Component) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.grids[c.ID] = c
}

// Unregister removes a component and closes its connection if any.
func (b *Bridge) Unregister(gridID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if c, ok := b.conns[gridID]; ok {
		c.close()
		delete(b.conns, gridID)
	}
	delete(b.grids, gridID)
}

// Send delivers a command to the shim driving the given grid.
func (b *Bridge) Send(gridID string, cmd command.Command) error {
	b.mu.RLock()
	c, ok := b.conns[gridID]
	b.mu.RUnlock()
	if !ok {
		return fmt.Errorf("grid %q: not connected", gridID)
	}
	if err := c.send(cmd); err != nil {
		return fmt.Errorf("grid %q: sending %s: %w", gridID, cmd.Op, err)
	}
	return nil
}

// ServeHTTP upgrades the request to a WebSocket connection for the grid
// named in the "grid" query parameter and pumps its events.
func (b *Bridge) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	gridID := r.URL.Query().Get("grid")

	b.mu.RLock()
	_, ok := b.grids[gridID]
	b.mu.RUnlock()
	if !ok {
		http.Error(w, fmt.Sprintf("grid %q not registered", gridID), http.StatusNotFound)
		return
	}

	upgrader := websocket.Upgrader{CheckOrigin: b.checkOrigin}
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		b.log.Warn("websocket upgrade failed",
			zap.String("grid_id", gridID),
			zap.Error(err))
		return
	}

	c := &conn{ws: ws}

	b.mu.Lock()
	if old, dup := b.conns[gridID]; dup {
		old.close()
	}
	b.conns[gridID] = c
	b.mu.Unlock()

	b.log.Info("grid connected", zap.String("grid_id", gridID))
	b.readLoop(gridID, c)
}

func (b *Bridge) readLoop(gridID string, c *conn) {
	defer func() {
		b.mu.Lock()
		if b.conns[gridID] == c {
			delete(b.conns, gridID)
		}
		b.mu.Unlock()
		c.close()
		b.log.Info("grid disconnected",
			zap.String("grid_id", gridID),
			zap.Int64("bytes_in", c.counter.In()),
			zap.Int64("bytes_out", c.counter.Out()))
	}()

	for {
		_, data, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				b.log.Warn("grid read error",
					zap.String("grid_id", gridID),
					zap.Error(err))
			}
			return
		}
		c.counter.AddIn(len(data))

		if err := b.Process(data); err != nil {
			b.log.Warn("dropping malformed event",
				zap.String("grid_id", gridID),
				zap.Error(err))
		}
	}
}

// Process decodes one wire message, adapts it and dispatches the payload
// to the owning component's handlers.
func (b *Bridge) Process(data []byte) error {
	e, err := event.Decode(data)
	if err != nil {
		return err
	}

	b.mu.RLock()
	comp, ok := b.grids[e.GridID]
	b.mu.RUnlock()
	if !ok {
		return fmt.Errorf("grid %q: not registered", e.GridID)
	}

	snap, err := adapter.NewSnapshot(e.State)
	if err != nil {
		return fmt.Errorf("grid %q: decoding state: %w", e.GridID, err)
	}

	payload := b.registry.Get(e.Name).Adapt(e, snap)

	b.log.Debug("event dispatched",
		zap.String("grid_id", e.GridID),
		zap.String("event", e.Name),
		zap.Int("arity", len(payload)))

	comp.Dispatch(e.Name, payload)
	return nil
}
