package bridge

import (
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/pdl-lex/gridbridge/internal/countio"
	intjson "github.com/pdl-lex/gridbridge/internal/json"
)

// conn is one live shim connection.
type conn struct {
	ws      *websocket.Conn
	mu      sync.Mutex // protects ws writes
	counter countio.Counter
}

func (c *conn) send(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	w, err := c.ws.NextWriter(websocket.TextMessage)
	if err != nil {
		return err
	}
	if err := intjson.NewEncoder(c.counter.Writer(w)).Encode(v); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

func (c *conn) close() {
	c.ws.Close()
}

// checkOrigin validates the Origin header against AllowedOrigins.
// Requests without an Origin (non-browser clients) are allowed.
func (b *Bridge) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}

	host := origin
	if u, err := url.Parse(origin); err == nil && u.Host != "" {
		host = u.Hostname()
	}

	allowed := b.AllowedOrigins
	if len(allowed) == 0 {
		allowed = []string{"localhost", "127.0.0.1"}
	}

	for _, a := range allowed {
		if a == "*" || a == host {
			return true
		}
		if strings.HasPrefix(a, "*.") && strings.HasSuffix(host, a[1:]) {
			return true
		}
	}
	return false
}
