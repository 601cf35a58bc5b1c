package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/websharper-samples/PeopleAPI/internal/events"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Allow all origins (CORS is handled at the middleware level).
	CheckOrigin: func(r *http.Request) bool { return true },
}

// pingInterval keeps intermediaries from timing out an idle feed.
const pingInterval = 15 * time.Second

// EventsHandler streams store change events to WebSocket clients.
type EventsHandler struct {
	broker *events.Broker
}

// NewEventsHandler creates a new EventsHandler.
func NewEventsHandler(b *events.Broker) *EventsHandler {
	return &EventsHandler{broker: b}
}

// Routes registers the WebSocket endpoint.
func (h *EventsHandler) Routes(r chi.Router) {
	r.Get("/", h.HandleWS)
}

// HandleWS upgrades the HTTP connection to a WebSocket and forwards every
// published store event as a JSON frame until the client disconnects.
func (h *EventsHandler) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	ch := h.broker.Subscribe()
	defer h.broker.Unsubscribe(ch)

	// Read loop: discards client frames and unblocks on disconnect.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.Printf("websocket read error: %v", err)
				}
				return
			}
		}
	}()

	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case ev, ok := <-ch:
			if !ok {
				return
			}
			if err := conn.WriteJSON(ev); err != nil {
				return
			}
		}
	}
}
