package realtime

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"venuehub/internal/domain"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	maxMsgSize = 4 * 1024
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true }, // configure in prod
}

// Event is a calendar change pushed to clients watching a venue. Clients
// re-fetch availability on receipt; the event carries the affected date, not
// the full calendar.
type Event struct {
	Type    string      `json:"type"`
	VenueID int64       `json:"venue_id"`
	Date    string      `json:"date"`
	Payload interface{} `json:"payload,omitempty"`
}

const (
	EventBookingCreated   = "booking_created"
	EventBookingCancelled = "booking_cancelled"
	EventDateBlocked      = "date_blocked"
	EventDateUnblocked    = "date_unblocked"
)

// connection is a single WebSocket client with its venue subscriptions.
type connection struct {
	userID int64
	conn   *websocket.Conn
	send   chan []byte
	venues map[int64]bool
}

// Hub fans availability events out to all connections subscribed to the
// affected venue.
type Hub struct {
	mu          sync.RWMutex
	connections map[int64]*connection // userID -> connection
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[int64]*connection),
	}
}

func (h *Hub) register(c *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.connections[c.userID] = c
}

func (h *Hub) unregister(c *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if existing, ok := h.connections[c.userID]; ok && existing == c {
		delete(h.connections, c.userID)
		close(c.send)
	}
}

// BroadcastToVenue sends an event to every connection watching the venue.
func (h *Hub) BroadcastToVenue(venueID int64, event *Event) {
	data, err := json.Marshal(event)
	if err != nil {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, c := range h.connections {
		if c.venues[venueID] {
			select {
			case c.send <- data:
			default:
				// Client too slow — skip
			}
		}
	}
}

// BookingCreated implements booking.AvailabilityNotifier.
func (h *Hub) BookingCreated(venueID int64, res *domain.Reservation) {
	h.BroadcastToVenue(venueID, &Event{
		Type:    EventBookingCreated,
		VenueID: venueID,
		Date:    res.Date,
		Payload: map[string]string{"start_time": res.StartTime, "end_time": res.EndTime},
	})
}

func (h *Hub) BookingCancelled(venueID int64, res *domain.Reservation) {
	h.BroadcastToVenue(venueID, &Event{
		Type:    EventBookingCancelled,
		VenueID: venueID,
		Date:    res.Date,
	})
}

// DateBlocked implements block.AvailabilityNotifier.
func (h *Hub) DateBlocked(venueID int64, date string) {
	h.BroadcastToVenue(venueID, &Event{Type: EventDateBlocked, VenueID: venueID, Date: date})
}

func (h *Hub) DateUnblocked(venueID int64, date string) {
	h.BroadcastToVenue(venueID, &Event{Type: EventDateUnblocked, VenueID: venueID, Date: date})
}

// ServeWS registers a new connection and starts read/write loops
func (h *Hub) ServeWS(conn *websocket.Conn, userID int64) {
	c := &connection{
		userID: userID,
		conn:   conn,
		send:   make(chan []byte, 256),
		venues: make(map[int64]bool),
	}

	h.register(c)

	go h.writePump(c)
	h.readPump(c) // blocks until disconnect
}

func (h *Hub) readPump(c *connection) {
	defer func() {
		h.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMsgSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			break
		}

		var cmd struct {
			Type    string `json:"type"`
			VenueID int64  `json:"venue_id"`
		}
		if err := json.Unmarshal(msg, &cmd); err != nil {
			continue
		}

		switch cmd.Type {
		case "subscribe":
			h.mu.Lock()
			c.venues[cmd.VenueID] = true
			h.mu.Unlock()
		case "unsubscribe":
			h.mu.Lock()
			delete(c.venues, cmd.VenueID)
			h.mu.Unlock()
		}
	}
}

func (h *Hub) writePump(c *connection) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
