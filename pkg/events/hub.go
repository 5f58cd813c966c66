package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"

	"github.com/agnox-io/agnox/pkg/auth"
)

// handshakeTimeout bounds how long a connection may take to present its
// token when it was not supplied in the URL.
const handshakeTimeout = 5 * time.Second

// sendQueueSize is the per-connection outbound buffer. A full queue drops
// the frame so a slow consumer never blocks broadcasters.
const sendQueueSize = 64

// Broadcaster is the send-side interface the dispatch pipeline, worker
// sink, and ingest manager publish through.
type Broadcaster interface {
	Broadcast(room, event string, data interface{})
}

// Hub manages WebSocket connections grouped into per-organization rooms.
// Each process has one Hub instance; every connection belongs to exactly
// one room, fixed at handshake time from the verified token.
type Hub struct {
	verifier *auth.TokenIssuer
	logger   *slog.Logger

	// Active connections: connection_id → *conn
	connections map[string]*conn
	mu          sync.RWMutex

	// Room membership: room → set of connection_ids
	rooms  map[string]map[string]bool
	roomMu sync.RWMutex

	writeTimeout time.Duration
}

// conn is a single WebSocket client. The room is fixed after the handshake
// and only touched by the owning read-loop goroutine and unregister. All
// post-handshake frames flow through send, drained by one writer goroutine.
type conn struct {
	id     string
	ws     *websocket.Conn
	room   string
	send   chan []byte
	ctx    context.Context
	cancel context.CancelFunc
}

// NewHub creates a Hub that authenticates handshakes with the given issuer.
func NewHub(verifier *auth.TokenIssuer, writeTimeout time.Duration, logger *slog.Logger) *Hub {
	return &Hub{
		verifier:     verifier,
		logger:       logger.With("component", "events"),
		connections:  make(map[string]*conn),
		rooms:        make(map[string]map[string]bool),
		writeTimeout: writeTimeout,
	}
}

// clientHello is the first frame a client sends when the token was not in
// the handshake URL.
type clientHello struct {
	Token string `json:"token"`
}

// HandleConnection runs the lifecycle of one upgraded connection. token may
// be empty, in which case the first frame must carry it. Blocks until the
// connection closes.
func (h *Hub) HandleConnection(parentCtx context.Context, ws *websocket.Conn, token string) {
	ctx, cancel := context.WithCancel(parentCtx)

	c := &conn{
		id:     uuid.New().String(),
		ws:     ws,
		send:   make(chan []byte, sendQueueSize),
		ctx:    ctx,
		cancel: cancel,
	}

	principal, err := h.handshake(ctx, c, token)
	if err != nil {
		// Written synchronously: the writer goroutine is not running yet and
		// the frame must flush before the close.
		if data, merr := json.Marshal(Envelope{Event: EventAuthError, Data: map[string]string{"message": "authentication failed"}}); merr == nil {
			_ = h.writeRaw(c, data)
		}
		cancel()
		_ = ws.Close(websocket.StatusPolicyViolation, "authentication failed")
		return
	}

	c.room = RoomForOrg(principal.OrgID)
	h.register(c)
	defer h.unregister(c)
	go h.writeLoop(c)

	h.sendJSON(c, Envelope{Event: EventAuthSuccess, Data: AuthSuccessPayload{
		OrgID:  principal.OrgID,
		UserID: principal.UserID,
		Role:   string(principal.Role),
	}})

	h.logger.Debug("Client joined room", "connection_id", c.id, "room", c.room)

	// Read loop. Clients only send pings after the handshake; anything else
	// is ignored. Exits when the connection closes.
	for {
		_, data, err := ws.Read(ctx)
		if err != nil {
			return
		}
		var msg struct {
			Action string `json:"action"`
		}
		if err := json.Unmarshal(data, &msg); err != nil {
			continue
		}
		if msg.Action == "ping" {
			h.sendJSON(c, Envelope{Event: "pong"})
		}
	}
}

func (h *Hub) handshake(ctx context.Context, c *conn, token string) (auth.Principal, error) {
	if token == "" {
		readCtx, cancel := context.WithTimeout(ctx, handshakeTimeout)
		defer cancel()

		_, data, err := c.ws.Read(readCtx)
		if err != nil {
			return auth.Principal{}, err
		}
		var hello clientHello
		if err := json.Unmarshal(data, &hello); err != nil {
			return auth.Principal{}, err
		}
		token = hello.Token
	}
	return h.verifier.Verify(token)
}

// Broadcast marshals the event once and enqueues it on every connection in
// the room. Slow or dead connections lose frames, never the broadcaster's
// time.
func (h *Hub) Broadcast(room, event string, data interface{}) {
	payload, err := Marshal(event, data)
	if err != nil {
		h.logger.Warn("Failed to marshal broadcast", "event", event, "error", err)
		return
	}

	h.roomMu.RLock()
	members, exists := h.rooms[room]
	if !exists {
		h.roomMu.RUnlock()
		return
	}
	ids := make([]string, 0, len(members))
	for id := range members {
		ids = append(ids, id)
	}
	h.roomMu.RUnlock()

	h.mu.RLock()
	conns := make([]*conn, 0, len(ids))
	for _, id := range ids {
		if c, ok := h.connections[id]; ok {
			conns = append(conns, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range conns {
		h.enqueue(c, payload)
	}
}

// ActiveConnections returns the count of connected clients.
func (h *Hub) ActiveConnections() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.connections)
}

// roomSize returns the member count of a room. Tests poll this instead of
// sleeping.
func (h *Hub) roomSize(room string) int {
	h.roomMu.RLock()
	defer h.roomMu.RUnlock()
	return len(h.rooms[room])
}

func (h *Hub) register(c *conn) {
	h.mu.Lock()
	h.connections[c.id] = c
	h.mu.Unlock()

	h.roomMu.Lock()
	if _, exists := h.rooms[c.room]; !exists {
		h.rooms[c.room] = make(map[string]bool)
	}
	h.rooms[c.room][c.id] = true
	h.roomMu.Unlock()
}

func (h *Hub) unregister(c *conn) {
	h.roomMu.Lock()
	if members, exists := h.rooms[c.room]; exists {
		delete(members, c.id)
		if len(members) == 0 {
			delete(h.rooms, c.room)
		}
	}
	h.roomMu.Unlock()

	h.mu.Lock()
	delete(h.connections, c.id)
	h.mu.Unlock()

	c.cancel()
	_ = c.ws.Close(websocket.StatusNormalClosure, "")
}

func (h *Hub) sendJSON(c *conn, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		h.logger.Warn("Failed to marshal message", "connection_id", c.id, "error", err)
		return
	}
	h.enqueue(c, data)
}

// enqueue never blocks. A full queue means the consumer is not keeping up;
// the frame is dropped and the connection stays open.
func (h *Hub) enqueue(c *conn, data []byte) {
	select {
	case c.send <- data:
	default:
		h.logger.Warn("Send queue full, dropping frame",
			"connection_id", c.id, "room", c.room)
	}
}

// writeLoop drains the send queue. A write error tears the connection down;
// the read loop observes the cancelled context and unregisters.
func (h *Hub) writeLoop(c *conn) {
	for {
		select {
		case data := <-c.send:
			if err := h.writeRaw(c, data); err != nil {
				h.logger.Warn("Failed to send to client",
					"connection_id", c.id, "room", c.room, "error", err)
				c.cancel()
				return
			}
		case <-c.ctx.Done():
			return
		}
	}
}

func (h *Hub) writeRaw(c *conn, data []byte) error {
	writeCtx, cancel := context.WithTimeout(c.ctx, h.writeTimeout)
	defer cancel()
	return c.ws.Write(writeCtx, websocket.MessageText, data)
}
