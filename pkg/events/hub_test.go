package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agnox-io/agnox/pkg/auth"
)

func newTestHub(t *testing.T) (*Hub, *auth.TokenIssuer, *httptest.Server) {
	t.Helper()

	issuer := auth.NewTokenIssuer([]byte("test-secret"), time.Hour)
	hub := NewHub(issuer, 5*time.Second, slog.Default())

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		hub.HandleConnection(r.Context(), ws, r.URL.Query().Get("token"))
	}))
	t.Cleanup(srv.Close)

	return hub, issuer, srv
}

func dial(t *testing.T, srv *httptest.Server, query string) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + query
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ws, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ws.Close(websocket.StatusNormalClosure, "") })
	return ws
}

func readEnvelope(t *testing.T, ws *websocket.Conn) Envelope {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, data, err := ws.Read(ctx)
	require.NoError(t, err)

	var env Envelope
	require.NoError(t, json.Unmarshal(data, &env))
	return env
}

func TestHandshakeWithQueryToken(t *testing.T) {
	hub, issuer, srv := newTestHub(t)

	token, err := issuer.Issue(auth.Principal{UserID: "u1", OrgID: "org-1", Role: auth.RoleAdmin})
	require.NoError(t, err)

	ws := dial(t, srv, "/?token="+token)

	env := readEnvelope(t, ws)
	assert.Equal(t, EventAuthSuccess, env.Event)

	data, ok := env.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "org-1", data["orgId"])
	assert.Equal(t, "u1", data["userId"])

	require.Eventually(t, func() bool {
		return hub.roomSize(RoomForOrg("org-1")) == 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestHandshakeWithFirstFrame(t *testing.T) {
	hub, issuer, srv := newTestHub(t)

	token, err := issuer.Issue(auth.Principal{UserID: "u1", OrgID: "org-1", Role: auth.RoleDeveloper})
	require.NoError(t, err)

	ws := dial(t, srv, "/")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	hello, _ := json.Marshal(map[string]string{"token": token})
	require.NoError(t, ws.Write(ctx, websocket.MessageText, hello))

	env := readEnvelope(t, ws)
	assert.Equal(t, EventAuthSuccess, env.Event)

	require.Eventually(t, func() bool {
		return hub.ActiveConnections() == 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestHandshakeRejectsBadToken(t *testing.T) {
	hub, _, srv := newTestHub(t)

	ws := dial(t, srv, "/?token=not-a-jwt")

	env := readEnvelope(t, ws)
	assert.Equal(t, EventAuthError, env.Event)
	assert.Equal(t, 0, hub.ActiveConnections())
}

func TestBroadcastReachesOnlyOwnRoom(t *testing.T) {
	hub, issuer, srv := newTestHub(t)

	tokenA, err := issuer.Issue(auth.Principal{UserID: "ua", OrgID: "org-a", Role: auth.RoleViewer})
	require.NoError(t, err)
	tokenB, err := issuer.Issue(auth.Principal{UserID: "ub", OrgID: "org-b", Role: auth.RoleViewer})
	require.NoError(t, err)

	wsA := dial(t, srv, "/?token="+tokenA)
	wsB := dial(t, srv, "/?token="+tokenB)

	require.Equal(t, EventAuthSuccess, readEnvelope(t, wsA).Event)
	require.Equal(t, EventAuthSuccess, readEnvelope(t, wsB).Event)

	require.Eventually(t, func() bool {
		return hub.roomSize(RoomForOrg("org-a")) == 1 && hub.roomSize(RoomForOrg("org-b")) == 1
	}, 2*time.Second, 10*time.Millisecond)

	hub.Broadcast(RoomForOrg("org-a"), EventExecutionLog, ExecutionLogPayload{
		TaskID: "t1",
		OrgID:  "org-a",
		Log:    "line one",
	})
	hub.Broadcast(RoomForOrg("org-b"), EventExecutionUpdated, ExecutionUpdatedPayload{
		TaskID: "t2",
		OrgID:  "org-b",
		Status: "PASSED",
	})

	// Each client sees its own org's event first; cross-room leakage would
	// deliver org-a's log to wsB before the update.
	envA := readEnvelope(t, wsA)
	assert.Equal(t, EventExecutionLog, envA.Event)

	envB := readEnvelope(t, wsB)
	assert.Equal(t, EventExecutionUpdated, envB.Event)
}

func TestPingPong(t *testing.T) {
	_, issuer, srv := newTestHub(t)

	token, err := issuer.Issue(auth.Principal{UserID: "u1", OrgID: "org-1", Role: auth.RoleAdmin})
	require.NoError(t, err)

	ws := dial(t, srv, "/?token="+token)
	require.Equal(t, EventAuthSuccess, readEnvelope(t, ws).Event)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, ws.Write(ctx, websocket.MessageText, []byte(`{"action":"ping"}`)))

	env := readEnvelope(t, ws)
	assert.Equal(t, "pong", env.Event)
}

func TestSendQueueOverflowDrops(t *testing.T) {
	hub := NewHub(auth.NewTokenIssuer([]byte("test-secret"), time.Hour), time.Second, slog.Default())
	c := &conn{id: "c1", room: RoomForOrg("org-1"), send: make(chan []byte, 2)}

	hub.enqueue(c, []byte("one"))
	hub.enqueue(c, []byte("two"))
	// Queue is full; this must drop instead of blocking.
	hub.enqueue(c, []byte("three"))

	assert.Len(t, c.send, 2)
	assert.Equal(t, []byte("one"), <-c.send)
}

func TestBroadcastToEmptyRoomIsNoop(t *testing.T) {
	hub, _, srv := newTestHub(t)
	_ = srv

	// Must not panic or block.
	hub.Broadcast(RoomForOrg("nobody"), EventExecutionUpdated, nil)
	assert.Equal(t, 0, hub.ActiveConnections())
}
