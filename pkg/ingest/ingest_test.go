package ingest

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agnox-io/agnox/pkg/cache"
	"github.com/agnox-io/agnox/pkg/config"
	"github.com/agnox-io/agnox/pkg/models"
	"github.com/agnox-io/agnox/pkg/services"
)

type recordingBroadcaster struct {
	mu     sync.Mutex
	events []string
}

func (r *recordingBroadcaster) Broadcast(room, event string, data interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, room+"/"+event)
}

func (r *recordingBroadcaster) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

func newTestManager(t *testing.T) (*Manager, *miniredis.Miniredis, *recordingBroadcaster) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	hub := &recordingBroadcaster{}
	fallback := NewFallbackStore(4*time.Hour, slog.Default())
	cfg := config.IngestConfig{
		SessionTTL:  24 * time.Hour,
		LogTTL:      4 * time.Hour,
		FallbackTTL: 4 * time.Hour,
		ArchiveTTL:  7 * 24 * time.Hour,
	}

	m := NewManager(nil, &cache.Client{Client: rdb}, fallback, nil, nil, nil, hub, cfg, slog.Default())
	return m, mr, hub
}

func seedSession(t *testing.T, m *Manager) *Session {
	t.Helper()

	session := &Session{
		ID:        "sess-1",
		OrgID:     "org-1",
		ProjectID: "proj-1",
		TaskID:    "ingest-1724500000000-abcd1234",
		CycleID:   "cycle-1",
		Status:    "RUNNING",
		StartTime: time.Now(),
		CreatedAt: time.Now(),
	}
	m.saveSession(context.Background(), session)
	return session
}

func TestNewTaskID(t *testing.T) {
	now := time.UnixMilli(1724500000000)
	id := NewTaskID(now)
	assert.True(t, strings.HasPrefix(id, "ingest-1724500000000-"), id)
	// ms timestamp plus 8-char suffix.
	parts := strings.Split(id, "-")
	require.Len(t, parts, 3)
	assert.Len(t, parts[2], 8)
}

func TestFormatTestBegin(t *testing.T) {
	assert.Equal(t, "▶ RUNNING  login works", FormatTestBegin("login works"))
}

func TestFormatTestEnd(t *testing.T) {
	assert.Equal(t, "✔ PASSED   login works (120ms)",
		FormatTestEnd("login works", "passed", 120, ""))
	assert.Equal(t, "– SKIPPED  flaky check (0ms)",
		FormatTestEnd("flaky check", "skipped", 0, ""))
	assert.Equal(t, "✘ TIMEOUT  slow page (30000ms)",
		FormatTestEnd("slow page", "timedOut", 30000, ""))

	withErr := FormatTestEnd("checkout", "failed", 900, "expected 200, got 500")
	assert.Contains(t, withErr, "✘ FAILED   checkout (900ms)")
	assert.Contains(t, withErr, "expected 200, got 500")
}

func TestSessionRoundTripThroughCache(t *testing.T) {
	m, mr, _ := newTestManager(t)
	session := seedSession(t, m)

	assert.True(t, mr.Exists(sessionKey(session.ID)))

	got, err := m.getSession(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.OrgID, got.OrgID)
	assert.Equal(t, session.TaskID, got.TaskID)
}

func TestGetSessionNotFound(t *testing.T) {
	m, _, _ := newTestManager(t)

	_, err := m.getSession(context.Background(), "missing")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestEventBatchValidation(t *testing.T) {
	m, _, _ := newTestManager(t)
	session := seedSession(t, m)

	err := m.Event(context.Background(), session.OrgID, session.ID, nil)
	assert.Error(t, err)

	tooBig := make([]Event, MaxBatchSize+1)
	for i := range tooBig {
		tooBig[i] = Event{Type: "log", Chunk: "x"}
	}
	err = m.Event(context.Background(), session.OrgID, session.ID, tooBig)
	assert.Error(t, err)

	err = m.Event(context.Background(), session.OrgID, session.ID, []Event{
		{Type: "log", Chunk: strings.Repeat("x", MaxChunkSize+1)},
	})
	assert.Error(t, err)
}

func TestEventCrossOrgRejected(t *testing.T) {
	m, _, _ := newTestManager(t)
	session := seedSession(t, m)

	err := m.Event(context.Background(), "other-org", session.ID, []Event{
		{Type: "log", Chunk: "hi"},
	})
	assert.ErrorIs(t, err, services.ErrForbidden)
}

func TestEventBatchWritesCacheAndBroadcasts(t *testing.T) {
	m, mr, hub := newTestManager(t)
	session := seedSession(t, m)

	err := m.Event(context.Background(), session.OrgID, session.ID, []Event{
		{Type: "test-begin", TestID: "t-a", Title: "A", Timestamp: 1},
		{Type: "log", Chunk: "console output", Timestamp: 2},
		{Type: "test-end", TestID: "t-a", Title: "A", Status: "passed", Duration: 120, Timestamp: 3},
	})
	require.NoError(t, err)

	// The pipeline executes off the request goroutine.
	require.Eventually(t, func() bool {
		return mr.Exists(resultsKey(session.ID))
	}, 2*time.Second, 10*time.Millisecond)

	logs, err := mr.Get(LogKey(session.TaskID))
	require.NoError(t, err)
	assert.Contains(t, logs, "▶ RUNNING  A")
	assert.Contains(t, logs, "console output")
	assert.Contains(t, logs, "✔ PASSED   A (120ms)")

	records, err := mr.List(resultsKey(session.ID))
	require.NoError(t, err)
	require.Len(t, records, 1)
	var rec models.TestResult
	require.NoError(t, json.Unmarshal([]byte(records[0]), &rec))
	assert.Equal(t, "t-a", rec.TestID)
	assert.Equal(t, "passed", rec.Status)

	// Two log broadcasts plus one for the raw chunk.
	assert.Equal(t, 3, hub.count())

	// Log buffer carries its own TTL.
	assert.Greater(t, mr.TTL(LogKey(session.TaskID)), time.Duration(0))
}

func TestDrainCombinesCacheAndFallback(t *testing.T) {
	m, _, _ := newTestManager(t)
	session := seedSession(t, m)

	require.NoError(t, m.Event(context.Background(), session.OrgID, session.ID, []Event{
		{Type: "test-end", TestID: "t-a", Status: "passed", Duration: 10, Timestamp: 1},
	}))
	require.Eventually(t, func() bool {
		results, _ := m.drainPeek(session)
		return len(results) == 1
	}, 2*time.Second, 10*time.Millisecond)

	// A degraded batch lands in the fallback store.
	m.fallback.Save(session)
	m.fallback.PushResult(session.ID, models.TestResult{TestID: "t-b", Status: "failed", Timestamp: 2})
	m.fallback.AppendLog(session.ID, "offline line")

	results, output := m.drain(context.Background(), session)
	require.Len(t, results, 2)
	assert.Equal(t, "t-a", results[0].TestID)
	assert.Equal(t, "t-b", results[1].TestID)
	assert.Contains(t, output, "offline line")
}

// drainPeek reads the cached results without consuming the fallback store.
func (m *Manager) drainPeek(session *Session) ([]models.TestResult, error) {
	raw, err := m.cache.LRange(context.Background(), resultsKey(session.ID), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	out := make([]models.TestResult, 0, len(raw))
	for _, doc := range raw {
		var rec models.TestResult
		if json.Unmarshal([]byte(doc), &rec) == nil {
			out = append(out, rec)
		}
	}
	return out, nil
}

func TestDegradedBatchesAccumulateAcrossOutage(t *testing.T) {
	m, mr, _ := newTestManager(t)
	session := seedSession(t, m)

	// Cache outage mid-run: every batch write fails over to the fallback.
	mr.Close()

	m.applyBatch(session, []string{"first-line"},
		[]models.TestResult{{TestID: "t-a", Status: "passed", Timestamp: 1}})
	require.Eventually(t, func() bool {
		return m.fallback.bufferedResults(session.ID) == 1
	}, 5*time.Second, 10*time.Millisecond)

	m.applyBatch(session, []string{"second-line"},
		[]models.TestResult{{TestID: "t-b", Status: "passed", Timestamp: 2}})
	require.Eventually(t, func() bool {
		return m.fallback.bufferedResults(session.ID) == 2
	}, 5*time.Second, 10*time.Millisecond)

	// Teardown's drain must see every degraded batch, in arrival order.
	results, output := m.drain(context.Background(), session)
	require.Len(t, results, 2)
	assert.Equal(t, "t-a", results[0].TestID)
	assert.Equal(t, "t-b", results[1].TestID)
	assert.Equal(t, "first-line\nsecond-line\n", output)
}

func TestFallbackSaveKeepsBuffers(t *testing.T) {
	fb := NewFallbackStore(time.Hour, slog.Default())

	session := &Session{ID: "s1", OrgID: "org-1", TaskID: "t1"}
	fb.Save(session)
	fb.AppendLog("s1", "first-line")
	fb.PushResult("s1", models.TestResult{TestID: "t-a", Status: "passed"})

	// Re-saving the session document must not discard earlier buffers.
	session.Status = "RUNNING"
	fb.Save(session)
	fb.AppendLog("s1", "second-line")
	fb.PushResult("s1", models.TestResult{TestID: "t-b", Status: "passed"})

	results, logs := fb.Drain("s1")
	require.Len(t, results, 2)
	assert.Equal(t, "t-a", results[0].TestID)
	assert.Equal(t, "t-b", results[1].TestID)
	assert.Equal(t, "first-line\nsecond-line\n", logs)
}

func TestFallbackStoreLifecycle(t *testing.T) {
	fb := NewFallbackStore(50*time.Millisecond, slog.Default())

	session := &Session{ID: "s1", OrgID: "org-1", TaskID: "t1"}
	fb.Save(session)
	require.NotNil(t, fb.Get("s1"))
	assert.Equal(t, 1, fb.Size())

	fb.AppendLog("s1", "line")
	fb.PushResult("s1", models.TestResult{TestID: "t-a", Status: "passed"})

	results, logs := fb.Drain("s1")
	assert.Len(t, results, 1)
	assert.Equal(t, "line\n", logs)
	assert.Equal(t, 0, fb.Size())
	assert.Nil(t, fb.Get("s1"))
}

func TestFallbackStoreExpiry(t *testing.T) {
	fb := NewFallbackStore(20*time.Millisecond, slog.Default())

	fb.Save(&Session{ID: "s1"})
	time.Sleep(40 * time.Millisecond)
	assert.Nil(t, fb.Get("s1"))

	fb.sweep()
	assert.Equal(t, 0, fb.Size())
}
