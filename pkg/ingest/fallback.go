package ingest

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/agnox-io/agnox/pkg/models"
)

// sweepInterval is how often expired fallback entries are collected.
const sweepInterval = 10 * time.Minute

// FallbackStore is the in-process session store used while the cache is
// unreachable. Entries expire after a fixed TTL; a background sweeper
// collects them so an extended cache outage cannot grow memory unbounded.
type FallbackStore struct {
	ttl    time.Duration
	logger *slog.Logger

	mu      sync.RWMutex
	entries map[string]*fallbackEntry

	stopCh chan struct{}
	doneCh chan struct{}
}

type fallbackEntry struct {
	session   *Session
	results   []models.TestResult
	logs      strings.Builder
	expiresAt time.Time
}

// NewFallbackStore creates a FallbackStore with the given entry TTL.
func NewFallbackStore(ttl time.Duration, logger *slog.Logger) *FallbackStore {
	return &FallbackStore{
		ttl:     ttl,
		logger:  logger.With("component", "ingest_fallback"),
		entries: make(map[string]*fallbackEntry),
	}
}

// Start launches the background sweeper.
func (f *FallbackStore) Start() {
	f.stopCh = make(chan struct{})
	f.doneCh = make(chan struct{})

	go func() {
		defer close(f.doneCh)
		ticker := time.NewTicker(sweepInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				f.sweep()
			case <-f.stopCh:
				return
			}
		}
	}()
}

// Stop terminates the sweeper and waits for it to exit.
func (f *FallbackStore) Stop() {
	if f.stopCh == nil {
		return
	}
	close(f.stopCh)
	<-f.doneCh
}

// Save stores a session. An existing entry keeps its buffered results and
// logs; only the session document and expiry are refreshed, so a degraded
// session re-saved mid-run never loses earlier batches.
func (f *FallbackStore) Save(session *Session) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if entry, ok := f.entries[session.ID]; ok {
		entry.session = session
		entry.expiresAt = time.Now().Add(f.ttl)
		return
	}
	f.entries[session.ID] = &fallbackEntry{
		session:   session,
		expiresAt: time.Now().Add(f.ttl),
	}
}

// Get returns a live session, or nil when absent or expired.
func (f *FallbackStore) Get(sessionID string) *Session {
	f.mu.RLock()
	defer f.mu.RUnlock()
	entry, ok := f.entries[sessionID]
	if !ok || time.Now().After(entry.expiresAt) {
		return nil
	}
	return entry.session
}

// Touch slides the entry's expiry, mirroring the cache's sliding TTL.
func (f *FallbackStore) Touch(sessionID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if entry, ok := f.entries[sessionID]; ok {
		entry.expiresAt = time.Now().Add(f.ttl)
	}
}

// AppendLog buffers a formatted log line for the session.
func (f *FallbackStore) AppendLog(sessionID, line string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if entry, ok := f.entries[sessionID]; ok {
		entry.logs.WriteString(line)
		entry.logs.WriteString("\n")
	}
}

// PushResult buffers a structured test record for the session.
func (f *FallbackStore) PushResult(sessionID string, rec models.TestResult) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if entry, ok := f.entries[sessionID]; ok {
		entry.results = append(entry.results, rec)
	}
}

// Drain removes the entry and returns its buffered results and logs.
func (f *FallbackStore) Drain(sessionID string) ([]models.TestResult, string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	entry, ok := f.entries[sessionID]
	if !ok {
		return nil, ""
	}
	delete(f.entries, sessionID)
	return entry.results, entry.logs.String()
}

// bufferedResults returns the buffered result count for a session. Tests
// poll this instead of sleeping.
func (f *FallbackStore) bufferedResults(sessionID string) int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	entry, ok := f.entries[sessionID]
	if !ok {
		return 0
	}
	return len(entry.results)
}

// Size returns the live entry count.
func (f *FallbackStore) Size() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.entries)
}

func (f *FallbackStore) sweep() {
	now := time.Now()

	f.mu.Lock()
	removed := 0
	for id, entry := range f.entries {
		if now.After(entry.expiresAt) {
			delete(f.entries, id)
			removed++
		}
	}
	remaining := len(f.entries)
	f.mu.Unlock()

	if removed > 0 {
		f.logger.Info("Swept expired fallback sessions",
			"removed", removed, "remaining", remaining)
	}
}
