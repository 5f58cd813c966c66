package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/agnox-io/agnox/ent"
	"github.com/agnox-io/agnox/pkg/cache"
	"github.com/agnox-io/agnox/pkg/config"
	"github.com/agnox-io/agnox/pkg/events"
	"github.com/agnox-io/agnox/pkg/models"
	"github.com/agnox-io/agnox/pkg/services"
)

// Session is the transient document binding one reporter process to its
// execution and cycle. Cached under ingest:session:{id} with a sliding TTL;
// archived to the store at teardown.
type Session struct {
	ID              string    `json:"sessionId"`
	OrgID           string    `json:"orgId"`
	ProjectID       string    `json:"projectId"`
	TaskID          string    `json:"taskId"`
	CycleID         string    `json:"cycleId"`
	CycleItemID     string    `json:"cycleItemId"`
	Framework       string    `json:"framework"`
	ReporterVersion string    `json:"reporterVersion"`
	TotalTests      int       `json:"totalTests"`
	Status          string    `json:"status"`
	StartTime       time.Time `json:"startTime"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Event is one entry of an event batch.
type Event struct {
	Type      string `json:"type"` // log, test-begin, test-end, status
	TestID    string `json:"testId,omitempty"`
	Title     string `json:"title,omitempty"`
	File      string `json:"file,omitempty"`
	Chunk     string `json:"chunk,omitempty"`
	Status    string `json:"status,omitempty"`
	Duration  int64  `json:"duration,omitempty"`
	Error     string `json:"error,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// SetupInput is the payload opening a session.
type SetupInput struct {
	ProjectID       string
	RunName         string
	Framework       string
	ReporterVersion string
	TotalTests      int
	Environment     string
	CIContext       map[string]interface{}
}

// SetupResult is returned by Setup.
type SetupResult struct {
	SessionID string `json:"sessionId"`
	TaskID    string `json:"taskId"`
	CycleID   string `json:"cycleId"`
}

// TeardownInput closes a session.
type TeardownInput struct {
	SessionID string
	Status    string // PASSED or FAILED
	Summary   TeardownSummary
}

// TeardownSummary is the reporter's own rollup, logged for reconciliation.
type TeardownSummary struct {
	Total    int   `json:"total"`
	Passed   int   `json:"passed"`
	Failed   int   `json:"failed"`
	Skipped  int   `json:"skipped"`
	Duration int64 `json:"duration"`
}

// Manager owns the ingest session lifecycle. Cache writes are pipelined and
// fire-and-forget; when the cache is unreachable the session degrades to the
// in-process fallback store.
type Manager struct {
	db         *ent.Client
	cache      *cache.Client
	fallback   *FallbackStore
	projects   *services.ProjectService
	executions *services.ExecutionService
	cycles     *services.CycleService
	hub        events.Broadcaster
	cfg        config.IngestConfig
	logger     *slog.Logger
}

// NewManager creates a Manager. cacheClient may be nil when the cache is
// disabled; every session then lives in the fallback store.
func NewManager(
	db *ent.Client,
	cacheClient *cache.Client,
	fallback *FallbackStore,
	projects *services.ProjectService,
	executions *services.ExecutionService,
	cycles *services.CycleService,
	hub events.Broadcaster,
	cfg config.IngestConfig,
	logger *slog.Logger,
) *Manager {
	return &Manager{
		db:         db,
		cache:      cacheClient,
		fallback:   fallback,
		projects:   projects,
		executions: executions,
		cycles:     cycles,
		hub:        hub,
		cfg:        cfg,
		logger:     logger.With("component", "ingest"),
	}
}

// Setup opens a session: allocates identifiers, creates the backing cycle
// and sentinel execution, and caches the session document.
func (m *Manager) Setup(ctx context.Context, orgID string, in SetupInput) (SetupResult, error) {
	if in.ProjectID == "" {
		return SetupResult{}, services.NewValidationError("projectId", "required")
	}
	if in.Framework == "" {
		return SetupResult{}, services.NewValidationError("framework", "required")
	}

	// A project outside the caller's org must not leak existence either way;
	// the ingest contract answers 403 here.
	if _, err := m.projects.Get(ctx, orgID, in.ProjectID); err != nil {
		if err == services.ErrNotFound {
			return SetupResult{}, services.ErrForbidden
		}
		return SetupResult{}, err
	}

	now := time.Now()
	taskID := NewTaskID(now)
	runName := in.RunName
	if runName == "" {
		runName = fmt.Sprintf("%s run %s", in.Framework, now.Format("2006-01-02 15:04"))
	}

	cycle, itemID, err := m.cycles.CreateForIngest(ctx, orgID, in.ProjectID, runName, taskID)
	if err != nil {
		return SetupResult{}, err
	}

	ingestMeta := map[string]interface{}{
		"framework":       in.Framework,
		"reporterVersion": in.ReporterVersion,
		"totalTests":      in.TotalTests,
	}
	if len(in.CIContext) > 0 {
		ingestMeta["ciContext"] = in.CIContext
	}

	exec, err := m.executions.CreateIngest(ctx, services.IngestInput{
		TaskID:      taskID,
		OrgID:       orgID,
		CycleID:     cycle.ID,
		CycleItemID: itemID,
		Environment: in.Environment,
		IngestMeta:  ingestMeta,
	})
	if err != nil {
		return SetupResult{}, err
	}

	session := &Session{
		ID:              uuid.New().String(),
		OrgID:           orgID,
		ProjectID:       in.ProjectID,
		TaskID:          taskID,
		CycleID:         cycle.ID,
		CycleItemID:     itemID,
		Framework:       in.Framework,
		ReporterVersion: in.ReporterVersion,
		TotalTests:      in.TotalTests,
		Status:          "RUNNING",
		StartTime:       now,
		CreatedAt:       now,
	}
	m.saveSession(ctx, session)

	m.hub.Broadcast(events.RoomForOrg(orgID), events.EventExecutionUpdated, events.ExecutionUpdatedPayload{
		TaskID: exec.TaskID,
		OrgID:  orgID,
		Status: string(exec.Status),
		Source: models.SourceExternalCI,
	})

	m.logger.Info("Ingest session opened",
		"session_id", session.ID,
		"org_id", orgID,
		"task_id", taskID,
		"framework", in.Framework,
		"total_tests", in.TotalTests)

	return SetupResult{SessionID: session.ID, TaskID: taskID, CycleID: cycle.ID}, nil
}

// Event applies one batch in array order: log lines and structured results
// go to the cache in a single pipelined round-trip, broadcasts go out
// immediately. The response never blocks on the cache.
func (m *Manager) Event(ctx context.Context, orgID, sessionID string, batch []Event) error {
	if len(batch) < 1 || len(batch) > MaxBatchSize {
		return services.NewValidationError("events", fmt.Sprintf("batch size must be in [1,%d]", MaxBatchSize))
	}
	for _, evt := range batch {
		if len(evt.Chunk) > MaxChunkSize {
			return services.NewValidationError("chunk", fmt.Sprintf("must be at most %d bytes", MaxChunkSize))
		}
	}

	session, err := m.getSession(ctx, sessionID)
	if err != nil {
		return err
	}
	if session.OrgID != orgID {
		return services.ErrForbidden
	}

	room := events.RoomForOrg(orgID)
	var logLines []string
	var results []models.TestResult

	for _, evt := range batch {
		switch evt.Type {
		case "log":
			logLines = append(logLines, evt.Chunk)
			m.broadcastLog(room, session, evt.Chunk)

		case "test-begin":
			line := FormatTestBegin(evt.Title)
			logLines = append(logLines, line)
			m.broadcastLog(room, session, line)

		case "test-end":
			line := FormatTestEnd(evt.Title, evt.Status, evt.Duration, evt.Error)
			logLines = append(logLines, line)
			results = append(results, models.TestResult{
				TestID:    evt.TestID,
				Status:    evt.Status,
				Duration:  evt.Duration,
				Error:     evt.Error,
				Timestamp: evt.Timestamp,
			})
			m.broadcastLog(room, session, line)

		case "status":
			m.hub.Broadcast(room, events.EventExecutionUpdated, events.ExecutionUpdatedPayload{
				TaskID: session.TaskID,
				OrgID:  orgID,
				Status: evt.Status,
				Source: models.SourceExternalCI,
			})

		default:
			return services.NewValidationError("type", "unknown event type "+evt.Type)
		}
	}

	m.applyBatch(session, logLines, results)
	return nil
}

// Teardown drains the session's buffered results and logs, finalizes the
// execution and cycle, archives the session, and clears the cache keys.
func (m *Manager) Teardown(ctx context.Context, orgID string, in TeardownInput) error {
	if in.Status != "PASSED" && in.Status != "FAILED" {
		return services.NewValidationError("status", "must be PASSED or FAILED")
	}

	session, err := m.getSession(ctx, in.SessionID)
	if err != nil {
		return err
	}
	if session.OrgID != orgID {
		return services.ErrForbidden
	}

	results, output := m.drain(ctx, session)

	if _, err := m.executions.FinalizeIngest(ctx, orgID, session.TaskID, in.Status, results, output); err != nil {
		return err
	}
	if _, err := m.cycles.CompleteForIngest(ctx, orgID, session.CycleID, session.TaskID, in.Status); err != nil {
		return err
	}

	if err := m.archive(ctx, session, in.Status); err != nil {
		return err
	}

	m.deleteCacheKeys(session)

	m.hub.Broadcast(events.RoomForOrg(orgID), events.EventExecutionUpdated, events.ExecutionUpdatedPayload{
		TaskID: session.TaskID,
		OrgID:  orgID,
		Status: in.Status,
		Source: models.SourceExternalCI,
	})

	m.logger.Info("Ingest session closed",
		"session_id", session.ID,
		"org_id", orgID,
		"task_id", session.TaskID,
		"status", in.Status,
		"results", len(results),
		"reported_total", in.Summary.Total)
	return nil
}

func (m *Manager) broadcastLog(room string, session *Session, line string) {
	m.hub.Broadcast(room, events.EventExecutionLog, events.ExecutionLogPayload{
		TaskID: session.TaskID,
		OrgID:  session.OrgID,
		Log:    line,
	})
}

func (m *Manager) saveSession(ctx context.Context, session *Session) {
	if m.cache != nil {
		doc, err := json.Marshal(session)
		if err == nil {
			if err = m.cache.Set(ctx, sessionKey(session.ID), doc, m.cfg.SessionTTL).Err(); err == nil {
				return
			}
		}
		m.logger.Warn("Cache unavailable, session degraded to in-process store",
			"session_id", session.ID, "error", err)
	}
	m.fallback.Save(session)
}

func (m *Manager) getSession(ctx context.Context, sessionID string) (*Session, error) {
	if sessionID == "" {
		return nil, services.NewValidationError("sessionId", "required")
	}

	if m.cache != nil {
		doc, err := m.cache.Get(ctx, sessionKey(sessionID)).Bytes()
		if err == nil {
			var session Session
			if err := json.Unmarshal(doc, &session); err != nil {
				return nil, fmt.Errorf("decode session: %w", err)
			}
			return &session, nil
		}
		if err != redis.Nil {
			m.logger.Warn("Cache read failed, trying fallback store",
				"session_id", sessionID, "error", err)
		}
	}

	if session := m.fallback.Get(sessionID); session != nil {
		return session, nil
	}
	return nil, services.ErrNotFound
}

// applyBatch writes a batch's log lines and results. The cache path is one
// pipelined round-trip executed off the request goroutine.
func (m *Manager) applyBatch(session *Session, logLines []string, results []models.TestResult) {
	if m.cache == nil {
		m.applyBatchFallback(session, logLines, results)
		return
	}

	pipe := m.cache.Pipeline()
	for _, line := range logLines {
		pipe.Append(context.Background(), LogKey(session.TaskID), line+"\n")
	}
	if len(logLines) > 0 {
		pipe.Expire(context.Background(), LogKey(session.TaskID), m.cfg.LogTTL)
	}
	for _, rec := range results {
		doc, err := json.Marshal(rec)
		if err != nil {
			continue
		}
		pipe.RPush(context.Background(), resultsKey(session.ID), doc)
	}
	// Sliding session TTL, extended on every batch.
	pipe.Expire(context.Background(), sessionKey(session.ID), m.cfg.SessionTTL)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if _, err := pipe.Exec(ctx); err != nil {
			m.logger.Warn("Cache batch write failed, buffering in fallback store",
				"session_id", session.ID, "error", err)
			m.applyBatchFallback(session, logLines, results)
		}
	}()
}

func (m *Manager) applyBatchFallback(session *Session, logLines []string, results []models.TestResult) {
	if m.fallback.Get(session.ID) == nil {
		m.fallback.Save(session)
	}
	for _, line := range logLines {
		m.fallback.AppendLog(session.ID, line)
	}
	for _, rec := range results {
		m.fallback.PushResult(session.ID, rec)
	}
	m.fallback.Touch(session.ID)
}

// drain collects buffered results and logs from the cache and the fallback
// store. A session that degraded mid-run may hold data in both.
func (m *Manager) drain(ctx context.Context, session *Session) ([]models.TestResult, string) {
	var results []models.TestResult
	var output strings.Builder

	if m.cache != nil {
		raw, err := m.cache.LRange(ctx, resultsKey(session.ID), 0, -1).Result()
		if err != nil && err != redis.Nil {
			m.logger.Warn("Failed to drain cached results",
				"session_id", session.ID, "error", err)
		}
		for _, doc := range raw {
			var rec models.TestResult
			if err := json.Unmarshal([]byte(doc), &rec); err != nil {
				continue
			}
			results = append(results, rec)
		}

		logs, err := m.cache.Get(ctx, LogKey(session.TaskID)).Result()
		if err != nil && err != redis.Nil {
			m.logger.Warn("Failed to drain cached logs",
				"session_id", session.ID, "error", err)
		}
		output.WriteString(logs)
	}

	fbResults, fbLogs := m.fallback.Drain(session.ID)
	results = append(results, fbResults...)
	output.WriteString(fbLogs)

	return results, output.String()
}

func (m *Manager) archive(ctx context.Context, session *Session, status string) error {
	_, err := m.db.IngestArchive.Create().
		SetID(session.ID).
		SetOrgID(session.OrgID).
		SetProjectID(session.ProjectID).
		SetTaskID(session.TaskID).
		SetCycleID(session.CycleID).
		SetCycleItemID(session.CycleItemID).
		SetFramework(session.Framework).
		SetReporterVersion(session.ReporterVersion).
		SetTotalTests(session.TotalTests).
		SetStatus(status).
		SetStartTime(session.StartTime).
		SetExpiresAt(time.Now().Add(m.cfg.ArchiveTTL)).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Duplicate teardown; the first one already archived.
			return services.ErrNotFound
		}
		return fmt.Errorf("archive session: %w", err)
	}
	return nil
}

func (m *Manager) deleteCacheKeys(session *Session) {
	if m.cache == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := m.cache.Del(ctx,
			LogKey(session.TaskID),
			resultsKey(session.ID),
			sessionKey(session.ID),
		).Err(); err != nil {
			m.logger.Warn("Failed to delete session cache keys",
				"session_id", session.ID, "error", err)
		}
	}()
}
