// Package scheduler runs persisted cron schedules in-process. Each active
// schedule registers one cron job; a firing stamps a task message and pushes
// it through the dispatch pipeline's store+queue+broadcast path.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/agnox-io/agnox/ent"
	"github.com/agnox-io/agnox/pkg/models"
)

// dispatchTimeout bounds one firing's store and queue round-trips.
const dispatchTimeout = 30 * time.Second

// TaskDispatcher is the pipeline path a firing invokes. Implemented by
// dispatch.Pipeline.
type TaskDispatcher interface {
	DispatchStamped(ctx context.Context, msg models.TaskMessage) error
}

// Scheduler owns the in-memory job registry. All mutations are idempotent;
// the registry maps scheduleId to the running cron entry.
type Scheduler struct {
	cron       *cron.Cron
	dispatcher TaskDispatcher
	logger     *slog.Logger

	mu      sync.Mutex
	entries map[string]cron.EntryID
}

// New creates a Scheduler. Call Start to begin firing.
func New(dispatcher TaskDispatcher, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		cron:       cron.New(),
		dispatcher: dispatcher,
		logger:     logger.With("component", "scheduler"),
		entries:    make(map[string]cron.EntryID),
	}
}

// Start begins the cron loop.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Load registers every given schedule. Invalid cron expressions are logged
// and skipped so one bad row cannot block startup.
func (s *Scheduler) Load(schedules []*ent.Schedule) {
	registered := 0
	for _, sched := range schedules {
		if err := s.AddScheduledJob(sched); err != nil {
			s.logger.Warn("Skipping schedule with invalid cron expression",
				"schedule_id", sched.ID,
				"org_id", sched.OrgID,
				"expression", sched.CronExpression,
				"error", err)
			continue
		}
		registered++
	}
	s.logger.Info("Schedules loaded", "registered", registered, "total", len(schedules))
}

// AddScheduledJob registers a schedule. Idempotent; an already-registered
// scheduleId is left untouched.
func (s *Scheduler) AddScheduledJob(sched *ent.Schedule) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[sched.ID]; exists {
		return nil
	}

	// Copy the fields the closure needs; the ent row must not outlive this
	// call.
	job := firing{
		scheduleID:  sched.ID,
		orgID:       sched.OrgID,
		name:        sched.Name,
		environment: sched.Environment,
		image:       sched.Image,
		folder:      sched.Folder,
		baseURL:     sched.BaseURL,
	}

	entryID, err := s.cron.AddFunc(sched.CronExpression, func() {
		s.fire(job)
	})
	if err != nil {
		return fmt.Errorf("register schedule %s: %w", sched.ID, err)
	}

	s.entries[sched.ID] = entryID
	s.logger.Info("Schedule registered",
		"schedule_id", sched.ID,
		"org_id", sched.OrgID,
		"expression", sched.CronExpression)
	return nil
}

// RemoveScheduledJob stops and removes a schedule if present.
func (s *Scheduler) RemoveScheduledJob(scheduleID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entryID, exists := s.entries[scheduleID]
	if !exists {
		return
	}
	s.cron.Remove(entryID)
	delete(s.entries, scheduleID)
	s.logger.Info("Schedule removed", "schedule_id", scheduleID)
}

// StopAll stops the cron loop and waits for in-flight firings to finish.
// Called on graceful shutdown.
func (s *Scheduler) StopAll() {
	ctx := s.cron.Stop()
	<-ctx.Done()

	s.mu.Lock()
	s.entries = make(map[string]cron.EntryID)
	s.mu.Unlock()
}

// JobCount returns the number of registered jobs.
func (s *Scheduler) JobCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

type firing struct {
	scheduleID  string
	orgID       string
	name        string
	environment string
	image       string
	folder      string
	baseURL     string
}

// fire runs one scheduled dispatch. Each firing gets a fresh taskId so
// repeated runs of the same schedule stay distinct executions.
func (s *Scheduler) fire(job firing) {
	ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
	defer cancel()

	msg := models.TaskMessage{
		TaskID:         fmt.Sprintf("cron-%d-%s", time.Now().UnixMilli(), uuid.New().String()[:8]),
		Image:          job.image,
		Folder:         job.folder,
		OrganizationID: job.orgID,
		Config: models.TaskConfig{
			Environment: job.environment,
			BaseURL:     job.baseURL,
		},
		Trigger:   models.TriggerCron,
		GroupName: job.name,
	}

	if err := s.dispatcher.DispatchStamped(ctx, msg); err != nil {
		s.logger.Error("Scheduled dispatch failed",
			"schedule_id", job.scheduleID,
			"org_id", job.orgID,
			"task_id", msg.TaskID,
			"error", err)
		return
	}

	s.logger.Info("Scheduled task dispatched",
		"schedule_id", job.scheduleID,
		"org_id", job.orgID,
		"task_id", msg.TaskID)
}
