// Package cleanup provides data retention services: expired ingest-session
// archives and soft-deleted executions past their retention window are
// removed on a background loop.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/agnox-io/agnox/ent"
	"github.com/agnox-io/agnox/ent/execution"
	"github.com/agnox-io/agnox/ent/ingestarchive"
	"github.com/agnox-io/agnox/pkg/config"
)

// Service periodically enforces retention policies:
//   - Purges ingest archives past their expires_at stamp
//   - Hard-deletes executions soft-deleted longer than the retention window
//
// All operations are idempotent and safe to run from multiple instances.
type Service struct {
	config config.RetentionConfig
	client *ent.Client

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg config.RetentionConfig, client *ent.Client) *Service {
	return &Service{
		config: cfg,
		client: client,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"soft_delete_retention", s.config.SoftDeleteRetention,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.purgeExpiredArchives(ctx)
	s.purgeSoftDeletedExecutions(ctx)
}

// PurgeExpiredArchives removes archives past their expires_at stamp.
func (s *Service) PurgeExpiredArchives(ctx context.Context) (int, error) {
	return s.client.IngestArchive.Delete().
		Where(ingestarchive.ExpiresAtLT(time.Now())).
		Exec(ctx)
}

// PurgeSoftDeletedExecutions hard-deletes executions whose soft delete is
// older than the retention window.
func (s *Service) PurgeSoftDeletedExecutions(ctx context.Context) (int, error) {
	cutoff := time.Now().Add(-s.config.SoftDeleteRetention)
	return s.client.Execution.Delete().
		Where(
			execution.DeletedAtNotNil(),
			execution.DeletedAtLT(cutoff),
		).
		Exec(ctx)
}

func (s *Service) purgeExpiredArchives(ctx context.Context) {
	count, err := s.PurgeExpiredArchives(ctx)
	if err != nil {
		slog.Error("Retention: archive purge failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: purged expired ingest archives", "count", count)
	}
}

func (s *Service) purgeSoftDeletedExecutions(ctx context.Context) {
	count, err := s.PurgeSoftDeletedExecutions(ctx)
	if err != nil {
		slog.Error("Retention: execution purge failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: hard-deleted old executions", "count", count)
	}
}
