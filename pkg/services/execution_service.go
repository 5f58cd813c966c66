package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/agnox-io/agnox/ent"
	"github.com/agnox-io/agnox/ent/execution"
	"github.com/agnox-io/agnox/pkg/models"
)

// IsTerminalStatus reports whether a status admits no further worker
// transitions. Terminal rows only accept annotation updates.
func IsTerminalStatus(status string) bool {
	switch execution.Status(status) {
	case execution.StatusPASSED, execution.StatusFAILED, execution.StatusERROR, execution.StatusUNSTABLE:
		return true
	default:
		return false
	}
}

// ExecutionService manages execution rows. The external identity of a run
// is (taskId, orgId); every lookup here carries both.
type ExecutionService struct {
	client *ent.Client
}

// NewExecutionService creates a new ExecutionService.
func NewExecutionService(client *ent.Client) *ExecutionService {
	return &ExecutionService{client: client}
}

// UpsertPending creates the PENDING row for a dispatched task, or resets an
// existing row with the same (taskId, orgId) back to PENDING. Re-dispatching
// a taskId is allowed; workers de-duplicate on their side.
func (s *ExecutionService) UpsertPending(ctx context.Context, msg models.TaskMessage) (*ent.Execution, error) {
	existing, err := s.client.Execution.Query().
		Where(
			execution.TaskIDEQ(msg.TaskID),
			execution.OrgIDEQ(msg.OrganizationID),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("lookup execution: %w", err)
	}

	if existing != nil {
		updated, err := existing.Update().
			SetStatus(execution.StatusPENDING).
			SetImage(msg.Image).
			SetCommand(msg.Command).
			SetFolder(msg.Folder).
			SetStartTime(time.Now()).
			ClearEndTime().
			SetConfig(msg.Config).
			SetTrigger(execution.Trigger(msg.Trigger)).
			SetGroupName(msg.GroupName).
			SetBatchID(msg.BatchID).
			SetCycleID(msg.CycleID).
			SetCycleItemID(msg.CycleItemID).
			ClearDeletedAt().
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("reset execution: %w", err)
		}
		return updated, nil
	}

	exec, err := s.client.Execution.Create().
		SetID(uuid.New().String()).
		SetTaskID(msg.TaskID).
		SetOrgID(msg.OrganizationID).
		SetSource(execution.SourceAgnoxHosted).
		SetStatus(execution.StatusPENDING).
		SetImage(msg.Image).
		SetCommand(msg.Command).
		SetFolder(msg.Folder).
		SetStartTime(time.Now()).
		SetConfig(msg.Config).
		SetTrigger(execution.Trigger(msg.Trigger)).
		SetGroupName(msg.GroupName).
		SetBatchID(msg.BatchID).
		SetCycleID(msg.CycleID).
		SetCycleItemID(msg.CycleItemID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create execution: %w", err)
	}
	return exec, nil
}

// IngestInput describes the RUNNING execution created for an external-CI
// ingest session.
type IngestInput struct {
	TaskID      string
	OrgID       string
	CycleID     string
	CycleItemID string
	Environment string
	IngestMeta  map[string]interface{}
}

// CreateIngest creates the sentinel-image RUNNING execution backing an
// ingest session.
func (s *ExecutionService) CreateIngest(ctx context.Context, in IngestInput) (*ent.Execution, error) {
	exec, err := s.client.Execution.Create().
		SetID(uuid.New().String()).
		SetTaskID(in.TaskID).
		SetOrgID(in.OrgID).
		SetSource(execution.SourceExternalCi).
		SetStatus(execution.StatusRUNNING).
		SetImage(models.SourceExternalCI).
		SetStartTime(time.Now()).
		SetConfig(models.TaskConfig{Environment: in.Environment}).
		SetTrigger(execution.TriggerWebhook).
		SetCycleID(in.CycleID).
		SetCycleItemID(in.CycleItemID).
		SetIngestMeta(in.IngestMeta).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create ingest execution: %w", err)
	}
	return exec, nil
}

// WorkerUpdate is the status transition reported by a worker callback.
type WorkerUpdate struct {
	TaskID  string
	OrgID   string
	Status  string
	EndTime *time.Time
	Output  string
	Tests   []models.TestResult
}

// UpdateFromWorker applies a worker-reported transition. Rows already in a
// terminal status are left untouched and returned as-is; unknown
// (taskId, orgId) pairs surface ErrNotFound.
func (s *ExecutionService) UpdateFromWorker(ctx context.Context, in WorkerUpdate) (*ent.Execution, error) {
	if err := execution.StatusValidator(execution.Status(in.Status)); err != nil {
		return nil, NewValidationError("status", "unknown status "+in.Status)
	}

	exec, err := s.get(ctx, in.OrgID, in.TaskID)
	if err != nil {
		return nil, err
	}
	if IsTerminalStatus(string(exec.Status)) {
		return exec, nil
	}

	update := exec.Update().SetStatus(execution.Status(in.Status))
	if in.EndTime != nil {
		update.SetEndTime(*in.EndTime)
	} else if IsTerminalStatus(in.Status) {
		update.SetEndTime(time.Now())
	}
	if in.Output != "" {
		update.SetOutput(in.Output)
	}
	if len(in.Tests) > 0 {
		update.SetTests(in.Tests)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update execution: %w", err)
	}
	return updated, nil
}

// FinalizeIngest closes out an ingest-backed execution at teardown with the
// drained results and log buffer.
func (s *ExecutionService) FinalizeIngest(ctx context.Context, orgID, taskID, status string, tests []models.TestResult, output string) (*ent.Execution, error) {
	if err := execution.StatusValidator(execution.Status(status)); err != nil {
		return nil, NewValidationError("status", "unknown status "+status)
	}

	exec, err := s.get(ctx, orgID, taskID)
	if err != nil {
		return nil, err
	}

	update := exec.Update().
		SetStatus(execution.Status(status)).
		SetEndTime(time.Now())
	if len(tests) > 0 {
		update.SetTests(tests)
	}
	if output != "" {
		update.SetOutput(output)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("finalize execution: %w", err)
	}
	return updated, nil
}

// List returns a page of the org's executions, newest first. Soft-deleted
// rows are excluded; a status filter is optional.
func (s *ExecutionService) List(ctx context.Context, orgID string, params models.ListParams) ([]*ent.Execution, int, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 || params.PageSize > 100 {
		params.PageSize = 20
	}

	query := s.client.Execution.Query().
		Where(
			execution.OrgIDEQ(orgID),
			execution.DeletedAtIsNil(),
		)
	if params.Status != "" {
		if err := execution.StatusValidator(execution.Status(params.Status)); err != nil {
			return nil, 0, NewValidationError("status", "unknown status "+params.Status)
		}
		query = query.Where(execution.StatusEQ(execution.Status(params.Status)))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count executions: %w", err)
	}

	executions, err := query.
		Order(ent.Desc(execution.FieldStartTime)).
		Offset((params.Page - 1) * params.PageSize).
		Limit(params.PageSize).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("list executions: %w", err)
	}
	return executions, total, nil
}

// Get returns an execution by its external identity.
func (s *ExecutionService) Get(ctx context.Context, orgID, taskID string) (*ent.Execution, error) {
	exec, err := s.get(ctx, orgID, taskID)
	if err != nil {
		return nil, err
	}
	if exec.DeletedAt != nil {
		return nil, ErrNotFound
	}
	return exec, nil
}

// SoftDelete marks an execution deleted. The retention loop hard-deletes
// it later.
func (s *ExecutionService) SoftDelete(ctx context.Context, orgID, taskID string) error {
	exec, err := s.Get(ctx, orgID, taskID)
	if err != nil {
		return err
	}
	if _, err := exec.Update().SetDeletedAt(time.Now()).Save(ctx); err != nil {
		return fmt.Errorf("soft delete execution: %w", err)
	}
	return nil
}

func (s *ExecutionService) get(ctx context.Context, orgID, taskID string) (*ent.Execution, error) {
	exec, err := s.client.Execution.Query().
		Where(
			execution.TaskIDEQ(taskID),
			execution.OrgIDEQ(orgID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get execution: %w", err)
	}
	return exec, nil
}
