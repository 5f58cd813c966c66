// Package dispatch is the admission pipeline that turns a validated run
// request into a PENDING execution row, a queued task message, and a room
// broadcast.
package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/agnox-io/agnox/pkg/config"
	"github.com/agnox-io/agnox/pkg/events"
	"github.com/agnox-io/agnox/pkg/models"
	"github.com/agnox-io/agnox/pkg/queue"
	"github.com/agnox-io/agnox/pkg/services"
)

// MaxRetryAttempts caps per-run retries.
const MaxRetryAttempts = 5

// Request is a validated dispatch input. ProjectID scopes the env-var
// resolution; empty means no project defaults are merged.
type Request struct {
	TaskID        string
	ProjectID     string
	Image         string
	Command       string
	Folder        string
	Tests         []string
	Environment   string
	BaseURL       string
	RetryAttempts int
	EnvVars       map[string]string
	Trigger       string
	GroupName     string
	BatchID       string
	Framework     string
	CycleID       string
	CycleItemID   string
}

// Validate checks the request's fields. Env-var keys follow the same rule
// as stored project variables, except the reserved prefix which is dropped
// silently later rather than rejected.
func (r *Request) Validate() error {
	if r.TaskID == "" {
		return services.NewValidationError("taskId", "required")
	}
	if r.Image == "" {
		return services.NewValidationError("image", "required")
	}
	if err := services.ValidateEnvironment(r.Environment); err != nil {
		return err
	}
	if r.RetryAttempts < 0 || r.RetryAttempts > MaxRetryAttempts {
		return services.NewValidationError("retryAttempts", fmt.Sprintf("must be in [0,%d]", MaxRetryAttempts))
	}
	for key := range r.EnvVars {
		if strings.HasPrefix(key, services.ReservedEnvVarPrefix) {
			continue
		}
		if err := services.ValidateEnvVarKey(key); err != nil {
			return err
		}
	}
	return nil
}

// Pipeline wires plan enforcement, env-var resolution, the execution store,
// the task queue, and the room hub into one synchronous admission path.
type Pipeline struct {
	plan       *services.PlanService
	envVars    *services.EnvVarService
	executions *services.ExecutionService
	publisher  queue.TaskPublisher
	hub        events.Broadcaster
	cfg        config.DispatchConfig
	logger     *slog.Logger
}

// NewPipeline creates a Pipeline.
func NewPipeline(
	plan *services.PlanService,
	envVars *services.EnvVarService,
	executions *services.ExecutionService,
	publisher queue.TaskPublisher,
	hub events.Broadcaster,
	cfg config.DispatchConfig,
	logger *slog.Logger,
) *Pipeline {
	return &Pipeline{
		plan:       plan,
		envVars:    envVars,
		executions: executions,
		publisher:  publisher,
		hub:        hub,
		cfg:        cfg,
		logger:     logger.With("component", "dispatch"),
	}
}

// Dispatch admits one run. Role checks happen at the API layer; everything
// from plan enforcement on lives here so the cron scheduler shares the
// exact same path.
func (p *Pipeline) Dispatch(ctx context.Context, orgID string, req Request) (*models.TaskMessage, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if err := p.plan.Enforce(ctx, orgID, services.ActionRunTest); err != nil {
		return nil, err
	}

	envVars, err := p.resolveEnvVars(ctx, orgID, req)
	if err != nil {
		return nil, err
	}

	trigger := req.Trigger
	if trigger == "" {
		trigger = models.TriggerManual
	}

	baseURL := req.BaseURL
	if baseURL == "" {
		baseURL = p.cfg.BaseURLs[req.Environment]
	}

	msg := models.TaskMessage{
		TaskID:         req.TaskID,
		Image:          req.Image,
		Command:        req.Command,
		Folder:         req.Folder,
		OrganizationID: orgID,
		Config: models.TaskConfig{
			Environment:   req.Environment,
			BaseURL:       baseURL,
			RetryAttempts: req.RetryAttempts,
			EnvVars:       envVars,
		},
		Tests:       req.Tests,
		Trigger:     trigger,
		GroupName:   req.GroupName,
		BatchID:     req.BatchID,
		Framework:   req.Framework,
		CycleID:     req.CycleID,
		CycleItemID: req.CycleItemID,
	}

	exec, err := p.executions.UpsertPending(ctx, msg)
	if err != nil {
		return nil, err
	}

	priority := queue.PriorityForTrigger(trigger)
	if err := p.publisher.Publish(ctx, msg, priority); err != nil {
		// The row stays PENDING; a janitor outside this process reaps it.
		p.logger.Error("Queue publish failed after upsert",
			"task_id", msg.TaskID, "org_id", orgID, "error", err)
		return nil, fmt.Errorf("publish task: %w", err)
	}

	p.hub.Broadcast(events.RoomForOrg(orgID), events.EventExecutionUpdated, events.ExecutionUpdatedPayload{
		TaskID:  exec.TaskID,
		OrgID:   orgID,
		Status:  string(exec.Status),
		Source:  string(exec.Source),
		Trigger: trigger,
	})

	p.logger.Info("Task dispatched",
		"task_id", msg.TaskID,
		"org_id", orgID,
		"trigger", trigger,
		"priority", priority)
	return &msg, nil
}

// DispatchStamped admits a pre-stamped task message: store upsert, queue
// publish, and broadcast, without re-running validation, plan enforcement,
// or env-var resolution. The cron scheduler stamps its own messages.
func (p *Pipeline) DispatchStamped(ctx context.Context, msg models.TaskMessage) error {
	exec, err := p.executions.UpsertPending(ctx, msg)
	if err != nil {
		return err
	}

	priority := queue.PriorityForTrigger(msg.Trigger)
	if err := p.publisher.Publish(ctx, msg, priority); err != nil {
		p.logger.Error("Queue publish failed after upsert",
			"task_id", msg.TaskID, "org_id", msg.OrganizationID, "error", err)
		return fmt.Errorf("publish task: %w", err)
	}

	p.hub.Broadcast(events.RoomForOrg(msg.OrganizationID), events.EventExecutionUpdated, events.ExecutionUpdatedPayload{
		TaskID:  exec.TaskID,
		OrgID:   msg.OrganizationID,
		Status:  string(exec.Status),
		Source:  string(exec.Source),
		Trigger: msg.Trigger,
	})
	return nil
}

// resolveEnvVars merges, in increasing precedence: project defaults, then
// the request's own envVars, then server-injected variables. Reserved-prefix
// keys from the caller are dropped silently; workers drop them again.
func (p *Pipeline) resolveEnvVars(ctx context.Context, orgID string, req Request) (map[string]string, error) {
	merged := make(map[string]string)

	if req.ProjectID != "" {
		projectVars, err := p.envVars.ResolveForDispatch(ctx, orgID, req.ProjectID)
		if err != nil {
			return nil, err
		}
		for k, v := range projectVars {
			merged[k] = v
		}
	}

	for k, v := range req.EnvVars {
		if strings.HasPrefix(k, services.ReservedEnvVarPrefix) {
			p.logger.Warn("Dropping reserved env var from request",
				"key", k, "org_id", orgID, "task_id", req.TaskID)
			continue
		}
		merged[k] = v
	}

	for _, name := range p.cfg.InjectEnvVars {
		if v, ok := os.LookupEnv(name); ok {
			merged[name] = v
		}
	}

	if len(merged) == 0 {
		return nil, nil
	}
	return merged, nil
}
