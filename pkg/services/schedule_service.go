package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/agnox-io/agnox/ent"
	"github.com/agnox-io/agnox/ent/schedule"
)

// ValidateCronExpression checks a standard 5-field cron expression.
func ValidateCronExpression(expr string) error {
	if _, err := cron.ParseStandard(expr); err != nil {
		return NewValidationError("cronExpression", err.Error())
	}
	return nil
}

// ScheduleService manages persisted cron schedules. Registering and
// unregistering the live jobs is the scheduler's concern; this service only
// owns the rows.
type ScheduleService struct {
	client *ent.Client
}

// NewScheduleService creates a new ScheduleService.
func NewScheduleService(client *ent.Client) *ScheduleService {
	return &ScheduleService{client: client}
}

// ScheduleInput is the payload for creating a schedule.
type ScheduleInput struct {
	ProjectID   string
	Name        string
	CronExpr    string
	Environment string
	Image       string
	Folder      string
	BaseURL     string
}

// Create persists a new active schedule.
func (s *ScheduleService) Create(ctx context.Context, orgID string, in ScheduleInput) (*ent.Schedule, error) {
	if in.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if in.Image == "" {
		return nil, NewValidationError("image", "required")
	}
	if err := ValidateCronExpression(in.CronExpr); err != nil {
		return nil, err
	}
	if err := ValidateEnvironment(in.Environment); err != nil {
		return nil, err
	}

	sched, err := s.client.Schedule.Create().
		SetID(uuid.New().String()).
		SetOrgID(orgID).
		SetProjectID(in.ProjectID).
		SetName(in.Name).
		SetCronExpression(in.CronExpr).
		SetEnvironment(in.Environment).
		SetImage(in.Image).
		SetFolder(in.Folder).
		SetBaseURL(in.BaseURL).
		SetIsActive(true).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create schedule: %w", err)
	}
	return sched, nil
}

// List returns the org's schedules.
func (s *ScheduleService) List(ctx context.Context, orgID string) ([]*ent.Schedule, error) {
	schedules, err := s.client.Schedule.Query().
		Where(schedule.OrgIDEQ(orgID)).
		Order(ent.Asc(schedule.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}
	return schedules, nil
}

// Get returns a schedule scoped by org.
func (s *ScheduleService) Get(ctx context.Context, orgID, scheduleID string) (*ent.Schedule, error) {
	sched, err := s.client.Schedule.Query().
		Where(schedule.IDEQ(scheduleID), schedule.OrgIDEQ(orgID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get schedule: %w", err)
	}
	return sched, nil
}

// SetActive toggles a schedule without deleting it.
func (s *ScheduleService) SetActive(ctx context.Context, orgID, scheduleID string, active bool) (*ent.Schedule, error) {
	sched, err := s.Get(ctx, orgID, scheduleID)
	if err != nil {
		return nil, err
	}
	updated, err := sched.Update().SetIsActive(active).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("toggle schedule: %w", err)
	}
	return updated, nil
}

// Delete removes a schedule scoped by org.
func (s *ScheduleService) Delete(ctx context.Context, orgID, scheduleID string) error {
	n, err := s.client.Schedule.Delete().
		Where(schedule.IDEQ(scheduleID), schedule.OrgIDEQ(orgID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete schedule: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ListActive returns every active schedule across all orgs. The scheduler
// loads these at startup.
func (s *ScheduleService) ListActive(ctx context.Context) ([]*ent.Schedule, error) {
	schedules, err := s.client.Schedule.Query().
		Where(schedule.IsActiveEQ(true)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active schedules: %w", err)
	}
	return schedules, nil
}
