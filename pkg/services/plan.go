package services

import (
	"context"
	"fmt"
	"time"

	"github.com/agnox-io/agnox/ent"
	"github.com/agnox-io/agnox/ent/execution"
	"github.com/agnox-io/agnox/ent/organization"
	"github.com/agnox-io/agnox/ent/project"
	"github.com/agnox-io/agnox/ent/user"
	"github.com/agnox-io/agnox/pkg/models"
)

// Plan-limited actions.
const (
	ActionCreateProject = "createProject"
	ActionRunTest       = "runTest"
	ActionInviteUser    = "inviteUser"
)

// PlanService enforces per-organization plan quotas before admitting
// limited create operations.
type PlanService struct {
	client *ent.Client
}

// NewPlanService creates a new PlanService.
func NewPlanService(client *ent.Client) *PlanService {
	return &PlanService{client: client}
}

// Check computes the usage counter for an action against the org's limits.
func (s *PlanService) Check(ctx context.Context, orgID, action string) (models.LimitStatus, error) {
	org, err := s.client.Organization.Query().
		Where(organization.IDEQ(orgID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return models.LimitStatus{}, ErrNotFound
		}
		return models.LimitStatus{}, fmt.Errorf("load organization: %w", err)
	}

	var used, limit int
	switch action {
	case ActionRunTest:
		start, end := MonthWindow(time.Now().UTC())
		used, err = s.client.Execution.Query().
			Where(
				execution.OrgIDEQ(orgID),
				execution.DeletedAtIsNil(),
				execution.StartTimeGTE(start),
				execution.StartTimeLT(end),
			).
			Count(ctx)
		limit = org.Limits.MaxTestRuns
	case ActionCreateProject:
		used, err = s.client.Project.Query().
			Where(project.OrgIDEQ(orgID)).
			Count(ctx)
		limit = org.Limits.MaxProjects
	case ActionInviteUser:
		used, err = s.client.User.Query().
			Where(user.OrgIDEQ(orgID)).
			Count(ctx)
		limit = org.Limits.MaxUsers
	default:
		return models.LimitStatus{}, NewValidationError("action", "unknown plan action "+action)
	}
	if err != nil {
		return models.LimitStatus{}, fmt.Errorf("count usage for %s: %w", action, err)
	}

	return models.LimitStatus{
		Action:   action,
		Used:     used,
		Limit:    limit,
		Exceeded: used >= limit,
	}, nil
}

// Enforce returns a LimitExceededError when the action's quota is exhausted.
func (s *PlanService) Enforce(ctx context.Context, orgID, action string) error {
	status, err := s.Check(ctx, orgID, action)
	if err != nil {
		return err
	}
	if status.Exceeded {
		return &LimitExceededError{
			Action:  action,
			Limit:   status.Limit,
			Current: status.Used,
		}
	}
	return nil
}

// MonthWindow returns the UTC [first-of-month, first-of-next-month) interval
// containing t.
func MonthWindow(t time.Time) (time.Time, time.Time) {
	t = t.UTC()
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}
