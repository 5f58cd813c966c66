package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/agnox-io/agnox/ent"
	"github.com/agnox-io/agnox/ent/project"
)

// ProjectService manages projects within an organization.
type ProjectService struct {
	client *ent.Client
	plan   *PlanService
}

// NewProjectService creates a new ProjectService.
func NewProjectService(client *ent.Client, plan *PlanService) *ProjectService {
	return &ProjectService{client: client, plan: plan}
}

// Create adds a project, enforcing the plan's project quota. The slug is
// derived from the name and must be unique within the org.
func (s *ProjectService) Create(ctx context.Context, orgID, name string) (*ent.Project, error) {
	if name == "" {
		return nil, NewValidationError("name", "required")
	}

	if err := s.plan.Enforce(ctx, orgID, ActionCreateProject); err != nil {
		return nil, err
	}

	proj, err := s.client.Project.Create().
		SetID(uuid.New().String()).
		SetOrgID(orgID).
		SetName(name).
		SetSlug(Slugify(name)).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("create project: %w", err)
	}
	return proj, nil
}

// Get returns a project scoped by org.
func (s *ProjectService) Get(ctx context.Context, orgID, projectID string) (*ent.Project, error) {
	proj, err := s.client.Project.Query().
		Where(project.IDEQ(projectID), project.OrgIDEQ(orgID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	return proj, nil
}

// List returns all projects of the organization.
func (s *ProjectService) List(ctx context.Context, orgID string) ([]*ent.Project, error) {
	projects, err := s.client.Project.Query().
		Where(project.OrgIDEQ(orgID)).
		Order(ent.Asc(project.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

// Delete removes a project scoped by org.
func (s *ProjectService) Delete(ctx context.Context, orgID, projectID string) error {
	n, err := s.client.Project.Delete().
		Where(project.IDEQ(projectID), project.OrgIDEQ(orgID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
