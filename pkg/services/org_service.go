package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/agnox-io/agnox/ent"
	"github.com/agnox-io/agnox/ent/organization"
	entuser "github.com/agnox-io/agnox/ent/user"
	"github.com/agnox-io/agnox/pkg/auth"
	"github.com/agnox-io/agnox/pkg/models"
)

// OrgService manages organizations and the signup flow that creates them.
type OrgService struct {
	client *ent.Client
}

// NewOrgService creates a new OrgService.
func NewOrgService(client *ent.Client) *OrgService {
	return &OrgService{client: client}
}

// SignupInput is the payload for creating an organization with its first admin.
type SignupInput struct {
	OrgName  string
	Email    string
	Name     string
	Password string
}

// SignupResult is returned by Signup.
type SignupResult struct {
	Org  *ent.Organization
	User *ent.User
}

// Signup creates an organization and its initial admin user in one
// transaction. The org slug is derived from the name; collisions get a
// short random suffix.
func (s *OrgService) Signup(ctx context.Context, in SignupInput) (*SignupResult, error) {
	if in.OrgName == "" {
		return nil, NewValidationError("organizationName", "required")
	}
	if in.Email == "" {
		return nil, NewValidationError("email", "required")
	}
	if len(in.Password) < 8 {
		return nil, NewValidationError("password", "must be at least 8 characters")
	}

	hashed, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	slug := Slugify(in.OrgName)
	taken, err := tx.Organization.Query().
		Where(organization.SlugEQ(slug)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check slug: %w", err)
	}
	if taken {
		slug = slug + "-" + uuid.New().String()[:6]
	}

	org, err := tx.Organization.Create().
		SetID(uuid.New().String()).
		SetName(in.OrgName).
		SetSlug(slug).
		SetPlan(organization.PlanFree).
		SetLimits(models.DefaultLimits(models.PlanFree)).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("create organization: %w", err)
	}

	usr, err := tx.User.Create().
		SetID(uuid.New().String()).
		SetOrgID(org.ID).
		SetEmail(strings.ToLower(in.Email)).
		SetName(in.Name).
		SetHashedPassword(hashed).
		SetRole(entuser.RoleAdmin).
		SetStatus(entuser.StatusActive).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("create admin user: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &SignupResult{Org: org, User: usr}, nil
}

// Get returns an organization by id.
func (s *OrgService) Get(ctx context.Context, orgID string) (*ent.Organization, error) {
	org, err := s.client.Organization.Query().
		Where(organization.IDEQ(orgID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get organization: %w", err)
	}
	return org, nil
}

var slugScrub = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases a name and collapses non-alphanumeric runs to hyphens.
func Slugify(name string) string {
	slug := slugScrub.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}
