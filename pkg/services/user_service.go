package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/agnox-io/agnox/ent"
	entuser "github.com/agnox-io/agnox/ent/user"
	"github.com/agnox-io/agnox/pkg/auth"
)

// UserService manages users within an organization.
type UserService struct {
	client *ent.Client
	plan   *PlanService
}

// NewUserService creates a new UserService.
func NewUserService(client *ent.Client, plan *PlanService) *UserService {
	return &UserService{client: client, plan: plan}
}

// Login verifies credentials and returns the user. lastLoginAt is updated
// best-effort; a failure there never fails the login.
func (s *UserService) Login(ctx context.Context, email, password string) (*ent.User, error) {
	usr, err := s.client.User.Query().
		Where(
			entuser.EmailEQ(strings.ToLower(email)),
			entuser.StatusEQ(entuser.StatusActive),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	if !auth.CheckPassword(usr.HashedPassword, password) {
		return nil, ErrInvalidCredentials
	}

	if _, err := usr.Update().SetLastLoginAt(time.Now()).Save(ctx); err != nil {
		// Best-effort only.
		_ = err
	}

	return usr, nil
}

// Get returns a user scoped by org.
func (s *UserService) Get(ctx context.Context, orgID, userID string) (*ent.User, error) {
	usr, err := s.client.User.Query().
		Where(entuser.IDEQ(userID), entuser.OrgIDEQ(orgID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return usr, nil
}

// List returns all users of the organization.
func (s *UserService) List(ctx context.Context, orgID string) ([]*ent.User, error) {
	users, err := s.client.User.Query().
		Where(entuser.OrgIDEQ(orgID)).
		Order(ent.Asc(entuser.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// InviteInput is the payload for inviting a user into the organization.
type InviteInput struct {
	Email    string
	Name     string
	Role     string
	Password string
}

// Invite creates a new user, enforcing the plan's user quota.
func (s *UserService) Invite(ctx context.Context, orgID string, in InviteInput) (*ent.User, error) {
	if in.Email == "" {
		return nil, NewValidationError("email", "required")
	}
	role := entuser.Role(in.Role)
	if err := entuser.RoleValidator(role); err != nil {
		return nil, NewValidationError("role", "must be admin, developer, or viewer")
	}
	if len(in.Password) < 8 {
		return nil, NewValidationError("password", "must be at least 8 characters")
	}

	if err := s.plan.Enforce(ctx, orgID, ActionInviteUser); err != nil {
		return nil, err
	}

	hashed, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	usr, err := s.client.User.Create().
		SetID(uuid.New().String()).
		SetOrgID(orgID).
		SetEmail(strings.ToLower(in.Email)).
		SetName(in.Name).
		SetHashedPassword(hashed).
		SetRole(role).
		SetStatus(entuser.StatusInvited).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return usr, nil
}

// ChangeRole updates a user's role. Guards: a caller may not change their
// own role, and the last admin of an org can never be demoted.
func (s *UserService) ChangeRole(ctx context.Context, orgID, callerID, userID, newRole string) (*ent.User, error) {
	role := entuser.Role(newRole)
	if err := entuser.RoleValidator(role); err != nil {
		return nil, NewValidationError("role", "must be admin, developer, or viewer")
	}
	if callerID == userID {
		return nil, ErrSelfRoleChange
	}

	usr, err := s.Get(ctx, orgID, userID)
	if err != nil {
		return nil, err
	}

	if usr.Role == entuser.RoleAdmin && role != entuser.RoleAdmin {
		if err := s.ensureNotLastAdmin(ctx, orgID, userID); err != nil {
			return nil, err
		}
	}

	updated, err := usr.Update().SetRole(role).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update role: %w", err)
	}
	return updated, nil
}

// Delete removes a user, refusing to remove the org's last admin.
func (s *UserService) Delete(ctx context.Context, orgID, userID string) error {
	usr, err := s.Get(ctx, orgID, userID)
	if err != nil {
		return err
	}

	if usr.Role == entuser.RoleAdmin {
		if err := s.ensureNotLastAdmin(ctx, orgID, userID); err != nil {
			return err
		}
	}

	if err := s.client.User.DeleteOne(usr).Exec(ctx); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func (s *UserService) ensureNotLastAdmin(ctx context.Context, orgID, excludeID string) error {
	admins, err := s.client.User.Query().
		Where(
			entuser.OrgIDEQ(orgID),
			entuser.RoleEQ(entuser.RoleAdmin),
			entuser.IDNEQ(excludeID),
		).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("count admins: %w", err)
	}
	if admins == 0 {
		return ErrLastAdmin
	}
	return nil
}
