package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/agnox-io/agnox/ent"
	"github.com/agnox-io/agnox/ent/projectenvvar"
	"github.com/agnox-io/agnox/pkg/secrets"
)

// Env-var validation bounds.
const (
	MaxEnvVarValueLen    = 4096
	MaxEnvVarsPerProject = 50

	// ReservedEnvVarPrefix is claimed by the platform for injected variables.
	ReservedEnvVarPrefix = "PLATFORM_"
)

var envVarKeyPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidateEnvVarKey checks a key against the POSIX-style identifier rule
// and the reserved platform prefix.
func ValidateEnvVarKey(key string) error {
	if !envVarKeyPattern.MatchString(key) {
		return NewValidationError("key", "must match ^[A-Za-z_][A-Za-z0-9_]*$")
	}
	if strings.HasPrefix(key, ReservedEnvVarPrefix) {
		return NewValidationError("key", "the PLATFORM_ prefix is reserved")
	}
	return nil
}

// EnvVarView is the API shape of an env var. Secret values are masked.
type EnvVarView struct {
	ID        string `json:"id"`
	Key       string `json:"key"`
	Value     string `json:"value"`
	IsSecret  bool   `json:"isSecret"`
	CreatedAt int64  `json:"createdAt"`
	UpdatedAt int64  `json:"updatedAt"`
}

// EnvVarService manages per-project environment variables. Secret values
// are encrypted at rest and never leave the service in cleartext except
// through ResolveForDispatch.
type EnvVarService struct {
	client *ent.Client
	cipher *secrets.Cipher
}

// NewEnvVarService creates a new EnvVarService.
func NewEnvVarService(client *ent.Client, cipher *secrets.Cipher) *EnvVarService {
	return &EnvVarService{client: client, cipher: cipher}
}

// List returns the project's env vars with secret values masked.
func (s *EnvVarService) List(ctx context.Context, orgID, projectID string) ([]EnvVarView, error) {
	vars, err := s.client.ProjectEnvVar.Query().
		Where(
			projectenvvar.OrgIDEQ(orgID),
			projectenvvar.ProjectIDEQ(projectID),
		).
		Order(ent.Asc(projectenvvar.FieldKey)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list env vars: %w", err)
	}

	views := make([]EnvVarView, 0, len(vars))
	for _, v := range vars {
		views = append(views, toEnvVarView(v))
	}
	return views, nil
}

// Create adds an env var. The per-project cap and the key rules apply.
func (s *EnvVarService) Create(ctx context.Context, orgID, projectID, key, value string, isSecret bool) (EnvVarView, error) {
	if err := ValidateEnvVarKey(key); err != nil {
		return EnvVarView{}, err
	}
	if len(value) > MaxEnvVarValueLen {
		return EnvVarView{}, NewValidationError("value", fmt.Sprintf("must be at most %d bytes", MaxEnvVarValueLen))
	}

	count, err := s.client.ProjectEnvVar.Query().
		Where(
			projectenvvar.OrgIDEQ(orgID),
			projectenvvar.ProjectIDEQ(projectID),
		).
		Count(ctx)
	if err != nil {
		return EnvVarView{}, fmt.Errorf("count env vars: %w", err)
	}
	if count >= MaxEnvVarsPerProject {
		return EnvVarView{}, NewValidationError("key", fmt.Sprintf("project already has %d variables", MaxEnvVarsPerProject))
	}

	create := s.client.ProjectEnvVar.Create().
		SetID(uuid.New().String()).
		SetOrgID(orgID).
		SetProjectID(projectID).
		SetKey(key).
		SetIsSecret(isSecret)

	if isSecret {
		payload, err := s.cipher.Encrypt(value)
		if err != nil {
			return EnvVarView{}, fmt.Errorf("encrypt value: %w", err)
		}
		create.SetEncrypted(payload)
	} else {
		create.SetValue(value)
	}

	v, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return EnvVarView{}, ErrAlreadyExists
		}
		return EnvVarView{}, fmt.Errorf("create env var: %w", err)
	}
	return toEnvVarView(v), nil
}

// Update replaces an env var's value and secrecy flag.
func (s *EnvVarService) Update(ctx context.Context, orgID, projectID, varID, value string, isSecret bool) (EnvVarView, error) {
	if len(value) > MaxEnvVarValueLen {
		return EnvVarView{}, NewValidationError("value", fmt.Sprintf("must be at most %d bytes", MaxEnvVarValueLen))
	}

	v, err := s.client.ProjectEnvVar.Query().
		Where(
			projectenvvar.IDEQ(varID),
			projectenvvar.OrgIDEQ(orgID),
			projectenvvar.ProjectIDEQ(projectID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return EnvVarView{}, ErrNotFound
		}
		return EnvVarView{}, fmt.Errorf("get env var: %w", err)
	}

	update := v.Update().SetIsSecret(isSecret)
	if isSecret {
		payload, err := s.cipher.Encrypt(value)
		if err != nil {
			return EnvVarView{}, fmt.Errorf("encrypt value: %w", err)
		}
		update.SetEncrypted(payload).SetValue("")
	} else {
		update.SetValue(value).ClearEncrypted()
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return EnvVarView{}, fmt.Errorf("update env var: %w", err)
	}
	return toEnvVarView(updated), nil
}

// Delete removes an env var scoped by org and project.
func (s *EnvVarService) Delete(ctx context.Context, orgID, projectID, varID string) error {
	n, err := s.client.ProjectEnvVar.Delete().
		Where(
			projectenvvar.IDEQ(varID),
			projectenvvar.OrgIDEQ(orgID),
			projectenvvar.ProjectIDEQ(projectID),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete env var: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ResolveForDispatch returns the project's variables in cleartext, decrypting
// secret values. Only the dispatch pipeline calls this.
func (s *EnvVarService) ResolveForDispatch(ctx context.Context, orgID, projectID string) (map[string]string, error) {
	vars, err := s.client.ProjectEnvVar.Query().
		Where(
			projectenvvar.OrgIDEQ(orgID),
			projectenvvar.ProjectIDEQ(projectID),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load env vars: %w", err)
	}

	resolved := make(map[string]string, len(vars))
	for _, v := range vars {
		if v.IsSecret {
			plaintext, err := s.cipher.Decrypt(v.Encrypted)
			if err != nil {
				return nil, fmt.Errorf("decrypt %s: %w", v.Key, err)
			}
			resolved[v.Key] = plaintext
		} else {
			resolved[v.Key] = v.Value
		}
	}
	return resolved, nil
}

func toEnvVarView(v *ent.ProjectEnvVar) EnvVarView {
	value := v.Value
	if v.IsSecret {
		value = secrets.Mask
	}
	return EnvVarView{
		ID:        v.ID,
		Key:       v.Key,
		Value:     value,
		IsSecret:  v.IsSecret,
		CreatedAt: v.CreatedAt.UnixMilli(),
		UpdatedAt: v.UpdatedAt.UnixMilli(),
	}
}
