package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/agnox-io/agnox/ent"
	"github.com/agnox-io/agnox/ent/apikey"
	entuser "github.com/agnox-io/agnox/ent/user"
	"github.com/agnox-io/agnox/pkg/auth"
)

// APIKeyService manages API keys and authenticates callers presenting one.
type APIKeyService struct {
	client *ent.Client
}

// NewAPIKeyService creates a new APIKeyService.
func NewAPIKeyService(client *ent.Client) *APIKeyService {
	return &APIKeyService{client: client}
}

// CreateResult carries the one-time plaintext alongside the stored record.
type CreateResult struct {
	Key       *ent.APIKey
	Plaintext string
}

// Create generates and stores a new API key for the caller.
func (s *APIKeyService) Create(ctx context.Context, orgID, userID, name string) (*CreateResult, error) {
	if name == "" {
		return nil, NewValidationError("name", "required")
	}

	generated, err := auth.GenerateAPIKey()
	if err != nil {
		return nil, err
	}

	key, err := s.client.APIKey.Create().
		SetID(uuid.New().String()).
		SetOrgID(orgID).
		SetUserID(userID).
		SetName(name).
		SetKeyHash(generated.Hash).
		SetPrefix(generated.Prefix).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create api key: %w", err)
	}

	return &CreateResult{Key: key, Plaintext: generated.Plaintext}, nil
}

// List returns the org's API keys (hashes are never serialized).
func (s *APIKeyService) List(ctx context.Context, orgID string) ([]*ent.APIKey, error) {
	keys, err := s.client.APIKey.Query().
		Where(apikey.OrgIDEQ(orgID)).
		Order(ent.Desc(apikey.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list api keys: %w", err)
	}
	return keys, nil
}

// Revoke deletes a key scoped by org.
func (s *APIKeyService) Revoke(ctx context.Context, orgID, keyID string) error {
	n, err := s.client.APIKey.Delete().
		Where(apikey.IDEQ(keyID), apikey.OrgIDEQ(orgID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("revoke api key: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Authenticate resolves a plaintext API key to a Principal. The lookup is
// by SHA-256 hash; lastUsedAt is updated best-effort.
func (s *APIKeyService) Authenticate(ctx context.Context, plaintext string) (auth.Principal, error) {
	key, err := s.client.APIKey.Query().
		Where(apikey.KeyHashEQ(auth.HashAPIKey(plaintext))).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return auth.Principal{}, auth.ErrInvalidToken
		}
		return auth.Principal{}, fmt.Errorf("lookup api key: %w", err)
	}

	usr, err := s.client.User.Query().
		Where(entuser.IDEQ(key.UserID), entuser.OrgIDEQ(key.OrgID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return auth.Principal{}, auth.ErrInvalidToken
		}
		return auth.Principal{}, fmt.Errorf("lookup key owner: %w", err)
	}

	if _, err := key.Update().SetLastUsedAt(time.Now()).Save(ctx); err != nil {
		slog.Warn("Failed to update api key last_used_at", "key_id", key.ID, "error", err)
	}

	return auth.Principal{
		UserID: usr.ID,
		OrgID:  key.OrgID,
		Role:   auth.Role(usr.Role),
	}, nil
}
