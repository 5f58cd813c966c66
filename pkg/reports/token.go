// Package reports guards static test-report files with short-lived signed
// tokens. A report URL is shared with a token in the query string; the
// middleware exchanges it for a scoped cookie so the report's sub-resources
// authenticate automatically.
package reports

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Token verification errors.
var (
	ErrMalformedToken = errors.New("malformed report token")
	ErrBadSignature   = errors.New("report token signature mismatch")
	ErrTokenExpired   = errors.New("report token expired")
	ErrScopeMismatch  = errors.New("report token scope mismatch")
)

type tokenPayload struct {
	OrgID  string `json:"orgId"`
	TaskID string `json:"taskId"`
	Exp    int64  `json:"exp"`
}

// TokenService signs and verifies report access tokens. A token is
// base64url(JSON payload) + "." + base64url(HMAC-SHA256(secret, payload)).
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a TokenService.
func NewTokenService(secret []byte, ttl time.Duration) *TokenService {
	return &TokenService{secret: secret, ttl: ttl}
}

// TTL returns the token lifetime, which also bounds the cookie's Max-Age.
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// Generate signs a token scoped to one report.
func (s *TokenService) Generate(orgID, taskID string) (string, error) {
	payload, err := json.Marshal(tokenPayload{
		OrgID:  orgID,
		TaskID: taskID,
		Exp:    time.Now().Add(s.ttl).Unix(),
	})
	if err != nil {
		return "", fmt.Errorf("marshal token payload: %w", err)
	}

	encoded := base64.RawURLEncoding.EncodeToString(payload)
	return encoded + "." + s.sign(encoded), nil
}

// Verify checks a token's signature, expiry, and scope.
func (s *TokenService) Verify(token, orgID, taskID string) error {
	encoded, signature, found := strings.Cut(token, ".")
	if !found || encoded == "" || signature == "" {
		return ErrMalformedToken
	}

	// Signature first, constant-time. Nothing about the payload is trusted
	// before this passes.
	if !hmac.Equal([]byte(signature), []byte(s.sign(encoded))) {
		return ErrBadSignature
	}

	raw, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return ErrMalformedToken
	}
	var payload tokenPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return ErrMalformedToken
	}

	if payload.Exp <= time.Now().Unix() {
		return ErrTokenExpired
	}
	if payload.OrgID != orgID || payload.TaskID != taskID {
		return ErrScopeMismatch
	}
	return nil
}

func (s *TokenService) sign(encoded string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(encoded))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
