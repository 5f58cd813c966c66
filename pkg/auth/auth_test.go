package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer([]byte("test-secret"), time.Hour)

	p := Principal{UserID: "u-1", OrgID: "org-1", Role: RoleAdmin}
	token, err := issuer.Issue(p)
	require.NoError(t, err)

	got, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestTokenIssuer_RejectsExpired(t *testing.T) {
	issuer := NewTokenIssuer([]byte("test-secret"), -time.Minute)

	token, err := issuer.Issue(Principal{UserID: "u-1", OrgID: "org-1", Role: RoleViewer})
	require.NoError(t, err)

	_, err = issuer.Verify(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenIssuer_RejectsWrongSecret(t *testing.T) {
	issuer := NewTokenIssuer([]byte("secret-a"), time.Hour)
	other := NewTokenIssuer([]byte("secret-b"), time.Hour)

	token, err := issuer.Issue(Principal{UserID: "u-1", OrgID: "org-1", Role: RoleDeveloper})
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIssuer_RejectsGarbage(t *testing.T) {
	issuer := NewTokenIssuer([]byte("test-secret"), time.Hour)

	_, err := issuer.Verify("not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIssuer_RejectsMissingClaims(t *testing.T) {
	issuer := NewTokenIssuer([]byte("test-secret"), time.Hour)

	// Empty org — token signs fine but verification must refuse it.
	token, err := issuer.Issue(Principal{UserID: "u-1", Role: RoleAdmin})
	require.NoError(t, err)

	_, err = issuer.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGenerateAPIKey(t *testing.T) {
	key, err := GenerateAPIKey()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(key.Plaintext, "agx_"))
	assert.True(t, strings.HasPrefix(key.Plaintext, key.Prefix))
	assert.Equal(t, HashAPIKey(key.Plaintext), key.Hash)
	assert.NotEqual(t, key.Plaintext, key.Hash)

	other, err := GenerateAPIKey()
	require.NoError(t, err)
	assert.NotEqual(t, key.Plaintext, other.Plaintext)
}

func TestSecureCompare(t *testing.T) {
	assert.True(t, SecureCompare("worker-secret", "worker-secret"))
	assert.False(t, SecureCompare("worker-secret", "worker-secreT"))
	assert.False(t, SecureCompare("worker-secret", ""))
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter2!")
	require.NoError(t, err)

	assert.True(t, CheckPassword(hash, "hunter2!"))
	assert.False(t, CheckPassword(hash, "hunter3!"))
}

func TestRoleHelpers(t *testing.T) {
	assert.True(t, Role("admin").Valid())
	assert.False(t, Role("superuser").Valid())

	p := Principal{Role: RoleDeveloper}
	assert.True(t, p.HasRole(RoleAdmin, RoleDeveloper))
	assert.False(t, p.HasRole(RoleAdmin))
}
