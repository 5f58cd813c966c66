package secrets

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKey() []byte {
	return bytes.Repeat([]byte{0x42}, KeySize)
}

func TestCipher_RoundTrip(t *testing.T) {
	c, err := NewCipher(testKey())
	require.NoError(t, err)

	payload, err := c.Encrypt("postgres://user:p4ss@db/prod")
	require.NoError(t, err)
	assert.NotEmpty(t, payload.IV)
	assert.NotEmpty(t, payload.Ciphertext)
	assert.NotEmpty(t, payload.Tag)

	plaintext, err := c.Decrypt(payload)
	require.NoError(t, err)
	assert.Equal(t, "postgres://user:p4ss@db/prod", plaintext)
}

func TestCipher_UniqueIVPerEncryption(t *testing.T) {
	c, err := NewCipher(testKey())
	require.NoError(t, err)

	p1, err := c.Encrypt("same value")
	require.NoError(t, err)
	p2, err := c.Encrypt("same value")
	require.NoError(t, err)

	assert.NotEqual(t, p1.IV, p2.IV)
	assert.NotEqual(t, p1.Ciphertext, p2.Ciphertext)
}

func TestCipher_TamperedPayloadFailsAuthentication(t *testing.T) {
	c, err := NewCipher(testKey())
	require.NoError(t, err)

	payload, err := c.Encrypt("secret")
	require.NoError(t, err)

	tampered := payload
	tampered.Tag = payload.IV // valid base64, wrong bytes
	_, err = c.Decrypt(tampered)
	assert.Error(t, err)
}

func TestCipher_WrongKeyFails(t *testing.T) {
	c1, err := NewCipher(testKey())
	require.NoError(t, err)
	c2, err := NewCipher(bytes.Repeat([]byte{0x24}, KeySize))
	require.NoError(t, err)

	payload, err := c1.Encrypt("secret")
	require.NoError(t, err)

	_, err = c2.Decrypt(payload)
	assert.Error(t, err)
}

func TestNewCipher_RejectsBadKeyLength(t *testing.T) {
	_, err := NewCipher([]byte("short"))
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestNewCipherFromHex(t *testing.T) {
	hexKey := hex.EncodeToString(testKey())
	c, err := NewCipherFromHex(hexKey)
	require.NoError(t, err)

	payload, err := c.Encrypt("v")
	require.NoError(t, err)
	plaintext, err := c.Decrypt(payload)
	require.NoError(t, err)
	assert.Equal(t, "v", plaintext)

	_, err = NewCipherFromHex("not-hex")
	assert.Error(t, err)
}
