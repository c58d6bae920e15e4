package credentials

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKey() []byte {
	return bytes.Repeat([]byte{0x42}, 32)
}

func TestCipher_RoundTrip(t *testing.T) {
	c, err := NewCipher(testKey())
	require.NoError(t, err)

	plaintext := []byte(`{"api_key":"glsa_secret","url":"https://grafana.example.com"}`)
	sealed, err := c.Encrypt(plaintext)
	require.NoError(t, err)
	assert.NotContains(t, string(sealed), "glsa_secret")

	opened, err := c.Decrypt(sealed)
	require.NoError(t, err)
	assert.Equal(t, plaintext, opened)
}

func TestCipher_EncryptIsNonDeterministic(t *testing.T) {
	c, err := NewCipher(testKey())
	require.NoError(t, err)

	a, err := c.Encrypt([]byte("same input"))
	require.NoError(t, err)
	b, err := c.Encrypt([]byte("same input"))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestCipher_DecryptRejectsTampering(t *testing.T) {
	c, err := NewCipher(testKey())
	require.NoError(t, err)

	sealed, err := c.Encrypt([]byte("secret"))
	require.NoError(t, err)
	sealed[len(sealed)-1] ^= 0xff

	_, err = c.Decrypt(sealed)
	assert.Error(t, err)
}

func TestCipher_DecryptRejectsShortInput(t *testing.T) {
	c, err := NewCipher(testKey())
	require.NoError(t, err)
	_, err = c.Decrypt([]byte("short"))
	assert.ErrorContains(t, err, "shorter than nonce")
}

func TestNewCipher_RejectsBadKeyLength(t *testing.T) {
	_, err := NewCipher([]byte("too short"))
	assert.ErrorContains(t, err, "32 bytes")
}

func TestFromEnv(t *testing.T) {
	t.Run("hex key", func(t *testing.T) {
		t.Setenv("TEST_CRED_KEY", hex.EncodeToString(testKey()))
		c, err := FromEnv("TEST_CRED_KEY")
		require.NoError(t, err)

		sealed, err := c.Encrypt([]byte("hello"))
		require.NoError(t, err)
		opened, err := c.Decrypt(sealed)
		require.NoError(t, err)
		assert.Equal(t, []byte("hello"), opened)
	})

	t.Run("missing env", func(t *testing.T) {
		_, err := FromEnv("TEST_CRED_KEY_UNSET")
		assert.ErrorContains(t, err, "is not set")
	})
}
