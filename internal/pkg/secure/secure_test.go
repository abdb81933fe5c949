package secure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKeyHex = "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08"

func TestCodec_RoundTrip(t *testing.T) {
	codec, err := NewCodec(testKeyHex)
	require.NoError(t, err)

	sealed, err := codec.Encrypt("sk-secret-token")
	require.NoError(t, err)
	assert.NotEqual(t, "sk-secret-token", sealed)

	plain, err := codec.Decrypt(sealed)
	require.NoError(t, err)
	assert.Equal(t, "sk-secret-token", plain)
}

func TestCodec_NonceUniqueness(t *testing.T) {
	codec, err := NewCodec(testKeyHex)
	require.NoError(t, err)

	first, err := codec.Encrypt("same value")
	require.NoError(t, err)
	second, err := codec.Encrypt("same value")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestCodec_DecryptTampered(t *testing.T) {
	codec, err := NewCodec(testKeyHex)
	require.NoError(t, err)

	_, err = codec.Decrypt("")
	assert.Error(t, err)

	_, err = codec.Decrypt("bm90IGEgc2VhbGVkIHZhbHVlIGF0IGFsbCwganVzdCBiYXNlNjQ=")
	assert.Error(t, err)
}

func TestNewCodec_BadKey(t *testing.T) {
	_, err := NewCodec("not-hex")
	assert.Error(t, err)

	// Right encoding, wrong length.
	_, err = NewCodec("9f86d081")
	assert.Error(t, err)
}
