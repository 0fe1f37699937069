package crypto

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKey() string {
	key := make([]byte, KeySize)
	for i := range key {
		key[i] = byte(i)
	}
	return hex.EncodeToString(key)
}

func TestSealer_SealOpen(t *testing.T) {
	s, err := NewSealer(testKey())
	require.NoError(t, err)

	plaintext := []byte("kind: int\nint: 40\n")
	sealed, err := s.Seal(plaintext)
	require.NoError(t, err)
	assert.NotEqual(t, plaintext, sealed)
	assert.Greater(t, len(sealed), len(plaintext))

	opened, err := s.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, plaintext, opened)
}

func TestSealer_SealIsStableForSamePlaintext(t *testing.T) {
	s, err := NewSealer(testKey())
	require.NoError(t, err)

	a, err := s.Seal([]byte("same"))
	require.NoError(t, err)
	b, err := s.Seal([]byte("same"))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := s.Seal([]byte("other"))
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestNewSealer_InvalidKey(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{"empty", ""},
		{"not hex", "zz"},
		{"too short", "0011"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSealer(tt.key)
			assert.ErrorIs(t, err, ErrInvalidKey)
		})
	}
}

func TestSealer_OpenErrors(t *testing.T) {
	s, err := NewSealer(testKey())
	require.NoError(t, err)

	_, err = s.Open([]byte("short"))
	assert.ErrorIs(t, err, ErrCiphertextTooShort)

	sealed, err := s.Seal([]byte("secret"))
	require.NoError(t, err)
	tampered := append([]byte{}, sealed...)
	tampered[len(tampered)-1] ^= 0xFF
	_, err = s.Open(tampered)
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestSealer_OpenWithOtherKeyFails(t *testing.T) {
	s1, err := NewSealer(testKey())
	require.NoError(t, err)
	other := make([]byte, KeySize)
	other[0] = 0xAB
	s2, err := NewSealer(hex.EncodeToString(other))
	require.NoError(t, err)

	sealed, err := s1.Seal([]byte("secret"))
	require.NoError(t, err)
	_, err = s2.Open(sealed)
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}
