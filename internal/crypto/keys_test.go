package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSalt(t *testing.T) {
	a, err := GenerateSalt()
	require.NoError(t, err)
	assert.Len(t, a, SaltSize)

	b, err := GenerateSalt()
	require.NoError(t, err)
	assert.NotEqual(t, a, b, "соли должны различаться")
}

func TestDeriveStorageKey(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)

	key1, err := DeriveStorageKey("correct horse", salt)
	require.NoError(t, err)
	assert.Len(t, key1, KeySize)

	key2, err := DeriveStorageKey("correct horse", salt)
	require.NoError(t, err)
	assert.Equal(t, key1, key2, "деривация должна быть детерминированной")

	other, err := DeriveStorageKey("battery staple", salt)
	require.NoError(t, err)
	assert.NotEqual(t, key1, other)

	otherSalt, err := GenerateSalt()
	require.NoError(t, err)
	key3, err := DeriveStorageKey("correct horse", otherSalt)
	require.NoError(t, err)
	assert.NotEqual(t, key1, key3)
}

func TestDeriveStorageKey_Validation(t *testing.T) {
	tests := []struct {
		name       string
		passphrase string
		errMsg     string
		salt       []byte
	}{
		{name: "empty passphrase", passphrase: "", salt: make([]byte, SaltSize), errMsg: "passphrase cannot be empty"},
		{name: "short salt", passphrase: "p", salt: make([]byte, 16), errMsg: "salt must be 32 bytes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DeriveStorageKey(tt.passphrase, tt.salt)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
