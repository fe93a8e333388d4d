package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_GenerateAndValidate(t *testing.T) {
	manager := NewManager("secret", time.Hour)

	token, err := manager.Generate(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := manager.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestManager_Validate_WrongSecret(t *testing.T) {
	token, err := NewManager("secret", time.Hour).Generate(42)
	require.NoError(t, err)

	_, err = NewManager("other-secret", time.Hour).Validate(token)
	assert.Error(t, err)
}

func TestManager_Validate_Expired(t *testing.T) {
	token, err := NewManager("secret", -time.Minute).Generate(42)
	require.NoError(t, err)

	_, err = NewManager("secret", time.Hour).Validate(token)
	assert.Error(t, err)
}

func TestManager_Validate_Garbage(t *testing.T) {
	_, err := NewManager("secret", time.Hour).Validate("not.a.token")
	assert.Error(t, err)
}
