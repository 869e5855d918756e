package security

import (
	"Lumina/internal/api/config"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestConfig(t *testing.T, jwtSecret string) {
	t.Helper()
	old := config.Cfg
	config.Cfg = &config.Config{Auth: config.AuthConfig{JWTSecret: jwtSecret}}
	t.Cleanup(func() { config.Cfg = old })
}

func TestGenerateAndValidateToken(t *testing.T) {
	setTestConfig(t, "test-secret")

	token, err := GenerateToken("editor", RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "editor", claims.Username)
	assert.Equal(t, RoleAdmin, claims.Role)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	setTestConfig(t, "secret-a")
	token, err := GenerateToken("editor", RoleAdmin)
	require.NoError(t, err)

	setTestConfig(t, "secret-b")
	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	setTestConfig(t, "test-secret")

	_, err := ValidateToken("not-a-jwt")
	assert.Error(t, err)
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("p@ssw0rd")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.NoError(t, CheckPasswordHash("p@ssw0rd", hash))
	assert.Error(t, CheckPasswordHash("wrong", hash))
}

func TestHashPasswordRejectsEmpty(t *testing.T) {
	_, err := HashPassword("")
	assert.Error(t, err)
}
