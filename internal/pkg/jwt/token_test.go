package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/paysetu/bbps-account/internal/pkg/models"
)

func testConfig() *models.Config {
	cfg := &models.Config{}
	cfg.Auth.AdminSecret = "test-secret"
	cfg.Auth.AdminIssuer = "bbps-account"
	return cfg
}

func TestGenerateAndValidateAdminToken(t *testing.T) {
	cfg := testConfig()

	tokenString, expiresAt, err := GenerateAdminToken("ops", time.Minute, cfg)
	assert.NoError(t, err)
	assert.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, time.Now().Unix())

	claims, err := ValidateToken(tokenString, cfg.Auth.AdminSecret)
	assert.NoError(t, err)
	assert.Equal(t, "ops", claims["sub"])
	assert.Equal(t, AdminRole, claims["role"])
	assert.Equal(t, "bbps-account", claims["iss"])
}

func TestValidateToken_WrongSecret(t *testing.T) {
	cfg := testConfig()

	tokenString, _, err := GenerateAdminToken("ops", time.Minute, cfg)
	assert.NoError(t, err)

	_, err = ValidateToken(tokenString, "other-secret")
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	cfg := testConfig()

	tokenString, _, err := GenerateAdminToken("ops", -time.Minute, cfg)
	assert.NoError(t, err)

	_, err = ValidateToken(tokenString, cfg.Auth.AdminSecret)
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := ValidateToken("not-a-token", "test-secret")
	assert.Error(t, err)
}
