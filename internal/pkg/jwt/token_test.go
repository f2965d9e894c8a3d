package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cargolink/cargolink/internal/pkg/models"
)

func testJWTConfig() models.JWTConfig {
	return models.JWTConfig{
		Secret:     "test-secret",
		Expiration: 60,
		Issuer:     "cargolink-test",
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	cfg := testJWTConfig()
	userID := uuid.New()

	tokenString, expiresAt, err := GenerateToken(userID, models.RoleDealer, cfg)
	require.NoError(t, err)
	assert.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, time.Now().Unix())

	actor, err := ValidateToken(tokenString, cfg.Secret)
	require.NoError(t, err)
	assert.Equal(t, userID, actor.UserID)
	assert.Equal(t, models.RoleDealer, actor.Role)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	cfg := testJWTConfig()

	tokenString, _, err := GenerateToken(uuid.New(), models.RoleWarehouse, cfg)
	require.NoError(t, err)

	actor, err := ValidateToken(tokenString, "other-secret")
	assert.Error(t, err)
	assert.Nil(t, actor)
}

func TestValidateToken_Expired(t *testing.T) {
	cfg := testJWTConfig()
	cfg.Expiration = -5

	tokenString, _, err := GenerateToken(uuid.New(), models.RoleDealer, cfg)
	require.NoError(t, err)

	actor, err := ValidateToken(tokenString, cfg.Secret)
	assert.Error(t, err)
	assert.Nil(t, actor)
}

func TestValidateToken_MissingClaims(t *testing.T) {
	cfg := testJWTConfig()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	tokenString, err := token.SignedString([]byte(cfg.Secret))
	require.NoError(t, err)

	actor, err := ValidateToken(tokenString, cfg.Secret)
	assert.Error(t, err)
	assert.Nil(t, actor)
}

func TestValidateToken_Garbage(t *testing.T) {
	actor, err := ValidateToken("not-a-token", "secret")
	assert.Error(t, err)
	assert.Nil(t, actor)
}
