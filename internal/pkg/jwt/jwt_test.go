package jwt

import (
	"context"
	"testing"

	"github.com/crewlog/crewlog-backend/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt"

func newTestJWTService() Service {
	return NewJWTService(testSecret, "1h", "24h")
}

func TestGenerateAccessToken(t *testing.T) {
	svc := newTestJWTService()

	token, expiresAt, err := svc.GenerateAccessToken("u1", "jane@example.com", user.PositionDeveloper, user.RoleUser)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Greater(t, expiresAt, int64(0))

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)
	claims, err := decoded.AsMap(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "u1", claims["user_id"])
	assert.Equal(t, "jane@example.com", claims["email"])
	assert.Equal(t, string(user.PositionDeveloper), claims["position"])
	assert.Equal(t, string(user.RoleUser), claims["role"])
	assert.Equal(t, "access", claims["type"])
}

func TestGenerateRefreshToken(t *testing.T) {
	svc := newTestJWTService()

	token, _, err := svc.GenerateRefreshToken("u1")
	require.NoError(t, err)

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)
	claims, err := decoded.AsMap(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "refresh", claims["type"])
	assert.Equal(t, "u1", claims["user_id"])
}

func TestRevokeToken(t *testing.T) {
	svc := newTestJWTService()

	token, _, err := svc.GenerateRefreshToken("u1")
	require.NoError(t, err)

	assert.False(t, svc.IsTokenRevoked(token))
	svc.RevokeToken(token)
	assert.True(t, svc.IsTokenRevoked(token))
}

func TestRefreshTokenCookie(t *testing.T) {
	svc := newTestJWTService()

	cookie := svc.RefreshTokenCookie("some-token", 1893456000)
	assert.Equal(t, "refresh_token", cookie.Name)
	assert.Equal(t, "some-token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
}
