package auth

import (
	"testing"
	"time"

	"foodorder/config"
	"foodorder/internal/domain/entity"
	"foodorder/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAccessSecret = "test_access_secret_key_very_long_for_testing"

func newTestConfig(secret string, ttl time.Duration) *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{TokenTTL: ttl}}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(testAccessSecret, 0))
	require.NoError(t, err)
	require.NotNil(t, jwtService)

	userID := uuid.New()

	accessToken, err := jwtService.GenerateAccessToken(userID, entity.RoleOwner)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)

	claims, err := jwtService.ValidateToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.Equal(t, entity.RoleOwner, claims.Role)
	assert.Equal(t, service.TokenTypeAccess, claims.Type)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(testAccessSecret, 0))
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse token")
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestConfig("another_secret_used_by_someone_else", 0))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestConfig(testAccessSecret, 0))
	require.NoError(t, err)

	token, err := issuer.GenerateAccessToken(uuid.New(), entity.RoleCustomer)
	require.NoError(t, err)

	claims, err := verifier.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(testAccessSecret, time.Minute))
	require.NoError(t, err)

	impl, ok := svc.(*jwtService)
	require.True(t, ok)
	impl.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := impl.GenerateAccessToken(uuid.New(), entity.RoleCustomer)
	require.NoError(t, err)

	claims, err := impl.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsUnknownRoleAndType(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(testAccessSecret, 0))
	require.NoError(t, err)

	sign := func(claims *service.Claims) string {
		token, signErr := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testAccessSecret))
		require.NoError(t, signErr)

		return token
	}
	registered := jwt.RegisteredClaims{
		Subject:   uuid.NewString(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}

	_, err = jwtService.ValidateToken(sign(&service.Claims{Role: "driver", Type: service.TokenTypeAccess, RegisteredClaims: registered}))
	assert.Error(t, err)

	_, err = jwtService.ValidateToken(sign(&service.Claims{Role: entity.RoleCustomer, Type: "refresh", RegisteredClaims: registered}))
	assert.Error(t, err)
}

func TestJWTService_RejectsOtherSigningMethods(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(testAccessSecret, 0))
	require.NoError(t, err)

	claims := &service.Claims{
		Role: entity.RoleCustomer,
		Type: service.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testAccessSecret))
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_EmptySecret(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig("", 0))
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}

func TestJWTService_GetAccessTokenDuration(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(testAccessSecret, 0))
	require.NoError(t, err)
	assert.Equal(t, 7*24*time.Hour, jwtService.GetAccessTokenDuration())

	custom, err := NewJWTService(newTestConfig(testAccessSecret, time.Hour))
	require.NoError(t, err)
	assert.Equal(t, time.Hour, custom.GetAccessTokenDuration())
}
