package auth

import (
	"testing"
	"time"

	"tracker/config"
	"tracker/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func newTestVerifier(t *testing.T) *jwtVerifier {
	cfg := &config.Config{}
	cfg.SecretKey.Access = testSecret

	verifier, err := NewJWTVerifier(cfg)
	require.NoError(t, err)

	return verifier.(*jwtVerifier)
}

func TestNewJWTVerifier_RequiresSecret(t *testing.T) {
	_, err := NewJWTVerifier(&config.Config{})
	assert.Error(t, err)
}

func TestJWTVerifier_RoundTrip(t *testing.T) {
	verifier := newTestVerifier(t)
	userID := uuid.New()

	token, err := SignAccessToken(testSecret, userID, entity.Roles{entity.RoleCourier}, time.Minute)
	require.NoError(t, err)

	claims, err := verifier.VerifyAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, entity.Roles{entity.RoleCourier}, claims.Roles)
	assert.WithinDuration(t, time.Now().Add(time.Minute), claims.ExpiresAt, 2*time.Second)
}

func TestJWTVerifier_Rejects(t *testing.T) {
	verifier := newTestVerifier(t)
	userID := uuid.New()

	sign := func(claims jwt.MapClaims, secret string) string {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		require.NoError(t, err)

		return token
	}
	future := time.Now().Add(time.Hour).Unix()

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-token"},
		{name: "wrong secret", token: sign(jwt.MapClaims{"sub": userID.String(), "exp": future}, "other")},
		{name: "expired", token: sign(jwt.MapClaims{"sub": userID.String(), "exp": time.Now().Add(-time.Minute).Unix()}, testSecret)},
		{name: "no expiry", token: sign(jwt.MapClaims{"sub": userID.String()}, testSecret)},
		{name: "refresh token", token: sign(jwt.MapClaims{"sub": userID.String(), "exp": future, "type": "refresh"}, testSecret)},
		{name: "non uuid subject", token: sign(jwt.MapClaims{"sub": "42", "exp": future}, testSecret)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := verifier.VerifyAccessToken(tt.token)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidToken))
		})
	}
}

func TestJWTVerifier_DropsUnknownRoles(t *testing.T) {
	verifier := newTestVerifier(t)
	userID := uuid.New()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   userID.String(),
		"exp":   time.Now().Add(time.Hour).Unix(),
		"roles": []string{"customer", "admin"},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	claims, err := verifier.VerifyAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, entity.Roles{entity.RoleCustomer}, claims.Roles)
}
