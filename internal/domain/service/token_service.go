package service

import (
	"time"

	"tracker/internal/domain/entity"

	"github.com/google/uuid"
)

// Claims are the verified contents of an access token.
type Claims struct {
	UserID    uuid.UUID
	Roles     entity.Roles
	ExpiresAt time.Time
}

// TokenVerifier validates access tokens issued by the identity service.
// Token issuance lives outside this service.
type TokenVerifier interface {
	// VerifyAccessToken checks signature, expiry and token type and returns the claims.
	VerifyAccessToken(tokenString string) (*Claims, error)
}
