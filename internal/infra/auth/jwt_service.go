// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"fmt"
	"time"

	"tracker/config"
	"tracker/internal/domain/entity"
	"tracker/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const accessTokenType = "access"

// ErrInvalidToken is returned for any token that fails verification.
var ErrInvalidToken = errors.New("invalid access token")

// jwtVerifier is a concrete implementation of the TokenVerifier interface using HS256 JWTs.
type jwtVerifier struct {
	accessSecret []byte
}

// NewJWTVerifier is the constructor for jwtVerifier.
func NewJWTVerifier(cfg *config.Config) (service.TokenVerifier, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtVerifier{accessSecret: []byte(cfg.SecretKey.Access)}, nil
}

// VerifyAccessToken parses the token and maps its claims.
func (v *jwtVerifier) VerifyAccessToken(tokenString string) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return v.accessSecret, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return nil, errors.Wrap(ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if tokenType, _ := claims["type"].(string); tokenType != "" && tokenType != accessTokenType {
		return nil, errors.Wrapf(ErrInvalidToken, "unexpected token type %q", tokenType)
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return nil, errors.Wrap(ErrInvalidToken, "missing subject")
	}
	userID, err := uuid.Parse(subject)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidToken, "subject is not a uuid")
	}

	var expiresAt time.Time
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		expiresAt = exp.Time
	}

	return &service.Claims{
		UserID:    userID,
		Roles:     rolesFromClaim(claims["roles"]),
		ExpiresAt: expiresAt,
	}, nil
}

func rolesFromClaim(raw any) entity.Roles {
	values, ok := raw.([]any)
	if !ok {
		return entity.Roles{}
	}

	names := make([]string, 0, len(values))
	for _, value := range values {
		names = append(names, fmt.Sprint(value))
	}

	return entity.RolesFromStrings(names)
}

// SignAccessToken mints an access token the verifier accepts. It backs the
// test routes and tests; production tokens come from the identity service.
func SignAccessToken(secret string, userID uuid.UUID, roles entity.Roles, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   userID.String(),     // Subject (who the token is for)
		"iat":   now.Unix(),          // Issued At
		"exp":   now.Add(ttl).Unix(), // Expiration Time
		"type":  accessTokenType,     // Type of token
		"roles": roles.ToStrings(),   // Roles for stateless authorization
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))

	return signed, errors.WithStack(err)
}
