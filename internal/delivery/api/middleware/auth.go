package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "tracker/internal/delivery/context"
	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	contextKeyUserID = "userID"
	contextKeyRoles  = "roles"

	// queryTokenParam carries the token for websocket upgrades, where browsers cannot set headers.
	queryTokenParam = "token"
)

// AuthMiddleware authenticates requests with access tokens from the identity service.
type AuthMiddleware struct {
	verifier service.TokenVerifier
}

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	Verifier service.TokenVerifier
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{verifier: params.Verifier}
}

// Authenticate validates the bearer token and stores the caller on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := bearerToken(c)
		if token == "" {
			return domainerrors.ErrUnauthorized.WithDetails("missing access token")
		}

		claims, err := m.verifier.VerifyAccessToken(token)
		if err != nil {
			return domainerrors.ErrUnauthorized.WrapMessage(err.Error())
		}

		c.Set(contextKeyUserID, claims.UserID)
		c.Set(contextKeyRoles, claims.Roles)

		ctx := deliverycontext.WithLogAttrs(c.Request().Context(), slog.String("user_id", claims.UserID.String()))
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireRole rejects callers without one of the given roles.
// It must be used after Authenticate.
func (m *AuthMiddleware) RequireRole(allowed ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, ok := GetRoles(c)
			if !ok {
				return domainerrors.ErrForbidden.WithDetails("role information missing")
			}

			if !roles.HasAny(allowed...) {
				return domainerrors.ErrForbidden
			}

			return next(c)
		}
	}
}

// GetUserID returns the authenticated user id.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(contextKeyUserID).(uuid.UUID)

	return userID, ok && userID != uuid.Nil
}

// GetRoles returns the roles of the authenticated user.
func GetRoles(c echo.Context) (entity.Roles, bool) {
	roles, ok := c.Get(contextKeyRoles).(entity.Roles)

	return roles, ok
}

func bearerToken(c echo.Context) string {
	const prefix = "Bearer "
	if header := c.Request().Header.Get(echo.HeaderAuthorization); header != "" {
		if !strings.HasPrefix(header, prefix) {
			return ""
		}

		return strings.TrimSpace(strings.TrimPrefix(header, prefix))
	}

	return c.QueryParam(queryTokenParam)
}
