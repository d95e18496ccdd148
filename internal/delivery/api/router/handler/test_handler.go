package handler

import (
	"net/http"
	"time"

	"tracker/config"
	"tracker/internal/delivery/api/middleware"
	"tracker/internal/delivery/api/response"
	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/infra/auth"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const testTokenTTL = time.Hour

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// TestHandler handles development endpoints. They are only routed when testRoutes.enabled is set.
type TestHandler struct {
	secret string
}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler(cfg *config.Config) *TestHandler {
	return &TestHandler{secret: cfg.SecretKey.Access}
}

// IssueTokenRequest names the identity a development token is minted for
type IssueTokenRequest struct {
	UserID string   `json:"user_id" validate:"required,uuid"`
	Roles  []string `json:"roles" validate:"required,min=1,dive,oneof=customer courier store dispatcher"`
}

// IssueToken mints an access token the way the identity service would,
// so couriers and viewers can be simulated locally.
func (h *TestHandler) IssueToken(c echo.Context) error {
	var req IssueTokenRequest
	if err := bindAndValidate(c, &req, "invalid token request"); err != nil {
		return err
	}

	userID := uuid.MustParse(req.UserID)
	roles := entity.RolesFromStrings(req.Roles)

	token, err := auth.SignAccessToken(h.secret, userID, roles, testTokenTTL)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"access_token": token,
		"token_type":   "Bearer",
		"expires_in":   int(testTokenTTL.Seconds()),
	})
}

// TestAuthMiddleware echoes the caller resolved by the authentication middleware
func (h *TestHandler) TestAuthMiddleware(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}
	roles, _ := middleware.GetRoles(c)

	return response.Success(c, http.StatusOK, map[string]any{
		"user_id":   userID,
		"roles":     roles,
		"user_type": entity.UserTypeFromRoles(roles),
		"status":    "authenticated",
	})
}
