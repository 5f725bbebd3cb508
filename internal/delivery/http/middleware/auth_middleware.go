package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "linkmark/internal/delivery/context"
	"linkmark/internal/delivery/http/response"
	"linkmark/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	contextKeyUserID    = "userID"
	contextKeyUserEmail = "userEmail"
)

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate validates the Bearer access token on the request. Every
// failure answers 401 with the same body; the actual failure kind is only
// logged, never returned to the client.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return m.reject(c, "missing Authorization header")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return m.reject(c, "Authorization header is not a Bearer token")
		}

		claims, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			return m.reject(c, err.Error())
		}

		// Set user info on the context for handlers to use
		c.Set(contextKeyUserID, claims.UserID)
		c.Set(contextKeyUserEmail, claims.Email)

		return next(c)
	}
}

func (m *AuthMiddleware) reject(c echo.Context, reason string) error {
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
	logger.Warn("Rejected unauthenticated request",
		slog.String("reason", reason),
		slog.String("path", c.Request().URL.Path),
	)

	return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
}

// GetUserID returns the authenticated user's ID set by Authenticate.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(contextKeyUserID).(uuid.UUID)

	return userID, ok
}

// GetUserEmail returns the authenticated user's email set by Authenticate.
func GetUserEmail(c echo.Context) (string, bool) {
	email, ok := c.Get(contextKeyUserEmail).(string)

	return email, ok
}
