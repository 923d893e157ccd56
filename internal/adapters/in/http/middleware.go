package http

import (
	"net/http"
	"time"

	"shiptrack/internal/core/domain/model/account"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// principalContextKey is where the authentication middleware stores the
// caller's Principal in the echo context.
const principalContextKey = "principal"

// Identity headers set by the gateway after it has verified the caller's
// credentials. This service trusts them and performs no credential checks.
const (
	headerUserID   = "X-User-Id"
	headerUserRole = "X-User-Role"
)

// PrincipalExtractor builds the caller's Principal from the gateway identity
// headers and stores it in the request context. Requests without identity
// headers pass through unauthenticated; handlers that need a principal reject
// them with 401. Malformed headers are rejected immediately.
func PrincipalExtractor() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rawID := c.Request().Header.Get(headerUserID)
			rawRole := c.Request().Header.Get(headerUserRole)
			if rawID == "" && rawRole == "" {
				return next(c)
			}

			userID, err := parseID(rawID)
			if err != nil {
				return unauthorized(c, "invalid "+headerUserID+" header")
			}

			role, err := account.ParseRole(rawRole)
			if err != nil {
				return unauthorized(c, "invalid "+headerUserRole+" header")
			}

			principal, err := account.NewPrincipal(userID, role)
			if err != nil {
				return unauthorized(c, "invalid identity headers")
			}

			c.Set(principalContextKey, principal)
			return next(c)
		}
	}
}

// RequestLogger logs one structured line per request and tags each response
// with a request id for correlation.
func RequestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			c.Response().Header().Set(echo.HeaderXRequestID, requestID)

			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			logger.Info("request",
				zap.String("request_id", requestID),
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Int("status", c.Response().Status),
				zap.Duration("duration", time.Since(start)),
			)
			return nil
		}
	}
}

// principalFrom retrieves the Principal stored by PrincipalExtractor.
func principalFrom(c echo.Context) (account.Principal, bool) {
	principal, ok := c.Get(principalContextKey).(account.Principal)
	return principal, ok
}

func unauthorized(c echo.Context, message string) error {
	return c.JSON(http.StatusUnauthorized, errorResponse{
		Code:    http.StatusUnauthorized,
		Message: message,
	})
}
