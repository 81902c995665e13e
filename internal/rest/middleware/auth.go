package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pocketwise/pocketwise/internal/auth"
	"github.com/pocketwise/pocketwise/internal/config"
	ierr "github.com/pocketwise/pocketwise/internal/errors"
	"github.com/pocketwise/pocketwise/internal/logger"
	"github.com/pocketwise/pocketwise/internal/types"
)

// GuestAuthenticateMiddleware lets requests through without a token and acts
// as the default user. Only mounted in local mode.
func GuestAuthenticateMiddleware(c *gin.Context) {
	ctx := types.SetUserID(c.Request.Context(), types.DefaultUserID)
	c.Request = c.Request.WithContext(ctx)
	c.Next()
}

// AuthenticateMiddleware resolves the user from the Bearer token in the
// Authorization header and stores it in the request context
func AuthenticateMiddleware(provider auth.Provider, logger *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(types.HeaderAuthorization)
		if authHeader == "" {
			abortUnauthenticated(c, "Missing authorization header")
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			abortUnauthenticated(c, "Invalid authorization header format")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := provider.ValidateToken(c.Request.Context(), tokenString)
		if err != nil {
			logger.Debugw("failed to validate token", "error", err)
			c.Error(err)
			c.Abort()
			return
		}

		ctx := c.Request.Context()
		ctx = types.SetUserID(ctx, claims.UserID)
		ctx = context.WithValue(ctx, types.CtxJWT, tokenString)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// CronAuthMiddleware admits scheduled jobs presenting the configured cron key
// and marks them in the context. Requests without the key header go through
// authenticate.
func CronAuthMiddleware(cfg *config.Configuration, logger *logger.Logger, authenticate gin.HandlerFunc) gin.HandlerFunc {
	header := cfg.Auth.CronKey.Header
	if header == "" {
		header = types.HeaderCronKey
	}

	return func(c *gin.Context) {
		key := c.GetHeader(header)
		if key == "" {
			authenticate(c)
			return
		}

		if !auth.ValidateCronKey(cfg, key) {
			logger.Debugw("invalid cron key", "path", c.FullPath())
			abortUnauthenticated(c, "Invalid cron key")
			return
		}

		c.Request = c.Request.WithContext(types.SetCronCaller(c.Request.Context()))
		c.Next()
	}
}

func abortUnauthenticated(c *gin.Context, hint string) {
	c.Error(ierr.NewError("unauthenticated").
		WithHint(hint).
		Mark(ierr.ErrUnauthenticated))
	c.Abort()
}
