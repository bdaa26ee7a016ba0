package middleware

import (
	"net/http"

	"hr-admin/internal/session"
	"hr-admin/internal/shared/apperror"
	"hr-admin/internal/shared/contextutil"
	"hr-admin/internal/shared/principal"
	"hr-admin/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// SessionAuth resolves the session cookie into a Principal and aborts with
// 401 when no valid session exists.
func SessionAuth(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(session.CookieName)
		if err != nil || token == "" {
			response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Authentication is required", nil)
			c.Abort()
			return
		}

		p, err := store.Get(c.Request.Context(), token)
		if err != nil {
			httpErr := apperror.ToHTTP(err)
			response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
			c.Abort()
			return
		}

		attachPrincipal(c, p, token)
		c.Next()
	}
}

// OptionalSessionAuth attaches a Principal when a valid session exists but
// never aborts. Used by whoami.
func OptionalSessionAuth(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(session.CookieName)
		if err == nil && token != "" {
			if p, err := store.Get(c.Request.Context(), token); err == nil {
				attachPrincipal(c, p, token)
			}
		}
		c.Next()
	}
}

// RequireAdmin guards admin-only endpoints.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := principal.From(c.Request.Context())
		if !ok || !p.IsAdmin() {
			response.Error(c, http.StatusForbidden, apperror.CodeForbidden, "Admin access required", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireEmployee guards self-service endpoints. Admins have no employee
// profile, so an admin session is rejected rather than treated as empty.
func RequireEmployee() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := principal.From(c.Request.Context())
		if !ok {
			response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Authentication is required", nil)
			c.Abort()
			return
		}
		if p.IsAdmin() {
			response.Error(c, http.StatusForbidden, apperror.CodeForbidden, "Admins have no employee profile", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

func attachPrincipal(c *gin.Context, p principal.Principal, token string) {
	c.Set("user_id", p.UserID.String())
	c.Set("session_token", token)

	ctx := principal.With(c.Request.Context(), p)
	ctx = contextutil.WithUserID(ctx, p.UserID.String())
	c.Request = c.Request.WithContext(ctx)
}
