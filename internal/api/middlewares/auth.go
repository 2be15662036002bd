package middlewares

import (
	"errors"
	"net/http"

	"gravity-server/internal/api/interfaces"
	"gravity-server/internal/api/models"
	"gravity-server/internal/auth"
	"gravity-server/internal/database/repositories"

	"github.com/gin-gonic/gin"
)

// Context keys set by the auth pipeline
const (
	ContextUserEmail  = "user_email"
	ContextUserClaims = "user_claims"
	ContextUserRole   = "user_role"
)

// AuthRequired reads the session cookie and verifies the token. On success
// the decoded claims are attached to the request context for downstream
// consumption; the context lives for this request only. Absent, tampered
// and expired credentials all produce the same 401 so the response never
// reveals which check failed.
func AuthRequired(verifier interfaces.TokenVerifier, cookies *auth.CookieWriter) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookies.Read(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, models.Err(
				models.ErrCodeUnauthorized, "unauthorized access"))
			c.Abort()
			return
		}

		claims, err := verifier.Verify(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.Err(
				models.ErrCodeInvalidToken, "unauthorized access"))
			c.Abort()
			return
		}

		c.Set(ContextUserEmail, claims.Email)
		c.Set(ContextUserClaims, claims)

		c.Next()
	}
}

// RoleRequired authorizes an already-authenticated request against a single
// required role tag. It must be chained after AuthRequired. Every check is
// one fresh store read and an exact string comparison: there is no role
// hierarchy and no caching, so a role change binds on the very next
// request. A store outage surfaces as 500, never as a denial.
func RoleRequired(store interfaces.UserStore, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(ContextUserEmail)
		if email == "" {
			c.JSON(http.StatusForbidden, models.Err(
				models.ErrCodeForbidden, "forbidden access"))
			c.Abort()
			return
		}

		user, err := store.FindByEmail(c.Request.Context(), email)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				c.JSON(http.StatusForbidden, models.Err(
					models.ErrCodeForbidden, "forbidden access"))
				c.Abort()
				return
			}
			c.JSON(http.StatusInternalServerError, models.Err(
				models.ErrCodeInternalError, "user store unavailable"))
			c.Abort()
			return
		}

		if user.Role != role {
			c.JSON(http.StatusForbidden, models.Err(
				models.ErrCodeForbidden, "forbidden access"))
			c.Abort()
			return
		}

		c.Set(ContextUserRole, user.Role)
		c.Next()
	}
}

// AdminRequired gates admin-only operations
func AdminRequired(store interfaces.UserStore) gin.HandlerFunc {
	return RoleRequired(store, auth.RoleAdmin)
}

// HRRequired gates HR-only operations
func HRRequired(store interfaces.UserStore) gin.HandlerFunc {
	return RoleRequired(store, auth.RoleHR)
}
