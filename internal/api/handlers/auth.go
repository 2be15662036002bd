package handlers

import (
	"net/http"

	"gravity-server/internal/api/interfaces"
	"gravity-server/internal/api/middlewares"
	"gravity-server/internal/api/models"

	"github.com/gin-gonic/gin"
)

// IssueToken mints a session token for the posted identity payload and
// hands it to the client in the session cookie. Identity is established by
// the client-side auth provider before this endpoint is called, so the
// payload is packaged as-is beyond non-empty validation.
func IssueToken(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.IssueTokenRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.Err(
				models.ErrCodeInvalidRequest, "identity payload is required"))
			return
		}

		token, err := services.TokenManager().Issue(req.Email, req.Name)
		if err != nil {
			services.GetLogger().Error("Token issuance failed: %v", err)
			c.JSON(http.StatusInternalServerError, models.Err(
				models.ErrCodeInternalError, "could not issue token"))
			return
		}

		services.SessionCookie().Write(c, token)
		services.GetLogger().AuditLogger("token_issued", req.Email, "session", "")

		c.JSON(http.StatusOK, models.TokenIssuedResponse{Success: true})
	}
}

// Logout overwrites the session cookie with an immediately expired one.
// There is no server-side revocation list: a token captured before logout
// stays valid until its natural expiry.
func Logout(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		services.SessionCookie().Clear(c)
		services.GetLogger().AuditLogger("logout", c.GetString(middlewares.ContextUserEmail), "session", "")

		c.JSON(http.StatusOK, models.TokenIssuedResponse{Success: true})
	}
}
