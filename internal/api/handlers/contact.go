package handlers

import (
	"net/http"

	"gravity-server/internal/api/interfaces"
	"gravity-server/internal/api/models"
	"gravity-server/internal/database"

	"github.com/gin-gonic/gin"
)

// SubmitContact stores a contact-form submission
func SubmitContact(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ContactRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.Err(
				models.ErrCodeInvalidRequest, "invalid contact payload"))
			return
		}

		msg := &database.ContactMessage{
			Name:    req.Name,
			Email:   req.Email,
			Message: req.Message,
		}

		id, err := services.ContactRepository().Insert(c.Request.Context(), msg)
		if err != nil {
			services.GetLogger().Error("Contact insert failed: %v", err)
			c.JSON(http.StatusInternalServerError, models.Err(
				models.ErrCodeInternalError, "could not save message"))
			return
		}

		c.JSON(http.StatusOK, models.OK(models.InsertedResponse{InsertedID: id.Hex()}))
	}
}
