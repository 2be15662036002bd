package handlers

import (
	"errors"
	"net/http"

	"gravity-server/internal/api/interfaces"
	"gravity-server/internal/api/models"
	"gravity-server/internal/database"
	"gravity-server/internal/database/repositories"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ListServices returns all public service listings
func ListServices(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		listings, err := services.ServiceRepository().List(c.Request.Context())
		if err != nil {
			services.GetLogger().Error("Service listing failed: %v", err)
			c.JSON(http.StatusInternalServerError, models.Err(
				models.ErrCodeInternalError, "could not load services"))
			return
		}

		c.JSON(http.StatusOK, models.OK(listings))
	}
}

// GetService returns a single service listing by ID
func GetService(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, models.Err(
				models.ErrCodeInvalidRequest, "invalid service id"))
			return
		}

		listing, err := services.ServiceRepository().FindByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				c.JSON(http.StatusNotFound, models.Err(
					models.ErrCodeNotFound, "service not found"))
				return
			}
			services.GetLogger().Error("Service lookup failed: %v", err)
			c.JSON(http.StatusInternalServerError, models.Err(
				models.ErrCodeInternalError, "could not load service"))
			return
		}

		c.JSON(http.StatusOK, models.OK(listing))
	}
}

// CreateService adds a new service listing. Admin only.
func CreateService(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CreateServiceRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.Err(
				models.ErrCodeInvalidRequest, "invalid service payload"))
			return
		}

		listing := &database.Service{
			Title:       req.Title,
			Description: req.Description,
			Image:       req.Image,
			Price:       req.Price,
			Category:    req.Category,
		}

		id, err := services.ServiceRepository().Insert(c.Request.Context(), listing)
		if err != nil {
			services.GetLogger().Error("Service insert failed: %v", err)
			c.JSON(http.StatusInternalServerError, models.Err(
				models.ErrCodeInternalError, "could not save service"))
			return
		}

		c.JSON(http.StatusOK, models.OK(models.InsertedResponse{InsertedID: id.Hex()}))
	}
}
