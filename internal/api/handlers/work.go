package handlers

import (
	"net/http"
	"time"

	"gravity-server/internal/api/interfaces"
	"gravity-server/internal/api/middlewares"
	"gravity-server/internal/api/models"
	"gravity-server/internal/auth"
	"gravity-server/internal/database"

	"github.com/gin-gonic/gin"
)

// CreateWorkEntry logs a unit of work for the authenticated employee. The
// employee identity comes from the verified claims, never from the body.
func CreateWorkEntry(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.WorkEntryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.Err(
				models.ErrCodeInvalidRequest, "invalid work entry payload"))
			return
		}

		claims, ok := c.MustGet(middlewares.ContextUserClaims).(*auth.Claims)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.Err(
				models.ErrCodeUnauthorized, "unauthorized access"))
			return
		}

		date := time.Unix(req.Date, 0).UTC()
		month := req.Month
		if month == "" {
			month = date.Month().String()
		}

		entry := &database.WorkEntry{
			Task:  req.Task,
			Hours: req.Hours,
			Date:  date,
			Month: month,
			Employee: database.WorkEmployee{
				Name:  claims.Name,
				Email: claims.Email,
			},
		}

		id, err := services.WorkRepository().Insert(c.Request.Context(), entry)
		if err != nil {
			services.GetLogger().Error("Work entry insert failed: %v", err)
			c.JSON(http.StatusInternalServerError, models.Err(
				models.ErrCodeInternalError, "could not save work entry"))
			return
		}

		c.JSON(http.StatusOK, models.OK(models.InsertedResponse{InsertedID: id.Hex()}))
	}
}

// GetEmployeeWork returns all work entries logged by one employee
func GetEmployeeWork(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email")

		entries, err := services.WorkRepository().FindByEmployeeEmail(c.Request.Context(), email)
		if err != nil {
			services.GetLogger().Error("Work entry lookup failed: %v", err)
			c.JSON(http.StatusInternalServerError, models.Err(
				models.ErrCodeInternalError, "could not load work entries"))
			return
		}

		c.JSON(http.StatusOK, models.OK(entries))
	}
}

// ListWork returns work entries across employees for the HR progress view,
// optionally filtered by employee email and month.
func ListWork(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		employee := c.Query("employee")
		month := c.Query("month")

		entries, err := services.WorkRepository().List(c.Request.Context(), employee, month)
		if err != nil {
			services.GetLogger().Error("Work listing failed: %v", err)
			c.JSON(http.StatusInternalServerError, models.Err(
				models.ErrCodeInternalError, "could not load work entries"))
			return
		}

		c.JSON(http.StatusOK, models.OK(entries))
	}
}
