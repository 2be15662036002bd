package handlers

import (
	"errors"
	"net/http"

	"gravity-server/internal/api/interfaces"
	"gravity-server/internal/api/middlewares"
	"gravity-server/internal/api/models"
	"gravity-server/internal/auth"
	"gravity-server/internal/database"
	"gravity-server/internal/database/repositories"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UpsertUser saves a user record on first login. When the email already
// exists the stored record is returned untouched so role and flags set by
// admin or HR since signup are never overwritten.
func UpsertUser(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.UpsertUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.Err(
				models.ErrCodeInvalidRequest, "invalid user payload"))
			return
		}

		user := &database.User{
			Email:       req.Email,
			Name:        req.Name,
			PhotoURL:    req.PhotoURL,
			Role:        req.Role,
			Designation: req.Designation,
			BankAccount: req.BankAccount,
			Salary:      req.Salary,
		}

		stored, created, err := services.UserRepository().UpsertIfAbsent(c.Request.Context(), user)
		if err != nil {
			services.GetLogger().Error("User upsert failed: %v", err)
			c.JSON(http.StatusInternalServerError, models.Err(
				models.ErrCodeInternalError, "could not save user"))
			return
		}

		if created {
			services.GetLogger().AuditLogger("user_created", req.Email, "users", "")
		}
		c.JSON(http.StatusOK, models.OK(stored))
	}
}

// GetUser fetches a single user record by email
func GetUser(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email")

		user, err := services.UserRepository().FindByEmail(c.Request.Context(), email)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				c.JSON(http.StatusNotFound, models.Err(
					models.ErrCodeNotFound, "user not found"))
				return
			}
			services.GetLogger().Error("User lookup failed: %v", err)
			c.JSON(http.StatusInternalServerError, models.Err(
				models.ErrCodeInternalError, "could not load user"))
			return
		}

		c.JSON(http.StatusOK, models.OK(user))
	}
}

// ListUsers returns all user records. Admin only.
func ListUsers(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := services.UserRepository().List(c.Request.Context())
		if err != nil {
			services.GetLogger().Error("User listing failed: %v", err)
			c.JSON(http.StatusInternalServerError, models.Err(
				models.ErrCodeInternalError, "could not load users"))
			return
		}

		c.JSON(http.StatusOK, models.OK(users))
	}
}

// ListEmployees returns all users holding the Employee role for the HR
// dashboard.
func ListEmployees(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		employees, err := services.UserRepository().ListByRole(c.Request.Context(), auth.RoleEmployee)
		if err != nil {
			services.GetLogger().Error("Employee listing failed: %v", err)
			c.JSON(http.StatusInternalServerError, models.Err(
				models.ErrCodeInternalError, "could not load employees"))
			return
		}

		c.JSON(http.StatusOK, models.OK(employees))
	}
}

// UpdateUser applies an admin update, typically a role change, to the user
// record keyed by email. The new role binds on the user's next request.
func UpdateUser(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email")

		var req models.UpdateUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.Err(
				models.ErrCodeInvalidRequest, "invalid update payload"))
			return
		}

		fields := bson.M{}
		if req.Role != "" {
			fields["role"] = req.Role
		}
		if req.Designation != "" {
			fields["designation"] = req.Designation
		}
		if req.Salary != 0 {
			fields["salary"] = req.Salary
		}

		err := services.UserRepository().UpdateByEmail(c.Request.Context(), email, fields)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				c.JSON(http.StatusNotFound, models.Err(
					models.ErrCodeNotFound, "user not found"))
				return
			}
			services.GetLogger().Error("User update failed: %v", err)
			c.JSON(http.StatusInternalServerError, models.Err(
				models.ErrCodeInternalError, "could not update user"))
			return
		}

		services.GetLogger().AuditLogger("user_updated",
			c.GetString(middlewares.ContextUserEmail), "users", "target="+email)
		c.JSON(http.StatusOK, models.OK(nil))
	}
}

// FireUser marks a user as let go. The record is kept; the flag excludes
// the user from payroll and dashboards.
func FireUser(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, models.Err(
				models.ErrCodeInvalidRequest, "invalid user id"))
			return
		}

		if err := services.UserRepository().Fire(c.Request.Context(), id); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				c.JSON(http.StatusNotFound, models.Err(
					models.ErrCodeNotFound, "user not found"))
				return
			}
			services.GetLogger().Error("Fire update failed: %v", err)
			c.JSON(http.StatusInternalServerError, models.Err(
				models.ErrCodeInternalError, "could not update user"))
			return
		}

		services.GetLogger().SecurityLogger("user_fired",
			c.GetString(middlewares.ContextUserEmail), "target="+c.Param("id"))
		c.JSON(http.StatusOK, models.OK(nil))
	}
}

// VerifyEmployee records HR verification for a user
func VerifyEmployee(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, models.Err(
				models.ErrCodeInvalidRequest, "invalid user id"))
			return
		}

		err = services.UserRepository().SetStatus(c.Request.Context(), id, database.StatusVerified)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				c.JSON(http.StatusNotFound, models.Err(
					models.ErrCodeNotFound, "user not found"))
				return
			}
			services.GetLogger().Error("Status update failed: %v", err)
			c.JSON(http.StatusInternalServerError, models.Err(
				models.ErrCodeInternalError, "could not update user"))
			return
		}

		c.JSON(http.StatusOK, models.OK(nil))
	}
}
