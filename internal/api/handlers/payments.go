package handlers

import (
	"errors"
	"net/http"

	"gravity-server/internal/api/interfaces"
	"gravity-server/internal/api/middlewares"
	"gravity-server/internal/api/models"
	"gravity-server/internal/payments"

	"github.com/gin-gonic/gin"
)

// CreatePaymentIntent brokers a charge intent with the payment processor
// and returns the opaque client secret the HR browser client needs to
// confirm the salary payment. HR only.
func CreatePaymentIntent(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.PaymentIntentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.Err(
				models.ErrCodeInvalidRequest, "invalid payment payload"))
			return
		}

		clientSecret, err := services.PaymentProvider().CreateIntent(
			c.Request.Context(), req.Amount, req.Currency, req.Email)
		if err != nil {
			if errors.Is(err, payments.ErrInvalidAmount) {
				c.JSON(http.StatusBadRequest, models.Err(
					models.ErrCodeInvalidRequest, "amount must be positive"))
				return
			}
			services.GetLogger().Error("Payment intent creation failed: %v", err)
			c.JSON(http.StatusBadGateway, models.Err(
				models.ErrCodePaymentFailed, "could not create payment intent"))
			return
		}

		services.GetLogger().PaymentLogger("intent_created",
			c.GetString(middlewares.ContextUserEmail), req.Amount, "target="+req.Email)

		c.JSON(http.StatusOK, models.PaymentIntentResponse{ClientSecret: clientSecret})
	}
}
