package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func postIntent(router *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/create-payment-intent", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestCreatePaymentIntent(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("ReturnsClientSecret", func(t *testing.T) {
		services := newFakeServices(t)
		provider := &fakePaymentProvider{secret: "pi_123_secret_456"}
		services.provider = provider

		router := gin.New()
		router.POST("/create-payment-intent", CreatePaymentIntent(services))

		w := postIntent(router, `{"amount":250000,"currency":"usd","email":"a@x.com"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "pi_123_secret_456")
		assert.Equal(t, int64(250000), provider.amount)
		assert.Equal(t, "usd", provider.currency)
		assert.Equal(t, "a@x.com", provider.email)
	})

	t.Run("RejectsMissingAmount", func(t *testing.T) {
		services := newFakeServices(t)
		services.provider = &fakePaymentProvider{secret: "unused"}

		router := gin.New()
		router.POST("/create-payment-intent", CreatePaymentIntent(services))

		w := postIntent(router, `{"currency":"usd"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("ProviderFailure", func(t *testing.T) {
		services := newFakeServices(t)
		services.provider = &fakePaymentProvider{err: errors.New("stripe is down")}

		router := gin.New()
		router.POST("/create-payment-intent", CreatePaymentIntent(services))

		w := postIntent(router, `{"amount":100}`)
		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.NotContains(t, w.Body.String(), "clientSecret")
	})
}
