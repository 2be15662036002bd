package interfaces

import (
	"gravity-server/internal/auth"
	"gravity-server/internal/database/repositories"
	"gravity-server/internal/payments"
	"gravity-server/pkg/config"
	"gravity-server/pkg/logger"
)

// Services defines the interface for API services
type Services interface {
	GetLogger() *logger.Logger
	GetConfig() *config.Config
	TokenManager() *auth.TokenManager
	SessionCookie() *auth.CookieWriter
	PaymentProvider() payments.Provider
	UserRepository() *repositories.UserRepository
	ServiceRepository() *repositories.ServiceRepository
	WorkRepository() *repositories.WorkRepository
	ContactRepository() *repositories.ContactRepository
	IsHealthy() bool
}
