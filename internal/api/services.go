package api

import (
	"context"

	"gravity-server/internal/auth"
	"gravity-server/internal/database/repositories"
	"gravity-server/internal/payments"
	"gravity-server/pkg/config"
	"gravity-server/pkg/logger"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Services contains all the dependencies for API handlers. Handles are
// created once at startup and injected; nothing here is ambient global
// state.
type Services struct {
	Client *mongo.Client
	Logger *logger.Logger
	Config *config.Config

	tokenManager    *auth.TokenManager
	sessionCookie   *auth.CookieWriter
	paymentProvider payments.Provider

	// Repositories
	userRepository    *repositories.UserRepository
	serviceRepository *repositories.ServiceRepository
	workRepository    *repositories.WorkRepository
	contactRepository *repositories.ContactRepository
}

// NewServices creates a new services container
func NewServices(
	client *mongo.Client,
	tokenManager *auth.TokenManager,
	paymentProvider payments.Provider,
	log *logger.Logger,
	cfg *config.Config,
) *Services {
	db := client.Database(cfg.Database.Name)

	services := &Services{
		Client:          client,
		Logger:          log,
		Config:          cfg,
		tokenManager:    tokenManager,
		paymentProvider: paymentProvider,
	}

	services.sessionCookie = auth.NewCookieWriter(
		cfg.Security.CookieName,
		cfg.Security.CookieDomain,
		cfg.IsProduction(),
		int(tokenManager.TTL().Seconds()),
	)

	// Initialize repositories
	services.userRepository = repositories.NewUserRepository(db)
	services.serviceRepository = repositories.NewServiceRepository(db)
	services.workRepository = repositories.NewWorkRepository(db)
	services.contactRepository = repositories.NewContactRepository(db)

	return services
}

// Interface implementation methods
func (s *Services) GetLogger() *logger.Logger {
	return s.Logger
}

func (s *Services) GetConfig() *config.Config {
	return s.Config
}

func (s *Services) TokenManager() *auth.TokenManager {
	return s.tokenManager
}

func (s *Services) SessionCookie() *auth.CookieWriter {
	return s.sessionCookie
}

func (s *Services) PaymentProvider() payments.Provider {
	return s.paymentProvider
}

func (s *Services) UserRepository() *repositories.UserRepository {
	return s.userRepository
}

func (s *Services) ServiceRepository() *repositories.ServiceRepository {
	return s.serviceRepository
}

func (s *Services) WorkRepository() *repositories.WorkRepository {
	return s.workRepository
}

func (s *Services) ContactRepository() *repositories.ContactRepository {
	return s.contactRepository
}

// IsHealthy checks if all critical services are healthy
func (s *Services) IsHealthy() bool {
	ctx, cancel := context.WithTimeout(context.Background(), s.Config.Database.QueryTimeout)
	defer cancel()

	if err := s.Client.Ping(ctx, readpref.Primary()); err != nil {
		s.Logger.Error("Database health check failed: %v", err)
		return false
	}

	return true
}
