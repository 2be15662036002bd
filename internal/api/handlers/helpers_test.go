package handlers

import (
	"context"
	"testing"
	"time"

	"gravity-server/internal/auth"
	"gravity-server/internal/database/repositories"
	"gravity-server/internal/payments"
	"gravity-server/pkg/config"
	"gravity-server/pkg/logger"

	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

// fakeServices satisfies interfaces.Services for handlers that don't touch
// the database.
type fakeServices struct {
	cfg      *config.Config
	log      *logger.Logger
	manager  *auth.TokenManager
	cookies  *auth.CookieWriter
	provider payments.Provider
}

func newFakeServices(t *testing.T) *fakeServices {
	t.Helper()

	manager, err := auth.NewTokenManager(testSecret, time.Hour)
	require.NoError(t, err)

	return &fakeServices{
		cfg:     &config.Config{},
		log:     logger.NewLogger(logger.Options{Level: "fatal"}),
		manager: manager,
		cookies: auth.NewCookieWriter("token", "", false, 3600),
	}
}

func (f *fakeServices) GetLogger() *logger.Logger                    { return f.log }
func (f *fakeServices) GetConfig() *config.Config                    { return f.cfg }
func (f *fakeServices) TokenManager() *auth.TokenManager             { return f.manager }
func (f *fakeServices) SessionCookie() *auth.CookieWriter            { return f.cookies }
func (f *fakeServices) PaymentProvider() payments.Provider           { return f.provider }
func (f *fakeServices) UserRepository() *repositories.UserRepository { return nil }
func (f *fakeServices) ServiceRepository() *repositories.ServiceRepository {
	return nil
}
func (f *fakeServices) WorkRepository() *repositories.WorkRepository { return nil }
func (f *fakeServices) ContactRepository() *repositories.ContactRepository {
	return nil
}
func (f *fakeServices) IsHealthy() bool { return true }

// fakePaymentProvider records the last request and returns a canned secret.
type fakePaymentProvider struct {
	secret   string
	err      error
	amount   int64
	currency string
	email    string
}

func (f *fakePaymentProvider) CreateIntent(_ context.Context, amount int64, currency, email string) (string, error) {
	f.amount = amount
	f.currency = currency
	f.email = email
	if f.err != nil {
		return "", f.err
	}
	return f.secret, nil
}
