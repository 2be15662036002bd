package payments

import (
	"context"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// ErrInvalidAmount is returned for non-positive charge amounts.
var ErrInvalidAmount = errors.New("payments: amount must be positive")

// Provider creates charge intents with a third-party payment processor and
// returns the opaque client secret the browser needs to confirm the charge.
type Provider interface {
	CreateIntent(ctx context.Context, amount int64, currency, email string) (string, error)
}

// StripeProvider implements Provider against the Stripe API.
type StripeProvider struct {
	api      *client.API
	currency string
}

// NewStripeProvider builds a provider with its own API client. The key is
// validated lazily by the first request, not here.
func NewStripeProvider(secretKey, currency string) *StripeProvider {
	api := &client.API{}
	api.Init(secretKey, nil)

	if currency == "" {
		currency = string(stripe.CurrencyUSD)
	}
	return &StripeProvider{api: api, currency: currency}
}

// CreateIntent creates a payment intent for the given amount in the smallest
// currency unit and returns its client secret.
func (p *StripeProvider) CreateIntent(ctx context.Context, amount int64, currency, email string) (string, error) {
	if amount <= 0 {
		return "", ErrInvalidAmount
	}
	if currency == "" {
		currency = p.currency
	}

	params := &stripe.PaymentIntentParams{
		Params:   stripe.Params{Context: ctx},
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{
			"card",
		}),
	}
	if email != "" {
		params.ReceiptEmail = stripe.String(email)
	}

	intent, err := p.api.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("create payment intent: %w", err)
	}
	return intent.ClientSecret, nil
}
