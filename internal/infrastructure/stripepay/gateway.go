// Package stripepay adapts the Stripe payment-intent API to the
// payment gateway port.
package stripepay

import (
	"context"
	"fmt"
	"time"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"

	"github.com/HailNail/MindArc/internal/usecase"
)

type Gateway struct {
	publishableKey string
}

// NewGateway configures the package-level Stripe client. Stripe's SDK
// keeps the secret key globally, so one gateway per process.
func NewGateway(secretKey, publishableKey string) *Gateway {
	stripe.Key = secretKey
	return &Gateway{publishableKey: publishableKey}
}

// PublishableKey is exposed to the client via /api/config/stripe.
func (g *Gateway) PublishableKey() string {
	return g.publishableKey
}

func (g *Gateway) CreateIntent(ctx context.Context, amountMinor int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountMinor),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe: failed to create payment intent: %w", err)
	}
	return intent.ClientSecret, nil
}

func (g *Gateway) ListPayments(ctx context.Context, limit int64) ([]usecase.PaymentRecord, error) {
	params := &stripe.PaymentIntentListParams{}
	params.Limit = stripe.Int64(limit)
	params.Context = ctx

	var records []usecase.PaymentRecord
	iter := paymentintent.List(params)
	for iter.Next() {
		intent := iter.PaymentIntent()
		records = append(records, usecase.PaymentRecord{
			ID:             intent.ID,
			Status:         string(intent.Status),
			AmountReceived: intent.AmountReceived,
			Created:        time.Unix(intent.Created, 0),
		})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("stripe: failed to list payment intents: %w", err)
	}
	return records, nil
}
