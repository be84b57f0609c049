package usecase

import (
	"context"
	"io"
	"time"
)

// PaymentGateway is the outbound port to the payment processor. The
// processor owns the payment lifecycle; the storefront only creates
// intents and reads back their records.
type PaymentGateway interface {
	// CreateIntent registers a charge attempt for the given amount in
	// minor units and returns the client secret the frontend needs to
	// complete the payment.
	CreateIntent(ctx context.Context, amountMinor int64, currency string) (string, error)
	// ListPayments returns up to limit most recent payment records.
	ListPayments(ctx context.Context, limit int64) ([]PaymentRecord, error)
}

// PaymentRecord mirrors the processor-side view of a payment intent.
type PaymentRecord struct {
	ID             string
	Status         string
	AmountReceived int64
	Created        time.Time
}

// PaymentStatusSucceeded is the terminal success status reported by
// the processor.
const PaymentStatusSucceeded = "succeeded"

// BlobStore stores an image and returns its durable public URL.
type BlobStore interface {
	Upload(ctx context.Context, file io.Reader, filename string) (string, error)
}

// IdentityVerifier validates a provider-issued ID token and extracts
// the identity it asserts.
type IdentityVerifier interface {
	Verify(ctx context.Context, idToken string) (*ProviderIdentity, error)
}

type ProviderIdentity struct {
	Subject string
	Email   string
	Name    string
}
