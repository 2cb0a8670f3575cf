package interfaces

import (
	"context"
	"errors"
	"time"
)

// ErrProviderResourceMissing is returned by gateway reads when the provider
// no longer has a record of the referenced object. The sweeper treats it as
// a definitive terminal state, not a transient failure.
var ErrProviderResourceMissing = errors.New("payments provider resource missing")

// ProviderPayout is the provider's view of one payout event.
type ProviderPayout struct {
	ID             string
	Amount         int64
	Currency       string
	Status         string // paid, pending, in_transit, canceled, failed
	Automatic      bool
	Created        time.Time
	ArrivalDate    time.Time
	FailureMessage string
}

// ProviderBalanceTransaction is one ledger entry funded by a payout.
type ProviderBalanceTransaction struct {
	ID       string
	Type     string // charge, payment, refund, payment_refund, dispute, adjustment, payout, ...
	Amount   int64
	Fee      int64
	Net      int64
	Currency string
	Created  time.Time
}

// ProviderPaymentIntent is the provider's authoritative view of a donation
// collection attempt. CanceledAt and ChargedAt are zero when the provider
// reports no such timestamp.
type ProviderPaymentIntent struct {
	ID         string
	Status     string
	CanceledAt time.Time
	ChargedAt  time.Time
}

// ProviderAccount is a connected sub-account created for a church.
type ProviderAccount struct {
	ID string
}

// PayoutListFilter bounds a historical payout listing.
type PayoutListFilter struct {
	Limit         int
	CreatedAfter  time.Time
	CreatedBefore time.Time
}

// IPaymentsGateway abstracts the external payments provider (Stripe).
//
// The reconciler and sweeper only consume the read operations; the
// account operations back the idempotency-guarded setup endpoints.
type IPaymentsGateway interface {
	RetrievePayout(ctx context.Context, stripeAccountID, payoutID string) (ProviderPayout, error)
	ListPayouts(ctx context.Context, stripeAccountID string, filter PayoutListFilter) ([]ProviderPayout, error)
	ListBalanceTransactions(ctx context.Context, stripeAccountID, payoutID string) ([]ProviderBalanceTransaction, error)
	RetrievePaymentIntent(ctx context.Context, stripeAccountID, paymentIntentID string) (ProviderPaymentIntent, error)
	CreateAccount(ctx context.Context, name, email string) (ProviderAccount, error)
	CreateAccountLink(ctx context.Context, stripeAccountID, refreshURL, returnURL string) (string, error)
}
