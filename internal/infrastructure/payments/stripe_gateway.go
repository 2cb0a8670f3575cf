package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"

	"github.com/jsau0309/altarflowdev-sub007/internal/usecase/interfaces"
)

var ErrMissingStripeSecretKey = errors.New("missing STRIPE_SECRET_KEY")
var ErrStripeGatewayNotConfigured = errors.New("stripe gateway not configured")

// StripeGateway implements IPaymentsGateway over the Stripe SDK. All read
// operations run on the church's connected sub-account via the
// Stripe-Account header.

type StripeGateway struct {
	api      *client.API
	mockMode bool
}

var _ interfaces.IPaymentsGateway = (*StripeGateway)(nil)

func NewStripeGateway(secretKey string) (*StripeGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payments][gateway] mock mode enabled")
		return &StripeGateway{mockMode: true}, nil
	}

	if secretKey == "" {
		log.Printf("[payments][gateway] missing STRIPE_SECRET_KEY")
		return nil, ErrMissingStripeSecretKey
	}

	api := client.New(secretKey, nil)
	log.Printf("[payments][gateway] Stripe client initialized")
	return &StripeGateway{api: api}, nil
}

func (g *StripeGateway) RetrievePayout(ctx context.Context, stripeAccountID, payoutID string) (interfaces.ProviderPayout, error) {
	if g.mockMode {
		return mockPayout(payoutID), nil
	}
	if g.api == nil {
		return interfaces.ProviderPayout{}, ErrStripeGatewayNotConfigured
	}

	params := &stripe.PayoutParams{}
	params.Context = ctx
	params.SetStripeAccount(stripeAccountID)

	p, err := g.api.Payouts.Get(payoutID, params)
	if err != nil {
		return interfaces.ProviderPayout{}, mapStripeError(err)
	}
	return fromStripePayout(p), nil
}

func (g *StripeGateway) ListPayouts(ctx context.Context, stripeAccountID string, filter interfaces.PayoutListFilter) ([]interfaces.ProviderPayout, error) {
	if g.mockMode {
		return []interfaces.ProviderPayout{mockPayout("po_mock_1"), mockPayout("po_mock_2")}, nil
	}
	if g.api == nil {
		return nil, ErrStripeGatewayNotConfigured
	}

	params := &stripe.PayoutListParams{}
	params.Context = ctx
	params.SetStripeAccount(stripeAccountID)
	if filter.Limit > 0 {
		params.Limit = stripe.Int64(int64(filter.Limit))
	}
	if !filter.CreatedAfter.IsZero() || !filter.CreatedBefore.IsZero() {
		rng := &stripe.RangeQueryParams{}
		if !filter.CreatedAfter.IsZero() {
			rng.GreaterThanOrEqual = filter.CreatedAfter.Unix()
		}
		if !filter.CreatedBefore.IsZero() {
			rng.LesserThanOrEqual = filter.CreatedBefore.Unix()
		}
		params.CreatedRange = rng
	}

	payouts := []interfaces.ProviderPayout{}
	it := g.api.Payouts.List(params)
	for it.Next() {
		payouts = append(payouts, fromStripePayout(it.Payout()))
		if filter.Limit > 0 && len(payouts) >= filter.Limit {
			break
		}
	}
	if err := it.Err(); err != nil {
		return nil, mapStripeError(err)
	}
	return payouts, nil
}

func (g *StripeGateway) ListBalanceTransactions(ctx context.Context, stripeAccountID, payoutID string) ([]interfaces.ProviderBalanceTransaction, error) {
	if g.mockMode {
		return mockBalanceTransactions(payoutID), nil
	}
	if g.api == nil {
		return nil, ErrStripeGatewayNotConfigured
	}

	params := &stripe.BalanceTransactionListParams{Payout: stripe.String(payoutID)}
	params.Context = ctx
	params.SetStripeAccount(stripeAccountID)

	txns := []interfaces.ProviderBalanceTransaction{}
	it := g.api.BalanceTransactions.List(params)
	for it.Next() {
		bt := it.BalanceTransaction()
		txns = append(txns, interfaces.ProviderBalanceTransaction{
			ID:       bt.ID,
			Type:     string(bt.Type),
			Amount:   bt.Amount,
			Fee:      bt.Fee,
			Net:      bt.Net,
			Currency: string(bt.Currency),
			Created:  time.Unix(bt.Created, 0).UTC(),
		})
	}
	if err := it.Err(); err != nil {
		return nil, mapStripeError(err)
	}
	return txns, nil
}

func (g *StripeGateway) RetrievePaymentIntent(ctx context.Context, stripeAccountID, paymentIntentID string) (interfaces.ProviderPaymentIntent, error) {
	if g.mockMode {
		return interfaces.ProviderPaymentIntent{ID: paymentIntentID, Status: "succeeded", ChargedAt: time.Now().UTC()}, nil
	}
	if g.api == nil {
		return interfaces.ProviderPaymentIntent{}, ErrStripeGatewayNotConfigured
	}

	params := &stripe.PaymentIntentParams{}
	params.Context = ctx
	params.SetStripeAccount(stripeAccountID)
	params.AddExpand("latest_charge")

	pi, err := g.api.PaymentIntents.Get(paymentIntentID, params)
	if err != nil {
		return interfaces.ProviderPaymentIntent{}, mapStripeError(err)
	}

	intent := interfaces.ProviderPaymentIntent{
		ID:     pi.ID,
		Status: string(pi.Status),
	}
	if pi.CanceledAt > 0 {
		intent.CanceledAt = time.Unix(pi.CanceledAt, 0).UTC()
	}
	if pi.LatestCharge != nil && pi.LatestCharge.Created > 0 {
		intent.ChargedAt = time.Unix(pi.LatestCharge.Created, 0).UTC()
	}
	return intent, nil
}

func (g *StripeGateway) CreateAccount(ctx context.Context, name, email string) (interfaces.ProviderAccount, error) {
	if g.mockMode {
		return interfaces.ProviderAccount{ID: fmt.Sprintf("acct_mock_%d", time.Now().UnixNano())}, nil
	}
	if g.api == nil {
		return interfaces.ProviderAccount{}, ErrStripeGatewayNotConfigured
	}

	params := &stripe.AccountParams{
		Type:  stripe.String(string(stripe.AccountTypeExpress)),
		Email: stripe.String(email),
		BusinessProfile: &stripe.AccountBusinessProfileParams{
			Name: stripe.String(name),
		},
	}
	params.Context = ctx

	acct, err := g.api.Accounts.New(params)
	if err != nil {
		return interfaces.ProviderAccount{}, mapStripeError(err)
	}
	log.Printf("[payments][gateway] account created account=%s", acct.ID)
	return interfaces.ProviderAccount{ID: acct.ID}, nil
}

func (g *StripeGateway) CreateAccountLink(ctx context.Context, stripeAccountID, refreshURL, returnURL string) (string, error) {
	if g.mockMode {
		return "https://connect.stripe.com/setup/mock", nil
	}
	if g.api == nil {
		return "", ErrStripeGatewayNotConfigured
	}

	params := &stripe.AccountLinkParams{
		Account:    stripe.String(stripeAccountID),
		RefreshURL: stripe.String(refreshURL),
		ReturnURL:  stripe.String(returnURL),
		Type:       stripe.String("account_onboarding"),
	}
	params.Context = ctx

	link, err := g.api.AccountLinks.New(params)
	if err != nil {
		return "", mapStripeError(err)
	}
	return link.URL, nil
}

// mapStripeError translates the SDK's resource_missing code into the
// gateway-level sentinel; everything else passes through unchanged.
func mapStripeError(err error) error {
	var sErr *stripe.Error
	if errors.As(err, &sErr) && sErr.Code == stripe.ErrorCodeResourceMissing {
		return fmt.Errorf("%w: %s", interfaces.ErrProviderResourceMissing, sErr.Msg)
	}
	return err
}

func fromStripePayout(p *stripe.Payout) interfaces.ProviderPayout {
	out := interfaces.ProviderPayout{
		ID:             p.ID,
		Amount:         p.Amount,
		Currency:       string(p.Currency),
		Status:         string(p.Status),
		Automatic:      p.Automatic,
		Created:        time.Unix(p.Created, 0).UTC(),
		ArrivalDate:    time.Unix(p.ArrivalDate, 0).UTC(),
		FailureMessage: p.FailureMessage,
	}
	if out.FailureMessage == "" && p.FailureCode != "" {
		out.FailureMessage = string(p.FailureCode)
	}
	return out
}

func mockPayout(id string) interfaces.ProviderPayout {
	now := time.Now().UTC()
	return interfaces.ProviderPayout{
		ID:          id,
		Amount:      12000,
		Currency:    "usd",
		Status:      "paid",
		Automatic:   true,
		Created:     now.Add(-48 * time.Hour),
		ArrivalDate: now.Add(-24 * time.Hour),
	}
}

func mockBalanceTransactions(payoutID string) []interfaces.ProviderBalanceTransaction {
	now := time.Now().UTC()
	return []interfaces.ProviderBalanceTransaction{
		{ID: "txn_mock_1", Type: "charge", Amount: 10000, Fee: 320, Net: 9680, Currency: "usd", Created: now.Add(-72 * time.Hour)},
		{ID: "txn_mock_2", Type: "charge", Amount: 2500, Fee: 103, Net: 2397, Currency: "usd", Created: now.Add(-70 * time.Hour)},
		{ID: "txn_mock_3", Type: "payout", Amount: -12000, Fee: 0, Net: -12000, Currency: "usd", Created: now.Add(-48 * time.Hour)},
	}
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "STRIPE_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
