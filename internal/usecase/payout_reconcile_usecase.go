package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jsau0309/altarflowdev-sub007/internal/domain/entities"
	"github.com/jsau0309/altarflowdev-sub007/internal/usecase/interfaces"
)

var (
	ErrChurchNotOnboarded   = errors.New("church has no payments account")
	ErrInvalidPayoutID      = errors.New("invalid payout id")
	ErrGatewayNotConfigured = errors.New("payments gateway not configured")
)

// BulkReconcileResult reports a ReconcilePending run. Individual payout
// failures are collected, not fatal.
type BulkReconcileResult struct {
	Attempted  int      `json:"attempted"`
	Reconciled int      `json:"reconciled"`
	Errors     []string `json:"errors"`
}

// IPayoutReconcileUseCase computes and persists the authoritative
// financial breakdown of payouts.
//
// Requested behavior:
//   - Reconcile one payout: fetch it and its balance transactions from
//     the provider, aggregate, upsert the summary, stamp reconciled_at.
//   - Bulk variant over a church's paid-but-unreconciled payouts.

type IPayoutReconcileUseCase interface {
	Reconcile(ctx context.Context, church entities.Church, payoutID string) (entities.PayoutSummary, error)
	ReconcilePending(ctx context.Context, church entities.Church) (BulkReconcileResult, error)
	Stats(ctx context.Context, churchID string) (entities.ReconciliationStats, error)
}

type PayoutReconcileUseCase struct {
	payoutRepo interfaces.IPayoutSummaryRepository
	gateway    interfaces.IPaymentsGateway
	now        func() time.Time
}

var _ IPayoutReconcileUseCase = (*PayoutReconcileUseCase)(nil)

func NewPayoutReconcileUseCase(payoutRepo interfaces.IPayoutSummaryRepository, gateway interfaces.IPaymentsGateway) *PayoutReconcileUseCase {
	return &PayoutReconcileUseCase{payoutRepo: payoutRepo, gateway: gateway, now: time.Now}
}

// Reconcile trusts its caller to have verified that church owns the
// sub-account the payout belongs to. Re-running for an already-reconciled
// payout recomputes and overwrites the aggregates; concurrent duplicate
// runs are last-write-wins.
func (u *PayoutReconcileUseCase) Reconcile(ctx context.Context, church entities.Church, payoutID string) (entities.PayoutSummary, error) {
	log.Printf("[reconcile][usecase] start church_id=%s payout_id=%s", church.ID, payoutID)
	if payoutID == "" {
		return entities.PayoutSummary{}, ErrInvalidPayoutID
	}
	if church.StripeAccountID == "" {
		log.Printf("[reconcile][usecase] church not onboarded church_id=%s", church.ID)
		return entities.PayoutSummary{}, ErrChurchNotOnboarded
	}
	if u.gateway == nil {
		return entities.PayoutSummary{}, ErrGatewayNotConfigured
	}

	payout, err := u.gateway.RetrievePayout(ctx, church.StripeAccountID, payoutID)
	if err != nil {
		log.Printf("[reconcile][usecase] retrieve payout failed payout_id=%s err=%v", payoutID, err)
		return entities.PayoutSummary{}, err
	}

	txns, err := u.gateway.ListBalanceTransactions(ctx, church.StripeAccountID, payoutID)
	if err != nil {
		log.Printf("[reconcile][usecase] list balance transactions failed payout_id=%s err=%v", payoutID, err)
		return entities.PayoutSummary{}, err
	}

	agg := aggregateBalanceTransactions(txns)
	log.Printf("[reconcile][usecase] aggregated payout_id=%s txns=%d gross=%d fees=%d refunds=%d disputes=%d net=%d",
		payoutID, agg.TransactionCount, agg.GrossVolume, agg.TotalFees, agg.TotalRefunds, agg.TotalDisputes, agg.NetAmount)

	existing, err := u.payoutRepo.GetByPayoutID(ctx, payoutID)
	if err != nil {
		return entities.PayoutSummary{}, err
	}

	now := u.now().UTC()
	summary := entities.PayoutSummary{
		ID:               existing.ID,
		PayoutID:         payoutID,
		ChurchID:         church.ID,
		PayoutDate:       payout.Created,
		ArrivalDate:      payout.ArrivalDate,
		Amount:           payout.Amount,
		Currency:         payout.Currency,
		Status:           payout.Status,
		FailureReason:    payout.FailureMessage,
		ScheduleType:     scheduleTypeOf(payout),
		TransactionCount: agg.TransactionCount,
		GrossVolume:      agg.GrossVolume,
		TotalFees:        agg.TotalFees,
		TotalRefunds:     agg.TotalRefunds,
		TotalDisputes:    agg.TotalDisputes,
		NetAmount:        agg.NetAmount,
		ReconciledAt:     &now,
		CreatedAt:        existing.CreatedAt,
	}
	if summary.ID == "" {
		summary.ID = uuid.NewString()
	}

	saved, err := u.payoutRepo.Upsert(ctx, summary)
	if err != nil {
		log.Printf("[reconcile][usecase] upsert failed payout_id=%s err=%v", payoutID, err)
		return entities.PayoutSummary{}, err
	}
	log.Printf("[reconcile][usecase] success payout_id=%s net=%d", payoutID, saved.NetAmount)
	return saved, nil
}

// ReconcilePending reconciles every paid-but-unreconciled payout of the
// church, sequentially, collecting per-payout failures.
func (u *PayoutReconcileUseCase) ReconcilePending(ctx context.Context, church entities.Church) (BulkReconcileResult, error) {
	pending, err := u.payoutRepo.ListUnreconciledPaid(ctx, church.ID)
	if err != nil {
		return BulkReconcileResult{}, err
	}
	log.Printf("[reconcile][usecase] bulk start church_id=%s pending=%d", church.ID, len(pending))

	result := BulkReconcileResult{Attempted: len(pending), Errors: []string{}}
	for _, s := range pending {
		if _, err := u.Reconcile(ctx, church, s.PayoutID); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("payout %s: %v", s.PayoutID, err))
			continue
		}
		result.Reconciled++
	}
	log.Printf("[reconcile][usecase] bulk done church_id=%s reconciled=%d errors=%d", church.ID, result.Reconciled, len(result.Errors))
	return result, nil
}

func (u *PayoutReconcileUseCase) Stats(ctx context.Context, churchID string) (entities.ReconciliationStats, error) {
	return u.payoutRepo.StatsByChurchID(ctx, churchID)
}

// payoutAggregates is the financial breakdown of one payout's balance
// transactions. All amounts are minor units.
type payoutAggregates struct {
	TransactionCount int64
	GrossVolume      int64
	TotalFees        int64
	TotalRefunds     int64
	TotalDisputes    int64
	NetAmount        int64
}

// aggregateBalanceTransactions sums the provider's ledger entries for a
// payout. Refund and dispute entries carry negative amounts at the
// provider; they are stored as positive deductions.
func aggregateBalanceTransactions(txns []interfaces.ProviderBalanceTransaction) payoutAggregates {
	var agg payoutAggregates
	for _, txn := range txns {
		agg.TotalFees += txn.Fee
		switch txn.Type {
		case "charge", "payment":
			agg.TransactionCount++
			agg.GrossVolume += txn.Amount
		case "refund", "payment_refund":
			agg.TotalRefunds += -txn.Amount
		case "dispute", "adjustment":
			agg.TotalDisputes += -txn.Amount
		case "payout":
			// The payout's own debit entry; not part of the volume.
		default:
			log.Printf("[reconcile][usecase] skipping balance transaction type=%s id=%s", txn.Type, txn.ID)
		}
	}
	agg.NetAmount = agg.GrossVolume - agg.TotalFees - agg.TotalRefunds - agg.TotalDisputes
	return agg
}

func scheduleTypeOf(p interfaces.ProviderPayout) entities.PayoutScheduleType {
	if p.Automatic {
		return entities.PayoutScheduleAutomatic
	}
	return entities.PayoutScheduleManual
}
