package usecase

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jsau0309/altarflowdev-sub007/internal/domain/entities"
	"github.com/jsau0309/altarflowdev-sub007/internal/usecase/interfaces"
)

const (
	defaultImportLimit = 100
	maxImportLimit     = 500
)

// ImportResult reports a historical import run. Triggered counts the
// reconciliations kicked off asynchronously; their outcome is not part
// of this response.
type ImportResult struct {
	Imported  int `json:"imported"`
	Triggered int `json:"triggered"`
}

// IPayoutImportUseCase backfills PayoutSummary rows from the provider's
// payout history and kicks off reconciliation for payouts that already
// settled.

type IPayoutImportUseCase interface {
	ImportHistorical(ctx context.Context, church entities.Church, limit int, startDate, endDate time.Time) (ImportResult, error)
}

type PayoutImportUseCase struct {
	payoutRepo interfaces.IPayoutSummaryRepository
	gateway    interfaces.IPaymentsGateway
	reconciler IPayoutReconcileUseCase
}

var _ IPayoutImportUseCase = (*PayoutImportUseCase)(nil)

func NewPayoutImportUseCase(payoutRepo interfaces.IPayoutSummaryRepository, gateway interfaces.IPaymentsGateway, reconciler IPayoutReconcileUseCase) *PayoutImportUseCase {
	return &PayoutImportUseCase{payoutRepo: payoutRepo, gateway: gateway, reconciler: reconciler}
}

// ImportHistorical lists payouts from the provider within the date range,
// upserts a summary per payout without touching aggregates, and triggers
// reconciliation asynchronously for paid payouts not yet reconciled.
func (u *PayoutImportUseCase) ImportHistorical(ctx context.Context, church entities.Church, limit int, startDate, endDate time.Time) (ImportResult, error) {
	if church.StripeAccountID == "" {
		return ImportResult{}, ErrChurchNotOnboarded
	}
	if u.gateway == nil {
		return ImportResult{}, ErrGatewayNotConfigured
	}
	if limit <= 0 {
		limit = defaultImportLimit
	}
	if limit > maxImportLimit {
		limit = maxImportLimit
	}

	payouts, err := u.gateway.ListPayouts(ctx, church.StripeAccountID, interfaces.PayoutListFilter{
		Limit:         limit,
		CreatedAfter:  startDate,
		CreatedBefore: endDate,
	})
	if err != nil {
		log.Printf("[import][usecase] list payouts failed church_id=%s err=%v", church.ID, err)
		return ImportResult{}, err
	}
	log.Printf("[import][usecase] start church_id=%s payouts=%d limit=%d", church.ID, len(payouts), limit)

	var result ImportResult
	for _, p := range payouts {
		existing, err := u.payoutRepo.GetByPayoutID(ctx, p.ID)
		if err != nil {
			log.Printf("[import][usecase] lookup failed payout_id=%s err=%v", p.ID, err)
			continue
		}

		summary := entities.PayoutSummary{
			ID:            existing.ID,
			PayoutID:      p.ID,
			ChurchID:      church.ID,
			PayoutDate:    p.Created,
			ArrivalDate:   p.ArrivalDate,
			Amount:        p.Amount,
			Currency:      p.Currency,
			Status:        p.Status,
			FailureReason: p.FailureMessage,
			ScheduleType:  scheduleTypeOf(p),
		}
		if summary.ID == "" {
			summary.ID = uuid.NewString()
		}
		if _, err := u.payoutRepo.UpsertObserved(ctx, summary); err != nil {
			log.Printf("[import][usecase] upsert failed payout_id=%s err=%v", p.ID, err)
			continue
		}
		result.Imported++

		if p.Status == "paid" && (existing.ID == "" || existing.ReconciledAt == nil) {
			result.Triggered++
			payoutID := p.ID
			go func() {
				// Detached from the request; the import response does not
				// wait for reconciliation.
				if _, err := u.reconciler.Reconcile(context.Background(), church, payoutID); err != nil {
					log.Printf("[import][usecase] async reconcile failed payout_id=%s err=%v", payoutID, err)
				}
			}()
		}
	}

	log.Printf("[import][usecase] done church_id=%s imported=%d triggered=%d", church.ID, result.Imported, result.Triggered)
	return result, nil
}
