package interfaces

import (
	"context"

	"github.com/jsau0309/altarflowdev-sub007/internal/domain/entities"
)

// IPayoutSummaryRepository abstracts relational persistence for PayoutSummary.
//
// Upsert writes the full row including aggregates and reconciled_at and is
// used by the reconciler. UpsertObserved only refreshes the provider-facing
// status fields (status, arrival, failure reason) and is used by the
// historical import so an already-reconciled row does not lose its
// aggregates when re-imported.

type IPayoutSummaryRepository interface {
	GetByPayoutID(ctx context.Context, payoutID string) (entities.PayoutSummary, error)
	Upsert(ctx context.Context, s entities.PayoutSummary) (entities.PayoutSummary, error)
	UpsertObserved(ctx context.Context, s entities.PayoutSummary) (entities.PayoutSummary, error)
	ListUnreconciledPaid(ctx context.Context, churchID string) ([]entities.PayoutSummary, error)
	StatsByChurchID(ctx context.Context, churchID string) (entities.ReconciliationStats, error)
}
