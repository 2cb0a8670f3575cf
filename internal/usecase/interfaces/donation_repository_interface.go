package interfaces

import (
	"context"
	"time"

	"github.com/jsau0309/altarflowdev-sub007/internal/domain/entities"
)

// IDonationTransactionRepository abstracts relational persistence for
// DonationTransaction.
//
// The sweeper must be able to:
//   - select pending rows older than a cutoff that carry a payment
//     reference
//   - move a row to its provider-confirmed status with a processed
//     timestamp

type IDonationTransactionRepository interface {
	ListStalePending(ctx context.Context, cutoff time.Time) ([]entities.DonationTransaction, error)
	UpdateStatus(ctx context.Context, id string, status entities.DonationStatus, processedAt *time.Time) error
}
