package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/jsau0309/altarflowdev-sub007/internal/domain/entities"
	"github.com/jsau0309/altarflowdev-sub007/internal/usecase/interfaces"
)

// stalePendingAge is how long a donation may sit in pending before the
// sweeper asks the provider for its authoritative status.
const stalePendingAge = 7 * 24 * time.Hour

// SweepResult reports one sweep run. Per-row failures land in Errors and
// do not abort the batch.
type SweepResult struct {
	Checked  int      `json:"checked"`
	Updated  int      `json:"updated"`
	Canceled int      `json:"canceled"`
	Errors   []string `json:"errors"`
}

// IDonationSweepUseCase reconciles locally-pending donations that have
// not resolved after the grace period, using the payments provider as
// the source of truth.

type IDonationSweepUseCase interface {
	Sweep(ctx context.Context) (SweepResult, error)
}

type DonationSweepUseCase struct {
	donationRepo interfaces.IDonationTransactionRepository
	churchRepo   interfaces.IChurchRepository
	gateway      interfaces.IPaymentsGateway
	now          func() time.Time
}

var _ IDonationSweepUseCase = (*DonationSweepUseCase)(nil)

func NewDonationSweepUseCase(donationRepo interfaces.IDonationTransactionRepository, churchRepo interfaces.IChurchRepository, gateway interfaces.IPaymentsGateway) *DonationSweepUseCase {
	return &DonationSweepUseCase{donationRepo: donationRepo, churchRepo: churchRepo, gateway: gateway, now: time.Now}
}

// Sweep is idempotent: it only reads remote state and conditionally
// writes local state, so repeated or concurrent runs never double-cancel.
// Rows are processed sequentially to keep the provider call rate
// predictable. A store failure before the scan begins aborts the run;
// everything after is per-row.
func (u *DonationSweepUseCase) Sweep(ctx context.Context) (SweepResult, error) {
	if u.gateway == nil {
		return SweepResult{}, ErrGatewayNotConfigured
	}

	cutoff := u.now().UTC().Add(-stalePendingAge)
	stale, err := u.donationRepo.ListStalePending(ctx, cutoff)
	if err != nil {
		log.Printf("[sweep][usecase] scan failed err=%v", err)
		return SweepResult{}, err
	}
	log.Printf("[sweep][usecase] start cutoff=%s stale=%d", cutoff.Format(time.RFC3339), len(stale))

	result := SweepResult{Errors: []string{}}
	accounts := map[string]string{}   // church id -> provider account, per-run cache
	unresolvable := map[string]bool{} // churches that failed resolution, reported once

	for _, d := range stale {
		result.Checked++

		if unresolvable[d.ChurchID] {
			continue
		}
		acct, ok := accounts[d.ChurchID]
		if !ok {
			church, err := u.churchRepo.GetByID(ctx, d.ChurchID)
			if err != nil {
				unresolvable[d.ChurchID] = true
				result.Errors = append(result.Errors, fmt.Sprintf("church %s: lookup: %v", d.ChurchID, err))
				continue
			}
			if church.StripeAccountID == "" {
				unresolvable[d.ChurchID] = true
				result.Errors = append(result.Errors, fmt.Sprintf("church %s has no payments account", d.ChurchID))
				continue
			}
			acct = church.StripeAccountID
			accounts[d.ChurchID] = acct
		}

		intent, err := u.gateway.RetrievePaymentIntent(ctx, acct, d.PaymentIntentID)
		if errors.Is(err, interfaces.ErrProviderResourceMissing) {
			// The provider no longer knows this payment: definitive cancel.
			now := u.now().UTC()
			if err := u.donationRepo.UpdateStatus(ctx, d.ID, entities.DonationStatusCanceled, &now); err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("donation %s: update: %v", d.ID, err))
				continue
			}
			log.Printf("[sweep][usecase] canceled missing-resource donation_id=%s intent=%s", d.ID, d.PaymentIntentID)
			result.Updated++
			result.Canceled++
			continue
		}
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("donation %s: retrieve intent: %v", d.ID, err))
			continue
		}

		target, processedAt, ok := u.mapIntentStatus(intent)
		if !ok {
			log.Printf("[sweep][usecase] leaving pending donation_id=%s remote_status=%s", d.ID, intent.Status)
			continue
		}
		if target == d.Status {
			// Already in sync; repeated runs are no-ops.
			continue
		}

		if err := u.donationRepo.UpdateStatus(ctx, d.ID, target, processedAt); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("donation %s: update: %v", d.ID, err))
			continue
		}
		log.Printf("[sweep][usecase] updated donation_id=%s status=%s remote_status=%s", d.ID, target, intent.Status)
		result.Updated++
		if target == entities.DonationStatusCanceled {
			result.Canceled++
		}
	}

	log.Printf("[sweep][usecase] done checked=%d updated=%d canceled=%d errors=%d",
		result.Checked, result.Updated, result.Canceled, len(result.Errors))
	return result, nil
}

// mapIntentStatus translates a provider payment-intent status into the
// local donation status. The abandonment set includes the legacy
// source-flow statuses still seen on old intents. Unknown statuses are
// skipped, never guessed.
func (u *DonationSweepUseCase) mapIntentStatus(intent interfaces.ProviderPaymentIntent) (entities.DonationStatus, *time.Time, bool) {
	switch intent.Status {
	case "succeeded":
		processedAt := u.now().UTC()
		if !intent.ChargedAt.IsZero() {
			processedAt = intent.ChargedAt
		}
		return entities.DonationStatusSucceeded, &processedAt, true
	case "processing", "requires_capture":
		return entities.DonationStatusProcessing, nil, true
	case "canceled", "incomplete",
		"requires_payment_method", "requires_confirmation", "requires_action",
		"requires_source", "requires_source_action":
		processedAt := u.now().UTC()
		if !intent.CanceledAt.IsZero() {
			processedAt = intent.CanceledAt
		}
		return entities.DonationStatusCanceled, &processedAt, true
	default:
		return "", nil, false
	}
}
