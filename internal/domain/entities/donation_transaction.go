package entities

import "time"

// DonationStatus represents the lifecycle of a recorded donation attempt.
//
// Domain notes:
//   - Transitions are one-directional: pending -> {processing, succeeded,
//     canceled, failed}; processing -> {succeeded, canceled, failed}.
//   - succeeded/canceled/failed are terminal for the sweep workflow.
//   - Rows are created by the donation flow and mutated only by the
//     stale-donation sweeper or by payment-provider webhooks; this service
//     never deletes them.

type DonationStatus string

const (
	DonationStatusPending    DonationStatus = "pending"
	DonationStatusProcessing DonationStatus = "processing"
	DonationStatusSucceeded  DonationStatus = "succeeded"
	DonationStatusCanceled   DonationStatus = "canceled"
	DonationStatusFailed     DonationStatus = "failed"
)

// IsTerminal reports whether the status is final for the sweep workflow.
func (s DonationStatus) IsTerminal() bool {
	switch s {
	case DonationStatusSucceeded, DonationStatusCanceled, DonationStatusFailed:
		return true
	}
	return false
}

// DonationTransaction is one recorded attempt to collect a monetary gift.
//
// Monetary representation:
//   - Amount is in integer minor units (cents) to avoid floating-point
//     rounding in financial sums.
type DonationTransaction struct {
	ID              string         `gorm:"size:36;primaryKey" json:"id"`
	ChurchID        string         `gorm:"size:36;index" json:"church_id"`
	DonorID         string         `gorm:"size:36" json:"donor_id,omitempty"`
	Amount          int64          `json:"amount"`
	Currency        string         `gorm:"size:3" json:"currency"`
	Status          DonationStatus `gorm:"size:20;index" json:"status"`
	PaymentIntentID string         `gorm:"size:64;index" json:"payment_intent_id"`
	PayoutID        string         `gorm:"size:64;index" json:"payout_id,omitempty"`
	TransactionDate time.Time      `gorm:"index" json:"transaction_date"`
	ProcessedAt     *time.Time     `json:"processed_at,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// TableName implements the GORM tabler interface.
func (DonationTransaction) TableName() string { return "donation_transactions" }
