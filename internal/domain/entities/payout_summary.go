package entities

import "time"

// PayoutScheduleType distinguishes provider-scheduled payouts from
// manually requested ones.

type PayoutScheduleType string

const (
	PayoutScheduleAutomatic PayoutScheduleType = "automatic"
	PayoutScheduleManual    PayoutScheduleType = "manual"
)

// PayoutSummary is the local mirror of one payout event at the payments
// provider plus the aggregates computed by reconciliation.
//
// Storage model:
//   - PayoutID is the provider's payout id and is unique: at most one
//     summary per external payout.
//   - Rows are created when a payout is first observed (import or webhook)
//     and upserted by the reconciler; never deleted.
//   - ReconciledAt stays NULL until a reconciliation run completes; the
//     reconciler overwrites the aggregate fields on every successful run
//     because late refunds can change them.
//
// All monetary fields are integer minor units in Currency.
type PayoutSummary struct {
	ID            string             `gorm:"size:36;primaryKey" json:"id"`
	PayoutID      string             `gorm:"size:64;uniqueIndex" json:"payout_id"`
	ChurchID      string             `gorm:"size:36;index" json:"church_id"`
	PayoutDate    time.Time          `json:"payout_date"`
	ArrivalDate   time.Time          `json:"arrival_date"`
	Amount        int64              `json:"amount"`
	Currency      string             `gorm:"size:3" json:"currency"`
	Status        string             `gorm:"size:20;index" json:"status"`
	FailureReason string             `gorm:"size:255" json:"failure_reason,omitempty"`
	ScheduleType  PayoutScheduleType `gorm:"size:20" json:"schedule_type"`

	TransactionCount int64 `json:"transaction_count"`
	GrossVolume      int64 `json:"gross_volume"`
	TotalFees        int64 `json:"total_fees"`
	TotalRefunds     int64 `json:"total_refunds"`
	TotalDisputes    int64 `json:"total_disputes"`
	NetAmount        int64 `json:"net_amount"`

	ReconciledAt *time.Time `json:"reconciled_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// TableName implements the GORM tabler interface.
func (PayoutSummary) TableName() string { return "payout_summaries" }

// ReconciliationStats is the per-church aggregate view served by the
// stats endpoint.
type ReconciliationStats struct {
	TotalPayouts      int64 `json:"total_payouts"`
	ReconciledPayouts int64 `json:"reconciled_payouts"`
	PendingPayouts    int64 `json:"pending_payouts"`
	GrossVolume       int64 `json:"gross_volume"`
	TotalFees         int64 `json:"total_fees"`
	NetAmount         int64 `json:"net_amount"`
}
