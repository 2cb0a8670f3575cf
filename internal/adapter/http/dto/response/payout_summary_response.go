package response

import (
	"time"

	"github.com/jsau0309/altarflowdev-sub007/internal/domain/entities"
)

type PayoutSummaryResponse struct {
	PayoutID      string    `json:"payout_id"`
	ChurchID      string    `json:"church_id"`
	PayoutDate    time.Time `json:"payout_date"`
	ArrivalDate   time.Time `json:"arrival_date"`
	Amount        int64     `json:"amount"`
	Currency      string    `json:"currency"`
	Status        string    `json:"status"`
	FailureReason string    `json:"failure_reason,omitempty"`
	ScheduleType  string    `json:"schedule_type"`

	TransactionCount int64 `json:"transaction_count"`
	GrossVolume      int64 `json:"gross_volume"`
	TotalFees        int64 `json:"total_fees"`
	TotalRefunds     int64 `json:"total_refunds"`
	TotalDisputes    int64 `json:"total_disputes"`
	NetAmount        int64 `json:"net_amount"`

	ReconciledAt *time.Time `json:"reconciled_at,omitempty"`
}

func FromPayoutSummary(s entities.PayoutSummary) PayoutSummaryResponse {
	return PayoutSummaryResponse{
		PayoutID:         s.PayoutID,
		ChurchID:         s.ChurchID,
		PayoutDate:       s.PayoutDate,
		ArrivalDate:      s.ArrivalDate,
		Amount:           s.Amount,
		Currency:         s.Currency,
		Status:           s.Status,
		FailureReason:    s.FailureReason,
		ScheduleType:     string(s.ScheduleType),
		TransactionCount: s.TransactionCount,
		GrossVolume:      s.GrossVolume,
		TotalFees:        s.TotalFees,
		TotalRefunds:     s.TotalRefunds,
		TotalDisputes:    s.TotalDisputes,
		NetAmount:        s.NetAmount,
		ReconciledAt:     s.ReconciledAt,
	}
}
