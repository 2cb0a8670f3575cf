package response

import (
	"github.com/jsau0309/altarflowdev-sub007/internal/domain/entities"
	"github.com/jsau0309/altarflowdev-sub007/internal/usecase"
)

// ReconcileResponse is the 200 body of POST /reconcile. Exactly one of
// Summary (single payout) or Bulk (whole church) is set.
type ReconcileResponse struct {
	Success bool                   `json:"success"`
	Summary *PayoutSummaryResponse `json:"summary,omitempty"`
	Bulk    *BulkReconcileResponse `json:"bulk,omitempty"`
}

type BulkReconcileResponse struct {
	Attempted  int      `json:"attempted"`
	Reconciled int      `json:"reconciled"`
	Errors     []string `json:"errors"`
}

func FromReconciledSummary(s entities.PayoutSummary) ReconcileResponse {
	out := FromPayoutSummary(s)
	return ReconcileResponse{Success: true, Summary: &out}
}

func FromBulkReconcile(r usecase.BulkReconcileResult) ReconcileResponse {
	return ReconcileResponse{
		Success: len(r.Errors) == 0,
		Bulk: &BulkReconcileResponse{
			Attempted:  r.Attempted,
			Reconciled: r.Reconciled,
			Errors:     r.Errors,
		},
	}
}

type StatsResponse struct {
	TotalPayouts      int64 `json:"total_payouts"`
	ReconciledPayouts int64 `json:"reconciled_payouts"`
	PendingPayouts    int64 `json:"pending_payouts"`
	GrossVolume       int64 `json:"gross_volume"`
	TotalFees         int64 `json:"total_fees"`
	NetAmount         int64 `json:"net_amount"`
}

func FromStats(s entities.ReconciliationStats) StatsResponse {
	return StatsResponse{
		TotalPayouts:      s.TotalPayouts,
		ReconciledPayouts: s.ReconciledPayouts,
		PendingPayouts:    s.PendingPayouts,
		GrossVolume:       s.GrossVolume,
		TotalFees:         s.TotalFees,
		NetAmount:         s.NetAmount,
	}
}

type ImportResponse struct {
	Success   bool `json:"success"`
	Imported  int  `json:"imported"`
	Triggered int  `json:"triggered"`
}

func FromImportResult(r usecase.ImportResult) ImportResponse {
	return ImportResponse{Success: true, Imported: r.Imported, Triggered: r.Triggered}
}
