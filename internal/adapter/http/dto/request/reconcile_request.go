package request

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrReconcileTargetRequired = errors.New("either payout_id or church_id is required")
	ErrInvalidImportDate       = errors.New("invalid import date")
	ErrInvalidImportRange      = errors.New("start_date must be before end_date")
)

// ReconcileRequest triggers reconciliation of one payout (payout_id) or
// of every pending payout of the caller's organization (church_id).
type ReconcileRequest struct {
	PayoutID string `json:"payout_id"`
	ChurchID string `json:"church_id"`
}

func (r ReconcileRequest) ResolvePayoutID() string { return strings.TrimSpace(r.PayoutID) }
func (r ReconcileRequest) ResolveChurchID() string { return strings.TrimSpace(r.ChurchID) }

func (r ReconcileRequest) Validate() error {
	if r.ResolvePayoutID() == "" && r.ResolveChurchID() == "" {
		return ErrReconcileTargetRequired
	}
	return nil
}

// ImportHistoricalRequest bounds a historical payout import. Dates are
// RFC3339; both are optional.
type ImportHistoricalRequest struct {
	Limit     int    `json:"limit"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (r ImportHistoricalRequest) ResolveRange() (start, end time.Time, err error) {
	if s := strings.TrimSpace(r.StartDate); s != "" {
		start, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return time.Time{}, time.Time{}, ErrInvalidImportDate
		}
	}
	if s := strings.TrimSpace(r.EndDate); s != "" {
		end, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return time.Time{}, time.Time{}, ErrInvalidImportDate
		}
	}
	if !start.IsZero() && !end.IsZero() && !start.Before(end) {
		return time.Time{}, time.Time{}, ErrInvalidImportRange
	}
	return start, end, nil
}
