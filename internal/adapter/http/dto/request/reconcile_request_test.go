package request

import (
	"errors"
	"testing"
	"time"
)

func TestReconcileRequest_Validate(t *testing.T) {
	t.Run("payout id alone is valid", func(t *testing.T) {
		r := ReconcileRequest{PayoutID: "po_1"}
		if err := r.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("church id alone is valid", func(t *testing.T) {
		r := ReconcileRequest{ChurchID: "ch-1"}
		if err := r.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("blank targets rejected", func(t *testing.T) {
		r := ReconcileRequest{PayoutID: "  ", ChurchID: "\t"}
		if err := r.Validate(); !errors.Is(err, ErrReconcileTargetRequired) {
			t.Fatalf("expected ErrReconcileTargetRequired, got %v", err)
		}
	})

	t.Run("resolvers trim whitespace", func(t *testing.T) {
		r := ReconcileRequest{PayoutID: " po_1 ", ChurchID: " ch-1 "}
		if r.ResolvePayoutID() != "po_1" || r.ResolveChurchID() != "ch-1" {
			t.Fatalf("expected trimmed ids, got %q %q", r.ResolvePayoutID(), r.ResolveChurchID())
		}
	})
}

func TestImportHistoricalRequest_ResolveRange(t *testing.T) {
	t.Run("both dates omitted", func(t *testing.T) {
		start, end, err := ImportHistoricalRequest{}.ResolveRange()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !start.IsZero() || !end.IsZero() {
			t.Fatalf("expected zero times, got %s %s", start, end)
		}
	})

	t.Run("valid range", func(t *testing.T) {
		r := ImportHistoricalRequest{StartDate: "2025-01-01T00:00:00Z", EndDate: "2025-02-01T00:00:00Z"}
		start, end, err := r.ResolveRange()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !start.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) {
			t.Fatalf("unexpected start %s", start)
		}
		if !end.Equal(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)) {
			t.Fatalf("unexpected end %s", end)
		}
	})

	t.Run("malformed date", func(t *testing.T) {
		r := ImportHistoricalRequest{StartDate: "2025-01-01"}
		if _, _, err := r.ResolveRange(); !errors.Is(err, ErrInvalidImportDate) {
			t.Fatalf("expected ErrInvalidImportDate, got %v", err)
		}
	})

	t.Run("inverted range", func(t *testing.T) {
		r := ImportHistoricalRequest{StartDate: "2025-02-01T00:00:00Z", EndDate: "2025-01-01T00:00:00Z"}
		if _, _, err := r.ResolveRange(); !errors.Is(err, ErrInvalidImportRange) {
			t.Fatalf("expected ErrInvalidImportRange, got %v", err)
		}
	})

	t.Run("equal bounds rejected", func(t *testing.T) {
		r := ImportHistoricalRequest{StartDate: "2025-01-01T00:00:00Z", EndDate: "2025-01-01T00:00:00Z"}
		if _, _, err := r.ResolveRange(); !errors.Is(err, ErrInvalidImportRange) {
			t.Fatalf("expected ErrInvalidImportRange, got %v", err)
		}
	})
}
