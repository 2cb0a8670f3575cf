package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jsau0309/altarflowdev-sub007/internal/domain/entities"
	"github.com/jsau0309/altarflowdev-sub007/internal/usecase/interfaces"
	mock_interfaces "github.com/jsau0309/altarflowdev-sub007/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

// stubReconciler records the payout ids handed to it, safe for the
// detached goroutines the importer spawns.
type stubReconciler struct {
	mu      sync.Mutex
	wg      sync.WaitGroup
	payouts []string
}

func (s *stubReconciler) Reconcile(ctx context.Context, church entities.Church, payoutID string) (entities.PayoutSummary, error) {
	s.mu.Lock()
	s.payouts = append(s.payouts, payoutID)
	s.mu.Unlock()
	s.wg.Done()
	return entities.PayoutSummary{PayoutID: payoutID}, nil
}

func (s *stubReconciler) ReconcilePending(ctx context.Context, church entities.Church) (BulkReconcileResult, error) {
	return BulkReconcileResult{}, nil
}

func (s *stubReconciler) Stats(ctx context.Context, churchID string) (entities.ReconciliationStats, error) {
	return entities.ReconciliationStats{}, nil
}

func TestPayoutImportUseCase_ImportHistorical(t *testing.T) {
	church := entities.Church{ID: "ch-1", StripeAccountID: "acct_1"}
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	t.Run("church not onboarded", func(t *testing.T) {
		uc := NewPayoutImportUseCase(nil, nil, nil)
		_, err := uc.ImportHistorical(context.Background(), entities.Church{ID: "ch-1"}, 0, start, end)
		if !errors.Is(err, ErrChurchNotOnboarded) {
			t.Fatalf("expected ErrChurchNotOnboarded, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewPayoutImportUseCase(nil, nil, nil)
		_, err := uc.ImportHistorical(context.Background(), church, 0, start, end)
		if !errors.Is(err, ErrGatewayNotConfigured) {
			t.Fatalf("expected ErrGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("limit defaults and caps", func(t *testing.T) {
		for given, want := range map[int]int{0: 100, -5: 100, 1000: 500, 50: 50} {
			ctrl := gomock.NewController(t)
			repo := mock_interfaces.NewMockIPayoutSummaryRepository(ctrl)
			gateway := mock_interfaces.NewMockIPaymentsGateway(ctrl)
			uc := NewPayoutImportUseCase(repo, gateway, nil)

			gateway.EXPECT().ListPayouts(gomock.Any(), "acct_1", interfaces.PayoutListFilter{
				Limit: want, CreatedAfter: start, CreatedBefore: end,
			}).Return(nil, nil)

			if _, err := uc.ImportHistorical(context.Background(), church, given, start, end); err != nil {
				t.Fatalf("limit %d: unexpected error: %v", given, err)
			}
			ctrl.Finish()
		}
	})

	t.Run("imports and triggers reconciliation for paid payouts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPayoutSummaryRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentsGateway(ctrl)
		rec := &stubReconciler{}
		rec.wg.Add(1)
		uc := NewPayoutImportUseCase(repo, gateway, rec)

		gateway.EXPECT().ListPayouts(gomock.Any(), "acct_1", gomock.Any()).Return([]interfaces.ProviderPayout{
			{ID: "po_paid", Status: "paid", Amount: 5000, Currency: "usd"},
			{ID: "po_transit", Status: "in_transit", Amount: 2000, Currency: "usd"},
		}, nil)
		repo.EXPECT().GetByPayoutID(gomock.Any(), "po_paid").Return(entities.PayoutSummary{}, nil)
		repo.EXPECT().GetByPayoutID(gomock.Any(), "po_transit").Return(entities.PayoutSummary{}, nil)
		repo.EXPECT().UpsertObserved(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.PayoutSummary) (entities.PayoutSummary, error) { return s, nil }).Times(2)

		got, err := uc.ImportHistorical(context.Background(), church, 10, start, end)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Imported != 2 || got.Triggered != 1 {
			t.Fatalf("expected imported=2 triggered=1, got %+v", got)
		}

		rec.wg.Wait()
		if len(rec.payouts) != 1 || rec.payouts[0] != "po_paid" {
			t.Fatalf("expected reconciliation of po_paid only, got %v", rec.payouts)
		}
	})

	t.Run("already reconciled payout not retriggered", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPayoutSummaryRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentsGateway(ctrl)
		uc := NewPayoutImportUseCase(repo, gateway, nil)

		reconciled := time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)
		gateway.EXPECT().ListPayouts(gomock.Any(), "acct_1", gomock.Any()).Return([]interfaces.ProviderPayout{
			{ID: "po_done", Status: "paid"},
		}, nil)
		repo.EXPECT().GetByPayoutID(gomock.Any(), "po_done").Return(entities.PayoutSummary{
			ID: "sum-1", PayoutID: "po_done", ReconciledAt: &reconciled,
		}, nil)
		repo.EXPECT().UpsertObserved(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.PayoutSummary) (entities.PayoutSummary, error) {
				if s.ID != "sum-1" {
					t.Fatalf("expected existing id kept, got %s", s.ID)
				}
				return s, nil
			})

		got, err := uc.ImportHistorical(context.Background(), church, 10, start, end)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Imported != 1 || got.Triggered != 0 {
			t.Fatalf("expected imported=1 triggered=0, got %+v", got)
		}
	})

	t.Run("list failure aborts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPayoutSummaryRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentsGateway(ctrl)
		uc := NewPayoutImportUseCase(repo, gateway, nil)

		gateway.EXPECT().ListPayouts(gomock.Any(), "acct_1", gomock.Any()).Return(nil, errors.New("provider down"))

		_, err := uc.ImportHistorical(context.Background(), church, 10, start, end)
		if err == nil || err.Error() != "provider down" {
			t.Fatalf("expected provider down error, got %v", err)
		}
	})

	t.Run("per-payout upsert failure skips the row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPayoutSummaryRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentsGateway(ctrl)
		uc := NewPayoutImportUseCase(repo, gateway, nil)

		gateway.EXPECT().ListPayouts(gomock.Any(), "acct_1", gomock.Any()).Return([]interfaces.ProviderPayout{
			{ID: "po_bad", Status: "in_transit"},
			{ID: "po_good", Status: "in_transit"},
		}, nil)
		repo.EXPECT().GetByPayoutID(gomock.Any(), "po_bad").Return(entities.PayoutSummary{}, nil)
		repo.EXPECT().GetByPayoutID(gomock.Any(), "po_good").Return(entities.PayoutSummary{}, nil)
		repo.EXPECT().UpsertObserved(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.PayoutSummary) (entities.PayoutSummary, error) {
				if s.PayoutID == "po_bad" {
					return entities.PayoutSummary{}, errors.New("db")
				}
				return s, nil
			}).Times(2)

		got, err := uc.ImportHistorical(context.Background(), church, 10, start, end)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Imported != 1 {
			t.Fatalf("expected imported=1, got %+v", got)
		}
	})
}
