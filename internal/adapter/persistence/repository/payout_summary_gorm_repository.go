package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jsau0309/altarflowdev-sub007/internal/domain/entities"
	"github.com/jsau0309/altarflowdev-sub007/internal/usecase/interfaces"
)

// PayoutSummaryGormRepository persists PayoutSummary entities in MySQL.
//
// Both upserts key on the unique payout_id column in a single statement,
// so two concurrent reconciler runs cannot interleave halves of their
// writes within one row; the later statement wins whole.

type PayoutSummaryGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IPayoutSummaryRepository = (*PayoutSummaryGormRepository)(nil)

func NewPayoutSummaryGormRepository(db *gorm.DB) *PayoutSummaryGormRepository {
	return &PayoutSummaryGormRepository{db: db}
}

func (r *PayoutSummaryGormRepository) GetByPayoutID(ctx context.Context, payoutID string) (entities.PayoutSummary, error) {
	var s entities.PayoutSummary
	err := r.db.WithContext(ctx).Where("payout_id = ?", payoutID).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.PayoutSummary{}, nil
	}
	if err != nil {
		return entities.PayoutSummary{}, err
	}
	return s, nil
}

// Upsert writes the full row, aggregates and reconciled_at included.
func (r *PayoutSummaryGormRepository) Upsert(ctx context.Context, s entities.PayoutSummary) (entities.PayoutSummary, error) {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "payout_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"church_id", "payout_date", "arrival_date", "amount", "currency",
			"status", "failure_reason", "schedule_type",
			"transaction_count", "gross_volume", "total_fees", "total_refunds",
			"total_disputes", "net_amount", "reconciled_at", "updated_at",
		}),
	}).Create(&s).Error
	if err != nil {
		return entities.PayoutSummary{}, err
	}
	return s, nil
}

// UpsertObserved refreshes only the provider-facing status fields, so a
// re-import never clobbers aggregates of an already-reconciled row.
func (r *PayoutSummaryGormRepository) UpsertObserved(ctx context.Context, s entities.PayoutSummary) (entities.PayoutSummary, error) {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "payout_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"payout_date", "arrival_date", "amount", "currency",
			"status", "failure_reason", "schedule_type", "updated_at",
		}),
	}).Create(&s).Error
	if err != nil {
		return entities.PayoutSummary{}, err
	}
	return s, nil
}

func (r *PayoutSummaryGormRepository) ListUnreconciledPaid(ctx context.Context, churchID string) ([]entities.PayoutSummary, error) {
	var rows []entities.PayoutSummary
	err := r.db.WithContext(ctx).
		Where("church_id = ? AND status = ? AND reconciled_at IS NULL", churchID, "paid").
		Order("payout_date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *PayoutSummaryGormRepository) StatsByChurchID(ctx context.Context, churchID string) (entities.ReconciliationStats, error) {
	var stats entities.ReconciliationStats
	err := r.db.WithContext(ctx).
		Model(&entities.PayoutSummary{}).
		Select(
			"COUNT(*) AS total_payouts",
			"COUNT(reconciled_at) AS reconciled_payouts",
			"COUNT(*) - COUNT(reconciled_at) AS pending_payouts",
			"COALESCE(SUM(gross_volume), 0) AS gross_volume",
			"COALESCE(SUM(total_fees), 0) AS total_fees",
			"COALESCE(SUM(net_amount), 0) AS net_amount",
		).
		Where("church_id = ?", churchID).
		Scan(&stats).Error
	if err != nil {
		return entities.ReconciliationStats{}, err
	}
	return stats, nil
}
