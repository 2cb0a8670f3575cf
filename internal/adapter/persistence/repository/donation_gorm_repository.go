package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/jsau0309/altarflowdev-sub007/internal/domain/entities"
	"github.com/jsau0309/altarflowdev-sub007/internal/usecase/interfaces"
)

// DonationGormRepository persists DonationTransaction entities in MySQL.

type DonationGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IDonationTransactionRepository = (*DonationGormRepository)(nil)

func NewDonationGormRepository(db *gorm.DB) *DonationGormRepository {
	return &DonationGormRepository{db: db}
}

func (r *DonationGormRepository) ListStalePending(ctx context.Context, cutoff time.Time) ([]entities.DonationTransaction, error) {
	var rows []entities.DonationTransaction
	err := r.db.WithContext(ctx).
		Where("status = ? AND transaction_date < ? AND payment_intent_id <> ''", entities.DonationStatusPending, cutoff).
		Order("transaction_date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *DonationGormRepository) UpdateStatus(ctx context.Context, id string, status entities.DonationStatus, processedAt *time.Time) error {
	updates := map[string]any{"status": status}
	if processedAt != nil {
		updates["processed_at"] = *processedAt
	}
	return r.db.WithContext(ctx).
		Model(&entities.DonationTransaction{}).
		Where("id = ?", id).
		Updates(updates).Error
}
