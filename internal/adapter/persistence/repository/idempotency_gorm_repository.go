package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jsau0309/altarflowdev-sub007/internal/domain/entities"
	"github.com/jsau0309/altarflowdev-sub007/internal/usecase/interfaces"
)

// IdempotencyGormRepository persists the idempotency replay cache in MySQL.

type IdempotencyGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IIdempotencyRepository = (*IdempotencyGormRepository)(nil)

func NewIdempotencyGormRepository(db *gorm.DB) *IdempotencyGormRepository {
	return &IdempotencyGormRepository{db: db}
}

func (r *IdempotencyGormRepository) Get(ctx context.Context, cacheKey string) (entities.IdempotencyRecord, error) {
	var rec entities.IdempotencyRecord
	err := r.db.WithContext(ctx).Where("cache_key = ?", cacheKey).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.IdempotencyRecord{}, nil
	}
	if err != nil {
		return entities.IdempotencyRecord{}, err
	}
	return rec, nil
}

func (r *IdempotencyGormRepository) Put(ctx context.Context, rec entities.IdempotencyRecord) error {
	// A concurrent writer with the same key keeps the first response; the
	// replay cache must never change an already-stored body.
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "cache_key"}},
		DoNothing: true,
	}).Create(&rec).Error
}

func (r *IdempotencyGormRepository) DeleteExpired(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("expires_at < ?", time.Now().UTC()).
		Delete(&entities.IdempotencyRecord{})
	return res.RowsAffected, res.Error
}
