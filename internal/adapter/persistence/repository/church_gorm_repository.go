package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/jsau0309/altarflowdev-sub007/internal/domain/entities"
	"github.com/jsau0309/altarflowdev-sub007/internal/usecase/interfaces"
)

// ChurchGormRepository persists Church entities in MySQL.

type ChurchGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IChurchRepository = (*ChurchGormRepository)(nil)

func NewChurchGormRepository(db *gorm.DB) *ChurchGormRepository {
	return &ChurchGormRepository{db: db}
}

func (r *ChurchGormRepository) GetByID(ctx context.Context, id string) (entities.Church, error) {
	var c entities.Church
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Church{}, nil
	}
	if err != nil {
		return entities.Church{}, err
	}
	return c, nil
}

func (r *ChurchGormRepository) GetByAPIKey(ctx context.Context, apiKey string) (entities.Church, error) {
	var c entities.Church
	err := r.db.WithContext(ctx).Where("api_key = ?", apiKey).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Church{}, nil
	}
	if err != nil {
		return entities.Church{}, err
	}
	return c, nil
}

func (r *ChurchGormRepository) SetStripeAccountID(ctx context.Context, id, stripeAccountID string) error {
	return r.db.WithContext(ctx).
		Model(&entities.Church{}).
		Where("id = ?", id).
		Update("stripe_account_id", stripeAccountID).Error
}
