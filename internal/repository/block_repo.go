package repository

import (
	"context"

	"venuehub/internal/domain"

	"gorm.io/gorm"
)

type BlockRepository struct {
	db *gorm.DB
}

func NewBlockRepository(db *gorm.DB) *BlockRepository {
	return &BlockRepository{db: db}
}

func (r *BlockRepository) ListByVenue(ctx context.Context, venueID int64) ([]domain.BlockedInterval, error) {
	var rows []domain.BlockedInterval
	err := r.db.WithContext(ctx).
		Where("venue_id = ?", venueID).
		Order("date").
		Find(&rows).Error
	return rows, err
}

func (r *BlockRepository) ExistsForDate(ctx context.Context, venueID int64, date string) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&domain.BlockedInterval{}).
		Where("venue_id = ? AND date = ?", venueID, date).
		Count(&cnt).Error
	if err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *BlockRepository) Create(ctx context.Context, block *domain.BlockedInterval) error {
	return r.db.WithContext(ctx).Create(block).Error
}

func (r *BlockRepository) GetByID(ctx context.Context, id int64) (*domain.BlockedInterval, error) {
	var block domain.BlockedInterval
	if err := r.db.WithContext(ctx).First(&block, id).Error; err != nil {
		return nil, err
	}
	return &block, nil
}

func (r *BlockRepository) Delete(ctx context.Context, venueID, blockID int64) error {
	tx := r.db.WithContext(ctx).
		Where("id = ? AND venue_id = ?", blockID, venueID).
		Delete(&domain.BlockedInterval{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
