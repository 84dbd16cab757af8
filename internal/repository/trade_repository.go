//go:generate mockery --name TradeRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"
	"time"

	"csgobeans/internal/middleware"
	"csgobeans/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TradeRepository interface {
	Exists(ctx context.Context, db *gorm.DB, userID uuid.UUID, externalItemID string) (bool, error)
	Create(ctx context.Context, tx *gorm.DB, trade *model.TradeRecord) error
	ListByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, offset, limit int) ([]*model.TradeRecord, error)
}

type gormTradeRepository struct{}

func NewGormTradeRepository() TradeRepository {
	return &gormTradeRepository{}
}

func (r *gormTradeRepository) Exists(ctx context.Context, db *gorm.DB, userID uuid.UUID, externalItemID string) (bool, error) {
	logger := middleware.GetLogger(ctx)
	var count int64

	result := db.WithContext(ctx).Model(&model.TradeRecord{}).
		Where("user_id = ? AND external_item_id = ?", userID, externalItemID).
		Count(&count)
	if result.Error != nil {
		logger.Error(
			"Error checking trade existence in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"external_item_id", externalItemID,
		)
		return false, fmt.Errorf("gormTradeRepository.Exists: %w", result.Error)
	}
	return count > 0, nil
}

// Create はトレードを記録します。タイムスタンプはここでサーバー側が付与する。
// (user_id, external_item_id) の一意制約違反は model.ErrConflict になる
func (r *gormTradeRepository) Create(ctx context.Context, tx *gorm.DB, trade *model.TradeRecord) error {
	logger := middleware.GetLogger(ctx)

	if trade.TradeTimestamp.IsZero() {
		trade.TradeTimestamp = time.Now().UTC()
	}

	result := tx.WithContext(ctx).Create(trade)
	if result.Error != nil {
		if isDuplicateKeyError(result.Error) {
			logger.Warn(
				"Duplicate key error on create trade",
				"error", result.Error,
				"user_id", trade.UserID.String(),
				"external_item_id", trade.ExternalItemID,
			)
			return model.ErrConflict
		}
		logger.Error(
			"Error creating trade in DB",
			"error", result.Error,
			"user_id", trade.UserID.String(),
			"external_item_id", trade.ExternalItemID,
		)
		return fmt.Errorf("gormTradeRepository.Create: %w", result.Error)
	}
	return nil
}

// ListByUser はトレード履歴をタイムスタンプ昇順で返します
func (r *gormTradeRepository) ListByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, offset, limit int) ([]*model.TradeRecord, error) {
	logger := middleware.GetLogger(ctx)
	var trades []*model.TradeRecord

	query := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("trade_timestamp ASC")
	if offset > 0 {
		query = query.Offset(offset)
	}
	if limit >= 0 {
		query = query.Limit(limit)
	}

	result := query.Find(&trades)
	if result.Error != nil {
		logger.Error(
			"Error listing trades by user in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormTradeRepository.ListByUser: %w", result.Error)
	}
	return trades, nil
}
