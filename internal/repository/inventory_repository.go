//go:generate mockery --name InventoryRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"csgobeans/internal/middleware"
	"csgobeans/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InventoryRepository interface {
	FindEntryForUpdate(ctx context.Context, tx *gorm.DB, userID uuid.UUID, beanID uint) (*model.InventoryEntry, error)
	UpsertAdd(ctx context.Context, tx *gorm.DB, entry *model.InventoryEntry) error
	IncrementQty(ctx context.Context, tx *gorm.DB, userID uuid.UUID, beanID uint, incQty int) error
	FindQty(ctx context.Context, db *gorm.DB, userID uuid.UUID, beanID uint) (int, error)
	ListByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, offset, limit int) ([]*model.InventoryItem, error)
}

type gormInventoryRepository struct{}

func NewGormInventoryRepository() InventoryRepository {
	return &gormInventoryRepository{}
}

// FindEntryForUpdate は (user_id, bean_id) の行を FOR UPDATE で取得します。
// 同一トランザクション内の insert-or-increment 判定で lost update を防ぐために使う
func (r *gormInventoryRepository) FindEntryForUpdate(ctx context.Context, tx *gorm.DB, userID uuid.UUID, beanID uint) (*model.InventoryEntry, error) {
	logger := middleware.GetLogger(ctx)
	var entry model.InventoryEntry

	result := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ? AND bean_id = ?", userID, beanID).
		First(&entry)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error(
			"Error finding inventory entry for update in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"bean_id", beanID,
		)
		return nil, fmt.Errorf("gormInventoryRepository.FindEntryForUpdate: %w", result.Error)
	}
	return &entry, nil
}

// UpsertAdd は行が無ければ entry.Qty で作成し、既にあれば qty を加算します。
// 一意制約違反をエラーにせず ON CONFLICT で加算に切り替えるため、
// 同時 insert に負けてもトランザクションが中断状態 (postgres の 25P02) にならない
func (r *gormInventoryRepository) UpsertAdd(ctx context.Context, tx *gorm.DB, entry *model.InventoryEntry) error {
	logger := middleware.GetLogger(ctx)

	result := tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "bean_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"qty": gorm.Expr("inventory.qty + excluded.qty"),
		}),
	}).Create(entry)
	if result.Error != nil {
		logger.Error(
			"Error upserting inventory entry in DB",
			"error", result.Error,
			"user_id", entry.UserID.String(),
			"bean_id", entry.BeanID,
		)
		return fmt.Errorf("gormInventoryRepository.UpsertAdd: %w", result.Error)
	}
	return nil
}

// IncrementQty は既存行の qty を qty + incQty に更新します (読み直しなしの相対更新)
func (r *gormInventoryRepository) IncrementQty(ctx context.Context, tx *gorm.DB, userID uuid.UUID, beanID uint, incQty int) error {
	logger := middleware.GetLogger(ctx)

	result := tx.WithContext(ctx).Model(&model.InventoryEntry{}).
		Where("user_id = ? AND bean_id = ?", userID, beanID).
		Update("qty", gorm.Expr("qty + ?", incQty))
	if result.Error != nil {
		logger.Error(
			"Error incrementing inventory qty in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"bean_id", beanID,
		)
		return fmt.Errorf("gormInventoryRepository.IncrementQty: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// FindQty は保有数量を返します。行が無い場合は model.ErrNotFound (意味的には0)
func (r *gormInventoryRepository) FindQty(ctx context.Context, db *gorm.DB, userID uuid.UUID, beanID uint) (int, error) {
	logger := middleware.GetLogger(ctx)
	var entry model.InventoryEntry

	result := db.WithContext(ctx).
		Where("user_id = ? AND bean_id = ?", userID, beanID).
		First(&entry)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return 0, model.ErrNotFound
		}
		logger.Error(
			"Error finding inventory qty in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"bean_id", beanID,
		)
		return 0, fmt.Errorf("gormInventoryRepository.FindQty: %w", result.Error)
	}
	return entry.Qty, nil
}

// ListByUser はカタログと結合した在庫一覧をビーン名順で返します
func (r *gormInventoryRepository) ListByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, offset, limit int) ([]*model.InventoryItem, error) {
	logger := middleware.GetLogger(ctx)
	var entries []*model.InventoryEntry

	query := db.WithContext(ctx).
		Preload("Bean").
		Joins("JOIN beans ON beans.bean_id = inventory.bean_id").
		Where("inventory.user_id = ?", userID).
		Order("beans.name ASC")
	if offset > 0 {
		query = query.Offset(offset)
	}
	if limit >= 0 {
		query = query.Limit(limit)
	}

	result := query.Find(&entries)
	if result.Error != nil {
		logger.Error(
			"Error listing inventory by user in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormInventoryRepository.ListByUser: %w", result.Error)
	}

	items := make([]*model.InventoryItem, 0, len(entries))
	for _, entry := range entries {
		items = append(items, &model.InventoryItem{
			BeanID: entry.BeanID,
			Qty:    entry.Qty,
			Bean:   entry.Bean,
		})
	}
	return items, nil
}
