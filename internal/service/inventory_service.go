// internal/service/inventory_service.go
package service

import (
	"context"
	"errors"

	"csgobeans/internal/middleware"
	"csgobeans/internal/model"
	"csgobeans/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InventoryService interface {
	Grant(ctx context.Context, userID uuid.UUID, beanID uint, qty int) error
	GrantMany(ctx context.Context, userID uuid.UUID, grants []model.BeanGrant) error
	GrantTx(ctx context.Context, tx *gorm.DB, userID uuid.UUID, beanID uint, qty int) error
	QuantityOf(ctx context.Context, userID uuid.UUID, beanID uint) (int, error)
	ListInventory(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*model.InventoryItem, error)
}

type inventoryService struct {
	db            *gorm.DB
	inventoryRepo repository.InventoryRepository
	beanRepo      repository.BeanRepository
}

func NewInventoryService(db *gorm.DB, inventoryRepo repository.InventoryRepository, beanRepo repository.BeanRepository) InventoryService {
	return &inventoryService{
		db:            db,
		inventoryRepo: inventoryRepo,
		beanRepo:      beanRepo,
	}
}

// Grant は (user, bean) の保有数に qty を加算します。行が無ければ qty で新規作成する。
// 判定と書き込みは1トランザクション、(user_id, bean_id) の一意制約が最終防壁
func (s *inventoryService) Grant(ctx context.Context, userID uuid.UUID, beanID uint, qty int) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.GrantTx(ctx, tx, userID, beanID, qty)
	})
}

// GrantMany は複数の付与を all-or-nothing で適用します。
// 1件でも不正 (数量0以下・未知のビーン) があれば全体をロールバックする
func (s *inventoryService) GrantMany(ctx context.Context, userID uuid.UUID, grants []model.BeanGrant) error {
	if len(grants) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, grant := range grants {
			if err := s.GrantTx(ctx, tx, userID, grant.BeanID, grant.Qty); err != nil {
				return err
			}
		}
		return nil
	})
}

// QuantityOf は保有数量を返します。未保有は 0
func (s *inventoryService) QuantityOf(ctx context.Context, userID uuid.UUID, beanID uint) (int, error) {
	logger := middleware.GetLogger(ctx)

	qty, err := s.inventoryRepo.FindQty(ctx, s.db, userID, beanID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return 0, nil
		}
		logger.Error("Error getting inventory qty", "error", err)
		return 0, model.ErrInternalServer
	}
	return qty, nil
}

func (s *inventoryService) ListInventory(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*model.InventoryItem, error) {
	logger := middleware.GetLogger(ctx)

	items, err := s.inventoryRepo.ListByUser(ctx, s.db, userID, offset, limit)
	if err != nil {
		logger.Error("Error listing inventory", "error", err)
		return nil, model.ErrInternalServer
	}
	return items, nil
}

// GrantTx は呼び出し側のトランザクション内で1件の付与を適用します。
// トレードのように付与と他の書き込みを同一トランザクションに載せたい場合に使う
func (s *inventoryService) GrantTx(ctx context.Context, tx *gorm.DB, userID uuid.UUID, beanID uint, qty int) error {
	logger := middleware.GetLogger(ctx)

	if qty <= 0 {
		return model.NewAppError("INVALID_INPUT", "数量は1以上で指定してください。", "qty", model.ErrInvalidInput)
	}

	// 付与対象のビーンが存在するか確認
	if _, err := s.beanRepo.FindByID(ctx, tx, beanID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.NewAppError("INVALID_INPUT", "指定されたビーンが存在しません。", "bean_id", model.ErrInvalidInput)
		}
		logger.Error("Error checking bean existence for grant", "error", err, "bean_id", beanID)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
	}

	// 行ロック付きで現在値を読む (既存行なら相対更新で済ませる)
	_, err := s.inventoryRepo.FindEntryForUpdate(ctx, tx, userID, beanID)
	if err == nil {
		if err := s.inventoryRepo.IncrementQty(ctx, tx, userID, beanID, qty); err != nil {
			logger.Error("Error incrementing inventory qty", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "在庫の更新に失敗しました。", "", err)
		}
		return nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		logger.Error("Error reading inventory entry", "error", err)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
	}

	// 行が無いので upsert で作成する。同時 insert と競合した場合は
	// ON CONFLICT が加算に切り替えるので、負けた側もトランザクションを保ったまま成功する
	if err := s.inventoryRepo.UpsertAdd(ctx, tx, &model.InventoryEntry{
		UserID: userID,
		BeanID: beanID,
		Qty:    qty,
	}); err != nil {
		logger.Error("Error upserting inventory entry", "error", err)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "在庫の作成に失敗しました。", "", err)
	}
	return nil
}
