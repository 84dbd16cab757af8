// internal/service/trade_service.go
package service

import (
	"context"
	"errors"
	"math/rand"

	"csgobeans/internal/config"
	"csgobeans/internal/middleware"
	"csgobeans/internal/model"
	"csgobeans/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TradeService interface {
	Trade(ctx context.Context, userID uuid.UUID, req *model.TradeRequest) (*model.TradeResult, error)
	AlreadyTraded(ctx context.Context, userID uuid.UUID, externalItemID string) (bool, error)
	ListTrades(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*model.TradeRecord, error)
}

type tradeService struct {
	db        *gorm.DB
	tradeRepo repository.TradeRepository
	beanRepo  repository.BeanRepository
	inventory InventoryService

	// ランダム選択用。テストで差し替えられるように関数として持つ
	randIntn func(n int) int
}

func NewTradeService(db *gorm.DB, tradeRepo repository.TradeRepository, beanRepo repository.BeanRepository, inventory InventoryService) TradeService {
	return &tradeService{
		db:        db,
		tradeRepo: tradeRepo,
		beanRepo:  beanRepo,
		inventory: inventory,
		randIntn:  rand.Intn,
	}
}

// Trade は外部アイテムIDをビーン付与に交換します。
// 二重交換チェック・ビーン選択・在庫付与・トレード記録を1トランザクションで行い、
// どこかで失敗したら何も書き込まない
func (s *tradeService) Trade(ctx context.Context, userID uuid.UUID, req *model.TradeRequest) (*model.TradeResult, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID.String(), "external_item_id", req.ExternalItemID)

	if req.ExternalItemID == "" {
		return nil, model.NewAppError("INVALID_INPUT", "アイテムIDが指定されていません。", "external_item_id", model.ErrInvalidInput)
	}
	// 明示モードは (bean_id, qty) を揃って指定する必要がある
	if (req.BeanID == nil) != (req.Qty == nil) {
		return nil, model.NewAppError("INVALID_INPUT", "bean_idとqtyは両方指定するか、両方省略してください。", "", model.ErrInvalidInput)
	}
	if req.Qty != nil && *req.Qty <= 0 {
		return nil, model.NewAppError("INVALID_INPUT", "数量は1以上で指定してください。", "qty", model.ErrInvalidInput)
	}

	var result *model.TradeResult

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. 交換済みチェック (書き込みなしで打ち切る早期判定)
		traded, err := s.tradeRepo.Exists(ctx, tx, userID, req.ExternalItemID)
		if err != nil {
			logger.Error("Error checking prior redemption", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
		}
		if traded {
			logger.Warn("Trade rejected: item already traded")
			return model.NewAppError("ALREADY_TRADED", "このアイテムは既に交換済みです。", "external_item_id", model.ErrAlreadyTraded)
		}

		// 2. ビーンと数量を決める
		bean, qty, err := s.selectBean(ctx, tx, req)
		if err != nil {
			return err
		}

		// 3. 在庫付与とトレード記録を同一トランザクションに載せる
		if err := s.inventory.GrantTx(ctx, tx, userID, bean.BeanID, qty); err != nil {
			return err
		}

		trade := &model.TradeRecord{
			UserID:         userID,
			ExternalItemID: req.ExternalItemID,
		}
		if err := s.tradeRepo.Create(ctx, tx, trade); err != nil {
			// 同じアイテムの同時交換に負けた場合: 付与ごとロールバックされる
			if errors.Is(err, model.ErrConflict) {
				logger.Warn("Lost redemption race, rolling back grant")
				return model.NewAppError("ALREADY_TRADED", "このアイテムは既に交換済みです。", "external_item_id", model.ErrAlreadyTraded)
			}
			logger.Error("Error recording trade", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "トレードの記録に失敗しました。", "", err)
		}

		result = &model.TradeResult{
			TradeID: trade.TradeID,
			Bean:    bean,
			Qty:     qty,
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	logger.Info("Trade accepted", "trade_id", result.TradeID, "bean_id", result.Bean.BeanID, "qty", result.Qty)
	return result, nil
}

func (s *tradeService) AlreadyTraded(ctx context.Context, userID uuid.UUID, externalItemID string) (bool, error) {
	logger := middleware.GetLogger(ctx)

	traded, err := s.tradeRepo.Exists(ctx, s.db, userID, externalItemID)
	if err != nil {
		logger.Error("Error checking trade existence", "error", err)
		return false, model.ErrInternalServer
	}
	return traded, nil
}

func (s *tradeService) ListTrades(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*model.TradeRecord, error) {
	logger := middleware.GetLogger(ctx)

	trades, err := s.tradeRepo.ListByUser(ctx, s.db, userID, offset, limit)
	if err != nil {
		logger.Error("Error listing trades", "error", err)
		return nil, model.ErrInternalServer
	}
	return trades, nil
}

// selectBean は明示モードなら指定ビーンを検証し、ランダムモードならカタログ全体から
// 一様に1種とランダム数量 (1..9) を選びます
func (s *tradeService) selectBean(ctx context.Context, tx *gorm.DB, req *model.TradeRequest) (*model.Bean, int, error) {
	logger := middleware.GetLogger(ctx)

	if req.BeanID != nil {
		bean, err := s.beanRepo.FindByID(ctx, tx, *req.BeanID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return nil, 0, model.NewAppError("INVALID_INPUT", "指定されたビーンが存在しません。", "bean_id", model.ErrInvalidInput)
			}
			logger.Error("Error validating bean for trade", "error", err, "bean_id", *req.BeanID)
			return nil, 0, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
		}
		return bean, *req.Qty, nil
	}

	beans, err := s.beanRepo.List(ctx, tx, 0, -1)
	if err != nil {
		logger.Error("Error listing beans for random selection", "error", err)
		return nil, 0, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
	}
	if len(beans) == 0 {
		logger.Error("Trade requested but bean catalog is empty")
		return nil, 0, model.NewAppError("EMPTY_CATALOG", "交換できるビーンがありません。", "", model.ErrInternalServer)
	}

	bean := beans[s.randIntn(len(beans))]
	qty := config.TradeQtyMin + s.randIntn(config.TradeQtyMax-config.TradeQtyMin+1)
	return bean, qty, nil
}
