// internal/repository/trade_repository_test.go
package repository

import (
	"context"
	"testing"
	"time"

	"csgobeans/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_gormTradeRepository_Create(t *testing.T) {
	ctx := context.Background()
	db := setupRepoDB(t)
	repo := NewGormTradeRepository()

	userID := uuid.New()

	t.Run("正常系: 作成時にタイムスタンプが付与される", func(t *testing.T) {
		trade := &model.TradeRecord{
			UserID:         userID,
			ExternalItemID: "item-1",
		}
		err := repo.Create(ctx, db, trade)
		require.NoError(t, err)
		assert.NotZero(t, trade.TradeID)
		assert.False(t, trade.TradeTimestamp.IsZero())
		assert.WithinDuration(t, time.Now().UTC(), trade.TradeTimestamp, 5*time.Second)
	})

	t.Run("異常系: 同一 (user, item) の再作成はErrConflict", func(t *testing.T) {
		err := repo.Create(ctx, db, &model.TradeRecord{
			UserID:         userID,
			ExternalItemID: "item-1",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrConflict)
	})

	t.Run("正常系: 別ユーザーなら同じアイテムIDでも作成できる", func(t *testing.T) {
		err := repo.Create(ctx, db, &model.TradeRecord{
			UserID:         uuid.New(),
			ExternalItemID: "item-1",
		})
		require.NoError(t, err)
	})
}

func Test_gormTradeRepository_ExistsAndList(t *testing.T) {
	ctx := context.Background()
	db := setupRepoDB(t)
	repo := NewGormTradeRepository()

	userID := uuid.New()
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	// 時系列とは逆順に登録し、一覧が時刻昇順で返ることを確かめる
	require.NoError(t, repo.Create(ctx, db, &model.TradeRecord{
		UserID:         userID,
		ExternalItemID: "item-newest",
		TradeTimestamp: base.Add(2 * time.Hour),
	}))
	require.NoError(t, repo.Create(ctx, db, &model.TradeRecord{
		UserID:         userID,
		ExternalItemID: "item-oldest",
		TradeTimestamp: base,
	}))
	require.NoError(t, repo.Create(ctx, db, &model.TradeRecord{
		UserID:         userID,
		ExternalItemID: "item-middle",
		TradeTimestamp: base.Add(time.Hour),
	}))

	t.Run("正常系: Existsは記録済みのアイテムを検知する", func(t *testing.T) {
		exists, err := repo.Exists(ctx, db, userID, "item-oldest")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.Exists(ctx, db, userID, "item-unknown")
		require.NoError(t, err)
		assert.False(t, exists)

		// 別ユーザーの記録には反応しない
		exists, err = repo.Exists(ctx, db, uuid.New(), "item-oldest")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("正常系: 一覧はタイムスタンプ昇順", func(t *testing.T) {
		trades, err := repo.ListByUser(ctx, db, userID, 0, -1)
		require.NoError(t, err)
		require.Len(t, trades, 3)
		assert.Equal(t, "item-oldest", trades[0].ExternalItemID)
		assert.Equal(t, "item-middle", trades[1].ExternalItemID)
		assert.Equal(t, "item-newest", trades[2].ExternalItemID)
	})

	t.Run("正常系: offsetとlimitが効く", func(t *testing.T) {
		trades, err := repo.ListByUser(ctx, db, userID, 1, 1)
		require.NoError(t, err)
		require.Len(t, trades, 1)
		assert.Equal(t, "item-middle", trades[0].ExternalItemID)
	})
}
