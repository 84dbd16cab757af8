// internal/service/trade_service_test.go
package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"csgobeans/internal/model"
	"csgobeans/internal/repository/mocks"
	svcmocks "csgobeans/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// --- テストヘルパー関数 ---
func setupTestDBTrade() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect database for testing: " + err.Error())
	}
	return db
}

func uintPtr(v uint) *uint { return &v }
func intPtr(v int) *int    { return &v }

// --- Test Trade ---
func Test_tradeService_Trade(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBTrade()
	mockTradeRepo := new(mocks.TradeRepository)
	mockBeanRepo := new(mocks.BeanRepository)
	mockInventory := new(svcmocks.MockInventoryService)

	svc := NewTradeService(db, mockTradeRepo, mockBeanRepo, mockInventory)
	// ランダム選択を決定的にする
	ts := svc.(*tradeService)
	ts.randIntn = func(n int) int { return 0 }

	userID := uuid.New()
	testItemID := "item-abc-123"
	testBean := &model.Bean{
		BeanID:  1,
		Name:    "Jelly",
		Color:   model.ColorRed,
		Quality: model.QualityCommon,
	}
	catalog := []*model.Bean{
		testBean,
		{BeanID: 2, Name: "Midnight", Color: model.ColorBlack, Quality: model.QualityRare},
	}

	tests := []struct {
		name        string
		req         *model.TradeRequest
		setupMock   func()
		wantErr     error
		wantBeanID  uint
		wantQty     int
		wantTradeID uint
	}{
		{
			name: "正常系: 明示モードでトレード成立",
			req: &model.TradeRequest{
				ExternalItemID: testItemID,
				BeanID:         uintPtr(1),
				Qty:            intPtr(3),
			},
			setupMock: func() {
				mockTradeRepo.On("Exists", ctx, mock.AnythingOfType("*gorm.DB"), userID, testItemID).
					Return(false, nil).Once()
				mockBeanRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), uint(1)).
					Return(testBean, nil).Once()
				mockInventory.On("GrantTx", ctx, mock.AnythingOfType("*gorm.DB"), userID, uint(1), 3).
					Return(nil).Once()
				mockTradeRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.TradeRecord")).
					Run(func(args mock.Arguments) {
						trade := args.Get(2).(*model.TradeRecord)
						assert.Equal(t, userID, trade.UserID)
						assert.Equal(t, testItemID, trade.ExternalItemID)
						trade.TradeID = 42
					}).Return(nil).Once()
			},
			wantErr:     nil,
			wantBeanID:  1,
			wantQty:     3,
			wantTradeID: 42,
		},
		{
			name: "正常系: ランダムモードでトレード成立",
			req: &model.TradeRequest{
				ExternalItemID: testItemID,
			},
			setupMock: func() {
				mockTradeRepo.On("Exists", ctx, mock.AnythingOfType("*gorm.DB"), userID, testItemID).
					Return(false, nil).Once()
				mockBeanRepo.On("List", ctx, mock.AnythingOfType("*gorm.DB"), 0, -1).
					Return(catalog, nil).Once()
				// randIntn=0 なので catalog[0] / qty=1
				mockInventory.On("GrantTx", ctx, mock.AnythingOfType("*gorm.DB"), userID, uint(1), 1).
					Return(nil).Once()
				mockTradeRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.TradeRecord")).
					Run(func(args mock.Arguments) {
						args.Get(2).(*model.TradeRecord).TradeID = 43
					}).Return(nil).Once()
			},
			wantErr:     nil,
			wantBeanID:  1,
			wantQty:     1,
			wantTradeID: 43,
		},
		{
			name: "異常系: アイテムIDが空",
			req: &model.TradeRequest{
				ExternalItemID: "",
			},
			setupMock: func() { /* リポジトリは呼ばれない */ },
			wantErr:   model.ErrInvalidInput,
		},
		{
			name: "異常系: bean_idのみ指定 (qtyなし)",
			req: &model.TradeRequest{
				ExternalItemID: testItemID,
				BeanID:         uintPtr(1),
			},
			setupMock: func() { /* リポジトリは呼ばれない */ },
			wantErr:   model.ErrInvalidInput,
		},
		{
			name: "異常系: qtyが0以下",
			req: &model.TradeRequest{
				ExternalItemID: testItemID,
				BeanID:         uintPtr(1),
				Qty:            intPtr(0),
			},
			setupMock: func() { /* リポジトリは呼ばれない */ },
			wantErr:   model.ErrInvalidInput,
		},
		{
			name: "異常系: 同じアイテムが交換済み",
			req: &model.TradeRequest{
				ExternalItemID: testItemID,
			},
			setupMock: func() {
				mockTradeRepo.On("Exists", ctx, mock.AnythingOfType("*gorm.DB"), userID, testItemID).
					Return(true, nil).Once()
			},
			wantErr: model.ErrAlreadyTraded,
		},
		{
			name: "異常系: 指定ビーンが存在しない",
			req: &model.TradeRequest{
				ExternalItemID: testItemID,
				BeanID:         uintPtr(99),
				Qty:            intPtr(2),
			},
			setupMock: func() {
				mockTradeRepo.On("Exists", ctx, mock.AnythingOfType("*gorm.DB"), userID, testItemID).
					Return(false, nil).Once()
				mockBeanRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), uint(99)).
					Return(nil, model.ErrNotFound).Once()
			},
			wantErr: model.ErrInvalidInput,
		},
		{
			name: "異常系: カタログが空",
			req: &model.TradeRequest{
				ExternalItemID: testItemID,
			},
			setupMock: func() {
				mockTradeRepo.On("Exists", ctx, mock.AnythingOfType("*gorm.DB"), userID, testItemID).
					Return(false, nil).Once()
				mockBeanRepo.On("List", ctx, mock.AnythingOfType("*gorm.DB"), 0, -1).
					Return([]*model.Bean{}, nil).Once()
			},
			wantErr: model.ErrInternalServer,
		},
		{
			name: "異常系: トレード記録の一意制約レースに負ける",
			req: &model.TradeRequest{
				ExternalItemID: testItemID,
				BeanID:         uintPtr(1),
				Qty:            intPtr(2),
			},
			setupMock: func() {
				mockTradeRepo.On("Exists", ctx, mock.AnythingOfType("*gorm.DB"), userID, testItemID).
					Return(false, nil).Once()
				mockBeanRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), uint(1)).
					Return(testBean, nil).Once()
				mockInventory.On("GrantTx", ctx, mock.AnythingOfType("*gorm.DB"), userID, uint(1), 2).
					Return(nil).Once()
				// 同じ (user, item) が先に書き込まれていた
				mockTradeRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.TradeRecord")).
					Return(model.ErrConflict).Once()
			},
			wantErr: model.ErrAlreadyTraded,
		},
		{
			name: "異常系: 在庫付与に失敗するとトレードは記録されない",
			req: &model.TradeRequest{
				ExternalItemID: testItemID,
				BeanID:         uintPtr(1),
				Qty:            intPtr(2),
			},
			setupMock: func() {
				mockTradeRepo.On("Exists", ctx, mock.AnythingOfType("*gorm.DB"), userID, testItemID).
					Return(false, nil).Once()
				mockBeanRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), uint(1)).
					Return(testBean, nil).Once()
				mockInventory.On("GrantTx", ctx, mock.AnythingOfType("*gorm.DB"), userID, uint(1), 2).
					Return(model.NewAppError("INTERNAL_SERVER_ERROR", "在庫の更新に失敗しました。", "", errors.New("db error"))).Once()
				// tradeRepo.Create は呼ばれない
			},
			wantErr: model.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTradeRepo.Mock = mock.Mock{}
			mockBeanRepo.Mock = mock.Mock{}
			mockInventory.Mock = mock.Mock{}
			if tt.setupMock != nil {
				tt.setupMock()
			}

			result, err := svc.Trade(ctx, userID, tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				require.NotNil(t, result)
				assert.Equal(t, tt.wantTradeID, result.TradeID)
				assert.Equal(t, tt.wantBeanID, result.Bean.BeanID)
				assert.Equal(t, tt.wantQty, result.Qty)
			}

			mockTradeRepo.AssertExpectations(t)
			mockBeanRepo.AssertExpectations(t)
			mockInventory.AssertExpectations(t)
		})
	}
}

// ランダムモードの数量が常に 1..9 の範囲に収まることを確認する
func Test_tradeService_Trade_RandomQtyRange(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBTrade()
	userID := uuid.New()
	catalog := []*model.Bean{
		{BeanID: 1, Name: "Jelly", Color: model.ColorRed, Quality: model.QualityCommon},
	}

	for i := 0; i < 20; i++ {
		mockTradeRepo := new(mocks.TradeRepository)
		mockBeanRepo := new(mocks.BeanRepository)
		mockInventory := new(svcmocks.MockInventoryService)
		svc := NewTradeService(db, mockTradeRepo, mockBeanRepo, mockInventory)

		mockTradeRepo.On("Exists", ctx, mock.AnythingOfType("*gorm.DB"), userID, mock.AnythingOfType("string")).
			Return(false, nil).Once()
		mockBeanRepo.On("List", ctx, mock.AnythingOfType("*gorm.DB"), 0, -1).
			Return(catalog, nil).Once()
		mockInventory.On("GrantTx", ctx, mock.AnythingOfType("*gorm.DB"), userID, uint(1), mock.AnythingOfType("int")).
			Return(nil).Once()
		mockTradeRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.TradeRecord")).
			Return(nil).Once()

		result, err := svc.Trade(ctx, userID, &model.TradeRequest{ExternalItemID: uuid.NewString()})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, result.Qty, 1)
		assert.LessOrEqual(t, result.Qty, 9)
	}
}

// --- Test AlreadyTraded ---
func Test_tradeService_AlreadyTraded(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBTrade()
	userID := uuid.New()

	tests := []struct {
		name      string
		setupMock func(m *mocks.TradeRepository)
		want      bool
		wantErr   error
	}{
		{
			name: "正常系: 交換済み",
			setupMock: func(m *mocks.TradeRepository) {
				m.On("Exists", ctx, db, userID, "item-1").Return(true, nil).Once()
			},
			want: true,
		},
		{
			name: "正常系: 未交換",
			setupMock: func(m *mocks.TradeRepository) {
				m.On("Exists", ctx, db, userID, "item-1").Return(false, nil).Once()
			},
			want: false,
		},
		{
			name: "異常系: DBエラー",
			setupMock: func(m *mocks.TradeRepository) {
				m.On("Exists", ctx, db, userID, "item-1").Return(false, errors.New("db error")).Once()
			},
			wantErr: model.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTradeRepo := new(mocks.TradeRepository)
			mockBeanRepo := new(mocks.BeanRepository)
			mockInventory := new(svcmocks.MockInventoryService)
			svc := NewTradeService(db, mockTradeRepo, mockBeanRepo, mockInventory)
			tt.setupMock(mockTradeRepo)

			traded, err := svc.AlreadyTraded(ctx, userID, "item-1")

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, traded)
			}
			mockTradeRepo.AssertExpectations(t)
		})
	}
}

// --- Test ListTrades ---
func Test_tradeService_ListTrades(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBTrade()
	userID := uuid.New()

	expectedTrades := []*model.TradeRecord{
		{TradeID: 1, UserID: userID, ExternalItemID: "item-1", TradeTimestamp: time.Now().Add(-time.Hour)},
		{TradeID: 2, UserID: userID, ExternalItemID: "item-2", TradeTimestamp: time.Now()},
	}

	tests := []struct {
		name      string
		setupMock func(m *mocks.TradeRepository)
		wantLen   int
		wantErr   error
	}{
		{
			name: "正常系: 複数件取得成功",
			setupMock: func(m *mocks.TradeRepository) {
				m.On("ListByUser", ctx, db, userID, 0, 20).Return(expectedTrades, nil).Once()
			},
			wantLen: 2,
		},
		{
			name: "正常系: 0件取得成功",
			setupMock: func(m *mocks.TradeRepository) {
				m.On("ListByUser", ctx, db, userID, 0, 20).Return([]*model.TradeRecord{}, nil).Once()
			},
			wantLen: 0,
		},
		{
			name: "異常系: DBエラー",
			setupMock: func(m *mocks.TradeRepository) {
				m.On("ListByUser", ctx, db, userID, 0, 20).Return(nil, errors.New("db error")).Once()
			},
			wantErr: model.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTradeRepo := new(mocks.TradeRepository)
			mockBeanRepo := new(mocks.BeanRepository)
			mockInventory := new(svcmocks.MockInventoryService)
			svc := NewTradeService(db, mockTradeRepo, mockBeanRepo, mockInventory)
			tt.setupMock(mockTradeRepo)

			trades, err := svc.ListTrades(ctx, userID, 0, 20)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, trades)
			} else {
				require.NoError(t, err)
				assert.Len(t, trades, tt.wantLen)
			}
			mockTradeRepo.AssertExpectations(t)
		})
	}
}
