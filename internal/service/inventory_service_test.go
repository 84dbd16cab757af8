// internal/service/inventory_service_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"csgobeans/internal/model"
	"csgobeans/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDBInventory() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect database for testing: " + err.Error())
	}
	return db
}

// --- Test Grant ---
func Test_inventoryService_Grant(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBInventory()
	mockInvRepo := new(mocks.InventoryRepository)
	mockBeanRepo := new(mocks.BeanRepository)
	svc := NewInventoryService(db, mockInvRepo, mockBeanRepo)

	userID := uuid.New()
	testBean := &model.Bean{BeanID: 1, Name: "Jelly", Color: model.ColorRed, Quality: model.QualityCommon}

	tests := []struct {
		name      string
		beanID    uint
		qty       int
		setupMock func()
		wantErr   error
	}{
		{
			name:   "正常系: 既存行に加算",
			beanID: 1,
			qty:    3,
			setupMock: func() {
				mockBeanRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), uint(1)).
					Return(testBean, nil).Once()
				mockInvRepo.On("FindEntryForUpdate", ctx, mock.AnythingOfType("*gorm.DB"), userID, uint(1)).
					Return(&model.InventoryEntry{UserID: userID, BeanID: 1, Qty: 2}, nil).Once()
				mockInvRepo.On("IncrementQty", ctx, mock.AnythingOfType("*gorm.DB"), userID, uint(1), 3).
					Return(nil).Once()
			},
			wantErr: nil,
		},
		{
			name:   "正常系: 行が無ければupsertで作成",
			beanID: 1,
			qty:    5,
			setupMock: func() {
				mockBeanRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), uint(1)).
					Return(testBean, nil).Once()
				mockInvRepo.On("FindEntryForUpdate", ctx, mock.AnythingOfType("*gorm.DB"), userID, uint(1)).
					Return(nil, model.ErrNotFound).Once()
				mockInvRepo.On("UpsertAdd", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.InventoryEntry")).
					Run(func(args mock.Arguments) {
						entry := args.Get(2).(*model.InventoryEntry)
						assert.Equal(t, userID, entry.UserID)
						assert.Equal(t, uint(1), entry.BeanID)
						assert.Equal(t, 5, entry.Qty)
					}).Return(nil).Once()
			},
			wantErr: nil,
		},
		{
			name:      "異常系: 数量が0以下",
			beanID:    1,
			qty:       0,
			setupMock: func() { /* リポジトリは呼ばれない */ },
			wantErr:   model.ErrInvalidInput,
		},
		{
			name:   "異常系: 存在しないビーン",
			beanID: 99,
			qty:    1,
			setupMock: func() {
				mockBeanRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), uint(99)).
					Return(nil, model.ErrNotFound).Once()
			},
			wantErr: model.ErrInvalidInput,
		},
		{
			name:   "異常系: upsertでDBエラー",
			beanID: 1,
			qty:    1,
			setupMock: func() {
				mockBeanRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), uint(1)).
					Return(testBean, nil).Once()
				mockInvRepo.On("FindEntryForUpdate", ctx, mock.AnythingOfType("*gorm.DB"), userID, uint(1)).
					Return(nil, model.ErrNotFound).Once()
				mockInvRepo.On("UpsertAdd", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.InventoryEntry")).
					Return(errors.New("db error on upsert")).Once()
			},
			wantErr: model.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockInvRepo.Mock = mock.Mock{}
			mockBeanRepo.Mock = mock.Mock{}
			if tt.setupMock != nil {
				tt.setupMock()
			}

			err := svc.Grant(ctx, userID, tt.beanID, tt.qty)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}

			mockInvRepo.AssertExpectations(t)
			mockBeanRepo.AssertExpectations(t)
		})
	}
}

// --- Test GrantMany ---
func Test_inventoryService_GrantMany(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBInventory()
	mockInvRepo := new(mocks.InventoryRepository)
	mockBeanRepo := new(mocks.BeanRepository)
	svc := NewInventoryService(db, mockInvRepo, mockBeanRepo)

	userID := uuid.New()
	testBean := &model.Bean{BeanID: 1, Name: "Jelly", Color: model.ColorRed, Quality: model.QualityCommon}

	t.Run("正常系: 複数付与が全件適用される", func(t *testing.T) {
		mockInvRepo.Mock = mock.Mock{}
		mockBeanRepo.Mock = mock.Mock{}

		mockBeanRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("uint")).
			Return(testBean, nil).Twice()
		mockInvRepo.On("FindEntryForUpdate", ctx, mock.AnythingOfType("*gorm.DB"), userID, mock.AnythingOfType("uint")).
			Return(nil, model.ErrNotFound).Twice()
		mockInvRepo.On("UpsertAdd", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.InventoryEntry")).
			Return(nil).Twice()

		err := svc.GrantMany(ctx, userID, []model.BeanGrant{
			{BeanID: 1, Qty: 2},
			{BeanID: 2, Qty: 1},
		})
		require.NoError(t, err)
		mockInvRepo.AssertExpectations(t)
	})

	t.Run("正常系: 空スライスは何もしない", func(t *testing.T) {
		mockInvRepo.Mock = mock.Mock{}
		mockBeanRepo.Mock = mock.Mock{}

		err := svc.GrantMany(ctx, userID, nil)
		require.NoError(t, err)
	})

	t.Run("異常系: 1件でも不正なら全体が失敗する", func(t *testing.T) {
		mockInvRepo.Mock = mock.Mock{}
		mockBeanRepo.Mock = mock.Mock{}

		mockBeanRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), uint(1)).
			Return(testBean, nil).Once()
		mockInvRepo.On("FindEntryForUpdate", ctx, mock.AnythingOfType("*gorm.DB"), userID, uint(1)).
			Return(nil, model.ErrNotFound).Once()
		mockInvRepo.On("UpsertAdd", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.InventoryEntry")).
			Return(nil).Once()

		err := svc.GrantMany(ctx, userID, []model.BeanGrant{
			{BeanID: 1, Qty: 2},
			{BeanID: 2, Qty: 0}, // 不正な数量
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})
}

// --- Test QuantityOf ---
func Test_inventoryService_QuantityOf(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBInventory()
	userID := uuid.New()

	tests := []struct {
		name      string
		setupMock func(m *mocks.InventoryRepository)
		wantQty   int
		wantErr   error
	}{
		{
			name: "正常系: 保有数量を返す",
			setupMock: func(m *mocks.InventoryRepository) {
				m.On("FindQty", ctx, db, userID, uint(1)).Return(7, nil).Once()
			},
			wantQty: 7,
		},
		{
			name: "正常系: 未保有は0を返す",
			setupMock: func(m *mocks.InventoryRepository) {
				m.On("FindQty", ctx, db, userID, uint(1)).Return(0, model.ErrNotFound).Once()
			},
			wantQty: 0,
		},
		{
			name: "異常系: DBエラー",
			setupMock: func(m *mocks.InventoryRepository) {
				m.On("FindQty", ctx, db, userID, uint(1)).Return(0, errors.New("db error")).Once()
			},
			wantErr: model.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockInvRepo := new(mocks.InventoryRepository)
			mockBeanRepo := new(mocks.BeanRepository)
			svc := NewInventoryService(db, mockInvRepo, mockBeanRepo)
			tt.setupMock(mockInvRepo)

			qty, err := svc.QuantityOf(ctx, userID, 1)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantQty, qty)
			}
			mockInvRepo.AssertExpectations(t)
		})
	}
}

// --- Test ListInventory ---
func Test_inventoryService_ListInventory(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBInventory()
	userID := uuid.New()

	expectedItems := []*model.InventoryItem{
		{BeanID: 1, Qty: 3, Bean: &model.Bean{BeanID: 1, Name: "Jelly"}},
		{BeanID: 2, Qty: 1, Bean: &model.Bean{BeanID: 2, Name: "Midnight"}},
	}

	tests := []struct {
		name      string
		setupMock func(m *mocks.InventoryRepository)
		wantLen   int
		wantErr   error
	}{
		{
			name: "正常系: 一覧取得成功",
			setupMock: func(m *mocks.InventoryRepository) {
				m.On("ListByUser", ctx, db, userID, 0, 20).Return(expectedItems, nil).Once()
			},
			wantLen: 2,
		},
		{
			name: "異常系: DBエラー",
			setupMock: func(m *mocks.InventoryRepository) {
				m.On("ListByUser", ctx, db, userID, 0, 20).Return(nil, errors.New("db error")).Once()
			},
			wantErr: model.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockInvRepo := new(mocks.InventoryRepository)
			mockBeanRepo := new(mocks.BeanRepository)
			svc := NewInventoryService(db, mockInvRepo, mockBeanRepo)
			tt.setupMock(mockInvRepo)

			items, err := svc.ListInventory(ctx, userID, 0, 20)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, items)
			} else {
				require.NoError(t, err)
				assert.Len(t, items, tt.wantLen)
			}
			mockInvRepo.AssertExpectations(t)
		})
	}
}
