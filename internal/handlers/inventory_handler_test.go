// internal/handlers/inventory_handler_test.go
package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"csgobeans/internal/handlers"
	"csgobeans/internal/middleware"
	"csgobeans/internal/model"
	"csgobeans/internal/service/mocks"
)

func TestInventoryHandler_GetInventory(t *testing.T) {
	mockInventoryService := mocks.NewMockInventoryService(t)
	inventoryHandler := handlers.NewInventoryHandler(mockInventoryService, nil)
	router := chi.NewRouter()
	router.Use(middleware.DevUserContextMiddleware)
	router.Get("/api/v1/inventory", inventoryHandler.GetInventory)

	userID := uuid.New()
	items := []*model.InventoryItem{
		{
			BeanID: 1,
			Qty:    5,
			Bean:   &model.Bean{BeanID: 1, Name: "Jelly", ShortDesc: "desc", Color: model.ColorRed, Quality: model.QualityCommon},
		},
		{
			BeanID: 2,
			Qty:    1,
			Bean:   &model.Bean{BeanID: 2, Name: "Midnight", ShortDesc: "desc", Color: model.ColorBlack, Quality: model.QualityRare},
		},
	}

	tests := []struct {
		name           string
		path           string
		userID         *uuid.UUID
		setupMock      func()
		expectedStatus int
		expectedLen    int
	}{
		{
			name:   "正常系: 在庫一覧の取得",
			path:   "/api/v1/inventory",
			userID: &userID,
			setupMock: func() {
				mockInventoryService.On("ListInventory", mock.Anything, userID, 0, 20).
					Return(items, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedLen:    2,
		},
		{
			name:   "正常系: 在庫なしは空配列",
			path:   "/api/v1/inventory",
			userID: &userID,
			setupMock: func() {
				mockInventoryService.On("ListInventory", mock.Anything, userID, 0, 20).
					Return([]*model.InventoryItem{}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedLen:    0,
		},
		{
			name:           "異常系: 認証ヘッダーなし",
			path:           "/api/v1/inventory",
			userID:         nil,
			setupMock:      func() { /* Serviceは呼ばれない */ },
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "異常系: limitが負数",
			path:           "/api/v1/inventory?limit=-1",
			userID:         &userID,
			setupMock:      func() { /* Serviceは呼ばれない */ },
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "異常系: Serviceの内部エラー",
			path:   "/api/v1/inventory",
			userID: &userID,
			setupMock: func() {
				mockInventoryService.On("ListInventory", mock.Anything, userID, 0, 20).
					Return(nil, model.ErrInternalServer).Once()
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMock()

			req := createRequest(t, "GET", tc.path, nil, tc.userID)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedStatus == http.StatusOK {
				var resp []*model.InventoryItemResponse
				err := json.Unmarshal(rr.Body.Bytes(), &resp)
				assert.NoError(t, err)
				assert.Len(t, resp, tc.expectedLen)
				if tc.expectedLen > 0 {
					assert.Equal(t, items[0].Qty, resp[0].Qty)
					assert.Equal(t, "Jelly", resp[0].Bean.Name)
				}
			}

			mockInventoryService.AssertExpectations(t)
		})
	}
}
