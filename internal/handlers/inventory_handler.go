// internal/handlers/inventory_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"csgobeans/internal/config"
	"csgobeans/internal/middleware"
	"csgobeans/internal/model"
	"csgobeans/internal/service"
	"csgobeans/internal/webutil"
)

type InventoryHandler struct {
	service service.InventoryService
	logger  *slog.Logger
}

func NewInventoryHandler(s service.InventoryService, logger *slog.Logger) *InventoryHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &InventoryHandler{
		service: s,
		logger:  logger,
	}
}

// GetInventory は認証済みユーザーの在庫一覧を取得するためのハンドラ
func (h *InventoryHandler) GetInventory(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetInventory"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	offset, limit, err := webutil.ParsePagination(r, config.Cfg.App.PageLimit, config.Cfg.App.PageLimit)
	if err != nil {
		logger.Warn("Invalid pagination params", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	items, err := h.service.ListInventory(r.Context(), userID, offset, limit)
	if err != nil {
		logger.Error("Error listing inventory in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	resp := make([]*model.InventoryItemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, model.NewInventoryItemResponse(item))
	}
	logger.Info("Inventory listed successfully", slog.Int("count", len(resp)))
	webutil.RespondWithJSON(w, http.StatusOK, resp)
}
