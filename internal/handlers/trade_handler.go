// internal/handlers/trade_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"csgobeans/internal/config"
	"csgobeans/internal/middleware"
	"csgobeans/internal/model"
	"csgobeans/internal/service"
	"csgobeans/internal/webutil"

	"github.com/go-chi/chi/v5"
)

type TradeHandler struct {
	service service.TradeService
	logger  *slog.Logger
}

func NewTradeHandler(s service.TradeService, logger *slog.Logger) *TradeHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TradeHandler{
		service: s,
		logger:  logger,
	}
}

// PostTrade は外部アイテムをビーンに交換するためのハンドラ
func (h *TradeHandler) PostTrade(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostTrade"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	var req model.TradeRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		handleValidationError(w, logger, err)
		return
	}

	result, err := h.service.Trade(r.Context(), userID, &req)
	if err != nil {
		// 交換済み・入力不備は想定内の結果として返す
		if errors.Is(err, model.ErrAlreadyTraded) || errors.Is(err, model.ErrInvalidInput) {
			logger.Warn("Trade rejected", slog.Any("error", err))
		} else {
			logger.Error("Error executing trade in service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Trade accepted",
		slog.Uint64("trade_id", uint64(result.TradeID)),
		slog.Uint64("bean_id", uint64(result.Bean.BeanID)),
		slog.Int("qty", result.Qty),
	)
	webutil.RespondWithJSON(w, http.StatusCreated, model.NewTradeResponse(result))
}

// GetTradeStatus は外部アイテムが交換済みかどうかを返すためのハンドラ。
// クライアントが交換ボタンの活性状態を決めるのに使う
func (h *TradeHandler) GetTradeStatus(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetTradeStatus"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}

	externalItemID := chi.URLParam(r, "external_item_id")
	if externalItemID == "" {
		appErr := model.NewAppError("INVALID_URL_PARAM", "アイテムIDが指定されていません。", "external_item_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	traded, err := h.service.AlreadyTraded(r.Context(), userID, externalItemID)
	if err != nil {
		logger.Error("Error checking trade status in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, &model.TradeStatusResponse{
		ExternalItemID: externalItemID,
		AlreadyTraded:  traded,
	})
}

// GetTrades は認証済みユーザーのトレード履歴を取得するためのハンドラ (時刻昇順)
func (h *TradeHandler) GetTrades(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetTrades"))

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

	trades, err := h.service.ListTrades(r.Context(), userID, offset, limit)
	if err != nil {
		logger.Error("Error listing trades in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	resp := make([]*model.TradeLogEntryResponse, 0, len(trades))
	for _, trade := range trades {
		resp = append(resp, model.NewTradeLogEntryResponse(trade))
	}
	logger.Info("Trades listed successfully", slog.Int("count", len(resp)))
	webutil.RespondWithJSON(w, http.StatusOK, resp)
}
