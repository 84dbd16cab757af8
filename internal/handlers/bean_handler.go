// internal/handlers/bean_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"csgobeans/internal/config"
	"csgobeans/internal/model"
	"csgobeans/internal/service"
	"csgobeans/internal/webutil"

	"github.com/go-chi/chi/v5"
)

type BeanHandler struct {
	service service.CatalogService
	logger  *slog.Logger
}

func NewBeanHandler(s service.CatalogService, logger *slog.Logger) *BeanHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &BeanHandler{
		service: s,
		logger:  logger,
	}
}

// GetBeans はカタログの一覧を取得するためのハンドラ (名前順・ページング付き)
func (h *BeanHandler) GetBeans(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetBeans"))

	offset, limit, err := webutil.ParsePagination(r, config.Cfg.App.PageLimit, config.Cfg.App.PageLimit)
	if err != nil {
		logger.Warn("Invalid pagination params", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	beans, err := h.service.ListBeans(r.Context(), offset, limit)
	if err != nil {
		logger.Error("Error listing beans in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	// ページングの全体件数はヘッダで返す
	total, err := h.service.CountBeans(r.Context())
	if err != nil {
		logger.Error("Error counting beans in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	w.Header().Set("X-Total-Count", strconv.FormatInt(total, 10))

	resp := make([]*model.BeanResponse, 0, len(beans))
	for _, bean := range beans {
		resp = append(resp, model.NewBeanResponse(bean))
	}
	logger.Info("Beans listed successfully", slog.Int("count", len(resp)), slog.Int64("total", total))
	webutil.RespondWithJSON(w, http.StatusOK, resp)
}

// GetBean は特定のビーンを取得するためのハンドラ
func (h *BeanHandler) GetBean(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetBean"))

	beanIDStr := chi.URLParam(r, "bean_id")
	beanID, err := strconv.ParseUint(beanIDStr, 10, 32)
	if err != nil {
		logger.Warn("Invalid bean ID format in URL", slog.String("bean_id_str", beanIDStr))
		appErr := model.NewAppError("INVALID_URL_PARAM", "bean_idの形式が正しくありません。", "bean_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	bean, err := h.service.GetBean(r.Context(), uint(beanID))
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Bean not found in service", slog.Uint64("bean_id", beanID))
		} else {
			logger.Error("Error getting bean from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, model.NewBeanResponse(bean))
}
