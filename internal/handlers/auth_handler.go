// internal/handlers/auth_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"csgobeans/internal/config"
	"csgobeans/internal/middleware"
	"csgobeans/internal/model"
	"csgobeans/internal/service"
	"csgobeans/internal/webutil"

	"github.com/go-playground/validator/v10"
)

type AuthHandler struct {
	service  service.AuthService
	verifier service.AssertionVerifier
	logger   *slog.Logger
}

func NewAuthHandler(s service.AuthService, verifier service.AssertionVerifier, logger *slog.Logger) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{
		service:  s,
		verifier: verifier,
		logger:   logger,
	}
}

// Register は新規ユーザーを登録するためのハンドラ
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Register"))

	var req model.RegisterRequest
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

	user, err := h.service.Register(r.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			logger.Warn("Registration rejected", slog.Any("error", err))
		} else {
			logger.Error("Error registering user in service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("User registered successfully", slog.String("user_id", user.UserID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, model.NewUserResponse(user))
}

// Login はローカル認証でJWTを発行するためのハンドラ
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Login"))

	var req model.LoginRequest
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

	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		// 認証失敗は想定内の結果なのでWarnに留める
		logger.Warn("Login attempt failed", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Login successful")
	webutil.RespondWithJSON(w, http.StatusOK, resp)
}

// SteamLogin はSteam OpenIDの認証開始URLへリダイレクトするハンドラ。
// 認証完了後、SteamはSteamReturnのURL (return_url) へ戻してくる
func (h *AuthHandler) SteamLogin(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "SteamLogin"))

	if !config.Cfg.Steam.Enabled {
		logger.Warn("Steam login requested but disabled in config")
		appErr := model.NewAppError("STEAM_LOGIN_DISABLED", "外部ログインは無効です。", "", model.ErrNotFound)
		webutil.HandleError(w, logger, appErr)
		return
	}

	params := url.Values{}
	params.Set("openid.ns", "http://specs.openid.net/auth/2.0")
	params.Set("openid.mode", "checkid_setup")
	params.Set("openid.return_to", config.Cfg.Steam.ReturnURL)
	params.Set("openid.realm", config.Cfg.Steam.Realm)
	params.Set("openid.identity", "http://specs.openid.net/auth/2.0/identifier_select")
	params.Set("openid.claimed_id", "http://specs.openid.net/auth/2.0/identifier_select")

	redirectURL := config.SteamOpenIDEndpoint + "?" + params.Encode()
	logger.Info("Redirecting to steam openid endpoint")
	http.Redirect(w, r, redirectURL, http.StatusFound)
}

// SteamReturn はSteam OpenIDのコールバックを処理するハンドラ。
// アサーションの検証はVerifierに委譲し、コアには検証済みIDだけを渡す
func (h *AuthHandler) SteamReturn(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "SteamReturn"))

	externalID, err := h.verifier.Verify(r.Context(), r.URL.Query())
	if err != nil {
		logger.Warn("Steam assertion verification failed", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("external_id", externalID))

	resp, err := h.service.SteamLogin(r.Context(), externalID)
	if err != nil {
		logger.Error("Error completing steam login in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Steam login successful")
	webutil.RespondWithJSON(w, http.StatusOK, resp)
}

// Me は認証済みユーザー自身の情報を返すハンドラ
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Me"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}

	user, err := h.service.GetUser(r.Context(), userID)
	if err != nil {
		logger.Error("Error getting user from service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, model.NewUserResponse(user))
}

// handleValidationError はvalidatorのエラーをAppErrorへ変換して返します
func handleValidationError(w http.ResponseWriter, logger *slog.Logger, err error) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		logger.Warn("Validation failed", slog.String("errors", validationErrors.Error()))

		// 最初のエラーを代表としてクライアントに返す
		firstErr := validationErrors[0]
		translatedMsg := firstErr.Translate(webutil.Trans)

		appErr := model.NewAppError(
			"VALIDATION_ERROR",
			translatedMsg,
			firstErr.Field(),
			model.ErrInvalidInput,
		)
		webutil.HandleError(w, logger, appErr)
		return
	}

	logger.Error("Unexpected error during validation", slog.Any("error", err))
	webutil.HandleError(w, logger, err)
}
