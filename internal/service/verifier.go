package service

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"regexp"
	"strings"
	"time"

	"csgobeans/internal/config"
	"csgobeans/internal/middleware"
	"csgobeans/internal/model"
)

// AssertionVerifier は外部プロバイダの認証アサーションを検証し、
// 検証済みの外部IDを返します。コアはプロバイダと直接通信しない
type AssertionVerifier interface {
	Verify(ctx context.Context, params url.Values) (string, error)
}

// claimed_id (例: https://steamcommunity.com/openid/id/76561198000000000) から数値IDを取り出す
var steamClaimedIDPattern = regexp.MustCompile(`^https?://steamcommunity\.com/openid/id/(\d+)$`)

// --- steamOpenIDVerifier ---
// OpenID 2.0 の check_authentication でアサーションをプロバイダに照合する実装
type steamOpenIDVerifier struct {
	endpoint string
	client   *http.Client
}

func (v *steamOpenIDVerifier) Verify(ctx context.Context, params url.Values) (string, error) {
	logger := middleware.GetLogger(ctx)

	claimedID := params.Get("openid.claimed_id")
	match := steamClaimedIDPattern.FindStringSubmatch(claimedID)
	if match == nil {
		logger.Warn("Steam verify failed: unexpected claimed_id", "claimed_id", claimedID)
		return "", model.NewAppError("VERIFICATION_FAILED", "外部認証に失敗しました。", "", model.ErrInvalidInput)
	}
	steamID := match[1]

	// アサーションをそのまま送り返し、modeだけ check_authentication に差し替える
	check := url.Values{}
	for key, values := range params {
		if strings.HasPrefix(key, "openid.") {
			check[key] = values
		}
	}
	check.Set("openid.mode", "check_authentication")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.endpoint, strings.NewReader(check.Encode()))
	if err != nil {
		logger.Error("Steam verify failed: building request", "error", err)
		return "", model.NewAppError("INTERNAL_SERVER_ERROR", "外部認証の処理中にエラーが発生しました。", "", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.client.Do(req)
	if err != nil {
		logger.Error("Steam verify failed: provider unreachable", "error", err)
		return "", model.NewAppError("INTERNAL_SERVER_ERROR", "外部認証の処理中にエラーが発生しました。", "", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		logger.Error("Steam verify failed: reading response", "error", err)
		return "", model.NewAppError("INTERNAL_SERVER_ERROR", "外部認証の処理中にエラーが発生しました。", "", err)
	}

	if !strings.Contains(string(body), "is_valid:true") {
		logger.Warn("Steam verify failed: assertion rejected by provider", "steam_id", steamID)
		return "", model.NewAppError("VERIFICATION_FAILED", "外部認証に失敗しました。", "", model.ErrInvalidInput)
	}

	logger.Debug("Steam assertion verified", "steam_id", steamID)
	return steamID, nil
}

// --- staticVerifier ---
// 開発環境専用: プロバイダに問い合わせず claimed_id をそのまま信用する。
// 本番構成では決して選択されない (NewAssertionVerifier 参照)
type staticVerifier struct{}

func (v *staticVerifier) Verify(ctx context.Context, params url.Values) (string, error) {
	logger := middleware.GetLogger(ctx)

	claimedID := params.Get("openid.claimed_id")
	match := steamClaimedIDPattern.FindStringSubmatch(claimedID)
	if match == nil {
		return "", model.NewAppError("VERIFICATION_FAILED", "外部認証に失敗しました。", "", model.ErrInvalidInput)
	}
	logger.Info("--- Verifying assertion (staticVerifier, no provider check) ---", "steam_id", match[1])
	return match[1], nil
}

// --- deniedVerifier ---
// Steam無効時の実装。アサーションを一切受け付けない
type deniedVerifier struct{}

func (v *deniedVerifier) Verify(ctx context.Context, params url.Values) (string, error) {
	middleware.GetLogger(ctx).Warn("Assertion rejected: steam login is disabled")
	return "", model.NewAppError("STEAM_LOGIN_DISABLED", "外部ログインは無効です。", "", model.ErrForbidden)
}

// --- NewAssertionVerifier ファクトリ関数 ---
// Steam無効時は全アサーションを拒否する。検証をスキップする staticVerifier は
// APP_ENV=dev の開発環境でのみ選択される
func NewAssertionVerifier(cfg *config.Config) AssertionVerifier {
	logger := slog.Default()
	if cfg.Steam.Enabled {
		logger.Info("Initializing Steam OpenID verifier...")
		return &steamOpenIDVerifier{
			endpoint: config.SteamOpenIDEndpoint,
			client:   &http.Client{Timeout: 10 * time.Second},
		}
	}
	if strings.ToLower(os.Getenv("APP_ENV")) == "dev" {
		logger.Warn("Steam login disabled, using static verifier (DEV ONLY, assertions are not verified)")
		return &staticVerifier{}
	}
	logger.Info("Steam login disabled, external assertions will be rejected")
	return &deniedVerifier{}
}
