// internal/config/constants.go
package config

import "time"

// アプリケーション情報
const (
	AppName    = "csgobeans"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort     = ":8080"
	DefaultLogLevel       = "info"
	DefaultPageLimit      = 20
	DefaultAccessTokenTTL = 24 * time.Hour
)

// ランダム選択モードで付与する数量の範囲 (両端を含む)
const (
	TradeQtyMin = 1
	TradeQtyMax = 9
)

// Steam OpenID 2.0 のエンドポイント
const SteamOpenIDEndpoint = "https://steamcommunity.com/openid/login"
