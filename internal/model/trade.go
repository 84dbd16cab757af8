package model

import (
	"time"

	"github.com/google/uuid"
)

// TradeRecord は成立したトレード1件の追記専用レコード
// (user_id, external_item_id) は一意。同じアイテムの二重交換を防ぐ
type TradeRecord struct {
	TradeID        uint      `gorm:"primaryKey;autoIncrement" json:"trade_id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_trades_user_item" json:"user_id"`
	ExternalItemID string    `gorm:"not null;uniqueIndex:uq_trades_user_item" json:"external_item_id"`
	TradeTimestamp time.Time `gorm:"not null" json:"trade_timestamp"`
}

func (TradeRecord) TableName() string {
	return "trades"
}

// トレード実行リクエストDTO
// BeanID と Qty を両方指定すると明示モード、両方省略するとランダム選択モード
type TradeRequest struct {
	ExternalItemID string `json:"external_item_id" validate:"required,min=1,max=128"`
	BeanID         *uint  `json:"bean_id,omitempty"`
	Qty            *int   `json:"qty,omitempty" validate:"omitempty,min=1"`
}

// TradeResult はオーケストレータが返す成立結果 (表示用の整形はハンドラ側)
type TradeResult struct {
	TradeID uint
	Bean    *Bean
	Qty     int
}

// TradeResponse はトレードAPIのレスポンス
type TradeResponse struct {
	TradeID uint          `json:"trade_id"`
	Bean    *BeanResponse `json:"bean"`
	Qty     int           `json:"qty"`
}

func NewTradeResponse(res *TradeResult) *TradeResponse {
	return &TradeResponse{
		TradeID: res.TradeID,
		Bean:    NewBeanResponse(res.Bean),
		Qty:     res.Qty,
	}
}

// TradeStatusResponse は外部アイテムの交換済み判定のレスポンス
type TradeStatusResponse struct {
	ExternalItemID string `json:"external_item_id"`
	AlreadyTraded  bool   `json:"already_traded"`
}

// TradeLogEntryResponse はトレード履歴一覧の1行分のレスポンス
type TradeLogEntryResponse struct {
	TradeID        uint      `json:"trade_id"`
	ExternalItemID string    `json:"external_item_id"`
	TradeTimestamp time.Time `json:"trade_timestamp"`
}

func NewTradeLogEntryResponse(t *TradeRecord) *TradeLogEntryResponse {
	return &TradeLogEntryResponse{
		TradeID:        t.TradeID,
		ExternalItemID: t.ExternalItemID,
		TradeTimestamp: t.TradeTimestamp,
	}
}
