package model

import (
	"time"

	"github.com/google/uuid"
)

// InventoryEntry はユーザーが保有するビーン1種の数量を表します
// (user_id, bean_id) は一意、qty は常に0以上
type InventoryEntry struct {
	InventoryID uint      `gorm:"primaryKey;autoIncrement" json:"-"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_inventory_user_bean" json:"user_id"`
	BeanID      uint      `gorm:"not null;uniqueIndex:uq_inventory_user_bean" json:"bean_id"`
	Qty         int       `gorm:"not null" json:"qty"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`

	// 関連 (Preload用)
	Bean *Bean `gorm:"foreignKey:BeanID;references:BeanID" json:"-"`
}

func (InventoryEntry) TableName() string {
	return "inventory"
}

// BeanGrant は1回の付与 (ビーンと数量の組) を表します
type BeanGrant struct {
	BeanID uint
	Qty    int
}

// InventoryItem は在庫一覧の1行 (数量 + カタログ情報)
type InventoryItem struct {
	BeanID uint  `json:"bean_id"`
	Qty    int   `json:"qty"`
	Bean   *Bean `json:"bean"`
}

// InventoryItemResponse は在庫一覧APIの1行分のレスポンス
type InventoryItemResponse struct {
	BeanID uint          `json:"bean_id"`
	Qty    int           `json:"qty"`
	Bean   *BeanResponse `json:"bean"`
}

func NewInventoryItemResponse(item *InventoryItem) *InventoryItemResponse {
	resp := &InventoryItemResponse{
		BeanID: item.BeanID,
		Qty:    item.Qty,
	}
	if item.Bean != nil {
		resp.Bean = NewBeanResponse(item.Bean)
	}
	return resp
}
