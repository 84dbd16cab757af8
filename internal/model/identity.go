package model

import "github.com/google/uuid"

// ExternalIdentity は外部プロバイダ (Steam) のIDと内部ユーザーの紐付けを表します
// external_id は全体で一意、1つの external_id は必ず1人のユーザーに対応する
type ExternalIdentity struct {
	ExternalID string    `gorm:"primaryKey" json:"external_id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
}

func (ExternalIdentity) TableName() string {
	return "external_identity"
}
