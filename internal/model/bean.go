package model

import "time"

// Color はビーンの色 (9色の閉じた列挙)
type Color int

const (
	ColorRed Color = iota + 1
	ColorOrange
	ColorYellow
	ColorGreen
	ColorBlue
	ColorPurple
	ColorBlack
	ColorGrey
	ColorWhite
)

func (c Color) Valid() bool {
	return c >= ColorRed && c <= ColorWhite
}

func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorOrange:
		return "orange"
	case ColorYellow:
		return "yellow"
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	case ColorPurple:
		return "purple"
	case ColorBlack:
		return "black"
	case ColorGrey:
		return "grey"
	case ColorWhite:
		return "white"
	default:
		return "unknown"
	}
}

// Quality はビーンの品質 (4段階の閉じた列挙)
type Quality int

const (
	QualityCommon Quality = iota + 1
	QualityUncommon
	QualityRare
	QualityMythic
)

func (q Quality) Valid() bool {
	return q >= QualityCommon && q <= QualityMythic
}

func (q Quality) String() string {
	switch q {
	case QualityCommon:
		return "common"
	case QualityUncommon:
		return "uncommon"
	case QualityRare:
		return "rare"
	case QualityMythic:
		return "mythic"
	default:
		return "unknown"
	}
}

// Bean はカタログのビーン1種を表します。作成後は不変
type Bean struct {
	BeanID    uint      `gorm:"primaryKey;autoIncrement" json:"bean_id"`
	Name      string    `gorm:"unique;not null" json:"name"`
	ShortDesc string    `gorm:"not null" json:"short_desc"`
	Color     Color     `gorm:"not null" json:"color"`
	Quality   Quality   `gorm:"not null" json:"quality"`
	CreatedAt time.Time `json:"-"`
}

func (Bean) TableName() string {
	return "beans"
}

// BeanDescriptor はシードファイル1行分のビーン定義
type BeanDescriptor struct {
	Name      string
	ShortDesc string
	Color     Color
	Quality   Quality
}

// ビーン作成リクエストDTO
type CreateBeanRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=100"`
	ShortDesc string `json:"short_desc" validate:"required,max=200"`
	Color     int    `json:"color" validate:"required"`
	Quality   int    `json:"quality" validate:"required"`
}

// BeanResponse はクライアントに返すビーン情報の構造体
type BeanResponse struct {
	BeanID    uint   `json:"bean_id"`
	Name      string `json:"name"`
	ShortDesc string `json:"short_desc"`
	Color     string `json:"color"`
	Quality   string `json:"quality"`
}

func NewBeanResponse(b *Bean) *BeanResponse {
	return &BeanResponse{
		BeanID:    b.BeanID,
		Name:      b.Name,
		ShortDesc: b.ShortDesc,
		Color:     b.Color.String(),
		Quality:   b.Quality.String(),
	}
}
