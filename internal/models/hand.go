package models

import (
	"time"
)

// HandRecord 已保存的牌局记录表。保存时一次性生成的快照，
// 入库后不再修改，只能整条删除。
// 牌面标记为点数紧跟花色符号（如 A♠、10♥），动作文本为
// "<座位>: <动作>"，两者都必须与历史数据逐字节兼容。
type HandRecord struct {
	BaseModel
	HeroCards    StringArray `gorm:"type:json;not null" json:"hero_cards"`
	VillainCards StringArray `gorm:"type:json" json:"villain_cards"`
	BoardCards   StringArray `gorm:"type:json" json:"board_cards"`
	Blinds       string      `gorm:"size:50;not null" json:"blinds"`
	Position     string      `gorm:"size:20" json:"position"`
	Stack        string      `gorm:"size:50" json:"stack"`
	ActiveSeats  StringArray `gorm:"type:json" json:"active_seats"`
	HeroSeat     string      `gorm:"size:20" json:"hero_seat"`
	Actions      StreetLog   `gorm:"type:json" json:"actions"`
	RecordedAt   time.Time   `gorm:"index" json:"recorded_at"`
}

// TableName 指定表名
func (HandRecord) TableName() string {
	return "hand_records"
}
