package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

// BaseModel 公共模型字段
type BaseModel struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

var errInvalidJSONColumn = errors.New("无法扫描JSON列")

// JSONMap JSON对象列
type JSONMap map[string]interface{}

// Value 实现 driver.Valuer
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		m = JSONMap{}
	}
	return json.Marshal(m)
}

// Scan 实现 sql.Scanner
func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = JSONMap{}
		return nil
	}
	data, ok := toBytes(value)
	if !ok {
		return errInvalidJSONColumn
	}
	return json.Unmarshal(data, m)
}

// StringArray JSON字符串数组列，保持元素顺序
type StringArray []string

// Value 实现 driver.Valuer；nil 序列化为空数组而不是 null
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		a = StringArray{}
	}
	return json.Marshal(a)
}

// Scan 实现 sql.Scanner
func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = StringArray{}
		return nil
	}
	data, ok := toBytes(value)
	if !ok {
		return errInvalidJSONColumn
	}
	return json.Unmarshal(data, a)
}

// StreetLog 按街存放的动作文本列，键为街名、值为时间顺序的动作序列
type StreetLog map[string][]string

// Value 实现 driver.Valuer；缺失的街序列化为空数组
func (l StreetLog) Value() (driver.Value, error) {
	if l == nil {
		l = StreetLog{}
	}
	normalized := make(map[string][]string, len(l))
	for street, actions := range l {
		if actions == nil {
			actions = []string{}
		}
		normalized[street] = actions
	}
	return json.Marshal(normalized)
}

// Scan 实现 sql.Scanner
func (l *StreetLog) Scan(value interface{}) error {
	if value == nil {
		*l = StreetLog{}
		return nil
	}
	data, ok := toBytes(value)
	if !ok {
		return errInvalidJSONColumn
	}
	return json.Unmarshal(data, l)
}

func toBytes(value interface{}) ([]byte, bool) {
	switch v := value.(type) {
	case []byte:
		return v, true
	case string:
		return []byte(v), true
	}
	return nil, false
}
