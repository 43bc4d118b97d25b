package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wfunc/hand-recorder/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TestDB 创建测试数据库
func TestDB(t *testing.T) *gorm.DB {
	// 使用内存数据库进行测试（更快，不需要文件系统，在所有环境中都能工作）
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// 自动迁移所有模型
	err = db.AutoMigrate(
		&models.HandRecord{},
	)
	require.NoError(t, err)

	return db
}

// CleanupTestDB 清理测试数据库
func CleanupTestDB(db *gorm.DB) {
	sqlDB, _ := db.DB()
	if sqlDB != nil {
		sqlDB.Close()
	}
}

// AssertHandRecord 验证牌局记录
func AssertHandRecord(t *testing.T, expected, actual *models.HandRecord) {
	assert.Equal(t, expected.HeroCards, actual.HeroCards)
	assert.Equal(t, expected.Blinds, actual.Blinds)
	assert.Equal(t, expected.Position, actual.Position)
	assert.Equal(t, expected.HeroSeat, actual.HeroSeat)
	assert.Equal(t, expected.ActiveSeats, actual.ActiveSeats)
}

// CreateTestHandRecord 创建测试牌局记录
func CreateTestHandRecord(position string) *models.HandRecord {
	return &models.HandRecord{
		HeroCards:   models.StringArray{"A♠", "K♦"},
		Blinds:      "1/2",
		Position:    position,
		Stack:       "200",
		ActiveSeats: models.StringArray{"BTN", "SB", "BB"},
		HeroSeat:    position,
		Actions: models.StreetLog{
			"preflop": {"BTN: Raise 6", "SB: Fold", "BB: Call"},
			"flop":    {},
			"turn":    {},
			"river":   {},
		},
		RecordedAt: time.Now(),
	}
}
