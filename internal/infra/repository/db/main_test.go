package db

import (
	"testing"

	"github.com/RoyceAzure/lab/artmarket/internal/domain/model"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// 測試用 in-memory sqlite, 每個 suite 一份獨立 schema
func newTestDbDao(t *testing.T) *DbDao {
	conn, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// in-memory db 綁在單一連線上, 不能讓 pool 開出第二條
	sqlDB, err := conn.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	dbDao := NewDbDao(conn)
	require.NoError(t, dbDao.InitMigrate())
	return dbDao
}

// 超過一條連線的話每條連線各自是一個空的 in-memory db, schema 會消失
func TestTestDbSingleConnection(t *testing.T) {
	dbDao := newTestDbDao(t)

	sqlDB, err := dbDao.DB.DB()
	require.NoError(t, err)
	require.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)

	var count int64
	require.NoError(t, dbDao.Model(&model.User{}).Count(&count).Error)
}
