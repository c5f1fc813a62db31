package service

import (
	"testing"

	"github.com/RoyceAzure/lab/artmarket/internal/infra/repository/db"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// 測試用 in-memory sqlite
func newTestDbDao(t *testing.T) *db.DbDao {
	conn, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// in-memory db 綁在單一連線上, 不能讓 pool 開出第二條
	sqlDB, err := conn.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	dbDao := db.NewDbDao(conn)
	require.NoError(t, dbDao.InitMigrate())
	return dbDao
}

func cleanTables(dbDao *db.DbDao) {
	dbDao.Exec("DELETE FROM payments")
	dbDao.Exec("DELETE FROM orders")
	dbDao.Exec("DELETE FROM cart_items")
	dbDao.Exec("DELETE FROM carts")
	dbDao.Exec("DELETE FROM artworks")
	dbDao.Exec("DELETE FROM users")
}
