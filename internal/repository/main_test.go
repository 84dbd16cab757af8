// internal/repository/main_test.go
package repository

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupRepoDB はマイグレーション済みのインメモリDBを返します。
// テストごとに別名を使って他テストと分離する
func setupRepoDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true, // 一意制約違反を gorm.ErrDuplicatedKey に変換する
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	return db
}
