// Package testutil 提供测试辅助工具
package testutil

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ashwinyue/docqa/internal/model"
)

// NewTestDB 创建内存数据库并完成建表
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(model.AllModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}
