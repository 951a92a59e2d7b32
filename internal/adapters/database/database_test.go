package database

import (
	"testing"

	"codepulse/internal/core/blogpost"
	"codepulse/internal/core/category"
	"codepulse/internal/core/image"
	"codepulse/internal/core/user"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB gives each test its own in-memory sqlite database with the
// full schema, junction table included. A single connection keeps the
// in-memory database alive for the whole test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&category.Category{},
		&blogpost.BlogPost{},
		&image.BlogImage{},
		&user.User{},
	))
	return db
}

// junctionRowsForPost counts post_categories rows for one post id.
func junctionRowsForPost(t *testing.T, db *gorm.DB, postID string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Table("post_categories").
		Where("blog_post_id = ?", postID).Count(&n).Error)
	return n
}

// junctionRowsForCategory counts post_categories rows for one category id.
func junctionRowsForCategory(t *testing.T, db *gorm.DB, categoryID string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Table("post_categories").
		Where("category_id = ?", categoryID).Count(&n).Error)
	return n
}
