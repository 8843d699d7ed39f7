package repository

import (
	"testing"
	"time"

	"github.com/ComradeCold/pdf-finder-project/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A second pool connection to :memory: would see a different,
	// empty database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Favorite{}, &models.Click{}))
	return db
}

func TestFavoriteAddIsIdempotent(t *testing.T) {
	repo := NewFavoriteRepository(newTestDB(t))

	require.NoError(t, repo.Add("alice", "https://a.com/x.pdf"))
	require.NoError(t, repo.Add("alice", "https://a.com/x.pdf"))

	list, err := repo.ListByUserKey("alice")
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "https://a.com/x.pdf", list[0].LinkURL)
}

func TestFavoritesAreScopedByUserKey(t *testing.T) {
	repo := NewFavoriteRepository(newTestDB(t))

	require.NoError(t, repo.Add("alice", "https://a.com/x.pdf"))

	list, err := repo.ListByUserKey("bob")
	require.NoError(t, err)
	require.Empty(t, list)

	list, err = repo.ListByUserKey("alice")
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestFavoriteRemoveMissingRowSucceeds(t *testing.T) {
	repo := NewFavoriteRepository(newTestDB(t))

	require.NoError(t, repo.Add("alice", "https://a.com/x.pdf"))
	require.NoError(t, repo.Remove("alice", "https://a.com/never-added.pdf"))
	require.NoError(t, repo.Remove("bob", "https://a.com/x.pdf"))

	list, err := repo.ListByUserKey("alice")
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestFavoriteRemoveDeletesOnlyOwnRow(t *testing.T) {
	repo := NewFavoriteRepository(newTestDB(t))

	require.NoError(t, repo.Add("alice", "https://a.com/x.pdf"))
	require.NoError(t, repo.Add("bob", "https://a.com/x.pdf"))
	require.NoError(t, repo.Remove("alice", "https://a.com/x.pdf"))

	list, err := repo.ListByUserKey("alice")
	require.NoError(t, err)
	require.Empty(t, list)

	list, err = repo.ListByUserKey("bob")
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestFavoriteListOrderedMostRecentFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewFavoriteRepository(db)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i, url := range []string{"https://a.com/old.pdf", "https://a.com/mid.pdf", "https://a.com/new.pdf"} {
		require.NoError(t, db.Create(&models.Favorite{
			UserKey:     "alice",
			LinkURL:     url,
			FavoritedAt: base.Add(time.Duration(i) * time.Hour),
		}).Error)
	}

	list, err := repo.ListByUserKey("alice")
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, "https://a.com/new.pdf", list[0].LinkURL)
	require.Equal(t, "https://a.com/mid.pdf", list[1].LinkURL)
	require.Equal(t, "https://a.com/old.pdf", list[2].LinkURL)
}
