package database

import (
	"github.com/ComradeCold/pdf-finder-project/config"
	"github.com/ComradeCold/pdf-finder-project/internal/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func New(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	return db, nil
}

// AutoMigrate creates the favorites and clicks tables if missing.
// Safe to run on every start.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Favorite{},
		&models.Click{},
	)
}
