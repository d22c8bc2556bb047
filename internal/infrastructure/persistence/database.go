package persistence

import (
	"fmt"

	"github.com/rangipos/terminal/internal/infrastructure/config"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Database wraps the local SQLite connection used for durable terminal state
type Database struct {
	DB *gorm.DB
}

// NewDatabase opens the terminal's local database and runs migrations
func NewDatabase(cfg *config.StorageConfig) (*Database, error) {
	return NewDatabaseWithLogger(cfg, gormlogger.Default.LogMode(gormlogger.Warn))
}

// NewDatabaseWithLogger opens the local database with a custom GORM logger
func NewDatabaseWithLogger(cfg *config.StorageConfig, gormLog gormlogger.Interface) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger: gormLog,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open local database: %w", err)
	}

	if err := db.AutoMigrate(&sessionRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate local database: %w", err)
	}

	return &Database{DB: db}, nil
}

// Ping verifies the underlying connection is usable
func (d *Database) Ping() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// Close closes the underlying database connection
func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
