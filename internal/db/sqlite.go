package db

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/balkashynov/safehours/internal/models"
)

// SQLiteSlot stores slots as rows of a single sqlite table
type SQLiteSlot struct {
	db *gorm.DB
}

// OpenSQLite sets up the database connection and runs migrations
func OpenSQLite(path string) (*SQLiteSlot, error) {
	// Ensure the directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create safehours directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Quiet by default
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&models.KeyValue{}); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteSlot{db: db}, nil
}

// Get returns the value stored under key
func (s *SQLiteSlot) Get(key string) ([]byte, error) {
	var kv models.KeyValue
	err := s.db.Where("name = ?", key).First(&kv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return kv.Value, nil
}

// Put overwrites the value stored under key
func (s *SQLiteSlot) Put(key string, value []byte) error {
	kv := models.KeyValue{Key: key, Value: value}
	return s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&kv).Error
}

// Close closes the database connection
func (s *SQLiteSlot) Close() error {
	if s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
