package database

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	globalDB *gorm.DB
	dbMutex  sync.RWMutex
)

// GetDB returns the current database connection
func GetDB() *gorm.DB {
	dbMutex.RLock()
	defer dbMutex.RUnlock()
	return globalDB
}

// SetDB sets the global database connection
func SetDB(db *gorm.DB) {
	dbMutex.Lock()
	defer dbMutex.Unlock()
	globalDB = db
}

// IsConnected returns true if the database handle is usable
func IsConnected(db *gorm.DB) bool {
	if db == nil {
		return false
	}
	sqlDB, err := db.DB()
	if err != nil {
		return false
	}
	return sqlDB.Ping() == nil
}

// Config holds database configuration
type Config struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// New creates a new database connection
func New(cfg Config) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// NewAsync creates a database connection asynchronously with retries.
// The server starts serving /health before the database is reachable.
// onReady runs once after the connection is established and migrated,
// so callers can wire workers that need a live handle.
func NewAsync(cfg Config, retryInterval time.Duration, log *zap.Logger, onReady func(db *gorm.DB)) {
	go retryConnect(New, cfg, retryInterval, log, onReady)
}

func retryConnect(open func(Config) (*gorm.DB, error), cfg Config, retryInterval time.Duration, log *zap.Logger, onReady func(db *gorm.DB)) {
	for {
		db, err := open(cfg)
		if err == nil {
			if err := AutoMigrate(db); err != nil {
				log.Warn("Failed to run database migrations", zap.Error(err))
			}
			SetDB(db)
			log.Info("Database connected successfully (async)")
			if onReady != nil {
				onReady(db)
			}
			return
		}
		log.Warn("Failed to connect to database, retrying",
			zap.Duration("retry_interval", retryInterval),
			zap.Error(err),
		)
		time.Sleep(retryInterval)
	}
}

// Close closes the database connection
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}
