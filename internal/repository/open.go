package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/snnyvrz/shelfshare/apps/bookshelf-api/internal/config"
	"github.com/snnyvrz/shelfshare/apps/bookshelf-api/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	defaultMaxAttempts     = 5
	defaultDelayBetweenTry = time.Second
)

// Open builds the book store selected by cfg.StoreDriver. The returned close
// function releases any underlying connections.
func Open(ctx context.Context, cfg *config.Config, log *slog.Logger) (BookRepository, func() error, error) {
	switch cfg.StoreDriver {
	case config.StoreMemory, "":
		log.Info("using in-memory book store")
		return NewMemoryBookRepository(), func() error { return nil }, nil
	case config.StoreSQLite:
		db, err := connectWithRetry(ctx, cfg.SQLiteDSN, log)
		if err != nil {
			return nil, nil, err
		}
		sqlDB, err := migrate(ctx, db)
		if err != nil {
			return nil, nil, err
		}
		log.Info("using sqlite book store", "dsn", cfg.SQLiteDSN)
		return NewGormBookRepository(db), sqlDB.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

// migrate brings the schema up to date. The connection is closed when it
// fails, since no caller will get to use it.
func migrate(ctx context.Context, db *gorm.DB) (*sql.DB, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	if err := db.WithContext(ctx).AutoMigrate(&model.Book{}); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("migrate books: %w", err)
	}
	return sqlDB, nil
}

func connectWithRetry(ctx context.Context, dsn string, log *slog.Logger) (*gorm.DB, error) {
	var err error

	for attempt := 1; attempt <= defaultMaxAttempts; attempt++ {
		var db *gorm.DB
		db, err = openSQLite(ctx, dsn)
		if err == nil {
			return db, nil
		}

		log.Warn("store not ready", "attempt", attempt, "max_attempts", defaultMaxAttempts, "error", err)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(defaultDelayBetweenTry):
		}
	}

	return nil, fmt.Errorf("could not open store after %d attempts: %w", defaultMaxAttempts, err)
}

func openSQLite(ctx context.Context, dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// A shared-cache in-memory database lives only as long as one of its
	// connections stays open.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return db, nil
}
