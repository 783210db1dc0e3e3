// Package repository provides the database access layer.
package repository

import (
	"context"
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/userd/userd/internal/model"
)

// Repository provides database access methods backed by GORM.
type Repository struct {
	db *gorm.DB
}

// New opens the database, migrates the schema, and verifies connectivity.
// A non-empty databaseURL selects PostgreSQL; otherwise an embedded SQLite
// database at sqlitePath is used.
func New(ctx context.Context, databaseURL, sqlitePath string) (*Repository, error) {
	var dialector gorm.Dialector
	if databaseURL != "" {
		dialector = postgres.Open(databaseURL)
	} else {
		dialector = sqlite.Open(sqlitePath)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}

	// Connection pool settings. SQLite gets a single connection: writes
	// serialize anyway, and an in-memory database lives only as long as
	// its connection.
	if databaseURL != "" {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(2)
	} else {
		sqlDB.SetMaxOpenConns(1)
	}

	if err := db.WithContext(ctx).AutoMigrate(&model.User{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	r := &Repository{db: db}

	// Verify connection
	if err := r.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return r, nil
}

// Ping checks database connectivity.
func (r *Repository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close closes the underlying database connection pool.
func (r *Repository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// DB returns the underlying GORM handle.
// Use sparingly - prefer adding methods to Repository.
func (r *Repository) DB() *gorm.DB {
	return r.db
}
