// Copyright (c) 2025 John Dewey

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.

// Package storage opens and migrates the backing Postgres database.
package storage

import (
	"context"
	"fmt"
	"log/slog"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/retr0h/labresult/internal/config"
	"github.com/retr0h/labresult/internal/result"
	"github.com/retr0h/labresult/internal/user"
)

// Open connects to Postgres and returns a ready handle. TranslateError is
// enabled so driver unique-violation errors surface as
// gorm.ErrDuplicatedKey, which the stores depend on.
func Open(
	appConfig config.Database,
	logger *slog.Logger,
) (*gorm.DB, error) {
	gormLogLevel := gormlogger.Warn
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		gormLogLevel = gormlogger.Info
	}

	db, err := gorm.Open(postgres.Open(appConfig.DSN), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormLogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("obtaining sql handle: %w", err)
	}

	sqlDB.SetMaxOpenConns(appConfig.MaxOpenConns)

	logger.Info(
		"database connected",
		slog.Int("max_open_conns", appConfig.MaxOpenConns),
	)

	return db, nil
}

// Migrate creates or updates the schema for every managed entity.
func Migrate(
	db *gorm.DB,
	logger *slog.Logger,
) error {
	if err := db.AutoMigrate(
		&user.User{},
		&result.LabResult{},
	); err != nil {
		return fmt.Errorf("migrating schema: %w", err)
	}

	logger.Info("database migrated")

	return nil
}
