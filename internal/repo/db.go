package repo

import (
	"TodoAuth/internal/model"
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

// InitDB открывает БД по DSN и накатывает миграции.
// DSN с префиксом postgres:// или postgresql:// открывается в Postgres, остальные как путь/URI SQLite (modernc, без cgo).
func InitDB(dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{
		// запросы не логируем, ошибки возвращаются наверх
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	}

	var dial gorm.Dialector
	isSQLite := false
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		dial = postgres.Open(dsn)
	default:
		dial = gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
		isSQLite = true
	}

	db, err := gorm.Open(dial, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if isSQLite {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		// SQLite пишет одним соединением: вставки сериализуются, id не пересекаются
		sqlDB.SetMaxOpenConns(1)
	}

	if err := db.AutoMigrate(&model.User{}, &model.Todo{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return db, nil
}
