package config

// Подключение к PostgreSQL и запуск миграций.
//
// Соединение открывается один раз при старте сервера и передаётся
// репозиториям явно (без глобальной переменной).

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"go.uber.org/zap"

	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v4/stdlib"
)

// DriverName — имя драйвера database/sql, зарегистрированного pgx/stdlib.
const DriverName = "pgx"

// OpenDB открывает пул соединений по DSN, настраивает его и проверяет
// доступность базы (Ping). При включённых миграциях применяет их.
//
// Вызывающая сторона (main) завершает процесс, если вернулась ошибка.
func OpenDB(ctx context.Context, cfg *Config, log *zap.SugaredLogger) (*sql.DB, error) {
	db, err := sql.Open(DriverName, cfg.DB.DSN)
	if err != nil {
		log.Errorf("error to connect db: %v", err)
		return nil, err
	}

	ConfigurePool(db, cfg.DB)

	if err := db.PingContext(ctx); err != nil {
		log.Errorf("error check db connection: %v", err)
		db.Close()
		return nil, err
	}

	if cfg.Migrations.Enabled {
		if err := Migrate(db, cfg.Migrations.Path); err != nil {
			log.Errorf("error applying migrations: %v", err)
			db.Close()
			return nil, err
		}
		log.Info("migrations applied successfully")
	}

	log.Info("database connected")
	return db, nil
}

// ConfigurePool применяет лимиты пула из конфига; нулевые значения не трогаем.
func ConfigurePool(db *sql.DB, cfg DBConfig) {
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
	if cfg.ConnMaxIdleTime > 0 {
		db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
	}
}

// Migrate применяет миграции из sourceURL (например file://migrations/postgres).
// Если миграции уже применены, migrate.ErrNoChange ошибкой не считается.
func Migrate(db *sql.DB, sourceURL string) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(sourceURL, "postgres", driver)
	if err != nil {
		return fmt.Errorf("create migrations: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
