package database

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"tareas/internal/config"
	"tareas/internal/model"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

var ErrUnknownDriver = errors.New("unknown database driver")

// Open connects gorm to the configured backend. Driver errors are translated
// so repositories can match gorm.ErrDuplicatedKey.
func Open(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	}

	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.DSN())
	case config.DriverSQLite:
		dialector = SQLite(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if cfg.DBDriver == config.DriverSQLite {
		// one connection keeps ":memory:" databases shared and avoids SQLITE_BUSY
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}

// Migrate brings the schema up to date. Postgres runs the embedded SQL
// migrations through golang-migrate; sqlite falls back to gorm AutoMigrate.
func Migrate(cfg *config.Config, db *gorm.DB) error {
	if cfg.DBDriver == config.DriverSQLite {
		return AutoMigrate(db)
	}

	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("open migrations: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, cfg.MigrationURL())
	if err != nil {
		return fmt.Errorf("init migrate: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&model.User{}, &model.Task{})
}
