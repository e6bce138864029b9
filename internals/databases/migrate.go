package database

import (
	"embed"
	"fmt"
	"log"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate applies the embedded goose migrations against the connected DB.
func Migrate() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("migrate: obtain sql.DB: %w", err)
	}

	goose.SetBaseFS(migrationsFS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("migrate: set dialect: %w", err)
	}

	if err := goose.Up(sqlDB, "migrations"); err != nil {
		return fmt.Errorf("migrate: apply: %w", err)
	}

	version, err := goose.GetDBVersion(sqlDB)
	if err == nil {
		log.Printf("[SUCCESS] Migrations applied, schema version %d", version)
	}
	return nil
}
