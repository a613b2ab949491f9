package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"jobboard/backend/internal/models"
)

// Connect opens the postgres connection and migrates the schema. The handle
// is returned to the caller instead of living in a package global so every
// consumer gets it injected.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.Company{},
		&models.User{},
		&models.Job{},
		&models.Application{},
	); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return db, nil
}
