package database

import (
	"fmt"
	"io"

	puresqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// WriteSchema migrates a scratch in-memory SQLite database and writes the
// resulting table definitions, for reviewing model changes.
func WriteSchema(w io.Writer) error {
	db, err := gorm.Open(puresqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return err
	}
	defer Close(db)

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := AutoMigrate(db); err != nil {
		return err
	}

	var tables []string
	if err := db.Raw("SELECT name FROM sqlite_master WHERE type = 'table' ORDER BY name").Scan(&tables).Error; err != nil {
		return err
	}

	for _, table := range tables {
		var ddl string
		if err := db.Raw("SELECT sql FROM sqlite_master WHERE name = ?", table).Scan(&ddl).Error; err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "\n=== Table: %s ===\n%s\n", table, ddl); err != nil {
			return err
		}
	}
	return nil
}
