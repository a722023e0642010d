package dao

import (
	"fmt"

	"gorm.io/gorm"
)

func InitTables(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&User{},
		&Location{},
		&Category{},
		&Item{},
		&Inventory{},
		&Movement{},
	); err != nil {
		return fmt.Errorf("db.AutoMigrate -> %w", err)
	}

	return nil
}

// dropAllTables is used by the integration tests to start from an empty schema.
func dropAllTables(db *gorm.DB) error {
	return db.Migrator().DropTable(
		&Movement{},
		&Inventory{},
		&Item{},
		&Category{},
		&Location{},
		&User{},
	)
}
