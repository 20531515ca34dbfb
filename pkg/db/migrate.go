package db

import (
	"gorm.io/gorm"

	"github.com/Greenkack/pvoffer-backend/pkg/db/models"
)

// AutoMigrate creates or upgrades the catalog schema. Existing databases
// produced by earlier releases share the same table and column names, so the
// migration is additive.
func AutoMigrate(conn *gorm.DB) error {
	return conn.AutoMigrate(
		&models.SolarModule{},
		&models.Inverter{},
		&models.Storage{},
		&models.Accessory{},
		&models.Company{},
		&models.Project{},
	)
}
