package config

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"

	"github.com/samkiyya/SAM-Fleet/models"
)

func Migrations(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "20260901_create_vehicles",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.Vehicle{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("vehicles")
			},
		},
	})
	return m.Migrate()
}
