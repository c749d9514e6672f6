package config

import (
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/cironunes/funretro-api/models"
)

var Database *gorm.DB

func Connect() error {
	var dialector gorm.Dialector
	if dbURL := os.Getenv("DB_URL"); dbURL != "" {
		dialector = postgres.Open(dbURL)
	} else {
		// Local development runs against a sqlite file
		dialector = sqlite.Open("funretro.db")
	}

	var err error
	Database, err = gorm.Open(dialector, &gorm.Config{
		// Parent deletes leave children in place; constraints would
		// reject them.
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		panic("failed to connect database")
	}

	err = Database.AutoMigrate(
		&models.User{},
		&models.Board{},
		&models.Section{},
		&models.Card{},
		&models.Comment{},
		&models.Session{},
	)
	if err != nil {
		panic("failed to auto migrate database")
	}

	return nil
}
