package configs

import (
	"log"

	"github.com/SerfiMolotov/MissDelice/entity"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

// ConnectionDB opens the database selected by DB_DRIVER. Production runs
// MySQL; sqlite is the zero-setup default for local work.
func ConnectionDB(cfg *Config) {
	var (
		database *gorm.DB
		err      error
	)
	switch cfg.DBDriver {
	case "mysql":
		database, err = gorm.Open(mysql.Open(cfg.DBSource), &gorm.Config{})
	default:
		database, err = gorm.Open(sqlite.Open(cfg.DBSource), &gorm.Config{})
	}
	if err != nil {
		log.Fatalf("failed to connect database (%s): %v", cfg.DBDriver, err)
	}
	db = database
}

func SetupDatabase() {
	err := db.AutoMigrate(
		&entity.User{},
		&entity.Category{}, &entity.Product{}, &entity.Supplement{},
		&entity.OpeningHour{}, &entity.Setting{},
		&entity.Visit{},
	)
	if err != nil {
		log.Fatalf("migration failed: %v", err)
	}
}
