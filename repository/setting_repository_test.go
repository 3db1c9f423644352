package repository

import (
	"testing"

	"github.com/SerfiMolotov/MissDelice/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func settingsDB(t *testing.T) *SettingRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&entity.Setting{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewSettingRepository(db)
}

func TestSettingSetAndGet(t *testing.T) {
	repo := settingsDB(t)

	if err := repo.Set("contact_email", "bonjour@missdelice.fr"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := repo.Get("contact_email")
	if err != nil || got != "bonjour@missdelice.fr" {
		t.Fatalf("Get = (%q, %v)", got, err)
	}

	// Same key again is an update, not a second row.
	if err := repo.Set("contact_email", "commandes@missdelice.fr"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	rows, err := repo.All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(rows) != 1 || rows[0].Value != "commandes@missdelice.fr" {
		t.Fatalf("got rows %+v", rows)
	}
}

func TestSettingSetMany(t *testing.T) {
	repo := settingsDB(t)

	if err := repo.Set("phone", "02 35 00 00 00"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	err := repo.SetMany(map[string]string{
		"phone":         "02 35 11 11 11",
		"contact_email": "bonjour@missdelice.fr",
		"instagram":     "@missdelice",
	})
	if err != nil {
		t.Fatalf("SetMany: %v", err)
	}

	rows, err := repo.All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3: %+v", len(rows), rows)
	}
	if got, _ := repo.Get("phone"); got != "02 35 11 11 11" {
		t.Errorf("phone = %q, want updated value", got)
	}
}
