package configs

import (
	"log"

	"github.com/SerfiMolotov/MissDelice/entity"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the first back-office account from env.
func SeedAdmin() error {
	db := DB()
	username := getEnv("ADMIN_USERNAME", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if username == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_USERNAME/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("username = ?", username).Count(&count)
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{Username: username, Password: string(hash)}
	return db.Create(&admin).Error
}

// SeedOpeningHours inserts the seven weekday rows once. Defaults mirror the
// shop's real schedule: open 14h-18h, closed on Tuesday.
func SeedOpeningHours() error {
	db := DB()

	days := []entity.OpeningHour{
		{DayName: "Lundi", DayOrder: 1, HoursText: "14h00 - 18h00"},
		{DayName: "Mardi", DayOrder: 2, IsClosed: true},
		{DayName: "Mercredi", DayOrder: 3, HoursText: "14h00 - 18h00"},
		{DayName: "Jeudi", DayOrder: 4, HoursText: "14h00 - 18h00"},
		{DayName: "Vendredi", DayOrder: 5, HoursText: "14h00 - 18h00"},
		{DayName: "Samedi", DayOrder: 6, HoursText: "14h00 - 18h00"},
		{DayName: "Dimanche", DayOrder: 7, HoursText: "14h00 - 18h00"},
	}
	for _, d := range days {
		var row entity.OpeningHour
		if err := db.Where(entity.OpeningHour{DayOrder: d.DayOrder}).
			Attrs(d).FirstOrCreate(&row).Error; err != nil {
			return err
		}
	}

	log.Println("opening hours seeded")
	return nil
}
