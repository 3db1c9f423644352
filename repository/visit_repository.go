package repository

import (
	"github.com/SerfiMolotov/MissDelice/entity"
	"gorm.io/gorm"
)

type VisitRepository struct{ DB *gorm.DB }

func NewVisitRepository(db *gorm.DB) *VisitRepository { return &VisitRepository{DB: db} }

func (r *VisitRepository) Record(v *entity.Visit) error {
	return r.DB.Create(v).Error
}

// DayCount is one point of the traffic chart.
type DayCount struct {
	Date  string `json:"date"` // YYYYMMDD
	Users int    `json:"users"`
}

func (r *VisitRepository) ViewsSince(day string) (int64, error) {
	var n int64
	err := r.DB.Model(&entity.Visit{}).Where("day >= ?", day).Count(&n).Error
	return n, err
}

func (r *VisitRepository) UniqueVisitorsSince(day string) (int64, error) {
	var n int64
	err := r.DB.Model(&entity.Visit{}).
		Where("day >= ?", day).
		Distinct("visitor_id").Count(&n).Error
	return n, err
}

func (r *VisitRepository) DailyVisitorsSince(day string) ([]DayCount, error) {
	var rows []DayCount
	err := r.DB.Raw(`
		SELECT day AS date, COUNT(DISTINCT visitor_id) AS users
		  FROM visits
		 WHERE day >= ?
		 GROUP BY day
		 ORDER BY day ASC
	`, day).Scan(&rows).Error
	return rows, err
}
