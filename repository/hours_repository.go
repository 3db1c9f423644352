package repository

import (
	"github.com/SerfiMolotov/MissDelice/entity"
	"gorm.io/gorm"
)

type HoursRepository struct{ DB *gorm.DB }

func NewHoursRepository(db *gorm.DB) *HoursRepository { return &HoursRepository{DB: db} }

func (r *HoursRepository) List() ([]entity.OpeningHour, error) {
	var rows []entity.OpeningHour
	err := r.DB.Order("day_order ASC").Find(&rows).Error
	return rows, err
}

func (r *HoursRepository) GetByDayOrder(dayOrder int) (*entity.OpeningHour, error) {
	var row entity.OpeningHour
	if err := r.DB.Where("day_order = ?", dayOrder).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// UpdateRows saves the admin's edited rows in one transaction; only the
// closed flag and the hours text are writable.
func (r *HoursRepository) UpdateRows(rows []entity.OpeningHour) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		for _, row := range rows {
			if err := tx.Model(&entity.OpeningHour{}).
				Where("id = ?", row.ID).
				Updates(map[string]any{
					"is_closed":  row.IsClosed,
					"hours_text": row.HoursText,
				}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
