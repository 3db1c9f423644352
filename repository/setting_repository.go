package repository

import (
	"github.com/SerfiMolotov/MissDelice/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingRepository struct{ DB *gorm.DB }

func NewSettingRepository(db *gorm.DB) *SettingRepository { return &SettingRepository{DB: db} }

func (r *SettingRepository) All() ([]entity.Setting, error) {
	var rows []entity.Setting
	err := r.DB.Order("key ASC").Find(&rows).Error
	return rows, err
}

func (r *SettingRepository) Get(key string) (string, error) {
	var row entity.Setting
	if err := r.DB.Where("key = ?", key).First(&row).Error; err != nil {
		return "", err
	}
	return row.Value, nil
}

func (r *SettingRepository) Set(key, value string) error {
	return upsertSetting(r.DB, key, value)
}

// SetMany upserts a batch of keys in one transaction; a failure on any key
// leaves all settings as they were.
func (r *SettingRepository) SetMany(values map[string]string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		for key, value := range values {
			if err := upsertSetting(tx, key, value); err != nil {
				return err
			}
		}
		return nil
	})
}

func upsertSetting(db *gorm.DB, key, value string) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entity.Setting{Key: key, Value: value}).Error
}
