package repository

import (
	"github.com/SerfiMolotov/MissDelice/entity"
	"gorm.io/gorm"
)

type SupplementRepository struct{ DB *gorm.DB }

func NewSupplementRepository(db *gorm.DB) *SupplementRepository {
	return &SupplementRepository{DB: db}
}

func (r *SupplementRepository) ListByCategory(categoryID uint) ([]entity.Supplement, error) {
	var sups []entity.Supplement
	err := r.DB.Where("category_id = ?", categoryID).Order("id ASC").Find(&sups).Error
	return sups, err
}

func (r *SupplementRepository) GetByID(id uint) (*entity.Supplement, error) {
	var s entity.Supplement
	if err := r.DB.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SupplementRepository) Create(s *entity.Supplement) error {
	return r.DB.Create(s).Error
}

func (r *SupplementRepository) Update(s *entity.Supplement) error {
	return r.DB.Save(s).Error
}

func (r *SupplementRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Supplement{}, id).Error
}
