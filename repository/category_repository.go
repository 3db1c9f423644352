package repository

import (
	"github.com/SerfiMolotov/MissDelice/entity"
	"gorm.io/gorm"
)

type CategoryRepository struct{ DB *gorm.DB }

func NewCategoryRepository(db *gorm.DB) *CategoryRepository { return &CategoryRepository{DB: db} }

func (r *CategoryRepository) List() ([]entity.Category, error) {
	var cats []entity.Category
	err := r.DB.Order("display_order ASC").Find(&cats).Error
	return cats, err
}

func (r *CategoryRepository) GetByID(id uint) (*entity.Category, error) {
	var c entity.Category
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// Create appends the category at the end of the display order.
func (r *CategoryRepository) Create(c *entity.Category) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var max *int
		if err := tx.Model(&entity.Category{}).
			Select("MAX(display_order)").Scan(&max).Error; err != nil {
			return err
		}
		if max != nil {
			c.DisplayOrder = *max + 1
		}
		return tx.Create(c).Error
	})
}

func (r *CategoryRepository) Update(c *entity.Category) error {
	return r.DB.Save(c).Error
}

// Delete removes the row and its supplements in one transaction. The caller
// deals with the image file.
func (r *CategoryRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", id).Delete(&entity.Supplement{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Category{}, id).Error
	})
}

// IDsInOrder returns all category ids sorted by display order.
func (r *CategoryRepository) IDsInOrder() ([]uint, error) {
	var ids []uint
	err := r.DB.Model(&entity.Category{}).
		Order("display_order ASC").Pluck("id", &ids).Error
	return ids, err
}

// PersistOrder rewrites display_order = index for the given arrangement,
// all rows or none.
func (r *CategoryRepository) PersistOrder(ids []uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		for index, id := range ids {
			if err := tx.Model(&entity.Category{}).
				Where("id = ?", id).
				Update("display_order", index).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
