package repository

import (
	"github.com/SerfiMolotov/MissDelice/entity"
	"gorm.io/gorm"
)

type ProductRepository struct{ DB *gorm.DB }

func NewProductRepository(db *gorm.DB) *ProductRepository { return &ProductRepository{DB: db} }

// ProductRow is a product joined with its category title for list views.
type ProductRow struct {
	entity.Product
	CategoryTitle string `json:"category_title"`
}

func (r *ProductRepository) List() ([]ProductRow, error) {
	var rows []ProductRow
	err := r.DB.Model(&entity.Product{}).
		Select("products.*, categories.title AS category_title").
		Joins("LEFT JOIN categories ON categories.id = products.category_id").
		Order("products.display_order ASC, products.id DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *ProductRepository) GetByID(id uint) (*entity.Product, error) {
	var p entity.Product
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) Create(p *entity.Product) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var max *int
		if err := tx.Model(&entity.Product{}).
			Select("MAX(display_order)").Scan(&max).Error; err != nil {
			return err
		}
		if max != nil {
			p.DisplayOrder = *max + 1
		}
		return tx.Create(p).Error
	})
}

func (r *ProductRepository) Update(p *entity.Product) error {
	return r.DB.Save(p).Error
}

func (r *ProductRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Product{}, id).Error
}
