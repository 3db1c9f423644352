package services

import (
	"errors"

	"github.com/SerfiMolotov/MissDelice/entity"
	"github.com/SerfiMolotov/MissDelice/repository"
	"gorm.io/gorm"
)

type SupplementService struct {
	Repo       *repository.SupplementRepository
	Categories CategoryRepo
}

func NewSupplementService(repo *repository.SupplementRepository, categories CategoryRepo) *SupplementService {
	return &SupplementService{Repo: repo, Categories: categories}
}

type SupplementIn struct {
	Name  string `json:"name" binding:"required"`
	Price int64  `json:"price" binding:"min=0"`
	Icon  string `json:"icon"`
}

func (s *SupplementService) ListByCategory(categoryID uint) ([]entity.Supplement, error) {
	return s.Repo.ListByCategory(categoryID)
}

func (s *SupplementService) Create(categoryID uint, in SupplementIn) (*entity.Supplement, error) {
	// Supplements cannot exist without their owning category.
	if _, err := s.Categories.GetByID(categoryID); err != nil {
		return nil, err
	}
	sup := &entity.Supplement{
		CategoryID: categoryID,
		Name:       in.Name,
		Price:      in.Price,
		Icon:       in.Icon,
	}
	if err := s.Repo.Create(sup); err != nil {
		return nil, err
	}
	return sup, nil
}

func (s *SupplementService) Update(categoryID, id uint, in SupplementIn) (*entity.Supplement, error) {
	sup, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sup.CategoryID != categoryID {
		return nil, gorm.ErrRecordNotFound
	}
	sup.Name = in.Name
	sup.Price = in.Price
	sup.Icon = in.Icon
	if err := s.Repo.Update(sup); err != nil {
		return nil, err
	}
	return sup, nil
}

func (s *SupplementService) Delete(categoryID, id uint) error {
	sup, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if sup.CategoryID != categoryID {
		return gorm.ErrRecordNotFound
	}
	return s.Repo.Delete(id)
}

// IsNotFound lets controllers translate a catalog miss without importing
// gorm everywhere.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
