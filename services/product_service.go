package services

import (
	"math"
	"strconv"

	"github.com/SerfiMolotov/MissDelice/entity"
	"github.com/SerfiMolotov/MissDelice/repository"
)

type ProductService struct {
	Repo *repository.ProductRepository
}

func NewProductService(repo *repository.ProductRepository) *ProductService {
	return &ProductService{Repo: repo}
}

func (s *ProductService) List() ([]repository.ProductRow, error) {
	return s.Repo.List()
}

func (s *ProductService) GetByID(id uint) (*entity.Product, error) {
	return s.Repo.GetByID(id)
}

// ProductForm carries the admin form fields as they arrive in multipart:
// price in euros ("3.50") and booleans as "true"/"false" strings.
type ProductForm struct {
	Name         string `form:"name"`
	Description  string `form:"description"`
	Price        string `form:"price"`
	CategoryID   string `form:"category_id"`
	IsOutOfStock string `form:"is_out_of_stock"`
	IsNew        string `form:"is_new"`
	IsFeatured   string `form:"is_featured"`
}

func (s *ProductService) Create(in ProductForm, imageFilename string) (*entity.Product, error) {
	var missing []string
	if in.Name == "" {
		missing = append(missing, "name")
	}
	price, priceOK := parseEuros(in.Price)
	if !priceOK {
		missing = append(missing, "price")
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Fields: missing}
	}

	p := &entity.Product{
		Name:         in.Name,
		Description:  in.Description,
		Price:        price,
		CategoryID:   parseCategoryID(in.CategoryID),
		IsOutOfStock: in.IsOutOfStock == "true",
		IsNew:        in.IsNew == "true",
		IsFeatured:   in.IsFeatured == "true",
		ImageURL:     imageFilename,
	}
	if err := s.Repo.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Update mirrors Create; the previous image filename is returned when a new
// upload replaces it.
func (s *ProductService) Update(id uint, in ProductForm, newImage string) (*entity.Product, string, error) {
	p, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, "", err
	}

	var missing []string
	if in.Name == "" {
		missing = append(missing, "name")
	}
	price, priceOK := parseEuros(in.Price)
	if !priceOK {
		missing = append(missing, "price")
	}
	if len(missing) > 0 {
		return nil, "", &ValidationError{Fields: missing}
	}

	p.Name = in.Name
	p.Description = in.Description
	p.Price = price
	p.CategoryID = parseCategoryID(in.CategoryID)
	p.IsOutOfStock = in.IsOutOfStock == "true"
	p.IsNew = in.IsNew == "true"
	p.IsFeatured = in.IsFeatured == "true"

	oldImage := ""
	if newImage != "" {
		oldImage = p.ImageURL
		p.ImageURL = newImage
	}

	if err := s.Repo.Update(p); err != nil {
		return nil, "", err
	}
	return p, oldImage, nil
}

func (s *ProductService) Delete(id uint) (*entity.Product, error) {
	p, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.Delete(id); err != nil {
		return nil, err
	}
	return p, nil
}

// parseEuros turns "3.50" into 350 cents. Negative prices are rejected.
func parseEuros(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 {
		return 0, false
	}
	return int64(math.Round(f * 100)), true
}

func parseCategoryID(s string) *uint {
	if s == "" || s == "null" {
		return nil
	}
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return nil
	}
	id := uint(n)
	return &id
}
