package services

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/SerfiMolotov/MissDelice/entity"
)

// CategoryRepo is the persistence surface the service needs; the gorm
// repository satisfies it, tests use an in-memory fake.
type CategoryRepo interface {
	List() ([]entity.Category, error)
	GetByID(id uint) (*entity.Category, error)
	Create(c *entity.Category) error
	Update(c *entity.Category) error
	Delete(id uint) error
	IDsInOrder() ([]uint, error)
	PersistOrder(ids []uint) error
}

type CategoryService struct {
	Repo CategoryRepo
}

func NewCategoryService(repo CategoryRepo) *CategoryService {
	return &CategoryService{Repo: repo}
}

var nonSlugRe = regexp.MustCompile(`[^\w-]+`)

// Slugify derives the URL slug from a title: lowercased, spaces to hyphens,
// everything outside word characters and hyphens stripped.
func Slugify(title string) string {
	s := strings.ToLower(title)
	s = strings.ReplaceAll(s, " ", "-")
	return nonSlugRe.ReplaceAllString(s, "")
}

func (s *CategoryService) List() ([]entity.Category, error) {
	return s.Repo.List()
}

func (s *CategoryService) Get(id uint) (*entity.Category, error) {
	return s.Repo.GetByID(id)
}

func (s *CategoryService) Create(title, description, imageFilename string) (*entity.Category, error) {
	if title == "" {
		return nil, &ValidationError{Fields: []string{"title"}}
	}
	c := &entity.Category{
		Title:       title,
		Slug:        Slugify(title),
		Description: description,
		ImageURL:    imageFilename,
	}
	if err := s.Repo.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Update edits a category in place. The slug is recomputed only when a new
// title comes in; an empty newImage keeps the old file. The previous image
// filename is returned so the caller can unlink it after a replacement.
func (s *CategoryService) Update(id uint, title, description, newImage string) (*entity.Category, string, error) {
	c, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, "", err
	}

	oldImage := ""
	if title != "" {
		c.Title = title
		c.Slug = Slugify(title)
	}
	c.Description = description
	if newImage != "" {
		oldImage = c.ImageURL
		c.ImageURL = newImage
	}

	if err := s.Repo.Update(c); err != nil {
		return nil, "", err
	}
	return c, oldImage, nil
}

// Delete removes the category (its supplements cascade with it) and returns
// the deleted row so the caller can clean up the image file.
func (s *CategoryService) Delete(id uint) (*entity.Category, error) {
	c, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.Delete(id); err != nil {
		return nil, err
	}
	return c, nil
}

// Reorder durably records a full new arrangement. The ids must be exactly
// the stored set; display_order is then rewritten as 0..N-1, which keeps the
// sequence dense whatever happened before. Retrying the same arrangement is
// idempotent.
func (s *CategoryService) Reorder(ids []uint) error {
	current, err := s.Repo.IDsInOrder()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReorderPersistFailed, err)
	}
	if !samePermutation(ids, current) {
		return &ValidationError{Fields: []string{"new_order"}}
	}
	if err := s.Repo.PersistOrder(ids); err != nil {
		return fmt.Errorf("%w: %v", ErrReorderPersistFailed, err)
	}
	return nil
}

// Move relocates one category from fromIndex to toIndex, the server-side
// twin of the admin's drag-and-drop, then persists like Reorder.
func (s *CategoryService) Move(movedID uint, fromIndex, toIndex int) error {
	current, err := s.Repo.IDsInOrder()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReorderPersistFailed, err)
	}
	next, err := moveID(current, movedID, fromIndex, toIndex)
	if err != nil {
		return err
	}
	if err := s.Repo.PersistOrder(next); err != nil {
		return fmt.Errorf("%w: %v", ErrReorderPersistFailed, err)
	}
	return nil
}

// moveID removes movedID at fromIndex and reinserts it at toIndex.
func moveID(ids []uint, movedID uint, fromIndex, toIndex int) ([]uint, error) {
	if fromIndex < 0 || fromIndex >= len(ids) || toIndex < 0 || toIndex >= len(ids) {
		return nil, &ValidationError{Fields: []string{"from", "to"}}
	}
	if ids[fromIndex] != movedID {
		return nil, &ValidationError{Fields: []string{"moved_id"}}
	}
	out := make([]uint, 0, len(ids))
	out = append(out, ids[:fromIndex]...)
	out = append(out, ids[fromIndex+1:]...)
	out = append(out[:toIndex], append([]uint{movedID}, out[toIndex:]...)...)
	return out, nil
}

func samePermutation(a, b []uint) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[uint]int, len(a))
	for _, id := range a {
		seen[id]++
	}
	for _, id := range b {
		seen[id]--
		if seen[id] < 0 {
			return false
		}
	}
	return true
}
