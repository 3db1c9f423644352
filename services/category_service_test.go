package services

import (
	"errors"
	"testing"

	"github.com/SerfiMolotov/MissDelice/entity"
	"gorm.io/gorm"
)

type fakeCategoryRepo struct {
	cats        []entity.Category
	failPersist bool
}

func (f *fakeCategoryRepo) List() ([]entity.Category, error) {
	out := append([]entity.Category(nil), f.cats...)
	return out, nil
}

func (f *fakeCategoryRepo) GetByID(id uint) (*entity.Category, error) {
	for i := range f.cats {
		if f.cats[i].ID == id {
			c := f.cats[i]
			return &c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCategoryRepo) Create(c *entity.Category) error {
	c.ID = uint(len(f.cats) + 1)
	c.DisplayOrder = len(f.cats)
	f.cats = append(f.cats, *c)
	return nil
}

func (f *fakeCategoryRepo) Update(c *entity.Category) error {
	for i := range f.cats {
		if f.cats[i].ID == c.ID {
			f.cats[i] = *c
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeCategoryRepo) Delete(id uint) error {
	for i := range f.cats {
		if f.cats[i].ID == id {
			f.cats = append(f.cats[:i], f.cats[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeCategoryRepo) IDsInOrder() ([]uint, error) {
	ids := make([]uint, len(f.cats))
	for i, c := range f.cats {
		ids[i] = c.ID
	}
	return ids, nil
}

func (f *fakeCategoryRepo) PersistOrder(ids []uint) error {
	if f.failPersist {
		return errors.New("disk on fire")
	}
	byID := make(map[uint]entity.Category, len(f.cats))
	for _, c := range f.cats {
		byID[c.ID] = c
	}
	out := make([]entity.Category, 0, len(ids))
	for i, id := range ids {
		c := byID[id]
		c.DisplayOrder = i
		out = append(out, c)
	}
	f.cats = out
	return nil
}

func seededRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{cats: []entity.Category{
		{ID: 1, Title: "Tartes", DisplayOrder: 0},
		{ID: 2, Title: "Choux", DisplayOrder: 1},
		{ID: 3, Title: "Macarons", DisplayOrder: 2},
	}}
}

func TestSlugify(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Tartes aux pommes", "tartes-aux-pommes"},
		{"Choux & Co", "choux--co"},
		{"MACARONS", "macarons"},
		{"tartes", "tartes"},
	}
	for _, c := range cases {
		if got := Slugify(c.in); got != c.want {
			t.Errorf("Slugify(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestCreateRequiresTitle(t *testing.T) {
	svc := NewCategoryService(seededRepo())

	_, err := svc.Create("", "desc", "")
	ve, ok := AsValidation(err)
	if !ok || len(ve.Fields) != 1 || ve.Fields[0] != "title" {
		t.Fatalf("got %v, want validation on title", err)
	}
}

func TestCreateAppendsAtEnd(t *testing.T) {
	repo := seededRepo()
	svc := NewCategoryService(repo)

	c, err := svc.Create("Galettes des Rois", "", "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if c.Slug != "galettes-des-rois" {
		t.Errorf("got slug %q", c.Slug)
	}
	if c.DisplayOrder != 3 {
		t.Errorf("got display order %d, want 3", c.DisplayOrder)
	}
}

func TestUpdateRecomputesSlugOnNewTitle(t *testing.T) {
	repo := seededRepo()
	svc := NewCategoryService(repo)

	c, _, err := svc.Update(1, "Tartes Fines", "nouvelle", "")
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if c.Slug != "tartes-fines" {
		t.Errorf("got slug %q", c.Slug)
	}

	// Empty title keeps both title and slug.
	c, _, err = svc.Update(1, "", "encore", "")
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if c.Title != "Tartes Fines" || c.Slug != "tartes-fines" {
		t.Errorf("title/slug changed on empty title: %q %q", c.Title, c.Slug)
	}
}

func TestReorderRewritesDense(t *testing.T) {
	repo := seededRepo()
	svc := NewCategoryService(repo)

	if err := svc.Reorder([]uint{3, 1, 2}); err != nil {
		t.Fatalf("Reorder: %v", err)
	}

	ids, _ := repo.IDsInOrder()
	if ids[0] != 3 || ids[1] != 1 || ids[2] != 2 {
		t.Fatalf("got order %v", ids)
	}
	for i, c := range repo.cats {
		if c.DisplayOrder != i {
			t.Errorf("position %d has display order %d", i, c.DisplayOrder)
		}
	}
}

func TestReorderIdempotent(t *testing.T) {
	repo := seededRepo()
	svc := NewCategoryService(repo)

	svc.Reorder([]uint{3, 1, 2})
	first, _ := repo.IDsInOrder()

	if err := svc.Reorder([]uint{3, 1, 2}); err != nil {
		t.Fatalf("retry: %v", err)
	}
	second, _ := repo.IDsInOrder()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("retry changed order: %v vs %v", first, second)
		}
	}
}

func TestReorderRejectsWrongSet(t *testing.T) {
	svc := NewCategoryService(seededRepo())

	for _, ids := range [][]uint{
		{1, 2},          // too short
		{1, 2, 3, 4},    // unknown id
		{1, 1, 2},       // duplicate
		{1, 2, 99},      // swapped for a stranger
	} {
		err := svc.Reorder(ids)
		if _, ok := AsValidation(err); !ok {
			t.Errorf("%v: got %v, want validation error", ids, err)
		}
	}
}

func TestReorderPersistFailure(t *testing.T) {
	repo := seededRepo()
	repo.failPersist = true
	svc := NewCategoryService(repo)

	err := svc.Reorder([]uint{3, 1, 2})
	if !errors.Is(err, ErrReorderPersistFailed) {
		t.Fatalf("got %v, want ErrReorderPersistFailed", err)
	}

	// Stored order untouched, a retry starts from the old state.
	ids, _ := repo.IDsInOrder()
	if ids[0] != 1 || ids[1] != 2 || ids[2] != 3 {
		t.Fatalf("order changed despite failure: %v", ids)
	}
}

func TestMove(t *testing.T) {
	repo := seededRepo()
	svc := NewCategoryService(repo)

	if err := svc.Move(3, 2, 0); err != nil {
		t.Fatalf("Move: %v", err)
	}
	ids, _ := repo.IDsInOrder()
	if ids[0] != 3 || ids[1] != 1 || ids[2] != 2 {
		t.Fatalf("got order %v", ids)
	}
}

func TestMoveRejectsBadIndexes(t *testing.T) {
	svc := NewCategoryService(seededRepo())

	for _, c := range []struct {
		id       uint
		from, to int
	}{
		{3, -1, 0},
		{3, 2, 3},
		{3, 0, 0}, // id 3 is not at index 0
	} {
		err := svc.Move(c.id, c.from, c.to)
		if _, ok := AsValidation(err); !ok {
			t.Errorf("move %d %d->%d: got %v, want validation error", c.id, c.from, c.to, err)
		}
	}
}
