package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SerfiMolotov/MissDelice/entity"
	"github.com/SerfiMolotov/MissDelice/repository"
	"gorm.io/gorm"
)

type fakeCatalog map[uint]*entity.Product

func (f fakeCatalog) GetByID(id uint) (*entity.Product, error) {
	p, ok := f[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

type fakeSlots struct {
	slots []string
	err   error
}

func (f *fakeSlots) SlotsNow(time.Time) ([]string, error) { return f.slots, f.err }

func newTestCart(slots []string) (*CartService, fakeCatalog) {
	catalog := fakeCatalog{
		1: {ID: 1, Name: "Tarte aux pommes", Price: 350},
		2: {ID: 2, Name: "Paris-Brest", Price: 700},
		3: {ID: 3, Name: "Flan", Price: 300, IsOutOfStock: true},
	}
	svc := NewCartService(repository.NewMemoryCartStore(), catalog, &fakeSlots{slots: slots})
	svc.now = func() time.Time { return mondayAt(10, 0) }
	return svc, catalog
}

func TestAddMergesLines(t *testing.T) {
	svc, _ := newTestCart(nil)
	ctx := context.Background()

	if _, err := svc.Add(ctx, "s1", 1); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := svc.Add(ctx, "s1", 1); err != nil {
		t.Fatalf("Add: %v", err)
	}
	cart, err := svc.Add(ctx, "s1", 2)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	if len(cart.Items) != 2 {
		t.Fatalf("got %d lines, want 2", len(cart.Items))
	}
	if cart.Items[0].Quantity != 2 {
		t.Errorf("got quantity %d, want 2", cart.Items[0].Quantity)
	}
	if got := cart.Total(); got != 2*350+700 {
		t.Errorf("got total %d, want 1400", got)
	}
	if got := cart.Count(); got != 3 {
		t.Errorf("got count %d, want 3", got)
	}
}

func TestAddUnknownProduct(t *testing.T) {
	svc, _ := newTestCart(nil)

	if _, err := svc.Add(context.Background(), "s1", 99); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("got %v, want record not found", err)
	}
}

func TestAddOutOfStock(t *testing.T) {
	svc, _ := newTestCart(nil)

	_, err := svc.Add(context.Background(), "s1", 3)
	ve, ok := AsValidation(err)
	if !ok || len(ve.Fields) != 1 || ve.Fields[0] != "product" {
		t.Fatalf("got %v, want validation on product", err)
	}
}

func TestAddSnapshotsPrice(t *testing.T) {
	svc, catalog := newTestCart(nil)
	ctx := context.Background()

	if _, err := svc.Add(ctx, "s1", 1); err != nil {
		t.Fatalf("Add: %v", err)
	}
	catalog[1].Price = 999

	cart, err := svc.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if cart.Items[0].UnitPrice != 350 {
		t.Errorf("got %d, want the price at add time (350)", cart.Items[0].UnitPrice)
	}
}

func TestRemoveDecrementsAndDrops(t *testing.T) {
	svc, _ := newTestCart(nil)
	ctx := context.Background()

	svc.Add(ctx, "s1", 1)
	svc.Add(ctx, "s1", 1)

	cart, err := svc.Remove(ctx, "s1", 1)
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if len(cart.Items) != 1 || cart.Items[0].Quantity != 1 {
		t.Fatalf("after first remove: %+v", cart.Items)
	}

	cart, err = svc.Remove(ctx, "s1", 1)
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if len(cart.Items) != 0 {
		t.Fatalf("line should be gone at zero, got %+v", cart.Items)
	}
}

func TestRemoveMissingLine(t *testing.T) {
	svc, _ := newTestCart(nil)
	ctx := context.Background()

	svc.Add(ctx, "s1", 1)

	cart, err := svc.Remove(ctx, "s1", 2)
	if !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("got %v, want ErrItemNotFound", err)
	}
	if len(cart.Items) != 1 {
		t.Fatalf("cart should be untouched, got %+v", cart.Items)
	}
}

func TestTotalTracksContents(t *testing.T) {
	svc, _ := newTestCart(nil)
	ctx := context.Background()

	// Interleave mutations and check the total never drifts.
	want := int64(0)
	for i := 0; i < 5; i++ {
		svc.Add(ctx, "s1", 1)
		want += 350
		svc.Add(ctx, "s1", 2)
		want += 700
	}
	svc.Remove(ctx, "s1", 2)
	want -= 700

	cart, _ := svc.Get(ctx, "s1")
	if got := cart.Total(); got != want {
		t.Fatalf("got total %d, want %d", got, want)
	}
}

func TestClearEmptiesStore(t *testing.T) {
	svc, _ := newTestCart(nil)
	ctx := context.Background()

	svc.Add(ctx, "s1", 1)
	if err := svc.Clear(ctx, "s1"); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	cart, err := svc.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(cart.Items) != 0 {
		t.Fatalf("cart not empty after clear: %+v", cart.Items)
	}
}

func TestComposeMissingFields(t *testing.T) {
	svc, _ := newTestCart([]string{"15h00"})

	_, err := svc.Compose(context.Background(), "s1", ComposeIn{})
	ve, ok := AsValidation(err)
	if !ok {
		t.Fatalf("got %v, want validation error", err)
	}
	for _, f := range []string{"items", "name", "phone", "email", "time_slot"} {
		if !contains(ve.Fields, f) {
			t.Errorf("missing field %q not reported: %v", f, ve.Fields)
		}
	}
}

func TestComposeDeliveryNeedsAddress(t *testing.T) {
	svc, _ := newTestCart([]string{"15h00"})
	ctx := context.Background()
	svc.Add(ctx, "s1", 1)

	_, err := svc.Compose(ctx, "s1", ComposeIn{
		Name: "Jeanne", Phone: "0600000000", Email: "j@x.fr",
		Delivery: true, TimeSlot: "15h00",
	})
	ve, ok := AsValidation(err)
	if !ok {
		t.Fatalf("got %v, want validation error", err)
	}
	for _, f := range []string{"address", "zip", "city"} {
		if !contains(ve.Fields, f) {
			t.Errorf("missing field %q not reported: %v", f, ve.Fields)
		}
	}
}

func TestComposePickup(t *testing.T) {
	svc, _ := newTestCart([]string{"15h00", "15h15"})
	ctx := context.Background()
	svc.Add(ctx, "s1", 1)
	svc.Add(ctx, "s1", 1)

	draft, err := svc.Compose(ctx, "s1", ComposeIn{
		Name: "Jeanne", Phone: "0600000000", Email: "j@x.fr",
		TimeSlot: "15h00",
	})
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if draft.Total != 700 {
		t.Errorf("got total %d, want 700", draft.Total)
	}
	if draft.Customer.Address != "Retrait sur place" {
		t.Errorf("got address %q", draft.Customer.Address)
	}
	if draft.TimeSlot != "15h00" || draft.Delivery {
		t.Errorf("draft mangled: %+v", draft)
	}
	if !draft.CreatedAt.Equal(mondayAt(10, 0)) {
		t.Errorf("got created at %v", draft.CreatedAt)
	}
}

func TestComposeDeliveryAddress(t *testing.T) {
	svc, _ := newTestCart([]string{"15h00"})
	ctx := context.Background()
	svc.Add(ctx, "s1", 1)

	draft, err := svc.Compose(ctx, "s1", ComposeIn{
		Name: "Jeanne", Phone: "0600000000", Email: "j@x.fr",
		Delivery: true, Address: "3 rue des Lilas", Zip: "76000", City: "Rouen",
		TimeSlot: "15h00",
	})
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if draft.Customer.Address != "3 rue des Lilas, 76000 Rouen" {
		t.Errorf("got address %q", draft.Customer.Address)
	}
}

func TestComposeStaleSlot(t *testing.T) {
	// The slot the customer picked at page load has since expired.
	svc, _ := newTestCart([]string{"16h00", "16h15"})
	ctx := context.Background()
	svc.Add(ctx, "s1", 1)

	_, err := svc.Compose(ctx, "s1", ComposeIn{
		Name: "Jeanne", Phone: "0600000000", Email: "j@x.fr",
		TimeSlot: "15h00",
	})
	ve, ok := AsValidation(err)
	if !ok || len(ve.Fields) != 1 || ve.Fields[0] != "time_slot" {
		t.Fatalf("got %v, want validation on time_slot", err)
	}

	// The cart survives the rejection.
	cart, _ := svc.Get(ctx, "s1")
	if len(cart.Items) != 1 {
		t.Fatalf("cart lost on rejected compose: %+v", cart.Items)
	}
}
