package services

import (
	"context"
	"fmt"
	"time"

	"github.com/SerfiMolotov/MissDelice/entity"
	"github.com/SerfiMolotov/MissDelice/repository"
)

// ProductSource is what the cart needs from the catalog.
type ProductSource interface {
	GetByID(id uint) (*entity.Product, error)
}

// SlotSource is the availability check used at composition time.
type SlotSource interface {
	SlotsNow(now time.Time) ([]string, error)
}

type CartService struct {
	Store    repository.CartStore
	Products ProductSource
	Slots    SlotSource

	now func() time.Time
}

func NewCartService(store repository.CartStore, products ProductSource, slots SlotSource) *CartService {
	return &CartService{Store: store, Products: products, Slots: slots, now: time.Now}
}

func (s *CartService) Get(ctx context.Context, sessionID string) (*entity.Cart, error) {
	return s.Store.Get(ctx, sessionID)
}

// Add puts one more unit of the product in the cart: +1 on an existing line,
// otherwise a new line with the current catalog price snapshotted.
func (s *CartService) Add(ctx context.Context, sessionID string, productID uint) (*entity.Cart, error) {
	p, err := s.Products.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if p.IsOutOfStock {
		return nil, &ValidationError{Fields: []string{"product"}}
	}

	cart, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		cart.Items = append(cart.Items, entity.CartItem{
			ProductID: p.ID,
			Name:      p.Name,
			UnitPrice: p.Price,
			Quantity:  1,
			ImageURL:  p.ImageURL,
		})
	}

	if err := s.Store.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Remove takes one unit off the line, dropping it at zero. A product that is
// not in the cart yields ErrItemNotFound and leaves the cart untouched.
func (s *CartService) Remove(ctx context.Context, sessionID string, productID uint) (*entity.Cart, error) {
	cart, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return cart, ErrItemNotFound
	}

	cart.Items[idx].Quantity--
	if cart.Items[idx].Quantity <= 0 {
		cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)
	}

	if err := s.Store.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Clear wipes the cart and its persisted copy in one operation.
func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	return s.Store.Delete(ctx, sessionID)
}

type ComposeIn struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Delivery bool   `json:"delivery"`
	Address  string `json:"address"`
	City     string `json:"city"`
	Zip      string `json:"zip"`
	TimeSlot string `json:"time_slot"`
}

// Compose validates the cart plus the customer's choices and freezes them
// into an OrderDraft. The chosen slot is checked against a fresh availability
// computation, so a slot that expired since page load is rejected here.
func (s *CartService) Compose(ctx context.Context, sessionID string, in ComposeIn) (*entity.OrderDraft, error) {
	cart, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	var missing []string
	if len(cart.Items) == 0 {
		missing = append(missing, "items")
	}
	if in.Name == "" {
		missing = append(missing, "name")
	}
	if in.Phone == "" {
		missing = append(missing, "phone")
	}
	if in.Email == "" {
		missing = append(missing, "email")
	}
	if in.Delivery {
		if in.Address == "" {
			missing = append(missing, "address")
		}
		if in.Zip == "" {
			missing = append(missing, "zip")
		}
		if in.City == "" {
			missing = append(missing, "city")
		}
	}
	if in.TimeSlot == "" {
		missing = append(missing, "time_slot")
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Fields: missing}
	}

	now := s.now()
	slots, err := s.Slots.SlotsNow(now)
	if err != nil {
		return nil, err
	}
	if !contains(slots, in.TimeSlot) {
		return nil, &ValidationError{Fields: []string{"time_slot"}}
	}

	address := "Retrait sur place"
	if in.Delivery {
		address = fmt.Sprintf("%s, %s %s", in.Address, in.Zip, in.City)
	}

	draft := &entity.OrderDraft{
		Customer: entity.OrderCustomer{
			Name:    in.Name,
			Phone:   in.Phone,
			Email:   in.Email,
			Address: address,
		},
		Items:     append([]entity.CartItem(nil), cart.Items...),
		Total:     cart.Total(),
		Delivery:  in.Delivery,
		TimeSlot:  in.TimeSlot,
		CreatedAt: now,
	}
	return draft, nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
