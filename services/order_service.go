package services

import (
	"context"
	"fmt"
	"log"

	"github.com/SerfiMolotov/MissDelice/entity"
	"github.com/SerfiMolotov/MissDelice/repository"
)

type OrderService struct {
	Carts  repository.CartStore
	Intake OrderIntake
}

func NewOrderService(carts repository.CartStore, intake OrderIntake) *OrderService {
	return &OrderService{Carts: carts, Intake: intake}
}

// Submit hands the draft across the intake boundary. On failure the cart is
// deliberately kept, so retrying does not lose the order; on success it is
// cleared in one shot.
func (s *OrderService) Submit(ctx context.Context, sessionID string, draft *entity.OrderDraft) error {
	if err := s.Intake.Submit(ctx, draft); err != nil {
		log.Printf("[order] intake failed for %s: %v", draft.Customer.Name, err)
		return fmt.Errorf("%w: %v", ErrSubmissionNetwork, err)
	}

	if err := s.Carts.Delete(ctx, sessionID); err != nil {
		// The order went through; a stale cart is annoying, not fatal.
		log.Printf("[order] failed to clear cart %s: %v", sessionID, err)
	}
	log.Printf("[order] accepted: %s, %d item(s), %s",
		draft.Customer.Name, len(draft.Items), FormatEuros(draft.Total))
	return nil
}
