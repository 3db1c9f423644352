package controllers

import (
	"errors"

	"github.com/SerfiMolotov/MissDelice/pkg/resp"
	"github.com/SerfiMolotov/MissDelice/services"
	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Carts  *services.CartService
	Orders *services.OrderService
}

func NewOrderController(carts *services.CartService, orders *services.OrderService) *OrderController {
	return &OrderController{Carts: carts, Orders: orders}
}

// POST /api/orders
//
// Composes the draft from the stored cart plus the customer's form, then
// submits it. Validation failures keep the cart exactly as it was.
func (ctl *OrderController) Create(c *gin.Context) {
	sessionID := cartSession(c)

	var req services.ComposeIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	draft, err := ctl.Carts.Compose(c.Request.Context(), sessionID, req)
	if err != nil {
		if ve, ok := services.AsValidation(err); ok {
			resp.BadRequestFields(c, "commande incomplète", ve.Fields)
			return
		}
		if errors.Is(err, services.ErrInvalidConfiguration) {
			resp.Unavailable(c, "horaires indisponibles")
			return
		}
		resp.ServerError(c, err)
		return
	}

	if err := ctl.Orders.Submit(c.Request.Context(), sessionID, draft); err != nil {
		if errors.Is(err, services.ErrSubmissionNetwork) {
			resp.BadGateway(c, "envoi de la commande impossible, réessayez")
			return
		}
		resp.ServerError(c, err)
		return
	}

	resp.Created(c, draft)
}
