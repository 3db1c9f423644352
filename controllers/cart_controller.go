package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/SerfiMolotov/MissDelice/pkg/resp"
	"github.com/SerfiMolotov/MissDelice/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const cartSessionHeader = "X-Cart-Session"

type CartController struct {
	Carts *services.CartService
}

func NewCartController(carts *services.CartService) *CartController {
	return &CartController{Carts: carts}
}

// cartSession reads the session id from the request, minting one for a brand
// new browser. It is echoed back so the client can hold on to it.
func cartSession(c *gin.Context) string {
	id := c.GetHeader(cartSessionHeader)
	if id == "" {
		id = uuid.NewString()
	}
	c.Header(cartSessionHeader, id)
	return id
}

// GET /api/cart
func (ctl *CartController) Get(c *gin.Context) {
	cart, err := ctl.Carts.Get(c.Request.Context(), cartSession(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

// POST /api/cart/items/:productId
func (ctl *CartController) Add(c *gin.Context) {
	productID, _ := strconv.Atoi(c.Param("productId"))

	cart, err := ctl.Carts.Add(c.Request.Context(), cartSession(c), uint(productID))
	if err != nil {
		if services.IsNotFound(err) {
			resp.NotFound(c, "product not found")
			return
		}
		if ve, ok := services.AsValidation(err); ok {
			resp.BadRequestFields(c, "produit indisponible", ve.Fields)
			return
		}
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

// DELETE /api/cart/items/:productId
func (ctl *CartController) Remove(c *gin.Context) {
	productID, _ := strconv.Atoi(c.Param("productId"))
	sessionID := cartSession(c)

	cart, err := ctl.Carts.Remove(c.Request.Context(), sessionID, uint(productID))
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			// Double-click on a line that just vanished; nothing to undo.
			log.Printf("[cart] remove miss in %s: product %d", sessionID, productID)
			c.JSON(http.StatusOK, cart)
			return
		}
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

// DELETE /api/cart
func (ctl *CartController) Clear(c *gin.Context) {
	if err := ctl.Carts.Clear(c.Request.Context(), cartSession(c)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"cleared": true})
}
