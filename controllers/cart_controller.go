package controllers

import (
	"net/http"

	"fooddelivery/middleware"
	"fooddelivery/models"
	"fooddelivery/services"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	cart *services.CartService
}

func NewCartController(cart *services.CartService) *CartController {
	return &CartController{cart: cart}
}

func (cc *CartController) AddToCart(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var body models.NewCartItem
	if !bindJSON(c, &body) {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	item, err := cc.cart.AddItem(ctx, p.UserID, body)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	respond(c, http.StatusOK, "Added to cart", item)
}

func (cc *CartController) RemoveFromCart(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var body models.RemoveCartItem
	if !bindJSON(c, &body) {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := cc.cart.RemoveItem(ctx, p.UserID, body.ItemID); err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	respond(c, http.StatusOK, "Product removed from cart", gin.H{"itemId": body.ItemID})
}

func (cc *CartController) GetCart(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	items, err := cc.cart.ListItems(ctx, p.UserID)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	respond(c, http.StatusOK, "Fetch success", items)
}

func (cc *CartController) ClearCart(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	n, err := cc.cart.Clear(ctx, p.UserID)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	respond(c, http.StatusOK, "Cart cleared", gin.H{"deleted": n})
}
