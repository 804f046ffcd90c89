package controllers

import (
	"net/http"

	"fooddelivery/middleware"
	"fooddelivery/models"
	"fooddelivery/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

func (oc *OrderController) PlaceOrder(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var body models.PlaceOrder
	if !bindJSON(c, &body) {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	order, err := oc.orders.Place(ctx, p, body)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	respond(c, http.StatusCreated, "Order placed", order)
}

func (oc *OrderController) GetOrders(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	orders, err := oc.orders.ListForUser(ctx, p.UserID)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	respond(c, http.StatusOK, "Fetch success", orders)
}

// CancelOrder deletes the order; an order that is already gone is not an error.
func (oc *OrderController) CancelOrder(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	orderID := c.Param("orderId")
	if err := oc.orders.Cancel(ctx, p, orderID); err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	respond(c, http.StatusOK, "Order canceled", gin.H{"orderId": orderID})
}
