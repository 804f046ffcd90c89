package controllers

import (
	"net/http"

	"fooddelivery/middleware"
	"fooddelivery/models"

	"github.com/gin-gonic/gin"
)

func (oc *OrderController) GetOrdersAdmin(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	orders, err := oc.orders.ListAll(ctx)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	respond(c, http.StatusOK, "Fetch success", orders)
}

func (oc *OrderController) GetOrderByIDAdmin(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	order, err := oc.orders.Get(ctx, c.Param("orderId"))
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	respond(c, http.StatusOK, "Fetch success", order)
}

func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	var body models.StatusUpdate
	if !bindJSON(c, &body) {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	order, err := oc.orders.UpdateStatus(ctx, c.Param("orderId"), body.OrderStatus)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	respond(c, http.StatusOK, "Order status updated", order)
}

// GetTotalShippedOrders keeps the field name the dashboard already reads.
func (oc *OrderController) GetTotalShippedOrders(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	summary, err := oc.orders.ShippedSummary(ctx)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
