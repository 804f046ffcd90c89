package controllers

import (
	"net/http"

	"fooddelivery/middleware"
	"fooddelivery/models"
	"fooddelivery/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	menu *services.MenuService
}

func NewMenuController(menu *services.MenuService) *MenuController {
	return &MenuController{menu: menu}
}

func (mc *MenuController) CreateMenuItem(c *gin.Context) {
	var body models.MenuItem
	if !bindJSON(c, &body) {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	item, err := mc.menu.Create(ctx, body)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	respond(c, http.StatusCreated, "Menu item created", item)
}

func (mc *MenuController) UpdateMenuItem(c *gin.Context) {
	var body models.MenuItemPatch
	if !bindJSON(c, &body) {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	item, err := mc.menu.Update(ctx, c.Param("id"), body)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	respond(c, http.StatusOK, "Menu item updated", item)
}

func (mc *MenuController) DeleteMenuItem(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	if err := mc.menu.Delete(ctx, c.Param("id")); err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	respond(c, http.StatusOK, "Menu item deleted", nil)
}

// GetMenuPublic lists what customers can order right now.
func (mc *MenuController) GetMenuPublic(c *gin.Context) {
	mc.list(c, true)
}

func (mc *MenuController) GetMenuAdmin(c *gin.Context) {
	mc.list(c, false)
}

func (mc *MenuController) list(c *gin.Context, onlyAvailable bool) {
	ctx, cancel := requestContext(c)
	defer cancel()

	items, err := mc.menu.List(ctx, onlyAvailable)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	respond(c, http.StatusOK, "Fetch success", items)
}
