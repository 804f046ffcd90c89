package controllers

import (
	"net/http"

	"fooddelivery/middleware"
	"fooddelivery/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	identity *services.IdentityService
}

func NewUserController(identity *services.IdentityService) *UserController {
	return &UserController{identity: identity}
}

func (uc *UserController) FetchProfile(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	user, err := uc.identity.FetchProfile(ctx, p.UserID)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	respond(c, http.StatusOK, "Fetch success", user)
}

func (uc *UserController) ListUsers(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	users, err := uc.identity.ListUsers(ctx)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	respond(c, http.StatusOK, "Fetch success", users)
}
