package controllers

import (
	"net/http"

	"fooddelivery/middleware"
	"fooddelivery/models"
	"fooddelivery/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	identity *services.IdentityService
	admins   *services.AdminService
	sessions *services.SessionService
	cookie   middleware.SessionCookie
}

func NewAuthController(identity *services.IdentityService, admins *services.AdminService, sessions *services.SessionService, cookie middleware.SessionCookie) *AuthController {
	return &AuthController{identity: identity, admins: admins, sessions: sessions, cookie: cookie}
}

func (ac *AuthController) Register(c *gin.Context) {
	var input models.Registration
	if !bindJSON(c, &input) {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	user, err := ac.identity.Register(ctx, input)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	respond(c, http.StatusCreated, "User registered successfully", user)
}

func (ac *AuthController) Login(c *gin.Context) {
	var input models.Credentials
	if !bindJSON(c, &input) {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	token, user, err := ac.identity.Login(ctx, input)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	ac.cookie.Set(c, token)
	respond(c, http.StatusOK, "Login success", user)
}

func (ac *AuthController) AdminLogin(c *gin.Context) {
	var input models.Credentials
	if !bindJSON(c, &input) {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	token, admin, err := ac.admins.Login(ctx, input)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	ac.cookie.Set(c, token)
	respond(c, http.StatusOK, "Admin login success", admin)
}

// Logout always succeeds, with or without a live session.
func (ac *AuthController) Logout(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	ac.sessions.Revoke(ctx, ac.cookie.Read(c))
	ac.cookie.Clear(c, ac.cookie.Name)
	respond(c, http.StatusOK, "Logged out", nil)
}

// ClearCookie expires the cookie named in the path. Clearing the session
// cookie also ends the session.
func (ac *AuthController) ClearCookie(c *gin.Context) {
	name := c.Param("title")
	if name == ac.cookie.Name {
		ctx, cancel := requestContext(c)
		defer cancel()
		ac.sessions.Revoke(ctx, ac.cookie.Read(c))
	}

	ac.cookie.Clear(c, name)
	respond(c, http.StatusOK, "Cookies cleared", nil)
}
