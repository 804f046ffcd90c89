package controllers

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"fooddelivery/middleware"
	"fooddelivery/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const requestTimeout = 5 * time.Second

func requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), requestTimeout)
}

// bindJSON decodes the body into v and answers 400 when it does not validate.
func bindJSON(c *gin.Context, v interface{}) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		middleware.AbortWithError(c, fmt.Errorf("%w: %v", models.ErrValidation, err))
		return false
	}
	return true
}

func principal(c *gin.Context) (models.Principal, bool) {
	p, ok := middleware.CurrentPrincipal(c)
	if !ok {
		middleware.AbortWithError(c, models.ErrUnauthenticated)
	}
	return p, ok
}

func respond(c *gin.Context, status int, message string, data interface{}) {
	body := gin.H{"message": message}
	if data != nil {
		body["data"] = data
	}
	c.JSON(status, body)
}

var registerOnce sync.Once

// RegisterValidators adds the custom binding rules used by request bodies.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, isValidator := binding.Validator.Engine().(*validator.Validate)
		if !isValidator {
			return
		}
		_ = v.RegisterValidation("orderstatus", func(fl validator.FieldLevel) bool {
			return models.OrderStatus(fl.Field().String()).IsValid()
		})
	})
}

// NotFound answers unknown routes with the same envelope as every other error.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"code": "NOT_FOUND", "error": "Route not found"})
}
