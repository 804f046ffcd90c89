package controllers

import (
	"net/http"

	"fooddelivery/middleware"
	"fooddelivery/models"
	"fooddelivery/services"

	"github.com/gin-gonic/gin"
)

type FeedbackController struct {
	feedback *services.FeedbackService
}

func NewFeedbackController(feedback *services.FeedbackService) *FeedbackController {
	return &FeedbackController{feedback: feedback}
}

func (fc *FeedbackController) Submit(c *gin.Context) {
	var body models.NewFeedback
	if !bindJSON(c, &body) {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	fb, err := fc.feedback.Submit(ctx, body)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	respond(c, http.StatusCreated, "Feedback received", fb)
}

func (fc *FeedbackController) List(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	feedback, err := fc.feedback.List(ctx)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	respond(c, http.StatusOK, "Fetch success", feedback)
}

func (fc *FeedbackController) Delete(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	if err := fc.feedback.Delete(ctx, c.Param("id")); err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	respond(c, http.StatusOK, "Feedback deleted", nil)
}
