package apihandlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"promptrouter/internal/app"
	"promptrouter/internal/models"
)

type APIHandler struct {
	App *app.App
}

func NewAPIHandler(app *app.App) *APIHandler {
	return &APIHandler{App: app}
}

// RegisterRoutes mounts the API on the given engine. Shared by the serve
// command and the handler tests.
func (h *APIHandler) RegisterRoutes(router *gin.Engine) {
	v1 := router.Group("/api/v1")
	{
		v1.POST("/classify", h.ClassifyHandler)
		v1.GET("/keywords", h.KeywordSetsHandler)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// ClassifyRequest represents the JSON body for a classification request.
type ClassifyRequest struct {
	Prompt string `json:"prompt"`
}

func (h *APIHandler) ClassifyHandler(c *gin.Context) {
	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	rec, err := h.App.RouterService.Classify(req.Prompt)
	if err != nil {
		if errors.Is(err, models.ErrEmptyPrompt) {
			BadRequest(c, "Missing required field: prompt")
		} else {
			Internal(c, fmt.Sprintf("ClassifyHandler: classification failed: %v", err))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": rec})
}

// KeywordSetsHandler returns the active keyword tables.
func (h *APIHandler) KeywordSetsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sets": h.App.RouterService.KeywordSets()})
}
