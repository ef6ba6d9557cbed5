package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"humanatlas/internal/model"
)

// MetaHandler exposes the fixed vocabularies so clients need not hardcode them.
type MetaHandler struct{}

// NewMetaHandler creates a new meta handler.
func NewMetaHandler() *MetaHandler {
	return &MetaHandler{}
}

// Vocabularies godoc
// @Summary Accepted emotion categories, moods and regions
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /meta [get]
func (h *MetaHandler) Vocabularies(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"categories": model.EmotionCategories,
		"moods":      model.Moods,
		"regions":    model.Regions,
	})
}
