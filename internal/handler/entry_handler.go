package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"humanatlas/internal/auth"
	apperrors "humanatlas/internal/errors"
	"humanatlas/internal/model"
	"humanatlas/internal/service"
)

// EntryHandler handles the entry feed and submission endpoints.
type EntryHandler struct {
	entryService service.EntryService
}

// NewEntryHandler creates a new entry handler.
func NewEntryHandler(entryService service.EntryService) *EntryHandler {
	return &EntryHandler{entryService: entryService}
}

// CreateEntryRequest represents an entry submission.
type CreateEntryRequest struct {
	Title             string   `json:"title" validate:"required"`
	PrimaryEmotion    string   `json:"primary_emotion" validate:"required"`
	Description       string   `json:"description" validate:"required"`
	DayRating         int      `json:"day_rating" validate:"required"`
	Mood              string   `json:"mood" validate:"required"`
	SignificantEvents []string `json:"significant_events"`
	Weather           string   `json:"weather"`
}

// Create godoc
// @Summary Submit an emotional entry
// @Description One entry per user per hour. Username, region and timestamp come from the session.
// @Tags entries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateEntryRequest true "Entry data"
// @Success 201 {object} map[string]model.Entry
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 429 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /entries [post]
func (h *EntryHandler) Create(c echo.Context) error {
	claims, ok := c.Get("user").(*auth.SessionClaims)
	if !ok {
		return httpError(apperrors.ErrUnauthorized)
	}

	var req CreateEntryRequest
	if err := c.Bind(&req); err != nil {
		return httpError(apperrors.NewValidation("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return httpError(apperrors.NewValidation("Missing required fields"))
	}

	entry, err := h.entryService.Submit(c.Request().Context(), claims.User, service.SubmitEntryInput{
		Title:             req.Title,
		PrimaryEmotion:    req.PrimaryEmotion,
		Description:       req.Description,
		DayRating:         req.DayRating,
		Mood:              req.Mood,
		SignificantEvents: req.SignificantEvents,
		Weather:           req.Weather,
	})
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, map[string]*model.Entry{"entry": entry})
}

// List godoc
// @Summary List all entries, newest first
// @Tags entries
// @Produce json
// @Success 200 {object} map[string][]model.Entry
// @Failure 503 {object} errors.ErrorResponse
// @Router /entries [get]
func (h *EntryHandler) List(c echo.Context) error {
	entries, err := h.entryService.ListAll(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string][]model.Entry{"entries": entries})
}
