package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"humanatlas/internal/service"
)

// ProfileHandler serves per-user aggregate statistics.
type ProfileHandler struct {
	statsService service.StatsService
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(statsService service.StatsService) *ProfileHandler {
	return &ProfileHandler{statsService: statsService}
}

// Stats godoc
// @Summary Aggregate statistics for one user's entry history
// @Description Returns a null stats object when the user has no entries.
// @Tags profile
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} map[string]service.Stats
// @Failure 503 {object} errors.ErrorResponse
// @Router /profile/{username} [get]
func (h *ProfileHandler) Stats(c echo.Context) error {
	stats, err := h.statsService.ProfileStats(c.Request().Context(), c.Param("username"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]*service.Stats{"stats": stats})
}
