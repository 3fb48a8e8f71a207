package handlers

import (
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
	"github.com/sbilibin2017/gw-currency-converter/internal/render"
)

// NewHealthHandler returns an HTTP handler reporting service health.
// @Summary Health check
// @Tags meta
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /health [get]
func NewHealthHandler(clock func() time.Time) http.HandlerFunc {
	if clock == nil {
		clock = time.Now
	}

	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, http.StatusOK, models.HealthResponse{
			Status:    "healthy",
			Timestamp: render.Timestamp(clock()),
		})
	}
}
