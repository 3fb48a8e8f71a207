package handlers

import (
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
	"github.com/sbilibin2017/gw-currency-converter/internal/render"
)

var endpoints = map[string]string{
	"/":           "API information",
	"/health":     "Health check",
	"/convert":    "Convert currency (params: amount, from, to)",
	"/currencies": "List supported currencies",
}

// NewInfoHandler returns an HTTP handler describing the API.
// @Summary API information
// @Tags meta
// @Produce json
// @Success 200 {object} models.InfoResponse
// @Router / [get]
func NewInfoHandler(version string, clock func() time.Time) http.HandlerFunc {
	if clock == nil {
		clock = time.Now
	}

	return func(w http.ResponseWriter, r *http.Request) {
		render.AllowAnyOrigin(w)
		render.JSON(w, http.StatusOK, models.InfoResponse{
			Message:   "Currency Converter API",
			Version:   version,
			Endpoints: endpoints,
			Timestamp: render.Timestamp(clock()),
		})
	}
}
