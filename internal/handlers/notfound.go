package handlers

import (
	"net/http"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
	"github.com/sbilibin2017/gw-currency-converter/internal/render"
)

// NewNotFoundHandler returns the handler for unknown routes.
func NewNotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, http.StatusNotFound, models.NotFoundResponse{
			Error: "Not Found",
			Path:  r.URL.Path,
		})
	}
}
