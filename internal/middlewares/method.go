package middlewares

import (
	"net/http"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
	"github.com/sbilibin2017/gw-currency-converter/internal/render"
)

// GetOnly rejects every request whose method is not GET with 405, before routing.
func GetOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", http.MethodGet)
			render.JSON(w, http.StatusMethodNotAllowed, models.MethodNotAllowedResponse{
				Error:   "Method Not Allowed",
				Message: "Only GET requests are supported",
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}
