package handlers

//go:generate mockgen -source=currencies.go -destination=currencies_mock.go -package=handlers

import (
	"net/http"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
	"github.com/sbilibin2017/gw-currency-converter/internal/render"
)

// CurrencyLister lists the currencies conversions are available for.
type CurrencyLister interface {
	SupportedCurrencies() []string
}

// NewCurrenciesHandler returns an HTTP handler listing supported currencies.
// @Summary List supported currencies
// @Tags conversion
// @Produce json
// @Success 200 {object} models.CurrenciesResponse
// @Router /currencies [get]
func NewCurrenciesHandler(svc CurrencyLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		codes := svc.SupportedCurrencies()
		if codes == nil {
			codes = []string{}
		}

		render.AllowAnyOrigin(w)
		render.JSON(w, http.StatusOK, models.CurrenciesResponse{
			Success: true,
			Data: models.CurrenciesData{
				Currencies: codes,
				Total:      len(codes),
			},
		})
	}
}
