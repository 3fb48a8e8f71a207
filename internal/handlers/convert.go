package handlers

//go:generate mockgen -source=convert.go -destination=convert_mock.go -package=handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-currency-converter/internal/apierr"
	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
	"github.com/sbilibin2017/gw-currency-converter/internal/render"
	"github.com/sbilibin2017/gw-currency-converter/internal/validation"
)

// OutcomeSuccess labels a successful conversion for ConversionObserver.
const OutcomeSuccess = "SUCCESS"

// Converter defines the conversion operations the handler depends on.
type Converter interface {
	IsCurrencySupported(code string) bool
	IsConversionSupported(from, to string) bool
	Convert(ctx context.Context, amount float64, from, to string) (models.ConversionResult, error)
	TotalCurrencies() int
}

// ConversionObserver is notified of the outcome of every conversion request:
// OutcomeSuccess or an apierr code.
type ConversionObserver interface {
	ObserveConversion(outcome string)
}

// NewConvertHandler returns an HTTP handler converting an amount between currencies.
// @Summary Convert currency
// @Description Converts an amount using USD-relative rates. One side of the conversion must be USD.
// @Tags conversion
// @Produce json
// @Param amount query number true "Amount to convert, greater than 0"
// @Param from query string true "Source ISO currency code" default(USD)
// @Param to query string true "Target ISO currency code" default(EUR)
// @Success 200 {object} models.ConversionResponse "Conversion result"
// @Failure 400 {object} models.ErrorResponse "INVALID_PARAMETERS, UNSUPPORTED_CURRENCY or UNSUPPORTED_CONVERSION"
// @Failure 500 {object} models.ErrorResponse "INTERNAL_ERROR"
// @Router /convert [get]
func NewConvertHandler(svc Converter, obs ConversionObserver, clock func() time.Time) http.HandlerFunc {
	if clock == nil {
		clock = time.Now
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		outcome := OutcomeSuccess

		defer func() {
			if rec := recover(); rec != nil {
				logger.FromContext(ctx).Errorw("conversion panicked", "panic", rec)
				outcome = writeError(w, apierr.Internal())
			}
			if obs != nil {
				obs.ObserveConversion(outcome)
			}
		}()

		req, fieldErrs := validation.ValidateConversionRequest(r.URL.Query())
		if len(fieldErrs) > 0 {
			outcome = writeError(w, apierr.InvalidParameters(fieldErrs))
			return
		}

		if !svc.IsCurrencySupported(req.From) {
			outcome = writeError(w, apierr.UnsupportedCurrency(req.From))
			return
		}
		if !svc.IsCurrencySupported(req.To) {
			outcome = writeError(w, apierr.UnsupportedCurrency(req.To))
			return
		}

		if !svc.IsConversionSupported(req.From, req.To) {
			outcome = writeError(w, apierr.UnsupportedConversion(req.From, req.To))
			return
		}

		res, err := svc.Convert(ctx, req.Amount, req.From, req.To)
		if err != nil {
			logger.FromContext(ctx).Errorw("conversion failed after support checks",
				"from", req.From, "to", req.To, "error", err)
			outcome = writeError(w, apierr.Internal())
			return
		}

		render.AllowAnyOrigin(w)
		render.JSON(w, http.StatusOK, models.ConversionResponse{
			Success: true,
			Data: models.ConversionData{
				Amount:          req.Amount,
				From:            req.From,
				To:              req.To,
				ConvertedAmount: res.ConvertedAmount,
				ExchangeRate:    res.ExchangeRate,
				Timestamp:       render.Timestamp(clock()),
				TotalCurrencies: svc.TotalCurrencies(),
			},
		})
	}
}

// writeError renders e and returns its code.
func writeError(w http.ResponseWriter, e *apierr.Error) string {
	render.JSON(w, e.Status, e.Response())
	return e.Code
}
