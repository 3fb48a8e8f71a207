package services

//go:generate mockgen -source=conversion.go -destination=conversion_mock.go -package=services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// RateReader is the read-only view of the exchange rate table used by the service.
type RateReader interface {
	GetExchangeRate(code string) (float64, bool)
	IsCurrencySupported(code string) bool
	Codes() []string
	Len() int
}

var (
	ErrCurrencyNotFound      = errors.New("currency not found")
	ErrUnsupportedConversion = errors.New("only USD-based conversions are supported")
	ErrNonFiniteResult       = errors.New("conversion result is not a finite number")
)

const (
	amountScale = 100
	rateScale   = 1_000_000
)

// ConversionService converts amounts through USD using a RateReader.
type ConversionService struct {
	rates RateReader
}

// NewConversionService creates a new service instance
func NewConversionService(rates RateReader) *ConversionService {
	return &ConversionService{rates: rates}
}

// IsCurrencySupported reports whether the rate table knows code.
func (svc *ConversionService) IsCurrencySupported(code string) bool {
	return svc.rates.IsCurrencySupported(code)
}

// IsConversionSupported reports whether from and to are the same currency
// or one of them is USD. Comparison is case-insensitive.
func (svc *ConversionService) IsConversionSupported(from, to string) bool {
	from, to = strings.ToUpper(from), strings.ToUpper(to)
	return from == to || from == models.USD || to == models.USD
}

// TotalCurrencies returns the number of currencies in the rate table.
func (svc *ConversionService) TotalCurrencies() int {
	return svc.rates.Len()
}

// SupportedCurrencies returns the supported codes in ascending order.
func (svc *ConversionService) SupportedCurrencies() []string {
	return svc.rates.Codes()
}

// Convert converts amount from one currency to another.
// Converted amounts are rounded to 2 decimals and rates to 6 decimals,
// both after full precision arithmetic. A same-currency conversion returns
// the amount unchanged with rate 1.
func (svc *ConversionService) Convert(
	_ context.Context,
	amount float64,
	from, to string,
) (models.ConversionResult, error) {
	from, to = strings.ToUpper(from), strings.ToUpper(to)

	if from == to {
		return models.ConversionResult{ConvertedAmount: amount, ExchangeRate: 1.0}, nil
	}

	fromRate, ok := svc.rates.GetExchangeRate(from)
	if !ok {
		return models.ConversionResult{}, fmt.Errorf("%w: %s", ErrCurrencyNotFound, from)
	}
	toRate, ok := svc.rates.GetExchangeRate(to)
	if !ok {
		return models.ConversionResult{}, fmt.Errorf("%w: %s", ErrCurrencyNotFound, to)
	}

	if from != models.USD && to != models.USD {
		return models.ConversionResult{}, fmt.Errorf("%w: %s->%s", ErrUnsupportedConversion, from, to)
	}

	var converted, rate float64
	if from == models.USD {
		converted = amount * toRate
		rate = toRate
	} else {
		converted = amount / fromRate
		rate = 1 / fromRate
	}

	res := models.ConversionResult{
		ConvertedAmount: roundTo(converted, amountScale),
		ExchangeRate:    roundTo(rate, rateScale),
	}
	if !isFinite(res.ConvertedAmount) || !isFinite(res.ExchangeRate) {
		return models.ConversionResult{}, fmt.Errorf("%w: %g %s->%s", ErrNonFiniteResult, amount, from, to)
	}

	return res, nil
}

func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}

// roundTo rounds half away from zero at 1/scale precision.
func roundTo(x, scale float64) float64 {
	return math.Round(x*scale) / scale
}
