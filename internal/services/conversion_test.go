package services

import (
	"context"
	"math"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
	"github.com/sbilibin2017/gw-currency-converter/internal/rates"
)

func newTestService() *ConversionService {
	return NewConversionService(rates.NewTable([]models.ExchangeRate{
		{ISOCode: "EUR", Rate: 0.85},
		{ISOCode: "JPY", Rate: 110.5},
		{ISOCode: "GBP", Rate: 0.73},
		{ISOCode: "CAD", Rate: 1.25},
		{ISOCode: "AUD", Rate: 1.35},
	}))
}

func TestConversionService_Convert(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	tests := []struct {
		name          string
		amount        float64
		from, to      string
		wantConverted float64
		wantRate      float64
	}{
		{"usd to usd", 100, "USD", "USD", 100, 1},
		{"eur to eur", 50, "EUR", "EUR", 50, 1},
		{"same currency keeps precision", 100.123456, "EUR", "EUR", 100.123456, 1},
		{"usd to eur", 100, "USD", "EUR", 85, 0.85},
		{"usd to jpy", 1000, "USD", "JPY", 110500, 110.5},
		{"eur to usd", 100, "EUR", "USD", 117.65, 1.176471},
		{"gbp to usd", 100, "GBP", "USD", 136.99, 1.369863},
		{"amount rounded to cents", 100.123456, "USD", "EUR", 85.1, 0.85},
		{"large amount", 1_000_000, "USD", "EUR", 850000, 0.85},
		{"small amount", 0.01, "USD", "EUR", 0.01, 0.85},
		{"lower case codes", 100, "usd", "eur", 85, 0.85},
		{"mixed case codes", 100, "Eur", "uSd", 117.65, 1.176471},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.Convert(ctx, tt.amount, tt.from, tt.to)
			require.NoError(t, err)
			assert.Equal(t, tt.wantConverted, res.ConvertedAmount)
			assert.Equal(t, tt.wantRate, res.ExchangeRate)
		})
	}
}

func TestConversionService_ConvertErrors(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	tests := []struct {
		name     string
		from, to string
		wantErr  error
	}{
		{"transitive eur to jpy", "EUR", "JPY", ErrUnsupportedConversion},
		{"transitive gbp to eur", "GBP", "EUR", ErrUnsupportedConversion},
		{"unknown from", "XXX", "USD", ErrCurrencyNotFound},
		{"unknown to", "USD", "XXX", ErrCurrencyNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.Convert(ctx, 100, tt.from, tt.to)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, models.ConversionResult{}, res)
		})
	}
}

func TestConversionService_ConvertOverflow(t *testing.T) {
	svc := newTestService()

	tests := []struct {
		name     string
		amount   float64
		from, to string
	}{
		{"product overflows", 1e307, "USD", "JPY"},
		{"rounding overflows", 1e306, "USD", "JPY"},
		{"quotient overflows", math.MaxFloat64, "EUR", "USD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.Convert(context.Background(), tt.amount, tt.from, tt.to)
			assert.ErrorIs(t, err, ErrNonFiniteResult)
			assert.Equal(t, models.ConversionResult{}, res)
		})
	}
}

func TestConversionService_ConvertLookupFailsAfterSupportCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockRateReader(ctrl)
	reader.EXPECT().IsCurrencySupported("EUR").Return(true)
	reader.EXPECT().GetExchangeRate("USD").Return(1.0, true)
	reader.EXPECT().GetExchangeRate("EUR").Return(0.0, false)

	svc := NewConversionService(reader)
	require.True(t, svc.IsCurrencySupported("EUR"))

	_, err := svc.Convert(context.Background(), 10, "USD", "EUR")
	assert.ErrorIs(t, err, ErrCurrencyNotFound)
	assert.EqualError(t, err, "currency not found: EUR")
}

func TestConversionService_Idempotence(t *testing.T) {
	svc := newTestService()

	for _, code := range svc.SupportedCurrencies() {
		res, err := svc.Convert(context.Background(), 42.4242, code, code)
		require.NoError(t, err)
		assert.Equal(t, models.ConversionResult{ConvertedAmount: 42.4242, ExchangeRate: 1}, res)
	}
}

func TestConversionService_InverseConsistency(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	for _, code := range []string{"EUR", "JPY", "GBP", "CAD", "AUD"} {
		for _, amount := range []float64{1, 99.99, 100, 12345.67} {
			there, err := svc.Convert(ctx, amount, "USD", code)
			require.NoError(t, err)
			back, err := svc.Convert(ctx, there.ConvertedAmount, code, "USD")
			require.NoError(t, err)

			rate, _ := svc.rates.GetExchangeRate(code)
			tolerance := 0.005 + 0.005/rate + 1e-9
			assert.InDelta(t, amount, back.ConvertedAmount, tolerance, "%v USD via %s", amount, code)
		}
	}
}

func TestConversionService_IsConversionSupported(t *testing.T) {
	svc := newTestService()

	assert.True(t, svc.IsConversionSupported("EUR", "EUR"))
	assert.True(t, svc.IsConversionSupported("USD", "USD"))
	assert.True(t, svc.IsConversionSupported("USD", "EUR"))
	assert.True(t, svc.IsConversionSupported("JPY", "USD"))
	assert.True(t, svc.IsConversionSupported("usd", "eur"))
	assert.True(t, svc.IsConversionSupported("Usd", "Eur"))
	assert.True(t, svc.IsConversionSupported("eur", "EUR"))
	assert.False(t, svc.IsConversionSupported("EUR", "JPY"))
	assert.False(t, svc.IsConversionSupported("GBP", "EUR"))
	assert.False(t, svc.IsConversionSupported("jpy", "gbp"))

	codes := []string{"USD", "usd", "EUR", "JPY", "gbp", "XXX"}
	for _, a := range codes {
		for _, b := range codes {
			assert.Equal(t, svc.IsConversionSupported(a, b), svc.IsConversionSupported(b, a), "%s/%s", a, b)
		}
	}
}

func TestConversionService_Table(t *testing.T) {
	svc := newTestService()

	assert.True(t, svc.IsCurrencySupported("eur"))
	assert.True(t, svc.IsCurrencySupported("USD"))
	assert.False(t, svc.IsCurrencySupported("XXX"))
	assert.Equal(t, 6, svc.TotalCurrencies())
	assert.Equal(t, []string{"AUD", "CAD", "EUR", "GBP", "JPY", "USD"}, svc.SupportedCurrencies())
}
