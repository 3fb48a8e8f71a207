package rates

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// Source provides the raw exchange rate records a Table is built from.
type Source interface {
	Load(ctx context.Context) ([]models.ExchangeRate, error)
}

// Table is an immutable lookup of USD-relative exchange rates keyed by ISO code.
// It is safe for concurrent use once constructed.
type Table struct {
	rates map[string]float64
	codes []string
}

// NewTable builds a Table from rate records.
// The first record seen for a code wins, records with a malformed code or a
// non-positive rate are skipped, and USD is always present with rate 1.0.
func NewTable(entries []models.ExchangeRate) *Table {
	rates := make(map[string]float64, len(entries)+1)

	for _, e := range entries {
		code := normalize(e.ISOCode)
		if !isISOCode(code) {
			logger.Log.Debugw("skipping rate record with invalid code", "code", e.ISOCode)
			continue
		}
		if e.Rate <= 0 || math.IsInf(e.Rate, 0) || math.IsNaN(e.Rate) {
			logger.Log.Debugw("skipping rate record with invalid rate", "code", code, "rate", e.Rate)
			continue
		}
		if _, ok := rates[code]; ok {
			continue
		}
		rates[code] = e.Rate
	}

	rates[models.USD] = 1.0

	codes := make([]string, 0, len(rates))
	for code := range rates {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	return &Table{rates: rates, codes: codes}
}

// Load reads every record from src and builds a Table.
func Load(ctx context.Context, src Source) (*Table, error) {
	entries, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load exchange rates: %w", err)
	}

	t := NewTable(entries)
	logger.Log.Infow("exchange rates loaded", "records", len(entries), "currencies", t.Len())
	return t, nil
}

// GetExchangeRate returns the number of code units equal to 1 USD.
func (t *Table) GetExchangeRate(code string) (float64, bool) {
	rate, ok := t.rates[normalize(code)]
	return rate, ok
}

// IsCurrencySupported reports whether code has a known rate.
func (t *Table) IsCurrencySupported(code string) bool {
	_, ok := t.rates[normalize(code)]
	return ok
}

// Codes returns the supported codes in ascending order.
func (t *Table) Codes() []string {
	out := make([]string, len(t.codes))
	copy(out, t.codes)
	return out
}

// Len returns the number of supported currencies.
func (t *Table) Len() int {
	return len(t.rates)
}

func normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func isISOCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < 'A' || code[i] > 'Z' {
			return false
		}
	}
	return true
}
