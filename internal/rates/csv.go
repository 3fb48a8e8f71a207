package rates

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// Column layout of the rates dataset:
// Record Date, Country-Currency, Exchange Rate, Effective Date, ISO Code.
const (
	colRecordDate = iota
	colCountryCurrency
	colRate
	colEffectiveDate
	colISOCode
	csvColumns
)

//go:embed data/exchange_rates_with_iso.csv
var embeddedRates []byte

// CSVSource reads rate records from a CSV file, or from the dataset
// embedded in the binary when no path is set.
type CSVSource struct {
	path string
}

// NewCSVSource creates a CSV source. An empty path selects the embedded dataset.
func NewCSVSource(path string) *CSVSource {
	return &CSVSource{path: path}
}

// Load parses the configured dataset.
func (s *CSVSource) Load(_ context.Context) ([]models.ExchangeRate, error) {
	if s.path == "" {
		return ParseCSV(bytes.NewReader(embeddedRates))
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open rates file: %w", err)
	}
	defer f.Close()

	return ParseCSV(f)
}

// ParseCSV reads rate records, skipping the header row, short rows and rows
// whose rate is not a number. Codes are trimmed and upper-cased.
func ParseCSV(r io.Reader) ([]models.ExchangeRate, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var (
		out    []models.ExchangeRate
		header = true
	)
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read rates csv: %w", err)
		}
		if header {
			header = false
			continue
		}
		if len(row) < csvColumns || isBlank(row) {
			continue
		}

		code := normalize(row[colISOCode])
		rate, err := strconv.ParseFloat(strings.TrimSpace(row[colRate]), 64)
		if code == "" || err != nil {
			continue
		}

		out = append(out, models.ExchangeRate{
			RecordDate:      strings.TrimSpace(row[colRecordDate]),
			CountryCurrency: strings.TrimSpace(row[colCountryCurrency]),
			Rate:            rate,
			EffectiveDate:   strings.TrimSpace(row[colEffectiveDate]),
			ISOCode:         code,
		})
	}

	return out, nil
}

func isBlank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
