package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

const selectExchangeRatesQuery = `
	SELECT record_date::text AS record_date,
	       country_currency,
	       exchange_rate,
	       effective_date::text AS effective_date,
	       iso_code
	FROM exchange_rates
	ORDER BY record_date DESC, iso_code
`

// ExchangeRatePostgresRepository reads exchange rate records from PostgreSQL.
type ExchangeRatePostgresRepository struct {
	db *sqlx.DB
}

// NewExchangeRatePostgresRepository creates a new repository instance.
func NewExchangeRatePostgresRepository(db *sqlx.DB) *ExchangeRatePostgresRepository {
	return &ExchangeRatePostgresRepository{db: db}
}

// Load returns all records, newest first, so that the most recent rate of
// a currency is the first one seen.
func (r *ExchangeRatePostgresRepository) Load(ctx context.Context) ([]models.ExchangeRate, error) {
	var out []models.ExchangeRate
	err := sqlx.SelectContext(ctx, r.db, &out, selectExchangeRatesQuery)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(selectExchangeRatesQuery), " "),
		"result", len(out),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return out, nil
}
