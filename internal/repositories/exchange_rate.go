package repositories

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// DefaultRatesKey is the Redis hash holding ISO code -> rate pairs.
const DefaultRatesKey = "exchange_rates"

// ExchangeRateRedisRepository reads a snapshot of exchange rates from a Redis hash.
type ExchangeRateRedisRepository struct {
	client redis.Cmdable
	key    string
}

// NewExchangeRateRedisRepository creates a new repository reading the given hash key.
func NewExchangeRateRedisRepository(client redis.Cmdable, key string) *ExchangeRateRedisRepository {
	if key == "" {
		key = DefaultRatesKey
	}
	return &ExchangeRateRedisRepository{
		client: client,
		key:    key,
	}
}

// Load returns every rate stored in the hash, ordered by code.
// Fields whose value is not a number are skipped.
func (r *ExchangeRateRedisRepository) Load(ctx context.Context) ([]models.ExchangeRate, error) {
	vals, err := r.client.HGetAll(ctx, r.key).Result()
	if err != nil {
		logger.Log.Errorw("failed to read exchange rates from redis", "key", r.key, "error", err)
		return nil, fmt.Errorf("read exchange rates hash %q: %w", r.key, err)
	}

	out := make([]models.ExchangeRate, 0, len(vals))
	for code, val := range vals {
		rate, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			logger.Log.Warnw("skipping unparsable exchange rate", "key", r.key, "code", code, "value", val)
			continue
		}
		out = append(out, models.ExchangeRate{
			ISOCode: strings.ToUpper(strings.TrimSpace(code)),
			Rate:    rate,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ISOCode < out[j].ISOCode })

	logger.Log.Infow("exchange rates read from redis", "key", r.key, "count", len(out))

	return out, nil
}
