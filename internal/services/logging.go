package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// LoggingConverter decorates a ConversionService with structured logging of conversions.
type LoggingConverter struct {
	*ConversionService
	log *zap.SugaredLogger
}

// NewLoggingConverter returns next wrapped with conversion logging.
func NewLoggingConverter(log *zap.SugaredLogger, next *ConversionService) *LoggingConverter {
	return &LoggingConverter{ConversionService: next, log: log}
}

func (c *LoggingConverter) Convert(
	ctx context.Context,
	amount float64,
	from, to string,
) (res models.ConversionResult, err error) {
	defer func(begin time.Time) {
		kv := []any{
			"amount", amount,
			"from", from,
			"to", to,
			"converted_amount", res.ConvertedAmount,
			"rate", res.ExchangeRate,
			"took", time.Since(begin),
		}
		if id, ok := logger.RequestIDFromContext(ctx); ok {
			kv = append(kv, "request_id", id)
		}
		if err != nil {
			c.log.Warnw("conversion failed", append(kv, "error", err)...)
			return
		}
		c.log.Debugw("conversion", kv...)
	}(time.Now())

	return c.ConversionService.Convert(ctx, amount, from, to)
}
