package exchange

import (
	"context"
	"errors"
	"github.com/go-kit/log"
	"go-currency-converter"
	"time"
)

// loggingService decorates an exchange.Service with logging
type loggingService struct {
	logger log.Logger
	next   Service
}

// NewLoggingService returns a new instance of a logging Service
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{
		next:   s,
		logger: logger,
	}
}

func (s *loggingService) Convert(ctx context.Context, amount converter.Amount, from converter.Currency, to converter.Currency) (ex converter.Exchanged, err error) {
	defer func(begin time.Time) {
		keyvals := []interface{}{
			"method", "convert",
			"pair", string(from) + "/" + string(to),
			"amount", amount,
			"took", time.Since(begin),
		}
		if err != nil {
			keyvals = append(keyvals, "kind", failureKind(err), "err", err)
		} else {
			keyvals = append(keyvals, "rate", ex.Rate, "display", Format(ex))
		}
		s.logger.Log(keyvals...)
	}(time.Now())
	return s.next.Convert(ctx, amount, from, to)
}

// failureKind names why a conversion failed: a FetchError kind, "amount" or "currency"
func failureKind(err error) string {
	var ae *converter.AmountError
	switch {
	case errors.As(err, &ae):
		return "amount"
	case errors.Is(err, converter.ErrUnsupportedCurrency):
		return "currency"
	}
	if kind := converter.FetchErrorKindOf(err); kind != "" {
		return string(kind)
	}
	return "unknown"
}
