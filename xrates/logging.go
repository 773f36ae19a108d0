package xrates

import (
	"context"
	"github.com/go-kit/log"
	"go-currency-converter"
	"time"
)

// loggingService decorates an xrates.Service with logging
type loggingService struct {
	next   Service
	logger log.Logger
}

// NewLoggingService return a new logging service
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{
		next:   s,
		logger: logger,
	}
}

func (s *loggingService) Rate(ctx context.Context, from converter.Currency, to converter.Currency) (rate converter.Rate, err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "rate",
			"from", from,
			"to", to,
			"rate", rate,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Rate(ctx, from, to)
}
