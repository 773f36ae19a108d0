package xrates

import (
	"context"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go-currency-converter"
	"time"
)

// instrumentingService decorates an xrates.Service with Prometheus metrics
type instrumentingService struct {
	next     Service
	fetches  *prometheus.CounterVec
	duration prometheus.Histogram
}

// NewInstrumentingService registers the fetch metrics with reg and returns the decorated service
func NewInstrumentingService(reg prometheus.Registerer, s Service) Service {
	factory := promauto.With(reg)
	return &instrumentingService{
		next: s,
		fetches: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "xrates_fetch_total",
				Help: "Rate page fetches by currency pair and outcome",
			},
			[]string{"from", "to", "result"},
		),
		duration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "xrates_fetch_duration_seconds",
				Help:    "Time spent fetching and parsing the rate page",
				Buckets: prometheus.DefBuckets,
			},
		),
	}
}

func (s *instrumentingService) Rate(ctx context.Context, from converter.Currency, to converter.Currency) (rate converter.Rate, err error) {
	defer func(begin time.Time) {
		result := "ok"
		if err != nil {
			result = string(converter.FetchErrorKindOf(err))
			if result == "" {
				result = "error"
			}
		}
		s.fetches.WithLabelValues(from.String(), to.String(), result).Inc()
		s.duration.Observe(time.Since(begin).Seconds())
	}(time.Now())
	return s.next.Rate(ctx, from, to)
}
