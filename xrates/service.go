package xrates

import (
	"context"
	"errors"
	"fmt"
	"go-currency-converter"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const ApiUrlBase = "https://www.x-rates.com"

// Service wraps the x-rates.com currency calculator page
type Service interface {
	Rate(ctx context.Context, from converter.Currency, to converter.Currency) (converter.Rate, error)
}

// service scrapes x-rates.com
type service struct {
	// url base site url
	url string

	// client for HTTP requests
	client *http.Client

	// timeout overrides the client timeout when set
	timeout time.Duration
}

// Option configures a Service built by NewService
type Option func(*service)

// WithBaseURL points the service at another host, e.g. a test server
func WithBaseURL(u string) Option {
	return func(s *service) {
		s.url = strings.TrimSuffix(u, "/")
	}
}

// WithTimeout sets the client timeout for the single page request.
// It applies to a copy, a client passed with WithHTTPClient is never modified.
func WithTimeout(d time.Duration) Option {
	return func(s *service) {
		s.timeout = d
	}
}

// WithHTTPClient replaces the HTTP client
func WithHTTPClient(c *http.Client) Option {
	return func(s *service) {
		s.client = c
	}
}

// NewService constructs a valid x-rates Service.
func NewService(opts ...Option) Service {
	s := &service{
		url: ApiUrlBase,
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.timeout > 0 {
		client := *s.client
		client.Timeout = s.timeout
		s.client = &client
	}
	return s
}

// Rate loads the live rate for one unit of from, expressed in to.
// There is no retry and no caching, every call is one page request.
func (s *service) Rate(ctx context.Context, from converter.Currency, to converter.Currency) (converter.Rate, error) {
	const op = "xrates"

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, s.calculatorURL(from, to), nil)
	if err != nil {
		return 0, &converter.FetchError{Kind: converter.KindNetwork, Op: op, Err: fmt.Errorf("building http request: %w", err)}
	}
	httpResponse, err := s.client.Do(request)
	if err != nil {
		return 0, &converter.FetchError{Kind: converter.KindNetwork, Op: op, Err: fmt.Errorf("http get: %w", err)}
	}
	defer httpResponse.Body.Close()

	if httpResponse.StatusCode != http.StatusOK {
		return 0, &converter.FetchError{Kind: converter.KindStatus, Op: op, Err: fmt.Errorf("unexpected status %v", httpResponse.Status)}
	}

	rate, err := ParseRate(httpResponse.Body)
	if err != nil {
		return 0, &converter.FetchError{Kind: kindOf(err), Op: op, Err: err}
	}
	return rate, nil
}

// calculatorURL the calculator page converting one unit of from into to
func (s *service) calculatorURL(from, to converter.Currency) string {
	return fmt.Sprintf("%v/calculator/?from=%v&to=%v&amount=1",
		s.url, url.QueryEscape(from.String()), url.QueryEscape(to.String()))
}

func kindOf(err error) converter.FetchErrorKind {
	var fe *formatError
	if errors.As(err, &fe) {
		return converter.KindFormat
	}
	return converter.KindParse
}
