package main

import (
	"context"
	"flag"
	"fmt"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"go-currency-converter"
	"go-currency-converter/config"
	"go-currency-converter/exchange"
	"go-currency-converter/logger"
	"go-currency-converter/xrates"
	"io"
	"os"
)

func main() {
	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	configPath := fs.String("c", "config.env", "Path to configuration file")
	from := fs.String("from", "USD", "Currency to convert from")
	to := fs.String("to", "USD", "Currency to convert to")
	amount := fs.String("amount", "", "Amount to convert")
	_ = fs.Parse(os.Args[1:])

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	l, err := logger.New(os.Stderr, cfg.Logger.Level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ratesService := xrates.NewService(xrates.WithBaseURL(cfg.XRates.URL), xrates.WithTimeout(cfg.XRates.Timeout))
	ratesService = xrates.NewLoggingService(level.Debug(log.With(l, "component", "xrates")), ratesService)

	convertService := exchange.NewService(ratesService)
	convertService = exchange.NewLoggingService(level.Debug(log.With(l, "component", "convert")), convertService)

	if err := run(context.Background(), os.Stdout, convertService, *amount, *from, *to); err != nil {
		level.Error(l).Log("msg", "conversion failed", "err", err)
		os.Exit(1)
	}
}

// run converts one amount and prints the display string to w
func run(ctx context.Context, w io.Writer, s exchange.Service, amount, from, to string) error {
	a, err := exchange.ParseAmount(amount)
	if err != nil {
		return err
	}

	result, err := s.Convert(ctx, a, converter.ParseCurrency(from), converter.ParseCurrency(to))
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, exchange.Format(result))
	return err
}
