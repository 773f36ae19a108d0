package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go-currency-converter/config"
	"go-currency-converter/exchange"
	"go-currency-converter/http"
	"go-currency-converter/logger"
	"go-currency-converter/xrates"
	"os"
	"os/signal"
	"syscall"
	"time"

	nhttp "net/http"
)

func main() {
	configPath := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()

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
	ratesService = xrates.NewInstrumentingService(prometheus.DefaultRegisterer, ratesService)

	convertService := exchange.NewService(ratesService)
	convertService = exchange.NewLoggingService(level.Info(log.With(l, "component", "convert")), convertService)

	handler := http.NewServer(convertService, promhttp.Handler(), level.Info(log.With(l, "component", "http")))

	if err := run(cfg.Server.ListenAddr, handler, l); err != nil {
		level.Error(l).Log("msg", "server stopped", "err", err)
		os.Exit(1)
	}
}

// run serves handler on addr until SIGINT or SIGTERM
func run(addr string, handler nhttp.Handler, l log.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := &nhttp.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		level.Info(l).Log("msg", "listening", "addr", addr)
		errc <- server.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	level.Info(l).Log("msg", "shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errc; err != nil && !errors.Is(err, nhttp.ErrServerClosed) {
		return err
	}
	return nil
}
