package logger

import (
	"fmt"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"io"
	"strings"
)

// New returns a logfmt logger on w stamped with time and caller, filtered to lvl and above.
func New(w io.Writer, lvl string) (log.Logger, error) {
	var option level.Option
	switch strings.ToLower(lvl) {
	case "debug":
		option = level.AllowDebug()
	case "", "info":
		option = level.AllowInfo()
	case "warn":
		option = level.AllowWarn()
	case "error":
		option = level.AllowError()
	default:
		return nil, fmt.Errorf("unknown log level: %v", lvl)
	}

	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = level.NewFilter(logger, option)
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
	return logger, nil
}
