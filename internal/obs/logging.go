// Package obs contains observability utilities such as logging.
package obs

import (
	"log/slog"
	"os"
)

// Logger is the global structured logger used by the service.
//
// Logger doubles as the advisory channel of the catalog: outcomes that are
// rejected but not erroneous (a non-positive price, a declined markdown)
// surface here as log events, never as errors.
var Logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

// InitLogger reinstalls the global Logger with a JSON handler at the
// named level (debug, info, warn, error). An unknown name keeps info.
func InitLogger(level string) {
	lvl := slog.LevelInfo
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	Logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}
