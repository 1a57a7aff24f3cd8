package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
)

// newLogger builds a slog.Logger from the level and format names.
func newLogger(out io.Writer, level, format string) (*slog.Logger, error) {
	var hopts slog.HandlerOptions
	switch strings.ToLower(level) {
	case "debug":
		hopts.Level = slog.LevelDebug
	case "", "info":
		hopts.Level = slog.LevelInfo
	case "warn":
		hopts.Level = slog.LevelWarn
	case "error":
		hopts.Level = slog.LevelError
	default:
		return nil, fmt.Errorf("unknown log level: %#v", level)
	}

	var handler slog.Handler
	switch strings.ToLower(format) {
	case "", "text":
		handler = slog.NewTextHandler(out, &hopts)
	case "json":
		handler = slog.NewJSONHandler(out, &hopts)
	default:
		return nil, fmt.Errorf("unknown log format: %#v", format)
	}
	return slog.New(handler), nil
}

func configLogger(cctx *cli.Context) (*slog.Logger, error) {
	logger, err := newLogger(os.Stderr, cctx.String("log-level"), cctx.String("log-format"))
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)
	return logger, nil
}
