package lambdautils

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// NewLogger returns a JSON logger writing to w at the named level (debug,
// info, warn or error). Unknown levels fall back to info.
func NewLogger(w io.Writer, level string) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)})
	return slog.New(handler)
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return slog.LevelInfo
	}

	return l
}

// ContextLogger annotates base with the invocation's function name, version
// and request id. When no lambda request id is available, as in local runs, a
// random one is generated so log lines of one request can still be grouped.
func ContextLogger(ctx context.Context, base *slog.Logger) *slog.Logger {
	meta := GetLambdaMetaData(ctx)

	requestID := meta.RequestID
	if requestID == "" {
		requestID = uuid.NewString()
	}

	logger := base.With("request_id", requestID)
	if meta.FunctionName != "" {
		logger = logger.With(
			"function", meta.FunctionName,
			"version", meta.FunctionVersion,
		)
	}

	return logger
}
