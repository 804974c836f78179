package log

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/aws/smithy-go"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LevelEnv is the environment variable read for the log level when none is given.
const LevelEnv = "HOUSEKEEPER_LOG"

// Output formats.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// ErrUnknownFormat is returned by New for an unsupported output format.
var ErrUnknownFormat = errors.New("unknown log format")

// Level resolves the log level from the given value, falling back to LevelEnv
// and then to info.
func Level(value string) string {
	lvl := strings.ToLower(strings.TrimSpace(value))
	if lvl == "" {
		lvl = strings.ToLower(os.Getenv(LevelEnv))
	}
	if lvl == "" {
		lvl = "info"
	}

	return lvl
}

// New builds a zap logger writing to stderr with the given level and format.
func New(level, format string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(Level(level))
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}

	var cfg zap.Config
	switch format {
	case "", FormatJSON:
		cfg = zap.NewProductionConfig()
	case FormatConsole:
		cfg = zap.NewDevelopmentConfig()
		cfg.DisableStacktrace = true
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	return cfg.Build()
}

// Err returns the error field together with the AWS error code when there is one.
func Err(err error) []zap.Field {
	fields := []zap.Field{zap.Error(err)}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		fields = append(fields, zap.String("error_code", apiErr.ErrorCode()))
	}

	return fields
}

// NewHandler returns an error handler logging through the given zap logger.
func NewHandler(l *zap.Logger) *Handler {
	return &Handler{l}
}

// Handler reports non fatal errors as zap error entries.
type Handler struct {
	l *zap.Logger
}

// Error logs the given error.
func (h *Handler) Error(_ context.Context, err error) {
	h.l.Error("operation failed", Err(err)...)
}
