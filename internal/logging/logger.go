// Package logging configures the process-wide zap logger. Production gets
// JSON output; development gets a colored console encoder.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap.Logger with calculator-specific field helpers.
type Logger struct {
	*zap.Logger
}

// Config defines logger construction options.
type Config struct {
	Level       string // "debug", "info", "warn", "error"
	Development bool
	OutputPaths []string
}

// New builds a logger from the config.
func New(cfg Config) (*Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, err
	}

	outputs := cfg.OutputPaths
	if len(outputs) == 0 {
		outputs = []string{"stdout"}
	}

	zapCfg := zap.Config{
		Level:             zap.NewAtomicLevelAt(level),
		Development:       cfg.Development,
		Encoding:          encoding(cfg.Development),
		EncoderConfig:     encoderConfig(cfg.Development),
		OutputPaths:       outputs,
		ErrorOutputPaths:  []string{"stderr"},
		DisableStacktrace: !cfg.Development,
	}

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, err
	}
	return &Logger{Logger: logger}, nil
}

// NewDefault builds a production logger at info level, falling back to a
// no-op logger if construction fails.
func NewDefault() *Logger {
	logger, err := New(Config{Level: "info"})
	if err != nil {
		return &Logger{Logger: zap.NewNop()}
	}
	return logger
}

// NewDevelopment builds a debug-level console logger.
func NewDevelopment() *Logger {
	logger, err := New(Config{Level: "debug", Development: true})
	if err != nil {
		return &Logger{Logger: zap.NewNop()}
	}
	return logger
}

// WithTool returns a logger scoped to one tool invocation.
func (l *Logger) WithTool(toolID string) *Logger {
	return &Logger{Logger: l.Logger.With(zap.String("tool", toolID))}
}

// WithExpression attaches a user expression, truncated so hostile input
// cannot flood the log stream.
func (l *Logger) WithExpression(source string) *Logger {
	const maxLogged = 256
	if len(source) > maxLogged {
		source = source[:maxLogged] + "..."
	}
	return &Logger{Logger: l.Logger.With(zap.String("expression", source))}
}

func encoding(development bool) string {
	if development {
		return "console"
	}
	return "json"
}

func encoderConfig(development bool) zapcore.EncoderConfig {
	if development {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		return cfg
	}

	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "timestamp"
	cfg.MessageKey = "message"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg
}

// IsProduction reports whether the ENV variable marks a production deploy.
func IsProduction() bool {
	env := os.Getenv("ENV")
	return env == "production" || env == "prod"
}
