// Package logging builds the zap logger used by both binaries. Logs never go
// to standard output; that stream belongs to the client's report.
package logging

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"timereport/internal/config"
)

// New returns a JSON logger writing to cfg.File, rotated by lumberjack, or to
// stderr when no file is configured.
func New(cfg config.Log) (*zap.Logger, error) {
	var w io.Writer = os.Stderr
	if cfg.File != "" {
		w = &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
		}
	}
	return NewWriter(w, cfg.Level)
}

// NewWriter returns a JSON logger writing to w at the named level.
func NewWriter(w io.Writer, level string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, &config.ConfigurationError{Section: "log", Key: "level", Err: errors.Wrap(err, "bad log level")}
	}
	enc := zap.NewProductionEncoderConfig()
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(enc), zapcore.AddSync(w), zap.NewAtomicLevelAt(lvl))
	return zap.New(core), nil
}
