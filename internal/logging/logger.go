// Package logging builds the zap logger shared by the server and the CLI.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/markjakearzadon/influencehub-gobackend/internal/config"
)

// New creates a logger writing to stdout in the configured format and level.
func New(cfg config.Logger, fields ...zap.Field) *zap.Logger {
	core := zapcore.NewCore(newEncoder(cfg.ZapFormat()), zapcore.Lock(os.Stdout), cfg.ZapLevel())
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)).With(fields...)
}

func newEncoder(format string) zapcore.Encoder {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	if format == "console" {
		return zapcore.NewConsoleEncoder(encoderCfg)
	}
	return zapcore.NewJSONEncoder(encoderCfg)
}
