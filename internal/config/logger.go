package config

import (
	"strings"

	"go.uber.org/zap/zapcore"
)

// Logger configures the zap logger. Level is one of debug, info, warn or
// error; Format is json (default) or console.
type Logger struct {
	Level  string `env:"LEVEL" envDefault:"info"`
	Format string `env:"FORMAT" envDefault:"json"`
}

// ZapLevel converts the textual level. Unknown levels fall back to info.
func (c Logger) ZapLevel() zapcore.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error", "err":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// ZapFormat normalises the format. Anything but "console" is json.
func (c Logger) ZapFormat() string {
	if strings.EqualFold(c.Format, "console") {
		return "console"
	}
	return "json"
}
