// Package logging builds prettylog's own diagnostic logger.
package logging

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// envVar selects the diagnostic level, e.g. PRETTYLOG_LOG=debug.
const envVar = "PRETTYLOG_LOG"

// New builds the diagnostic logger. Diagnostics go to stderr: stdout belongs
// to the rendered output and must never carry noise. The default level is
// warn so a clean run is silent; unparseable levels fall back to the default
// rather than failing startup.
func New() *zap.Logger {
	level := zapcore.WarnLevel
	if raw := strings.TrimSpace(os.Getenv(envVar)); raw != "" {
		if parsed, err := zapcore.ParseLevel(raw); err == nil {
			level = parsed
		}
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stderr),
		level,
	)
	return zap.New(core)
}
