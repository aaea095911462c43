// Package logging builds the application logger. The TUI owns the
// terminal, so log output goes to a file in the preference directory.
package logging

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const logFileName = "fastcopy.log"

// New constructs a zap logger writing human-readable lines to
// dir/fastcopy.log.
func New(dir string) (*zap.Logger, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, err
	}

	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.DisableCaller = true
	config.DisableStacktrace = true
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.OutputPaths = []string{filepath.Join(dir, logFileName)}
	config.ErrorOutputPaths = config.OutputPaths
	return config.Build()
}
