package api

import (
	"os"
	"strings"

	"go.uber.org/zap"
)

// DebugLogger builds the transport debug logger. The TUI owns stdout, so
// logging is file-only: set CAMPUS_DEBUG_LOG to a path to enable it;
// otherwise requests are not logged at all.
func DebugLogger() *zap.Logger {
	path := strings.TrimSpace(os.Getenv("CAMPUS_DEBUG_LOG"))
	if path == "" {
		return zap.NewNop()
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	log, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}
