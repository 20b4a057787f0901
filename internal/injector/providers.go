package injector

import (
	"github.com/zeusync/vecmath/internal/check"
	"github.com/zeusync/vecmath/internal/core/observability/log"
)

// ProvideLogger builds the process logger at the configured level.
func ProvideLogger(cfg check.Config) *log.Logger {
	return log.New(log.ParseLevel(cfg.LogLevel))
}
