package logging

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	once   sync.Once
	logger *zap.SugaredLogger
)

// L returns the shared pipeline logger. Level defaults to info; set
// LANDCOVER_DEBUG=1 for development output.
func L() *zap.SugaredLogger {
	once.Do(func() {
		cfg := zap.NewProductionConfig()
		cfg.Encoding = "console"
		cfg.DisableStacktrace = true
		if os.Getenv("LANDCOVER_DEBUG") == "1" {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		base, err := cfg.Build()
		if err != nil {
			base = zap.NewNop()
		}
		logger = base.Sugar()
	})
	return logger
}
