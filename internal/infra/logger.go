package infra

import (
	"fmt"
	"os"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/voxboard/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger builds the production zap logger. With logging.file set, entries
// are also written to a rotating file.
func NewLogger(cfg config.LoggingConfig) (*logger.ZapLogger, func(), error) {
	lvl, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("parse log level: %w", err)
	}

	enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	cores := []zapcore.Core{
		zapcore.NewCore(enc, zapcore.Lock(os.Stdout), lvl),
	}

	var rotator *lumberjack.Logger
	if cfg.File != "" {
		rotator = &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			Compress:   true,
		}
		cores = append(cores, zapcore.NewCore(enc, zapcore.AddSync(rotator), lvl))
	}

	zcore := zap.New(zapcore.NewTee(cores...), zap.AddCaller())

	closeFn := func() {
		_ = zcore.Sync()
		if rotator != nil {
			_ = rotator.Close()
		}
	}

	return logger.NewZapLogger(zcore.Sugar()), closeFn, nil
}
