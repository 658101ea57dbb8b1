package logger

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/jgarciao/greppetto/internal/config"
)

// New строит диагностический логгер. Диагностика идёт отдельно от результатов:
// в консольном режиме это stderr, в prod — json-файл с ротацией. stdout
// остаётся только для найденных строк.
func New(cfg *config.Config) (*zap.Logger, error) {
	runID := zap.String("run_id", uuid.NewString())

	switch cfg.Env {
	case "prod":
		logFile := cfg.LogFile
		if logFile == "" {
			logFile = filepath.Join("logs", "greppetto.log")
		}
		writer := zapcore.AddSync(&lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    10, // мегабайты
			MaxBackups: 3,
			MaxAge:     30, // дни
			Compress:   true,
		})

		encoderCfg := zap.NewProductionEncoderConfig()
		encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

		core := zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderCfg),
			writer,
			zap.InfoLevel,
		)
		return zap.New(core).With(runID), nil

	case "dev":
		core := zapcore.NewCore(
			zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
			zapcore.Lock(os.Stderr),
			zap.DebugLevel,
		)
		return zap.New(core).With(runID), nil

	default:
		// обычный запуск: в stderr попадают только предупреждения и ошибки
		core := zapcore.NewCore(
			zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
			zapcore.Lock(os.Stderr),
			zap.WarnLevel,
		)
		return zap.New(core).With(runID), nil
	}
}
