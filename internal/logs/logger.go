package logs

import (
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger = newLogger()

func newLogger() *zap.Logger {
	encoderCfg := zapcore.EncoderConfig{
		MessageKey: "message",
		LevelKey:   "severity",
		TimeKey:    "time",
		EncodeLevel: func(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(levelName(l))
		},
		EncodeTime: func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(t.Format(time.RFC3339))
		},
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.Lock(os.Stdout),
		zapcore.DebugLevel,
	)
	return zap.New(core)
}

func levelName(l zapcore.Level) string {
	switch l {
	case zapcore.DebugLevel:
		return "DEBUG"
	case zapcore.WarnLevel:
		return "WARN"
	case zapcore.ErrorLevel:
		return "ERROR"
	case zapcore.FatalLevel:
		return "FATAL"
	default:
		return "INFO"
	}
}

// LogJSON écrit une ligne de log structurée sur stdout.
// level : "DEBUG", "INFO", "WARN", "ERROR" & "FATAL"
func LogJSON(level, message string, fields map[string]interface{}) {
	zapFields := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		zapFields = append(zapFields, zap.Any(k, v))
	}

	switch level {
	case "DEBUG":
		logger.Debug(message, zapFields...)
	case "WARN":
		logger.Warn(message, zapFields...)
	case "ERROR":
		logger.Error(message, zapFields...)
	case "FATAL":
		logger.Fatal(message, zapFields...)
	default:
		logger.Info(message, zapFields...)
	}
}
