package logger

import (
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LoggerClient is a wrapper around Uber's Zap logger.
// It serves both as the application's structured logger and as the Backend
// log plans are executed against.
//
// LoggerClient implements the Logger and Backend interfaces.
type LoggerClient struct {
	// Zap is the underlying zap.Logger instance
	// This is exposed to allow direct access to Zap-specific functionality
	// when needed, but most logging should go through the wrapper methods.
	Zap *zap.Logger

	// tracingEnabled indicates whether the *WithContext methods add trace
	// and span IDs to log entries
	tracingEnabled bool

	// thresholds holds the per-logger minimum levels from Config.Loggers
	thresholds map[string]zapcore.Level

	// named caches one child logger per logger name
	named sync.Map
}

// NewLoggerClient initializes and returns a new instance of the logger based on configuration.
//
// Parameters:
//   - cfg: Configuration for the logger, including log level, output and tracing options
//
// Returns:
//   - *LoggerClient: A configured logger instance ready for use
//
// The logger is configured with:
//   - JSON encoding for structured logging
//   - ISO8601 timestamp format
//   - Capital letter level encoding ("TRACE", "DEBUG", "INFO", ...)
//   - Process ID and service name as default fields
//   - Caller information (file and line) included in log entries
//   - Output directed to stderr, stdout or a rotating file
//
// Example:
//
//	log := logger.NewLoggerClient(logger.Config{
//	    Level:       logger.Info,
//	    ServiceName: "my-service",
//	    Output:      logger.OutputFile,
//	    File:        logger.FileConfig{Path: "/var/log/my-service.log", MaxSizeMB: 50},
//	})
//	log.Info("Application started", nil)
func NewLoggerClient(cfg Config) *LoggerClient {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = levelEncoder
	encoderCfg.EncodeCaller = zapcore.FullCallerEncoder
	encoderCfg.EncodeDuration = zapcore.MillisDurationEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		newWriteSyncer(cfg),
		zap.NewAtomicLevelAt(parseLevel(cfg.Level)),
	)

	// Default to 1 if not set, which works for direct usage of the logger
	callerSkip := cfg.CallerSkip
	if callerSkip <= 0 {
		callerSkip = 1
	}

	z := zap.New(core,
		zap.AddCaller(),
		zap.AddCallerSkip(callerSkip),
		zap.AddStacktrace(zapcore.ErrorLevel),
		zap.Fields(
			zap.Int("pid", os.Getpid()),
			zap.String("service", cfg.ServiceName),
		),
	)

	return newClient(z, cfg)
}

func newClient(z *zap.Logger, cfg Config) *LoggerClient {
	thresholds := make(map[string]zapcore.Level, len(cfg.Loggers))
	for name, level := range cfg.Loggers {
		thresholds[name] = parseLevel(level)
	}
	return &LoggerClient{
		Zap:            z,
		tracingEnabled: cfg.EnableTracing,
		thresholds:     thresholds,
	}
}

// newWriteSyncer picks the destination for cfg.Output. A file output without
// a path falls back to stderr.
func newWriteSyncer(cfg Config) zapcore.WriteSyncer {
	switch cfg.Output {
	case OutputStdout:
		return zapcore.Lock(os.Stdout)
	case OutputFile:
		if cfg.File.Path == "" {
			_, _ = os.Stderr.WriteString("WARNING: logger output is file but no path is set, falling back to stderr\n")
			return zapcore.Lock(os.Stderr)
		}
		if dir := filepath.Dir(cfg.File.Path); dir != "." {
			_ = os.MkdirAll(dir, 0o750)
		}
		return zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.File.Path,
			MaxSize:    cfg.File.MaxSizeMB, // megabytes
			MaxBackups: cfg.File.MaxBackups,
			MaxAge:     cfg.File.MaxAgeDays, // days
			Compress:   cfg.File.Compress,
		})
	default:
		return zapcore.Lock(os.Stderr)
	}
}
