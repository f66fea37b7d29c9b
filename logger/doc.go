// Package logger provides structured logging on top of Uber's Zap, and the
// backend that log plans are executed against.
//
// # Architecture
//
// This package follows the "accept interfaces, return structs" design pattern:
//   - Logger interface: application logging with an error and field maps
//   - Backend interface: level check and sink for log plan entries
//   - LoggerClient struct: implements both
//   - NewLoggerClient constructor: returns *LoggerClient (concrete type)
//   - FXModule: provides *LoggerClient, Logger and Backend for dependency injection
//
// Core Features:
//   - JSON output with ISO8601 timestamps and capital level names, including TRACE
//   - Output to stderr, stdout or a rotating file (lumberjack)
//   - Named loggers with per-name minimum levels
//   - "{}" message templates rendered by Format
//   - Trace and span ID correlation with OpenTelemetry
//
// # Direct Usage (Without FX)
//
//	log := logger.NewLoggerClient(logger.Config{
//		Level:       logger.Info,
//		ServiceName: "my-service",
//		Loggers:     map[string]string{"orders.Service": logger.Warning},
//	})
//
//	log.Info("Service started", nil, map[string]interface{}{"port": 8080})
//
//	// Executing a log plan entry
//	if log.Enabled(plan.Logger(), plan.Level()) {
//		log.Write(ctx, logger.Entry{
//			Logger:  plan.Logger(),
//			Level:   plan.Level(),
//			Message: plan.Message(),
//			Args:    plan.Values(args, conv),
//		})
//	}
//
// # FX Module Integration
//
//	app := fx.New(
//		logger.FXModule,
//		fx.Provide(func() logger.Config {
//			return logger.Config{Level: logger.Info, ServiceName: "my-service"}
//		}),
//	)
//	app.Run()
//
// # Configuration
//
// The logger can be configured via environment variables when loaded through
// the config package:
//
//	LOGGER_LEVEL=debug              # trace, debug, info, warning, error
//	LOGGER_ENABLE_TRACING=true      # add trace_id/span_id in *WithContext methods
//	LOGGER_OUTPUT=file              # stderr, stdout, file
//	LOGGER_FILE_PATH=/var/log/app.log
//
// # Thread Safety
//
// All methods are safe for concurrent use by multiple goroutines.
package logger
