package logger

// Log level constants accepted by Config.Level and Config.Loggers.
const (
	// Trace is below Debug and only shows up when explicitly enabled.
	Trace = "trace"

	// Debug enables all log messages.
	Debug = "debug"

	// Info suppresses Trace and Debug messages.
	Info = "info"

	// Warning only outputs Warning and Error messages.
	Warning = "warning"

	// Error only outputs Error messages.
	Error = "error"
)

// Output destinations accepted by Config.Output.
const (
	OutputStderr = "stderr"
	OutputStdout = "stdout"
	OutputFile   = "file"
)

// Config defines the configuration structure for the logger.
type Config struct {
	// Level determines the minimum log level that will be output.
	// Valid values are "trace", "debug", "info", "warning" and "error".
	// Unknown values fall back to "info".
	//
	// This setting can be configured via:
	//   - YAML configuration with the "level" key
	//   - Environment variable LOGGER_LEVEL
	Level string `yaml:"level" env:"LOGGER_LEVEL" env-default:"info"`

	// EnableTracing controls whether the *WithContext methods add the
	// "trace_id" and "span_id" of the active OpenTelemetry span.
	//
	// This setting can be configured via:
	//   - YAML configuration with the "enable_tracing" key
	//   - Environment variable LOGGER_ENABLE_TRACING
	EnableTracing bool `yaml:"enable_tracing" env:"LOGGER_ENABLE_TRACING"`

	// ServiceName is the name of the service that is logging messages.
	// This value is used to populate the "service" field in log entries.
	ServiceName string `yaml:"service_name" env:"LOGGER_SERVICE_NAME"`

	// CallerSkip controls the number of stack frames to skip when reporting the caller.
	//
	// Guidelines for setting CallerSkip:
	//   - 1 (default): Use when calling the logger directly from your code
	//   - 2: Use when you have one additional wrapper layer
	//
	// If not set or set to 0, defaults to 1.
	CallerSkip int `yaml:"caller_skip" env:"LOGGER_CALLER_SKIP"`

	// Output selects where entries are written: "stderr" (default),
	// "stdout" or "file". "file" writes to File.Path with rotation.
	Output string `yaml:"output" env:"LOGGER_OUTPUT" env-default:"stderr"`

	// File configures rotation when Output is "file".
	File FileConfig `yaml:"file"`

	// Loggers raises the minimum level of individual named loggers, keyed by
	// logger name. Entries below the global Level stay suppressed.
	//
	// Example:
	//
	//	loggers:
	//	  orders.Service: warning
	//	  audit: debug
	Loggers map[string]string `yaml:"loggers"`
}

// FileConfig controls log file rotation.
type FileConfig struct {
	// Path is the log file. An empty path falls back to stderr.
	Path string `yaml:"path" env:"LOGGER_FILE_PATH"`

	// MaxSizeMB is the size in megabytes at which the file is rotated.
	MaxSizeMB int `yaml:"max_size_mb" env:"LOGGER_FILE_MAX_SIZE_MB" env-default:"100"`

	// MaxBackups is the number of rotated files kept.
	MaxBackups int `yaml:"max_backups" env:"LOGGER_FILE_MAX_BACKUPS" env-default:"3"`

	// MaxAgeDays is how long rotated files are kept.
	MaxAgeDays int `yaml:"max_age_days" env:"LOGGER_FILE_MAX_AGE_DAYS" env-default:"28"`

	// Compress gzips rotated files.
	Compress bool `yaml:"compress" env:"LOGGER_FILE_COMPRESS"`
}
