package tracer

// Config defines the configuration for the OpenTelemetry tracer that
// intercepted calls are traced with.
type Config struct {
	// ServiceName identifies the service in exported spans.
	//
	// This setting can be configured via:
	//   - YAML configuration with the "service_name" key
	//   - Environment variable TRACER_SERVICE_NAME
	ServiceName string `yaml:"service_name" env:"TRACER_SERVICE_NAME"`

	// AppEnv sets the "deployment.environment" and "environment" resource
	// attributes, e.g. "staging" or "production".
	//
	// This setting can be configured via:
	//   - YAML configuration with the "app_env" key
	//   - Environment variable TRACER_APP_ENV
	AppEnv string `yaml:"app_env" env:"TRACER_APP_ENV"`

	// EnableExport sends spans to an OTLP HTTP collector configured through
	// the standard OTEL_EXPORTER_OTLP_* variables. Without it spans are
	// still created, so trace ids keep correlating log records.
	//
	// This setting can be configured via:
	//   - YAML configuration with the "enable_export" key
	//   - Environment variable TRACER_ENABLE_EXPORT
	EnableExport bool `yaml:"enable_export" env:"TRACER_ENABLE_EXPORT"`
}
