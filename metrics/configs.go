package metrics

// Default addresses the metrics servers listen on when the configuration is
// loaded through the config package.
const (
	DefaultSystemMetricsAddress      = ":9090"
	DefaultApplicationMetricsAddress = ":9091"
)

// Config defines the configuration structure for the Prometheus metrics servers.
//
// The package exposes two endpoints:
// 1. System Metrics Endpoint: Go runtime, process, and build info metrics
// 2. Application Metrics Endpoint: metrics created via CreateCounter, CreateGauge, etc.
//
// Both registries always exist; an empty address only disables the HTTP
// server in front of a registry.
type Config struct {
	// SystemMetricsAddress is the network address of the system metrics
	// server, for example ":9090" or "127.0.0.1:9090". Empty disables it.
	//
	// This setting can be configured via:
	//   - YAML configuration with the "system_metrics_address" key
	//   - Environment variable METRICS_SYSTEM_ADDRESS
	SystemMetricsAddress string `yaml:"system_metrics_address" env:"METRICS_SYSTEM_ADDRESS"`

	// ApplicationMetricsAddress is the network address of the application
	// metrics server, for example ":9091". Empty disables it.
	//
	// This setting can be configured via:
	//   - YAML configuration with the "application_metrics_address" key
	//   - Environment variable METRICS_APPLICATION_ADDRESS
	ApplicationMetricsAddress string `yaml:"application_metrics_address" env:"METRICS_APPLICATION_ADDRESS"`

	// ServiceName is added as the constant "service" label to every metric.
	//
	// This setting can be configured via:
	//   - YAML configuration with the "service_name" key
	//   - Environment variable METRICS_SERVICE_NAME
	ServiceName string `yaml:"service_name" env:"METRICS_SERVICE_NAME"`
}
