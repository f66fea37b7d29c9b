package interceptor

// Config controls which context variables the interceptor attaches to every
// record it writes.
type Config struct {
	// InvocationID adds an "invocation_id" field shared by the records of
	// one call.
	//
	// This setting can be configured via:
	//   - YAML configuration with the "invocation_id" key
	//   - Environment variable INTERCEPTOR_INVOCATION_ID
	InvocationID bool `yaml:"invocation_id" env:"INTERCEPTOR_INVOCATION_ID"`

	// TraceFields adds "trace_id" and "span_id" when the call's context
	// carries a recording OpenTelemetry span.
	//
	// This setting can be configured via:
	//   - YAML configuration with the "trace_fields" key
	//   - Environment variable INTERCEPTOR_TRACE_FIELDS
	TraceFields bool `yaml:"trace_fields" env:"INTERCEPTOR_TRACE_FIELDS"`

	// Fields are static fields added to every record, such as a deployment
	// region.
	//
	// This setting can be configured via:
	//   - YAML configuration with the "fields" key
	//   - Environment variable INTERCEPTOR_FIELDS as "key1:value1,key2:value2"
	Fields map[string]string `yaml:"fields" env:"INTERCEPTOR_FIELDS"`
}
