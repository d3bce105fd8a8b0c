package config

// MetricsConfig controls telemetry export settings.
type MetricsConfig struct {
	Enabled        bool   `yaml:"enabled"`
	Port           string `yaml:"port"`
	OtlpEndpoint   string `yaml:"otlp_endpoint"`
	ServiceName    string `yaml:"service_name"`
	OtlpInsecure   bool   `yaml:"otlp_insecure"`
	TracingEnabled bool   `yaml:"tracing_enabled"`
	TraceEndpoint  string `yaml:"trace_endpoint"`
}

func defaultMetrics() MetricsConfig {
	return MetricsConfig{
		Enabled:       false,
		ServiceName:   defaultServiceName,
		OtlpInsecure:  true,
		TraceEndpoint: defaultTraceEndpoint,
	}
}

func (m MetricsConfig) withEnv() MetricsConfig {
	m.Enabled = boolEnvOrDefault(envMetricsOn, m.Enabled)
	m.Port = envOrDefault(envMetricsPort, m.Port)
	m.OtlpEndpoint = envOrDefault(envOtelEndpoint, m.OtlpEndpoint)
	m.ServiceName = envOrDefault(envOtelService, m.ServiceName)
	m.OtlpInsecure = boolEnvOrDefault(envOtelInsecure, m.OtlpInsecure)
	m.TracingEnabled = boolEnvOrDefault(envTraceOn, m.TracingEnabled)
	m.TraceEndpoint = envOrDefault(envTraceEndpoint, m.TraceEndpoint)
	return m
}
