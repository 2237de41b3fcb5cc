package config

// this holds the resolved configuration values from CLI
var (
	ServerAddr        string // listen addr for the HTTP API
	LogLevel          string // sets the log level (zap log level values)
	LogFormat         string // text vs json
	EnableTelemetry   bool   // enable telemetry
	TelemetryEndpoint string // endpoint that receives open telemetry data
	ProfilingPort     int    // port to use for providing profiling data
	Seed              uint64 // seed for the simulation randomness (0: time based)
)
