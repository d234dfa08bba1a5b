package config

const (
	defaultServerPort     = 8080
	defaultMaxUploadBytes = 10 << 20

	defaultDBMaxOpenConns = 10
	defaultDBMaxIdleConns = 5

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultRateLimitBurst = 10
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":             "0.0.0.0",
		"server.port":             defaultServerPort,
		"server.read_timeout":     "5s",
		"server.write_timeout":    "10s",
		"server.idle_timeout":     "120s",
		"server.max_upload_bytes": defaultMaxUploadBytes,

		"log.level":  "info",
		"log.format": "json",

		"auth.jwt_secret": "",

		"database.driver":            DriverMemory,
		"database.dsn":               "",
		"database.max_open_conns":    defaultDBMaxOpenConns,
		"database.max_idle_conns":    defaultDBMaxIdleConns,
		"database.conn_max_lifetime": "30m",

		"storage.driver":     DriverMemory,
		"storage.endpoint":   "",
		"storage.access_key": "",
		"storage.secret_key": "",
		"storage.use_ssl":    false,
		"storage.bucket":     "study-group-images",
		"storage.public_url": "http://localhost:9000/study-group-images",

		"cache.enabled":  false,
		"cache.addr":     "localhost:6379",
		"cache.password": "",
		"cache.db":       0,
		"cache.ttl":      "5m",

		"events.enabled":       false,
		"events.topic":         "study-group-events",
		"events.write_timeout": "5s",

		"client.enabled":                         false,
		"client.base_url":                        "http://localhost:8081",
		"client.timeout":                         "30s",
		"client.retry.max_attempts":              defaultRetryMaxAttempts,
		"client.retry.initial_interval":          "100ms",
		"client.retry.max_interval":              "10s",
		"client.retry.multiplier":                defaultRetryMultiplier,
		"client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"client.circuit_breaker.timeout":         "30s",
		"client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"client.rate_limit.requests_per_second":  0,
		"client.rate_limit.burst":                defaultRateLimitBurst,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "stuti-api",
	}
}
