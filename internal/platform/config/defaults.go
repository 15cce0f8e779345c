package config

const (
	defaultServerPort = 8080

	defaultMaxOpenConns   = 10
	defaultMaxIdleConns   = 5
	defaultPerPage        = 10
	defaultServiceName    = "todo-lists-service"
	defaultSQLiteDSN      = "file:todo.db?_foreign_keys=on"
	defaultConnLifetime   = "30m"
	defaultSlowSQLQueries = "200ms"
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"server.request_timeout": "8s",

		"log.level":  "info",
		"log.format": "json",

		"database.driver":            DriverSQLite,
		"database.dsn":               defaultSQLiteDSN,
		"database.max_open_conns":    defaultMaxOpenConns,
		"database.max_idle_conns":    defaultMaxIdleConns,
		"database.conn_max_lifetime": defaultConnLifetime,
		"database.auto_migrate":      true,
		"database.slow_threshold":    defaultSlowSQLQueries,

		"pagination.default_per_page": defaultPerPage,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": defaultServiceName,
	}
}
