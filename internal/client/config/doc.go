// Package config loads runtime configuration for the SocialHub CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables prefixed SOCIALHUB_, optionally seeded from
//     a .env file in the working directory (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-s string          storage backend: sqlite, file or redis
//	-db string         SQLite database path
//	-dir string        directory of the file backend
//	-r string          Redis address (host:port)
//	-latency duration  simulated login/signup delay
//	-log string        log file path
//	-log-level string  debug, info, warn or error
//	-charts string     directory for exported SVG charts
//
// # JSON schema
//
// Durations use timex.Duration, so they can be strings like "1s" or
// integer nanoseconds. Absent keys keep the earlier value:
//
//	{
//	  "storage_backend": "sqlite",
//	  "database_path": "/home/me/.config/socialhub/socialhub.db",
//	  "storage_dir": "/home/me/.config/socialhub/store",
//	  "redis_addr": "127.0.0.1:6379",
//	  "auth_latency": "1s",
//	  "log_file": "/home/me/.config/socialhub/socialhub.log",
//	  "log_level": "info",
//	  "chart_dir": ".",
//	  "report_style": "auto"
//	}
package config
