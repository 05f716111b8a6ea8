package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const envPrefix = "SOCIALHUB_"

// parseEnv overlays cfg with SOCIALHUB_* variables. Values from the
// dotenv file are used only where the process environment has none; a
// missing dotenv file is not an error.
func parseEnv(cfg *Config, dotenv string) error {
	vars := map[string]string{}

	if dotenv != "" {
		fileVars, err := godotenv.Read(dotenv)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("read %s: %w", dotenv, err)
		}
		for k, v := range fileVars {
			vars[k] = v
		}
	}
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok && strings.HasPrefix(k, envPrefix) {
			vars[k] = v
		}
	}

	strs := map[string]*string{
		"STORAGE":      &cfg.StorageBackend,
		"DB_PATH":      &cfg.DatabasePath,
		"STORAGE_DIR":  &cfg.StorageDir,
		"REDIS_ADDR":   &cfg.RedisAddr,
		"LOG_FILE":     &cfg.LogFile,
		"LOG_LEVEL":    &cfg.LogLevel,
		"CHART_DIR":    &cfg.ChartDir,
		"REPORT_STYLE": &cfg.ReportStyle,
	}
	for name, dst := range strs {
		if v, ok := vars[envPrefix+name]; ok && v != "" {
			*dst = v
		}
	}

	if v, ok := vars[envPrefix+"AUTH_LATENCY"]; ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%sAUTH_LATENCY: %w", envPrefix, err)
		}
		cfg.AuthLatency = d
	}
	return nil
}
