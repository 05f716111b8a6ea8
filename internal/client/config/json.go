package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/socialhub/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields tell an absent key from an empty value.
type JsonConfig struct {
	StorageBackend *string         `json:"storage_backend"`
	DatabasePath   *string         `json:"database_path"`
	StorageDir     *string         `json:"storage_dir"`
	RedisAddr      *string         `json:"redis_addr"`
	AuthLatency    *timex.Duration `json:"auth_latency"`
	LogFile        *string         `json:"log_file"`
	LogLevel       *string         `json:"log_level"`
	ChartDir       *string         `json:"chart_dir"`
	ReportStyle    *string         `json:"report_style"`
}

// parseJson overlays cfg with the JSON file at path. An empty path means
// no file was requested.
func parseJson(cfg *Config, path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	set := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	set(&cfg.StorageBackend, jc.StorageBackend)
	set(&cfg.DatabasePath, jc.DatabasePath)
	set(&cfg.StorageDir, jc.StorageDir)
	set(&cfg.RedisAddr, jc.RedisAddr)
	set(&cfg.LogFile, jc.LogFile)
	set(&cfg.LogLevel, jc.LogLevel)
	set(&cfg.ChartDir, jc.ChartDir)
	set(&cfg.ReportStyle, jc.ReportStyle)
	if jc.AuthLatency != nil {
		cfg.AuthLatency = jc.AuthLatency.Duration
	}
	return nil
}
