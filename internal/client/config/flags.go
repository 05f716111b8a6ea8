package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/dmitrijs2005/socialhub/internal/flagx"
)

var ownFlags = []string{"-s", "-db", "-dir", "-r", "-latency", "-log", "-log-level", "-charts"}

// parseFlags populates cfg from the config flags in args. Arguments it
// does not own are filtered out with flagx.FilterArgs so subcommand
// flags never reach this FlagSet.
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.StorageBackend, "s", cfg.StorageBackend, "storage backend: sqlite, file or redis")
	fs.StringVar(&cfg.DatabasePath, "db", cfg.DatabasePath, "SQLite database path")
	fs.StringVar(&cfg.StorageDir, "dir", cfg.StorageDir, "directory of the file backend")
	fs.StringVar(&cfg.RedisAddr, "r", cfg.RedisAddr, "Redis address")
	fs.DurationVar(&cfg.AuthLatency, "latency", cfg.AuthLatency, "simulated login/signup delay")
	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, "log file path")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.ChartDir, "charts", cfg.ChartDir, "directory for exported charts")

	if err := fs.Parse(flagx.FilterArgs(args, ownFlags)); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	return nil
}
