package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/socialhub/internal/client/repositories/localstore"
	"github.com/dmitrijs2005/socialhub/internal/flagx"
)

// Config holds runtime settings for the SocialHub CLI.
type Config struct {
	StorageBackend string
	DatabasePath   string
	StorageDir     string
	RedisAddr      string

	AuthLatency time.Duration

	LogFile  string
	LogLevel string

	ChartDir    string
	ReportStyle string
}

// dataDir is where local state lives unless configured otherwise.
func dataDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ".socialhub"
	}
	return filepath.Join(base, "socialhub")
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	dir := dataDir()
	c.StorageBackend = localstore.BackendSQLite
	c.DatabasePath = filepath.Join(dir, "socialhub.db")
	c.StorageDir = filepath.Join(dir, "store")
	c.RedisAddr = "127.0.0.1:6379"
	c.AuthLatency = time.Second
	c.LogFile = filepath.Join(dir, "socialhub.log")
	c.LogLevel = "info"
	c.ChartDir = "."
	c.ReportStyle = "auto"
}

// StoreOptions maps the storage settings onto localstore.Options.
func (c *Config) StoreOptions() localstore.Options {
	return localstore.Options{
		Backend:      c.StorageBackend,
		DatabasePath: c.DatabasePath,
		Dir:          c.StorageDir,
		RedisAddr:    c.RedisAddr,
	}
}

// GlobalFlags lists every flag owned by the config loader, including the
// config file flags, so callers can strip them before parsing their own.
func GlobalFlags() []string {
	return append(append([]string{}, ownFlags...), flagx.ConfigFileFlags...)
}

// LoadConfig builds a Config from defaults, the environment (and .env),
// the JSON file named by -c/-config, and flags in args, in that order.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseEnv(cfg, ".env"); err != nil {
		return nil, err
	}
	if err := parseJson(cfg, flagx.ConfigPath(args)); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
