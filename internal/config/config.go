package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/Mastra10/App-Distinta/internal/distinta"
)

// Roster source kinds
const (
	SourceWorkbook = "workbook"
	SourceSQLite   = "sqlite"
)

// AppConfig application configuration
type AppConfig struct {
	Server   ServerConfig   `toml:"server"`
	Auth     AuthConfig     `toml:"auth"`
	Roster   RosterConfig   `toml:"roster"`
	Template TemplateConfig `toml:"template"`
	Log      LogConfig      `toml:"log"`
}

// ServerConfig HTTP server
type ServerConfig struct {
	Port                   int  `toml:"port"`
	DevMode                bool `toml:"dev_mode"`
	DownloadTTLSeconds     int  `toml:"download_ttl_seconds"`
	ShutdownTimeoutSeconds int  `toml:"shutdown_timeout_seconds"`
}

// AuthConfig password gate; an empty hash leaves the app open
type AuthConfig struct {
	PasswordHash      string  `toml:"password_hash"`
	SessionTTLMinutes int     `toml:"session_ttl_minutes"`
	LoginRate         float64 `toml:"login_rate"` // attempts per second per client
	LoginBurst        int     `toml:"login_burst"`
}

// RosterConfig where the roster comes from and how long it is cached
type RosterConfig struct {
	Source                 string `toml:"source"` // workbook | sqlite
	Location               string `toml:"location"`
	Sheet                  string `toml:"sheet"`
	Token                  string `toml:"-"`
	SQLitePath             string `toml:"sqlite_path"`
	SQLiteTable            string `toml:"sqlite_table"`
	CacheTTLSeconds        int    `toml:"cache_ttl_seconds"`
	FetchTimeoutSeconds    int    `toml:"fetch_timeout_seconds"`
	PrewarmIntervalMinutes int    `toml:"prewarm_interval_minutes"`
	Watch                  bool   `toml:"watch"` // refresh when a local source file changes
}

// TemplateConfig team sheet template; an empty path uses the built-in sheet
type TemplateConfig struct {
	Path   string          `toml:"path"`
	Layout distinta.Layout `toml:"layout"`
}

// LogConfig logging
type LogConfig struct {
	Level   string `toml:"level"`
	Console bool   `toml:"console"`
}

// LoadConfigInfo metadata about how the config was loaded
type LoadConfigInfo struct {
	Path          string
	FileFound     bool
	PortSpecified bool
}

// DefaultConfig default configuration
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:                   8501,
			DevMode:                false,
			DownloadTTLSeconds:     600,
			ShutdownTimeoutSeconds: 15,
		},
		Auth: AuthConfig{
			SessionTTLMinutes: 12 * 60,
			LoginRate:         0.2,
			LoginBurst:        5,
		},
		Roster: RosterConfig{
			Source:              SourceWorkbook,
			SQLiteTable:         "roster",
			CacheTTLSeconds:     600,
			FetchTimeoutSeconds: 30,
			Watch:               true,
		},
		Log: LogConfig{
			Level:   "info",
			Console: true,
		},
	}
}

// Layout returns the team sheet layout: defaults overlaid with [template.layout].
func (c *AppConfig) Layout() distinta.Layout {
	return distinta.DefaultLayout().Merge(c.Template.Layout)
}

// DownloadTTL lifetime of a download link
func (c *AppConfig) DownloadTTL() time.Duration {
	return time.Duration(c.Server.DownloadTTLSeconds) * time.Second
}

// ShutdownTimeout graceful shutdown budget
func (c *AppConfig) ShutdownTimeout() time.Duration {
	return time.Duration(c.Server.ShutdownTimeoutSeconds) * time.Second
}

// SessionTTL lifetime of a login session
func (c *AppConfig) SessionTTL() time.Duration {
	return time.Duration(c.Auth.SessionTTLMinutes) * time.Minute
}

// CacheTTL roster cache window
func (c *AppConfig) CacheTTL() time.Duration {
	return time.Duration(c.Roster.CacheTTLSeconds) * time.Second
}

// FetchTimeout roster fetch timeout
func (c *AppConfig) FetchTimeout() time.Duration {
	return time.Duration(c.Roster.FetchTimeoutSeconds) * time.Second
}

// PrewarmInterval roster refresh period; zero disables the job
func (c *AppConfig) PrewarmInterval() time.Duration {
	return time.Duration(c.Roster.PrewarmIntervalMinutes) * time.Minute
}

// Validate checks the values the server cannot start without.
func (c *AppConfig) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	switch c.Roster.Source {
	case SourceWorkbook:
		if c.Roster.Location == "" {
			return errors.New("roster location is required (roster.location or DISTINTA_ROSTER_URL)")
		}
	case SourceSQLite:
		if c.Roster.SQLitePath == "" {
			return errors.New("roster sqlite_path is required")
		}
	default:
		return fmt.Errorf("unknown roster source %q", c.Roster.Source)
	}
	if c.Auth.PasswordHash != "" {
		if _, err := bcrypt.Cost([]byte(c.Auth.PasswordHash)); err != nil {
			return fmt.Errorf("auth password_hash is not a bcrypt hash: %w", err)
		}
	}
	return c.Layout().Validate()
}

func isPortSpecifiedInToml(data []byte) bool {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return false
	}

	serverAny, ok := raw["server"]
	if !ok {
		return false
	}

	serverMap, ok := serverAny.(map[string]any)
	if !ok {
		return false
	}

	_, ok = serverMap["port"]
	return ok
}

// GetExeDir directory of the running executable
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// DefaultPath config.toml next to the executable
func DefaultPath() string {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}
	return filepath.Join(exeDir, "config.toml")
}

// LoadConfigWithInfo loads path (DefaultPath when empty), the .env file
// beside it and the environment overrides.
func LoadConfigWithInfo(path string) (*AppConfig, LoadConfigInfo, error) {
	if path == "" {
		path = DefaultPath()
	}
	info := LoadConfigInfo{Path: path}
	config := DefaultConfig()

	envPath := filepath.Join(filepath.Dir(path), ".env")
	if err := godotenv.Load(envPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, info, fmt.Errorf("error loading .env file: %w", err)
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		info.FileFound = true
		info.PortSpecified = isPortSpecifiedInToml(data)
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, info, fmt.Errorf("error parsing %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// no file: defaults plus environment
	default:
		return nil, info, err
	}

	if err := applyEnv(config); err != nil {
		return nil, info, err
	}
	return config, info, nil
}

// LoadConfig loads the configuration without metadata.
func LoadConfig(path string) (*AppConfig, error) {
	config, _, err := LoadConfigWithInfo(path)
	return config, err
}

// applyEnv environment overrides; secrets are only read from here
func applyEnv(config *AppConfig) error {
	if v := os.Getenv("DISTINTA_ROSTER_URL"); v != "" {
		config.Roster.Source = SourceWorkbook
		config.Roster.Location = v
	}
	if v := os.Getenv("DISTINTA_ROSTER_SHEET"); v != "" {
		config.Roster.Sheet = v
	}
	config.Roster.Token = os.Getenv("DISTINTA_ROSTER_TOKEN")
	if v := os.Getenv("DISTINTA_TEMPLATE_PATH"); v != "" {
		config.Template.Path = v
	}
	if v := os.Getenv("DISTINTA_LOG_LEVEL"); v != "" {
		config.Log.Level = strings.ToLower(v)
	}

	if v := os.Getenv("DISTINTA_PASSWORD_HASH"); v != "" {
		config.Auth.PasswordHash = v
	} else if v := os.Getenv("DISTINTA_PASSWORD"); v != "" {
		hash, err := HashPassword(v)
		if err != nil {
			return fmt.Errorf("hash DISTINTA_PASSWORD: %w", err)
		}
		config.Auth.PasswordHash = hash
	}
	return nil
}

// HashPassword wraps bcrypt.GenerateFromPassword for the password gate.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// SaveConfig writes the configuration to path.
func SaveConfig(config *AppConfig, path string) error {
	if path == "" {
		path = DefaultPath()
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
