package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/viper"

	"github.com/graphstack/neo4j-mcp-server/internal/logger"
)

type TransportMode string

const (
	TransportModeStdio TransportMode = "stdio"
	TransportModeHTTP  TransportMode = "http"

	// DefaultURI and DefaultUsername are the hard-coded fallbacks: after Load
	// the URI and Username fields are never empty.
	DefaultURI      = "bolt://localhost:7687"
	DefaultUsername = "neo4j"

	configFileName = "config"
	configFileType = "json"
	configDirName  = "neo4j-mcp"
	systemConfDir  = "/etc/neo4j-mcp"
)

// ValidTransportModes defines the allowed transport mode values
var ValidTransportModes = []TransportMode{TransportModeStdio, TransportModeHTTP}

// Config holds the application configuration
type Config struct {
	URI      string
	Username string
	Password string // empty means no credential is presented
	Database string // empty means the server-side default database

	ServerName    string
	ServerVersion string
	ReadOnly      bool // expose only read-only tools when set

	LogLevel  string
	LogFormat string
	LogFile   string // empty means stderr only

	TransportMode TransportMode
	HTTPHost      string
	HTTPPort      string
}

// CLIOverrides holds optional configuration values from CLI flags.
// Flag values take precedence over environment variables and the config file.
type CLIOverrides struct {
	ConfigFile string
	URI        string
	Username   string
	Password   string
	Database   string
	ServerName string
	LogLevel   string
	LogFile    string
	Transport  string
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("configuration is required but was nil")
	}
	if c.URI == "" {
		return fmt.Errorf("Neo4j URI is required but was empty")
	}
	if c.Username == "" {
		return fmt.Errorf("Neo4j username is required but was empty")
	}
	if c.TransportMode == "" {
		c.TransportMode = TransportModeStdio
	}
	if !slices.Contains(ValidTransportModes, c.TransportMode) {
		return fmt.Errorf("invalid transport mode '%s', must be one of %v", c.TransportMode, ValidTransportModes)
	}
	if !slices.Contains(logger.ValidLogLevels, c.LogLevel) {
		fmt.Fprintf(os.Stderr, "Warning: invalid log level '%s', using default 'info'. Valid values: %v\n", c.LogLevel, logger.ValidLogLevels)
		c.LogLevel = "info"
	}
	if !slices.Contains(logger.ValidLogFormats, c.LogFormat) {
		fmt.Fprintf(os.Stderr, "Warning: invalid log format '%s', using default 'text'. Valid values: %v\n", c.LogFormat, logger.ValidLogFormats)
		c.LogFormat = "text"
	}
	return nil
}

// UserConfigPath returns the per-user config file location
// (for example ~/.config/neo4j-mcp/config.json on Linux).
func UserConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config directory: %w", err)
	}
	return filepath.Join(dir, configDirName, configFileName+"."+configFileType), nil
}

// Load resolves the configuration: persisted JSON config file (searched in the
// current directory, then the user config directory, then the system config
// directory, with defaults written back to the user path when no file exists),
// overridden by environment variables, overridden by CLI flags, then validated.
func Load(overrides *CLIOverrides) (*Config, error) {
	v := viper.New()
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)

	setDefaults(v)
	bindEnv(v)

	if overrides != nil && overrides.ConfigFile != "" {
		v.SetConfigFile(overrides.ConfigFile)
	} else {
		v.AddConfigPath(".")
		if userPath, err := UserConfigPath(); err == nil {
			v.AddConfigPath(filepath.Dir(userPath))
		}
		v.AddConfigPath(systemConfDir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// No config file anywhere in the search order: persist the defaults
		// to the user path so the next run finds them.
		if overrides == nil || overrides.ConfigFile == "" {
			writeDefaultConfig(v)
		}
	}

	cfg := &Config{
		URI:           v.GetString("neo4j.uri"),
		Username:      v.GetString("neo4j.username"),
		Password:      v.GetString("neo4j.password"),
		Database:      v.GetString("neo4j.database"),
		ServerName:    v.GetString("server.name"),
		ServerVersion: v.GetString("server.version"),
		ReadOnly:      v.GetBool("server.read_only"),
		LogLevel:      v.GetString("logging.level"),
		LogFormat:     v.GetString("logging.format"),
		LogFile:       v.GetString("logging.file"),
		TransportMode: TransportMode(v.GetString("transport.mode")),
		HTTPHost:      v.GetString("transport.http_host"),
		HTTPPort:      v.GetString("transport.http_port"),
	}

	applyOverrides(cfg, overrides)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("neo4j.uri", DefaultURI)
	v.SetDefault("neo4j.username", DefaultUsername)
	v.SetDefault("neo4j.password", "")
	v.SetDefault("neo4j.database", "")
	v.SetDefault("server.name", "neo4j-mcp-server")
	v.SetDefault("server.version", "0.1.0")
	v.SetDefault("server.read_only", false)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
	v.SetDefault("logging.file", "")
	v.SetDefault("transport.mode", string(TransportModeStdio))
	v.SetDefault("transport.http_host", "127.0.0.1")
	v.SetDefault("transport.http_port", "8080")
}

func bindEnv(v *viper.Viper) {
	// Errors are only returned for empty key lists, which never happens here.
	_ = v.BindEnv("neo4j.uri", "NEO4J_URI", "NEO4J_URL")
	_ = v.BindEnv("neo4j.username", "NEO4J_USERNAME")
	_ = v.BindEnv("neo4j.password", "NEO4J_PASSWORD")
	_ = v.BindEnv("neo4j.database", "NEO4J_DATABASE")
	_ = v.BindEnv("server.read_only", "NEO4J_READ_ONLY")
	_ = v.BindEnv("logging.level", "NEO4J_LOG_LEVEL")
	_ = v.BindEnv("logging.format", "NEO4J_LOG_FORMAT")
	_ = v.BindEnv("logging.file", "NEO4J_LOG_FILE")
	_ = v.BindEnv("transport.mode", "NEO4J_TRANSPORT_MODE")
	_ = v.BindEnv("transport.http_host", "NEO4J_MCP_HTTP_HOST")
	_ = v.BindEnv("transport.http_port", "NEO4J_MCP_HTTP_PORT")
}

func applyOverrides(cfg *Config, overrides *CLIOverrides) {
	if overrides == nil {
		return
	}
	if overrides.URI != "" {
		cfg.URI = overrides.URI
	}
	if overrides.Username != "" {
		cfg.Username = overrides.Username
	}
	if overrides.Password != "" {
		cfg.Password = overrides.Password
	}
	if overrides.Database != "" {
		cfg.Database = overrides.Database
	}
	if overrides.ServerName != "" {
		cfg.ServerName = overrides.ServerName
	}
	if overrides.LogLevel != "" {
		cfg.LogLevel = overrides.LogLevel
	}
	if overrides.LogFile != "" {
		cfg.LogFile = overrides.LogFile
	}
	if overrides.Transport != "" {
		cfg.TransportMode = TransportMode(overrides.Transport)
	}
}

func writeDefaultConfig(v *viper.Viper) {
	userPath, err := UserConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not determine user config path: %v\n", err)
		return
	}
	if err := os.MkdirAll(filepath.Dir(userPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not create config directory: %v\n", err)
		return
	}
	if err := v.SafeWriteConfigAs(userPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not write default config: %v\n", err)
	}
}

// GetEnv returns the value of an environment variable or empty string if not set
func GetEnv(key string) string {
	return os.Getenv(key)
}

// GetEnvWithDefault returns the value of an environment variable or a default value
func GetEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
