package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
}

// ChainConfig holds fullnode RPC and launchpad module configuration
type ChainConfig struct {
	RPCURL        string `mapstructure:"rpc_url"`
	ModuleAddress string `mapstructure:"module_address"`
	// PrivateKey is the ed25519 private key hex of the service signing
	// account. Loaded from the environment, never from a config file.
	PrivateKey string `mapstructure:"private_key"`
}

// IndexerConfig holds indexer GraphQL configuration
type IndexerConfig struct {
	GraphQLURL string        `mapstructure:"graphql_url"`
	Timeout    time.Duration `mapstructure:"timeout"`
	// CatchupMaxWait bounds how long a reveal waits for the indexer to
	// reach the reveal transaction's ledger version
	CatchupMaxWait      time.Duration `mapstructure:"catchup_max_wait"`
	CatchupPollInterval time.Duration `mapstructure:"catchup_poll_interval"`
}

// NATSConfig holds NATS JetStream configuration for state-transition events
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
	APIKeys      []string      `mapstructure:"api_keys"`
}

// SyncConfig holds reconciliation loop configuration
type SyncConfig struct {
	SupplyInterval time.Duration `mapstructure:"supply_interval"`
	FullInterval   time.Duration `mapstructure:"full_interval"`
	// Parallelism bounds concurrent per-collection reconciliation within one pass
	Parallelism int `mapstructure:"parallelism"`
}

// RevealConfig holds reveal serializer configuration
type RevealConfig struct {
	MaxAttempts      int           `mapstructure:"max_attempts"`
	InitialBackoff   time.Duration `mapstructure:"initial_backoff"`
	QueueSize        int           `mapstructure:"queue_size"`
	WaitMax          time.Duration `mapstructure:"wait_max"`
	WaitPollInterval time.Duration `mapstructure:"wait_poll_interval"`
	UploadBatchSize  int           `mapstructure:"upload_batch_size"`
}

// SyncdConfig holds configuration for the syncd daemon
type SyncdConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig `mapstructure:"database"`
	Chain      ChainConfig    `mapstructure:"chain"`
	Indexer    IndexerConfig  `mapstructure:"indexer"`
	NATS       NATSConfig     `mapstructure:"nats"`
	Server     ServerConfig   `mapstructure:"server"`
	Sync       SyncConfig     `mapstructure:"sync"`
	Reveal     RevealConfig   `mapstructure:"reveal"`
}

// LoadSyncdConfig loads configuration for the syncd daemon
func LoadSyncdConfig(configFile string, envPath string) (*SyncdConfig, error) {
	v := configureViper("syncd", configFile, envPath)

	// Set defaults
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("chain.rpc_url", "https://testnet.movementnetwork.xyz/v1")
	v.SetDefault("indexer.graphql_url", "https://hasura.testnet.movementnetwork.xyz/v1/graphql")
	v.SetDefault("indexer.timeout", "30s")
	v.SetDefault("indexer.catchup_max_wait", "30s")
	v.SetDefault("indexer.catchup_poll_interval", "1s")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.stream_name", "LAUNCHPAD_EVENTS")
	v.SetDefault("nats.connection_name", "launchpad-syncd")
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "120s")
	v.SetDefault("server.idle_timeout", "60s")
	v.SetDefault("sync.supply_interval", "30s")
	v.SetDefault("sync.full_interval", "30m")
	v.SetDefault("sync.parallelism", 8)
	v.SetDefault("reveal.max_attempts", 3)
	v.SetDefault("reveal.initial_backoff", "2s")
	v.SetDefault("reveal.queue_size", 1024)
	v.SetDefault("reveal.wait_max", "60s")
	v.SetDefault("reveal.wait_poll_interval", "1s")
	v.SetDefault("reveal.upload_batch_size", 100)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// Config file not found, use environment variables
		} else {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config SyncdConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	loadEnv(envPath, service)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		v.AddConfigPath("config/")
	}

	v.SetEnvPrefix("LAUNCHPAD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables.
// Required for viper to map env vars to config struct fields when no config
// file exists.
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		// Database
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// Chain
		"chain.rpc_url",
		"chain.module_address",
		"chain.private_key",
		// Indexer
		"indexer.graphql_url",
		"indexer.timeout",
		"indexer.catchup_max_wait",
		"indexer.catchup_poll_interval",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		"server.api_keys",
		// Sync
		"sync.supply_interval",
		"sync.full_interval",
		"sync.parallelism",
		// Reveal
		"reveal.max_attempts",
		"reveal.initial_backoff",
		"reveal.queue_size",
		"reveal.wait_max",
		"reveal.wait_poll_interval",
		"reveal.upload_batch_size",
	}
	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads .env files from the given path, preferring a
// service-specific file over the shared one
func loadEnv(envPath string, service string) {
	candidates := []string{
		filepath.Join(envPath, fmt.Sprintf(".env.%s", service)),
		filepath.Join(envPath, ".env"),
		".env",
	}
	for _, f := range candidates {
		if _, err := os.Stat(f); err == nil {
			_ = godotenv.Load(f)
			return
		}
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
