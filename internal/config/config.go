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

	"github.com/buxdao/holder-bot/internal/domain"
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

// RedisConfig holds configuration of the Redis instance backing the wallet registry
type RedisConfig struct {
	Addr      string `mapstructure:"addr"`
	Password  string `mapstructure:"password"`
	DB        int    `mapstructure:"db"`
	KeyPrefix string `mapstructure:"key_prefix"`
}

// SolanaConfig holds Solana RPC configuration
type SolanaConfig struct {
	RPCURL            string        `mapstructure:"rpc_url"`
	RequestTimeout    time.Duration `mapstructure:"request_timeout"`
	RequestsPerSecond float64       `mapstructure:"requests_per_second"`
	Burst             int           `mapstructure:"burst"`
	BuxMint           string        `mapstructure:"bux_mint"`
	BuxDecimals       int           `mapstructure:"bux_decimals"`
}

// DiscordConfig holds Discord bot configuration
type DiscordConfig struct {
	BotToken string `mapstructure:"bot_token"`
	GuildID  string `mapstructure:"guild_id"`
}

// HashlistConfig holds the location of the collection hashlists
type HashlistConfig struct {
	// Dir contains one <collection_key>.json file per collection
	Dir string `mapstructure:"dir"`
}

// AggregationConfig holds the retry and pacing settings of the holdings aggregator
type AggregationConfig struct {
	MaxRetries  int           `mapstructure:"max_retries"`
	BaseDelay   time.Duration `mapstructure:"base_delay"`
	MaxDelay    time.Duration `mapstructure:"max_delay"`
	WalletDelay time.Duration `mapstructure:"wallet_delay"`
}

// CollectionRoleConfig holds the Discord roles granted for one collection
type CollectionRoleConfig struct {
	Holder string `mapstructure:"holder"`
	Whale  string `mapstructure:"whale"`
}

// BuxTierConfig maps a whole-token BUX threshold to a role
type BuxTierConfig struct {
	Threshold uint64 `mapstructure:"threshold"`
	Role      string `mapstructure:"role"`
}

// RolesConfig holds the Discord role ids managed by the bot
type RolesConfig struct {
	Collections map[string]CollectionRoleConfig `mapstructure:"collections"`
	BuxTiers    []BuxTierConfig                 `mapstructure:"bux_tiers"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds

	// CORSOrigins restricts cross-origin callers; empty allows every origin
	CORSOrigins []string `mapstructure:"cors_origins"`
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string   `mapstructure:"jwt_public_key"`
	APIKeys      []string `mapstructure:"api_keys"`
}

// SweeperConfig holds configuration of the periodic role sync
type SweeperConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Interval time.Duration `mapstructure:"interval"`
}

// HolderBotConfig holds configuration for the holder bot
type HolderBotConfig struct {
	BaseConfig  `mapstructure:",squash"`
	Server      ServerConfig      `mapstructure:"server"`
	Auth        AuthConfig        `mapstructure:"auth"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Redis       RedisConfig       `mapstructure:"redis"`
	Solana      SolanaConfig      `mapstructure:"solana"`
	Discord     DiscordConfig     `mapstructure:"discord"`
	Hashlists   HashlistConfig    `mapstructure:"hashlists"`
	Aggregation AggregationConfig `mapstructure:"aggregation"`
	Roles       RolesConfig       `mapstructure:"roles"`
	Sweeper     SweeperConfig     `mapstructure:"sweeper"`
}

// LoadHolderBotConfig loads configuration for the holder bot
func LoadHolderBotConfig(configFile string, envPath string) (*HolderBotConfig, error) {
	v := configureViper("holder-bot", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 120)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.key_prefix", "wallets:")
	v.SetDefault("solana.rpc_url", "https://api.mainnet-beta.solana.com")
	v.SetDefault("solana.request_timeout", "15s")
	v.SetDefault("solana.requests_per_second", 5)
	v.SetDefault("solana.burst", 5)
	v.SetDefault("solana.bux_decimals", domain.BUX_DEFAULT_DECIMALS)
	v.SetDefault("hashlists.dir", "config/hashlists")
	v.SetDefault("aggregation.max_retries", 3)
	v.SetDefault("aggregation.base_delay", "2s")
	v.SetDefault("aggregation.max_delay", "30s")
	v.SetDefault("aggregation.wallet_delay", "500ms")
	v.SetDefault("sweeper.enabled", false)
	v.SetDefault("sweeper.interval", "6h")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found, use environment variables
	}

	var cfg HolderBotConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks required fields and cross-field constraints
func (c *HolderBotConfig) Validate() error {
	if c.Solana.BuxMint == "" {
		return errors.New("solana.bux_mint is required")
	}
	if c.Solana.BuxDecimals < 0 || c.Solana.BuxDecimals > 18 {
		return fmt.Errorf("solana.bux_decimals must be between 0 and 18, got %d", c.Solana.BuxDecimals)
	}
	if c.Discord.GuildID == "" {
		return errors.New("discord.guild_id is required")
	}
	if c.Aggregation.MaxRetries < 0 {
		return errors.New("aggregation.max_retries must not be negative")
	}
	for key := range c.Roles.Collections {
		if !domain.IsValidCollection(domain.CollectionKey(key)) {
			return fmt.Errorf("roles.collections: unknown collection %q", key)
		}
	}
	for i, tier := range c.Roles.BuxTiers {
		if tier.Role == "" {
			return fmt.Errorf("roles.bux_tiers[%d]: role is required", i)
		}
	}
	return nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
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

	v.SetEnvPrefix("BUX_BOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		"server.cors_origins",
		// Auth
		"auth.jwt_public_key",
		"auth.api_keys",
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
		// Redis
		"redis.addr",
		"redis.password",
		"redis.db",
		"redis.key_prefix",
		// Solana
		"solana.rpc_url",
		"solana.request_timeout",
		"solana.requests_per_second",
		"solana.burst",
		"solana.bux_mint",
		"solana.bux_decimals",
		// Discord
		"discord.bot_token",
		"discord.guild_id",
		// Hashlists
		"hashlists.dir",
		// Aggregation
		"aggregation.max_retries",
		"aggregation.base_delay",
		"aggregation.max_delay",
		"aggregation.wallet_delay",
		// Sweeper
		"sweeper.enabled",
		"sweeper.interval",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		_ = godotenv.Overload(filepath.Join(envPath, envFile)) // later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
