package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server       ServerConfig       `yaml:"server"`
	Database     DatabaseConfig     `yaml:"database"`
	Auth         AuthConfig         `yaml:"auth"`
	Embedding    EmbeddingConfig    `yaml:"embedding"`
	Chain        ChainConfig        `yaml:"chain"`
	Distribution DistributionConfig `yaml:"distribution"`
	Pattern      PatternConfig      `yaml:"pattern"`
	Log          LogConfig          `yaml:"log"`
	CORS         CORSConfig         `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds token-validation settings. Wallet authentication itself
// happens upstream; this backend only verifies the JWT the auth layer issues.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer string `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"journalmind"`
}

// EmbeddingConfig holds the embedding provider settings.
type EmbeddingConfig struct {
	BaseURL    string        `yaml:"base_url"    env:"EMBEDDING_BASE_URL"    env-default:"https://api.openai.com"`
	APIKey     string        `yaml:"api_key"     env:"EMBEDDING_API_KEY"     env-required:"true"`
	Model      string        `yaml:"model"       env:"EMBEDDING_MODEL"       env-default:"text-embedding-3-small"`
	Dimensions int           `yaml:"dimensions"  env:"EMBEDDING_DIMENSIONS"  env-default:"1536"`
	Timeout    time.Duration `yaml:"timeout"     env:"EMBEDDING_TIMEOUT"     env-default:"30s"`
	MaxRetries int           `yaml:"max_retries" env:"EMBEDDING_MAX_RETRIES" env-default:"3"`
}

// ChainConfig holds blockchain RPC and token contract settings.
type ChainConfig struct {
	RPCURL             string        `yaml:"rpc_url"              env:"CHAIN_RPC_URL"              env-required:"true"`
	ChainID            int64         `yaml:"chain_id"             env:"CHAIN_ID"                   env-default:"1"`
	TokenAddress       string        `yaml:"token_address"        env:"CHAIN_TOKEN_ADDRESS"        env-required:"true"`
	DistributorKey     string        `yaml:"distributor_key"      env:"CHAIN_DISTRIBUTOR_KEY"      env-required:"true"`
	DeployBlock        uint64        `yaml:"deploy_block"         env:"CHAIN_DEPLOY_BLOCK"         env-default:"0"`
	TransferTimeout    time.Duration `yaml:"transfer_timeout"     env:"CHAIN_TRANSFER_TIMEOUT"     env-default:"2m"`
	CallTimeout        time.Duration `yaml:"call_timeout"         env:"CHAIN_CALL_TIMEOUT"         env-default:"15s"`
}

// DistributionConfig holds reward distribution settings.
// CapBasisPoints is the maximum fraction of total supply ever payable as
// rewards, in basis points (4000 = 40%). Kept integer so the cap check never
// touches floating point.
type DistributionConfig struct {
	CapBasisPoints int64 `yaml:"cap_basis_points" env:"DISTRIBUTION_CAP_BPS" env-default:"4000"`
}

// PatternConfig holds pattern-matching settings.
type PatternConfig struct {
	SimilarityThreshold float64 `yaml:"similarity_threshold" env:"PATTERN_SIMILARITY_THRESHOLD" env-default:"0.70"`
	MaxResults          int     `yaml:"max_results"          env:"PATTERN_MAX_RESULTS"          env-default:"50"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}
