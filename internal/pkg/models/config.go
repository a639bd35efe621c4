package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NSQ      NSQConfig
	JWT      JWTConfig
	Logger   LoggerConfig
	Storage  StorageConfig
	OAuth    OAuthConfig
	Cache    CacheConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver         string
	Host           string
	Port           int
	Username       string
	Password       string
	Database       string
	SSLMode        string
	MaxConns       int
	IdleConns      int
	MigrateOnStart bool
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig contains NSQ producer and consumer configuration
type NSQConfig struct {
	Address          string
	LookupdAddresses []string
	Channel          string
	Enabled          bool
	PublishTimeout   int // in milliseconds, covers every retry of one event
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// StorageConfig selects where uploaded avatars are kept
type StorageConfig struct {
	Provider  string // "s3" or "local"
	Bucket    string
	Region    string
	AccessKey string
	SecretKey string
	LocalDir  string
	BaseURL   string
}

// OAuthConfig holds the OAuth providers users can sign in with
type OAuthConfig struct {
	Providers map[string]OAuthProvider
	// AllowedRedirects lists the targets a login may hand its token to,
	// e.g. "tumpang://" or "https://app.example.com/auth"
	AllowedRedirects []string
}

// OAuthProvider describes a single OAuth 2.0 authorization-code provider
type OAuthProvider struct {
	Name         string
	ClientID     string
	ClientSecret string
	AuthURL      string
	TokenURL     string
	UserInfoURL  string
	RedirectURL  string
	Scopes       []string
}

// CacheConfig contains redis cache TTLs
type CacheConfig struct {
	DriverStatsTTL int // in seconds
	OAuthStateTTL  int // in seconds
}
