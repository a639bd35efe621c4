package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/piresc/tumpang/internal/pkg/models"
	"github.com/spf13/viper"
)

// InitConfig loads the env file in local environments and builds the
// application config from environment variables
func InitConfig(configPath string) *models.Config {
	viper.AutomaticEnv()

	if GetEnv("APP_ENV", "local") == "local" {
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}

	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "tumpang")
	configs.App.Environment = GetEnv("APP_ENV", "local")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", false)
	configs.App.Version = GetEnv("APP_VERSION", "dev")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "0.0.0.0")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 8080)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 15)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 15)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 10)

	// Database config
	configs.Database.Driver = GetEnv("DB_DRIVER", "pgx")
	configs.Database.Host = GetEnv("DB_HOST", "localhost")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 5432)
	configs.Database.Username = GetEnv("DB_USERNAME", "postgres")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "tumpang")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "disable")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 20)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 5)
	configs.Database.MigrateOnStart = GetEnvAsBool("DB_MIGRATE_ON_START", false)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "localhost")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 10)

	// NSQ config
	configs.NSQ.Enabled = GetEnvAsBool("NSQ_ENABLED", true)
	configs.NSQ.Address = GetEnv("NSQ_ADDRESS", "localhost:4150")
	configs.NSQ.LookupdAddresses = GetEnvAsSlice("NSQ_LOOKUPD_ADDRESSES", nil)
	configs.NSQ.Channel = GetEnv("NSQ_CHANNEL", "tumpang")
	configs.NSQ.PublishTimeout = GetEnvAsInt("NSQ_PUBLISH_TIMEOUT_MS", 2000)

	// JWT config
	configs.JWT.Secret = GetEnv("JWT_SECRET", "")
	configs.JWT.Expiration = GetEnvAsInt("JWT_EXPIRATION", 60*24)
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "tumpang")

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")

	// Storage config
	configs.Storage.Provider = GetEnv("STORAGE_PROVIDER", "local")
	configs.Storage.Bucket = GetEnv("STORAGE_BUCKET", "")
	configs.Storage.Region = GetEnv("STORAGE_REGION", "us-east-1")
	configs.Storage.AccessKey = GetEnv("STORAGE_ACCESS_KEY", "")
	configs.Storage.SecretKey = GetEnv("STORAGE_SECRET_KEY", "")
	configs.Storage.LocalDir = GetEnv("STORAGE_LOCAL_DIR", "uploads")
	configs.Storage.BaseURL = GetEnv("STORAGE_BASE_URL", "/uploads")

	// OAuth config
	configs.OAuth.Providers = loadOAuthProviders()
	configs.OAuth.AllowedRedirects = GetEnvAsSlice("OAUTH_ALLOWED_REDIRECTS", []string{"tumpang://"})

	// Cache config
	configs.Cache.DriverStatsTTL = GetEnvAsInt("CACHE_DRIVER_STATS_TTL", 300)
	configs.Cache.OAuthStateTTL = GetEnvAsInt("CACHE_OAUTH_STATE_TTL", 600)

	return configs
}

// loadOAuthProviders reads OAUTH_PROVIDERS=google,github and then
// OAUTH_<NAME>_CLIENT_ID, OAUTH_<NAME>_AUTH_URL, ... for each name
func loadOAuthProviders() map[string]models.OAuthProvider {
	providers := make(map[string]models.OAuthProvider)
	for _, name := range GetEnvAsSlice("OAUTH_PROVIDERS", nil) {
		name = strings.ToLower(name)
		prefix := "OAUTH_" + strings.ToUpper(name) + "_"
		providers[name] = models.OAuthProvider{
			Name:         name,
			ClientID:     GetEnv(prefix+"CLIENT_ID", ""),
			ClientSecret: GetEnv(prefix+"CLIENT_SECRET", ""),
			AuthURL:      GetEnv(prefix+"AUTH_URL", ""),
			TokenURL:     GetEnv(prefix+"TOKEN_URL", ""),
			UserInfoURL:  GetEnv(prefix+"USERINFO_URL", ""),
			RedirectURL:  GetEnv(prefix+"REDIRECT_URL", ""),
			Scopes:       GetEnvAsSlice(prefix+"SCOPES", []string{"openid", "email", "profile"}),
		}
	}
	return providers
}

// GetEnv returns the value of key or defaultValue when unset
func GetEnv(key, defaultValue string) string {
	value := viper.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	if GetEnv(key, "") == "" {
		return defaultValue
	}

	value, err := castInt(key)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	if GetEnv(key, "") == "" {
		return defaultValue
	}

	value, err := castBool(key)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}
	return value
}

// GetEnvAsSlice splits a comma separated variable, dropping empty items
func GetEnvAsSlice(key string, defaultValue []string) []string {
	raw := GetEnv(key, "")
	if raw == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
