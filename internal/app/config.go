package app

import (
	"strings"
	"time"

	"github.com/yungbote/zoomtube-backend/internal/data/cache"
	"github.com/yungbote/zoomtube-backend/internal/data/db"
	"github.com/yungbote/zoomtube-backend/internal/observability"
	"github.com/yungbote/zoomtube-backend/internal/platform/envutil"
	"github.com/yungbote/zoomtube-backend/internal/platform/youtube"
	"github.com/yungbote/zoomtube-backend/internal/services"
)

const (
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
	StoreMongo    = "mongo"
)

type MongoConfig struct {
	URI      string
	Database string
}

type Config struct {
	Port         string
	Environment  string
	StoreBackend string

	Postgres   db.PostgresConfig
	SQLitePath string
	Mongo      MongoConfig

	Captions youtube.Config
	// Redis backs the caption track cache; an empty Addr disables it.
	Redis         cache.RedisConfig
	TrackCacheTTL time.Duration

	Identity    services.IdentityConfig
	Otel        observability.OtelConfig
	CORSOrigins []string

	ShutdownTimeout time.Duration
}

// LoadConfig reads settings from the environment, with src's config file
// supplying values the environment leaves unset.
func LoadConfig(src *envutil.Source) Config {
	env := src.String("APP_ENV", "development")
	return Config{
		Port:         src.String("PORT", "8080"),
		Environment:  env,
		StoreBackend: strings.ToLower(src.String("STORE_BACKEND", StorePostgres)),
		Postgres: db.PostgresConfig{
			Host:     src.String("POSTGRES_HOST", "localhost"),
			Port:     src.String("POSTGRES_PORT", "5432"),
			User:     src.String("POSTGRES_USER", "postgres"),
			Password: src.String("POSTGRES_PASSWORD", ""),
			Name:     src.String("POSTGRES_NAME", "zoomtube"),
			SSLMode:  src.String("POSTGRES_SSLMODE", "disable"),
		},
		SQLitePath: src.String("SQLITE_PATH", "zoomtube.db"),
		Mongo: MongoConfig{
			URI:      src.String("MONGO_URI", "mongodb://localhost:27017"),
			Database: src.String("MONGO_DATABASE", "zoomtube"),
		},
		Captions: youtube.Config{
			BaseURL:     src.String("CAPTIONS_BASE_URL", "http://video.google.com"),
			DefaultLang: src.String("CAPTIONS_DEFAULT_LANG", "en"),
			Timeout:     src.Duration("CAPTIONS_HTTP_TIMEOUT", 15*time.Second),
		},
		Redis: cache.RedisConfig{
			Addr:     src.String("REDIS_ADDR", ""),
			Password: src.String("REDIS_PASSWORD", ""),
			DB:       src.Int("REDIS_DB", 0),
		},
		TrackCacheTTL: src.Duration("CAPTIONS_TRACK_CACHE_TTL", time.Hour),
		Identity: services.IdentityConfig{
			JWTSecret: src.String("IDENTITY_JWT_SECRET", ""),
			Issuer:    src.String("IDENTITY_ISSUER", ""),
			LoginURL:  src.String("IDENTITY_LOGIN_URL", "/login"),
			LogoutURL: src.String("IDENTITY_LOGOUT_URL", "/logout"),
		},
		Otel: observability.OtelConfig{
			Enabled:     src.Bool("OTEL_ENABLED", false),
			ServiceName: src.String("OTEL_SERVICE_NAME", "zoomtube"),
			Environment: env,
			Version:     src.String("APP_VERSION", ""),
			Endpoint:    src.String("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			Insecure:    src.Bool("OTEL_EXPORTER_OTLP_INSECURE", false),
			Headers:     observability.ParseHeaders(src.String("OTEL_EXPORTER_OTLP_HEADERS", "")),
			SampleRatio: src.Float("OTEL_SAMPLER_RATIO", 0.1),
		},
		CORSOrigins:     src.List("CORS_ALLOW_ORIGINS", nil),
		ShutdownTimeout: src.Duration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}
