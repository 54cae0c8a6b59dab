package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type ServerConfig struct {
	Env     string        `env:"ENV"` // local, dev, prod
	Address string        `env:"ADDRESS"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"5s"`
}

type DatabaseConfig struct {
	PostgresConn string `env:"POSTGRES_CONN"`
}

type RedisConfig struct {
	RedisConn     string `env:"REDIS_CONN"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDBNumber string `env:"REDIS_DB" envDefault:"0"`
}

type JWTConfig struct {
	Secret                  string `env:"JWT_SECRET,required"`
	AccessExpirationMinutes int    `env:"ACCESS_EXPIRATION_MINUTES" envDefault:"15"`
	RefreshExpirationDays   int    `env:"REFRESH_EXPIRATION_DAYS" envDefault:"7"`
}

type IdentityConfig struct {
	Timeout time.Duration `env:"IDENTITY_TIMEOUT" envDefault:"4s"`
}

type AdminConfig struct {
	OverrideCode string `env:"ADMIN_OVERRIDE_CODE" envDefault:"system-override"`
}

type AssistantConfig struct {
	ReplyDelay time.Duration `env:"ASSISTANT_DELAY" envDefault:"800ms"`
}

type StreamConfig struct {
	PlaybackID string `env:"STREAM_PLAYBACK_ID"`
	PageURL    string `env:"PAGE_URL" envDefault:"https://fourtothefloor.live"`
}

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Identity  IdentityConfig
	Admin     AdminConfig
	Assistant AssistantConfig
	Stream    StreamConfig
}

const local = ".env.local"

// MustLoad reads configuration from .env.local (when present) and the
// environment. Only JWT_SECRET is required; everything else has a default.
// Postgres and redis connections are optional: when absent, the in-memory
// stores are used.
func MustLoad() *Config {
	_ = godotenv.Load(local)

	if os.Getenv("JWT_SECRET") == "" {
		panic("JWT_SECRET is required")
	}

	return &Config{
		Server: ServerConfig{
			Env:     getEnv("ENV", "local"),
			Address: getEnv("ADDRESS", ":8080"),
			Timeout: getDuration("TIMEOUT", 5*time.Second),
		},
		Database: DatabaseConfig{
			PostgresConn: os.Getenv("POSTGRES_CONN"),
		},
		Redis: RedisConfig{
			RedisConn:     os.Getenv("REDIS_CONN"),
			RedisPassword: os.Getenv("REDIS_PASSWORD"),
			RedisDBNumber: getEnv("REDIS_DB", "0"),
		},
		JWT: JWTConfig{
			Secret:                  os.Getenv("JWT_SECRET"),
			AccessExpirationMinutes: getInt("ACCESS_EXPIRATION_MINUTES", 15),
			RefreshExpirationDays:   getInt("REFRESH_EXPIRATION_DAYS", 7),
		},
		Identity: IdentityConfig{
			Timeout: getDuration("IDENTITY_TIMEOUT", 4*time.Second),
		},
		Admin: AdminConfig{
			OverrideCode: getEnv("ADMIN_OVERRIDE_CODE", "system-override"),
		},
		Assistant: AssistantConfig{
			ReplyDelay: getDuration("ASSISTANT_DELAY", 800*time.Millisecond),
		},
		Stream: StreamConfig{
			PlaybackID: os.Getenv("STREAM_PLAYBACK_ID"),
			PageURL:    getEnv("PAGE_URL", "https://fourtothefloor.live"),
		},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		panic("invalid " + key + " format: " + err.Error())
	}

	return d
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		panic("invalid " + key + " format: " + err.Error())
	}

	return n
}
