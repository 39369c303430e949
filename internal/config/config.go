package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

type PostgresConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MigrationsPath  string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
}

type Config struct {
	App struct {
		Port string
	}
	// Store выбирает бэкенд хранилища: memory (по умолчанию) или postgres.
	Store        string
	SeedDemoData bool
	Postgres     PostgresConfig
}

// Load читает конфигурацию из окружения, опционально подгружая .env файл.
func Load(path string) (*Config, error) {
	if path != "" {
		if err := godotenv.Load(path); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load .env: %w", err)
		}
	}

	cfg := &Config{}
	cfg.App.Port = getenv("APP_PORT", "8080")

	cfg.Store = getenv("STORE", StoreMemory)
	if cfg.Store != StoreMemory && cfg.Store != StorePostgres {
		return nil, fmt.Errorf("invalid STORE value %q: expected %q or %q", cfg.Store, StoreMemory, StorePostgres)
	}

	cfg.SeedDemoData, _ = strconv.ParseBool(os.Getenv("SEED_DEMO_DATA"))

	if cfg.Store == StorePostgres {
		cfg.Postgres.Host = os.Getenv("DB_HOST")
		cfg.Postgres.Port = getenv("DB_PORT", "5432")
		cfg.Postgres.User = os.Getenv("DB_USER")
		cfg.Postgres.Password = os.Getenv("DB_PASSWORD")
		cfg.Postgres.DBName = os.Getenv("DB_NAME")
		cfg.Postgres.SSLMode = getenv("DB_SSLMODE", "disable")
		cfg.Postgres.MigrationsPath = getenv("DB_MIGRATIONS_PATH", "migrations")
		cfg.Postgres.MaxConns = 10
		cfg.Postgres.MinConns = 2
		cfg.Postgres.MaxConnLifetime = 30 * time.Minute

		for name, value := range map[string]string{
			"DB_HOST":     cfg.Postgres.Host,
			"DB_USER":     cfg.Postgres.User,
			"DB_PASSWORD": cfg.Postgres.Password,
			"DB_NAME":     cfg.Postgres.DBName,
		} {
			if value == "" {
				return nil, fmt.Errorf("%s is required when STORE=postgres", name)
			}
		}
	}

	return cfg, nil
}

func getenv(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}
