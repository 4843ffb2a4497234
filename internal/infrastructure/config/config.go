package config

import (
	"log"
	"os"
	"strconv"
	"time"
	_ "time/tzdata"
)

const (
	StorageDynamoDB = "dynamodb"
	StoragePostgres = "postgres"
)

// Config holds process settings. DynamoDB table names are read by the
// repositories themselves (QUOTES_TABLE, SETTINGS_TABLE, QUOTE_SEQUENCES_TABLE).
type Config struct {
	HTTPPort            int
	StorageDriver       string
	AWSRegion           string
	AWSAccessKeyID      string
	AWSSecretAccessKey  string
	DynamoDBEndpoint    string
	DatabaseURL         string
	DefaultTaxRate      int64
	DefaultValidityDays int
	Location            *time.Location
}

// Load reads the service configuration from the environment. Invalid
// numeric values fall back to their defaults with a log line.
func Load() Config {
	cfg := Config{
		HTTPPort:            envInt("HTTP_PORT", 8080),
		StorageDriver:       env("STORAGE_DRIVER", StorageDynamoDB),
		AWSRegion:           env("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:      env("AWS_ACCESS_KEY_ID", "local"),
		AWSSecretAccessKey:  env("AWS_SECRET_ACCESS_KEY", "local"),
		DynamoDBEndpoint:    env("DYNAMODB_ENDPOINT", ""),
		DatabaseURL:         env("DATABASE_URL", ""),
		DefaultTaxRate:      int64(envInt("DEFAULT_TAX_RATE", 10)),
		DefaultValidityDays: envInt("DEFAULT_VALIDITY_DAYS", 14),
		Location:            envLocation("TIMEZONE", "Asia/Tokyo"),
	}
	if cfg.DefaultTaxRate < 0 {
		log.Printf("[config] negative DEFAULT_TAX_RATE=%d, using 10", cfg.DefaultTaxRate)
		cfg.DefaultTaxRate = 10
	}
	return cfg
}

// MustLoad is Load plus the checks that make the selected storage usable.
func MustLoad() Config {
	cfg := Load()
	switch cfg.StorageDriver {
	case StorageDynamoDB:
	case StoragePostgres:
		if cfg.DatabaseURL == "" {
			log.Fatalf("missing env DATABASE_URL for STORAGE_DRIVER=%s", StoragePostgres)
		}
	default:
		log.Fatalf("unknown STORAGE_DRIVER %q", cfg.StorageDriver)
	}
	return cfg
}

// Now returns the current time in the configured location.
func (c Config) Now() time.Time {
	if c.Location == nil {
		return time.Now()
	}
	return time.Now().In(c.Location)
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[config] invalid %s=%q, using %d", k, v, def)
		return def
	}
	return n
}

func envLocation(k, def string) *time.Location {
	name := env(k, def)
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("[config] unknown %s=%q, using UTC", k, name)
		return time.UTC
	}
	return loc
}
