package cmd

import (
	"fmt"
	"time"
)

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type Config struct {
	HTTPPort           string
	AppEnv             string
	StorageDriver      string
	DBHost             string
	DBPort             string
	DBUser             string
	DBPassword         string
	DBName             string
	DBSslMode          string
	RedisAddr          string
	RedisPassword      string
	RedisDB            int
	CartTTL            time.Duration
	StatisticsSchedule string
	PickupCodeAttempts int
}

// DSN is the PostgreSQL connection string for the gorm pgx driver.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// RedisEnabled reports whether carts and event fan-out go through Redis.
func (c Config) RedisEnabled() bool {
	return c.RedisAddr != ""
}
