package config

import "fmt"

// Feedback store backends.
const (
	StoreBackendFile  = "file"
	StoreBackendGorm  = "gorm"
	StoreBackendRedis = "redis"
)

// Database drivers for the gorm backend.
const (
	DBDriverSQLite   = "sqlite"
	DBDriverPostgres = "postgres"
)

// PostgresDSN builds the connection string for the postgres driver.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

// RedisAddr builds the host:port address used when no REDIS_URL is set.
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}
