package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Flash    FlashConfig
	Log      LogConfig
}

type ServerConfig struct {
	Host    string
	Port    string
	GinMode string
}

type DatabaseConfig struct {
	Host        string
	Port        string
	User        string
	Password    string
	DBName      string
	SSLMode     string
	AutoMigrate bool
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// FlashConfig selects where one-shot flash messages are kept between a
// redirect and the next rendered page.
type FlashConfig struct {
	Backend string // "redis" or "memory"
	TTL     time.Duration
}

type LogConfig struct {
	Level     string
	ErrorFile string
}

var AppConfig *Config

func LoadConfig() *Config {
	// a missing .env is fine, the process environment still applies
	_ = godotenv.Load()

	AppConfig = &Config{
		Server:   GetServerConfig(),
		Database: GetDatabaseConfig(),
		Redis:    GetRedisConfig(),
		Flash:    GetFlashConfig(),
		Log:      GetLogConfig(),
	}

	return AppConfig
}

func LoadTestConfig() *Config {
	testConfig := &DatabaseConfig{
		Host:     getEnv("TEST_DB_HOST", "localhost"),
		Port:     getEnv("TEST_DB_PORT", "5433"),
		User:     "postgres",
		Password: "postgres",
		DBName:   "test_db",
		SSLMode:  "disable",
	}

	testRedisConfig := RedisConfig{
		Host:     getEnv("TEST_REDIS_HOST", "localhost"),
		Port:     getEnv("TEST_REDIS_PORT", "6380"),
		Password: "",
		DB:       1,
	}

	return &Config{
		Server:   ServerConfig{Host: "127.0.0.1", Port: "0", GinMode: "test"},
		Database: *testConfig,
		Redis:    testRedisConfig,
		Flash:    FlashConfig{Backend: "memory", TTL: time.Minute},
		Log:      LogConfig{Level: "debug"},
	}
}

func GetServerConfig() ServerConfig {
	return ServerConfig{
		Host:    getEnv("HOST", "0.0.0.0"),
		Port:    getEnv("PORT", "7000"),
		GinMode: getEnv("GIN_MODE", "release"),
	}
}

func GetDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Host:        getEnv("DB_HOST", "localhost"),
		Port:        getEnv("DB_PORT", "5432"),
		User:        getEnv("DB_USER", "postgres"),
		Password:    getEnv("DB_PASSWORD", "postgres"),
		DBName:      getEnv("DB_NAME", "booking"),
		SSLMode:     getEnv("DB_SSL_MODE", "disable"),
		AutoMigrate: getEnvBool("DB_AUTO_MIGRATE", true),
	}
}

func GetRedisConfig() RedisConfig {
	db, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		panic(err)
	}

	return RedisConfig{
		Host:     getEnv("REDIS_HOST", "localhost"),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       db,
	}
}

const defaultFlashTTLSec = 300

func GetFlashConfig() FlashConfig {
	ttl, err := strconv.Atoi(getEnv("FLASH_TTL_SEC", strconv.Itoa(defaultFlashTTLSec)))
	if err != nil {
		panic(err)
	}
	// a zero or negative expiry would drop the flash before the redirect lands
	if ttl <= 0 {
		ttl = defaultFlashTTLSec
	}

	return FlashConfig{
		Backend: getEnv("FLASH_BACKEND", "redis"),
		TTL:     time.Duration(ttl) * time.Second,
	}
}

func GetLogConfig() LogConfig {
	return LogConfig{
		Level:     getEnv("LOG_LEVEL", "info"),
		ErrorFile: getEnv("LOG_ERROR_FILE", ""),
	}
}

// Addr is the listen address; the host defaults to all interfaces.
func (c ServerConfig) Addr() string {
	return c.Host + ":" + c.Port
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(getEnv(key, strconv.FormatBool(fallback)))
	if err != nil {
		return fallback
	}
	return v
}
