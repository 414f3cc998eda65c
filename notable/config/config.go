package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string
	DBMaxConns int
	ListenAddr string
	CORSOrigin string
}

// fileConfig mirrors the optional config.yaml. Environment variables
// take precedence over anything set here.
type fileConfig struct {
	DBUser     string `yaml:"db_user"`
	DBPassword string `yaml:"db_password"`
	DBHost     string `yaml:"db_host"`
	DBPort     string `yaml:"db_port"`
	DBName     string `yaml:"db_name"`
	DBMaxConns int    `yaml:"db_max_conns"`
	ListenAddr string `yaml:"listen_addr"`
	CORSOrigin string `yaml:"cors_origin"`
}

func LoadConfig() Config {
	// Not an error if missing; system environment still applies.
	_ = godotenv.Load()

	var fc fileConfig
	path := os.Getenv("CONFIG_FILE")
	if path == "" {
		path = "config.yaml"
	}
	if data, err := os.ReadFile(path); err == nil {
		_ = yaml.Unmarshal(data, &fc)
	}

	return Config{
		DBUser:     getEnv("DB_USER", fc.DBUser, "postgres"),
		DBPassword: getEnv("DB_PASSWORD", fc.DBPassword, "postgres"),
		DBHost:     getEnv("DB_HOST", fc.DBHost, "localhost"),
		DBPort:     getEnv("DB_PORT", fc.DBPort, "5432"),
		DBName:     getEnv("DB_NAME", fc.DBName, "notable"),
		DBMaxConns: getEnvInt("DB_MAX_CONNS", fc.DBMaxConns, 10),
		ListenAddr: getEnv("LISTEN_ADDR", fc.ListenAddr, ":8000"),
		CORSOrigin: getEnv("CORS_ORIGIN", fc.CORSOrigin, "http://localhost:3000"),
	}
}

// DSN builds the connection string for the postgres driver.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName,
	)
}

func getEnv(key, fileValue, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	if fileValue != "" {
		return fileValue
	}
	return fallback
}

func getEnvInt(key string, fileValue, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	if fileValue > 0 {
		return fileValue
	}
	return fallback
}
