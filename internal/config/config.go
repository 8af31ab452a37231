package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBPath     string
	ServerPort string
	JWTSecret  string
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBPath:     os.Getenv("DB_PATH"),
		ServerPort: os.Getenv("SERVER_PORT"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
	}

	if cfg.DBPath == "" {
		cfg.DBPath = "renobudget.db"
	}
	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	return cfg
}
