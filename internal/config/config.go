package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	HTTPAddr       string
	DBPath         string
	RabbitURL      string
	RabbitExchange string
	SeedOnStart    bool
	ShutdownGrace  time.Duration
	RequestTimeout time.Duration
}

func Load() Config {
	// .env es opcional; en contenedores todo llega por entorno
	_ = godotenv.Load()

	cfg := Config{
		HTTPAddr:       getenv("HTTP_ADDR", ":3000"),
		DBPath:         getenv("DB_PATH", "./data/loja.db"),
		RabbitURL:      getenv("RABBITMQ_URL", ""),
		RabbitExchange: getenv("RABBIT_EXCHANGE", "domain_events"),
		SeedOnStart:    getenv("SEED_ON_START", "true") == "true",
		ShutdownGrace:  getenvDuration("SHUTDOWN_GRACE", 10*time.Second),
		RequestTimeout: getenvDuration("REQUEST_TIMEOUT", 15*time.Second),
	}
	log.Info().
		Str("http", cfg.HTTPAddr).
		Str("db", cfg.DBPath).
		Str("rabbit", cfg.RabbitURL).
		Msg("config loaded")
	return cfg
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvDuration(k string, def time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
