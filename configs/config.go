package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

func Config(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("Warning: .env file not found, reading from system environment variables")
	}

	return os.Getenv(key)
}

// Env reports the runtime environment, defaulting to development.
func Env() string {
	if env := Config("APP_ENV"); env != "" {
		return env
	}
	return "development"
}

// SimulatedLatency is the artificial delay applied to the mocked API
// calls. Defaults to one second, the delay the UI mock used.
func SimulatedLatency() time.Duration {
	if ms, err := strconv.Atoi(Config("SIMULATED_LATENCY_MS")); err == nil && ms >= 0 {
		return time.Duration(ms) * time.Millisecond
	}
	return time.Second
}
