package config

import (
	"os"
	"time"
)

type Config struct {
	ListenAddr      string
	LogLevel        string
	SharedKey       string
	SentinelBaseURL string
	SentinelTimeout time.Duration
	RelayTimeout    time.Duration
	PoolTTL         time.Duration
	DBPath          string
	EndpointsFile   string
	ShutdownWait    time.Duration
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getdur(key, def string) time.Duration {
	d, _ := time.ParseDuration(getenv(key, def))
	return d
}

func Parse() Config {
	return Config{
		ListenAddr:      getenv("LISTEN_ADDR", ":8080"),
		LogLevel:        getenv("LOG_LEVEL", "info"),
		SharedKey:       getenv("RELAY_SHARED_KEY", ""),
		SentinelBaseURL: getenv("SENTINEL_BASE_URL", "https://chatgpt.com"),
		SentinelTimeout: getdur("SENTINEL_TIMEOUT", "10s"),
		RelayTimeout:    getdur("RELAY_TIMEOUT", "30s"),
		PoolTTL:         getdur("POOL_TTL", "60s"),
		DBPath:          getenv("DB_PATH", "data/endpoints.db"),
		EndpointsFile:   getenv("ENDPOINTS_FILE", ""),
		ShutdownWait:    getdur("SHUTDOWN_WAIT", "5s"),
	}
}
