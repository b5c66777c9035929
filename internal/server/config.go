package server

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the HTTP/WebSocket server settings, read from the
// environment with an optional .env file.
type Config struct {
	Addr string

	// StaticDir, when set, is served under /app for a browser viewer.
	StaticDir string

	// TickHz is the simulation step rate; BroadcastHz is how often
	// state frames go out. Broadcasting slower than ticking keeps the
	// physics smooth without flooding clients.
	TickHz      int
	BroadcastHz int
}

func LoadConfig() Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := Config{
		Addr:        getEnv("SPINWHEEL_ADDR", ":8080"),
		StaticDir:   getEnv("SPINWHEEL_STATIC_DIR", ""),
		TickHz:      getEnvInt("SPINWHEEL_TICK_HZ", 60),
		BroadcastHz: getEnvInt("SPINWHEEL_BROADCAST_HZ", 30),
	}
	if cfg.TickHz <= 0 {
		cfg.TickHz = 60
	}
	if cfg.BroadcastHz <= 0 || cfg.BroadcastHz > cfg.TickHz {
		cfg.BroadcastHz = cfg.TickHz
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
