package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port int
}

func Load() Config {
	port := 8000
	if v := os.Getenv("APP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 {
			port = p
		}
	}

	return Config{Port: port}
}
