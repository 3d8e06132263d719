package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port            string
	DatabaseDSN     string
	TestServerURL   string
	TestServerToken string
	DemoUserID      int
}

func LoadConfig() *Config {
	cfg := &Config{
		Port:            os.Getenv("PORT"),
		DatabaseDSN:     os.Getenv("DATABASE_DSN"),
		TestServerURL:   os.Getenv("TEST_SERVER_URL"),
		TestServerToken: os.Getenv("TEST_SERVER_TOKEN"),
		DemoUserID:      1,
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.DatabaseDSN == "" {
		// Base volatile en mémoire : tout est réinitialisé au redémarrage
		cfg.DatabaseDSN = "file::memory:?cache=shared"
	}
	if cfg.TestServerURL == "" {
		cfg.TestServerURL = "http://20.244.56.144/test"
	}
	if id, err := strconv.Atoi(os.Getenv("DEMO_USER_ID")); err == nil && id > 0 {
		cfg.DemoUserID = id
	}

	return cfg
}
