package main

import (
	"os"

	"github.com/joho/godotenv"
)

type config struct {
	SeedFile string
	Pretty   bool
}

func loadEnvFiles() {
	// Do not override environment provided by the runtime.
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

func loadConfig() config {
	return config{
		SeedFile: getEnv("LIBRARY_SEED_FILE", ""),
		Pretty:   getEnv("LIBRARY_PRETTY", "false") == "true",
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
