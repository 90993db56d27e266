package main

import (
	"errors"
	"fmt"
	"log"
	"os"
)

func main() {
	log.SetOutput(os.Stderr)
	loadEnvFiles()
	cfg := loadConfig()

	a, err := newApp(cfg, os.Stdout)
	if err != nil {
		log.Fatalf("cannot build catalog (seed_file=%q): %v", cfg.SeedFile, err)
	}
	log.Printf("catalog ready books=%d seed_file=%q", len(a.catalog.AllBooks()), cfg.SeedFile)

	if err := a.run(os.Args[1:]); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, err)
			fmt.Fprintln(os.Stderr, usage)
			os.Exit(1)
		}
		log.Fatalf("command failed: %v", err)
	}
}
