package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sinnerdle/ptndle-cli/internal/cli"
)

func main() {
	_ = godotenv.Load()
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "warn")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cli.Execute()
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
