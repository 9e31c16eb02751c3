package main

import (
	"log"

	"github.com/joho/godotenv"

	corecmd "github.com/alisha/dialect/core/cmd"
)

func main() {
	// Local development keeps secrets in .env; absence is fine.
	_ = godotenv.Load()

	if err := corecmd.Run(corecmd.Options{
		ConfigEnvVar:      "CONFIG_PATH",
		DefaultConfigPath: "config.yaml",
	}); err != nil {
		log.Fatalf("dialect: %v", err)
	}
}
