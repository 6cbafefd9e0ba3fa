package config

import (
	"log"

	"github.com/joho/godotenv"
)

func loadDotEnv() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}
}
