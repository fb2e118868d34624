package config

import (
	"log"

	"github.com/joho/godotenv"
)

// LoadEnv reads the given env files (".env" when none are given) into the process environment.
// Variables already set take precedence; missing files are ignored.
func LoadEnv(files ...string) {
	if err := godotenv.Load(files...); err != nil {
		log.Printf("No env file loaded (%v), using process environment", err)
		return
	}
	log.Println("Environment variables loaded from env file")
}
