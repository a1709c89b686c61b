package main

import (
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"personatag/cmd"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found, relying on environment variables")
	}
	cmd.Execute()
}
