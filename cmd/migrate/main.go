// Command migrate applies the database schema without starting the server.
package main

import (
	"log"

	"devconnect/internal/config"
	"devconnect/internal/database"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect runs migrations as part of establishing the connection.
	if _, err := database.Connect(cfg); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Schema up to date")
}
