package main

import (
	"flag"
	"log"

	"do-or-sip/internal/config"
	"do-or-sip/internal/db"
)

// Seeds the card catalog from a JSON manifest, typically the output of the
// offline card-image pipeline. Safe to re-run: games and cards are matched
// before insert.
func main() {
	filePath := flag.String("file", "cards.json", "path to card manifest")
	flag.Parse()

	if err := config.LoadDotEnv(".env"); err != nil {
		log.Printf("failed to load .env: %v", err)
	}

	conn, err := db.Open()
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	if err := db.Migrate(conn); err != nil {
		log.Fatalf("database migration failed: %v", err)
	}

	loaded, err := db.LoadCardManifest(conn, *filePath)
	if err != nil {
		log.Fatalf("failed to load card manifest: %v", err)
	}
	log.Printf("loaded %d cards", loaded)
}
