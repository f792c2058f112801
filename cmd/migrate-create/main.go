package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Stamps out an empty up/down migration pair under db/migrations. The
// version prefix is a UTC timestamp so files sort in creation order and
// golang-migrate applies them in sequence.
func main() {
	name := flag.String("name", "", "migration name, e.g. add_events_index")
	flag.Parse()

	if *name == "" {
		log.Fatal("-name is required")
	}
	if strings.ContainsAny(*name, " ") {
		log.Fatalf("migration name %q must not contain spaces", *name)
	}

	stamp := time.Now().UTC().Format("20060102150405")
	base := filepath.Join("db", "migrations", fmt.Sprintf("%s_%s", stamp, *name))

	if err := os.MkdirAll(filepath.Dir(base), 0o755); err != nil {
		log.Fatalf("failed to create migrations directory: %v", err)
	}
	for _, direction := range []string{"up", "down"} {
		path := fmt.Sprintf("%s.%s.sql", base, direction)
		if err := createEmpty(path, "-- "+direction+" migration\n"); err != nil {
			log.Fatalf("failed to create %s migration: %v", direction, err)
		}
		log.Printf("created %s", path)
	}
}

func createEmpty(path, content string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	} else if !os.IsNotExist(err) {
		return err
	}
	return os.WriteFile(path, []byte(content), 0o644)
}
