package config

import (
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	if cfg.RoomTTLSeconds != 7200 {
		t.Fatalf("expected 7200s room TTL, got %d", cfg.RoomTTLSeconds)
	}
	if cfg.FinishedRoomTTLSeconds != 600 {
		t.Fatalf("expected 600s finished TTL, got %d", cfg.FinishedRoomTTLSeconds)
	}
	if cfg.BroadcastWriteTimeoutSeconds != 5 {
		t.Fatalf("expected 5s write timeout, got %d", cfg.BroadcastWriteTimeoutSeconds)
	}
	if cfg.CardsPath != "data/cards" {
		t.Fatalf("expected data/cards, got %s", cfg.CardsPath)
	}
}

func TestLoadReadsEnv(t *testing.T) {
	t.Setenv("ROOM_TTL_SECONDS", "60")
	t.Setenv("FINISHED_ROOM_TTL_SECONDS", "30")
	t.Setenv("CARDS_PATH", "/srv/cards")
	t.Setenv("DB_MAX_OPEN_CONNS", "25")

	cfg := Load()
	if cfg.RoomTTLSeconds != 60 {
		t.Fatalf("expected 60, got %d", cfg.RoomTTLSeconds)
	}
	if cfg.FinishedRoomTTLSeconds != 30 {
		t.Fatalf("expected 30, got %d", cfg.FinishedRoomTTLSeconds)
	}
	if cfg.CardsPath != "/srv/cards" {
		t.Fatalf("expected /srv/cards, got %s", cfg.CardsPath)
	}
	if cfg.DBMaxOpenConns != 25 {
		t.Fatalf("expected 25, got %d", cfg.DBMaxOpenConns)
	}
}

func TestLoadIgnoresInvalidEnv(t *testing.T) {
	t.Setenv("ROOM_TTL_SECONDS", "not-a-number")
	t.Setenv("ROOM_CODE_ATTEMPTS", "-5")

	cfg := Load()
	if cfg.RoomTTLSeconds != Default().RoomTTLSeconds {
		t.Fatalf("invalid value should fall back to default, got %d", cfg.RoomTTLSeconds)
	}
	if cfg.RoomCodeAttempts != Default().RoomCodeAttempts {
		t.Fatalf("negative value should fall back to default, got %d", cfg.RoomCodeAttempts)
	}
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), ".env")); err != nil {
		t.Fatalf("missing .env must not error: %v", err)
	}
}
