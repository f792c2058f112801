package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads environment variables from a .env file if present.
// Existing environment variables are not overwritten.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return godotenv.Load(path)
}

type Config struct {
	RoomTTLSeconds               int
	FinishedRoomTTLSeconds       int
	BroadcastWriteTimeoutSeconds int
	RoomCodeAttempts             int
	CardsPath                    string
	DBMaxOpenConns               int
	DBMaxIdleConns               int
	DBConnMaxLifetimeSeconds     int
	DBConnMaxIdleTimeSeconds     int
}

func Default() Config {
	return Config{
		RoomTTLSeconds:               7200,
		FinishedRoomTTLSeconds:       600,
		BroadcastWriteTimeoutSeconds: 5,
		RoomCodeAttempts:             10,
		CardsPath:                    "data/cards",
		DBMaxOpenConns:               10,
		DBMaxIdleConns:               10,
		DBConnMaxLifetimeSeconds:     300,
		DBConnMaxIdleTimeSeconds:     60,
	}
}

func Load() Config {
	cfg := Default()
	if raw := os.Getenv("ROOM_TTL_SECONDS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.RoomTTLSeconds = value
		}
	}
	if raw := os.Getenv("FINISHED_ROOM_TTL_SECONDS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.FinishedRoomTTLSeconds = value
		}
	}
	if raw := os.Getenv("BROADCAST_WRITE_TIMEOUT_SECONDS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.BroadcastWriteTimeoutSeconds = value
		}
	}
	if raw := os.Getenv("ROOM_CODE_ATTEMPTS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.RoomCodeAttempts = value
		}
	}
	if raw := os.Getenv("CARDS_PATH"); raw != "" {
		cfg.CardsPath = raw
	}
	if raw := os.Getenv("DB_MAX_OPEN_CONNS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.DBMaxOpenConns = value
		}
	}
	if raw := os.Getenv("DB_MAX_IDLE_CONNS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.DBMaxIdleConns = value
		}
	}
	if raw := os.Getenv("DB_CONN_MAX_LIFETIME_SECONDS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.DBConnMaxLifetimeSeconds = value
		}
	}
	if raw := os.Getenv("DB_CONN_MAX_IDLE_SECONDS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.DBConnMaxIdleTimeSeconds = value
		}
	}
	return cfg
}
