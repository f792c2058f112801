package db

import (
	"time"

	"gorm.io/datatypes"
)

const (
	CardTypeDoOrDrink    = "do_or_drink"
	CardTypeTruthOrDrink = "truth_or_drink"
)

type Game struct {
	ID          uint      `gorm:"primaryKey"`
	Name        string    `gorm:"size:100;not null;uniqueIndex"`
	Description string    `gorm:"size:500"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
	Cards       []Card
}

type Card struct {
	ID           uint      `gorm:"primaryKey"`
	GameID       uint      `gorm:"index;not null;uniqueIndex:idx_cards_game_image"`
	ImagePath    string    `gorm:"size:255;not null;uniqueIndex:idx_cards_game_image"`
	CardType     string    `gorm:"size:32;not null;default:do_or_drink"`
	DrinkPoints  int       `gorm:"not null;default:1"`
	ActionPoints int       `gorm:"not null;default:1"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

type Event struct {
	ID        uint           `gorm:"primaryKey"`
	RoomCode  string         `gorm:"size:6;index;not null"`
	Type      string         `gorm:"size:64;not null"`
	Payload   datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt time.Time      `gorm:"not null"`
}
