package db

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gorm.io/gorm"
)

type manifestCard struct {
	ImagePath    string `json:"image_path"`
	CardType     string `json:"card_type"`
	DrinkPoints  int    `json:"drink_points"`
	ActionPoints int    `json:"action_points"`
}

type manifestGame struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Cards       []manifestCard `json:"cards"`
}

// LoadCardManifest reads a JSON manifest and upserts games and their cards
// into the catalog. Games are matched by name, cards by image path.
func LoadCardManifest(conn *gorm.DB, path string) (int, error) {
	if conn == nil {
		return 0, nil
	}
	games, err := readManifest(path)
	if err != nil {
		return 0, err
	}
	inserted := 0
	for _, entry := range games {
		game := Game{Name: entry.Name, Description: entry.Description}
		if err := conn.FirstOrCreate(&game, Game{Name: entry.Name}).Error; err != nil {
			return inserted, err
		}
		for _, c := range entry.Cards {
			card := Card{
				GameID:       game.ID,
				ImagePath:    c.ImagePath,
				CardType:     c.CardType,
				DrinkPoints:  c.DrinkPoints,
				ActionPoints: c.ActionPoints,
			}
			if err := conn.FirstOrCreate(&card, Card{GameID: game.ID, ImagePath: c.ImagePath}).Error; err != nil {
				return inserted, err
			}
			inserted++
		}
	}
	return inserted, nil
}

func readManifest(path string) ([]manifestGame, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var games []manifestGame
	if err := json.Unmarshal(data, &games); err != nil {
		return nil, err
	}
	for gi := range games {
		if strings.TrimSpace(games[gi].Name) == "" {
			return nil, fmt.Errorf("manifest game %d has no name", gi)
		}
		for ci := range games[gi].Cards {
			card := &games[gi].Cards[ci]
			if strings.TrimSpace(card.ImagePath) == "" {
				return nil, fmt.Errorf("game %q card %d has no image path", games[gi].Name, ci)
			}
			if card.CardType == "" {
				card.CardType = CardTypeDoOrDrink
			}
			if card.CardType != CardTypeDoOrDrink && card.CardType != CardTypeTruthOrDrink {
				return nil, fmt.Errorf("game %q card %q has unknown type %q", games[gi].Name, card.ImagePath, card.CardType)
			}
			if card.DrinkPoints <= 0 {
				card.DrinkPoints = 1
			}
			if card.ActionPoints <= 0 {
				card.ActionPoints = 1
			}
		}
	}
	return games, nil
}
