package db

import (
	"errors"

	"gorm.io/gorm"
)

type GameSummary struct {
	ID          uint
	Name        string
	Description string
	CardsCount  int
}

// Catalog reads games and cards. It never writes; the card catalog is
// seeded offline by cmd/load-cards.
type Catalog struct {
	conn *gorm.DB
}

func NewCatalog(conn *gorm.DB) *Catalog {
	return &Catalog{conn: conn}
}

func (c *Catalog) ListGames() ([]GameSummary, error) {
	var summaries []GameSummary
	err := c.conn.Model(&Game{}).
		Select("games.id, games.name, games.description, count(cards.id) as cards_count").
		Joins("LEFT JOIN cards ON cards.game_id = games.id").
		Group("games.id").
		Order("games.id").
		Scan(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

// GetGame returns nil without error when the game does not exist.
func (c *Catalog) GetGame(id uint) (*Game, error) {
	var game Game
	if err := c.conn.First(&game, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &game, nil
}

func (c *Catalog) ListCards(gameID uint) ([]Card, error) {
	var cards []Card
	if err := c.conn.Where("game_id = ?", gameID).Order("id").Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}
