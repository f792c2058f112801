package server

import (
	"math/rand/v2"

	"do-or-sip/internal/db"
)

// materializeDeck copies the game's cards into a freshly shuffled sequence
// of assignments. Each room gets its own independent deck; the catalog
// rows are never touched.
func materializeDeck(cards []db.Card) []CardAssignment {
	deck := make([]CardAssignment, len(cards))
	for i, card := range cards {
		deck[i] = CardAssignment{
			Card: Card{
				ID:           card.ID,
				ImagePath:    card.ImagePath,
				Type:         card.CardType,
				DrinkPoints:  card.DrinkPoints,
				ActionPoints: card.ActionPoints,
			},
		}
	}
	rand.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	for i := range deck {
		deck[i].OrderIndex = i
	}
	return deck
}

// playOrderPermutation returns a uniformly random permutation of 0..n-1.
func playOrderPermutation(n int) []int {
	return rand.Perm(n)
}
