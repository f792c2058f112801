package server

import "sync"

const (
	statusWaiting  = "waiting"
	statusPlaying  = "playing"
	statusFinished = "finished"
)

const (
	choiceDrink  = "drink"
	choiceAction = "action"
	choiceSkip   = "skip"
)

// Websocket event types relayed between clients of a room.
const (
	wsTypeUpdate             = "update"
	wsTypeStateUpdate        = "state_update"
	wsTypePlayerJoined       = "player_joined"
	wsTypeGameStarted        = "game_started"
	wsTypeChoiceMade         = "choice_made"
	wsTypeTurnComplete       = "turn_complete"
	wsTypeGameFinished       = "game_finished"
	wsTypePlayerDisconnected = "player_disconnected"
)

// Card is the runtime copy of a catalog card. Immutable once the room's
// deck is materialized.
type Card struct {
	ID           uint
	ImagePath    string
	Type         string
	DrinkPoints  int
	ActionPoints int
}

// CardAssignment is one position in a room's shuffled deck.
type CardAssignment struct {
	OrderIndex int
	Card       Card
	IsUsed     bool
}

type Player struct {
	ID          int
	Nickname    string
	IsHost      bool
	DrinkScore  int
	ActionScore int
	// PlayOrder is -1 until the game starts, then a permutation index
	// over the non-host players.
	PlayOrder int
}

// Room is one live session. All field access goes through the Store,
// which serializes mutations per room on mu.
type Room struct {
	mu sync.RWMutex

	ID                 int
	Code               string
	GameID             uint
	GameName           string
	Status             string
	CurrentPlayerIndex int
	CurrentCardIndex   int
	Players            []Player
	Deck               []CardAssignment
}

func (r *Room) TotalCards() int {
	return len(r.Deck)
}

// PlayingPlayers returns the non-host players in turn order. Before the
// game starts the order is join order.
func (r *Room) PlayingPlayers() []*Player {
	players := make([]*Player, 0, len(r.Players))
	for i := range r.Players {
		if r.Players[i].IsHost {
			continue
		}
		players = append(players, &r.Players[i])
	}
	if r.Status == statusWaiting {
		return players
	}
	ordered := make([]*Player, len(players))
	for _, p := range players {
		if p.PlayOrder >= 0 && p.PlayOrder < len(ordered) {
			ordered[p.PlayOrder] = p
		}
	}
	return ordered
}

// CurrentPlayer returns the player whose turn it is, or nil outside of play.
func (r *Room) CurrentPlayer() *Player {
	if r.Status != statusPlaying {
		return nil
	}
	players := r.PlayingPlayers()
	if len(players) == 0 || r.CurrentPlayerIndex >= len(players) {
		return nil
	}
	return players[r.CurrentPlayerIndex]
}

// CurrentAssignment returns the deck position at the cursor, or nil when
// the cursor is past the end of the deck.
func (r *Room) CurrentAssignment() *CardAssignment {
	if r.CurrentCardIndex < 0 || r.CurrentCardIndex >= len(r.Deck) {
		return nil
	}
	return &r.Deck[r.CurrentCardIndex]
}

func (r *Room) FindPlayer(playerID int) *Player {
	for i := range r.Players {
		if r.Players[i].ID == playerID {
			return &r.Players[i]
		}
	}
	return nil
}

func validChoice(choice string) bool {
	switch choice {
	case choiceDrink, choiceAction, choiceSkip:
		return true
	}
	return false
}
