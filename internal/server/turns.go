package server

import (
	"log"
)

// requireTurn runs the shared actor checks for choice and advance: room
// must be playing, the actor must be in the room, and it must be their
// turn per the play order.
func requireTurn(room *Room, playerID int) (*Player, error) {
	if room.Status != statusPlaying {
		return nil, errInvalidState("game not in progress")
	}
	actor := room.FindPlayer(playerID)
	if actor == nil {
		return nil, errForbidden("player is not in this room")
	}
	current := room.CurrentPlayer()
	if current == nil || current.ID != playerID {
		return nil, errForbidden("not your turn")
	}
	return actor, nil
}

// submitChoice scores the current card for the acting player and marks the
// card consumed. The cursor does not move; clients call advanceTurn once
// everyone has seen the outcome.
func (s *Server) submitChoice(code string, playerID int, choice string) error {
	roomCode := ""
	nickname := ""
	err := s.store.UpdateRoom(code, func(room *Room) error {
		actor, err := requireTurn(room, playerID)
		if err != nil {
			return err
		}
		assignment := room.CurrentAssignment()
		if assignment == nil {
			return errInvalidState("no card available")
		}
		if assignment.IsUsed {
			return errInvalidState("card already played")
		}
		switch choice {
		case choiceDrink:
			actor.DrinkScore += assignment.Card.DrinkPoints
		case choiceAction:
			actor.ActionScore += assignment.Card.ActionPoints
		case choiceSkip:
			// consumes the card, awards nothing
		}
		assignment.IsUsed = true
		roomCode = room.Code
		nickname = actor.Nickname
		return nil
	})
	if err != nil {
		return err
	}

	log.Printf("choice made room_code=%s player_id=%d choice=%s", roomCode, playerID, choice)
	s.persistRoomEvent(roomCode, "choice_made", EventPayload{
		RoomCode: roomCode,
		PlayerID: playerID,
		Nickname: nickname,
		Choice:   choice,
	})
	s.touchRoom(roomCode)
	s.broadcastRoomEvent(roomCode, wsTypeChoiceMade, map[string]any{
		"player": nickname,
		"choice": choice,
	})
	s.broadcastState(roomCode)
	return nil
}

// advanceTurn moves the deck cursor forward and rotates the turn to the
// next player, or finishes the room when the deck is exhausted. The
// current card must have been consumed first; a racing second advance
// observes a fresh unconsumed card and fails with Conflict, so the cursor
// can never double-advance.
func (s *Server) advanceTurn(code string, playerID int) (bool, error) {
	roomCode := ""
	finished := false
	err := s.store.UpdateRoom(code, func(room *Room) error {
		if _, err := requireTurn(room, playerID); err != nil {
			return err
		}
		assignment := room.CurrentAssignment()
		if assignment == nil {
			return errInvalidState("no card available")
		}
		if !assignment.IsUsed {
			return errConflict("current card has not been resolved")
		}
		room.CurrentCardIndex++
		roomCode = room.Code
		if room.CurrentCardIndex >= room.TotalCards() {
			room.Status = statusFinished
			finished = true
			return nil
		}
		players := room.PlayingPlayers()
		room.CurrentPlayerIndex = (room.CurrentPlayerIndex + 1) % len(players)
		return nil
	})
	if err != nil {
		return false, err
	}

	if finished {
		log.Printf("game finished room_code=%s", roomCode)
		s.persistRoomEvent(roomCode, "game_finished", EventPayload{RoomCode: roomCode})
		s.touchRoom(roomCode)
		s.broadcastRoomEvent(roomCode, wsTypeGameFinished, nil)
	} else {
		log.Printf("turn complete room_code=%s player_id=%d", roomCode, playerID)
		s.persistRoomEvent(roomCode, "turn_complete", EventPayload{
			RoomCode: roomCode,
			PlayerID: playerID,
		})
		s.touchRoom(roomCode)
		s.broadcastRoomEvent(roomCode, wsTypeTurnComplete, nil)
	}
	s.broadcastState(roomCode)
	return finished, nil
}
