package server

import (
	"log"
)

type createRoomResult struct {
	RoomCode string
	PlayerID int
	Room     map[string]any
}

type joinRoomResult struct {
	RoomCode string
	PlayerID int
	Nickname string
	Room     map[string]any
}

// createRoom allocates a room for the given catalog game with a shuffled
// deck covering every card exactly once. The room, its host, and the deck
// appear atomically; a half-built room is never visible.
func (s *Server) createRoom(gameID uint, hostNickname string) (*createRoomResult, error) {
	game, err := s.catalog.GetGame(gameID)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, errNotFound("game not found")
	}
	cards, err := s.catalog.ListCards(gameID)
	if err != nil {
		return nil, err
	}
	if len(cards) == 0 {
		return nil, errInvalidState("game has no cards")
	}

	deck := materializeDeck(cards)
	room, host, err := s.store.CreateRoom(gameID, game.Name, hostNickname, deck)
	if err != nil {
		return nil, err
	}

	result := &createRoomResult{RoomCode: room.Code, PlayerID: host.ID}
	_ = s.store.ViewRoom(room.Code, func(room *Room) error {
		result.Room = roomView(room)
		return nil
	})

	log.Printf("room created room_code=%s game_id=%d host=%s cards=%d", room.Code, gameID, hostNickname, len(deck))
	s.persistRoomEvent(room.Code, "room_created", EventPayload{
		RoomCode: room.Code,
		GameID:   gameID,
		Nickname: hostNickname,
	})
	s.scheduleExpiry(room.Code, statusWaiting)
	return result, nil
}

// joinRoom adds a non-host player while the room is still waiting.
// Nicknames are unique per room, exact match.
func (s *Server) joinRoom(code, nickname string) (*joinRoomResult, error) {
	result := &joinRoomResult{Nickname: nickname}
	err := s.store.UpdateRoom(code, func(room *Room) error {
		if room.Status != statusWaiting {
			return errInvalidState("game already started")
		}
		for i := range room.Players {
			if room.Players[i].Nickname == nickname {
				return errConflict("nickname already taken")
			}
		}
		player := Player{
			ID:        s.store.AllocatePlayerID(),
			Nickname:  nickname,
			PlayOrder: -1,
		}
		room.Players = append(room.Players, player)
		result.RoomCode = room.Code
		result.PlayerID = player.ID
		result.Room = roomView(room)
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("player joined room_code=%s player_id=%d nickname=%s", result.RoomCode, result.PlayerID, nickname)
	s.persistRoomEvent(result.RoomCode, "player_joined", EventPayload{
		RoomCode: result.RoomCode,
		PlayerID: result.PlayerID,
		Nickname: nickname,
	})
	s.touchRoom(result.RoomCode)
	s.broadcastRoomEvent(result.RoomCode, wsTypePlayerJoined, map[string]any{"nickname": nickname})
	s.broadcastState(result.RoomCode)
	return result, nil
}

// startGame snapshots the current non-host roster, deals out a random play
// order over it, and flips the room to playing in one step. Nobody can
// join between the permutation and the status change.
func (s *Server) startGame(code string, playerID int) error {
	roomCode := ""
	err := s.store.UpdateRoom(code, func(room *Room) error {
		actor := room.FindPlayer(playerID)
		if actor == nil || !actor.IsHost {
			return errForbidden("only host can start the game")
		}
		if room.Status != statusWaiting {
			return errInvalidState("game already started")
		}
		nonHost := make([]*Player, 0, len(room.Players))
		for i := range room.Players {
			if !room.Players[i].IsHost {
				nonHost = append(nonHost, &room.Players[i])
			}
		}
		if len(nonHost) < 1 {
			return errInvalidState("need at least 1 player besides host")
		}
		perm := playOrderPermutation(len(nonHost))
		for i, p := range nonHost {
			p.PlayOrder = perm[i]
		}
		room.Status = statusPlaying
		room.CurrentPlayerIndex = 0
		room.CurrentCardIndex = 0
		roomCode = room.Code
		return nil
	})
	if err != nil {
		return err
	}

	log.Printf("game started room_code=%s host_id=%d", roomCode, playerID)
	s.persistRoomEvent(roomCode, "game_started", EventPayload{
		RoomCode: roomCode,
		PlayerID: playerID,
	})
	s.touchRoom(roomCode)
	s.broadcastRoomEvent(roomCode, wsTypeGameStarted, nil)
	s.broadcastState(roomCode)
	return nil
}
