package server

import (
	"net/http"
)

type createRoomRequest struct {
	GameID       uint   `json:"game_id"`
	HostNickname string `json:"host_nickname"`
}

type joinRoomRequest struct {
	RoomCode string `json:"room_code"`
	Nickname string `json:"nickname"`
}

type actorRequest struct {
	PlayerID int `json:"player_id"`
}

type choiceRequest struct {
	PlayerID int    `json:"player_id"`
	Choice   string `json:"choice"`
}

func (s *Server) handleListGames(w http.ResponseWriter, r *http.Request) {
	if s.catalog == nil {
		writeError(w, http.StatusServiceUnavailable, "catalog unavailable")
		return
	}
	games, err := s.catalog.ListGames()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list games")
		return
	}
	payload := make([]map[string]any, 0, len(games))
	for _, game := range games {
		payload = append(payload, map[string]any{
			"id":          game.ID,
			"name":        game.Name,
			"description": game.Description,
			"cards_count": game.CardsCount,
		})
	}
	writeJSON(w, http.StatusOK, payload)
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	gameID, ok := parseGamePath(r.URL.Path)
	if !ok {
		http.NotFound(w, r)
		return
	}
	if s.catalog == nil {
		writeError(w, http.StatusServiceUnavailable, "catalog unavailable")
		return
	}
	game, err := s.catalog.GetGame(gameID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load game")
		return
	}
	if game == nil {
		writeError(w, http.StatusNotFound, "game not found")
		return
	}
	cards, err := s.catalog.ListCards(gameID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load game")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"id":          game.ID,
		"name":        game.Name,
		"description": game.Description,
		"cards_count": len(cards),
	})
}

func (s *Server) handleCreateRoom(w http.ResponseWriter, r *http.Request) {
	var req createRoomRequest
	if err := readJSON(r.Body, &req); err != nil || req.GameID == 0 {
		writeError(w, http.StatusBadRequest, "game_id and host_nickname are required")
		return
	}
	nickname, err := validateNickname(req.HostNickname)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	result, err := s.createRoom(req.GameID, nickname)
	if err != nil {
		writeOpError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"room_code": result.RoomCode,
		"player_id": result.PlayerID,
		"room":      result.Room,
	})
}

func (s *Server) handleJoinRoom(w http.ResponseWriter, r *http.Request) {
	var req joinRoomRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "room_code and nickname are required")
		return
	}
	code, err := validateRoomCode(req.RoomCode)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	nickname, err := validateNickname(req.Nickname)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	result, err := s.joinRoom(code, nickname)
	if err != nil {
		writeOpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"player_id": result.PlayerID,
		"room":      result.Room,
	})
}

func (s *Server) handleRoomSubroutes(w http.ResponseWriter, r *http.Request) {
	roomCode, action, ok := parseRoomPath(r.URL.Path)
	if !ok {
		http.NotFound(w, r)
		return
	}
	roomCode = normalizeCode(roomCode)

	switch r.Method {
	case http.MethodGet:
		switch action {
		case "":
			s.handleGetRoom(w, r, roomCode)
		case "state":
			s.handleGetRoomState(w, r, roomCode)
		case "leaderboard":
			s.handleLeaderboard(w, r, roomCode)
		default:
			http.NotFound(w, r)
		}
	case http.MethodPost:
		switch action {
		case "start":
			s.handleStartGame(w, r, roomCode)
		case "choice":
			s.handleSubmitChoice(w, r, roomCode)
		case "next":
			s.handleAdvanceTurn(w, r, roomCode)
		default:
			http.NotFound(w, r)
		}
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleGetRoom(w http.ResponseWriter, r *http.Request, roomCode string) {
	var view map[string]any
	err := s.store.ViewRoom(roomCode, func(room *Room) error {
		view = roomView(room)
		return nil
	})
	if err != nil {
		writeOpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleGetRoomState(w http.ResponseWriter, r *http.Request, roomCode string) {
	var view map[string]any
	err := s.store.ViewRoom(roomCode, func(room *Room) error {
		view = roomStateView(room)
		return nil
	})
	if err != nil {
		writeOpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request, roomCode string) {
	var view map[string]any
	err := s.store.ViewRoom(roomCode, func(room *Room) error {
		view = leaderboardView(room)
		return nil
	})
	if err != nil {
		writeOpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleStartGame(w http.ResponseWriter, r *http.Request, roomCode string) {
	var req actorRequest
	if err := readJSON(r.Body, &req); err != nil || req.PlayerID <= 0 {
		writeError(w, http.StatusBadRequest, "player_id is required")
		return
	}
	if err := s.startGame(roomCode, req.PlayerID); err != nil {
		writeOpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "started"})
}

func (s *Server) handleSubmitChoice(w http.ResponseWriter, r *http.Request, roomCode string) {
	var req choiceRequest
	if err := readJSON(r.Body, &req); err != nil || req.PlayerID <= 0 {
		writeError(w, http.StatusBadRequest, "player_id and choice are required")
		return
	}
	if !validChoice(req.Choice) {
		writeError(w, http.StatusBadRequest, "choice must be drink, action, or skip")
		return
	}
	if err := s.submitChoice(roomCode, req.PlayerID, req.Choice); err != nil {
		writeOpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "choice_made",
		"choice": req.Choice,
	})
}

func (s *Server) handleAdvanceTurn(w http.ResponseWriter, r *http.Request, roomCode string) {
	var req actorRequest
	if err := readJSON(r.Body, &req); err != nil || req.PlayerID <= 0 {
		writeError(w, http.StatusBadRequest, "player_id is required")
		return
	}
	finished, err := s.advanceTurn(roomCode, req.PlayerID)
	if err != nil {
		writeOpError(w, err)
		return
	}
	status := "next_turn"
	if finished {
		status = "game_finished"
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": status})
}
