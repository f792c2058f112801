package server

// EventPayload is the JSON body written to the session event log.
type EventPayload struct {
	RoomCode string `json:"room_code,omitempty"`
	GameID   uint   `json:"game_id,omitempty"`
	PlayerID int    `json:"player_id,omitempty"`
	Nickname string `json:"nickname,omitempty"`
	Choice   string `json:"choice,omitempty"`
}
