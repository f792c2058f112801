package server

import (
	"encoding/json"
	"errors"
	"log"
	"time"

	"do-or-sip/internal/db"

	"github.com/jackc/pgconn"
	"gorm.io/datatypes"
)

// persistRoomEvent appends to the session event log. Best-effort: the
// room core never fails an operation because the log write did, and a nil
// DB (tests, catalog-less runs) is a no-op.
func (s *Server) persistRoomEvent(roomCode, eventType string, payload EventPayload) {
	if s.db == nil {
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return
	}
	record := db.Event{
		RoomCode:  roomCode,
		Type:      eventType,
		Payload:   datatypes.JSON(body),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.db.Create(&record).Error; err != nil && !isUniqueViolation(err) {
		log.Printf("event log write failed room_code=%s type=%s error=%v", roomCode, eventType, err)
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
