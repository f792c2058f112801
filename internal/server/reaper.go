package server

import (
	"log"
	"time"
)

// Rooms are reclaimed after a period of inactivity. Every successful
// mutation and every inbound websocket message resets the room's expiry
// timer; finished rooms get a shorter grace period for final leaderboard
// reads.

func (s *Server) touchRoom(roomCode string) {
	status := ""
	if err := s.store.ViewRoom(roomCode, func(room *Room) error {
		status = room.Status
		return nil
	}); err != nil {
		return
	}
	s.scheduleExpiry(roomCode, status)
}

func (s *Server) scheduleExpiry(roomCode, status string) {
	ttl := time.Duration(s.cfg.RoomTTLSeconds) * time.Second
	if status == statusFinished {
		ttl = time.Duration(s.cfg.FinishedRoomTTLSeconds) * time.Second
	}
	if ttl <= 0 {
		return
	}
	s.timersMu.Lock()
	if existing, ok := s.timers[roomCode]; ok {
		existing.Stop()
	}
	s.timers[roomCode] = time.AfterFunc(ttl, func() {
		s.expireRoom(roomCode)
	})
	s.timersMu.Unlock()
}

func (s *Server) cancelExpiry(roomCode string) {
	s.timersMu.Lock()
	defer s.timersMu.Unlock()
	if timer, ok := s.timers[roomCode]; ok {
		timer.Stop()
		delete(s.timers, roomCode)
	}
}

func (s *Server) expireRoom(roomCode string) {
	s.timersMu.Lock()
	delete(s.timers, roomCode)
	s.timersMu.Unlock()
	if !s.store.RemoveRoom(roomCode) {
		return
	}
	s.hub.closeRoom(roomCode)
	log.Printf("room expired room_code=%s", roomCode)
	s.persistRoomEvent(roomCode, "room_expired", EventPayload{RoomCode: roomCode})
}
