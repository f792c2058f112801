package server

import (
	"strings"
	"sync"
)

// Store owns the live rooms. The registry map has its own lock; every
// room carries its own mutex so that operations on different rooms never
// contend, while operations on one room are strictly serialized.
type Store struct {
	mu           sync.RWMutex
	nextRoomID   int
	nextPlayerID int
	rooms        map[string]*Room
	codeAttempts int
}

func NewStore(codeAttempts int) *Store {
	if codeAttempts <= 0 {
		codeAttempts = 10
	}
	return &Store{
		nextRoomID:   1,
		nextPlayerID: 1,
		rooms:        make(map[string]*Room),
		codeAttempts: codeAttempts,
	}
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// CreateRoom allocates a room with a unique code, its host player, and a
// fully materialized deck. The room only becomes visible once complete.
func (s *Store) CreateRoom(gameID uint, gameName, hostNickname string, deck []CardAssignment) (*Room, *Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	code := ""
	for attempt := 0; attempt < s.codeAttempts; attempt++ {
		candidate := newRoomCode()
		if _, taken := s.rooms[candidate]; !taken {
			code = candidate
			break
		}
	}
	if code == "" {
		return nil, nil, errConflict("could not allocate a unique room code")
	}

	host := Player{
		ID:        s.nextPlayerID,
		Nickname:  hostNickname,
		IsHost:    true,
		PlayOrder: -1,
	}
	s.nextPlayerID++

	room := &Room{
		ID:       s.nextRoomID,
		Code:     code,
		GameID:   gameID,
		GameName: gameName,
		Status:   statusWaiting,
		Players:  []Player{host},
		Deck:     deck,
	}
	s.nextRoomID++
	s.rooms[code] = room
	return room, &room.Players[0], nil
}

func (s *Store) lookup(code string) (*Room, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	room, ok := s.rooms[normalizeCode(code)]
	return room, ok
}

// UpdateRoom runs fn under the room's exclusive lock and returns fn's
// error. There is no rollback: fn must do all of its validation before
// touching the room, so that an error return leaves the room unchanged.
func (s *Store) UpdateRoom(code string, fn func(room *Room) error) error {
	room, ok := s.lookup(code)
	if !ok {
		return errNotFound("room not found")
	}
	room.mu.Lock()
	defer room.mu.Unlock()
	return fn(room)
}

// ViewRoom runs fn under the room's read lock, giving fn a consistent
// snapshot of the room. fn must not retain references past its return.
func (s *Store) ViewRoom(code string, fn func(room *Room) error) error {
	room, ok := s.lookup(code)
	if !ok {
		return errNotFound("room not found")
	}
	room.mu.RLock()
	defer room.mu.RUnlock()
	return fn(room)
}

// AllocatePlayerID hands out a process-wide unique player ID. Safe to call
// while holding a room lock.
func (s *Store) AllocatePlayerID() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextPlayerID
	s.nextPlayerID++
	return id
}

func (s *Store) HasRoom(code string) bool {
	_, ok := s.lookup(code)
	return ok
}

// RemoveRoom drops a room from the registry. Used by expiry reclamation.
func (s *Store) RemoveRoom(code string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	code = normalizeCode(code)
	if _, ok := s.rooms[code]; !ok {
		return false
	}
	delete(s.rooms, code)
	return true
}

func (s *Store) RoomCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rooms)
}
