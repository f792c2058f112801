package server

import (
	"testing"
	"time"

	"do-or-sip/internal/config"
)

func TestExpireRoomReclaims(t *testing.T) {
	srv := newCoreServer(t)
	created, err := srv.createRoom(1, "Alice")
	if err != nil {
		t.Fatalf("create room: %v", err)
	}

	srv.expireRoom(created.RoomCode)

	if srv.store.HasRoom(created.RoomCode) {
		t.Fatal("room survived expiry")
	}
	if srv.hub.roomSize(created.RoomCode) != 0 {
		t.Fatal("hub kept connections for an expired room")
	}
	// Expiring twice is harmless.
	srv.expireRoom(created.RoomCode)
}

func TestCancelExpiryStopsTimer(t *testing.T) {
	srv := newCoreServer(t)
	created, err := srv.createRoom(1, "Alice")
	if err != nil {
		t.Fatalf("create room: %v", err)
	}

	srv.timersMu.Lock()
	_, scheduled := srv.timers[created.RoomCode]
	srv.timersMu.Unlock()
	if !scheduled {
		t.Fatal("creating a room must schedule an expiry timer")
	}

	srv.cancelExpiry(created.RoomCode)
	srv.timersMu.Lock()
	_, scheduled = srv.timers[created.RoomCode]
	srv.timersMu.Unlock()
	if scheduled {
		t.Fatal("cancel left the timer registered")
	}
	if !srv.store.HasRoom(created.RoomCode) {
		t.Fatal("cancel must not remove the room")
	}
}

func TestTouchRoomReschedules(t *testing.T) {
	srv := newCoreServer(t)
	created, err := srv.createRoom(1, "Alice")
	if err != nil {
		t.Fatalf("create room: %v", err)
	}

	srv.cancelExpiry(created.RoomCode)
	srv.touchRoom(created.RoomCode)

	srv.timersMu.Lock()
	_, scheduled := srv.timers[created.RoomCode]
	srv.timersMu.Unlock()
	if !scheduled {
		t.Fatal("touch must re-arm the expiry timer")
	}
}

func TestShortTTLExpiresRoom(t *testing.T) {
	cfg := config.Default()
	cfg.RoomTTLSeconds = 1
	cfg.FinishedRoomTTLSeconds = 1
	srv := New(nil, testCatalog(), cfg)

	created, err := srv.createRoom(1, "Alice")
	if err != nil {
		t.Fatalf("create room: %v", err)
	}

	deadline := time.Now().Add(3 * time.Second)
	for srv.store.HasRoom(created.RoomCode) {
		if time.Now().After(deadline) {
			t.Fatal("room never expired under a 1s TTL")
		}
		time.Sleep(50 * time.Millisecond)
	}
}
