package server

import "testing"

func TestStoreCreateRoomAssignsUniqueIDs(t *testing.T) {
	store := NewStore(10)
	first, host1, err := store.CreateRoom(1, "House Party", "Alice", nil)
	if err != nil {
		t.Fatalf("create first room: %v", err)
	}
	second, host2, err := store.CreateRoom(1, "House Party", "Carol", nil)
	if err != nil {
		t.Fatalf("create second room: %v", err)
	}
	if first.ID == second.ID {
		t.Fatalf("room IDs collide: %d", first.ID)
	}
	if first.Code == second.Code {
		t.Fatalf("room codes collide: %s", first.Code)
	}
	if host1.ID == host2.ID {
		t.Fatalf("host IDs collide: %d", host1.ID)
	}
	if store.RoomCount() != 2 {
		t.Fatalf("expected 2 rooms, got %d", store.RoomCount())
	}
}

func TestStoreUpdatePropagatesError(t *testing.T) {
	store := NewStore(10)
	room, _, err := store.CreateRoom(1, "House Party", "Alice", nil)
	if err != nil {
		t.Fatalf("create room: %v", err)
	}

	// UpdateRoom has no rollback; callers validate before mutating, so an
	// error return means the closure never touched the room.
	err = store.UpdateRoom(room.Code, func(r *Room) error {
		return errInvalidState("nope")
	})
	if err == nil {
		t.Fatal("expected the update error to surface")
	}
	err = store.ViewRoom(room.Code, func(r *Room) error {
		if r.Status != statusWaiting {
			t.Fatalf("room mutated through a failed update: %s", r.Status)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("view room: %v", err)
	}
}

func TestStoreRemoveRoom(t *testing.T) {
	store := NewStore(10)
	room, _, err := store.CreateRoom(1, "House Party", "Alice", nil)
	if err != nil {
		t.Fatalf("create room: %v", err)
	}
	if !store.RemoveRoom(room.Code) {
		t.Fatal("expected removal to succeed")
	}
	if store.RemoveRoom(room.Code) {
		t.Fatal("second removal should be a no-op")
	}
	if store.HasRoom(room.Code) {
		t.Fatal("room still visible after removal")
	}
	if err := store.ViewRoom(room.Code, func(*Room) error { return nil }); err == nil {
		t.Fatal("expected NotFound after removal")
	}
}

func TestNormalizeCode(t *testing.T) {
	if got := normalizeCode("  ab12cd \n"); got != "AB12CD" {
		t.Fatalf("expected AB12CD, got %q", got)
	}
}

func TestNewRoomCodeShape(t *testing.T) {
	for i := 0; i < 100; i++ {
		code := newRoomCode()
		if len(code) != 6 {
			t.Fatalf("expected 6 characters, got %q", code)
		}
		for _, r := range code {
			if (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
				t.Fatalf("code %q contains %q outside [A-Z0-9]", code, r)
			}
		}
	}
}

func TestNewRoomCodeCharactersUniform(t *testing.T) {
	counts := make(map[rune]int)
	const codes = 100000
	for i := 0; i < codes; i++ {
		for _, r := range newRoomCode() {
			counts[r]++
		}
	}
	if len(counts) != 36 {
		t.Fatalf("expected all 36 characters to appear, got %d", len(counts))
	}
	// 600k samples over 36 characters: a fair mean of ~16667 per character
	// with a standard deviation of ~127. Taking the remainder of a raw byte
	// would push A-D to ~18750, far outside these bounds.
	for r, n := range counts {
		if n < 16000 || n > 17400 {
			t.Fatalf("character %q drawn %d times, outside the uniform band", r, n)
		}
	}
}
