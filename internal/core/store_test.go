package core

import "testing"

func TestStoreGetOrCreateKeepsPuzzle(t *testing.T) {
	s := NewRoomStore()

	snap := s.GetOrCreate("R1", "ancient_rome_1")
	if snap.ID != "R1" || snap.PuzzleID != "ancient_rome_1" {
		t.Fatalf("unexpected room: %+v", snap)
	}

	// Second create with a different puzzle id must not replace the first.
	snap = s.GetOrCreate("R1", "other_puzzle")
	if snap.PuzzleID != "ancient_rome_1" {
		t.Fatalf("puzzle id changed on re-create: %+v", snap)
	}
}

func TestStoreGetOrCreateDefaultPuzzle(t *testing.T) {
	s := NewRoomStore()

	snap := s.GetOrCreate("R1", "")
	if snap.PuzzleID != DefaultPuzzleID {
		t.Fatalf("expected default puzzle, got %q", snap.PuzzleID)
	}
}

func TestStoreAddPlayerSetsRoomID(t *testing.T) {
	s := NewRoomStore()

	snap := s.AddPlayer("R1", Player{ID: "p1", DisplayName: "Ada", Role: RoleResearcher}, "")
	if len(snap.Players) != 1 {
		t.Fatalf("expected one player, got %d", len(snap.Players))
	}
	if snap.Players[0].RoomID != "R1" {
		t.Fatalf("player roomId not set: %+v", snap.Players[0])
	}

	// Re-adding the same id overwrites, not duplicates.
	snap = s.AddPlayer("R1", Player{ID: "p1", DisplayName: "Ada2", Role: RoleArchivist}, "")
	if len(snap.Players) != 1 || snap.Players[0].DisplayName != "Ada2" {
		t.Fatalf("expected overwrite, got %+v", snap.Players)
	}
}

func TestStorePlayerRoomIDInvariant(t *testing.T) {
	s := NewRoomStore()
	s.AddPlayer("R1", Player{ID: "a"}, "")
	s.AddPlayer("R1", Player{ID: "b", RoomID: "stale-value"}, "")
	s.AddPlayer("R2", Player{ID: "c"}, "")

	for _, roomID := range []string{"R1", "R2"} {
		snap, ok := s.Snapshot(roomID)
		if !ok {
			t.Fatalf("room %s missing", roomID)
		}
		for _, p := range snap.Players {
			if p.RoomID != roomID {
				t.Fatalf("player %s in room %s has roomId %q", p.ID, roomID, p.RoomID)
			}
		}
	}
}

func TestStoreAddClueIdempotent(t *testing.T) {
	s := NewRoomStore()
	s.GetOrCreate("R1", "")

	changed, clues, ok := s.AddClue("R1", "coin_001")
	if !ok || !changed || len(clues) != 1 {
		t.Fatalf("first add: changed=%v clues=%v ok=%v", changed, clues, ok)
	}

	for range 5 {
		changed, clues, ok = s.AddClue("R1", "coin_001")
		if !ok {
			t.Fatal("room vanished")
		}
		if changed {
			t.Fatal("duplicate discovery reported as change")
		}
		if len(clues) != 1 || clues[0] != "coin_001" {
			t.Fatalf("clue set diverged: %v", clues)
		}
	}
}

func TestStoreAddClueUnknownRoom(t *testing.T) {
	s := NewRoomStore()

	if _, _, ok := s.AddClue("ghost", "c1"); ok {
		t.Fatal("expected ok=false for unknown room")
	}
	if _, ok := s.Snapshot("ghost"); ok {
		t.Fatal("unknown room must not be created by AddClue")
	}
}

func TestStoreAppendTheoryOrder(t *testing.T) {
	s := NewRoomStore()
	s.GetOrCreate("R1", "")

	texts := []string{"first", "second", "third"}
	var log []Theory
	for i, text := range texts {
		var ok bool
		log, ok = s.AppendTheory("R1", Theory{PlayerID: "a", Text: text, Timestamp: int64(1000 - i)})
		if !ok {
			t.Fatal("append failed")
		}
	}

	if len(log) != len(texts) {
		t.Fatalf("expected %d theories, got %d", len(texts), len(log))
	}
	// Append order wins, even against decreasing timestamps.
	for i, text := range texts {
		if log[i].Text != text {
			t.Fatalf("theory %d = %q, want %q", i, log[i].Text, text)
		}
	}
}

func TestStoreMarkSolvedMonotonic(t *testing.T) {
	s := NewRoomStore()
	s.GetOrCreate("R1", "")

	if !s.MarkSolved("R1") {
		t.Fatal("mark solved failed")
	}
	// Anything that happens afterwards leaves the flag set.
	s.MarkSolved("R1")
	s.AddClue("R1", "late_clue")
	s.AppendTheory("R1", Theory{PlayerID: "a", Text: "still open"})
	s.AddPlayer("R1", Player{ID: "b"}, "")
	s.RemovePlayer("R1", "b")

	snap, _ := s.Snapshot("R1")
	if !snap.Solved {
		t.Fatal("solved flag was reset")
	}
	if s.MarkSolved("ghost") {
		t.Fatal("unknown room reported solved")
	}
}

func TestStoreRemovePlayerKeepsRoom(t *testing.T) {
	s := NewRoomStore()
	s.AddPlayer("R1", Player{ID: "a"}, "")

	if !s.RemovePlayer("R1", "a") {
		t.Fatal("expected removal")
	}
	if s.RemovePlayer("R1", "a") {
		t.Fatal("second removal should be a no-op")
	}
	if s.RemovePlayer("ghost", "a") {
		t.Fatal("unknown room removal should be a no-op")
	}

	snap, ok := s.Snapshot("R1")
	if !ok {
		t.Fatal("emptied room was deleted")
	}
	if len(snap.Players) != 0 {
		t.Fatalf("expected empty room, got %+v", snap.Players)
	}
}

func TestStoreFindRoomOfPlayer(t *testing.T) {
	s := NewRoomStore()
	s.AddPlayer("R1", Player{ID: "a"}, "")
	s.AddPlayer("R2", Player{ID: "b"}, "")

	roomID, ok := s.FindRoomOfPlayer("b")
	if !ok || roomID != "R2" {
		t.Fatalf("got %q/%v, want R2/true", roomID, ok)
	}
	if _, ok := s.FindRoomOfPlayer("nobody"); ok {
		t.Fatal("found a room for an unknown player")
	}
}

func TestStoreSnapshotIsCopy(t *testing.T) {
	s := NewRoomStore()
	s.AddPlayer("R1", Player{ID: "a"}, "")
	s.AddClue("R1", "c1")

	snap, _ := s.Snapshot("R1")
	snap.DiscoveredClueIDs[0] = "tampered"
	snap.Players[0].ID = "tampered"

	fresh, _ := s.Snapshot("R1")
	if fresh.DiscoveredClueIDs[0] != "c1" || fresh.Players[0].ID != "a" {
		t.Fatalf("snapshot aliases store state: %+v", fresh)
	}
}
