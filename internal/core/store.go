package core

import "sync"

// RoomStore owns every active room. A single RWMutex guards the room map and
// all room contents; every mutator computes its return value before releasing
// the lock, so callers always observe a room either fully before or fully
// after a mutation.
//
// Rooms are created lazily on first join and never removed, even when the
// last player leaves. An empty room holding its clue set and theory log is an
// accepted memory cost; reaping would change observable behavior for players
// rejoining a known room id.
type RoomStore struct {
	mu    sync.RWMutex
	rooms map[string]*room
}

// NewRoomStore constructs an empty store.
func NewRoomStore() *RoomStore {
	return &RoomStore{rooms: make(map[string]*room)}
}

// GetOrCreate returns a snapshot of the room, creating it first if the id is
// unseen. puzzleID only applies on creation; an existing room keeps its own.
func (s *RoomStore) GetOrCreate(roomID, puzzleID string) RoomSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := s.getOrCreateLocked(roomID, puzzleID)
	return r.snapshot()
}

func (s *RoomStore) getOrCreateLocked(roomID, puzzleID string) *room {
	if r, ok := s.rooms[roomID]; ok {
		return r
	}
	r := newRoom(roomID, puzzleID)
	s.rooms[roomID] = r
	return r
}

// AddPlayer inserts (or overwrites) the player in the room, creating the room
// with puzzleID if needed. The player's RoomID is set to roomID. Returns the
// room snapshot including the new player.
func (s *RoomStore) AddPlayer(roomID string, p Player, puzzleID string) RoomSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := s.getOrCreateLocked(roomID, puzzleID)
	p.RoomID = roomID
	r.players[p.ID] = p
	return r.snapshot()
}

// RemovePlayer deletes the player from the room if present. The emptied room
// itself is kept.
func (s *RoomStore) RemovePlayer(roomID, playerID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.rooms[roomID]
	if !ok {
		return false
	}
	if _, ok := r.players[playerID]; !ok {
		return false
	}
	delete(r.players, playerID)
	return true
}

// AddClue adds clueID to the room's discovered set. changed is false when the
// clue was already known; the returned set is the full current one either
// way, so duplicate discoveries still yield a converged broadcast. ok is
// false when the room does not exist.
func (s *RoomStore) AddClue(roomID, clueID string) (changed bool, clues []string, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, found := s.rooms[roomID]
	if !found {
		return false, nil, false
	}
	changed = r.addClue(clueID)
	clues = make([]string, len(r.clueOrder))
	copy(clues, r.clueOrder)
	return changed, clues, true
}

// AppendTheory appends to the room's theory log and returns the full log.
// ok is false when the room does not exist.
func (s *RoomStore) AppendTheory(roomID string, t Theory) (theories []Theory, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, found := s.rooms[roomID]
	if !found {
		return nil, false
	}
	r.theories = append(r.theories, t)
	theories = make([]Theory, len(r.theories))
	copy(theories, r.theories)
	return theories, true
}

// MarkSolved sets the room's solved flag. The flag is monotonic: there is no
// operation anywhere that resets it. ok is false when the room does not exist.
func (s *RoomStore) MarkSolved(roomID string) (ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, found := s.rooms[roomID]
	if !found {
		return false
	}
	r.solved = true
	return true
}

// FindRoomOfPlayer scans all rooms for the one containing playerID. Used only
// by the disconnect path, so a linear scan is fine.
func (s *RoomStore) FindRoomOfPlayer(playerID string) (roomID string, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for id, r := range s.rooms {
		if _, found := r.players[playerID]; found {
			return id, true
		}
	}
	return "", false
}

// Snapshot returns a copy of the room's state, or ok=false if the room does
// not exist.
func (s *RoomStore) Snapshot(roomID string) (RoomSnapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.rooms[roomID]
	if !ok {
		return RoomSnapshot{}, false
	}
	return r.snapshot(), true
}

// PlayerIDs lists the ids of players currently in the room. Empty when the
// room does not exist.
func (s *RoomStore) PlayerIDs(roomID string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.rooms[roomID]
	if !ok {
		return nil
	}
	ids := make([]string, 0, len(r.players))
	for id := range r.players {
		ids = append(ids, id)
	}
	return ids
}
