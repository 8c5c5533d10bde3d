package core

// DefaultPuzzleID is used when a join request does not name a puzzle.
const DefaultPuzzleID = "ancient_rome_1"

// room is the store-internal state of one session. Only the RoomStore touches
// it; everything handed out of the store is a copy.
type room struct {
	id        string
	puzzleID  string
	players   map[string]Player
	clues     map[string]struct{}
	clueOrder []string // discovery order, for stable snapshots
	theories  []Theory
	solved    bool
}

func newRoom(id, puzzleID string) *room {
	if puzzleID == "" {
		puzzleID = DefaultPuzzleID
	}
	return &room{
		id:       id,
		puzzleID: puzzleID,
		players:  make(map[string]Player),
		clues:    make(map[string]struct{}),
	}
}

// addClue inserts clueID into the discovered set. Returns false if it was
// already present.
func (r *room) addClue(clueID string) bool {
	if _, ok := r.clues[clueID]; ok {
		return false
	}
	r.clues[clueID] = struct{}{}
	r.clueOrder = append(r.clueOrder, clueID)
	return true
}

// RoomSnapshot is a consistent copy of a room's state, safe to hand to
// broadcasts and serializers without further locking.
type RoomSnapshot struct {
	ID                string   `json:"id"`
	PuzzleID          string   `json:"puzzleId"`
	Players           []Player `json:"players"`
	DiscoveredClueIDs []string `json:"discoveredClueIds"`
	Theories          []Theory `json:"theories"`
	Solved            bool     `json:"solved"`
}

// snapshot copies the room. Caller must hold the store lock.
func (r *room) snapshot() RoomSnapshot {
	players := make([]Player, 0, len(r.players))
	for _, p := range r.players {
		players = append(players, p)
	}
	clues := make([]string, len(r.clueOrder))
	copy(clues, r.clueOrder)
	theories := make([]Theory, len(r.theories))
	copy(theories, r.theories)
	return RoomSnapshot{
		ID:                r.id,
		PuzzleID:          r.puzzleID,
		Players:           players,
		DiscoveredClueIDs: clues,
		Theories:          theories,
		Solved:            r.solved,
	}
}
