package proto

import "encoding/json"

// Envelope is the wire shape in both directions. Payload stays raw until the
// type is known.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Inbound command names.
const (
	TypeJoinRoom     = "join_room"
	TypeDiscoverClue = "discover_clue"
	TypeAddTheory    = "add_theory"
	TypeSolveMystery = "solve_mystery"
)

// Outbound event names.
const (
	TypePlayerJoined   = "player_joined"
	TypePlayerLeft     = "player_left"
	TypeClueDiscovered = "clue_discovered"
	TypeTheoryAdded    = "theory_added"
	TypeMysterySolved  = "mystery_solved"
)

// Player mirrors the core player on the wire.
type Player struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Role        string `json:"role"`
	RoomID      string `json:"roomId,omitempty"`
}

// Theory mirrors a theory log entry; Timestamp is unix milliseconds.
type Theory struct {
	PlayerID  string `json:"playerId"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
}

// Room is the full room snapshot sent with join events.
type Room struct {
	ID                string   `json:"id"`
	PuzzleID          string   `json:"puzzleId"`
	Players           []Player `json:"players"`
	DiscoveredClueIDs []string `json:"discoveredClueIds"`
	Theories          []Theory `json:"theories"`
	Solved            bool     `json:"solved"`
}

// JoinRoomPayload asks to enter (and lazily create) a room.
type JoinRoomPayload struct {
	RoomID   string  `json:"roomId"`
	Player   *Player `json:"player"`
	PuzzleID string  `json:"puzzleId,omitempty"`
}

// DiscoverCluePayload marks a clue as found.
type DiscoverCluePayload struct {
	RoomID   string `json:"roomId"`
	ClueID   string `json:"clueId"`
	PlayerID string `json:"playerId"`
}

// AddTheoryPayload appends a theory to the room log.
type AddTheoryPayload struct {
	RoomID   string `json:"roomId"`
	PlayerID string `json:"playerId"`
	Text     string `json:"text"`
}

// SolveMysteryPayload flags the room's puzzle as solved.
type SolveMysteryPayload struct {
	RoomID string `json:"roomId"`
}

// Outbound is a typed event envelope ready for serialization.
type Outbound struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// PlayerJoinedPayload carries the new player and the full room state.
type PlayerJoinedPayload struct {
	Player Player `json:"player"`
	Room   Room   `json:"room"`
}

// PlayerLeftPayload announces a departure.
type PlayerLeftPayload struct {
	PlayerID string `json:"playerId"`
}

// ClueDiscoveredPayload carries the clue plus the full discovered set.
type ClueDiscoveredPayload struct {
	ClueID            string   `json:"clueId"`
	PlayerID          string   `json:"playerId"`
	DiscoveredClueIDs []string `json:"discoveredClueIds"`
}

// TheoryAddedPayload carries the new theory plus the full log.
type TheoryAddedPayload struct {
	Theory   Theory   `json:"theory"`
	Theories []Theory `json:"theories"`
}

// MysterySolvedPayload names the solved room.
type MysterySolvedPayload struct {
	RoomID string `json:"roomId"`
}
