package core

// EventKind is a notification the hub fans out to room occupants.
type EventKind int

const (
	// EventPlayerJoined carries the joining player and a full room snapshot.
	EventPlayerJoined EventKind = iota
	// EventPlayerLeft notifies that a player's connection went away.
	EventPlayerLeft
	// EventClueDiscovered carries the clue plus the full discovered set.
	EventClueDiscovered
	// EventTheoryAdded carries the new theory plus the full log.
	EventTheoryAdded
	// EventMysterySolved marks the room's puzzle as solved.
	EventMysterySolved
)

// Event describes one state change. Payloads always carry the full current
// collection rather than a delta: a client that missed an event converges on
// the next one.
type Event struct {
	Kind     EventKind
	RoomID   string
	Player   *Player       // joined
	Room     *RoomSnapshot // joined
	PlayerID string        // left, clue discoverer, theory author
	ClueID   string        // clue
	Clues    []string      // clue: full discovered set
	Theory   *Theory       // theory
	Theories []Theory      // theory: full log
}
