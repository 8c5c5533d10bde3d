package core

// CommandKind describes what a client wants to do.
type CommandKind int

const (
	// CommandJoinRoom puts a player into a room, creating it on first use.
	CommandJoinRoom CommandKind = iota
	// CommandDiscoverClue marks a clue as discovered in a room.
	CommandDiscoverClue
	// CommandAddTheory appends a free-text theory to a room's log.
	CommandAddTheory
	// CommandSolveMystery flags a room's puzzle as solved.
	CommandSolveMystery
)

// Command is a decoded, fully validated client request. The transport mapper
// only produces a Command when every required field is present, so handlers
// never see partially populated values.
type Command struct {
	Kind     CommandKind
	RoomID   string
	PuzzleID string  // join only, may be empty
	Player   *Player // join only
	PlayerID string  // discover-clue and add-theory
	ClueID   string  // discover-clue only
	Text     string  // add-theory only
}
