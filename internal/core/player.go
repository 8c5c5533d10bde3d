package core

// Role is the investigation role a player picked when joining.
type Role string

const (
	RolePrimaryInvestigator Role = "primary-investigator"
	RoleResearcher          Role = "researcher"
	RoleArchivist           Role = "archivist"
)

// Player is a participant of one room. Immutable after join; RoomID is
// assigned by the room store when the player is inserted.
type Player struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Role        Role   `json:"role"`
	RoomID      string `json:"roomId"`
}

// Theory is a free-text note appended to a room's shared log. Slice order in
// the log is authoritative for replay; Timestamp is informational only.
type Theory struct {
	PlayerID  string `json:"playerId"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"` // unix milliseconds
}
