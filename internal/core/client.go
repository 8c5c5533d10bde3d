package core

// Client is one live connection as seen by the hub. The transport layer
// writes decoded commands into Commands and drains Events into the socket;
// the hub never touches the socket itself.
type Client struct {
	// ID identifies the connection, not the player. A player id is attached
	// to a client only through the registry, at join time.
	ID string

	Commands chan *Command
	Events   chan *Event
}

// Reasonably sized buffers: Events is the per-recipient outbound queue the
// broadcaster drops into, so it bounds how far a slow reader can lag before
// losing events.
const (
	commandBuffer = 8
	eventBuffer   = 32
)

// NewClient constructs a client with initialized channels.
func NewClient(id string) *Client {
	return &Client{
		ID:       id,
		Commands: make(chan *Command, commandBuffer),
		Events:   make(chan *Event, eventBuffer),
	}
}
