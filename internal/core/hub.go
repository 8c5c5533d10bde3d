package core

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// inboundCommand pairs a decoded command with the connection it arrived on.
type inboundCommand struct {
	client *Client
	cmd    *Command
}

// Hub coordinates all sessions. A single run loop consumes every command,
// registration and disconnect, so each mutate-then-broadcast sequence is
// atomic with respect to every other one: many producer connections, one
// consumer.
//
// Per-connection ordering is preserved because each client's Commands channel
// is pumped into the shared inbox by one goroutine in arrival order.
type Hub struct {
	log      zerolog.Logger
	store    *RoomStore
	registry *Registry

	register   chan *Client
	unregister chan *Client
	inbox      chan inboundCommand

	// Owned by the run loop. Commands from a client that already
	// unregistered are dropped instead of reaching dead Events channels.
	clients map[*Client]struct{}
}

// NewHub constructs a hub around the given room store. A nil store or logger
// is replaced with a fresh store / a no-op logger, which keeps tests short.
func NewHub(store *RoomStore, logger *zerolog.Logger) *Hub {
	if store == nil {
		store = NewRoomStore()
	}
	lg := zerolog.Nop()
	if logger != nil {
		lg = *logger
	}
	return &Hub{
		log:        lg,
		store:      store,
		registry:   NewRegistry(),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		inbox:      make(chan inboundCommand),
		clients:    make(map[*Client]struct{}),
	}
}

// Store exposes the room store for read-side collaborators and tests.
func (h *Hub) Store() *RoomStore {
	return h.store
}

// RegisterClient announces a new connection and starts pumping its commands
// into the hub.
func (h *Hub) RegisterClient(c *Client) {
	h.register <- c
	go func() {
		for cmd := range c.Commands {
			h.inbox <- inboundCommand{client: c, cmd: cmd}
		}
	}()
}

// UnregisterClient announces that a connection is gone. In-flight commands
// already queued for this client are discarded by the run loop.
func (h *Hub) UnregisterClient(c *Client) {
	h.unregister <- c
}

// Run processes hub traffic until ctx is cancelled. It must run in exactly
// one goroutine.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case c := <-h.register:
			h.clients[c] = struct{}{}
			h.log.Debug().Str("conn_id", c.ID).Msg("client registered")
		case c := <-h.unregister:
			if _, ok := h.clients[c]; !ok {
				continue
			}
			delete(h.clients, c)
			h.sweep(c)
			close(c.Events)
		case in := <-h.inbox:
			if _, ok := h.clients[in.client]; !ok {
				continue
			}
			h.handleCommand(in.client, in.cmd)
		}
	}
}

func (h *Hub) handleCommand(c *Client, cmd *Command) {
	switch cmd.Kind {
	case CommandJoinRoom:
		h.handleJoin(c, cmd)
	case CommandDiscoverClue:
		h.handleDiscoverClue(cmd)
	case CommandAddTheory:
		h.handleAddTheory(cmd)
	case CommandSolveMystery:
		h.handleSolve(cmd)
	}
}

func (h *Hub) handleJoin(c *Client, cmd *Command) {
	if cmd.Player == nil || cmd.Player.ID == "" || cmd.RoomID == "" {
		return
	}

	snap := h.store.AddPlayer(cmd.RoomID, *cmd.Player, cmd.PuzzleID)
	h.registry.Bind(cmd.Player.ID, c)

	joined := *cmd.Player
	joined.RoomID = cmd.RoomID

	h.log.Info().
		Str("room_id", cmd.RoomID).
		Str("player_id", joined.ID).
		Msg("player joined")

	h.broadcast(cmd.RoomID, &Event{
		Kind:   EventPlayerJoined,
		RoomID: cmd.RoomID,
		Player: &joined,
		Room:   &snap,
	})
}

func (h *Hub) handleDiscoverClue(cmd *Command) {
	_, clues, ok := h.store.AddClue(cmd.RoomID, cmd.ClueID)
	if !ok {
		return
	}

	// Broadcast even on duplicate discovery so every client's view of the
	// set converges.
	h.broadcast(cmd.RoomID, &Event{
		Kind:     EventClueDiscovered,
		RoomID:   cmd.RoomID,
		ClueID:   cmd.ClueID,
		PlayerID: cmd.PlayerID,
		Clues:    clues,
	})
}

func (h *Hub) handleAddTheory(cmd *Command) {
	theory := Theory{
		PlayerID:  cmd.PlayerID,
		Text:      cmd.Text,
		Timestamp: time.Now().UnixMilli(),
	}
	theories, ok := h.store.AppendTheory(cmd.RoomID, theory)
	if !ok {
		return
	}

	h.broadcast(cmd.RoomID, &Event{
		Kind:     EventTheoryAdded,
		RoomID:   cmd.RoomID,
		PlayerID: cmd.PlayerID,
		Theory:   &theory,
		Theories: theories,
	})
}

func (h *Hub) handleSolve(cmd *Command) {
	if !h.store.MarkSolved(cmd.RoomID) {
		return
	}

	h.log.Info().Str("room_id", cmd.RoomID).Msg("mystery solved")

	h.broadcast(cmd.RoomID, &Event{
		Kind:   EventMysterySolved,
		RoomID: cmd.RoomID,
	})
}

// sweep handles a closed connection: drop its binding, remove the player from
// its room, tell the remaining occupants. A handle that never joined, or
// whose binding was taken over by a reconnect, sweeps nothing.
func (h *Hub) sweep(c *Client) {
	playerID, ok := h.registry.UnbindByHandle(c)
	if !ok {
		return
	}

	roomID, found := h.store.FindRoomOfPlayer(playerID)
	if !found {
		return
	}
	h.store.RemovePlayer(roomID, playerID)

	h.log.Info().
		Str("room_id", roomID).
		Str("player_id", playerID).
		Msg("player disconnected")

	h.broadcast(roomID, &Event{
		Kind:     EventPlayerLeft,
		RoomID:   roomID,
		PlayerID: playerID,
	})
}

// broadcast delivers the event to every occupant of the room that has a live,
// registered handle. Sends are non-blocking: a recipient whose outbound
// buffer is full loses the event rather than stalling everyone else.
func (h *Hub) broadcast(roomID string, ev *Event) {
	for _, playerID := range h.store.PlayerIDs(roomID) {
		c, ok := h.registry.Lookup(playerID)
		if !ok {
			continue
		}
		if _, registered := h.clients[c]; !registered {
			continue
		}
		select {
		case c.Events <- ev:
		default:
			h.log.Warn().
				Str("room_id", roomID).
				Str("player_id", playerID).
				Msg("dropping event for slow consumer")
		}
	}
}
